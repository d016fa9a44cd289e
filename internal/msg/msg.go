package msg

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultToastDuration is used when a toast does not set its own duration.
const DefaultToastDuration = 2 * time.Second

// ToastMsg displays a temporary message in the footer.
type ToastMsg struct {
	Message  string
	Duration time.Duration
	IsError  bool // red when true, green otherwise
}

// ShowToast returns a command to show a toast message.
func ShowToast(message string, duration time.Duration) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{
			Message:  message,
			Duration: duration,
		}
	}
}

// ShowError returns a command to show an error toast.
func ShowError(err error) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{
			Message:  err.Error(),
			Duration: 3 * time.Second,
			IsError:  true,
		}
	}
}
