package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/notedeck/internal/cards"
	"github.com/marcus/notedeck/internal/config"
	"github.com/marcus/notedeck/internal/msg"
	"github.com/marcus/notedeck/internal/notes"
)

// TickMsg is sent periodically to expire toasts.
type TickMsg time.Time

// ConfigReloadedMsg carries a config re-read after the file changed.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// tickCmd returns a command that sends a TickMsg every second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForConfig blocks on the next config update. A nil or closed channel
// ends the listener.
func waitForConfig(updates <-chan *config.Config) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-updates
		if !ok {
			return nil
		}
		return ConfigReloadedMsg{Config: cfg}
	}
}

// yankCmd copies a note to the clipboard as "title\n\nbody".
func yankCmd(write func(string) error, note notes.Note) tea.Cmd {
	return func() tea.Msg {
		text := cards.DisplayTitle(note)
		if note.Body != "" {
			text += "\n\n" + note.Body
		}
		if err := write(text); err != nil {
			return msg.ToastMsg{Message: "Copy failed: " + err.Error(), Duration: 3 * time.Second, IsError: true}
		}
		return msg.ToastMsg{Message: "Yanked " + cards.DisplayTitle(note), Duration: msg.DefaultToastDuration}
	}
}

// saveThemeCmd persists the theme choice. An empty path skips saving.
func saveThemeCmd(path, name string) tea.Cmd {
	return func() tea.Msg {
		if path != "" {
			if err := config.SaveTheme(path, name); err != nil {
				return msg.ToastMsg{Message: fmt.Sprintf("Theme not saved: %v", err), Duration: 3 * time.Second, IsError: true}
			}
		}
		return msg.ToastMsg{Message: "Theme: " + name, Duration: msg.DefaultToastDuration}
	}
}
