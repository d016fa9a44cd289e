// Package ui holds rendering helpers shared by the panels.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/notedeck/internal/styles"
)

// dimStyle greys out content behind an overlay. Existing ANSI codes are
// stripped first since SGR 2 does not combine reliably with colors.
func dimStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.TextSubtle)
}

// box is the placement of an overlay inside the background.
type box struct {
	x, y          int
	width, height int
}

func center(fg []string, width, height int) box {
	b := box{width: MaxLineWidth(fg), height: len(fg)}
	b.x = max(0, (width-b.width)/2)
	b.y = max(0, (height-b.height)/2)
	return b
}

// MaxLineWidth returns the widest visual width among lines.
func MaxLineWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		widest = max(widest, ansi.StringWidth(line))
	}
	return widest
}

// Overlay draws fg centered over a dimmed bg of the given size.
func Overlay(bg, fg string, width, height int) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	b := center(fgLines, width, height)
	dim := dimStyle()

	out := make([]string, height)
	for y := range out {
		var line string
		if y < len(bgLines) {
			line = ansi.Strip(bgLines[y])
		}
		row := y - b.y
		if row < 0 || row >= b.height {
			out[y] = dim.Render(line)
			continue
		}
		out[y] = splice(line, fgLines[row], b.x, b.width, dim)
	}
	return strings.Join(out, "\n")
}

// splice replaces columns [x, x+w) of the plain line with fg, dimming the
// remainder on both sides.
func splice(plain, fg string, x, w int, dim lipgloss.Style) string {
	var sb strings.Builder
	lineWidth := ansi.StringWidth(plain)

	if x > 0 {
		left := ansi.Truncate(plain, x, "")
		sb.WriteString(dim.Render(left))
		if pad := x - ansi.StringWidth(left); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
	}
	sb.WriteString(fg)
	if gap := w - ansi.StringWidth(fg); gap > 0 {
		sb.WriteString(strings.Repeat(" ", gap))
	}
	if right := x + w; right < lineWidth {
		sb.WriteString(dim.Render(ansi.Cut(plain, right, lineWidth)))
	}
	return sb.String()
}

// FitLines pads or truncates s to exactly height lines, each truncated to width.
func FitLines(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "")
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
