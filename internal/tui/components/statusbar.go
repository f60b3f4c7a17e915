package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/lifecost/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// a message on the right. Error messages are highlighted.
func RenderStatusBar(width int, hints, message string, isErr bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)
	msgStyle := style
	if isErr {
		msgStyle = msgStyle.Foreground(t.Orange).Bold(true)
	}

	left := style.Render(" " + hints)
	right := ""
	if message != "" {
		right = msgStyle.Render(message + " ")
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		// Drop hints before dropping the message.
		left = ""
		padding = max(width-lipgloss.Width(right), 0)
	}

	return lipgloss.NewStyle().Background(t.Surface).Width(width).
		Render(left + style.Render(spaces(padding)) + right)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
