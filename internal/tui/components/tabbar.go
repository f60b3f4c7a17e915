package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/lifecost/internal/tui/theme"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune // shortcut shown as [k] on inactive tabs, 0 for none
}

// NumberedTabs builds one tab per name with shortcuts 1-9.
func NumberedTabs(names []string) []Tab {
	tabs := make([]Tab, len(names))
	for i, name := range names {
		tabs[i] = Tab{Name: name}
		if i < 9 {
			tabs[i].Key = rune('1' + i)
		}
	}
	return tabs
}

func renderTab(tab Tab, active bool) string {
	t := theme.Active

	if active {
		return lipgloss.NewStyle().
			Foreground(t.AccentBright).
			Background(t.SurfaceHover).
			Bold(true).
			Padding(0, 1).
			Render(tab.Name)
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	padStyle := lipgloss.NewStyle().Background(t.Surface)

	s := padStyle.Render(" ") + nameStyle.Render(tab.Name)
	if tab.Key != 0 {
		s += dimStyle.Render("[") + keyStyle.Render(string(tab.Key)) + dimStyle.Render("]")
	}
	return s + padStyle.Render(" ")
}

// TabVisualWidth returns the rendered width of a tab.
func TabVisualWidth(tab Tab, active bool) int {
	return lipgloss.Width(renderTab(tab, active))
}

// RenderTabBar renders a single-row tab bar padded to width. Tabs are
// separated by one column.
func RenderTabBar(tabs []Tab, activeIdx int, width int) string {
	t := theme.Active
	sep := lipgloss.NewStyle().Foreground(t.Border).Background(t.Surface).Render("│")

	parts := make([]string, len(tabs))
	for i, tab := range tabs {
		parts[i] = renderTab(tab, i == activeIdx)
	}
	row := strings.Join(parts, sep)

	return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(row)
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(tabs []Tab, key rune) int {
	for i, tab := range tabs {
		if tab.Key != 0 && tab.Key == key {
			return i
		}
	}
	return -1
}
