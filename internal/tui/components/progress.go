package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/lifecost/internal/tui/theme"
)

// ColorForShare returns a color that warms as a category takes a larger
// share of the total.
func ColorForShare(frac float64) string {
	t := theme.Active
	switch {
	case frac >= 0.3:
		return string(t.Red)
	case frac >= 0.15:
		return string(t.Orange)
	case frac >= 0.05:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// ShareBar renders a labeled bar for one category's fraction of the total.
func ShareBar(label string, frac float64, labelW, barWidth int) string {
	t := theme.Active

	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	if barWidth < 4 {
		barWidth = 4
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForShare(frac)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForShare(frac))).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, truncate(label, labelW))) +
		spaceStyle.Render(" ") +
		bar.ViewAs(frac) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%5.1f%%", frac*100))
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if limit <= 0 || len(runes) <= limit {
		return s
	}
	if limit == 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}
