package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/lifecost/internal/cli"
	"github.com/theirongolddev/lifecost/internal/model"
	"github.com/theirongolddev/lifecost/internal/tui/components"
	"github.com/theirongolddev/lifecost/internal/tui/theme"
)

// value returns the current value of field f on the active tab.
func (a App) value(f model.Field) float64 {
	if v, ok := a.state().values[f.Key]; ok {
		return v
	}
	return f.Default
}

func (a *App) moveCursor(delta int) {
	st := a.state()
	n := len(a.profile().Fields)
	st.cursor = min(max(st.cursor+delta, 0), n-1)
}

// setValue stores v for the selected field and recomputes. Setting a field
// back to its default drops the override.
func (a *App) setValue(v float64) {
	st := a.state()
	f := a.profile().Fields[st.cursor]
	if v == f.Default {
		delete(st.values, f.Key)
	} else {
		st.values[f.Key] = v
	}
	a.recompute(a.activeTab)
}

// stepField moves the selected field by one step, clamped to its range.
func (a *App) stepField(dir int) {
	f := a.profile().Fields[a.state().cursor]
	v := a.value(f) + float64(dir)*f.Step
	// Trim float noise from repeated 0.1 steps.
	v = math.Round(v*1e6) / 1e6
	a.setValue(f.Clamp(v))
}

func (a *App) resetCountry() {
	a.state().values = model.Values{}
	a.recompute(a.activeTab)
	a.status, a.statusErr = a.profile().Name+" reset to defaults", false
}

func newValueInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 24
	ti.Width = 18
	ti.Prompt = ""
	return ti
}

func (a App) startValueEdit() (tea.Model, tea.Cmd) {
	f := a.profile().Fields[a.state().cursor]

	ti := newValueInput()
	ti.Placeholder = strconv.FormatFloat(a.value(f), 'f', -1, 64)
	ti.Focus()

	a.editing = true
	a.input = ti
	a.status = ""
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateValueInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		raw := strings.TrimSpace(a.input.Value())
		if raw == "" {
			a.editing = false
			return a, nil
		}
		v, err := parseAmount(raw)
		if err != nil {
			a.status, a.statusErr = fmt.Sprintf("%q is not a number", raw), true
			return a, nil
		}
		a.editing = false
		a.setValue(v)
		if st := a.state(); st.err != nil {
			a.status, a.statusErr = "Invalid input, see results", true
		}
		return a, nil
	case "esc":
		a.editing = false
		a.status = ""
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// parseAmount accepts plain numbers with optional digit grouping, e.g.
// "500,000" or "1_000".
func parseAmount(s string) (float64, error) {
	s = strings.NewReplacer(",", "", "_", "", " ", "").Replace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not finite")
	}
	return v, nil
}

// renderInputsPanel renders every field of the active profile grouped by
// section, scrolled so the cursor stays visible within height lines.
func (a App) renderInputsPanel(cw, height int) string {
	t := theme.Active
	p := a.profile()
	st := a.state()

	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	changedStyle := lipgloss.NewStyle().Foreground(t.Yellow).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	padStyle := lipgloss.NewStyle().Background(t.Surface)

	innerW := components.CardInnerWidth(cw)
	valueW := 16
	labelW := max(innerW-valueW-3, 10)

	var lines []string
	cursorLine := 0
	section := ""
	for i, f := range p.Fields {
		if f.Section != section {
			section = f.Section
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, sectionStyle.Render(section))
		}

		label := fmt.Sprintf("%-*s", labelW, truncStr(f.Label, labelW))
		shown := cli.FormatField(f, a.value(f), p.CurrencySymbol, p.Decimals)
		_, changed := st.values[f.Key]

		var line string
		switch {
		case a.editing && i == st.cursor:
			line = markerStyle.Render("▸ ") + accentStyle.Render(label+" ") + a.input.View()
		case i == st.cursor:
			line = markerStyle.Render("▸ ") +
				selectedLabelStyle.Render(label+" ") +
				selectedStyle.Render(fmt.Sprintf("%*s", valueW, shown))
			if pad := innerW - lipgloss.Width(line); pad > 0 {
				line += lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad))
			}
		default:
			vs := valueStyle
			if changed {
				vs = changedStyle
			}
			line = padStyle.Render("  ") + labelStyle.Render(label+" ") + vs.Render(fmt.Sprintf("%*s", valueW, shown))
		}
		if i == st.cursor {
			cursorLine = len(lines)
		}
		lines = append(lines, line)
	}

	// Border (2) + title (1) + footer (2)
	visible := max(height-5, 3)
	start := 0
	if len(lines) > visible {
		start = min(max(cursorLine-visible/2, 0), len(lines)-visible)
		lines = lines[start : start+visible]
	}

	f := p.Fields[st.cursor]
	rangeText := fmt.Sprintf("step %s, min %s",
		cli.FormatField(f, f.Step, p.CurrencySymbol, p.Decimals),
		cli.FormatField(f, f.Min, p.CurrencySymbol, p.Decimals))
	if f.HasMax {
		rangeText += ", max " + cli.FormatField(f, f.Max, p.CurrencySymbol, p.Decimals)
	}

	body := strings.Join(lines, "\n") + "\n\n" + labelStyle.Render(truncStr(rangeText, innerW))
	return components.ContentCard(fmt.Sprintf("Inputs %d/%d", st.cursor+1, len(p.Fields)), body, cw)
}

func truncStr(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}
