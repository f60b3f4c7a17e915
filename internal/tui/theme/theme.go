// Package theme defines color themes for the lifecost TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme holds the color roles the calculator draws with.
type Theme struct {
	Name          string
	Background    lipgloss.Color // app background
	Surface       lipgloss.Color // cards and panels
	SurfaceHover  lipgloss.Color // active tab
	SurfaceBright lipgloss.Color // selected input row
	Border        lipgloss.Color
	BorderAccent  lipgloss.Color // help overlay
	TextDim       lipgloss.Color // hints, zero amounts, empty bar track
	TextMuted     lipgloss.Color // labels
	TextPrimary   lipgloss.Color // values
	Accent        lipgloss.Color // section headings, active country
	AccentBright  lipgloss.Color // titles, annual income
	Cyan          lipgloss.Color // key bindings

	// Income and share colors. Green is money coming in; the share bars
	// warm from Green through Yellow and Orange to Red as a category
	// takes more of the budget.
	Green       lipgloss.Color
	GreenBright lipgloss.Color
	Yellow      lipgloss.Color
	Orange      lipgloss.Color
	Red         lipgloss.Color
}

// Ledger is the default theme: dark slate with banknote greens.
var Ledger = Theme{
	Name:          "ledger",
	Background:    lipgloss.Color("#0E1412"),
	Surface:       lipgloss.Color("#17201C"),
	SurfaceHover:  lipgloss.Color("#223029"),
	SurfaceBright: lipgloss.Color("#2C3D34"),
	Border:        lipgloss.Color("#3A4A42"),
	BorderAccent:  lipgloss.Color("#4FB286"),
	TextDim:       lipgloss.Color("#56665E"),
	TextMuted:     lipgloss.Color("#8FA39A"),
	TextPrimary:   lipgloss.Color("#EEF4EF"),
	Accent:        lipgloss.Color("#4FB286"),
	AccentBright:  lipgloss.Color("#7BD8AE"),
	Cyan:          lipgloss.Color("#5FB7C9"),
	Green:         lipgloss.Color("#6DA34D"),
	GreenBright:   lipgloss.Color("#9BD46F"),
	Yellow:        lipgloss.Color("#D9B44A"),
	Orange:        lipgloss.Color("#E08A3C"),
	Red:           lipgloss.Color("#D9534F"),
}

// FlexokiDark is a warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    lipgloss.Color("#100F0F"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceHover:  lipgloss.Color("#282726"),
	SurfaceBright: lipgloss.Color("#343331"),
	Border:        lipgloss.Color("#403E3C"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Accent:        lipgloss.Color("#3AA99F"),
	AccentBright:  lipgloss.Color("#5BC8BE"),
	Cyan:          lipgloss.Color("#24837B"),
	Green:         lipgloss.Color("#879A39"),
	GreenBright:   lipgloss.Color("#A3B859"),
	Yellow:        lipgloss.Color("#D0A215"),
	Orange:        lipgloss.Color("#DA702C"),
	Red:           lipgloss.Color("#D14D41"),
}

// Terminal sticks to the ANSI 16 colors.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),
	Cyan:          lipgloss.Color("6"),
	Green:         lipgloss.Color("2"),
	GreenBright:   lipgloss.Color("10"),
	Yellow:        lipgloss.Color("3"),
	Orange:        lipgloss.Color("11"),
	Red:           lipgloss.Color("1"),
}

// All lists the selectable themes; the first is the default.
var All = []Theme{Ledger, FlexokiDark, Terminal}

// Active is the theme every view renders with.
var Active = All[0]

// Names returns the theme names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// Valid reports whether name is a known theme.
func Valid(name string) bool {
	for _, t := range All {
		if t.Name == name {
			return true
		}
	}
	return false
}

// ByName returns the named theme, or the default for unknown names.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return All[0]
}

// SetActive switches the active theme.
func SetActive(name string) {
	Active = ByName(name)
}
