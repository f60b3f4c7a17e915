// Package tui provides the interactive Bubble Tea calculator for lifecost.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/lifecost/internal/config"
	"github.com/theirongolddev/lifecost/internal/model"
	"github.com/theirongolddev/lifecost/internal/pipeline"
	"github.com/theirongolddev/lifecost/internal/tui/components"
	"github.com/theirongolddev/lifecost/internal/tui/theme"
)

var log = logrus.WithField("module", "tui")

// Options configures a new App.
type Options struct {
	Profiles []model.Profile
	Country  string // initial tab, by code or name
	Config   config.Config
	FirstRun bool // show the setup form before the calculator
}

type pane int

const (
	paneInputs pane = iota
	paneResults
)

// countryState is the in-memory state of one country tab. Values hold only
// the fields the user changed; everything else reads the profile default.
type countryState struct {
	values   model.Values
	estimate model.Estimate
	err      error
	cursor   int // index into the profile's fields
}

// App is the root Bubble Tea model.
type App struct {
	profiles  []model.Profile
	tabs      []components.Tab
	states    []countryState
	activeTab int

	// UI state
	width    int
	height   int
	showHelp bool
	pane     pane // which pane the compact layout shows

	// Value editing
	editing bool
	input   textinput.Model

	// Status bar message
	status    string
	statusErr bool

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals SetupValues
	needSetup bool
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	minContentHeight = 5 // minimum content area height
)

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	names := make([]string, len(opts.Profiles))
	for i, p := range opts.Profiles {
		names[i] = p.Name
	}

	a := App{
		profiles: opts.Profiles,
		tabs:     components.NumberedTabs(names),
		states:   make([]countryState, len(opts.Profiles)),
	}
	for i := range a.states {
		a.states[i].values = model.Values{}
		a.recompute(i)
	}
	a.selectCountry(opts.Country)

	if opts.FirstRun {
		a.needSetup = true
		a.setupVals = SetupValues{
			Country: opts.Config.General.DefaultCountry,
			Theme:   opts.Config.Appearance.Theme,
		}
		a.setupForm = NewSetupForm(opts.Profiles, &a.setupVals)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.Init()
	}
	return nil
}

func (a *App) selectCountry(s string) {
	for i, p := range a.profiles {
		if p.Matches(s) {
			a.activeTab = i
			return
		}
	}
}

// recompute rebuilds the estimate for tab i from its current values.
func (a *App) recompute(i int) {
	st := &a.states[i]
	st.estimate, st.err = pipeline.Estimate(a.profiles[i], st.values)
	if st.err != nil {
		log.WithError(st.err).WithField("country", a.profiles[i].Code).Debug("estimate failed")
	}
}

func (a App) profile() model.Profile {
	return a.profiles[a.activeTab]
}

func (a App) state() *countryState {
	return &a.states[a.activeTab]
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(a.profiles) == 0 {
		if k, ok := msg.(tea.KeyMsg); ok && (k.String() == "ctrl+c" || k.String() == "q") {
			return a, tea.Quit
		}
		return a, nil
	}

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Forward to setup form if active
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.editing || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.moveCursor(-1)
		case tea.MouseButtonWheelDown:
			a.moveCursor(1)
		case tea.MouseButtonLeft:
			// Tab bar is the first line
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if a.editing {
			return a.updateValueInput(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		a.status = ""
		switch key {
		case "q":
			return a, tea.Quit
		case "left", "h":
			a.activeTab = (a.activeTab - 1 + len(a.tabs)) % len(a.tabs)
		case "right", "l":
			a.activeTab = (a.activeTab + 1) % len(a.tabs)
		case "tab":
			if a.pane == paneInputs {
				a.pane = paneResults
			} else {
				a.pane = paneInputs
			}
		case "j", "down":
			a.moveCursor(1)
		case "k", "up":
			a.moveCursor(-1)
		case "g", "home":
			a.state().cursor = 0
		case "G", "end":
			a.state().cursor = len(a.profile().Fields) - 1
		case "+", "=":
			a.stepField(1)
		case "-", "_":
			a.stepField(-1)
		case "enter", "e":
			return a.startValueEdit()
		case "d":
			a.resetCountry()
		default:
			if runes := []rune(key); len(runes) == 1 {
				if idx := components.TabIdxByKey(a.tabs, runes[0]); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.editing {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		if err := a.saveSetupConfig(); err != nil {
			a.status, a.statusErr = fmt.Sprintf("Could not save config: %s", err), true
		} else {
			a.status, a.statusErr = "Saved "+config.Path(), false
		}
		theme.SetActive(a.setupVals.Theme)
		a.selectCountry(a.setupVals.Country)
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if len(a.profiles) == 0 {
		return "\n  No countries configured.\n"
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  lifecost needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{fmt.Sprintf("1-%d", min(len(a.tabs), 9)), "Jump to country"},
			{"← → h l", "Previous / Next country"},
			{"j k", "Move between inputs"},
			{"g G", "First / Last input"},
			{"Tab", "Switch pane (narrow terminals)"},
		}},
		{"Editing", []struct{ key, desc string }{
			{"+ -", "Step the selected input"},
			{"Enter", "Type a value"},
			{"Esc", "Cancel typing"},
			{"d", "Reset country to defaults"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + country info line
	infoStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	infoAccent := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	p := a.profile()
	info := infoStyle.Render(" ") + infoAccent.Render(p.Name) +
		infoStyle.Render(fmt.Sprintf(" │ currency %s │ %d inputs", p.CurrencySymbol, len(p.Fields)))
	if n := len(a.state().values); n > 0 {
		info += infoStyle.Render(" │ ") + infoAccent.Render(fmt.Sprintf("%d changed", n))
	}
	infoRow := lipgloss.NewStyle().Background(t.Surface).Width(w).Render(info)

	header := components.RenderTabBar(a.tabs, a.activeTab, w) + "\n" + infoRow

	// 2. Status bar
	hints := "[?]help  [j/k]move  [+/-]adjust  [enter]edit  [d]efaults  [q]uit"
	if a.editing {
		hints = "[enter]apply  [esc]cancel"
	} else if a.isCompactLayout() {
		hints = "[?]help  [tab]pane  [+/-]adjust  [enter]edit  [q]uit"
	}
	statusBar := components.RenderStatusBar(w, hints, a.status, a.statusErr)

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Panels
	var content string
	if a.isCompactLayout() {
		if a.pane == paneInputs {
			content = a.renderInputsPanel(cw, contentH)
		} else {
			content = a.renderResults(cw)
		}
	} else {
		widths := []int{cw * 2 / 5, cw - cw*2/5}
		content = components.CardRow([]string{
			a.renderInputsPanel(widths[0], contentH),
			a.renderResults(widths[1]),
		})
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Center when w > cw
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same rendering used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range a.tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(a.tabs)-1 {
			pos++
		}
	}
	return -1
}
