package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/lifecost/internal/config"
	"github.com/theirongolddev/lifecost/internal/model"
	"github.com/theirongolddev/lifecost/internal/tui/theme"
)

// SetupValues holds the answers of the first-run setup form.
type SetupValues struct {
	Country string
	Theme   string
}

// ApplyTo copies the answers onto cfg.
func (v SetupValues) ApplyTo(cfg *config.Config) {
	if v.Country != "" {
		cfg.General.DefaultCountry = v.Country
	}
	if theme.Valid(v.Theme) {
		cfg.Appearance.Theme = v.Theme
	}
}

// NewSetupForm builds the setup form over the given countries. Answers are
// written to vals as the user moves through the form.
func NewSetupForm(profiles []model.Profile, vals *SetupValues) *huh.Form {
	countries := make([]huh.Option[string], 0, len(profiles))
	for _, p := range profiles {
		countries = append(countries, huh.NewOption(fmt.Sprintf("%s (%s)", p.Name, p.CurrencySymbol), p.Code))
	}
	themes := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themes = append(themes, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to lifecost!").
				Description("Estimate the income a lifestyle needs.\nPick a default country and a color theme."),
			huh.NewSelect[string]().
				Title("Default country").
				Options(countries...).
				Value(&vals.Country),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themes...).
				Value(&vals.Theme),
		),
	).WithShowHelp(true)
}

// saveSetupConfig persists the setup answers on top of the file config, so
// environment overrides active in this session are not written out.
func (a *App) saveSetupConfig() error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	a.setupVals.ApplyTo(&cfg)
	return config.Save(cfg)
}
