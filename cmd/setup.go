package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/lifecost/internal/config"
	"github.com/theirongolddev/lifecost/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Start from the file on disk so env overrides are not persisted.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	vals := tui.SetupValues{
		Country: cfg.General.DefaultCountry,
		Theme:   cfg.Appearance.Theme,
	}
	if err := tui.NewSetupForm(profiles, &vals).Run(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	vals.ApplyTo(&cfg)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `lifecost setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
