package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/lifecost/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := appCfg

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default country: %s\n", cfg.General.DefaultCountry)
	if cfg.General.ProfilesFile != "" {
		fmt.Printf("    Profiles file:   %s\n", cfg.General.ProfilesFile)
	}
	fmt.Printf("    Countries:       %d loaded\n", len(profiles))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address: %s\n", cfg.Server.Addr)
	fmt.Println()

	if len(cfg.Overrides) > 0 {
		fmt.Println("  [Overrides]")
		codes := make([]string, 0, len(cfg.Overrides))
		for code := range cfg.Overrides {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			keys := make([]string, 0, len(cfg.Overrides[code]))
			for k := range cfg.Overrides[code] {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Printf("    %s.%s = %g\n", code, k, cfg.Overrides[code][k])
			}
		}
		fmt.Println()
	}

	fmt.Println("  Run `lifecost setup` to reconfigure.")
	return nil
}
