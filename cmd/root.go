// Package cmd implements the lifecost CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/lifecost/internal/config"
	"github.com/theirongolddev/lifecost/internal/model"
	"github.com/theirongolddev/lifecost/internal/pipeline"
)

var (
	flagCountry  string
	flagProfiles string
	flagLogLevel string
)

// Loaded once per invocation by loadEnvironment.
var (
	appCfg   config.Config
	profiles []model.Profile
)

var log = logrus.WithField("module", "cmd")

var rootCmd = &cobra.Command{
	Use:   "lifecost",
	Short: "Lifestyle cost calculator",
	Long: "Estimate the gross monthly and annual income needed to sustain a lifestyle\n" +
		"in the USA, the Netherlands, South Africa or South Korea.",
	PersistentPreRunE: loadEnvironment,
	RunE:              runEstimate,
	SilenceUsage:      true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagCountry, "country", "c", "", "Country code or name (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagProfiles, "profiles", "", "Extra country table (YAML)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	addEstimateFlags(rootCmd)
}

// loadEnvironment resolves configuration in order: config file, .env and
// LIFECOST_* variables, then flags.
func loadEnvironment(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	env, err := config.ParseEnv()
	if err != nil {
		return err
	}

	level := env.LogLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	if err := setupLogging(level); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	env.Apply(&cfg)
	if flagCountry != "" {
		cfg.General.DefaultCountry = flagCountry
	}
	if flagProfiles != "" {
		cfg.General.ProfilesFile = flagProfiles
	}
	appCfg = cfg

	profiles, err = config.LoadProfiles(cfg.General.ProfilesFile, cfg.Overrides)
	if err != nil {
		return fmt.Errorf("loading countries: %w", err)
	}
	log.WithFields(logrus.Fields{
		"command":   cmd.Name(),
		"countries": len(profiles),
		"config":    config.Path(),
	}).Debug("environment loaded")
	return nil
}

func setupLogging(level string) error {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.0000",
	})
	logrus.SetLevel(lvl)
	return nil
}

// selectedProfile returns the profile named by --country or the configured
// default country.
func selectedProfile() (model.Profile, error) {
	return pipeline.FindProfile(profiles, appCfg.General.DefaultCountry)
}
