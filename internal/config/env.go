package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env holds LIFECOST_* environment overrides. Set values win over the file.
type Env struct {
	Country      string `env:"LIFECOST_COUNTRY"`
	Theme        string `env:"LIFECOST_THEME"`
	Addr         string `env:"LIFECOST_ADDR"`
	ProfilesFile string `env:"LIFECOST_PROFILES"`
	LogLevel     string `env:"LIFECOST_LOG_LEVEL" envDefault:"warn"`
}

// LoadDotEnv loads .env files into the process environment without
// overwriting variables that are already set. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// ParseEnv reads LIFECOST_* variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Apply copies the set environment overrides onto cfg.
func (e Env) Apply(cfg *Config) {
	if e.Country != "" {
		cfg.General.DefaultCountry = e.Country
	}
	if e.Theme != "" {
		cfg.Appearance.Theme = e.Theme
	}
	if e.Addr != "" {
		cfg.Server.Addr = e.Addr
	}
	if e.ProfilesFile != "" {
		cfg.General.ProfilesFile = e.ProfilesFile
	}
}
