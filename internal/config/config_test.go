package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.False(t, Exists())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg := DefaultConfig()
	cfg.General.DefaultCountry = "kr"
	cfg.Appearance.Theme = "flexoki-dark"
	cfg.Overrides = Overrides{"us": {"house_cost": 650000}}

	require.NoError(t, Save(cfg))
	assert.True(t, Exists())
	assert.Equal(t, filepath.Join(dir, "lifecost", "config.toml"), Path())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "kr", got.General.DefaultCountry)
	assert.Equal(t, "flexoki-dark", got.Appearance.Theme)
	assert.Equal(t, 650000.0, got.Overrides["us"]["house_cost"])
}

func TestLoadFileRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[general\n"), 0o600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestEnvOverridesConfig(t *testing.T) {
	t.Setenv("LIFECOST_COUNTRY", "nl")
	t.Setenv("LIFECOST_ADDR", ":9000")

	e, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, "warn", e.LogLevel)

	cfg := DefaultConfig()
	e.Apply(&cfg)
	assert.Equal(t, "nl", cfg.General.DefaultCountry)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "ledger", cfg.Appearance.Theme)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LIFECOST_THEME=terminal\n"), 0o600))
	t.Setenv("LIFECOST_THEME", "")
	os.Unsetenv("LIFECOST_THEME")

	require.NoError(t, LoadDotEnv(path))
	e, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, "terminal", e.Theme)
}

func TestLoadDotEnvMissingIsFine(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
}
