package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromWritesDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "trapdata")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)

	_, err = os.Stat(filepath.Join(dir, configFile))
	assert.NoError(t, err)
}

func TestLoadFromReadsFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, configFile),
		[]byte(`{"title":"Trap","width":800,"debug":true}`),
		0600,
	))

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "Trap", cfg.Title)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 768, cfg.Height)
	assert.Equal(t, "127.0.0.1:0", cfg.ListenAddr)
	assert.True(t, cfg.Debug)
}

func TestLoadFromNonPositiveSize(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, configFile),
		[]byte(`{"width":0,"height":-20}`),
		0600,
	))

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, Default().Width, cfg.Width)
	assert.Equal(t, Default().Height, cfg.Height)
}

func TestLoadFromBadJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFile), []byte("{"), 0600))

	_, err := LoadFrom(dir)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TRAPDATA_LISTEN_ADDR", "127.0.0.1:3000")
	t.Setenv("TRAPDATA_TITLE", "Override")
	t.Setenv("TRAPDATA_DEBUG", "true")
	t.Setenv("TRAPDATA_BROWSER", "1")

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:3000", cfg.ListenAddr)
	assert.Equal(t, "Override", cfg.Title)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.Browser)
}

func TestEnvOverrideInvalidBool(t *testing.T) {
	t.Setenv("TRAPDATA_DEBUG", "sometimes")

	_, err := LoadFrom(t.TempDir())
	assert.ErrorContains(t, err, "TRAPDATA_DEBUG")
}

func TestLoadUsesUserConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on linux")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultTitle, cfg.Title)
}
