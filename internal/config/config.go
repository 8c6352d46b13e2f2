package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
)

const (
	appName    = "trapdata"
	configFile = "config.json"

	DefaultTitle = "AMI Trap Data Companion"
)

type Config struct {
	ListenAddr string `json:"listen_addr"`
	Title      string `json:"title"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Debug      bool   `json:"debug"`
	Browser    bool   `json:"browser"`
}

func Default() Config {
	return Config{
		ListenAddr: "127.0.0.1:0",
		Title:      DefaultTitle,
		Width:      1040,
		Height:     768,
	}
}

// Load reads the config file from the user config directory, writing the
// defaults there on first run, then applies environment overrides.
func Load() (*Config, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(filepath.Join(configDir, appName))
}

func LoadFrom(appDir string) (*Config, error) {
	path := filepath.Join(appDir, configFile)
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err := os.MkdirAll(appDir, 0700); err != nil {
			return nil, err
		}
		out, _ := json.MarshalIndent(cfg, "", "  ")
		if err := os.WriteFile(path, out, 0600); err != nil {
			return nil, err
		}
		slog.Info("generated new config", "path", path)
	default:
		return nil, err
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	cfg.normalize()
	return &cfg, nil
}

// normalize replaces window sizes the window cannot use with the defaults.
func (c *Config) normalize() {
	def := Default()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("TRAPDATA_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("TRAPDATA_TITLE"); v != "" {
		cfg.Title = v
	}
	if v := os.Getenv("TRAPDATA_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TRAPDATA_DEBUG: %w", err)
		}
		cfg.Debug = b
	}
	if v := os.Getenv("TRAPDATA_BROWSER"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TRAPDATA_BROWSER: %w", err)
		}
		cfg.Browser = b
	}
	return nil
}
