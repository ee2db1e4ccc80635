// Package config loads the onboard client configuration from defaults,
// an optional ~/.onboard/config.yaml, and ONBOARD_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete onboard client configuration.
type Config struct {
	API       APIConfig       `mapstructure:"api"`
	Downloads DownloadsConfig `mapstructure:"downloads"`
	TUI       TUIConfig       `mapstructure:"tui"`
}

// APIConfig controls how the REST backend is reached.
type APIConfig struct {
	// BaseURL is the root of the onboarding API, without a trailing slash.
	BaseURL string `mapstructure:"base_url"`
}

// DownloadsConfig controls where exported CSVs and generated documents land.
type DownloadsConfig struct {
	// Dir receives exported and generated files. Created on demand.
	Dir string `mapstructure:"dir"`
}

// TUIConfig controls terminal UI behavior.
type TUIConfig struct {
	// ToastSeconds is how long a notification stays on screen.
	ToastSeconds int `mapstructure:"toast_seconds"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	downloadDir := "."
	if home, err := os.UserHomeDir(); err == nil {
		downloadDir = filepath.Join(home, "Downloads")
	}
	return Config{
		API:       APIConfig{BaseURL: "http://localhost:5000"},
		Downloads: DownloadsConfig{Dir: downloadDir},
		TUI:       TUIConfig{ToastSeconds: 4},
	}
}

// SetDefaults registers default values with viper.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("api.base_url", d.API.BaseURL)
	v.SetDefault("downloads.dir", d.Downloads.Dir)
	v.SetDefault("tui.toast_seconds", d.TUI.ToastSeconds)
}

// Load reads configuration from ~/.onboard/config.yaml (if present) and the
// environment, over the defaults. A missing config file is not an error.
func Load() (Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".onboard"))
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("ONBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")
	if cfg.TUI.ToastSeconds <= 0 {
		cfg.TUI.ToastSeconds = Defaults().TUI.ToastSeconds
	}
	return cfg, nil
}

// ToastDuration returns the configured toast lifetime.
func (c Config) ToastDuration() time.Duration {
	return time.Duration(c.TUI.ToastSeconds) * time.Second
}
