// Package config holds the small persisted tool configuration: the
// default workspace root and the log level.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

const (
	AppName        = "pdkscan"
	ConfigFileName = "config"
	ConfigFileExt  = "yaml"
)

// Config is everything pdkscan persists between invocations outside
// the scan cache.
type Config struct {
	WorkspaceRoot string `mapstructure:"workspace_root"`
	LogLevel      string `mapstructure:"log_level"`
}

// Dir returns the configuration directory using platform conventions:
// %APPDATA% on Windows, ~/Library/Application Support on macOS, and
// $XDG_CONFIG_HOME (default ~/.config) elsewhere.
func Dir() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		base = filepath.Join(home, "Library", "Application Support")
	default:
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("resolve home directory: %w", err)
			}
			base = filepath.Join(home, ".config")
		}
	}
	return filepath.Join(base, AppName), nil
}

// Load reads the config file, returning defaults when none exists.
// Values can be overridden through PDKSCAN_* environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileExt)
	v.SetEnvPrefix("PDKSCAN")
	v.AutomaticEnv()
	v.SetDefault("workspace_root", "")
	v.SetDefault("log_level", "info")

	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Save writes the config file, creating the directory if needed.
func Save(cfg *Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	v := viper.New()
	v.Set("workspace_root", cfg.WorkspaceRoot)
	v.Set("log_level", cfg.LogLevel)
	return v.WriteConfigAs(filepath.Join(dir, ConfigFileName+"."+ConfigFileExt))
}
