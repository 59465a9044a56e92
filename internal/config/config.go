// Package config loads hueshift application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application settings: where theme collections live and
// how output behaves.
type Config struct {
	ThemesFile       string `mapstructure:"themes_file"`
	WidgetThemesFile string `mapstructure:"widget_themes_file"`
	StylesheetDir    string `mapstructure:"stylesheet_dir"`
	DatabasePath     string `mapstructure:"database_path"`
	DefaultTheme     string `mapstructure:"default_theme"`
	Backup           bool   `mapstructure:"backup"`
	NoColor          bool   `mapstructure:"no_color"`
	LogLevel         string `mapstructure:"log_level"`
}

// Load reads configuration from an explicit file, or from
// ~/.config/hueshift/config.yaml when path is empty, then applies
// HUESHIFT_* environment overrides. A missing config file is fine;
// defaults cover everything.
func Load(path string) (*Config, error) {
	v := viper.New()

	dataDir := defaultDataDir()
	v.SetDefault("themes_file", filepath.Join(dataDir, "themes.json"))
	v.SetDefault("widget_themes_file", filepath.Join(dataDir, "widget_themes.json"))
	v.SetDefault("stylesheet_dir", filepath.Join(dataDir, "stylesheets"))
	v.SetDefault("database_path", filepath.Join(dataDir, "library.db"))
	v.SetDefault("default_theme", "Default Dark")
	v.SetDefault("backup", true)
	v.SetDefault("no_color", false)
	v.SetDefault("log_level", "warn")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "hueshift"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("HUESHIFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "hueshift")
}
