package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig
	History HistoryConfig
}

// UIConfig holds editor defaults applied to new scores.
type UIConfig struct {
	DefaultClef string `mapstructure:"default_clef"`
	DefaultTime string `mapstructure:"default_time"`
}

// HistoryConfig holds the recent-files database settings.
type HistoryConfig struct {
	Path string
}

// Load reads configuration from file and env. Env var overrides use prefix VIMVALDI_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.default_clef", "treble")
	v.SetDefault("ui.default_time", "4/4")
	v.SetDefault("history.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "vimvaldi", "history.db"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("VIMVALDI_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "vimvaldi"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("VIMVALDI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
