package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for the engine and its CLI.
// Values are populated from .strata.yaml, STRATA_* env vars, and CLI flags.
type Config struct {
	Namespace      string   `mapstructure:"namespace"`
	CatalogPath    string   `mapstructure:"catalog_path"`    // "" = embedded default catalog
	VocabularyPath string   `mapstructure:"vocabulary_path"` // "" = built-in vocabulary
	RecentsDB      string   `mapstructure:"recents_db"`
	TelemetryPath  string   `mapstructure:"telemetry_path"` // "" = no telemetry
	Features       []string `mapstructure:"features"`
	Permissions    bool     `mapstructure:"permissions"`
	CategoryOrder  []string `mapstructure:"category_order"` // empty = declaration order
	Verbose        bool     `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("namespace", "blockfilter")
	viper.SetDefault("catalog_path", "")
	viper.SetDefault("vocabulary_path", "")
	viper.SetDefault("recents_db", ".strata/recents.db")
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("features", []string{"vanilla"})
	viper.SetDefault("permissions", false)
	viper.SetDefault("category_order", []string{})
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.Namespace == "" {
		return Config{}, fmt.Errorf("config: namespace must not be empty")
	}
	return cfg, nil
}
