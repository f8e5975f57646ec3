package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "strata",
	Short: "Partition a creative item catalog into curated categories",
	Long: `Strata drains items out of a catalog's creative groups into curated
categories (wood, stone, copper and more) and arranges each category by
family, shape and variant.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default .strata.yaml)")
	pf.BoolP("verbose", "v", false, "verbose output")
	pf.String("catalog", "", "catalog TOML file (default: embedded catalog)")
	pf.String("vocabulary", "", "vocabulary TOML file (default: built-in vocabulary)")
	pf.StringSlice("features", nil, "enabled feature flags (default [vanilla])")
	pf.Bool("permissions", false, "show operator-only content")
	pf.String("telemetry", "", "append JSONL events to this file")

	for key, flag := range map[string]string{
		"verbose":         "verbose",
		"catalog_path":    "catalog",
		"vocabulary_path": "vocabulary",
		"features":        "features",
		"permissions":     "permissions",
		"telemetry_path":  "telemetry",
	} {
		_ = viper.BindPFlag(key, pf.Lookup(flag))
	}
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".strata")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("STRATA")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
