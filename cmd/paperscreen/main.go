// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paperscreen CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperscreen/internal/observability"
	"github.com/pdiddy/paperscreen/internal/secrets"
	"github.com/pdiddy/paperscreen/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// logger is shared by all subcommands; configured in PersistentPreRunE.
var logger zerolog.Logger

// secretDefault returns fallback when non-empty, or the named secret otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the paperscreen CLI.
var rootCmd = &cobra.Command{
	Use:   "paperscreen",
	Short: "Find PubMed papers with pharma and biotech authors",
	Long: `paperscreen searches PubMed for papers matching a query, classifies each
author's affiliation as academic or industry using keyword heuristics, and
reports the papers that have at least one company-affiliated author as CSV.

The report goes to stdout (or --file); diagnostics go to stderr.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s

		logCfg := types.LoggingConfig{
			Level:  viper.GetString("logging.level"),
			Format: viper.GetString("logging.format"),
			Output: "stderr",
		}
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			logCfg.Level = "debug"
		}
		logger = observability.NewLogger(logCfg)

		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			logger.Debug().Strs("keys", keys).Msg("loaded secrets")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paperscreen.yaml or ~/.config/paperscreen/config.yaml)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "print debug information during execution")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paperscreen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paperscreen"))
		}
	}

	viper.SetEnvPrefix("PAPERSCREEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errNoMatch) {
			os.Exit(ExitNoMatch)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(ExitError)
	}
}
