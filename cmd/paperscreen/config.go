package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperscreen/pkg/types"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Config merges the config file, environment variables, and built-in defaults
and prints the result. Useful for checking which settings a run would use.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := types.PipelineConfig{
			PubMed: types.PubMedConfig{
				HTTPConfig: types.HTTPConfig{
					Timeout:   defaultTimeout,
					UserAgent: defaultUserAgent,
				},
				MaxResults: defaultMaxResults,
			},
			Logging: types.LoggingConfig{
				Level:  "info",
				Format: "console",
				Output: "stderr",
			},
		}
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("reading configuration: %w", err)
		}

		// Never print credentials.
		if cfg.PubMed.APIKey != "" {
			cfg.PubMed.APIKey = "***"
		}

		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(cfg)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
