package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperscreen/internal/pubmed"
	"github.com/pdiddy/paperscreen/internal/report"
	"github.com/pdiddy/paperscreen/internal/runfile"
	"github.com/pdiddy/paperscreen/pkg/types"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultUserAgent  = "paperscreen/0.1"
	defaultMaxResults = 100
)

var reportCmd = &cobra.Command{
	Use:   "report [query]",
	Short: "Fetch papers and report those with non-academic authors",
	Long: `Report runs the full pipeline: search PubMed for the query, fetch article
metadata, classify author affiliations, and write a CSV of the papers that
have at least one non-academic author. The CSV goes to stdout unless --file
is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringP("file", "f", "", "write the report to this file instead of stdout")
	reportCmd.Flags().Int("max-results", 0, "maximum number of papers to fetch (default 100)")
	reportCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	reportCmd.Flags().String("save", "", "save the run (query, PMIDs, results) to a YAML file")
	reportCmd.Flags().Bool("json", false, "output results as JSON instead of CSV")
	reportCmd.Flags().Bool("table", false, "output results as a human-readable table")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	query := args[0]
	cfg := pubmedConfig(cmd)
	ctx := cmd.Context()

	client := &pubmed.Client{
		HTTP:   &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
		Logger: logger,
	}

	pmids, err := client.Search(ctx, query)
	if err != nil {
		return err
	}
	if len(pmids) == 0 {
		fmt.Fprintln(os.Stderr, "No papers found.")
		return errNoMatch
	}

	xmlData, err := client.FetchArticleSet(ctx, pmids)
	if err != nil {
		return err
	}

	papers, err := pubmed.ParseArticleSet(xmlData, logger)
	if err != nil {
		return err
	}

	filtered := report.Filter(papers, logger)

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		if err := runfile.Write(path, query, cfg, pmids, len(papers), filtered); err != nil {
			return err
		}
		logger.Info().Str("path", path).Msg("run saved")
	}

	if len(filtered) == 0 {
		fmt.Fprintln(os.Stderr, "Found papers, but none matched the non-academic author criteria.")
		return errNoMatch
	}

	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		path = viper.GetString("report.output_file")
	}

	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return report.FormatJSON(filtered, out)
	}
	if asTable, _ := cmd.Flags().GetBool("table"); asTable {
		report.FormatTable(filtered, out)
		return nil
	}

	if err := report.WriteCSV(filtered, out); err != nil {
		return err
	}
	if out != os.Stdout {
		logger.Info().Str("path", out.Name()).Int("papers", len(filtered)).Msg("report saved")
	}
	return nil
}

// pubmedConfig merges command flags, config file values, and defaults, in
// that order of precedence.
func pubmedConfig(cmd *cobra.Command) types.PubMedConfig {
	cfg := types.PubMedConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   defaultTimeout,
			UserAgent: defaultUserAgent,
		},
		MaxResults: defaultMaxResults,
	}

	if v := viper.GetDuration("pubmed.timeout"); v > 0 {
		cfg.Timeout = v
	}
	if v := viper.GetString("pubmed.user_agent"); v != "" {
		cfg.UserAgent = v
	}
	if v := viper.GetInt("pubmed.max_results"); v > 0 {
		cfg.MaxResults = v
	}

	if v, err := cmd.Flags().GetDuration("timeout"); err == nil && v > 0 {
		cfg.Timeout = v
	}
	if v, err := cmd.Flags().GetInt("max-results"); err == nil && v > 0 {
		cfg.MaxResults = v
	}

	cfg.APIKey = secretDefault("ncbi-api-key", viper.GetString("pubmed.api_key"))
	return cfg
}
