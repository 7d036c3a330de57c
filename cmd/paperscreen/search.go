package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperscreen/internal/pubmed"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search PubMed and print the matching PMIDs",
	Long: `Search runs only the esearch step of the pipeline and prints the matching
PubMed IDs, one per line. Useful for inspecting what a query matches before
running the full report.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("max-results", 0, "maximum number of PMIDs to return (default 100)")
	searchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	searchCmd.Flags().Bool("json", false, "output PMIDs as a JSON array")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := pubmedConfig(cmd)

	client := &pubmed.Client{
		HTTP:   &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
		Logger: logger,
	}

	pmids, err := client.Search(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if len(pmids) == 0 {
		fmt.Fprintln(os.Stderr, "No papers found.")
		return errNoMatch
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(pmids)
	}
	for _, pmid := range pmids {
		fmt.Println(pmid)
	}
	return nil
}
