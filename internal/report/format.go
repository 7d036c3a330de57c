package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/paperscreen/pkg/types"
)

// FormatTable writes the filtered papers as a human-readable table to w.
func FormatTable(papers []types.FilteredPaper, w io.Writer) {
	if len(papers) == 0 {
		fmt.Fprintln(w, "No papers with non-academic authors found.")
		return
	}

	fmt.Fprintf(w, "%-10s  %-50s  %-12s  %-30s  %s\n",
		"PMID", "Title", "Date", "Non-academic Author(s)", "Company Affiliation(s)")
	fmt.Fprintln(w, strings.Repeat("-", 130))

	for _, p := range papers {
		fmt.Fprintf(w, "%-10s  %-50s  %-12s  %-30s  %s\n",
			p.PubmedID,
			truncate(p.Title, 50),
			truncate(p.PublicationDate, 12),
			truncate(p.NonAcademicAuthors, 30),
			p.CompanyAffiliations)
	}

	fmt.Fprintf(w, "\n%d paper(s)\n", len(papers))
}

// FormatJSON writes the filtered papers as indented JSON to w.
func FormatJSON(papers []types.FilteredPaper, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(papers)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
