// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report aggregates parsed papers into the filtered industry-author
// report and serializes it as CSV, JSON, or a terminal table.
package report

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/paperscreen/internal/classify"
	"github.com/pdiddy/paperscreen/pkg/types"
)

// Filter returns a FilteredPaper for every paper with at least one author
// whose affiliation classifies as non-academic. Display names keep discovery
// order with duplicates preserved; company affiliations are collected as a
// set and joined in sorted order. Papers with no qualifying author are
// dropped. An author with a qualifying affiliation but no usable name still
// contributes the affiliation, just not a display name.
func Filter(papers []types.Paper, logger zerolog.Logger) []types.FilteredPaper {
	var filtered []types.FilteredPaper

	for _, paper := range papers {
		var names []string
		affiliations := make(map[string]struct{})

		for _, author := range paper.Authors {
			aff := author.AffiliationText()
			if aff == "" || !classify.IsNonAcademic(aff) {
				continue
			}
			affiliations[aff] = struct{}{}

			name := strings.TrimSpace(deref(author.ForeName) + " " + deref(author.LastName))
			if name != "" {
				names = append(names, name)
			}
		}

		if len(names) == 0 {
			continue
		}

		sorted := make([]string, 0, len(affiliations))
		for aff := range affiliations {
			sorted = append(sorted, aff)
		}
		sort.Strings(sorted)

		filtered = append(filtered, types.FilteredPaper{
			PubmedID:            paper.PMID,
			Title:               strings.TrimSpace(paper.Title),
			PublicationDate:     paper.PublicationDate,
			NonAcademicAuthors:  strings.Join(names, "; "),
			CompanyAffiliations: strings.Join(sorted, "; "),
			CorrespondingEmail:  paper.CorrespondingEmail,
		})
	}

	logger.Info().Int("count", len(filtered)).Msg("papers with non-academic authors")
	return filtered
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
