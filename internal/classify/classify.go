// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides whether a free-text affiliation string belongs to
// an academic institution or to industry.
package classify

import "strings"

// academicKeywords mark an affiliation as academic when they appear anywhere
// in the lowercased string.
var academicKeywords = []string{
	"university", "college", "hospital", "institute", "school of",
	"department of", "faculty of", "center for", "research center",
}

// companyKeywords mark an affiliation as industry. A match requires the
// keyword to follow a space or comma so corporate suffixes like "Inc" and
// "Ltd" are caught mid-string. Company matches take priority over academic
// matches.
var companyKeywords = []string{
	"inc", "ltd", "gmbh", "corp", "pharmaceuticals", "therapeutics",
	"biopharma", "biotech", "diagnostics", "ventures", "llc",
}

// IsNonAcademic reports whether the affiliation looks like a company rather
// than an academic institution. An empty affiliation is academic. When no
// keyword from either list matches, the affiliation counts as non-academic:
// that catches small companies without a corporate suffix, at the cost of
// misclassifying academic departments that name neither their university nor
// a listed unit.
func IsNonAcademic(affiliation string) bool {
	if affiliation == "" {
		return false
	}

	lower := strings.ToLower(affiliation)

	for _, kw := range companyKeywords {
		if strings.Contains(lower, " "+kw) || strings.Contains(lower, ","+kw) {
			return true
		}
	}

	for _, kw := range academicKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}

	return true
}
