// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/csv"
	"io"

	"github.com/pdiddy/paperscreen/pkg/types"
)

// Header is the CSV column order of the report.
var Header = []string{
	"PubmedID", "Title", "Publication Date",
	"Non-academic Author(s)", "Company Affiliation(s)", "Corresponding Author Email",
}

// WriteCSV writes the report to w with a header row. An absent corresponding
// author email is written as "N/A".
func WriteCSV(papers []types.FilteredPaper, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, p := range papers {
		email := "N/A"
		if p.CorrespondingEmail != nil {
			email = *p.CorrespondingEmail
		}
		row := []string{
			p.PubmedID,
			p.Title,
			p.PublicationDate,
			p.NonAcademicAuthors,
			p.CompanyAffiliations,
			email,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
