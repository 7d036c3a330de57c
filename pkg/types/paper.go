// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paperscreen pipeline.
package types

// Author is one entry of a paper's author list. All fields are optional in
// the source XML; a nil pointer means the element was absent, which is
// distinct from an element that is present but empty.
type Author struct {
	LastName    *string `json:"last_name,omitempty" yaml:"last_name,omitempty"`
	ForeName    *string `json:"fore_name,omitempty" yaml:"fore_name,omitempty"`
	Initials    *string `json:"initials,omitempty" yaml:"initials,omitempty"`
	Affiliation *string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
}

// AffiliationText returns the affiliation text, or "" when absent.
func (a Author) AffiliationText() string {
	if a.Affiliation == nil {
		return ""
	}
	return *a.Affiliation
}

// Paper holds the metadata parsed from one PubmedArticle record. String
// fields are already resolved to their placeholder values when the source
// element was missing ("N/A", "No Title Found", "No Date Found"). Authors
// keep the order of the source document.
type Paper struct {
	PMID               string   `json:"pmid" yaml:"pmid"`
	Title              string   `json:"title" yaml:"title"`
	PublicationDate    string   `json:"publication_date" yaml:"publication_date"`
	Authors            []Author `json:"authors,omitempty" yaml:"authors,omitempty"`
	CorrespondingEmail *string  `json:"corresponding_author_email,omitempty" yaml:"corresponding_author_email,omitempty"`
}

// FilteredPaper is the flattened report record for a paper with at least one
// non-academic author. NonAcademicAuthors keeps discovery order and may
// contain duplicates; CompanyAffiliations is sorted and de-duplicated.
type FilteredPaper struct {
	PubmedID            string  `json:"pubmed_id" yaml:"pubmed_id"`
	Title               string  `json:"title" yaml:"title"`
	PublicationDate     string  `json:"publication_date" yaml:"publication_date"`
	NonAcademicAuthors  string  `json:"non_academic_authors" yaml:"non_academic_authors"`
	CompanyAffiliations string  `json:"company_affiliations" yaml:"company_affiliations"`
	CorrespondingEmail  *string `json:"corresponding_author_email,omitempty" yaml:"corresponding_author_email,omitempty"`
}
