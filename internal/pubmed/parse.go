// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"encoding/xml"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/paperscreen/pkg/types"
)

// Placeholder values for fields missing from the source XML. A missing
// PubDate node yields missingDate, while a PubDate node whose Year, Month,
// and Day children are all absent yields "N/A-N/A-N/A". Downstream consumers
// rely on that distinction.
const (
	missingPMID  = "N/A"
	missingTitle = "No Title Found"
	missingDate  = "No Date Found"
	missingPart  = "N/A"
)

// emailTrimSet is stripped from both ends of an email candidate token.
const emailTrimSet = ".,;()[]"

// ParseError reports that an efetch payload could not be decoded as XML.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "parsing article set: " + e.Err.Error() }

func (e *ParseError) Unwrap() error { return e.Err }

// ParseArticleSet decodes an efetch XML payload into Paper records in
// document order. An empty payload yields no papers and no error. Malformed
// XML yields a *ParseError; missing fields within a well-formed document are
// never errors and resolve to their placeholder values.
func ParseArticleSet(data string, logger zerolog.Logger) ([]types.Paper, error) {
	if data == "" {
		return nil, nil
	}

	var set articleSet
	if err := xml.Unmarshal([]byte(data), &set); err != nil {
		return nil, &ParseError{Err: err}
	}

	var papers []types.Paper
	for _, article := range set.Articles {
		papers = append(papers, article.toPaper())
	}

	logger.Info().Int("count", len(papers)).Msg("parsed article set")
	return papers, nil
}

func (a pubmedArticle) toPaper() types.Paper {
	p := types.Paper{
		PMID:  missingPMID,
		Title: missingTitle,
	}
	if a.Citation.PMID != nil {
		p.PMID = *a.Citation.PMID
	}
	if a.Citation.Article.Title != nil {
		p.Title = *a.Citation.Article.Title
	}
	p.PublicationDate = formatPubDate(a.Citation.Article.Journal.Issue.PubDate)

	if al := a.Citation.Article.AuthorList; al != nil {
		p.CorrespondingEmail = scanForEmail(al.Authors)
		for _, node := range al.Authors {
			p.Authors = append(p.Authors, node.toAuthor())
		}
	}
	return p
}

// formatPubDate composes "Year-Month-Day" with per-part placeholders.
func formatPubDate(d *pubDate) string {
	if d == nil {
		return missingDate
	}
	year, month, day := missingPart, missingPart, missingPart
	if d.Year != nil {
		year = *d.Year
	}
	if d.Month != nil {
		month = *d.Month
	}
	if d.Day != nil {
		day = *d.Day
	}
	return year + "-" + month + "-" + day
}

// scanForEmail returns the first whitespace-delimited token containing "@"
// across all author affiliations in document order, trimmed of surrounding
// punctuation. The scan is textual only; the token is not validated as an
// address and need not belong to the actual corresponding author.
func scanForEmail(authors []authorNode) *string {
	for _, a := range authors {
		for _, info := range a.Affiliations {
			for _, tok := range strings.Fields(info.Affiliation) {
				if strings.Contains(tok, "@") {
					email := strings.Trim(tok, emailTrimSet)
					return &email
				}
			}
		}
	}
	return nil
}

func (n authorNode) toAuthor() types.Author {
	a := types.Author{
		LastName: n.LastName,
		ForeName: n.ForeName,
		Initials: n.Initials,
	}
	// Only the first affiliation is kept per author.
	if len(n.Affiliations) > 0 {
		aff := n.Affiliations[0].Affiliation
		a.Affiliation = &aff
	}
	return a
}

// PubMed efetch XML structures.
type articleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	Citation medlineCitation `xml:"MedlineCitation"`
}

type medlineCitation struct {
	PMID    *string       `xml:"PMID"`
	Article articleRecord `xml:"Article"`
}

type articleRecord struct {
	Title      *string     `xml:"ArticleTitle"`
	Journal    journalInfo `xml:"Journal"`
	AuthorList *authorList `xml:"AuthorList"`
}

type journalInfo struct {
	Issue journalIssue `xml:"JournalIssue"`
}

type journalIssue struct {
	PubDate *pubDate `xml:"PubDate"`
}

type pubDate struct {
	Year  *string `xml:"Year"`
	Month *string `xml:"Month"`
	Day   *string `xml:"Day"`
}

type authorList struct {
	Authors []authorNode `xml:"Author"`
}

type authorNode struct {
	LastName     *string           `xml:"LastName"`
	ForeName     *string           `xml:"ForeName"`
	Initials     *string           `xml:"Initials"`
	Affiliations []affiliationInfo `xml:"AffiliationInfo"`
}

type affiliationInfo struct {
	Affiliation string `xml:"Affiliation"`
}
