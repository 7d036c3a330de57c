// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed queries the NCBI E-utilities API and parses efetch article
// sets into structured paper records.
package pubmed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/paperscreen/pkg/types"
)

// E-utilities endpoints. Declared as vars so tests can substitute an
// httptest server.
var (
	esearchAPIBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	efetchAPIBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

// Client talks to PubMed through the esearch and efetch endpoints.
type Client struct {
	HTTP   *http.Client
	Config types.PubMedConfig
	Logger zerolog.Logger
}

// Search runs an esearch query and returns the matching PMIDs in rank order.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	maxResults := c.Config.MaxResults
	if maxResults <= 0 {
		maxResults = 100
	}

	params := url.Values{
		"db":      {"pubmed"},
		"term":    {query},
		"retmode": {"json"},
		"retmax":  {fmt.Sprintf("%d", maxResults)},
	}
	if c.Config.APIKey != "" {
		params.Set("api_key", c.Config.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, esearchAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.Config.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("PubMed esearch request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("PubMed esearch returned HTTP %d", resp.StatusCode)
	}

	var sr esearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing esearch response: %w", err)
	}

	c.Logger.Info().Int("count", len(sr.Result.IDList)).Str("query", query).Msg("PubMed search complete")
	return sr.Result.IDList, nil
}

// FetchArticleSet downloads the efetch XML for the given PMIDs. The request
// is a POST because a long PMID list can exceed URL length limits. An empty
// PMID list returns "" without touching the network.
func (c *Client) FetchArticleSet(ctx context.Context, pmids []string) (string, error) {
	if len(pmids) == 0 {
		return "", nil
	}

	form := url.Values{
		"db":      {"pubmed"},
		"id":      {strings.Join(pmids, ",")},
		"retmode": {"xml"},
		"rettype": {"abstract"},
	}
	if c.Config.APIKey != "" {
		form.Set("api_key", c.Config.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, efetchAPIBase, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.Config.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("PubMed efetch request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("PubMed efetch returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading efetch response: %w", err)
	}

	c.Logger.Debug().Int("pmids", len(pmids)).Msg("fetched article set")
	return string(body), nil
}

// esearch JSON structures.
type esearchResponse struct {
	Result esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
}
