// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/paperscreen/pkg/types"
)

func testCfg() types.PubMedConfig {
	return types.PubMedConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "test/0.1",
		},
		MaxResults: 100,
	}
}

func newClient(ts *httptest.Server, cfg types.PubMedConfig) *Client {
	return &Client{
		HTTP:   ts.Client(),
		Config: cfg,
		Logger: zerolog.Nop(),
	}
}

// --- Search ---

func TestSearchRequestParams(t *testing.T) {
	var capturedReq *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"esearchresult":{"count":"2","idlist":["111","222"]}}`)
	}))
	defer ts.Close()

	old := esearchAPIBase
	esearchAPIBase = ts.URL
	defer func() { esearchAPIBase = old }()

	cfg := testCfg()
	cfg.MaxResults = 25

	pmids, err := newClient(ts, cfg).Search(context.Background(), "cancer immunotherapy")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	q := capturedReq.URL.Query()
	if got := q.Get("db"); got != "pubmed" {
		t.Errorf("db param = %q, want pubmed", got)
	}
	if got := q.Get("term"); got != "cancer immunotherapy" {
		t.Errorf("term param = %q, want %q", got, "cancer immunotherapy")
	}
	if got := q.Get("retmode"); got != "json" {
		t.Errorf("retmode param = %q, want json", got)
	}
	if got := q.Get("retmax"); got != "25" {
		t.Errorf("retmax param = %q, want 25", got)
	}
	if got := q.Get("api_key"); got != "" {
		t.Errorf("api_key param = %q, want absent", got)
	}
	if got := capturedReq.Header.Get("User-Agent"); got != "test/0.1" {
		t.Errorf("User-Agent = %q, want test/0.1", got)
	}

	want := []string{"111", "222"}
	if len(pmids) != len(want) {
		t.Fatalf("len(pmids) = %d, want %d", len(pmids), len(want))
	}
	for i, w := range want {
		if pmids[i] != w {
			t.Errorf("pmids[%d] = %q, want %q", i, pmids[i], w)
		}
	}
}

func TestSearchAPIKey(t *testing.T) {
	var capturedReq *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		fmt.Fprint(w, `{"esearchresult":{"count":"0","idlist":[]}}`)
	}))
	defer ts.Close()

	old := esearchAPIBase
	esearchAPIBase = ts.URL
	defer func() { esearchAPIBase = old }()

	cfg := testCfg()
	cfg.APIKey = "secret-key"

	if _, err := newClient(ts, cfg).Search(context.Background(), "q"); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got := capturedReq.URL.Query().Get("api_key"); got != "secret-key" {
		t.Errorf("api_key param = %q, want secret-key", got)
	}
}

func TestSearchHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	old := esearchAPIBase
	esearchAPIBase = ts.URL
	defer func() { esearchAPIBase = old }()

	_, err := newClient(ts, testCfg()).Search(context.Background(), "q")
	if err == nil {
		t.Fatal("expected error for HTTP 500")
	}
}

// --- FetchArticleSet ---

func TestFetchArticleSetEmptyPMIDs(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request for empty PMID list")
	}))
	defer ts.Close()

	old := efetchAPIBase
	efetchAPIBase = ts.URL
	defer func() { efetchAPIBase = old }()

	data, err := newClient(ts, testCfg()).FetchArticleSet(context.Background(), nil)
	if err != nil {
		t.Fatalf("FetchArticleSet: %v", err)
	}
	if data != "" {
		t.Errorf("data = %q, want empty", data)
	}
}

func TestFetchArticleSetPostForm(t *testing.T) {
	var method, id, retmode, rettype string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		id = r.PostForm.Get("id")
		retmode = r.PostForm.Get("retmode")
		rettype = r.PostForm.Get("rettype")
		fmt.Fprint(w, "<PubmedArticleSet></PubmedArticleSet>")
	}))
	defer ts.Close()

	old := efetchAPIBase
	efetchAPIBase = ts.URL
	defer func() { efetchAPIBase = old }()

	data, err := newClient(ts, testCfg()).FetchArticleSet(context.Background(), []string{"111", "222"})
	if err != nil {
		t.Fatalf("FetchArticleSet: %v", err)
	}

	if method != http.MethodPost {
		t.Errorf("method = %q, want POST", method)
	}
	if id != "111,222" {
		t.Errorf("id param = %q, want %q", id, "111,222")
	}
	if retmode != "xml" {
		t.Errorf("retmode param = %q, want xml", retmode)
	}
	if rettype != "abstract" {
		t.Errorf("rettype param = %q, want abstract", rettype)
	}
	if data != "<PubmedArticleSet></PubmedArticleSet>" {
		t.Errorf("data = %q, want raw body", data)
	}
}

func TestFetchArticleSetHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	old := efetchAPIBase
	efetchAPIBase = ts.URL
	defer func() { efetchAPIBase = old }()

	_, err := newClient(ts, testCfg()).FetchArticleSet(context.Background(), []string{"111"})
	if err == nil {
		t.Fatal("expected error for HTTP 502")
	}
}
