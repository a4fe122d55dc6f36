// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package eutils is a client for the two NCBI E-utilities endpoints the
// pipeline needs: ESearch (query → identifier list) and EFetch
// (identifier batch → full records as XML).
package eutils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/Ananthu100/pubmed-pharma-papers-aganitha/pkg/types"
)

// DefaultSearchBase is the production ESearch endpoint.
const DefaultSearchBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"

// SearchIDs issues a single ESearch request for up to cfg.MaxResults
// identifiers matching query and returns them in response order. A transport
// error or non-success status yields a *RequestError; there is no retry.
func SearchIDs(ctx context.Context, client *http.Client, query string, cfg types.SearchConfig, log zerolog.Logger) ([]string, error) {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultSearchBase
	}

	params := url.Values{
		"db":      {cfg.Database},
		"term":    {query},
		"retmax":  {fmt.Sprintf("%d", cfg.MaxResults)},
		"retmode": {"json"},
	}
	reqURL := base + "?" + params.Encode()

	log.Debug().Str("url", base).Str("term", query).Int("retmax", cfg.MaxResults).Msg("esearch request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, &RequestError{Endpoint: "esearch", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &RequestError{Endpoint: "esearch", StatusCode: resp.StatusCode}
	}

	var sr esearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, &RequestError{Endpoint: "esearch", Err: fmt.Errorf("parsing response: %w", err)}
	}

	log.Debug().Int("count", len(sr.Result.IDList)).Msg("esearch identifiers found")
	return sr.Result.IDList, nil
}

// ESearch JSON structures.
type esearchResponse struct {
	Result esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
}
