// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Ananthu100/pubmed-pharma-papers-aganitha/pkg/types"
)

// DefaultFetchBase is the production EFetch endpoint.
const DefaultFetchBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"

// batchSize is the maximum number of identifiers per EFetch request.
const batchSize = 50

// chunkDelay is the mandatory pause between consecutive EFetch requests,
// per the NCBI usage policy. Not configurable.
const chunkDelay = 340 * time.Millisecond

// sleep is swapped out by tests to avoid real delays.
var sleep = time.Sleep

// FetchRecords retrieves full records for ids in consecutive chunks of at
// most 50, returning each chunk's raw XML body in chunk order. A fixed
// delay separates every two consecutive requests. Any chunk failure yields
// a *RequestError and no partial results.
func FetchRecords(ctx context.Context, client *http.Client, ids []string, cfg types.FetchConfig, log zerolog.Logger) ([]string, error) {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultFetchBase
	}

	var batches []string
	for i := 0; i < len(ids); i += batchSize {
		if i > 0 {
			sleep(chunkDelay)
		}

		end := i + batchSize
		if end > len(ids) {
			end = len(ids)
		}
		chunk := ids[i:end]

		log.Debug().Int("count", len(chunk)).Str("ids", strings.Join(chunk, ",")).Msg("efetch request")

		body, err := fetchChunk(ctx, client, base, chunk, cfg)
		if err != nil {
			return nil, err
		}
		batches = append(batches, body)
	}
	return batches, nil
}

// fetchChunk issues one EFetch request and returns the response body text.
func fetchChunk(ctx context.Context, client *http.Client, base string, chunk []string, cfg types.FetchConfig) (string, error) {
	params := url.Values{
		"db":      {cfg.Database},
		"id":      {strings.Join(chunk, ",")},
		"retmode": {"xml"},
	}
	reqURL := base + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &RequestError{Endpoint: "efetch", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &RequestError{Endpoint: "efetch", StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &RequestError{Endpoint: "efetch", Err: fmt.Errorf("reading response: %w", err)}
	}
	return string(body), nil
}
