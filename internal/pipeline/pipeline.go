// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the fetch → parse → filter → report sequence.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Ananthu100/pubmed-pharma-papers-aganitha/internal/eutils"
	"github.com/Ananthu100/pubmed-pharma-papers-aganitha/internal/records"
	"github.com/Ananthu100/pubmed-pharma-papers-aganitha/internal/report"
	"github.com/Ananthu100/pubmed-pharma-papers-aganitha/pkg/types"
)

// Run executes the whole pipeline for query: search identifiers, fetch
// record batches, filter by affiliation, and emit the report to outFile
// (CSV) or w (console table). Informational "no results" outcomes return
// nil; search, fetch, parse, and write failures return the error unchanged
// so the CLI can exit non-zero.
func Run(ctx context.Context, client *http.Client, query, outFile string, cfg types.PipelineConfig, w io.Writer, log zerolog.Logger) error {
	ids, err := eutils.SearchIDs(ctx, client, query, cfg.Search, log)
	if err != nil {
		return fmt.Errorf("fetching identifiers: %w", err)
	}
	if len(ids) == 0 {
		fmt.Fprintln(w, "No articles found for the given query.")
		return nil
	}

	batches, err := eutils.FetchRecords(ctx, client, ids, cfg.Fetch, log)
	if err != nil {
		return fmt.Errorf("fetching articles: %w", err)
	}

	extra, err := records.LoadKeywords(cfg.Filter.KeywordsFile)
	if err != nil {
		return err
	}
	filter := records.NewFilter(extra...)

	results, err := records.ParseBatches(batches, filter, log)
	if err != nil {
		return fmt.Errorf("parsing articles: %w", err)
	}
	if len(results) == 0 {
		fmt.Fprintln(w, "No matching articles with pharma/biotech affiliations found.")
		return nil
	}

	if outFile != "" {
		return report.WriteCSV(results, outFile, w)
	}
	report.FormatTable(results, w)
	return nil
}
