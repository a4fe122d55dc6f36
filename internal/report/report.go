// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders matched articles as a CSV file or a console table.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Ananthu100/pubmed-pharma-papers-aganitha/pkg/types"
)

// Header is the fixed CSV header row. Missing values render as empty
// strings, never a null marker.
var Header = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Company Affiliation",
	"Non-academic Author",
	"Corresponding Author Email",
}

// row flattens one result into header order.
func row(r types.ArticleResult) []string {
	return []string{r.PubmedID, r.Title, r.Year, r.CompanyAffiliation, r.AuthorName, r.Email}
}

// WriteCSV serializes results to path in input order, overwriting any
// existing file, and reports success to w.
func WriteCSV(results []types.ArticleResult, path string, w io.Writer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(Header); err != nil {
		f.Close()
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range results {
		if err := cw.Write(row(r)); err != nil {
			f.Close()
			return fmt.Errorf("writing row for %s: %w", r.PubmedID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	fmt.Fprintf(w, "\nResults saved to %s\n", path)
	return nil
}

// FormatTable writes results as an aligned table to w. All rows and all
// columns are shown in full; nothing is truncated.
func FormatTable(results []types.ArticleResult, w io.Writer) {
	widths := make([]int, len(Header))
	for i, h := range Header {
		widths[i] = len(h)
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		cells := row(r)
		for i, c := range cells {
			if len(c) > widths[i] {
				widths[i] = len(c)
			}
		}
		rows = append(rows, cells)
	}

	writeRow(w, Header, widths)
	total := 2 * (len(widths) - 1)
	for _, wd := range widths {
		total += wd
	}
	fmt.Fprintln(w, strings.Repeat("-", total))
	for _, cells := range rows {
		writeRow(w, cells, widths)
	}
}

func writeRow(w io.Writer, cells []string, widths []int) {
	for i, c := range cells {
		if i > 0 {
			fmt.Fprint(w, "  ")
		}
		fmt.Fprintf(w, "%-*s", widths[i], c)
	}
	fmt.Fprintln(w)
}
