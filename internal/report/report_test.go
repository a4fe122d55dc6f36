package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Ananthu100/pubmed-pharma-papers-aganitha/pkg/types"
)

func sampleResults() []types.ArticleResult {
	return []types.ArticleResult{
		{
			PubmedID:           "101",
			Title:              "A study, with commas \"and quotes\"",
			Year:               "2021",
			CompanyAffiliation: "Acme Pharmaceutical Inc, Boston, MA, jdoe@acme.com",
			AuthorName:         "Jane Doe",
			Email:              "jdoe@acme.com",
		},
		{
			PubmedID:           "102",
			Title:              "Another study",
			Year:               "",
			CompanyAffiliation: "Globex Biotech GmbH",
			AuthorName:         "Rick Roe",
			Email:              "",
		},
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	results := sampleResults()

	var buf bytes.Buffer
	if err := WriteCSV(results, path, &buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if !strings.Contains(buf.String(), "Results saved to "+path) {
		t.Errorf("missing success message, got %q", buf.String())
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("re-reading CSV: %v", err)
	}
	if len(rows) != len(results)+1 {
		t.Fatalf("got %d rows, want %d", len(rows), len(results)+1)
	}
	for i, h := range Header {
		if rows[0][i] != h {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], h)
		}
	}
	for i, r := range results {
		got := rows[i+1]
		want := []string{r.PubmedID, r.Title, r.Year, r.CompanyAffiliation, r.AuthorName, r.Email}
		for j := range want {
			if got[j] != want[j] {
				t.Errorf("row %d col %d = %q, want %q", i, j, got[j], want[j])
			}
		}
	}
}

func TestWriteCSVOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := os.WriteFile(path, []byte("stale content\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(sampleResults()[:1], path, &buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "stale") {
		t.Error("existing file content should be overwritten")
	}
}

func TestWriteCSVBadPath(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(sampleResults(), filepath.Join(t.TempDir(), "missing", "out.csv"), &buf)
	if err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestFormatTableNoTruncation(t *testing.T) {
	results := sampleResults()
	// A value far wider than any header.
	results[0].Title = strings.Repeat("very long title ", 20)

	var buf bytes.Buffer
	FormatTable(results, &buf)
	out := buf.String()

	for _, h := range Header {
		if !strings.Contains(out, h) {
			t.Errorf("output missing header %q", h)
		}
	}
	for _, r := range results {
		for _, v := range []string{r.PubmedID, r.Title, r.CompanyAffiliation, r.AuthorName} {
			if v != "" && !strings.Contains(out, v) {
				t.Errorf("output missing value %q", v)
			}
		}
	}
}

func TestFormatTableAlignment(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(sampleResults(), &buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 { // header + rule + 2 rows
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	// Every data row is padded to the same width as the header row.
	if len(lines[2]) != len(lines[0]) || len(lines[3]) != len(lines[0]) {
		t.Errorf("rows not aligned: header=%d rows=%d,%d", len(lines[0]), len(lines[2]), len(lines[3]))
	}
}
