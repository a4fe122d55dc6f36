// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package records parses EFetch XML batches into articles and applies the
// pharma/biotech affiliation filter.
package records

import (
	"encoding/xml"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Ananthu100/pubmed-pharma-papers-aganitha/pkg/types"
)

// ParseError reports a malformed record batch. It is fatal; the caller
// aborts the run without partial results.
type ParseError struct {
	// Batch is the zero-based index of the malformed batch.
	Batch int

	// Err is the underlying XML decoding error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing record batch %d: %v", e.Batch, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *ParseError) Unwrap() error { return e.Err }

// ParseBatches decodes each raw XML batch and returns one ArticleResult per
// record that has at least one author with a qualifying affiliation, in
// batch order then record order. The first qualifying affiliation (author
// order, then affiliation order) wins and is never overwritten by later
// matches in the same record.
func ParseBatches(batches []string, filter *Filter, log zerolog.Logger) ([]types.ArticleResult, error) {
	var results []types.ArticleResult
	for bi, raw := range batches {
		var set articleSet
		if err := xml.Unmarshal([]byte(raw), &set); err != nil {
			return nil, &ParseError{Batch: bi, Err: err}
		}

		for _, art := range set.Articles {
			if r, ok := matchArticle(art, filter, log); ok {
				results = append(results, r)
			}
		}
	}
	return results, nil
}

// matchArticle scans one record's authors for a qualifying affiliation.
// Scanning continues past the first match so debug output can report the
// ignored later matches, but the match itself is first-wins.
func matchArticle(art pubmedArticle, filter *Filter, log zerolog.Logger) (types.ArticleResult, bool) {
	r := types.ArticleResult{
		PubmedID: art.Citation.PMID,
		Title:    art.Citation.Article.Title,
		Year:     pubYear(art.Citation.Article),
	}

	for _, a := range art.Citation.Article.Authors {
		for _, aff := range a.Affiliations {
			if !filter.IsPharmaAffiliation(aff) {
				continue
			}
			if r.CompanyAffiliation != "" {
				log.Debug().Str("pmid", r.PubmedID).Str("affiliation", aff).
					Msg("further qualifying affiliation ignored")
				continue
			}
			r.CompanyAffiliation = aff
			r.AuthorName = types.Author{ForeName: a.ForeName, LastName: a.LastName}.FullName()
			r.Email = ExtractEmail(aff)
		}
	}

	if r.CompanyAffiliation == "" {
		return types.ArticleResult{}, false
	}
	log.Debug().Str("pmid", r.PubmedID).Str("author", r.AuthorName).
		Str("company", r.CompanyAffiliation).Str("email", r.Email).Msg("matched")
	return r, true
}

// pubYear returns the journal issue year, falling back to the electronic
// article date, then "".
func pubYear(a article) string {
	if a.JournalDate.Year != "" {
		return a.JournalDate.Year
	}
	return a.ArticleDate.Year
}

// EFetch XML structures (PubmedArticleSet subset).
type articleSet struct {
	XMLName  xml.Name        `xml:"PubmedArticleSet"`
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	Citation medlineCitation `xml:"MedlineCitation"`
}

type medlineCitation struct {
	PMID    string  `xml:"PMID"`
	Article article `xml:"Article"`
}

type article struct {
	Title       string      `xml:"ArticleTitle"`
	JournalDate pubDate     `xml:"Journal>JournalIssue>PubDate"`
	ArticleDate pubDate     `xml:"ArticleDate"`
	Authors     []xmlAuthor `xml:"AuthorList>Author"`
}

type pubDate struct {
	Year string `xml:"Year"`
}

type xmlAuthor struct {
	LastName     string   `xml:"LastName"`
	ForeName     string   `xml:"ForeName"`
	Affiliations []string `xml:"AffiliationInfo>Affiliation"`
}
