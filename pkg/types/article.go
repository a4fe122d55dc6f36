// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pubmed-pharma-papers
// pipeline.
package types

// Author is one entry of a record's author list, in document order.
// Authors exist only during parsing; they are not part of the report.
type Author struct {
	// ForeName is the author's given name as returned by PubMed.
	ForeName string

	// LastName is the author's family name.
	LastName string

	// Affiliations lists the author's affiliation strings in document order.
	Affiliations []string
}

// FullName returns "ForeName LastName", trimmed when either part is empty.
func (a Author) FullName() string {
	switch {
	case a.ForeName == "":
		return a.LastName
	case a.LastName == "":
		return a.ForeName
	default:
		return a.ForeName + " " + a.LastName
	}
}

// ArticleResult is one matched article: a record that has at least one
// author with a qualifying pharma/biotech affiliation. At most one result
// exists per PubMed ID, carrying the first qualifying author in document
// order.
type ArticleResult struct {
	// PubmedID is the opaque record identifier.
	PubmedID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the article title as returned by PubMed.
	Title string `json:"title" yaml:"title"`

	// Year is the publication year, or "" when the record carries none.
	Year string `json:"year" yaml:"year"`

	// CompanyAffiliation is the first qualifying affiliation string.
	CompanyAffiliation string `json:"company_affiliation" yaml:"company_affiliation"`

	// AuthorName names the author holding the qualifying affiliation.
	AuthorName string `json:"author_name" yaml:"author_name"`

	// Email is the address extracted from the qualifying affiliation, or "".
	Email string `json:"email" yaml:"email"`
}
