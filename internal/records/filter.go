// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package records

import (
	"regexp"
	"strings"
)

// pharmaKeywords is the builtin pharma/biotech keyword list. An affiliation
// qualifies when it contains any of these, case-insensitively. The list is
// process-wide constant data; LoadKeywords may append to a copy but the
// builtin entries are never removed.
var pharmaKeywords = []string{
	"pharma", "biotech", "biosciences", "therapeutics", "diagnostics",
	"life sciences", "laboratories", "inc", "corp", "ltd", "gmbh",
	"pharmaceutical", "genomics", "healthcare", "bioscience", "biopharma",
}

var emailRe = regexp.MustCompile(`[\w.-]+@[\w.-]+`)

// Filter matches affiliation strings against a pharma/biotech keyword list.
type Filter struct {
	keywords []string
}

// NewFilter returns a Filter over the builtin keyword list plus any extras.
func NewFilter(extra ...string) *Filter {
	kws := make([]string, 0, len(pharmaKeywords)+len(extra))
	kws = append(kws, pharmaKeywords...)
	for _, kw := range extra {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			kws = append(kws, kw)
		}
	}
	return &Filter{keywords: kws}
}

// IsPharmaAffiliation reports whether aff contains any keyword from the
// list, case-insensitively.
func (f *Filter) IsPharmaAffiliation(aff string) bool {
	lower := strings.ToLower(aff)
	for _, kw := range f.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ExtractEmail returns the first email-shaped substring of text (word
// characters, dots, and hyphens around an "@"), or "" when there is none.
func ExtractEmail(text string) string {
	return emailRe.FindString(text)
}
