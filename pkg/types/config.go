package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubmed-pharma-papers/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// SearchConfig holds settings for the identifier search stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the ESearch endpoint. Kept in config so tests can point it
	// at an httptest server.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// Database is the NCBI database queried (default "pubmed").
	Database string `json:"database" yaml:"database" mapstructure:"database"`

	// MaxResults is the maximum number of identifiers to request (retmax).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// FetchConfig holds settings for the record fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the EFetch endpoint. Kept in config so tests can point it
	// at an httptest server.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// Database is the NCBI database queried (default "pubmed").
	Database string `json:"database" yaml:"database" mapstructure:"database"`
}

// FilterConfig holds settings for the affiliation filter stage.
type FilterConfig struct {
	// KeywordsFile optionally names a YAML file whose keywords are appended
	// to the builtin pharma/biotech list. The builtin list is never reduced.
	KeywordsFile string `json:"keywords_file,omitempty" yaml:"keywords_file,omitempty" mapstructure:"keywords_file"`
}

// PipelineConfig groups all stage configurations for a run.
type PipelineConfig struct {
	Search SearchConfig `json:"search" yaml:"search" mapstructure:"search"`
	Fetch  FetchConfig  `json:"fetch" yaml:"fetch" mapstructure:"fetch"`
	Filter FilterConfig `json:"filter" yaml:"filter" mapstructure:"filter"`
}
