// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package records

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// keywordsFile is the on-disk representation of a keyword-extension file.
// The listed keywords are appended to the builtin pharma/biotech list.
type keywordsFile struct {
	Keywords []string `yaml:"keywords"`
}

// LoadKeywords reads extra filter keywords from a YAML file. An empty path
// returns nil without error.
func LoadKeywords(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keywords file: %w", err)
	}
	var kf keywordsFile
	if err := yaml.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("parsing keywords file %s: %w", path, err)
	}
	return kf.Keywords, nil
}
