// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CoherenceConfig holds settings for the coherence scoring stage.
type CoherenceConfig struct {
	// Threshold partitions records: similarity below it is incoherent,
	// at or above it coherent (default 0.2).
	Threshold float64 `json:"threshold" yaml:"threshold"`
}

// SelectionConfig holds the selection criteria applied to the coherent set.
type SelectionConfig struct {
	// Keywords are matched case-insensitively as substrings of the
	// abstract; a record passes if any keyword matches.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// YearFrom is the inclusive lower bound of the publication year range.
	YearFrom int `json:"year_from" yaml:"year_from"`

	// YearTo is the inclusive upper bound of the publication year range.
	YearTo int `json:"year_to" yaml:"year_to"`
}

// TriageConfig groups the stage configurations for one pipeline run.
type TriageConfig struct {
	Coherence CoherenceConfig `json:"coherence" yaml:"coherence"`
	Selection SelectionConfig `json:"selection" yaml:"selection"`
}

// DefaultTriageConfig returns the documented defaults: threshold 0.2,
// keywords "portfolio" and "optimization", years 2017 through 2024.
func DefaultTriageConfig() TriageConfig {
	return TriageConfig{
		Coherence: CoherenceConfig{Threshold: 0.2},
		Selection: SelectionConfig{
			Keywords: []string{"portfolio", "optimization"},
			YearFrom: 2017,
			YearTo:   2024,
		},
	}
}
