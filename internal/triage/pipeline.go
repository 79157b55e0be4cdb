// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package triage runs the record pipeline: normalize, aggregate,
// deduplicate, score coherence, select. The pipeline is a pure function
// from an aggregated batch to a Result; it knows nothing about files or
// rendering, which belong to the caller.
package triage

import (
	"github.com/pdiddy/review-triage/internal/coherence"
	"github.com/pdiddy/review-triage/internal/dedupe"
	"github.com/pdiddy/review-triage/internal/ingest"
	"github.com/pdiddy/review-triage/internal/selection"
	"github.com/pdiddy/review-triage/pkg/types"
)

// Result holds the output of one pipeline run: the collection at every
// stage boundary plus the counters the presentation layer shows.
type Result struct {
	// TotalUploaded counts every record seen, valid or not.
	TotalUploaded int `json:"total_uploaded"`

	// Invalid counts records dropped for missing title, abstract, or
	// parseable year. Their content is discarded, never stored.
	Invalid int `json:"invalid"`

	// FilesSkipped counts input files that failed to parse entirely.
	FilesSkipped int `json:"files_skipped,omitempty"`

	// Valid is the aggregated normalized collection before dedup.
	Valid types.Collection `json:"valid"`

	// Duplicates holds every record participating in a duplicate set.
	Duplicates types.Collection `json:"duplicates,omitempty"`

	// Deduplicated keeps the first occurrence per (title, abstract) key.
	Deduplicated types.Collection `json:"deduplicated"`

	// Incoherent and Coherent partition Deduplicated at the threshold.
	Incoherent types.Collection `json:"incoherent,omitempty"`
	Coherent   types.Collection `json:"coherent,omitempty"`

	// Selected is the coherent subset passing the selection criteria.
	Selected types.Collection `json:"selected,omitempty"`

	// Histogram counts selected records per year, ascending.
	Histogram []selection.YearCount `json:"histogram,omitempty"`
}

// Run executes stages three through five on an aggregated batch. A batch
// with no valid records short-circuits: the later stages are skipped and
// every collection comes back empty, which is the normal empty-result
// path rather than an error.
func Run(batch ingest.Batch, skipped int, cfg types.TriageConfig) Result {
	res := Result{
		TotalUploaded: len(batch.Records) + batch.Invalid,
		Invalid:       batch.Invalid,
		FilesSkipped:  skipped,
		Valid:         batch.Records,
	}
	if len(batch.Records) == 0 {
		return res
	}

	res.Duplicates, res.Deduplicated = dedupe.Resolve(batch.Records)
	res.Incoherent, res.Coherent = coherence.Score(res.Deduplicated, cfg.Coherence)
	res.Selected = selection.Apply(res.Coherent, cfg.Selection)
	res.Histogram = selection.Histogram(res.Selected)
	return res
}
