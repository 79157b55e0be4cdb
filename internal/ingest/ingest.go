// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest parses citation interchange files and normalizes their
// records for the triage pipeline. It owns a tolerant RIS parser and a
// tolerant BibTeX parser; a malformed file is skipped with a warning,
// never fatal to the batch.
package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/review-triage/pkg/types"
)

// ErrParse marks input that cannot be parsed as its declared format.
var ErrParse = errors.New("parse error")

// ErrUnknownFormat marks a file whose extension is neither .ris nor .bib.
var ErrUnknownFormat = errors.New("unknown format")

// ReadFile parses one file, dispatching by extension, and normalizes its
// records.
func ReadFile(path string) (Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return Batch{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var raws []types.RawRecord
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ris":
		raws, err = ParseRIS(f)
	case ".bib":
		raws, err = ParseBibTeX(f)
	default:
		return Batch{}, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	if err != nil {
		return Batch{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return Normalize(raws), nil
}

// ReadFiles parses and normalizes every path in order and aggregates the
// results. Files that fail to parse are reported as warnings on w,
// counted in skipped, and contribute zero records; the remaining files
// still go through.
func ReadFiles(paths []string, w io.Writer) (batch Batch, skipped int) {
	var batches []Batch
	for _, path := range paths {
		b, err := ReadFile(path)
		if err != nil {
			fmt.Fprintf(w, "warning: skipping %s: %v\n", path, err)
			skipped++
			continue
		}
		batches = append(batches, b)
	}
	return Aggregate(batches...), skipped
}
