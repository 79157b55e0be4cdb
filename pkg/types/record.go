// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the record and configuration types shared across
// the triage pipeline stages.
package types

// RawRecord is the field map a format parser produces for one citation
// entry. Keys are parser-normalized field names ("title", "abstract",
// "year", ...); the normalizer reads only the three it needs and ignores
// the rest.
type RawRecord map[string]string

// Record is a normalized citation record. It exists only if title,
// abstract, and an integer-parseable year were all present in the source
// entry. Similarity is nil until the coherence scorer has run.
type Record struct {
	// Title is the citation title, verbatim from the source.
	Title string `json:"title" yaml:"title"`

	// Abstract is the citation abstract, verbatim from the source.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Year is the publication year.
	Year int `json:"year" yaml:"year"`

	// Similarity is the title/abstract coherence score in [0,1],
	// set by the coherence scorer and never changed afterwards.
	Similarity *float64 `json:"similarity,omitempty" yaml:"similarity,omitempty"`
}

// Collection is an ordered sequence of records. Order is arrival order:
// file order first, then within-file record order. Stages return fresh
// collections; they never reorder what they are given.
type Collection []Record

// Scored reports whether any record in the collection carries a
// similarity value.
func (c Collection) Scored() bool {
	for _, r := range c {
		if r.Similarity != nil {
			return true
		}
	}
	return false
}
