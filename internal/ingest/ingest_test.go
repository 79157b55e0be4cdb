// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/review-triage/pkg/types"
)

func TestNormalizeCompleteness(t *testing.T) {
	raws := []types.RawRecord{
		{"title": "A", "abstract": "a", "year": "2020"},
		{"title": "", "abstract": "b", "year": "2020"},
		{"title": "C", "abstract": "c"},
		{"title": "D", "abstract": "d", "year": "circa 2020"},
		{"abstract": "e", "year": "2021"},
		{"title": "F", "abstract": "f", "year": " 2019 "},
	}

	b := Normalize(raws)

	if got := len(b.Records) + b.Invalid; got != len(raws) {
		t.Errorf("valid + invalid = %d, want %d", got, len(raws))
	}
	if len(b.Records) != 2 {
		t.Fatalf("len(valid) = %d, want 2", len(b.Records))
	}
	if b.Invalid != 4 {
		t.Errorf("invalid = %d, want 4", b.Invalid)
	}
	for _, r := range b.Records {
		if r.Title == "" || r.Abstract == "" {
			t.Errorf("valid record with empty field: %+v", r)
		}
	}
	// Order preserved; whitespace-padded year still parses.
	if b.Records[0].Title != "A" || b.Records[1].Title != "F" {
		t.Errorf("order not preserved: %+v", b.Records)
	}
	if b.Records[1].Year != 2019 {
		t.Errorf("year = %d, want 2019", b.Records[1].Year)
	}
}

func TestNormalizeBadYearDropsRecordOnly(t *testing.T) {
	raws := []types.RawRecord{
		{"title": "Bad", "abstract": "x", "year": "n.d."},
		{"title": "Good", "abstract": "y", "year": "2022"},
	}
	b := Normalize(raws)
	if len(b.Records) != 1 || b.Records[0].Title != "Good" {
		t.Fatalf("records = %+v, want only the good one", b.Records)
	}
	if b.Invalid != 1 {
		t.Errorf("invalid = %d, want 1", b.Invalid)
	}
}

func TestAggregate(t *testing.T) {
	a := Batch{Records: types.Collection{{Title: "A", Abstract: "a", Year: 1}}, Invalid: 2}
	b := Batch{Records: types.Collection{{Title: "B", Abstract: "b", Year: 2}}, Invalid: 1}

	out := Aggregate(a, b)

	if len(out.Records) != 2 {
		t.Fatalf("len = %d, want 2", len(out.Records))
	}
	if out.Records[0].Title != "A" || out.Records[1].Title != "B" {
		t.Errorf("arrival order not preserved: %+v", out.Records)
	}
	if out.Invalid != 3 {
		t.Errorf("invalid = %d, want 3", out.Invalid)
	}
}

func TestReadFilesSkipsMalformed(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.ris")
	writeFile(t, good, "TY  - JOUR\nTI  - T\nAB  - A\nPY  - 2020\nER  -\n")
	bad := filepath.Join(dir, "bad.bib")
	writeFile(t, bad, "not bibtex at all")
	unknown := filepath.Join(dir, "notes.txt")
	writeFile(t, unknown, "plain notes")

	var warnings strings.Builder
	batch, skipped := ReadFiles([]string{good, bad, unknown}, &warnings)

	if skipped != 2 {
		t.Errorf("skipped = %d, want 2", skipped)
	}
	if len(batch.Records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(batch.Records))
	}
	if !strings.Contains(warnings.String(), "bad.bib") {
		t.Errorf("warnings missing bad.bib: %q", warnings.String())
	}
	if !strings.Contains(warnings.String(), "notes.txt") {
		t.Errorf("warnings missing notes.txt: %q", warnings.String())
	}
}

func TestReadFileDispatch(t *testing.T) {
	dir := t.TempDir()

	ris := filepath.Join(dir, "refs.RIS")
	writeFile(t, ris, "TY  - JOUR\nTI  - From RIS\nAB  - A\nPY  - 2020\nER  -\n")
	bib := filepath.Join(dir, "refs.bib")
	writeFile(t, bib, "@article{k, title={From BibTeX}, abstract={B}, year={2021}}\n")

	b1, err := ReadFile(ris)
	if err != nil {
		t.Fatal(err)
	}
	if b1.Records[0].Title != "From RIS" {
		t.Errorf("extension dispatch failed for uppercase .RIS: %+v", b1.Records)
	}

	b2, err := ReadFile(bib)
	if err != nil {
		t.Fatal(err)
	}
	if b2.Records[0].Title != "From BibTeX" {
		t.Errorf("bib dispatch failed: %+v", b2.Records)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
