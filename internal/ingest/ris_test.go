package ingest

import (
	"errors"
	"strings"
	"testing"
)

const sampleRIS = `TY  - JOUR
TI  - Portfolio Optimization Using AI
AB  - This paper studies portfolio optimization with deep learning.
PY  - 2021
AU  - Smith, Jane
AU  - Doe, John
ER  -
TY  - JOUR
T1  - Second Paper
N2  - An abstract spread
  over two lines.
Y1  - 2019/03/15/spring issue
ER  -
`

func TestParseRIS(t *testing.T) {
	records, err := ParseRIS(strings.NewReader(sampleRIS))
	if err != nil {
		t.Fatalf("ParseRIS() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}

	first := records[0]
	if first["title"] != "Portfolio Optimization Using AI" {
		t.Errorf("title = %q", first["title"])
	}
	if first["abstract"] != "This paper studies portfolio optimization with deep learning." {
		t.Errorf("abstract = %q", first["abstract"])
	}
	if first["year"] != "2021" {
		t.Errorf("year = %q, want 2021", first["year"])
	}
	if first["authors"] != "Smith, Jane; Doe, John" {
		t.Errorf("authors = %q", first["authors"])
	}

	second := records[1]
	if second["title"] != "Second Paper" {
		t.Errorf("T1 title = %q", second["title"])
	}
	if second["abstract"] != "An abstract spread over two lines." {
		t.Errorf("continuation abstract = %q", second["abstract"])
	}
	if second["year"] != "2019" {
		t.Errorf("Y1 year = %q, want 2019", second["year"])
	}
}

func TestParseRISPYWinsOverY1(t *testing.T) {
	input := "TY  - JOUR\nTI  - T\nAB  - A\nPY  - 2020\nY1  - 1999/01/01\nER  -\n"
	records, err := ParseRIS(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if records[0]["year"] != "2020" {
		t.Errorf("year = %q, want PY value 2020", records[0]["year"])
	}
}

func TestParseRISTruncatedRecordKept(t *testing.T) {
	input := "TY  - JOUR\nTI  - Cut off\nAB  - No end tag\nPY  - 2018\n"
	records, err := ParseRIS(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if records[0]["title"] != "Cut off" {
		t.Errorf("title = %q", records[0]["title"])
	}
}

func TestParseRISMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no tags", "just some prose\nthat is not RIS at all\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRIS(strings.NewReader(tt.input))
			if !errors.Is(err, ErrParse) {
				t.Errorf("ParseRIS() error = %v, want ErrParse", err)
			}
		})
	}
}
