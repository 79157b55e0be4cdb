// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/pdiddy/review-triage/pkg/types"
)

// CSV column headers, in field order. The Spanish names are the
// interchange contract with the downstream review spreadsheets.
const (
	csvTitle      = "Título"
	csvAbstract   = "Resumen"
	csvYear       = "Fecha"
	csvSimilarity = "Similitud"
)

// WriteCSV writes records as delimited text with the header row
// Título,Resumen,Fecha and, when the records carry similarity scores, a
// trailing Similitud column. Fields containing commas or quotes are
// quoted per RFC 4180, so comma-bearing titles survive a round trip.
func WriteCSV(w *csv.Writer, records types.Collection) error {
	scored := records.Scored()

	header := []string{csvTitle, csvAbstract, csvYear}
	if scored {
		header = append(header, csvSimilarity)
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, r := range records {
		row := []string{r.Title, r.Abstract, strconv.Itoa(r.Year)}
		if scored {
			sim := ""
			if r.Similarity != nil {
				sim = strconv.FormatFloat(*r.Similarity, 'f', -1, 64)
			}
			row = append(row, sim)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
