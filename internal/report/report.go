// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders pipeline results for the analyst and exports
// them for downstream tooling: plain-text tables, JSON, CSV, CSL-YAML,
// and a SQLite results artifact. The pipeline itself never writes
// output; everything user-visible funnels through here.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/review-triage/internal/triage"
	"github.com/pdiddy/review-triage/pkg/types"
)

// WriteSummary narrates one pipeline run stage by stage: the counters,
// then a table per interesting collection. Empty collections print their
// count and nothing else.
func WriteSummary(w io.Writer, res triage.Result) {
	fmt.Fprintf(w, "Total records uploaded: %d\n", res.TotalUploaded)
	if res.FilesSkipped > 0 {
		fmt.Fprintf(w, "Files skipped (unparseable): %d\n", res.FilesSkipped)
	}
	fmt.Fprintf(w, "Records missing title, abstract, or year: %d\n", res.Invalid)
	fmt.Fprintf(w, "Records with title, abstract, and year: %d\n", len(res.Valid))
	if len(res.Valid) == 0 {
		fmt.Fprintln(w, "No usable records; nothing to triage.")
		return
	}

	fmt.Fprintf(w, "\nDuplicate records found (by title and abstract): %d\n", len(res.Duplicates))
	if len(res.Duplicates) > 0 {
		WriteTable(w, res.Duplicates)
	}
	fmt.Fprintf(w, "Records after removing duplicates: %d\n", len(res.Deduplicated))

	fmt.Fprintf(w, "\nRecords with low title/abstract coherence: %d\n", len(res.Incoherent))
	if len(res.Incoherent) > 0 {
		WriteTable(w, res.Incoherent)
	}
	fmt.Fprintf(w, "Records with high title/abstract coherence: %d\n", len(res.Coherent))
	if len(res.Coherent) > 0 {
		WriteTable(w, res.Coherent)
	}

	fmt.Fprintf(w, "\nRecords matching the selection criteria: %d\n", len(res.Selected))
	if len(res.Selected) > 0 {
		WriteTable(w, res.Selected)
		WriteHistogram(w, res)
	}
}

// WriteTable writes records as a human-readable table. Long titles and
// abstracts are truncated for display; exports carry the full text.
func WriteTable(w io.Writer, records types.Collection) {
	scored := records.Scored()

	if scored {
		fmt.Fprintf(w, "%-4s  %-48s  %-50s  %-5s  %s\n", "#", "Title", "Abstract", "Year", "Sim")
	} else {
		fmt.Fprintf(w, "%-4s  %-48s  %-50s  %s\n", "#", "Title", "Abstract", "Year")
	}
	fmt.Fprintln(w, strings.Repeat("-", 116))

	for i, r := range records {
		title := truncate(r.Title, 48)
		abstract := truncate(r.Abstract, 50)
		if scored && r.Similarity != nil {
			fmt.Fprintf(w, "%-4d  %-48s  %-50s  %-5d  %.3f\n", i+1, title, abstract, r.Year, *r.Similarity)
		} else {
			fmt.Fprintf(w, "%-4d  %-48s  %-50s  %d\n", i+1, title, abstract, r.Year)
		}
	}
}

// WriteHistogram writes the selected-records-per-year counts.
func WriteHistogram(w io.Writer, res triage.Result) {
	if len(res.Histogram) == 0 {
		return
	}
	fmt.Fprintf(w, "\nSelected records per year:\n")
	for _, yc := range res.Histogram {
		fmt.Fprintf(w, "  %d  %s (%d)\n", yc.Year, strings.Repeat("#", yc.Count), yc.Count)
	}
}

// WriteJSON writes the whole run result as indented JSON.
func WriteJSON(w io.Writer, res triage.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
