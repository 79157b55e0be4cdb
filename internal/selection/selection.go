// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package selection applies the keyword and date criteria to the
// coherent record set and derives the year aggregations the
// presentation layer consumes.
package selection

import (
	"sort"
	"strings"

	"github.com/pdiddy/review-triage/pkg/types"
)

// Apply returns the records whose abstract contains at least one of the
// configured keywords (case-insensitive substring match) and whose year
// lies within the configured inclusive range. Input order is preserved.
func Apply(records types.Collection, cfg types.SelectionConfig) types.Collection {
	var out types.Collection
	for _, r := range records {
		if r.Year < cfg.YearFrom || r.Year > cfg.YearTo {
			continue
		}
		if matchesKeyword(r.Abstract, cfg.Keywords) {
			out = append(out, r)
		}
	}
	return out
}

func matchesKeyword(abstract string, keywords []string) bool {
	lower := strings.ToLower(abstract)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// YearCount is one histogram bucket: how many records carry a given year.
type YearCount struct {
	Year  int `json:"year" yaml:"year"`
	Count int `json:"count" yaml:"count"`
}

// Histogram groups records by year, ascending.
func Histogram(records types.Collection) []YearCount {
	counts := make(map[int]int)
	for _, r := range records {
		counts[r.Year]++
	}
	out := make([]YearCount, 0, len(counts))
	for year, n := range counts {
		out = append(out, YearCount{Year: year, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// ByYear returns the sub-collection of records published in year.
func ByYear(records types.Collection, year int) types.Collection {
	var out types.Collection
	for _, r := range records {
		if r.Year == year {
			out = append(out, r)
		}
	}
	return out
}
