package ingest

import (
	"strconv"
	"strings"

	"github.com/pdiddy/review-triage/pkg/types"
)

// Batch pairs a collection of normalized records with the count of
// records that were rejected while producing it. Rejected records are
// tallied, never stored.
type Batch struct {
	Records types.Collection
	Invalid int
}

// Normalize converts raw parsed records into normalized records. A
// record is kept iff title and abstract are present and non-empty and
// year parses as an integer; anything else increments the invalid count
// and is discarded. An unparseable year rejects that record only, never
// the rest of the batch. Input order is preserved.
func Normalize(raws []types.RawRecord) Batch {
	var b Batch
	for _, raw := range raws {
		title := raw["title"]
		abstract := raw["abstract"]
		year, err := parseYear(raw["year"])
		if title == "" || abstract == "" || err != nil {
			b.Invalid++
			continue
		}
		b.Records = append(b.Records, types.Record{
			Title:    title,
			Abstract: abstract,
			Year:     year,
		})
	}
	return b
}

// Aggregate concatenates batches in argument order and sums their
// invalid counts. Deduplication is deliberately not done here; that is
// the duplicate resolver's job.
func Aggregate(batches ...Batch) Batch {
	var out Batch
	for _, b := range batches {
		out.Records = append(out.Records, b.Records...)
		out.Invalid += b.Invalid
	}
	return out
}

func parseYear(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
