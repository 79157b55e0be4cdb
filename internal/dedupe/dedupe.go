// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dedupe removes records that collide on the exact
// (title, abstract) composite key.
package dedupe

import (
	"github.com/pdiddy/review-triage/pkg/types"
)

// key is the composite duplicate key. Comparison is exact string
// equality: case-sensitive, no whitespace normalization.
type key struct {
	title    string
	abstract string
}

// Resolve partitions records into the duplicate group and the
// deduplicated collection. The group contains every record that shares
// its key with at least one other record, in input order, so duplicate
// sets can be inspected whole. The deduplicated collection keeps the
// first occurrence of each key and drops the rest; year and similarity
// come from that first occurrence. The result depends only on input
// order, never on map iteration order.
func Resolve(records types.Collection) (group, deduped types.Collection) {
	counts := make(map[key]int, len(records))
	for _, r := range records {
		counts[key{r.Title, r.Abstract}]++
	}

	seen := make(map[key]bool, len(records))
	for _, r := range records {
		k := key{r.Title, r.Abstract}
		if counts[k] > 1 {
			group = append(group, r)
		}
		if !seen[k] {
			seen[k] = true
			deduped = append(deduped, r)
		}
	}
	return group, deduped
}
