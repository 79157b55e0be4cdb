// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/review-triage/pkg/types"
)

// risTagMap maps RIS tags to the field names the normalizer reads.
// T1 and N2 are the common aliases for title and abstract; Y1 carries
// the primary date when PY is absent.
var risTagMap = map[string]string{
	"TY": "type",
	"TI": "title",
	"T1": "title",
	"AB": "abstract",
	"N2": "abstract",
	"PY": "year",
	"Y1": "year",
}

// ParseRIS reads tagged RIS lines ("XX  - value") and returns one
// RawRecord per TY..ER block. Lines that match no tag pattern continue
// the previous tag's value, which is how multi-line abstracts arrive.
// Unknown tags are kept under their lowercased tag name; AU/A1 lines
// accumulate into a single semicolon-joined "authors" field.
func ParseRIS(r io.Reader) ([]types.RawRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var records []types.RawRecord
	var current types.RawRecord
	var lastKey string

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		tag, value, ok := splitRISLine(line)
		if !ok {
			// Continuation of the previous tagged value.
			if current != nil && lastKey != "" {
				current[lastKey] += " " + strings.TrimSpace(line)
			}
			continue
		}

		switch tag {
		case "TY":
			current = types.RawRecord{"type": value}
			lastKey = "type"
		case "ER":
			if current != nil {
				records = append(records, current)
				current = nil
				lastKey = ""
			}
		case "AU", "A1":
			if current == nil {
				continue
			}
			if existing := current["authors"]; existing != "" {
				current["authors"] = existing + "; " + value
			} else {
				current["authors"] = value
			}
			lastKey = "authors"
		default:
			if current == nil {
				continue
			}
			key, known := risTagMap[tag]
			if !known {
				key = strings.ToLower(tag)
			}
			if key == "year" {
				// PY wins over Y1 when both are present.
				if tag == "Y1" && current["year"] != "" {
					lastKey = ""
					continue
				}
				value = risYear(value)
			}
			current[key] = value
			lastKey = key
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading RIS input: %w", err)
	}

	// A trailing record without ER is kept; files truncated mid-record
	// are common enough in reference-manager exports.
	if current != nil {
		records = append(records, current)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no TY tag found", ErrParse)
	}
	return records, nil
}

// splitRISLine splits "XX  - value" into tag and value. The tag is two
// characters, an uppercase letter followed by an uppercase letter or
// digit, and must be followed by a hyphen separator ("ER  -" carries no
// value at all).
func splitRISLine(line string) (tag, value string, ok bool) {
	if len(line) < 4 || !isRISTag(line[:2]) {
		return "", "", false
	}
	rest := strings.TrimLeft(line[2:], " ")
	if !strings.HasPrefix(rest, "-") {
		return "", "", false
	}
	return line[:2], strings.TrimSpace(rest[1:]), true
}

func isRISTag(s string) bool {
	if s[0] < 'A' || s[0] > 'Z' {
		return false
	}
	return (s[1] >= 'A' && s[1] <= 'Z') || (s[1] >= '0' && s[1] <= '9')
}

// risYear keeps the leading component of an RIS date. PY and Y1 values
// arrive as "2021", "2021/", or "2021/03/15/spring issue"; only the year
// part matters here.
func risYear(value string) string {
	if idx := strings.IndexAny(value, "/-"); idx > 0 {
		return strings.TrimSpace(value[:idx])
	}
	return value
}
