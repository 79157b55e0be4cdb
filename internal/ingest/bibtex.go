// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/pdiddy/review-triage/pkg/types"
)

// ParseBibTeX reads "@type{key, field = {value}, ...}" entries and
// returns one RawRecord per entry. Field names are lowercased; values
// may be brace-delimited (nested braces honored), quote-delimited, or
// bare numbers. @comment, @preamble, and @string blocks are skipped.
// The parser is deliberately tolerant: unparseable trailing garbage
// after the last complete entry is ignored, but input with no entry at
// all is a parse error.
func ParseBibTeX(r io.Reader) ([]types.RawRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading BibTeX input: %w", err)
	}
	src := string(data)

	var records []types.RawRecord
	pos := 0
	for {
		at := strings.IndexByte(src[pos:], '@')
		if at < 0 {
			break
		}
		pos += at + 1

		entryType, next := readBibIdent(src, pos)
		pos = next
		kind := strings.ToLower(entryType)
		switch kind {
		case "comment", "preamble", "string":
			pos = skipBibBlock(src, pos)
			continue
		case "":
			continue
		}

		entry, next, ok := parseBibEntry(src, pos, kind)
		pos = next
		if ok {
			records = append(records, entry)
		}
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no entry found", ErrParse)
	}
	return records, nil
}

// parseBibEntry parses the "{key, field = value, ...}" body following an
// entry type. It returns ok=false for bodies it cannot make sense of.
func parseBibEntry(src string, pos int, kind string) (types.RawRecord, int, bool) {
	pos = skipBibSpace(src, pos)
	if pos >= len(src) || src[pos] != '{' {
		return nil, pos, false
	}
	pos++

	// Citation key runs to the first comma.
	keyStart := pos
	for pos < len(src) && src[pos] != ',' && src[pos] != '}' {
		pos++
	}
	entry := types.RawRecord{
		"type": kind,
		"key":  strings.TrimSpace(src[keyStart:pos]),
	}
	if pos < len(src) && src[pos] == '}' {
		return entry, pos + 1, true
	}
	pos++ // consume the comma

	for {
		pos = skipBibSpace(src, pos)
		if pos >= len(src) {
			return entry, pos, true
		}
		if src[pos] == '}' {
			return entry, pos + 1, true
		}
		if src[pos] == ',' {
			pos++
			continue
		}

		name, next := readBibIdent(src, pos)
		pos = skipBibSpace(src, next)
		if name == "" || pos >= len(src) || src[pos] != '=' {
			// Lost sync inside the entry; bail out at the next brace.
			for pos < len(src) && src[pos] != '}' {
				pos++
			}
			continue
		}
		pos = skipBibSpace(src, pos+1)

		value, next, ok := readBibValue(src, pos)
		if !ok {
			return entry, next, true
		}
		pos = next
		entry[strings.ToLower(name)] = value
	}
}

// readBibValue reads a brace-delimited, quote-delimited, or bare field
// value starting at pos.
func readBibValue(src string, pos int) (string, int, bool) {
	if pos >= len(src) {
		return "", pos, false
	}
	switch src[pos] {
	case '{':
		depth := 0
		start := pos + 1
		for ; pos < len(src); pos++ {
			switch src[pos] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return cleanBibValue(src[start:pos]), pos + 1, true
				}
			}
		}
		return "", pos, false
	case '"':
		start := pos + 1
		for pos = start; pos < len(src); pos++ {
			if src[pos] == '"' {
				return cleanBibValue(src[start:pos]), pos + 1, true
			}
		}
		return "", pos, false
	default:
		// Bare value: a number or macro name, up to comma or brace.
		start := pos
		for pos < len(src) && src[pos] != ',' && src[pos] != '}' && src[pos] != '\n' {
			pos++
		}
		return strings.TrimSpace(src[start:pos]), pos, true
	}
}

// cleanBibValue collapses the line-wrapping whitespace BibTeX files use
// inside long field values and strips protective inner braces.
func cleanBibValue(s string) string {
	s = strings.NewReplacer("{", "", "}", "").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// skipBibBlock skips a balanced {...} block, for @comment and friends.
func skipBibBlock(src string, pos int) int {
	pos = skipBibSpace(src, pos)
	if pos >= len(src) || src[pos] != '{' {
		return pos
	}
	depth := 0
	for ; pos < len(src); pos++ {
		switch src[pos] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return pos + 1
			}
		}
	}
	return pos
}

func readBibIdent(src string, pos int) (string, int) {
	start := pos
	for pos < len(src) {
		c := rune(src[pos])
		if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' || c == '-' {
			pos++
			continue
		}
		break
	}
	return src[start:pos], pos
}

func skipBibSpace(src string, pos int) int {
	for pos < len(src) && (src[pos] == ' ' || src[pos] == '\t' || src[pos] == '\n' || src[pos] == '\r') {
		pos++
	}
	return pos
}
