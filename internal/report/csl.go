package report

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/review-triage/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style
// Language) format. The field names follow the CSL-YAML schema so the
// export is consumable by Pandoc and reference managers.
type CSLItem struct {
	ID       string   `yaml:"id"`
	Type     string   `yaml:"type"`
	Title    string   `yaml:"title"`
	Abstract string   `yaml:"abstract,omitempty"`
	Issued   *CSLDate `yaml:"issued,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// WriteCSL writes records as a CSL-YAML list to w. Item IDs are slugs
// derived from the title, disambiguated by position when titles repeat.
func WriteCSL(w io.Writer, records types.Collection) error {
	items := make([]CSLItem, len(records))
	seen := make(map[string]int, len(records))
	for i, r := range records {
		id := titleSlug(r.Title)
		seen[id]++
		if n := seen[id]; n > 1 {
			id = fmt.Sprintf("%s-%d", id, n)
		}
		items[i] = CSLItem{
			ID:       id,
			Type:     "article",
			Title:    r.Title,
			Abstract: r.Abstract,
			Issued:   &CSLDate{DateParts: [][]int{{r.Year}}},
		}
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// titleSlug lowercases the title and joins its first words with hyphens,
// capped at five words.
func titleSlug(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	words := strings.Fields(b.String())
	if len(words) > 5 {
		words = words[:5]
	}
	if len(words) == 0 {
		return "untitled"
	}
	return strings.Join(words, "-")
}
