package scanner

import (
	"strings"

	"github.com/npillmayer/orx"
)

// Normalize splits text into physical lines, trims leading and trailing
// whitespace and drops lines which are empty after trimming. Each line keeps
// its 1-based physical line number. Normalize never fails; empty input yields
// an empty (non-nil) slice.
func Normalize(text string) []orx.Line {
	physical := strings.Split(text, "\n")
	lines := make([]orx.Line, 0, len(physical))
	for i, l := range physical {
		if l = strings.TrimSpace(l); l == "" {
			continue
		}
		lines = append(lines, orx.Line{Text: l, No: i + 1})
	}
	return lines
}

// NormalizeSource normalizes the content of a document source.
func NormalizeSource(src orx.Source) orx.Document {
	return orx.Document{
		Src:   src.Src,
		Lines: Normalize(src.Content),
	}
}

// Fields splits a normalized line at runs of whitespace.
func Fields(line string) []string {
	return strings.Fields(line)
}
