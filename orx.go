package orx

import (
	"fmt"
	"strings"
)

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants here, as
// it is up to applications to define them.
type TokType int

// Tokens represent input tokens. They are usually produced by a scanner and
// reflect terminals in a language.
//
// An example would be a key token within an emoji entry:
//
//    TokType = Key          // identifier for this kind of tokens (application specific)
//    Lexeme  = "short = "   // lexeme how it appeared in the input stream
//    Value   = "short"      // the key name
//    Span    = 0…8          // occured from position 0 in the input line
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input positions. Scanners use
// spans as byte positions within a line, the entry parser uses them as indices
// into the normalized line sequence of a document. A span denotes a start
// position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// Extend returns the smallest span covering s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Documents -------------------------------------------------------------

// Line is a normalized input line: trimmed and never empty.
// No is the physical, 1-based line number within the source text.
type Line struct {
	Text string
	No   int
}

func (l Line) String() string {
	return fmt.Sprintf("%4d: %s", l.No, l.Text)
}

// Source is a document as supplied by a document source: an identifying path
// and the raw text content. The path is opaque to the parser.
type Source struct {
	Src     []string
	Content string
}

// Name returns the path segments joined by '/'.
func (s Source) Name() string {
	return strings.Join(s.Src, "/")
}

// Document is a normalized document, i.e. a sequence of non-blank lines plus
// the identifying path of its source.
type Document struct {
	Src   []string
	Lines []Line
}

// ParsedDocument is the parse result for one document. The order of Entries
// mirrors source line order. Spans[i] holds the range of normalized line indices
// Entries[i] has been decoded from.
type ParsedDocument struct {
	Src     []string
	Entries []Entry
	Spans   []Span
}

// Name returns the path segments joined by '/'.
func (d ParsedDocument) Name() string {
	return strings.Join(d.Src, "/")
}

// Count returns the number of entries of kind k.
func (d ParsedDocument) Count(k Kind) int {
	n := 0
	for _, e := range d.Entries {
		if e.Kind() == k {
			n++
		}
	}
	return n
}
