package orxlang

import (
	"github.com/npillmayer/orx"
	"github.com/npillmayer/orx/scanner"
	"github.com/npillmayer/orx/scanner/lexmach"
)

// Parser is the entry parser. A parser holds no state across documents and may
// be used by concurrent goroutines.
type Parser struct {
	lenient bool
	errh    func(error)
}

// Option configures a parser.
type Option func(p *Parser)

// Lenient sets or clears lenient mode. In lenient mode an emoji without a code
// receives an empty shortcode and the condition is reported to the error
// handler; otherwise it fails the document.
func Lenient(b bool) Option {
	return func(p *Parser) {
		p.lenient = b
	}
}

// ErrorHandler sets a handler for recoverable conditions, i.e. lines not
// opening an entry, unknown keys and absent fields. Errors are of type
// *orx.DecodeError. The default handler discards them.
func ErrorHandler(h func(error)) Option {
	return func(p *Parser) {
		p.errh = h
	}
}

// NewParser creates an entry parser.
func NewParser(opts ...Option) *Parser {
	createLexers()
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Parser) report(err error) {
	if p.errh != nil {
		p.errh(err)
	}
}

// Parse parses a normalized document.
func (p *Parser) Parse(doc orx.Document) (orx.ParsedDocument, error) {
	entries, spans, err := p.ParseLines(doc.Lines)
	if err != nil {
		return orx.ParsedDocument{Src: doc.Src}, err
	}
	return orx.ParsedDocument{
		Src:     doc.Src,
		Entries: entries,
		Spans:   spans,
	}, nil
}

// ParseLines scans normalized lines once, left to right, and decodes every line
// opening an entry. It returns the entries in line order, together with the
// range of line indices each entry has been decoded from.
//
// The only error returned is a *orx.DecodeError for an emoji without a code
// (unless the parser is lenient).
func (p *Parser) ParseLines(lines []orx.Line) ([]orx.Entry, []orx.Span, error) {
	entries := make([]orx.Entry, 0, len(lines))
	spans := make([]orx.Span, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		switch classify(line.Text) {
		case tokHash:
			continue
		case lexmach.Unmatched:
			p.report(&orx.DecodeError{Line: line.No, Err: orx.ErrMalformedLine})
			continue
		}
		args := scanner.Fields(line.Text)
		kind, ok := orx.KindOf(args[0])
		if !ok { // keyword is only a prefix of the first word
			p.report(&orx.DecodeError{Line: line.No, Field: args[0], Err: orx.ErrMalformedLine})
			continue
		}
		args = args[1:]
		var entry orx.Entry
		var err error
		span := orx.Span{uint64(i), uint64(i + 1)}
		switch kind {
		case orx.KindInclude:
			entry = p.decodeInclude(line, args)
		case orx.KindDefine:
			entry = p.decodeDefine(line, args)
		case orx.KindEmoji:
			entry, err = p.decodeEmoji(line, args)
		case orx.KindPalette:
			entry, span = p.decodePalette(lines, i, args)
		case orx.KindColormap:
			entry = p.decodeColormap(line, args)
		}
		if err != nil {
			return nil, nil, err
		}
		if entry != nil {
			entries = append(entries, entry)
			spans = append(spans, span)
		}
		i += int(span.Len()) - 1
	}
	return entries, spans, nil
}

// --- Convenience functions -------------------------------------------------

// Parse normalizes and parses an input text.
func Parse(input string, opts ...Option) ([]orx.Entry, error) {
	entries, _, err := NewParser(opts...).ParseLines(scanner.Normalize(input))
	return entries, err
}

// ParseSource normalizes and parses a document as supplied by a document source.
func ParseSource(src orx.Source, opts ...Option) (orx.ParsedDocument, error) {
	return NewParser(opts...).Parse(scanner.NormalizeSource(src))
}
