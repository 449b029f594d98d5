package lexmach

import (
	"strings"
	"unicode"

	"github.com/npillmayer/orx"
	"github.com/npillmayer/orx/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'orx.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("orx.scanner")
}

// Unmatched is the token type for input no pattern of the lexer matches.
const Unmatched orx.TokType = -2

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('#', '=', …), a list of keywords ("emoji", "palette", …) and a
// map for translating token strings to their values. Keywords match regardless
// of case. Patterns added by init take precedence over literals and keywords
// for matches of equal length.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(Caseless(name)), MakeToken(name, tokenIds[name]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Caseless creates a pattern matching word regardless of the case of its letters,
// e.g. "emoji" ⇒ "[eE][mM][oO][jJ][iI]".
func Caseless(word string) string {
	var b strings.Builder
	for _, r := range word {
		lo, up := unicode.ToLower(r), unicode.ToUpper(r)
		if lo == up {
			b.WriteRune(r)
			continue
		}
		b.WriteString("[" + string(lo) + string(up) + "]")
	}
	return b.String()
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, input: []byte(input), Error: scanner.LogError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	input   []byte
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = scanner.LogError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface.
//
// Input which cannot be matched is reported to the error handler and returned
// as a token of type Unmatched.
func (lms *LMScanner) NextToken() orx.Token {
	if lms.scanner == nil {
		return scanner.MakeDefaultToken(scanner.EOF, "", orx.Span{})
	}
	start := lms.scanner.TC
	tok, err, eof := lms.scanner.Next()
	if err != nil {
		lms.Error(err)
		ui, is := err.(*machines.UnconsumedInput)
		if !is {
			return scanner.MakeDefaultToken(scanner.EOF, "", orx.Span{})
		}
		end := ui.FailTC
		if end <= start {
			end = start + 1
		}
		if end > len(lms.input) {
			end = len(lms.input)
		}
		lms.scanner.TC = end
		return scanner.MakeDefaultToken(Unmatched, string(lms.input[start:end]),
			orx.Span{uint64(start), uint64(end)})
	}
	if eof {
		return scanner.MakeDefaultToken(scanner.EOF, "", orx.Span{uint64(len(lms.input)), uint64(len(lms.input))})
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	t := scanner.MakeDefaultToken(
		orx.TokType(token.Type),
		string(token.Lexeme),
		orx.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
	t.Val = token.Value
	return t
}

// ---------------------------------------------------------------------------

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
