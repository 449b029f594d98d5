/*
Package scanner normalizes Orx document text and defines an interface for
scanners used by the entry parser.

The Line Normalizer splits a document into physical lines, trims them and
drops blank lines. Tokenizers then work on single lines; an adapter for
lexmachine lives in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"

	"github.com/npillmayer/orx"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'orx.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("orx.scanner")
}

// EOF is the token type signalling the end of input.
const EOF orx.TokType = -1

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() orx.Token
	SetErrorHandler(func(error))
}

// LogError is the default error reporting function for scanners.
func LogError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// LexMachine scanners.
type DefaultToken struct {
	kind   orx.TokType
	lexeme string
	Val    interface{}
	span   orx.Span
}

var _ orx.Token = DefaultToken{}

func MakeDefaultToken(typ orx.TokType, lexeme string, span orx.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() orx.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() orx.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("<%d|%q@%s>", t.kind, t.lexeme, t.span)
}
