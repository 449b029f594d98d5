package orxlang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
	"sync"

	"github.com/npillmayer/orx"
	"github.com/npillmayer/orx/scanner"
	"github.com/npillmayer/orx/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// Token types. Keyword tokens carry the value of their entry kind.
const (
	tokHash  = 10 // '#', start of a comment
	tokKey   = 20 // word followed by '=', e.g. "short = "
	tokWord  = 21 // run of word characters
	tokOther = 22 // any other single byte
)

// The tokens representing literal one-char lexemes
var literals = []string{"#"}

// tokenIds will be set in initTokens()
var tokenIds map[string]int // A map from the token names to their token types

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int)
		for _, kw := range orx.Keywords() {
			k, _ := orx.KindOf(kw)
			tokenIds[kw] = int(k)
		}
		tokenIds["#"] = tokHash
		tokenIds["KEY"] = tokKey
		tokenIds["WORD"] = tokWord
		tokenIds["OTHER"] = tokOther
	})
}

// headLexer creates a lexer which recognizes a keyword prefix or a comment
// marker at the start of a line. Longest match makes "emojis" start with the
// keyword "emoji", just like a prefix match would.
func headLexer() (*lexmach.LMAdapter, error) {
	initTokens()
	init := func(lexer *lexmachine.Lexer) {}
	return lexmach.NewLMAdapter(init, literals, orx.Keywords(), tokenIds)
}

const word = `([a-z]|[A-Z]|[0-9]|_)`

// fieldLexer creates a lexer for the key=value chunks of emoji and colormap
// entries. A word followed by '=' is a key; as words are always consumed as a
// whole, keys can only start at a word boundary.
func fieldLexer() (*lexmach.LMAdapter, error) {
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(word+`+( )?=( )?`), lexmach.MakeToken("KEY", tokenIds["KEY"]))
		lexer.Add([]byte(word+`+`), lexmach.MakeToken("WORD", tokenIds["WORD"]))
		lexer.Add([]byte(`[^a-zA-Z0-9_]`), lexmach.MakeToken("OTHER", tokenIds["OTHER"]))
	}
	return lexmach.NewLMAdapter(init, nil, nil, tokenIds)
}

var heads, fields *lexmach.LMAdapter

var lexOnce sync.Once // monitors one-time creation of lexers

func createLexers() {
	lexOnce.Do(func() {
		var err error
		if heads, err = headLexer(); err != nil {
			panic("Cannot create head lexer")
		}
		if fields, err = fieldLexer(); err != nil {
			panic("Cannot create field lexer")
		}
	})
}

func ignoreErrors(error) {}

// classify returns the type of the first token of a line: an entry kind for
// a keyword prefix, tokHash for a comment and lexmach.Unmatched otherwise.
func classify(line string) orx.TokType {
	scan, err := heads.Scanner(line)
	if err != nil {
		return lexmach.Unmatched
	}
	scan.SetErrorHandler(ignoreErrors)
	return scan.NextToken().TokType()
}

// startsEntry is true for lines opening an entry or a comment.
func startsEntry(line string) bool {
	t := classify(line)
	return t == tokHash || (t >= orx.TokType(orx.KindInclude) && t <= orx.TokType(orx.KindColormap))
}

// field is a key=value chunk. Key is "" for text preceding the first key.
type field struct {
	key, value string
}

// chunk splits input right before every key token and returns the chunks as
// trimmed key/value pairs.
func chunk(input string) []field {
	scan, err := fields.Scanner(input)
	if err != nil {
		return nil
	}
	scan.SetErrorHandler(ignoreErrors)
	var chunks []field
	var key string
	var value strings.Builder
	flush := func() {
		v := strings.TrimSpace(value.String())
		if key != "" || v != "" {
			chunks = append(chunks, field{key: key, value: v})
		}
		value.Reset()
	}
	for tok := scan.NextToken(); tok.TokType() != scanner.EOF; tok = scan.NextToken() {
		if tok.TokType() == tokKey {
			flush()
			k, _, _ := strings.Cut(tok.Lexeme(), "=")
			key = strings.TrimSpace(k)
			continue
		}
		value.WriteString(tok.Lexeme())
	}
	flush()
	return chunks
}
