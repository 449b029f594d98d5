package orx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Kind is the tag of an entry.
type Kind int8

// Entry kinds, in the order the keywords are listed in the Orx documentation.
const (
	NoKind Kind = iota
	KindInclude
	KindDefine
	KindEmoji
	KindPalette
	KindColormap
)

var keywords = [...]string{"", "include", "define", "emoji", "palette", "colormap"}

// Keywords returns the lowercase keywords opening an entry.
func Keywords() []string {
	kw := make([]string, 0, len(keywords)-1)
	return append(kw, keywords[1:]...)
}

// KindOf returns the entry kind for a keyword. Keywords are matched case-insensitively.
func KindOf(keyword string) (Kind, bool) {
	keyword = strings.ToLower(keyword)
	for k := KindInclude; k <= KindColormap; k++ {
		if keywords[k] == keyword {
			return k, true
		}
	}
	return NoKind, false
}

func (k Kind) String() string {
	if k <= NoKind || k > KindColormap {
		return fmt.Sprintf("kind(%d)", int8(k))
	}
	return keywords[k]
}

// Entry is one decoded unit of an Orx document. Entry is a closed sum type;
// its variants are Include, Define, Emoji, Palette and Colormap. Clients
// switch on the concrete type:
//
//     switch e := entry.(type) {
//     case orx.Emoji:
//         fmt.Println(e.Short, e.Code)
//     case orx.Palette:
//         …
//     }
//
// String returns the entry in Orx syntax.
type Entry interface {
	Kind() Kind
	String() string
	isEntry()
}

var (
	_ Entry = Include{}
	_ Entry = Define{}
	_ Entry = Emoji{}
	_ Entry = Palette{}
	_ Entry = Colormap{}
)

// --- Shortcodes ------------------------------------------------------------

// Markers within a shortcode sequence.
const (
	VS16 = "$vs16" // apply variation selector 16
	ZWJ  = "$zwj"  // apply zero-width-joiner
)

// Shortcode is an ordered list of tokens representing a composed emoji code
// point sequence, possibly including VS16 and ZWJ markers.
type Shortcode []string

// ParseShortcode splits s at whitespace. The result is never nil.
func ParseShortcode(s string) Shortcode {
	return Shortcode(strings.Fields(s))
}

// Joined is true if the sequence contains a ZWJ marker.
func (sc Shortcode) Joined() bool {
	return sc.has(ZWJ)
}

// Qualified is true if the sequence contains a VS16 marker.
func (sc Shortcode) Qualified() bool {
	return sc.has(VS16)
}

func (sc Shortcode) has(marker string) bool {
	for _, t := range sc {
		if t == marker {
			return true
		}
	}
	return false
}

func (sc Shortcode) String() string {
	return strings.Join(sc, " ")
}

// --- Entry variants --------------------------------------------------------

// Include references another document. Target is a non-empty token without
// whitespace; it is not resolved.
type Include struct {
	Target string
}

func (Include) Kind() Kind { return KindInclude }
func (Include) isEntry()   {}

func (e Include) String() string {
	return "include " + e.Target
}

// MarshalJSON encodes an include as ["include", target].
func (e Include) MarshalJSON() ([]byte, error) {
	return marshalTagged(KindInclude, e.Target)
}

// Define binds a name to a raw value token. The value may be a shortcode token
// or a hex colour; the parser does not tell them apart.
type Define struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (Define) Kind() Kind { return KindDefine }
func (Define) isEntry()   {}

func (e Define) String() string {
	return "define " + e.Name + " " + e.Value
}

func (e Define) MarshalJSON() ([]byte, error) {
	type payload Define
	return marshalTagged(KindDefine, payload(e))
}

// Emoji describes a single emoji. Color and Root are optional and nil if
// absent; all other fields are required and hold "" if absent.
type Emoji struct {
	Short string    `json:"short"`
	Src   string    `json:"src"`
	Code  Shortcode `json:"code"`
	Cat   string    `json:"cat"`
	Desc  string    `json:"desc"`
	Color *string   `json:"color,omitempty"`
	Root  *string   `json:"root,omitempty"`
}

func (Emoji) Kind() Kind { return KindEmoji }
func (Emoji) isEntry()   {}

func (e Emoji) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "emoji short=%s src=%s code=%s cat=%s desc=%s",
		e.Short, e.Src, e.Code, e.Cat, e.Desc)
	if e.Color != nil {
		fmt.Fprintf(&b, " color=%s", *e.Color)
	}
	if e.Root != nil {
		fmt.Fprintf(&b, " root=%s", *e.Root)
	}
	return b.String()
}

func (e Emoji) MarshalJSON() ([]byte, error) {
	type payload Emoji
	p := payload(e)
	if p.Code == nil {
		p.Code = Shortcode{}
	}
	return marshalTagged(KindEmoji, p)
}

// PaletteEntry is a name/value pair of a palette. Names need not be unique.
type PaletteEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Palette is a named, ordered list of name/value pairs.
type Palette struct {
	Name    string         `json:"name"`
	Entries []PaletteEntry `json:"entries"`
}

func (Palette) Kind() Kind { return KindPalette }
func (Palette) isEntry()   {}

func (e Palette) String() string {
	var b strings.Builder
	b.WriteString("palette " + e.Name)
	for _, pe := range e.Entries {
		b.WriteString("\n" + pe.Name + " = " + pe.Value)
	}
	return b.String()
}

func (e Palette) MarshalJSON() ([]byte, error) {
	type payload Palette
	p := payload(e)
	if p.Entries == nil {
		p.Entries = []PaletteEntry{}
	}
	return marshalTagged(KindPalette, p)
}

// Colormap remaps colours for an emoji. All fields are required and hold ""
// if absent.
type Colormap struct {
	Name  string `json:"name"`
	Src   string `json:"src"`
	Dst   string `json:"dst"`
	Short string `json:"short"`
	Code  string `json:"code"`
	Desc  string `json:"desc"`
}

func (Colormap) Kind() Kind { return KindColormap }
func (Colormap) isEntry()   {}

func (e Colormap) String() string {
	return fmt.Sprintf("colormap %s src=%s dst=%s short=%s code=%s desc=%s",
		e.Name, e.Src, e.Dst, e.Short, e.Code, e.Desc)
}

func (e Colormap) MarshalJSON() ([]byte, error) {
	type payload Colormap
	return marshalTagged(KindColormap, payload(e))
}

// Opt returns a pointer to s, for optional fields.
func Opt(s string) *string {
	return &s
}

// --- Serialization ---------------------------------------------------------

// Entries are written as a pair [keyword, payload].
func marshalTagged(k Kind, payload interface{}) ([]byte, error) {
	return marshal([2]interface{}{k.String(), payload})
}

// marshal is json.Marshal without HTML escaping; descriptions are free text.
func marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalJSON writes a parsed document as {"src": [...], "content": [...]}.
// Spans are not serialized.
func (d ParsedDocument) MarshalJSON() ([]byte, error) {
	doc := struct {
		Src     []string `json:"src"`
		Content []Entry  `json:"content"`
	}{
		Src:     d.Src,
		Content: d.Entries,
	}
	if doc.Src == nil {
		doc.Src = []string{}
	}
	if doc.Content == nil {
		doc.Content = []Entry{}
	}
	return marshal(doc)
}
