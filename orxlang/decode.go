package orxlang

import (
	"strings"

	"github.com/npillmayer/orx"
	"golang.org/x/exp/slices"
)

// Recognized keys of key=value entries.
var (
	emojiKeys    = []string{"short", "src", "code", "cat", "desc", "color", "root"}
	colormapKeys = []string{"src", "dst", "short", "code", "desc"}
)

// arg returns args[n] or "" and false, if there are not enough arguments.
func arg(args []string, n int) (string, bool) {
	if n < len(args) {
		return args[n], true
	}
	return "", false
}

// required reports an absent field.
func (p *Parser) required(line orx.Line, kind orx.Kind, field string) {
	p.report(&orx.DecodeError{
		Line:  line.No,
		Kind:  kind,
		Field: field,
		Err:   orx.ErrMissingRequiredField,
	})
}

// include ⟨target⟩
//
// An include without target does not produce an entry.
func (p *Parser) decodeInclude(line orx.Line, args []string) orx.Entry {
	target, ok := arg(args, 0)
	if !ok {
		p.required(line, orx.KindInclude, "target")
		return nil
	}
	return orx.Include{Target: target}
}

// define ⟨name⟩ ⟨value⟩
func (p *Parser) decodeDefine(line orx.Line, args []string) orx.Entry {
	name, ok := arg(args, 0)
	if !ok {
		p.required(line, orx.KindDefine, "name")
	}
	value, ok := arg(args, 1)
	if !ok {
		p.required(line, orx.KindDefine, "value")
	}
	return orx.Define{Name: name, Value: value}
}

// emoji short=… src=… code=… cat=… desc=… [color=…] [root=…]
func (p *Parser) decodeEmoji(line orx.Line, args []string) (orx.Entry, error) {
	kv := p.keyValues(line, orx.KindEmoji, strings.Join(args, " "), emojiKeys)
	var code orx.Shortcode
	if c, ok := kv["code"]; ok {
		code = orx.ParseShortcode(c)
	} else {
		err := &orx.DecodeError{Line: line.No, Kind: orx.KindEmoji, Err: orx.ErrMissingCode}
		if !p.lenient {
			return nil, err
		}
		p.report(err)
		code = orx.Shortcode{}
	}
	emoji := orx.Emoji{
		Short: p.lookup(kv, line, orx.KindEmoji, "short"),
		Src:   p.lookup(kv, line, orx.KindEmoji, "src"),
		Code:  code,
		Cat:   p.lookup(kv, line, orx.KindEmoji, "cat"),
		Desc:  p.lookup(kv, line, orx.KindEmoji, "desc"),
	}
	if color, ok := kv["color"]; ok {
		emoji.Color = orx.Opt(color)
	}
	if root, ok := kv["root"]; ok {
		emoji.Root = orx.Opt(root)
	}
	return emoji, nil
}

// palette ⟨name⟩, followed by continuation lines ⟨name⟩ = ⟨value⟩
//
// Continuation lines are consumed up to the end of the document or the first
// line opening an entry or a comment. Returns the palette and the range of
// lines consumed, including the header.
func (p *Parser) decodePalette(lines []orx.Line, at int, args []string) (orx.Entry, orx.Span) {
	name, ok := arg(args, 0)
	if !ok {
		p.required(lines[at], orx.KindPalette, "name")
	}
	palette := orx.Palette{Name: name, Entries: []orx.PaletteEntry{}}
	span := orx.Span{uint64(at), uint64(at + 1)}
	for n := at + 1; n < len(lines); n++ {
		line := lines[n]
		if startsEntry(line.Text) {
			break
		}
		span = span.Extend(orx.Span{uint64(n), uint64(n + 1)})
		k, v, found := strings.Cut(line.Text, " = ")
		if !found {
			p.required(line, orx.KindPalette, "value")
		}
		palette.Entries = append(palette.Entries, orx.PaletteEntry{
			Name:  strings.TrimSpace(k),
			Value: strings.TrimSpace(v),
		})
	}
	return palette, span
}

// colormap ⟨name⟩ src=… dst=… short=… code=… desc=…
func (p *Parser) decodeColormap(line orx.Line, args []string) orx.Entry {
	name, ok := arg(args, 0)
	if !ok {
		p.required(line, orx.KindColormap, "name")
	}
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}
	kv := p.keyValues(line, orx.KindColormap, strings.Join(rest, " "), colormapKeys)
	return orx.Colormap{
		Name:  name,
		Src:   p.lookup(kv, line, orx.KindColormap, "src"),
		Dst:   p.lookup(kv, line, orx.KindColormap, "dst"),
		Short: p.lookup(kv, line, orx.KindColormap, "short"),
		Code:  p.lookup(kv, line, orx.KindColormap, "code"),
		Desc:  p.lookup(kv, line, orx.KindColormap, "desc"),
	}
}

// keyValues chunks input into key=value pairs. For keys occuring more than
// once, the first occurence wins. Unknown keys are reported and dropped.
func (p *Parser) keyValues(line orx.Line, kind orx.Kind, input string, known []string) map[string]string {
	kv := make(map[string]string, len(known))
	for _, f := range chunk(input) {
		if !slices.Contains(known, f.key) {
			unknown := f.key
			if unknown == "" {
				unknown = f.value
			}
			p.report(&orx.DecodeError{Line: line.No, Kind: kind, Field: unknown, Err: orx.ErrUnknownKey})
			continue
		}
		if _, dup := kv[f.key]; !dup {
			kv[f.key] = f.value
		}
	}
	return kv
}

// lookup returns the value for a required key, or "" if it is absent.
func (p *Parser) lookup(kv map[string]string, line orx.Line, kind orx.Kind, key string) string {
	v, ok := kv[key]
	if !ok {
		p.required(line, kind, key)
	}
	return v
}
