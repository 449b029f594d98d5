package main

import (
	"fmt"

	"github.com/npillmayer/orx"
	"github.com/npillmayer/orx/runtime"
	"github.com/pterm/pterm"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  "  Note",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func renderTree(label string, ll pterm.LeveledList) {
	pterm.Println(label)
	if len(ll) == 0 {
		pterm.Info.Println("no entries")
		return
	}
	tracer().Debugf("|ll| = %d", len(ll))
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

// leveledDocument lists the entries of a document, each labeled with its kind
// and the range of lines it has been decoded from, and its fields one level
// below.
func leveledDocument(doc orx.ParsedDocument) pterm.LeveledList {
	ll := pterm.LeveledList{}
	for i, e := range doc.Entries {
		label := e.Kind().String()
		if i < len(doc.Spans) {
			label = fmt.Sprintf("%s %s", label, doc.Spans[i])
		}
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: label})
		ll = leveledEntry(e, ll, 1)
	}
	return ll
}

func leveledEntry(e orx.Entry, ll pterm.LeveledList, level int) pterm.LeveledList {
	field := func(lvl int, key, value string) {
		ll = append(ll, pterm.LeveledListItem{Level: lvl, Text: key + " = " + value})
	}
	switch x := e.(type) {
	case orx.Include:
		field(level, "target", x.Target)
	case orx.Define:
		field(level, "name", x.Name)
		field(level, "value", x.Value)
	case orx.Emoji:
		field(level, "short", x.Short)
		field(level, "src", x.Src)
		field(level, "code", x.Code.String())
		field(level, "cat", x.Cat)
		field(level, "desc", x.Desc)
		if x.Color != nil {
			field(level, "color", *x.Color)
		}
		if x.Root != nil {
			field(level, "root", *x.Root)
		}
	case orx.Palette:
		field(level, "name", x.Name)
		for _, pe := range x.Entries {
			field(level+1, pe.Name, pe.Value)
		}
	case orx.Colormap:
		field(level, "name", x.Name)
		field(level, "src", x.Src)
		field(level, "dst", x.Dst)
		field(level, "short", x.Short)
		field(level, "code", x.Code)
		field(level, "desc", x.Desc)
	}
	return ll
}

// leveledSymbols lists the names declared in a scope and its ancestors,
// innermost scope first.
func leveledSymbols(sc *runtime.Scope) pterm.LeveledList {
	ll := pterm.LeveledList{}
	for ; sc != nil; sc = sc.Parent {
		ll = leveledScope(sc, ll)
	}
	return ll
}

// leveledScope lists the names declared in a single scope.
func leveledScope(sc *runtime.Scope, ll pterm.LeveledList) pterm.LeveledList {
	ll = append(ll, pterm.LeveledListItem{Level: 0, Text: "scope " + sc.Name})
	sc.Tags().Each(func(name string, tag *runtime.Tag) {
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: name})
		ll = leveledTag(tag, ll, 2)
	})
	return ll
}

func leveledTag(tag *runtime.Tag, ll pterm.LeveledList, level int) pterm.LeveledList {
	for _, e := range tag.Entries {
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: e.String()})
	}
	return ll
}
