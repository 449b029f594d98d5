package manifest

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/orx"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return root
}

func TestSrcOf(t *testing.T) {
	assert.Equal(t, []string{"faces", "smileys"}, SrcOf("faces/smileys.orx"))
	assert.Equal(t, []string{"a"}, SrcOf("a.orx"))
	assert.Equal(t, []string{"b", "c", "d"}, SrcOf("b/c/d.x.orx"))
	assert.Equal(t, []string{"noext"}, SrcOf("noext"))
}

func TestDiscover(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orx.manifest")
	defer teardown()
	//
	root := writeTree(t, map[string]string{
		"faces/smileys.orx": "include a",
		"faces/notes.txt":   "not a document",
		"b/c/d.x.orx":       "",
		"a.orx":             "",
	})
	src, err := NewSource("")
	require.NoError(t, err)
	refs, err := src.Discover(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, refs, 3)
	rels := []string{refs[0].Rel, refs[1].Rel, refs[2].Rel}
	assert.Equal(t, []string{"a.orx", "b/c/d.x.orx", "faces/smileys.orx"}, rels)
	assert.Equal(t, []string{"b", "c", "d"}, refs[1].Src)
	assert.Equal(t, "faces/smileys", refs[2].Name())

	doc, err := src.Load(context.Background(), refs[2])
	require.NoError(t, err)
	assert.Equal(t, "include a", doc.Content)
	assert.Equal(t, []string{"faces", "smileys"}, doc.Src)
}

func TestDiscoverPattern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orx.manifest")
	defer teardown()
	//
	root := writeTree(t, map[string]string{
		"faces/smileys.orx": "",
		"flags/eu.orx":      "",
	})
	src, err := NewSource("faces/*.orx")
	require.NoError(t, err)
	refs, err := src.Discover(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "faces/smileys.orx", refs[0].Rel)

	_, err = NewSource("[")
	assert.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orx.manifest")
	defer teardown()
	//
	src, err := NewSource("")
	require.NoError(t, err)
	ref := Ref{URL: "file://" + filepath.ToSlash(filepath.Join(t.TempDir(), "gone.orx")), Src: []string{"gone"}}
	_, err = src.Load(context.Background(), ref)
	var ioerr *IOError
	require.True(t, errors.As(err, &ioerr), "expected IOError, have %v", err)
	assert.Equal(t, "read", ioerr.Op)
	assert.Equal(t, "gone", ioerr.Src)
}

func sampleDocs() []orx.ParsedDocument {
	return []orx.ParsedDocument{{
		Src: []string{"faces", "smileys"},
		Entries: []orx.Entry{
			orx.Include{Target: "<base>"},
			orx.Emoji{Short: ":d:", Src: "x.png", Code: orx.Shortcode{"1F600"}, Cat: "faces", Desc: "grin"},
		},
		Spans: []orx.Span{{0, 1}, {1, 2}},
	}}
}

func TestSinkJSON(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orx.manifest")
	defer teardown()
	//
	data, err := NewSink("", "", FormatJSON).Encode(sampleDocs())
	require.NoError(t, err)
	assert.Contains(t, string(data), "<base>", "HTML characters must not be escaped")
	assert.Contains(t, string(data), "\n    {", "expected 4 space indentation")
	var tree []struct {
		Src     []string          `json:"src"`
		Content []json.RawMessage `json:"content"`
	}
	require.NoError(t, json.Unmarshal(data, &tree))
	require.Len(t, tree, 1)
	assert.Equal(t, []string{"faces", "smileys"}, tree[0].Src)
	require.Len(t, tree[0].Content, 2)
	var tagged []any
	require.NoError(t, json.Unmarshal(tree[0].Content[1], &tagged))
	assert.Equal(t, "emoji", tagged[0])
	payload := tagged[1].(map[string]any)
	assert.Equal(t, []any{"1F600"}, payload["code"])
	assert.NotContains(t, payload, "color")

	empty, err := NewSink("", "", FormatJSON).Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(empty)))
}

func TestSinkYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orx.manifest")
	defer teardown()
	//
	data, err := NewSink("", "", FormatYAML).Encode(sampleDocs())
	require.NoError(t, err)
	assert.Contains(t, string(data), "src:")
	assert.Contains(t, string(data), "smileys")

	_, err = NewSink("", "", "xml").Encode(sampleDocs())
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orx.manifest")
	defer teardown()
	//
	root := writeTree(t, map[string]string{
		"good.orx":   "include base\ndefine red #ff0000\npalette p\na = 1",
		"broken.orx": "emoji short=:x: src=x.png cat=c desc=d",
	})
	out := filepath.Join(t.TempDir(), "out", "nested")
	src, err := NewSource("")
	require.NoError(t, err)
	b := &Builder{Source: src, Sink: NewSink(out, "orx.json", FormatJSON), Workers: 2}
	report, err := b.Build(context.Background(), root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, orx.ErrMissingCode), "expected missing code, have %v", err)
	require.NotNil(t, report)
	assert.Equal(t, 1, report.Failed())
	require.Len(t, report.Results, 2)
	assert.Equal(t, "broken", report.Results[0].Ref.Name())
	assert.Equal(t, 3, len(report.Results[1].Doc.Entries))
	assert.NotEmpty(t, report.Results[1].Digest)

	data, err := os.ReadFile(filepath.Join(out, "orx.json"))
	require.NoError(t, err)
	var tree []map[string]any
	require.NoError(t, json.Unmarshal(data, &tree))
	require.Len(t, tree, 1, "failing document must be excluded")
	assert.Equal(t, []any{"good"}, tree[0]["src"])
}

func TestBuildLenient(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orx.manifest")
	defer teardown()
	//
	root := writeTree(t, map[string]string{
		"broken.orx": "emoji short=:x: src=x.png cat=c desc=d",
	})
	src, err := NewSource("")
	require.NoError(t, err)
	out := t.TempDir()
	b := &Builder{Source: src, Sink: NewSink(out, "orx.yaml", FormatYAML), Lenient: true}
	report, err := b.Build(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Failed())
	_, err = os.Stat(filepath.Join(out, "orx.yaml"))
	assert.NoError(t, err)
}

func TestDigest(t *testing.T) {
	d1, err := Digest(sampleDocs()[0])
	require.NoError(t, err)
	d2, err := Digest(sampleDocs()[0])
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
	other := sampleDocs()[0]
	other.Entries = other.Entries[:1]
	d3, err := Digest(other)
	require.NoError(t, err)
	assert.NotEqual(t, d1, d3)

	plain := orx.ParsedDocument{Src: []string{"x"}, Entries: []orx.Entry{
		orx.Emoji{Short: ":a:", Code: orx.Shortcode{"1F600"}, Desc: "d color=x"},
	}}
	colored := orx.ParsedDocument{Src: []string{"x"}, Entries: []orx.Entry{
		orx.Emoji{Short: ":a:", Code: orx.Shortcode{"1F600"}, Desc: "d", Color: orx.Opt("x")},
	}}
	require.Equal(t, plain.Entries[0].String(), colored.Entries[0].String())
	dp, err := Digest(plain)
	require.NoError(t, err)
	dc, err := Digest(colored)
	require.NoError(t, err)
	assert.NotEqual(t, dp, dc, "a color must not hash like a description mentioning it")
}
