package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/orx"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalAll(t *testing.T, intp *Intp, lines ...string) error {
	t.Helper()
	var last error
	for _, line := range lines {
		quit, err := intp.Eval(context.Background(), line)
		require.False(t, quit)
		last = err
	}
	return last
}

func TestEvalBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orx.cmd")
	defer teardown()
	//
	intp := newIntp(false)
	require.NoError(t, evalAll(t, intp, "define red #ff0000", "  palette warm", "a = 1"))
	assert.Len(t, intp.block, 3, "lines are collected until an empty line")
	require.NoError(t, evalAll(t, intp, ""))
	assert.Empty(t, intp.block)
	tag, sc := intp.rt.Lookup("red")
	require.NotNil(t, tag)
	assert.Equal(t, "globals", sc.Name)
	assert.Equal(t, orx.Define{Name: "red", Value: "#ff0000"}, tag.Latest(orx.KindDefine))
	tag, _ = intp.rt.Lookup("warm")
	require.NotNil(t, tag)
	assert.Equal(t, orx.KindPalette, tag.Latest(orx.NoKind).Kind())
}

func TestEvalLenient(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orx.cmd")
	defer teardown()
	//
	intp := newIntp(false)
	err := evalAll(t, intp, "emoji short=:x: src=x.png cat=c desc=d", "")
	assert.True(t, errors.Is(err, orx.ErrMissingCode), "expected missing code, have %v", err)
	tag, _ := intp.rt.Lookup(":x:")
	assert.Nil(t, tag, "a failing block declares nothing")

	require.NoError(t, evalAll(t, intp, ":lenient on"))
	assert.True(t, intp.lenient)
	require.NoError(t, evalAll(t, intp, "emoji short=:x: src=x.png cat=c desc=d", ""))
	tag, _ = intp.rt.Lookup(":x:")
	require.NotNil(t, tag)
}

func TestCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orx.cmd")
	defer teardown()
	//
	intp := newIntp(false)
	ctx := context.Background()
	quit, err := intp.Eval(ctx, ":quit")
	assert.NoError(t, err)
	assert.True(t, quit)
	for _, cmd := range []string{":", ":frobnicate", ":lookup nope", ":lenient maybe", ":load"} {
		quit, err = intp.Eval(ctx, cmd)
		assert.False(t, quit)
		assert.Error(t, err, cmd)
	}
	require.NoError(t, evalAll(t, intp, ":symbols"))
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orx.cmd")
	defer teardown()
	//
	file := filepath.Join(t.TempDir(), "faces.orx")
	require.NoError(t, os.WriteFile(file, []byte("palette p\na = 1\nb = 2\n"), 0o644))
	intp := newIntp(false)
	require.NoError(t, evalAll(t, intp, ":load "+file))
	tag, sc := intp.rt.Lookup("p")
	require.NotNil(t, tag)
	assert.Equal(t, "faces", sc.Name)
	require.NoError(t, evalAll(t, intp, ":lookup p"))

	other := filepath.Join(filepath.Dir(file), "flags.orx")
	require.NoError(t, os.WriteFile(other, []byte("define blue #0000ff\n"), 0o644))
	require.NoError(t, evalAll(t, intp, ":load "+other, "define red #ff0000", ""))
	flags := intp.rt.Documents[1]
	assert.Equal(t, "flags", flags.Name)
	tag, _ = flags.ResolveTag("p")
	assert.Nil(t, tag, "a loaded document must not see names of another one")
	_, sc = intp.rt.Lookup("red")
	assert.Equal(t, "globals", sc.Name, "blocks after :load are declared globally")
	_, sc = intp.rt.Lookup("blue")
	assert.Equal(t, "flags", sc.Name)
	require.NoError(t, evalAll(t, intp, ":symbols"))
}

func TestLeveledDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orx.cmd")
	defer teardown()
	//
	doc := orx.ParsedDocument{
		Src: []string{"x"},
		Entries: []orx.Entry{
			orx.Palette{Name: "p", Entries: []orx.PaletteEntry{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}}},
			orx.Include{Target: "base"},
		},
		Spans: []orx.Span{{0, 3}, {3, 4}},
	}
	ll := leveledDocument(doc)
	require.Len(t, ll, 6)
	assert.Equal(t, 0, ll[0].Level)
	assert.Equal(t, "palette (0…3)", ll[0].Text)
	assert.Equal(t, "name = p", ll[1].Text)
	assert.Equal(t, 2, ll[2].Level)
	assert.Equal(t, "a = 1", ll[2].Text)
	assert.Equal(t, "include (3…4)", ll[4].Text)
	assert.Equal(t, "target = base", ll[5].Text)
}

func TestBuildCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "orx.cmd")
	defer teardown()
	//
	manifestDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(manifestDir, "a.orx"), []byte("include b\n"), 0o644))
	out := t.TempDir()
	root := newRootCommand()
	root.SetArgs([]string{"build", manifestDir, "--out-dir", out, "--out-file", "a.yaml",
		"--format", "yaml", "--workers", "2", "--trace", "Error"})
	require.NoError(t, root.ExecuteContext(context.Background()))
	data, err := os.ReadFile(filepath.Join(out, "a.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "include")

	root = newRootCommand()
	root.SetArgs([]string{"build", manifestDir, "--format", "xml"})
	assert.Error(t, root.ExecuteContext(context.Background()), "flags are validated")
}
