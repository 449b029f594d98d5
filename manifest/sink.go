package manifest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/npillmayer/orx"
	"github.com/tidwall/pretty"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var jsonStyle = &pretty.Options{Width: 80, Prefix: "", Indent: "    ", SortKeys: false}

// Sink writes parsed documents to a single file.
type Sink struct {
	fs      afs.Service
	OutDir  string
	OutFile string
	Format  string
}

// NewSink creates a sink writing to outDir/outFile in the given format.
func NewSink(outDir, outFile, format string) *Sink {
	return NewSinkWithFS(afs.New(), outDir, outFile, format)
}

// NewSinkWithFS creates a sink on a custom afs service.
func NewSinkWithFS(fs afs.Service, outDir, outFile, format string) *Sink {
	return &Sink{fs: fs, OutDir: outDir, OutFile: outFile, Format: format}
}

// Encode serializes the documents in the sink's format.
func (s *Sink) Encode(docs []orx.ParsedDocument) ([]byte, error) {
	if docs == nil {
		docs = []orx.ParsedDocument{}
	}
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(docs); err != nil {
		return nil, err
	}
	switch s.Format {
	case "", FormatJSON:
		return pretty.PrettyOptions(buf.Bytes(), jsonStyle), nil
	case FormatYAML:
		return yaml.JSONToYAML(buf.Bytes())
	}
	return nil, fmt.Errorf("unknown output format %q", s.Format)
}

// Write encodes the documents and stores them, creating the output directory
// if necessary. It returns the URL written.
func (s *Sink) Write(ctx context.Context, docs []orx.ParsedDocument) (string, error) {
	data, err := s.Encode(docs)
	if err != nil {
		return "", err
	}
	dir, err := normalizeLocation(s.OutDir)
	if err != nil {
		return "", err
	}
	if exists, _ := s.fs.Exists(ctx, dir); !exists {
		if err := s.fs.Create(ctx, dir, file.DefaultDirOsMode, true); err != nil {
			return "", &IOError{Src: dir, Op: "write", Err: err}
		}
	}
	target := url.Join(dir, s.OutFile)
	if err := s.fs.Upload(ctx, target, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return "", &IOError{Src: target, Op: "write", Err: err}
	}
	return target, nil
}
