package manifest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/orx"
	"github.com/npillmayer/orx/orxlang"
	"github.com/npillmayer/orx/scanner"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of parsing a single document.
type Result struct {
	Ref    Ref
	Doc    orx.ParsedDocument
	Digest string // structhash digest of the parsed document
	Err    error
}

// Report summarizes a build.
type Report struct {
	Results []Result // in discovery order
	Output  string   // URL written, empty if nothing was written
}

// Failed counts the documents which could not be read or parsed.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Builder compiles a manifest tree into a single output file.
type Builder struct {
	Source  *Source
	Sink    *Sink
	Lenient bool          // substitute missing emoji codes instead of failing
	Workers int           // parallel parses; < 1 means 1
	Trace   tracing.Trace // nil selects "orx.manifest"
}

func (b *Builder) trace() tracing.Trace {
	if b.Trace == nil {
		return tracing.Select("orx.manifest")
	}
	return b.Trace
}

// Build discovers the documents at location, parses them in parallel and
// writes the successfully parsed documents to the sink. Documents which fail
// are excluded from the output; their errors are returned joined, after the
// output has been written. Errors of discovery or of the sink abort the build.
func (b *Builder) Build(ctx context.Context, location string) (*Report, error) {
	refs, err := b.Source.Discover(ctx, location)
	if err != nil {
		return nil, err
	}
	b.trace().Infof("found %d document(s) in %s", len(refs), location)
	report := &Report{Results: make([]Result, len(refs))}
	workers := b.Workers
	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, ref := range refs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report.Results[i] = b.compile(gctx, ref)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var docs []orx.ParsedDocument
	var errs []error
	for _, res := range report.Results {
		if res.Err != nil {
			b.trace().Errorf("%s: %v", res.Ref.Name(), res.Err)
			errs = append(errs, res.Err)
			continue
		}
		docs = append(docs, res.Doc)
	}
	if report.Output, err = b.Sink.Write(ctx, docs); err != nil {
		return report, err
	}
	b.trace().Infof("wrote %d document(s) to %s", len(docs), report.Output)
	return report, errors.Join(errs...)
}

func (b *Builder) compile(ctx context.Context, ref Ref) Result {
	res := Result{Ref: ref}
	src, err := b.Source.Load(ctx, ref)
	if err != nil {
		res.Err = err
		return res
	}
	name := ref.Name()
	p := orxlang.NewParser(
		orxlang.Lenient(b.Lenient),
		orxlang.ErrorHandler(func(e error) {
			b.trace().Debugf("%s: %v", name, e)
		}),
	)
	if res.Doc, err = p.Parse(scanner.NormalizeSource(src)); err != nil {
		res.Err = fmt.Errorf("%s: %w", name, err)
		return res
	}
	res.Digest, res.Err = Digest(res.Doc)
	return res
}

type digestView struct {
	Src     []string
	Entries []string
}

// Digest computes a digest of a parsed document. Documents with equal
// source paths and equal entries have equal digests. Entries enter the digest
// in their tagged JSON form, which keeps every field apart.
func Digest(doc orx.ParsedDocument) (string, error) {
	view := digestView{Src: doc.Src, Entries: make([]string, len(doc.Entries))}
	for i, e := range doc.Entries {
		data, err := json.Marshal(e)
		if err != nil {
			return "", err
		}
		view.Entries[i] = string(data)
	}
	return structhash.Hash(view, 1)
}
