package manifest

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/orx"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
)

// DefaultPattern selects Orx documents.
const DefaultPattern = "**/*.orx"

// Ref references a document found by Discover.
type Ref struct {
	URL string   // storage location
	Rel string   // slash separated path relative to the manifest root
	Src []string // identifying path
}

// Name returns the identifying path joined by '/'.
func (r Ref) Name() string {
	return strings.Join(r.Src, "/")
}

// Source is the document source. It discovers documents in a manifest tree and
// reads them.
type Source struct {
	fs      afs.Service
	pattern string
}

// NewSource creates a document source for documents matching a glob pattern.
// An empty pattern selects DefaultPattern.
func NewSource(pattern string) (*Source, error) {
	return NewSourceWithFS(afs.New(), pattern)
}

// NewSourceWithFS creates a document source on a custom afs service.
func NewSourceWithFS(fs afs.Service, pattern string) (*Source, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}
	return &Source{fs: fs, pattern: pattern}, nil
}

// Discover walks the manifest tree at location recursively and returns all
// documents matching the source's pattern, ordered by relative path.
func (s *Source) Discover(ctx context.Context, location string) ([]Ref, error) {
	base, err := normalizeLocation(location)
	if err != nil {
		return nil, err
	}
	found := make(map[string]string) // relative path → URL
	if err := s.walk(ctx, base, "", found); err != nil {
		return nil, err
	}
	ordered := treeset.NewWithStringComparator()
	for rel := range found {
		ordered.Add(rel)
	}
	refs := make([]Ref, 0, ordered.Size())
	for _, v := range ordered.Values() {
		rel := v.(string)
		refs = append(refs, Ref{URL: found[rel], Rel: rel, Src: SrcOf(rel)})
	}
	return refs, nil
}

func (s *Source) walk(ctx context.Context, dirURL, rel string, found map[string]string) error {
	objects, err := s.fs.List(ctx, dirURL)
	if err != nil {
		return &IOError{Src: dirURL, Op: "list", Err: err}
	}
	self := strings.TrimRight(url.Path(dirURL), "/")
	for _, object := range objects {
		if object.IsDir() && strings.TrimRight(url.Path(object.URL()), "/") == self {
			continue // listing includes the directory itself
		}
		name := object.Name()
		relPath := path.Join(rel, name)
		if object.IsDir() {
			if err := s.walk(ctx, object.URL(), relPath, found); err != nil {
				return err
			}
			continue
		}
		if ok, _ := doublestar.Match(s.pattern, relPath); ok {
			found[relPath] = object.URL()
		}
	}
	return nil
}

// Load reads a document.
func (s *Source) Load(ctx context.Context, ref Ref) (orx.Source, error) {
	data, err := s.fs.DownloadWithURL(ctx, ref.URL)
	if err != nil {
		return orx.Source{Src: ref.Src}, &IOError{Src: ref.Name(), Op: "read", Err: err}
	}
	return orx.Source{Src: ref.Src, Content: string(data)}, nil
}

// SrcOf derives the identifying path of a document from its slash separated
// path relative to the manifest root. The last segment is cut at its first dot.
func SrcOf(rel string) []string {
	segments := strings.Split(rel, "/")
	last := len(segments) - 1
	segments[last], _, _ = strings.Cut(segments[last], ".")
	return segments
}

// Read reads a single document outside of a manifest tree. Its identifying
// path is derived from the file name alone.
func (s *Source) Read(ctx context.Context, location string) (orx.Source, error) {
	u, err := normalizeLocation(location)
	if err != nil {
		return orx.Source{}, err
	}
	name := path.Base(url.Path(u))
	return s.Load(ctx, Ref{URL: u, Rel: name, Src: SrcOf(name)})
}
