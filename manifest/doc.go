/*
Package manifest builds Orx manifests.

A manifest is a directory tree of Orx documents. Package manifest implements
the collaborators of the entry parser: a document source discovering and
reading documents, a sink writing the parsed tree, and a builder connecting
both with the parser. Storage is accessed through github.com/viant/afs, so
manifests may live on any storage afs supports; plain paths denote local files.

Documents are identified by their path relative to the manifest root, split
into segments, with the file extension cut off the last segment:

	manifest/faces/smileys.orx   ⇒   ["faces", "smileys"]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package manifest

import (
	"fmt"
	"path/filepath"

	"github.com/viant/afs/url"
)

// IOError is an error of the storage layer. It is fatal to the document it
// occurs for, but not to a build.
type IOError struct {
	Src string // document or destination
	Op  string // "list", "read" or "write"
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot %s %s: %v", e.Op, e.Src, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// normalizeLocation turns relative and absolute OS paths into file URLs and
// leaves URLs with a scheme as they are.
func normalizeLocation(location string) (string, error) {
	norm := location
	if url.Scheme(norm, "") == "" && url.IsRelative(norm) {
		var err error
		if norm, err = filepath.Abs(norm); err != nil {
			return "", fmt.Errorf("failed to get absolute path for %s: %w", location, err)
		}
	}
	if url.Scheme(norm, "") == "" && !url.IsRelative(norm) {
		norm = url.ToFileURL(norm)
	}
	return norm, nil
}
