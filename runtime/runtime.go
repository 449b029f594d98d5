/*
Package runtime implements a symbol environment for Orx tools, consisting of
scopes and symbols (named entries).

Symbol Table and Scope Tree

This module implements data structures for scope trees and symbol tables
attached to them. Entries naming something (defines, palettes, colormaps and
emoji shortcodes) are declared as tags in the current scope. Interactive tools
use a global scope for the session. A document is either loaded, pushing its
scope onto the scope stack, or attached as a sibling scope below the global
scope. Lookups resolve from the innermost scope outwards, then in the attached
documents.

The entry parser does not use this package: documents are parsed
independently and never merged.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-22, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software or the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package runtime

import (
	"github.com/npillmayer/orx"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'orx.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("orx.runtime")
}

// Runtime is a type implementing a symbol environment for Orx tools.
type Runtime struct {
	ScopeTree *ScopeTree // collect scopes
	Documents []*Scope   // scopes of attached documents, in order of attachment
}

// NewRuntimeEnvironment constructs a new runtime environment, initialized
// with a global scope.
func NewRuntimeEnvironment() *Runtime {
	rt := &Runtime{}
	rt.ScopeTree = new(ScopeTree)
	rt.ScopeTree.PushNewScope("globals") // push global scope first
	return rt
}

// Declare declares all named entries in the current scope and returns the
// number of tags touched.
func (rt *Runtime) Declare(entries []orx.Entry) int {
	return declare(rt.ScopeTree.Current(), entries)
}

func declare(sc *Scope, entries []orx.Entry) int {
	n := 0
	for _, e := range entries {
		name, ok := NameOf(e)
		if !ok {
			continue
		}
		tag, _ := sc.Tags().ResolveOrDefineTag(name)
		if tag == nil {
			continue
		}
		tag.Add(e)
		n++
	}
	return n
}

// Load pushes a new scope for a document and declares the document's entries
// within it.
func (rt *Runtime) Load(doc orx.ParsedDocument) *Scope {
	sc := rt.ScopeTree.PushNewScope(doc.Name())
	rt.Declare(doc.Entries)
	return sc
}

// Attach declares a document's entries in a scope of its own, placed below the
// global scope. Unlike Load, the current scope does not change. Attached
// documents do not see each other's names.
func (rt *Runtime) Attach(doc orx.ParsedDocument) *Scope {
	sc := NewScope(doc.Name(), rt.ScopeTree.Globals())
	declare(sc, doc.Entries)
	rt.Documents = append(rt.Documents, sc)
	return sc
}

// Lookup resolves a name, starting at the current scope. Names not found
// there are searched in the attached documents, most recent first.
func (rt *Runtime) Lookup(name string) (*Tag, *Scope) {
	if tag, sc := rt.ScopeTree.Current().ResolveTag(name); tag != nil {
		return tag, sc
	}
	for i := len(rt.Documents) - 1; i >= 0; i-- {
		if tag := rt.Documents[i].Tags().ResolveTag(name); tag != nil {
			return tag, rt.Documents[i]
		}
	}
	return nil, nil
}

// NameOf returns the name an entry defines. Includes do not define a name.
func NameOf(e orx.Entry) (string, bool) {
	switch x := e.(type) {
	case orx.Define:
		return x.Name, x.Name != ""
	case orx.Palette:
		return x.Name, x.Name != ""
	case orx.Colormap:
		return x.Name, x.Name != ""
	case orx.Emoji:
		return x.Short, x.Short != ""
	}
	return "", false
}
