/*
Package orx is a compiler for Orx manifests.

Orx is a small line-oriented markup used to describe emoji metadata,
colour palettes, colour remappings and simple definitions. Every non-blank
line starting with one of the keywords

	include  define  emoji  palette  colormap

opens an entry; all other lines are ignored. Palettes absorb the
continuation lines following their header, up to the next keyword or
comment line.

Package structure is as follows:

■ scanner: Package scanner normalizes document text into lines and defines the
tokenizer interface. Sub-package lexmach adapts lexmachine DFAs to it.

■ orxlang: Package orxlang implements the entry parser and its decoders.

■ manifest: Package manifest discovers Orx documents, builds them in parallel
and writes the resulting tree.

■ runtime: Package runtime provides a symbol table over named entries.

The base package contains the data model which is used throughout all the other
packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package orx
