/*
Package main provides orxc, the command line tool for Orx manifests.

	orxc build [manifest]     compile a manifest tree into a single JSON or YAML file
	orxc dump <file>          display the entries of a single document as a tree
	orxc repl                 interactively parse Orx entries

Settings are read from an optional YAML file (--config), from ORX_* environment
variables and from flags, see package config.

The REPL collects input lines into a block; an empty line parses the block and
displays the resulting entries. Commands start with a colon:

	:quit                     leave the REPL
	:lenient on|off           switch the treatment of emojis without a code
	:load <file>              parse a document and declare its names
	:lookup <name>            display the entries declared for a name
	:symbols                  list all names declared so far

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'orx.cmd'
func tracer() tracing.Trace {
	return tracing.Select("orx.cmd")
}
