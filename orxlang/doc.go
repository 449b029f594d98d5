/*
Package orxlang provides the entry parser for Orx documents.

Grammar

An Orx document is a sequence of lines. Blank lines are insignificant and
surrounding whitespace is trimmed. A line is classified by a case-insensitive
keyword prefix:

	include  ⟨target⟩
	define   ⟨name⟩ ⟨value⟩
	emoji    ⟨key⟩=⟨value⟩ …             keys: short src code cat desc color root
	palette  ⟨name⟩
	         ⟨name⟩ = ⟨value⟩             continuation lines
	colormap ⟨name⟩ ⟨key⟩=⟨value⟩ …      keys: src dst short code desc

Lines without a keyword prefix are ignored; this is how comments work. A line
starting with '#' additionally terminates a palette's continuation lines.

Key/value pairs of emoji and colormap entries are split right before every
word which is followed by '=' (optionally surrounded by one space each), so
values may contain blanks:

	emoji short=:grin: src=grin.png code=1F600 cat=faces desc=grinning face

Error Handling

Parsing is lenient. Unrecognized lines, unknown keys and absent fields are
reported to an optional error handler (see option ErrorHandler) and otherwise
ignored. The single exception is an emoji without a code, which fails the
document with an orx.ErrMissingCode condition, unless option Lenient is set.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package orxlang
