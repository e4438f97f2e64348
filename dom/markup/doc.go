/*
Package markup parses a minimal HTML-like markup into a document tree.

Grammar

The accepted language is a strict subset of HTML, case-sensitive:

    document   := node*
    node       := element | text
    element    := '<' tag_name S* attrs '>' S* node* S* '</' tag_name '>'
    attrs      := (attr_name S* '=' S* '"' attr_value '"' S*)*
    text       := any run of characters not containing '<'

Tag names start with an ASCII letter, followed by letters or digits.
Attribute names may additionally contain '-' and '_'. Attribute values are
always double-quoted and may contain anything but a double quote.
There are no comments, entities, self-closing tags or DOCTYPEs.

The parser is a backtracking recursive descent parser. At every position an
element is tried before text. If the tag name of a close tag does not
lexically match the open tag, the element fails as a unit; there is no
auto-closing and no error recovery. Text is trimmed of surrounding white
space and text consisting of white space only is dropped.

Errors

Malformed input fails the whole parse. The error returned is a *ParseError,
reporting the position where parsing got farthest, and it wraps ErrSyntax.
No partial document is ever returned.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxer.markup'.
func tracer() tracing.Trace {
	return tracing.Select("boxer.markup")
}
