/*
Package styledtree is a straightforward default implementation of a styled document tree.

Overview

Using a builder, cssom.Style() will create a styled tree from a document
tree and a stylesheet. Every styled node refers to its document node and
carries the properties resolved for it, together with its display mode.
Document nodes with display "none" have no styled node, nor have any of
their descendants.

A styled tree is never patched. If the document or the stylesheet changes,
clients build a new one.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxer.styling'.
func tracer() tracing.Trace {
	return tracing.Select("boxer.styling")
}
