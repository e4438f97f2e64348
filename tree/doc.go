/*
Package tree implements an all-purpose ordered tree type.

Styling and layout work on a couple of trees derived from each other: the
styled tree is derived from the document, the box tree is derived from the
styled tree. Both are built from the generic node type of this package,
carrying a payload of the concrete node type. In Go we resort to composition,
thus including a generic tree node in every node (sub-)type and letting the
payload point back to the embedding node.

Trees are built and read by a single goroutine. Nothing in this package
synchronizes access; clients sharing a tree have to serialize access
themselves.

Walking

Walkers operate synchronously and visit nodes in document order:

   TopDown(node, action)        // pre-order traversal
   BottomUp(node, action)       // children are processed before their parent
   Collect(node, predicate)     // all nodes matching a predicate, in pre-order
   FindFirst(node, predicate)   // first node matching a predicate

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxer.tree'.
func tracer() tracing.Trace {
	return tracing.Select("boxer.tree")
}
