/*
Package dom implements the document tree of boxer.

Overview

A document tree consists of element nodes and text nodes. Element nodes
carry a tag name and an unordered set of attributes, text nodes carry
character data and never have children. The tree is owned by a Document,
which stores its nodes in an arena and addresses them by stable integer
indices (type NodeID). Clients work with values of type Node, a light-weight
handle consisting of the document and a node index.

Handles are valid for as long as the node is part of the document. Replacing
the children of a node (SetInnerText, SetInnerHTML) destroys the prior
sub-tree; handles into a destroyed sub-tree must not be used any more.

Mutation and Sharing

A Document does not synchronize access. Collaborators sharing a document
between goroutines, e.g. a scripting binding, have to serialize access to
the whole tree. Package w3cdom offers a context type doing exactly this.

Serialization

InnerHTML produces canonical HTML, using the renderer of
golang.org/x/net/html. The output is meant for inspection and is not
relied upon by the styling and layout stages. For persistence, a document
may be marshalled to YAML and back (see Document.MarshalYAML), preserving
structural equality.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxer.dom'.
func tracer() tracing.Trace {
	return tracing.Select("boxer.dom")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("dom: "+msg, msgargs...)
		panic(msg)
	}
}
