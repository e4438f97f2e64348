package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/boxer/maybe"
)

// Node is a handle for a node of a document.
//
// The zero value is an invalid handle. Handles are comparable; two handles
// are equal if they address the same node of the same document.
type Node struct {
	doc *Document
	id  NodeID
	gen uint32
}

// FragmentParser parses markup into detached nodes of a document, returning
// the top-level nodes in document order. It is implemented by package markup.
type FragmentParser func(doc *Document, markup string) ([]NodeID, error)

// Valid returns true if the handle addresses a node currently allocated.
// A handle of a destroyed node is invalid, even if its arena slot has been
// re-used for another node.
func (n Node) Valid() bool {
	if n.doc == nil || n.id < 0 || int(n.id) >= len(n.doc.nodes) {
		return false
	}
	r := &n.doc.nodes[n.id]
	return r.kind != freeSlot && r.gen == n.gen
}

func (n Node) rec() *record {
	assertThat(n.Valid(), "use of invalid node handle #%d", n.id)
	return &n.doc.nodes[n.id]
}

// ID returns the arena index of a node.
func (n Node) ID() NodeID {
	return n.id
}

// Document returns the document owning this node.
func (n Node) Document() *Document {
	return n.doc
}

// Type returns the type of a node, i.e. element or text.
func (n Node) Type() NodeType {
	return n.rec().kind
}

// IsElement is a predicate for element nodes.
func (n Node) IsElement() bool {
	return n.Valid() && n.doc.nodes[n.id].kind == ElementNode
}

// IsText is a predicate for text nodes.
func (n Node) IsText() bool {
	return n.Valid() && n.doc.nodes[n.id].kind == TextNode
}

// TagName returns the tag name of an element, or "" for text nodes.
func (n Node) TagName() string {
	r := n.rec()
	if r.kind != ElementNode {
		return ""
	}
	return r.data
}

// Data returns the character data of a text node, or "" for elements.
func (n Node) Data() string {
	r := n.rec()
	if r.kind != TextNode {
		return ""
	}
	return r.data
}

// Attribute returns the value of an attribute of an element.
func (n Node) Attribute(key string) (string, bool) {
	r := n.rec()
	v, ok := r.attrs[key]
	return v, ok
}

// Attributes returns a copy of the attributes of an element.
func (n Node) Attributes() map[string]string {
	r := n.rec()
	m := make(map[string]string, len(r.attrs))
	for k, v := range r.attrs {
		m[k] = v
	}
	return m
}

// ChildCount returns the number of children of a node.
func (n Node) ChildCount() int {
	return len(n.rec().children)
}

// Child returns the i-th child of a node.
func (n Node) Child(i int) (Node, bool) {
	r := n.rec()
	if i < 0 || i >= len(r.children) {
		return Node{}, false
	}
	return n.doc.handle(r.children[i]), true
}

// Children returns the children of a node in document order.
func (n Node) Children() []Node {
	r := n.rec()
	children := make([]Node, len(r.children))
	for i, id := range r.children {
		children[i] = n.doc.handle(id)
	}
	return children
}

// Parent returns the parent of a node, if any.
func (n Node) Parent() (Node, bool) {
	r := n.rec()
	if r.parent == NoNode {
		return Node{}, false
	}
	return n.doc.handle(r.parent), true
}

func (n Node) String() string {
	if !n.Valid() {
		return "<invalid node>"
	}
	switch r := n.rec(); r.kind {
	case ElementNode:
		return fmt.Sprintf("<%s>#%d", r.data, n.id)
	default:
		return fmt.Sprintf("%q#%d", r.data, n.id)
	}
}

// --- Query and mutation surface -------------------------------------------

// InnerText concatenates the data of all descendant text nodes in document
// order, without separators.
func (n Node) InnerText() string {
	var b strings.Builder
	n.doc.collectText(n.id, &b)
	return b.String()
}

func (doc *Document) collectText(id NodeID, b *strings.Builder) {
	for _, ch := range doc.nodes[id].children {
		if doc.nodes[ch].kind == TextNode {
			b.WriteString(doc.nodes[ch].data)
			continue
		}
		doc.collectText(ch, b)
	}
}

// SetInnerText replaces all children of an element with a single text node
// holding s. The prior sub-tree is destroyed.
// For a text node, SetInnerText replaces its data.
func (n Node) SetInnerText(s string) {
	r := n.rec()
	if r.kind == TextNode {
		r.data = s
		return
	}
	text := n.doc.NewText(s)
	n.doc.replaceChildren(n.id, []NodeID{text.id})
	tracer().Debugf("inner text of %s set", n)
}

// SetInnerHTML parses markup as a fragment and replaces the children of an
// element with the resulting nodes. The prior sub-tree is destroyed.
// If parsing fails, the node is left unchanged and the parse error is returned.
func (n Node) SetInnerHTML(markup string, parse FragmentParser) error {
	r := n.rec()
	if r.kind != ElementNode {
		return ErrHierarchy
	}
	ids, err := parse(n.doc, markup)
	if err != nil {
		tracer().Errorf("cannot set inner HTML of %s: %v", n, err)
		return err
	}
	n.doc.replaceChildren(n.id, ids)
	tracer().Debugf("inner HTML of %s set, %d top-level nodes", n, len(ids))
	return nil
}

// GetElementByID searches the sub-tree of n, including n, in pre-order for
// the first element whose attribute 'id' equals id.
func (n Node) GetElementByID(id string) maybe.Maybe[Node] {
	found := n.doc.findByID(n.id, id)
	if found == NoNode {
		return maybe.Nothing[Node]()
	}
	return maybe.Just(n.doc.handle(found))
}

func (doc *Document) findByID(at NodeID, id string) NodeID {
	r := &doc.nodes[at]
	if r.kind == ElementNode {
		if v, ok := r.attrs["id"]; ok && v == id {
			return at
		}
	}
	for _, ch := range r.children {
		if found := doc.findByID(ch, id); found != NoNode {
			return found
		}
	}
	return NoNode
}

// --- Structural equality --------------------------------------------------

// Equal compares two sub-trees for structural equality: node types, tag
// names, attributes, character data and children have to match.
// The nodes may belong to different documents.
func Equal(a, b Node) bool {
	if !a.Valid() || !b.Valid() {
		return a.Valid() == b.Valid()
	}
	ra, rb := a.rec(), b.rec()
	if ra.kind != rb.kind || ra.data != rb.data || len(ra.children) != len(rb.children) {
		return false
	}
	if len(ra.attrs) != len(rb.attrs) {
		return false
	}
	for k, v := range ra.attrs {
		if w, ok := rb.attrs[k]; !ok || v != w {
			return false
		}
	}
	for i := range ra.children {
		if !Equal(a.doc.handle(ra.children[i]), b.doc.handle(rb.children[i])) {
			return false
		}
	}
	return true
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
