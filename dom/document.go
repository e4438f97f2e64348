package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
)

// NodeID addresses a node within the arena of a document.
type NodeID int32

// NoNode is the NodeID of no node at all.
const NoNode NodeID = -1

// NodeType is the type of a document node.
type NodeType uint8

// Documents consist of elements and text.
const (
	freeSlot    NodeType = iota // arena slot not in use
	ElementNode                 // element with tag name and attributes
	TextNode                    // character data
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	}
	return "<free>"
}

// Errors for structural mutations.
var (
	ErrHierarchy     = errors.New("operation would violate the tree structure")
	ErrForeignNode   = errors.New("node belongs to a different document")
	ErrStaleNode     = errors.New("node handle is not valid")
	ErrAlreadyParent = errors.New("node already has a parent")
)

// record is an arena entry.
type record struct {
	kind     NodeType
	data     string            // tag name for elements, character data for text
	attrs    map[string]string // nil for text nodes
	parent   NodeID
	children []NodeID
	gen      uint32 // incremented whenever the slot is released
}

// Document owns a tree of nodes.
//
// Nodes are allocated in an arena. Slots of destroyed nodes are re-used by
// later allocations. Every slot carries a generation, which is part of
// a node handle; handles of destroyed nodes therefore stay invalid after
// their slot has been re-used.
type Document struct {
	nodes []record
	free  []NodeID
	root  NodeID
	live  int
}

// NewDocument creates an empty document without a root node.
func NewDocument() *Document {
	return &Document{root: NoNode}
}

// Len returns the number of nodes currently allocated, attached or not.
func (doc *Document) Len() int {
	return doc.live
}

func (doc *Document) alloc(r record) NodeID {
	r.parent = NoNode
	doc.live++
	if n := len(doc.free); n > 0 {
		id := doc.free[n-1]
		doc.free = doc.free[:n-1]
		r.gen = doc.nodes[id].gen
		doc.nodes[id] = r
		return id
	}
	doc.nodes = append(doc.nodes, r)
	return NodeID(len(doc.nodes) - 1)
}

// NewElement allocates a detached element node. The attribute map is copied.
func (doc *Document) NewElement(tag string, attrs map[string]string) Node {
	m := make(map[string]string, len(attrs))
	for k, v := range attrs {
		m[k] = v
	}
	return doc.handle(doc.alloc(record{kind: ElementNode, data: tag, attrs: m}))
}

// NewText allocates a detached text node.
func (doc *Document) NewText(data string) Node {
	return doc.handle(doc.alloc(record{kind: TextNode, data: data}))
}

// Node returns a handle for the node currently occupying an arena slot.
// The handle is invalid if the slot is not in use, see Node.Valid.
func (doc *Document) Node(id NodeID) Node {
	return doc.handle(id)
}

func (doc *Document) handle(id NodeID) Node {
	n := Node{doc: doc, id: id}
	if id >= 0 && int(id) < len(doc.nodes) {
		n.gen = doc.nodes[id].gen
	}
	return n
}

// Root returns the root node of the document. If the document has no root,
// the returned handle is invalid.
func (doc *Document) Root() Node {
	return doc.handle(doc.root)
}

// SetRoot makes a detached node the root of the document.
func (doc *Document) SetRoot(n Node) error {
	if err := doc.owns(n); err != nil {
		return err
	}
	if n.rec().parent != NoNode {
		return ErrAlreadyParent
	}
	doc.root = n.id
	return nil
}

// AppendChild appends a detached node to the children of an element.
func (doc *Document) AppendChild(parent, child Node) error {
	if err := doc.owns(parent); err != nil {
		return err
	}
	if err := doc.owns(child); err != nil {
		return err
	}
	p, c := parent.rec(), child.rec()
	if p.kind != ElementNode {
		return ErrHierarchy
	}
	if c.parent != NoNode || child.id == doc.root {
		return ErrAlreadyParent
	}
	for a := parent.id; a != NoNode; a = doc.nodes[a].parent {
		if a == child.id {
			return ErrHierarchy // would create a cycle
		}
	}
	p.children = append(p.children, child.id)
	c.parent = parent.id
	return nil
}

func (doc *Document) owns(n Node) error {
	if n.doc != doc {
		return ErrForeignNode
	}
	if !n.Valid() {
		return ErrStaleNode
	}
	return nil
}

// replaceChildren destroys all children of id and attaches the detached
// nodes in ids instead.
func (doc *Document) replaceChildren(id NodeID, ids []NodeID) {
	r := &doc.nodes[id]
	old := r.children
	r.children = nil
	for _, ch := range old {
		doc.release(ch)
	}
	r = &doc.nodes[id]
	for _, ch := range ids {
		doc.nodes[ch].parent = id
		r.children = append(r.children, ch)
	}
}

// Release destroys a detached node together with its sub-tree.
// Clients use it to discard nodes which did not make it into the tree.
func (doc *Document) Release(n Node) error {
	if err := doc.owns(n); err != nil {
		return err
	}
	if n.rec().parent != NoNode {
		return ErrAlreadyParent
	}
	if n.id == doc.root {
		doc.root = NoNode
	}
	doc.release(n.id)
	return nil
}

func (doc *Document) release(id NodeID) {
	r := &doc.nodes[id]
	children := r.children
	*r = record{parent: NoNode, gen: r.gen + 1}
	doc.free = append(doc.free, id)
	doc.live--
	for _, ch := range children {
		doc.release(ch)
	}
}
