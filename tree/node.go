package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

/*
We manage a tree of mutable nodes. Each nodes carries a payload of type parameter T.
Nodes maintain a slice of children, in document order.
*/

// Node is the base type our tree is built of.
type Node[T comparable] struct {
	parent   *Node[T]   // parent node of this node
	children []*Node[T] // children nodes, never containing nil
	Payload  T          // nodes may carry a payload of arbitrary type
	Rank     uint32     // rank is the number of nodes in the sub-tree, see CalcRank
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a new child node to the children of node.
// The newly inserted node is connected to this node as its parent.
// If ch is currently part of another tree, it is isolated first.
// It returns the parent node to allow for chaining.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch == nil {
		return node
	}
	ch.Isolate()
	node.children = append(node.children, ch)
	ch.parent = node
	return node
}

// InsertChildAt inserts a new child node into the tree.
// The child is set at a given position in relation to other children,
// shifting children at later positions. Positions beyond the end of the
// children slice append.
// It returns the parent node to allow for chaining.
func (node *Node[T]) InsertChildAt(i int, ch *Node[T]) *Node[T] {
	if ch == nil {
		return node
	}
	ch.Isolate()
	if i < 0 {
		i = 0
	}
	if i >= len(node.children) {
		return node.AddChild(ch)
	}
	node.children = append(node.children, nil)     // make room for one child
	copy(node.children[i+1:], node.children[i:]) // shift i+1..n
	node.children[i] = ch
	ch.parent = node
	return node
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// Isolate removes a node from its parent.
// Isolate returns the isolated node.
func (node *Node[T]) Isolate() *Node[T] {
	if node == nil || node.parent == nil {
		return node
	}
	p := node.parent
	if i := p.IndexOfChild(node); i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	node.parent = nil
	return node
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[T]) ChildCount() int {
	if node == nil {
		return 0
	}
	return len(node.children)
}

// Child returns the n-th child of a node.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	if n < 0 || node.ChildCount() <= n {
		return nil, false
	}
	return node.children[n], true
}

// LastChild returns the last child of a node, if any.
func (node *Node[T]) LastChild() (*Node[T], bool) {
	return node.Child(node.ChildCount() - 1)
}

// Children returns a slice with all children of a node.
// The slice is a copy; modifying it does not alter the tree.
func (node *Node[T]) Children() []*Node[T] {
	if node.ChildCount() == 0 {
		return nil
	}
	children := make([]*Node[T], len(node.children))
	copy(children, node.children)
	return children
}

// IndexOfChild returns the index of a child within the list of children
// of its parent. ch may not be nil.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	for i, child := range node.children {
		if ch == child {
			return i
		}
	}
	return -1
}
