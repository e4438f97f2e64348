package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
)

// ErrEmptyTree is returned if a walk is started on a nil node.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// ErrInvalidAction is returned if a walk is started without an action or predicate.
var ErrInvalidAction = errors.New("action or predicate is nil")

// Predicate is a function type to match against nodes of a tree.
// Is is used as an argument for various walk functions to
// collect a selection of nodes.
// test is the node under test, node is its parent (nil for the start node).
type Predicate[T comparable] func(test *Node[T], node *Node[T]) (match *Node[T], err error)

// Action is a function type to operate on tree nodes.
// Resulting nodes will be collected by the walker.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) (*Node[T], error)

// Whatever is a predicate to match anything (see type Predicate).
// It is useful to match the first node in a given direction.
func Whatever[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (*Node[T], error) {
		return test, nil
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (match *Node[T], err error) {
		if test.ChildCount() == 0 {
			return test, nil
		}
		return nil, nil
	}
}

// TopDown traverses a tree starting at (and including) node, pre-order.
// Result nodes of the action are collected in traversal order.
//
// If the action function returns an error for a node, the walk is aborted
// and the error is returned together with the results collected so far.
func TopDown[T comparable](node *Node[T], action Action[T]) ([]*Node[T], error) {
	if node == nil {
		return nil, ErrEmptyTree
	}
	if action == nil {
		return nil, ErrInvalidAction
	}
	var results []*Node[T]
	position := 0
	if node.parent != nil {
		position = node.parent.IndexOfChild(node)
	}
	err := topDown(node, node.parent, position, action, &results)
	return results, err
}

func topDown[T comparable](node, parent *Node[T], position int, action Action[T], results *[]*Node[T]) error {
	r, err := action(node, parent, position)
	if err != nil {
		tracer().Debugf("top-down action aborted at %s: %v", node, err)
		return err
	}
	if r != nil {
		*results = append(*results, r)
	}
	for i, ch := range node.children {
		if err = topDown(ch, node, i, action, results); err != nil {
			return err
		}
	}
	return nil
}

// BottomUp traverses a tree starting at (and including) node.
// The traversal guarantees that parents are not processed before
// all of their children.
//
// If the action function returns an error for a node, the walk is aborted.
func BottomUp[T comparable](node *Node[T], action Action[T]) ([]*Node[T], error) {
	if node == nil {
		return nil, ErrEmptyTree
	}
	if action == nil {
		return nil, ErrInvalidAction
	}
	var results []*Node[T]
	position := 0
	if node.parent != nil {
		position = node.parent.IndexOfChild(node)
	}
	err := bottomUp(node, node.parent, position, action, &results)
	return results, err
}

func bottomUp[T comparable](node, parent *Node[T], position int, action Action[T], results *[]*Node[T]) error {
	for i, ch := range node.children {
		if err := bottomUp(ch, node, i, action, results); err != nil {
			return err
		}
	}
	r, err := action(node, parent, position)
	if err != nil {
		return err
	}
	if r != nil {
		*results = append(*results, r)
	}
	return nil
}

// Collect returns all nodes of the sub-tree under node (including node)
// which match a predicate, in pre-order.
func Collect[T comparable](node *Node[T], predicate Predicate[T]) ([]*Node[T], error) {
	if predicate == nil {
		return nil, ErrInvalidAction
	}
	return TopDown(node, func(n *Node[T], parent *Node[T], _ int) (*Node[T], error) {
		return predicate(n, parent)
	})
}

// FindFirst returns the first node in pre-order matching a predicate,
// or nil if no node matches.
func FindFirst[T comparable](node *Node[T], predicate Predicate[T]) (*Node[T], error) {
	if node == nil {
		return nil, ErrEmptyTree
	}
	if predicate == nil {
		return nil, ErrInvalidAction
	}
	return findFirst(node, node.parent, predicate)
}

func findFirst[T comparable](node, parent *Node[T], predicate Predicate[T]) (*Node[T], error) {
	match, err := predicate(node, parent)
	if err != nil || match != nil {
		return match, err
	}
	for _, ch := range node.children {
		if match, err = findFirst(ch, node, predicate); err != nil || match != nil {
			return match, err
		}
	}
	return nil, nil
}

// CalcRank is an action for bottom-up processing. It Calculates the 'rank'-member
// for each node, meaning: the number of child-nodes + 1.
// The root node will hold the number of nodes in the entire tree.
// Leaf nodes will have a rank of 1.
func CalcRank[T comparable](n *Node[T], parent *Node[T], position int) (*Node[T], error) {
	//
	r := uint32(1)
	for _, ch := range n.children {
		r += ch.Rank
	}
	n.Rank = r
	return n, nil
}
