package styledtree

import (
	"github.com/npillmayer/boxer/tree"
)

// NodeIsText is a predicate to match styled nodes of text.
func NodeIsText() tree.Predicate[*StyNode] {
	return func(n *tree.Node[*StyNode], parent *tree.Node[*StyNode]) (*tree.Node[*StyNode], error) {
		if n.Payload != nil && n.Payload.IsText() {
			return n, nil
		}
		return nil, nil
	}
}

// NodeHasProperty is a predicate to match styled nodes with a given
// property value, e.g. NodeHasProperty("display", "inline").
func NodeHasProperty(key string, value string) tree.Predicate[*StyNode] {
	return func(n *tree.Node[*StyNode], parent *tree.Node[*StyNode]) (*tree.Node[*StyNode], error) {
		if n.Payload == nil {
			return nil, nil
		}
		if p, ok := n.Payload.Styles().Property(key); ok && p.String() == value {
			return n, nil
		}
		return nil, nil
	}
}

// Count returns the number of styled nodes in the sub-tree of sn.
func Count(sn *StyNode) int {
	nodes, err := tree.Collect(sn.TreeNode(), tree.Whatever[*StyNode]())
	if err != nil {
		tracer().Errorf("counting styled nodes: %v", err)
	}
	return len(nodes)
}
