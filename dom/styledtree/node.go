package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/boxer/dom"
	"github.com/npillmayer/boxer/dom/style"
	"github.com/npillmayer/boxer/dom/style/css"
	"github.com/npillmayer/boxer/tree"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	domNode             dom.Node
	computedStyles      *style.PropertyMap
	display             css.DisplayMode
}

// NewNodeForDocumentNode creates a new styled node linked to a document node.
func NewNodeForDocumentNode(n dom.Node) *tree.Node[*StyNode] {
	sn := &StyNode{domNode: n}
	sn.Payload = sn // Payload will always reference the node itself
	return &sn.Node
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// TreeNode returns the generic tree node of a styled node.
func (sn *StyNode) TreeNode() *tree.Node[*StyNode] {
	return &sn.Node
}

// DOMNode gets the document node corresponding to this styled node.
// The handle is valid as long as the document is not mutated.
func (sn *StyNode) DOMNode() dom.Node {
	return sn.Payload.domNode
}

// IsText is true if the styled node refers to a text node.
func (sn *StyNode) IsText() bool {
	return sn.domNode.IsText()
}

// Styles returns the property map of a styled node.
func (sn *StyNode) Styles() *style.PropertyMap {
	return sn.computedStyles
}

// SetStyles sets the styling properties of a styled node.
func (sn *StyNode) SetStyles(styles *style.PropertyMap) {
	sn.computedStyles = styles
}

// Display returns the resolved display mode of a styled node.
func (sn *StyNode) Display() css.DisplayMode {
	return sn.display
}

// SetDisplay sets the resolved display mode of a styled node.
func (sn *StyNode) SetDisplay(d css.DisplayMode) {
	sn.display = d
}

// StyledChildren returns the styled children of sn in document order.
func (sn *StyNode) StyledChildren() []*StyNode {
	children := sn.Children()
	r := make([]*StyNode, len(children))
	for i, ch := range children {
		r[i] = ch.Payload
	}
	return r
}

// GetPropertyValue returns the property value for a given key. Properties
// are not inherited, only the node's own property map is consulted.
func (sn *StyNode) GetPropertyValue(key string) style.Property {
	return css.GetLocalProperty(sn.computedStyles, key)
}

func (sn *StyNode) String() string {
	if sn == nil {
		return "<nil styled node>"
	}
	return fmt.Sprintf("%s %s", sn.display.Symbol(), sn.domNode)
}
