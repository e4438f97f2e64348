package frame

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
	"github.com/npillmayer/boxer/dom/styledtree"
	"github.com/npillmayer/boxer/tree"
)

// BoxType is the kind of a box in the box tree.
type BoxType uint8

// Box types
const (
	BlockBox     BoxType = iota // box for a block-level node
	InlineBox                   // box for an inline node
	AnonymousBox                // container for a run of inline boxes
)

func (bt BoxType) String() string {
	switch bt {
	case BlockBox:
		return "BlockBox"
	case InlineBox:
		return "InlineBox"
	case AnonymousBox:
		return "AnonymousBox"
	}
	return fmt.Sprintf("BoxType(%d)", uint8(bt))
}

// Symbol returns a short graphical representation of a box type.
func (bt BoxType) Symbol() string {
	switch bt {
	case BlockBox:
		return "▩"
	case InlineBox:
		return "►"
	}
	return "▭"
}

// Props are the properties of a box generated for a styled node.
// Anonymous boxes have no properties.
type Props struct {
	Node    dom.Node           // document node the box is generated for
	Styles  *style.PropertyMap // properties of the styled node
	Display css.DisplayMode    // resolved display mode
}

// Box is a node of the box tree.
type Box struct {
	tree.Node[*Box] // we build on top of general purpose tree
	boxType         BoxType
	props           Props
}

func newBox(bt BoxType, props Props) *Box {
	box := &Box{boxType: bt, props: props}
	box.Payload = box // Payload will always reference the box itself
	return box
}

// NewAnonymousBox creates an anonymous box without children.
func NewAnonymousBox() *Box {
	return newBox(AnonymousBox, Props{})
}

// NewBoxForStyledNode creates a box without children for a styled node.
// The box type follows the node's display mode.
func NewBoxForStyledNode(sn *styledtree.StyNode) *Box {
	props := Props{
		Node:    sn.DOMNode(),
		Styles:  sn.Styles(),
		Display: sn.Display(),
	}
	if sn.Display().IsBlockLevel() {
		return newBox(BlockBox, props)
	}
	return newBox(InlineBox, props)
}

// BuildBoxTree creates the box tree for a styled tree.
// It returns nil for a nil styled tree.
func BuildBoxTree(sn *styledtree.StyNode) *Box {
	if sn == nil {
		return nil
	}
	box := NewBoxForStyledNode(sn)
	for _, ch := range sn.StyledChildren() {
		chbox := BuildBoxTree(ch)
		if chbox.boxType == BlockBox {
			box.AddChild(&chbox.Node)
			continue
		}
		box.inlineContainer().AddChild(&chbox.Node)
	}
	return box
}

// inlineContainer returns the box which receives the next inline child
// of box. It will create an anonymous box if necessary.
func (box *Box) inlineContainer() *Box {
	if box.boxType == InlineBox || box.boxType == AnonymousBox {
		return box
	}
	if last, ok := box.LastChild(); ok && last.Payload.boxType == AnonymousBox {
		return last.Payload
	}
	anon := NewAnonymousBox()
	box.AddChild(&anon.Node)
	tracer().Debugf("created anonymous box in %s", box)
	return anon
}

// Type returns the box type.
func (box *Box) Type() BoxType {
	return box.boxType
}

// IsInline is true for inline boxes and for anonymous boxes.
func (box *Box) IsInline() bool {
	return box.boxType != BlockBox
}

// Props returns the properties of a box. For anonymous boxes ok is false.
func (box *Box) Props() (props Props, ok bool) {
	if box.boxType == AnonymousBox {
		return Props{}, false
	}
	return box.props, true
}

// IsText is true if the box has been generated for a text node.
func (box *Box) IsText() bool {
	return box.boxType != AnonymousBox && box.props.Node.IsText()
}

// Text returns the text of a box generated for a text node, and an
// empty string for all other boxes.
func (box *Box) Text() string {
	if !box.IsText() {
		return ""
	}
	return box.props.Node.Data()
}

// BoxChildren returns the child boxes of box, in order.
func (box *Box) BoxChildren() []*Box {
	children := box.Children()
	r := make([]*Box, len(children))
	for i, ch := range children {
		r[i] = ch.Payload
	}
	return r
}

// BoxParent returns the parent box, or nil for the root of a box tree.
func (box *Box) BoxParent() *Box {
	if p := box.Parent(); p != nil {
		return p.Payload
	}
	return nil
}

// TreeNode returns the generic tree node of a box.
func (box *Box) TreeNode() *tree.Node[*Box] {
	return &box.Node
}

func (box *Box) String() string {
	if box == nil {
		return "<nil box>"
	}
	if box.boxType == AnonymousBox {
		return fmt.Sprintf("%s anonymous", box.boxType.Symbol())
	}
	return fmt.Sprintf("%s %s", box.boxType.Symbol(), box.props.Node)
}
