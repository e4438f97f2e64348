package cssom

import (
	"strings"

	"github.com/npillmayer/boxer/dom"
)

// Selector is a simple CSS selector. Implementations are
// UniversalSelector, TypeSelector, ClassSelector and AttributeSelector.
type Selector interface {
	Matches(dom.Node) bool
	String() string
}

// UniversalSelector ('*') matches every node, including text.
type UniversalSelector struct{}

// Matches is part of interface Selector.
func (UniversalSelector) Matches(n dom.Node) bool {
	return n.Valid()
}

func (UniversalSelector) String() string {
	return "*"
}

// TypeSelector matches elements by tag name.
type TypeSelector struct {
	Tag string
}

// Matches is part of interface Selector.
func (sel TypeSelector) Matches(n dom.Node) bool {
	return n.IsElement() && n.TagName() == sel.Tag
}

func (sel TypeSelector) String() string {
	return sel.Tag
}

// ClassSelector matches elements whose class attribute equals Class.
// The complete attribute value is compared, i.e. `.a` does not match
// class="a b".
type ClassSelector struct {
	Class string
}

// Matches is part of interface Selector.
func (sel ClassSelector) Matches(n dom.Node) bool {
	if !n.IsElement() {
		return false
	}
	v, ok := n.Attribute("class")
	return ok && v == sel.Class
}

func (sel ClassSelector) String() string {
	return "." + sel.Class
}

// AttrOp is the operator of an attribute selector.
type AttrOp uint8

// Supported attribute selector operators.
const (
	AttrEq       AttrOp = iota // '=', exact value
	AttrContains               // '~=', whitespace separated token
)

func (op AttrOp) String() string {
	if op == AttrContains {
		return "~="
	}
	return "="
}

// AttributeSelector matches elements with a given tag name and a
// condition on an attribute, e.g.
//
//     p[class~=note]
//
type AttributeSelector struct {
	Tag       string
	Op        AttrOp
	Attribute string
	Value     string
}

// Matches is part of interface Selector.
func (sel AttributeSelector) Matches(n dom.Node) bool {
	if !n.IsElement() || n.TagName() != sel.Tag {
		return false
	}
	v, ok := n.Attribute(sel.Attribute)
	if !ok {
		return false
	}
	switch sel.Op {
	case AttrEq:
		return v == sel.Value
	case AttrContains:
		for _, token := range strings.Fields(v) {
			if token == sel.Value {
				return true
			}
		}
	}
	return false
}

func (sel AttributeSelector) String() string {
	return sel.Tag + "[" + sel.Attribute + sel.Op.String() + `"` + sel.Value + `"]`
}

var (
	_ Selector = UniversalSelector{}
	_ Selector = TypeSelector{}
	_ Selector = ClassSelector{}
	_ Selector = AttributeSelector{}
)
