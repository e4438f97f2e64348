package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bytes"
	"fmt"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLNode creates a detached golang.org/x/net/html parse tree mirroring
// the sub-tree of n. Attributes are ordered by key.
func (n Node) HTMLNode() *html.Node {
	n.rec()
	return n.doc.mirror(n.id, nil)
}

func (doc *Document) mirror(id NodeID, dict map[*html.Node]NodeID) *html.Node {
	r := &doc.nodes[id]
	var h *html.Node
	switch r.kind {
	case ElementNode:
		h = &html.Node{
			Type:     html.ElementNode,
			Data:     r.data,
			DataAtom: atom.Lookup([]byte(r.data)),
		}
		for _, k := range sortedKeys(r.attrs) {
			h.Attr = append(h.Attr, html.Attribute{Key: k, Val: r.attrs[k]})
		}
	default:
		h = &html.Node{Type: html.TextNode, Data: r.data}
	}
	if dict != nil {
		dict[h] = id
	}
	for _, ch := range r.children {
		h.AppendChild(doc.mirror(ch, dict))
	}
	return h
}

// InnerHTML serializes the children of n as canonical HTML, using the
// renderer of golang.org/x/net/html. Character data is escaped. If the
// renderer refuses a sub-tree (e.g., a void element like <br> with
// children), the error is traced and the output produced so far is kept.
func (n Node) InnerHTML() string {
	var buf bytes.Buffer
	for _, ch := range n.rec().children {
		if err := html.Render(&buf, n.doc.mirror(ch, nil)); err != nil {
			tracer().Errorf("rendering inner HTML of %s: %v", n, err)
		}
	}
	return buf.String()
}

// OuterHTML serializes n itself as canonical HTML.
func (n Node) OuterHTML() (string, error) {
	var buf bytes.Buffer
	err := html.Render(&buf, n.HTMLNode())
	return buf.String(), err
}

// QuerySelectorAll returns all descendants of n (excluding n) matching a
// CSS selector group, in document order. Selector matching follows full
// CSS semantics as implemented by cascadia and is independent of the
// simplified selectors of package cssom.
func (n Node) QuerySelectorAll(selector string) ([]Node, error) {
	n.rec()
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	dict := make(map[*html.Node]NodeID)
	h := n.doc.mirror(n.id, dict)
	var result []Node
	for _, m := range sel.MatchAll(h) {
		if m == h {
			continue
		}
		result = append(result, n.doc.handle(dict[m]))
	}
	return result, nil
}
