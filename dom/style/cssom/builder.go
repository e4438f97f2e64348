package cssom

import (
	"github.com/npillmayer/boxer/dom"
	"github.com/npillmayer/boxer/dom/style"
	"github.com/npillmayer/boxer/dom/style/css"
	"github.com/npillmayer/boxer/dom/styledtree"
	"github.com/npillmayer/boxer/maybe"
	"github.com/npillmayer/boxer/tree"
)

// Style creates a styled tree for a document node and its descendants.
//
// Properties of a node are the declarations of all rules of sheet which
// match the node, folded in stylesheet order. A node's display mode is
// taken from property "display", defaulting to inline for text and block
// for elements. Nodes with display "none" are omitted, together with their
// sub-trees.
//
// If node itself resolves to display "none", there is nothing to render and
// Style returns Nothing. This is not an error condition.
func Style(node dom.Node, sheet StyleSheet) maybe.Maybe[*styledtree.StyNode] {
	if !node.Valid() {
		tracer().Errorf("cannot style invalid document node")
		return maybe.Nothing[*styledtree.StyNode]()
	}
	var rules []*Rule
	if sheet != nil {
		rules = sheet.Rules()
	}
	b := builder{rules: rules}
	sn := b.build(node)
	if sn == nil {
		tracer().Infof("root %s has display none, nothing to render", node)
		return maybe.Nothing[*styledtree.StyNode]()
	}
	tracer().P("nodes", b.count).Debugf("styled tree for %s created", node)
	return maybe.Just(styledtree.Node(sn))
}

type builder struct {
	rules []*Rule
	count int
}

// build returns nil for nodes with display none.
func (b *builder) build(node dom.Node) *tree.Node[*styledtree.StyNode] {
	pmap := b.properties(node)
	display := css.DisplayFor(pmap, node.IsText())
	if display.IsNone() {
		tracer().Debugf("%s has display none, pruning sub-tree", node)
		return nil
	}
	sn := styledtree.NewNodeForDocumentNode(node)
	styledtree.Node(sn).SetStyles(pmap)
	styledtree.Node(sn).SetDisplay(display)
	b.count++
	for _, ch := range node.Children() {
		if styled := b.build(ch); styled != nil {
			sn.AddChild(styled)
		}
	}
	return sn
}

// properties folds the declarations of all matching rules. Later
// declarations overwrite earlier ones.
func (b *builder) properties(node dom.Node) *style.PropertyMap {
	pmap := style.NewPropertyMap()
	for _, r := range b.rules {
		if !r.Matches(node) {
			continue
		}
		for _, d := range r.Declarations {
			pmap.Set(d.Name, d.Value)
		}
	}
	return pmap
}

// ExtractStyleElements returns the text content of all <style> elements
// below root, in document order. Clients may parse them as author
// stylesheets.
func ExtractStyleElements(root dom.Node) []string {
	styles, err := root.QuerySelectorAll("style")
	if err != nil {
		tracer().Errorf("searching style elements: %v", err)
		return nil
	}
	sheets := make([]string, 0, len(styles))
	for _, s := range styles {
		sheets = append(sheets, s.InnerText())
	}
	return sheets
}
