package cssom_test

import (
	"testing"

	"github.com/npillmayer/boxer/dom"
	"github.com/npillmayer/boxer/dom/markup"
	"github.com/npillmayer/boxer/dom/style/cssom"
	"github.com/npillmayer/boxer/dom/styledtree"
	"github.com/npillmayer/boxer/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/xlab/treeprint"
)

func parseDoc(t *testing.T, s string) *dom.Document {
	doc, err := markup.Parse(s)
	if err != nil {
		t.Fatalf("cannot parse test markup: %v", err)
	}
	return doc
}

func parseSheet(t *testing.T, s string) *cssom.Sheet {
	sheet, err := cssom.Parse(s)
	if err != nil {
		t.Fatalf("cannot parse test stylesheet: %v", err)
	}
	return sheet
}

func printStyledTree(sn *styledtree.StyNode) string {
	tp := treeprint.New()
	var walk func(*styledtree.StyNode, treeprint.Tree)
	walk = func(n *styledtree.StyNode, branch treeprint.Tree) {
		b := branch.AddBranch(n.String())
		for _, ch := range n.StyledChildren() {
			walk(ch, b)
		}
	}
	walk(sn, tp)
	return tp.String()
}

func TestSelectorMatching(t *testing.T) {
	doc := parseDoc(t, `<p id="test" class="testclass a">x</p>`)
	p := doc.Root()
	text, _ := p.Child(0)
	tests := []struct {
		sel   cssom.Selector
		p, tx bool
	}{
		{cssom.UniversalSelector{}, true, true},
		{cssom.TypeSelector{Tag: "p"}, true, false},
		{cssom.TypeSelector{Tag: "invalid"}, false, false},
		{cssom.ClassSelector{Class: "testclass a"}, true, false},
		{cssom.ClassSelector{Class: "testclass"}, false, false},
		{cssom.AttributeSelector{Tag: "p", Op: cssom.AttrEq, Attribute: "id", Value: "test"}, true, false},
		{cssom.AttributeSelector{Tag: "p", Op: cssom.AttrEq, Attribute: "id", Value: "invalid"}, false, false},
		{cssom.AttributeSelector{Tag: "p", Op: cssom.AttrEq, Attribute: "invalid", Value: "test"}, false, false},
		{cssom.AttributeSelector{Tag: "invalid", Op: cssom.AttrEq, Attribute: "id", Value: "test"}, false, false},
		{cssom.AttributeSelector{Tag: "p", Op: cssom.AttrContains, Attribute: "class", Value: "testclass"}, true, false},
		{cssom.AttributeSelector{Tag: "p", Op: cssom.AttrEq, Attribute: "class", Value: "testclass"}, false, false},
	}
	for _, tt := range tests {
		if tt.sel.Matches(p) != tt.p {
			t.Errorf("expected %s to match <p>: %v", tt.sel, tt.p)
		}
		if tt.sel.Matches(text) != tt.tx {
			t.Errorf("expected %s to match text: %v", tt.sel, tt.tx)
		}
	}
}

func TestStyleLastDeclarationWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxer.cssom")
	defer teardown()
	//
	doc := parseDoc(t, `<div><p class="x">a</p></div>`)
	sheet := parseSheet(t, `p { color: red; display: block } .x { color: blue } p { color: green }`)
	root, ok := cssom.Style(doc.Root(), sheet).Get()
	if !ok {
		t.Fatalf("expected styled tree")
	}
	p := root.StyledChildren()[0]
	if c := p.GetPropertyValue("color"); c != "green" {
		t.Errorf("expected color of <p> to be green, is %q", c)
	}
	if d := p.GetPropertyValue("display"); d != "block" {
		t.Errorf("expected display of <p> to be block, is %q", d)
	}
	if root.GetPropertyValue("color") != "" {
		t.Errorf("expected <div> to have no color, as there is no inheritance")
	}
	t.Logf("\n%s", printStyledTree(root))
}

func TestStyleDisplayNonePrunes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxer.cssom")
	defer teardown()
	//
	doc := parseDoc(t, `<body><div class="hidden"><p>a</p><p>b</p></div><p>c</p></body>`)
	sheet := parseSheet(t, `.hidden { display: none } p { display: block }`)
	root, ok := cssom.Style(doc.Root(), sheet).Get()
	if !ok {
		t.Fatalf("expected styled tree")
	}
	if n := styledtree.Count(root); n != 3 { // body, p, text "c"
		t.Errorf("expected 3 styled nodes, have %d\n%s", n, printStyledTree(root))
	}
	texts, _ := tree.Collect(root.TreeNode(), styledtree.NodeIsText())
	if len(texts) != 1 || texts[0].Payload.DOMNode().Data() != "c" {
		t.Errorf("expected only text 'c' to survive")
	}
}

func TestStyleRootNoneIsNothing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxer.cssom")
	defer teardown()
	//
	doc := parseDoc(t, `<body><p>a</p></body>`)
	sheet := parseSheet(t, `body { display: none }`)
	var sn *styledtree.StyNode
	switch m := cssom.Style(doc.Root(), sheet).Match(); m {
	case m.Just(&sn):
		t.Errorf("expected nothing to render, got %s", sn)
	case m.Nothing():
		t.Logf("nothing to render, as expected")
	}
}

func TestStyleDefaults(t *testing.T) {
	doc := parseDoc(t, `<div>text<span>more</span></div>`)
	root, ok := cssom.Style(doc.Root(), nil).Get()
	if !ok {
		t.Fatalf("expected styled tree")
	}
	children := root.StyledChildren()
	if len(children) != 2 {
		t.Fatalf("expected 2 styled children, have %d", len(children))
	}
	if !root.Display().IsBlockLevel() {
		t.Errorf("expected element without display to be block-level")
	}
	if children[0].Display().IsBlockLevel() {
		t.Errorf("expected text to be inline")
	}
	if !children[1].Display().IsBlockLevel() {
		t.Errorf("expected <span> without stylesheet to be block-level")
	}
}

func TestStyleContainsVersusEq(t *testing.T) {
	doc := parseDoc(t, `<div><p class="a b">x</p></div>`)
	for _, tt := range []struct {
		css   string
		count int
	}{
		{`p[class~=a] { display: none }`, 1},
		{`p[class=a] { display: none }`, 3},
		{`.a { display: none }`, 3},
		{`p[class="a b"] { display: none }`, 1},
	} {
		root, _ := cssom.Style(doc.Root(), parseSheet(t, tt.css)).Get()
		if n := styledtree.Count(root); n != tt.count {
			t.Errorf("%s: expected %d styled nodes, have %d", tt.css, tt.count, n)
		}
	}
}

func TestExtractStyleElements(t *testing.T) {
	doc := parseDoc(t, `<html><head><style>p { display: inline }</style></head><body><style>div { color: red }</style></body></html>`)
	sheets := cssom.ExtractStyleElements(doc.Root())
	if len(sheets) != 2 {
		t.Fatalf("expected 2 style elements, have %d", len(sheets))
	}
	if sheets[0] != "p { display: inline }" {
		t.Errorf("expected first style sheet to be 'p { display: inline }', is %q", sheets[0])
	}
}
