package styledtree

import (
	"testing"

	"github.com/npillmayer/boxer/dom"
	"github.com/npillmayer/boxer/dom/style"
	"github.com/npillmayer/boxer/dom/style/css"
	"github.com/npillmayer/boxer/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func buildStyledTree(t *testing.T) *StyNode {
	doc := dom.NewDocument()
	body := doc.NewElement("body", nil)
	p := doc.NewElement("p", nil)
	text := doc.NewText("hello")
	if err := doc.SetRoot(body); err != nil {
		t.Fatal(err)
	}
	_ = doc.AppendChild(body, p)
	_ = doc.AppendChild(p, text)
	//
	mk := func(n dom.Node, display string) *tree.Node[*StyNode] {
		sn := NewNodeForDocumentNode(n)
		pmap := style.NewPropertyMap()
		pmap.Set("display", style.Property(display))
		Node(sn).SetStyles(pmap)
		Node(sn).SetDisplay(css.DisplayFor(pmap, n.IsText()))
		return sn
	}
	root := mk(body, "block")
	pnode := mk(p, "block")
	root.AddChild(pnode)
	pnode.AddChild(mk(text, "inline"))
	return Node(root)
}

func TestStyledNodePayload(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxer.styling")
	defer teardown()
	//
	root := buildStyledTree(t)
	if root.Payload != root {
		t.Errorf("expected payload to reference the styled node itself")
	}
	if root.DOMNode().TagName() != "body" {
		t.Errorf("expected styled root to refer to <body>, is %s", root.DOMNode())
	}
	children := root.StyledChildren()
	if len(children) != 1 || children[0].DOMNode().TagName() != "p" {
		t.Fatalf("expected single child <p>, is %v", children)
	}
	if children[0].GetPropertyValue("display") != "block" {
		t.Errorf("expected display of <p> to be block, is %q", children[0].GetPropertyValue("display"))
	}
	if !root.Display().IsBlockLevel() {
		t.Errorf("expected root to be block-level")
	}
	t.Logf("root = %s", root)
}

func TestStyledTreePredicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxer.styling")
	defer teardown()
	//
	root := buildStyledTree(t)
	texts, err := tree.Collect(root.TreeNode(), NodeIsText())
	if err != nil {
		t.Fatal(err)
	}
	if len(texts) != 1 || texts[0].Payload.DOMNode().Data() != "hello" {
		t.Errorf("expected to find 1 text node, found %d", len(texts))
	}
	blocks, _ := tree.Collect(root.TreeNode(), NodeHasProperty("display", "block"))
	if len(blocks) != 2 {
		t.Errorf("expected 2 block nodes, found %d", len(blocks))
	}
	if Count(root) != 3 {
		t.Errorf("expected styled tree of 3 nodes, is %d", Count(root))
	}
}
