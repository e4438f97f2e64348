package douceuradapter

import (
	"errors"
	"testing"

	"github.com/npillmayer/boxer/dom/markup"
	"github.com/npillmayer/boxer/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDouceurFrontEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxer.cssom")
	defer teardown()
	//
	sheet, err := Parse(`
@media print { p { display: none } }
p, .note { display: block; color: red !important }
div[class~=x] { display: inline }
`)
	if err != nil {
		t.Fatal(err)
	}
	rules := sheet.Rules()
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules (at-rule skipped), have %d", len(rules))
	}
	if len(rules[0].Selectors) != 2 {
		t.Errorf("expected 2 selectors for first rule, have %d", len(rules[0].Selectors))
	}
	if rules[0].Declarations[1].Value != "red" {
		t.Errorf("expected color red, is %q", rules[0].Declarations[1].Value)
	}
	if sel, ok := rules[1].Selectors[0].(cssom.AttributeSelector); !ok || sel.Op != cssom.AttrContains {
		t.Errorf("expected ~= attribute selector, is %v", rules[1].Selectors[0])
	}
	if sheet.Source() == nil || len(sheet.Source().Rules) != 3 {
		t.Errorf("expected douceur source sheet to be kept")
	}
}

func TestDouceurAgreesWithNativeParser(t *testing.T) {
	input := `p { display: block } .a { display: none } span[id="x"] { color: blue }`
	native, err := cssom.Parse(input)
	if err != nil {
		t.Fatal(err)
	}
	sheet, err := Parse(input)
	if err != nil {
		t.Fatal(err)
	}
	if len(native.Rules()) != len(sheet.Rules()) {
		t.Fatalf("expected both front-ends to produce %d rules", len(native.Rules()))
	}
	for i := range native.Rules() {
		if native.Rules()[i].String() != sheet.Rules()[i].String() {
			t.Errorf("expected rule %d to be %s, is %s", i, native.Rules()[i], sheet.Rules()[i])
		}
	}
}

func TestDouceurRejectsNonKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxer.cssom")
	defer teardown()
	//
	for _, input := range []string{
		`p { margin: 10px }`,
		`p { border: 1px solid black }`,
		`p > span { display: block }`,
	} {
		if _, err := Parse(input); !errors.Is(err, cssom.ErrSyntax) {
			t.Errorf("expected syntax error for %q, is %v", input, err)
		}
	}
}

func TestExtractStyleElements(t *testing.T) {
	doc, err := markup.Parse(`<html><head><style>p { display: inline }</style></head><body></body></html>`)
	if err != nil {
		t.Fatal(err)
	}
	sheets, err := ExtractStyleElements(doc.Root())
	if err != nil {
		t.Fatal(err)
	}
	if len(sheets) != 1 || sheets[0].Empty() {
		t.Errorf("expected 1 non-empty stylesheet, have %d", len(sheets))
	}
	var s cssom.StyleSheet = cssom.NewSheet()
	s.AppendRules(sheets[0])
	if s.Empty() {
		t.Errorf("expected rules to be appended to native sheet")
	}
}
