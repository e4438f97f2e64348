package css_test

import (
	"testing"

	"github.com/npillmayer/boxer/dom/style"
	"github.com/npillmayer/boxer/dom/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseDisplay(t *testing.T) {
	tests := []struct {
		input string
		block bool
		none  bool
	}{
		{"block", true, false},
		{"inline", false, false},
		{"list-item", true, false},
		{"inline-block", false, false},
		{"table", true, false},
		{"none", false, true},
	}
	for _, tt := range tests {
		disp, err := css.ParseDisplay(tt.input)
		if err != nil {
			t.Fatalf("display %q: %v", tt.input, err)
		}
		if disp.IsBlockLevel() != tt.block {
			t.Errorf("expected %q to be block-level=%v, is %v", tt.input, tt.block, disp.FullString())
		}
		if disp.IsNone() != tt.none {
			t.Errorf("expected %q to be none=%v", tt.input, tt.none)
		}
	}
	if _, err := css.ParseDisplay("flex-ish"); err == nil {
		t.Errorf("expected unknown display keyword to be an error")
	}
}

func TestDisplayForDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxer.styling")
	defer teardown()
	//
	empty := style.NewPropertyMap()
	if d := css.DisplayFor(empty, false); !d.IsBlockLevel() {
		t.Errorf("expected elements to default to block, is %s", d)
	}
	if d := css.DisplayFor(empty, true); d.IsBlockLevel() || d.IsNone() {
		t.Errorf("expected text to default to inline, is %s", d)
	}
	if d := css.DisplayFor(nil, true); d != css.DefaultTextDisplay {
		t.Errorf("expected nil property map to yield default, is %s", d)
	}
	pmap := style.NewPropertyMap()
	pmap.Set("display", "inline")
	if d := css.DisplayFor(pmap, false); d.IsBlockLevel() {
		t.Errorf("expected explicit inline for element, is %s", d)
	}
	pmap.Set("display", "wobbly")
	if d := css.DisplayFor(pmap, true); d != css.DefaultTextDisplay {
		t.Errorf("expected unknown keyword to fall back to default, is %s", d)
	}
}

func TestDisplaySymbol(t *testing.T) {
	if css.DefaultElementDisplay.Symbol() != "▩" {
		t.Errorf("expected block symbol, is %s", css.DefaultElementDisplay.Symbol())
	}
	if css.DefaultTextDisplay.Symbol() != "►" {
		t.Errorf("expected inline symbol, is %s", css.DefaultTextDisplay.Symbol())
	}
}
