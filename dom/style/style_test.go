package style

import (
	"image/color"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestPropertyMapLastWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxer.styling")
	defer teardown()
	//
	pmap := NewPropertyMap()
	pmap.Set("display", "inline")
	pmap.Set("color", "red")
	pmap.Set("display", "block")
	if p, ok := pmap.Property("display"); !ok || p != "block" {
		t.Errorf("expected display to be block, is %q", p)
	}
	if pmap.Len() != 2 {
		t.Errorf("expected 2 properties, have %d", pmap.Len())
	}
	if pmap.Size() != 2 {
		t.Errorf("expected 2 property groups, have %d", pmap.Size())
	}
	if _, ok := pmap.Property("margin"); ok {
		t.Errorf("expected margin to be unset")
	}
}

func TestPropertyMapUnknownKeysGoToX(t *testing.T) {
	pmap := NewPropertyMap()
	pmap.Set("funny-margin", "big")
	if pmap.Group(PGX) == nil {
		t.Fatalf("expected property group X to be created")
	}
	if p, _ := pmap.Property("funny-margin"); p != "big" {
		t.Errorf("expected funny-margin = big, is %q", p)
	}
}

func TestPropertyMapNil(t *testing.T) {
	var pmap *PropertyMap
	if pmap.Size() != 0 || pmap.Len() != 0 {
		t.Errorf("expected nil property map to be empty")
	}
	if _, ok := pmap.Property("display"); ok {
		t.Errorf("expected nil property map to have no properties")
	}
	if !pmap.Equal(NewPropertyMap()) {
		t.Errorf("expected nil property map to equal an empty one")
	}
}

func TestPropertyMapCloneAndEqual(t *testing.T) {
	pmap := NewPropertyMap()
	pmap.Set("display", "block")
	pmap.Set("Color", "Red")
	c := pmap.Clone()
	if !pmap.Equal(c) {
		t.Errorf("expected clone to be equal")
	}
	c.Set("display", "none")
	if pmap.Equal(c) {
		t.Errorf("expected modified clone to differ")
	}
	if p, _ := pmap.Property("Color"); p != "Red" {
		t.Errorf("expected values to keep their case, is %q", p)
	}
	t.Logf("%s", pmap)
}

func TestUserAgentCSS(t *testing.T) {
	css := UserAgentCSS()
	if !strings.Contains(css, "head, script, style, title { display: none }") {
		t.Errorf("expected none-rule in UA stylesheet, have\n%s", css)
	}
	if css != UserAgentCSS() {
		t.Errorf("expected UA stylesheet to be deterministic")
	}
}

func TestColor(t *testing.T) {
	c, ok := Property("red").Color()
	if !ok || c != (color.RGBA{0xff, 0, 0, 0xff}) {
		t.Errorf("expected red to be a known color")
	}
	if ColorString(c) != "#ff0000" {
		t.Errorf("expected #ff0000, is %s", ColorString(c))
	}
	if _, ok = Property("block").Color(); ok {
		t.Errorf("expected 'block' not to be a color")
	}
}
