package maybe_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/boxer/maybe"
)

var ids = map[string]string{
	"main":   "div",
	"banner": "header",
}

func lookup(id string) maybe.Maybe[string] {
	tag, ok := ids[id]
	return maybe.Of(tag, ok)
}

func TestMatch(t *testing.T) {
	var tag string
	switch m := lookup("main").Match(); m {
	case m.Just(&tag):
		t.Logf("found <%s>", tag)
	case m.Nothing():
		t.Errorf("expected to find id 'main'")
	}
	if tag != "div" {
		t.Errorf("expected tag to be div, is %q", tag)
	}
	//
	tag = ""
	found := true
	switch m := lookup("footer").Match(); m {
	case m.Just(&tag):
	case m.Nothing():
		found = false
	}
	if found || tag != "" {
		t.Errorf("expected nothing for id 'footer', is %q", tag)
	}
}

func TestGetAndOf(t *testing.T) {
	if v, ok := maybe.Just(3).Get(); !ok || v != 3 {
		t.Errorf("expected Just(3), is (%d, %v)", v, ok)
	}
	if v, ok := maybe.Of("x", false).Get(); ok || v != "" {
		t.Errorf("expected Of(x, false) to be Nothing, is (%q, %v)", v, ok)
	}
}

func TestWithDefault(t *testing.T) {
	if tag := lookup("banner").WithDefault("span"); tag != "header" {
		t.Errorf("expected header, is %q", tag)
	}
	if tag := lookup("nav").WithDefault("span"); tag != "span" {
		t.Errorf("expected default span, is %q", tag)
	}
}

func TestMap(t *testing.T) {
	upper, _ := lookup("main").Map(strings.ToUpper).Get()
	if upper != "DIV" {
		t.Errorf("expected DIV, is %q", upper)
	}
	upper, _ = maybe.Map(strings.ToUpper, lookup("banner")).Get()
	if upper != "HEADER" {
		t.Errorf("expected HEADER, is %q", upper)
	}
	if _, ok := lookup("nav").Map(strings.ToUpper).Get(); ok {
		t.Errorf("expected mapping Nothing to stay Nothing")
	}
}

func TestAndThen(t *testing.T) {
	isBlock := func(tag string) maybe.Maybe[bool] {
		return maybe.Of(true, tag == "div" || tag == "header")
	}
	if _, ok := maybe.AndThen(isBlock, lookup("main")).Get(); !ok {
		t.Errorf("expected <div> to be a block")
	}
	if _, ok := maybe.AndThen(isBlock, lookup("nav")).Get(); ok {
		t.Errorf("expected chain on Nothing to yield Nothing")
	}
}
