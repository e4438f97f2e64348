package css

import (
	"github.com/npillmayer/boxer/dom/style"
)

// Default display modes for nodes without a display property.
const (
	DefaultElementDisplay = BlockMode | InnerBlockMode
	DefaultTextDisplay    = InlineMode | InnerInlineMode
)

// GetLocalProperty returns a style property value, if it is set locally
// for a styled node's property map. There is no inheritance: properties
// never cascade from ancestors.
func GetLocalProperty(pmap *style.PropertyMap, key string) style.Property {
	p, _ := pmap.Property(key)
	return p
}

// DisplayFor computes the display mode for a node from its property map.
// If the property map does not set "display", the default for the kind of
// node applies: inline for text, block for elements. Unknown display
// keywords fall back to the same default.
func DisplayFor(pmap *style.PropertyMap, isText bool) DisplayMode {
	fallback := DefaultElementDisplay
	if isText {
		fallback = DefaultTextDisplay
	}
	p := GetLocalProperty(pmap, "display")
	disp, err := ParseDisplay(p.String())
	if err != nil {
		tracer().P("display", p).Infof("%v, using %s", err, fallback.FullString())
		return fallback
	}
	if disp == NoMode {
		return fallback
	}
	return disp
}
