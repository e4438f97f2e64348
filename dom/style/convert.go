package style

import (
	"fmt"
	"image/color"
)

// Named colors understood by the debugging and painting collaborators.
// Stylesheets carry keywords only, so there are no numeric color values.
var namedColors = map[Property]color.RGBA{
	"black":  {0, 0, 0, 0xff},
	"white":  {0xff, 0xff, 0xff, 0xff},
	"red":    {0xff, 0, 0, 0xff},
	"green":  {0, 0x80, 0, 0xff},
	"blue":   {0, 0, 0xff, 0xff},
	"yellow": {0xff, 0xff, 0, 0xff},
	"orange": {0xff, 0xa5, 0, 0xff},
	"gray":   {0x80, 0x80, 0x80, 0xff},
	"grey":   {0x80, 0x80, 0x80, 0xff},
}

// Color interprets a property value as a named color. It returns false for
// values which do not name a known color.
func (p Property) Color() (color.Color, bool) {
	c, ok := namedColors[p]
	if !ok {
		return nil, false
	}
	return c, true
}

// ColorString formats a color as a hex triplet, e.g. "#ff0000".
// A nil color yields "none".
func ColorString(c color.Color) string {
	if c == nil {
		return "none"
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
