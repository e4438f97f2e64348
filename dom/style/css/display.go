package css

import (
	"fmt"
	"strings"
)

// DisplayMode is a type for CSS property "display".
//
type DisplayMode uint16

// Flags for box context and display mode (outer and inner).
const (
	NoMode          DisplayMode = iota   // unset or error condition
	DisplayNone     DisplayMode = 0x0001 // CSS outer display = none
	BlockMode       DisplayMode = 0x0002 // CSS block context (inner or outer)
	InlineMode      DisplayMode = 0x0004 // CSS inline context
	FlowRootMode    DisplayMode = 0x0010 // CSS flow-root display property
	ListItemMode    DisplayMode = 0x0020 // CSS list-item display
	TableMode       DisplayMode = 0x0100 // CSS table display property (inner or outer)
	InnerBlockMode  DisplayMode = 0x0200 // CSS inner block mode (inline-block)
	InnerInlineMode DisplayMode = 0x0400 // CSS inner inline mode (paragraphs)
)

var allDisplayModes = []DisplayMode{
	DisplayNone, BlockMode, InlineMode, FlowRootMode, ListItemMode,
	TableMode, InnerBlockMode, InnerInlineMode,
}

var displayModeNames = map[DisplayMode]string{
	NoMode:          "NoMode",
	DisplayNone:     "DisplayNone",
	BlockMode:       "BlockMode",
	InlineMode:      "InlineMode",
	FlowRootMode:    "FlowRootMode",
	ListItemMode:    "ListItemMode",
	TableMode:       "TableMode",
	InnerBlockMode:  "InnerBlockMode",
	InnerInlineMode: "InnerInlineMode",
}

func (disp DisplayMode) String() string {
	if name, ok := displayModeNames[disp]; ok {
		return name
	}
	return disp.FullString()
}

// Outer returns outer mode
func (disp DisplayMode) Outer() DisplayMode {
	return disp & 0x000f
}

// Inner returns inner mode
func (disp DisplayMode) Inner() DisplayMode {
	return disp & 0xfff0
}

// IsBlockLevel return true if it has outer display level of BlockMode.
//
// A block-level element is defined as (from the CSS 2.2 recommendation):
// Block-level elements are those elements of the source document that are formatted visually
// as blocks (e.g., paragraphs). The following values of the 'display' property make an element
// block-level: 'block', 'list-item', and 'table'.
//
func (disp DisplayMode) IsBlockLevel() bool {
	return disp.Outer() == BlockMode
}

// IsNone is true for display mode DisplayNone.
func (disp DisplayMode) IsNone() bool {
	return disp.Outer() == DisplayNone
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// FullString returns all atomic modes set in a display mode.
func (disp DisplayMode) FullString() string {
	var names []string
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			names = append(names, displayModeNames[m])
		}
	}
	if len(names) == 0 {
		return displayModeNames[NoMode]
	}
	return strings.Join(names, " ")
}

// Symbol returns a Unicode symbol for a mode.
func (disp DisplayMode) Symbol() string {
	if disp.Contains(ListItemMode) {
		return "▣"
	} else if disp.Contains(TableMode) {
		return "▥"
	} else if disp.Contains(BlockMode) || disp.Contains(InnerBlockMode) {
		return "▩"
	} else if disp.Contains(InlineMode) || disp.Contains(InnerInlineMode) {
		return "►"
	} else if disp == DisplayNone {
		return "∅"
	} else if disp == NoMode {
		return "-"
	}
	return "?"
}

// ParseDisplay returns mode flags from a display property string (outer and inner).
// An empty string yields NoMode. Unknown keywords yield an error.
func ParseDisplay(display string) (DisplayMode, error) {
	switch display {
	case "":
		return NoMode, nil
	case "none":
		return DisplayNone, nil
	case "block":
		return BlockMode | InnerBlockMode, nil
	case "inline":
		return InlineMode | InnerInlineMode, nil
	case "flow-root":
		return BlockMode | FlowRootMode, nil
	case "list-item":
		return BlockMode | ListItemMode, nil
	case "block-inline":
		return BlockMode | InnerInlineMode, nil
	case "inline-block":
		return InlineMode | InnerBlockMode, nil
	case "table":
		return BlockMode | TableMode, nil
	case "inline-table":
		return InlineMode | TableMode, nil
	}
	return NoMode, fmt.Errorf("unknown display mode: %s", display)
}
