package css

import (
	"github.com/npillmayer/rendercore/dom/style"
	"github.com/npillmayer/rendercore/dom/styledtree"
)

// DisplayMode is a type for CSS property "display".
//
type DisplayMode uint16

// Display modes supported by block layout. Every value other than `block`
// and `none` is treated as inline.
const (
	NoMode      DisplayMode = iota   // unset or error condition
	DisplayNone DisplayMode = 0x0001 // CSS outer display = none
	BlockMode   DisplayMode = 0x0002 // CSS block context
	InlineMode  DisplayMode = 0x0004 // CSS inline context
)

func (disp DisplayMode) String() string {
	switch disp {
	case NoMode:
		return "NoMode"
	case DisplayNone:
		return "DisplayNone"
	case BlockMode:
		return "BlockMode"
	case InlineMode:
		return "InlineMode"
	}
	return "DisplayMode(?)"
}

// IsBlockLevel returns true for BlockMode.
func (disp DisplayMode) IsBlockLevel() bool {
	return disp == BlockMode
}

// Symbol returns a Unicode symbol for a mode.
func (disp DisplayMode) Symbol() string {
	switch disp {
	case BlockMode:
		return "▩"
	case InlineMode:
		return "►"
	case DisplayNone:
		return "∅"
	case NoMode:
		return "–"
	}
	return "?"
}

// ParseDisplay returns the display mode for a specified value of property
// "display". Absent values and values other than `block` and `none` result
// in InlineMode.
func ParseDisplay(v style.Value) DisplayMode {
	kw, _ := v.Keyword()
	switch kw {
	case "block":
		return BlockMode
	case "none":
		return DisplayNone
	case "", "inline":
	default:
		tracer().Debugf("display: %s unsupported, treated as inline", kw)
	}
	return InlineMode
}

// DisplayOf returns the display mode of a styled node.
func DisplayOf(sn *styledtree.StyNode) DisplayMode {
	v, _ := sn.Value("display")
	return ParseDisplay(v)
}
