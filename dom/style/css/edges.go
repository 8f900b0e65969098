package css

import (
	"strings"

	"github.com/npillmayer/rendercore/dom/style"
	"github.com/npillmayer/rendercore/dom/styledtree"
)

// Dir is either Top, Right, Bottom or Left.
type Dir uint8

// Directions of box edges.
const (
	Top Dir = iota
	Right
	Bottom
	Left
)

func (d Dir) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return "?"
}

// EdgeKey returns the property key for one edge of a shorthand property,
// e.g. "margin" → "margin-left", "border-width" → "border-left-width".
func EdgeKey(shorthand string, d Dir) string {
	if i := strings.IndexByte(shorthand, '-'); i > 0 {
		return shorthand[:i] + "-" + d.String() + shorthand[i:]
	}
	return shorthand + "-" + d.String()
}

// EdgeValue returns the specified value for one edge of a box-model
// property. It falls back to the shorthand property, then to 0px.
func EdgeValue(sn *styledtree.StyNode, shorthand string, d Dir) style.Value {
	return sn.Lookup(EdgeKey(shorthand, d), shorthand, style.Pixels(0))
}

// Edge is EdgeValue interpreted as a dimension; it may be Auto for margins.
func Edge(sn *styledtree.StyNode, shorthand string, d Dir) DimenT {
	return DimenOf(EdgeValue(sn, shorthand, d))
}
