package layout

import (
	"fmt"

	"github.com/npillmayer/rendercore/dom/style/css"
	"github.com/npillmayer/rendercore/dom/styledtree"
	"github.com/npillmayer/rendercore/tree"
)

// Rect is a rectangle with origin top-left.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// ExpandedBy returns r grown by an edge on every side.
func (r Rect) ExpandedBy(edge EdgeSizes) Rect {
	return Rect{
		X:      r.X - edge.Left,
		Y:      r.Y - edge.Top,
		Width:  r.Width + edge.Left + edge.Right,
		Height: r.Height + edge.Top + edge.Bottom,
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}

// EdgeSizes holds the four edges of a margin, border or padding.
type EdgeSizes struct {
	Left, Right, Top, Bottom float32
}

// Dimensions is the CSS box model of a box: a content rectangle surrounded
// by padding, border and margin.
type Dimensions struct {
	Content Rect
	Padding EdgeSizes
	Border  EdgeSizes
	Margin  EdgeSizes
}

// Viewport returns a containing block for a viewport of w×h pixels at the
// origin.
func Viewport(w, h float32) Dimensions {
	return Dimensions{Content: Rect{Width: w, Height: h}}
}

// PaddingBox is the content rectangle expanded by the padding.
func (d Dimensions) PaddingBox() Rect {
	return d.Content.ExpandedBy(d.Padding)
}

// BorderBox is the padding box expanded by the border.
func (d Dimensions) BorderBox() Rect {
	return d.PaddingBox().ExpandedBy(d.Border)
}

// MarginBox is the border box expanded by the margin.
func (d Dimensions) MarginBox() Rect {
	return d.BorderBox().ExpandedBy(d.Margin)
}

// --- Boxes -----------------------------------------------------------------

// BoxType classifies boxes of the box tree.
type BoxType uint8

// Types of boxes. Block and inline boxes refer to a styled node, anonymous
// blocks do not.
const (
	BlockNode BoxType = iota
	InlineNode
	AnonymousBlock
)

func (t BoxType) String() string {
	switch t {
	case BlockNode:
		return "block"
	case InlineNode:
		return "inline"
	case AnonymousBlock:
		return "anonymous"
	}
	return "?"
}

// Box is a node of the box tree.
type Box struct {
	tree.Node[*Box] // we build on top of general purpose tree
	Dimensions
	Type      BoxType
	styleNode *styledtree.StyNode
}

func newBox(t BoxType, sn *styledtree.StyNode) *Box {
	box := &Box{Type: t, styleNode: sn}
	box.Payload = box
	return box
}

// StyleNode returns the styled node a box has been created for.
// Anonymous blocks have no styled node; asking for it is a programming
// error and panics.
func (box *Box) StyleNode() *styledtree.StyNode {
	if box.Type == AnonymousBlock {
		panic("layout: anonymous block box has no style node")
	}
	return box.styleNode
}

// ChildBoxes returns the children of a box in order.
func (box *Box) ChildBoxes() []*Box {
	children := box.Children()
	r := make([]*Box, len(children))
	for i, ch := range children {
		r[i] = ch.Payload
	}
	return r
}

func (box *Box) addBox(ch *Box) {
	box.AddChild(&ch.Node)
}

func (box *Box) String() string {
	if box.Type == AnonymousBlock {
		return fmt.Sprintf("[anonymous] %s", box.Content)
	}
	return fmt.Sprintf("%s [%s %s] %s", css.DisplayOf(box.styleNode).Symbol(), box.Type,
		box.styleNode.String(), box.Content)
}
