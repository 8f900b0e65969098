package render

import (
	"fmt"

	"github.com/npillmayer/rendercore/dom/style"
	"github.com/npillmayer/rendercore/layout"
	"github.com/npillmayer/rendercore/tree"
)

// DisplayCommand is a drawing instruction. SolidColor is the only variant.
type DisplayCommand interface {
	fmt.Stringer
	isDisplayCommand()
}

// SolidColor fills a rectangle with a color.
type SolidColor struct {
	Color style.Color
	Rect  layout.Rect
}

func (SolidColor) isDisplayCommand() {}

func (cmd SolidColor) String() string {
	return fmt.Sprintf("fill %s %s", cmd.Rect, cmd.Color)
}

var _ DisplayCommand = SolidColor{}

// DisplayList is an ordered list of drawing commands.
type DisplayList []DisplayCommand

// BuildDisplayList walks a box tree in pre-order and creates the drawing
// commands for every block box: a SolidColor for the content rectangle if
// property `background-color` (or, as a fallback, `background`) is a color.
func BuildDisplayList(root *layout.Box) DisplayList {
	var list DisplayList
	root.TopDown(func(n *tree.Node[*layout.Box]) bool {
		list = renderBox(list, n.Payload)
		return true
	})
	tracer().Debugf("display list has %d commands", len(list))
	return list
}

func renderBox(list DisplayList, box *layout.Box) DisplayList {
	if box.Type != layout.BlockNode {
		return list
	}
	sn := box.StyleNode()
	bg := sn.Lookup("background-color", "background", style.NullValue)
	if c, ok := bg.Color(); ok {
		list = append(list, SolidColor{Color: c, Rect: box.Content})
	}
	return list
}
