package layout

import (
	"github.com/npillmayer/rendercore/dom/style"
	"github.com/npillmayer/rendercore/dom/style/css"
	"github.com/npillmayer/rendercore/dom/styledtree"
)

// Layout builds the box tree for a styled tree and lays it out within a
// containing block, usually the viewport. The height of the containing
// block is ignored; it serves as the vertical cursor and starts at 0.
//
// The root node must not have `display: none`; Layout panics otherwise.
func Layout(root *styledtree.StyNode, containingBlock Dimensions) *Box {
	containingBlock.Content.Height = 0
	rootBox := BuildBoxTree(root)
	rootBox.layout(containingBlock)
	tracer().Debugf("layout of %d boxes done", rootBox.Size())
	return rootBox
}

// BuildBoxTree creates the box tree for a styled tree, without computing any
// geometry.
func BuildBoxTree(root *styledtree.StyNode) *Box {
	var rootBox *Box
	switch css.DisplayOf(root) {
	case css.BlockMode:
		rootBox = newBox(BlockNode, root)
	case css.InlineMode:
		rootBox = newBox(InlineNode, root)
	default:
		panic("layout: root node has display: none")
	}
	for _, ch := range root.StyledChildren() {
		switch css.DisplayOf(ch) {
		case css.BlockMode:
			rootBox.addBox(BuildBoxTree(ch))
		case css.InlineMode:
			rootBox.inlineContainer().addBox(BuildBoxTree(ch))
		default:
			tracer().Debugf("pruning %s", ch)
		}
	}
	return rootBox
}

// inlineContainer returns the box to which inline children are added.
// Inline and anonymous boxes host inline children themselves; block boxes
// host them in a trailing anonymous block, which is created if necessary.
func (box *Box) inlineContainer() *Box {
	if box.Type != BlockNode {
		return box
	}
	if last, ok := box.LastChild(); ok && last.Payload.Type == AnonymousBlock {
		return last.Payload
	}
	anon := newBox(AnonymousBlock, nil)
	box.addBox(anon)
	return anon
}

// layout lays out a box and its children. Inline boxes and anonymous
// blocks receive no geometry.
func (box *Box) layout(containingBlock Dimensions) {
	if box.Type == BlockNode {
		box.layoutBlock(containingBlock)
	}
}

func (box *Box) layoutBlock(containingBlock Dimensions) {
	box.calculateWidth(containingBlock)
	box.calculatePosition(containingBlock)
	box.layoutChildren()
	box.calculateHeight()
}

// calculateWidth resolves width, horizontal padding, borders and margins
// such that their sum equals the width of the containing block, with
// overflow going into the right margin.
func (box *Box) calculateWidth(containingBlock Dimensions) {
	sn := box.StyleNode()
	width := css.Auto()
	if v, ok := sn.Value("width"); ok {
		width = css.DimenOf(v)
	}
	marginLeft := css.Edge(sn, "margin", css.Left)
	marginRight := css.Edge(sn, "margin", css.Right)
	borderLeft := css.Edge(sn, "border-width", css.Left).Px()
	borderRight := css.Edge(sn, "border-width", css.Right).Px()
	paddingLeft := css.Edge(sn, "padding", css.Left).Px()
	paddingRight := css.Edge(sn, "padding", css.Right).Px()

	cbWidth := containingBlock.Content.Width
	total := marginLeft.Px() + marginRight.Px() + borderLeft + borderRight +
		paddingLeft + paddingRight + width.Px()

	if !width.IsAuto() && total > cbWidth {
		if marginLeft.IsAuto() {
			marginLeft = css.JustDimen(0)
		}
		if marginRight.IsAuto() {
			marginRight = css.JustDimen(0)
		}
	}
	underflow := cbWidth - total

	switch {
	case width.IsAuto():
		if marginLeft.IsAuto() {
			marginLeft = css.JustDimen(0)
		}
		if marginRight.IsAuto() {
			marginRight = css.JustDimen(0)
		}
		if underflow >= 0 {
			width = css.JustDimen(underflow)
		} else {
			width = css.JustDimen(0)
			marginRight = css.JustDimen(marginRight.Px() + underflow)
		}
	case marginLeft.IsAuto() && marginRight.IsAuto():
		marginLeft = css.JustDimen(underflow / 2)
		marginRight = css.JustDimen(underflow / 2)
	case marginLeft.IsAuto():
		marginLeft = css.JustDimen(underflow)
	case marginRight.IsAuto():
		marginRight = css.JustDimen(underflow)
	default: // over-constrained
		marginRight = css.JustDimen(marginRight.Px() + underflow)
	}

	d := &box.Dimensions
	d.Content.Width = width.Px()
	d.Padding.Left, d.Padding.Right = paddingLeft, paddingRight
	d.Border.Left, d.Border.Right = borderLeft, borderRight
	d.Margin.Left, d.Margin.Right = marginLeft.Px(), marginRight.Px()
	tracer().Debugf("%s: width=%g, margins=(%g,%g)", sn, d.Content.Width, d.Margin.Left, d.Margin.Right)
}

// calculatePosition places a box below the content already laid out in the
// containing block.
func (box *Box) calculatePosition(containingBlock Dimensions) {
	sn := box.StyleNode()
	d := &box.Dimensions
	d.Margin.Top = css.Edge(sn, "margin", css.Top).Px()
	d.Margin.Bottom = css.Edge(sn, "margin", css.Bottom).Px()
	d.Border.Top = css.Edge(sn, "border-width", css.Top).Px()
	d.Border.Bottom = css.Edge(sn, "border-width", css.Bottom).Px()
	d.Padding.Top = css.Edge(sn, "padding", css.Top).Px()
	d.Padding.Bottom = css.Edge(sn, "padding", css.Bottom).Px()

	cb := containingBlock.Content
	d.Content.X = cb.X + d.Margin.Left + d.Border.Left + d.Padding.Left
	d.Content.Y = cb.Y + cb.Height + d.Margin.Top + d.Border.Top + d.Padding.Top
}

// layoutChildren stacks the children of a box vertically. The height of the
// box grows by the margin box of every child.
func (box *Box) layoutChildren() {
	for _, ch := range box.ChildBoxes() {
		ch.layout(box.Dimensions)
		box.Content.Height += ch.MarginBox().Height
	}
}

// calculateHeight applies an explicit height in pixels. Otherwise the height
// is the sum of the heights of the children.
func (box *Box) calculateHeight() {
	v, _ := box.StyleNode().Value("height")
	if h, unit, ok := v.Length(); ok && unit == style.Px {
		box.Content.Height = h
	}
}
