package layout_test

import (
	"testing"

	"github.com/npillmayer/rendercore/dom"
	"github.com/npillmayer/rendercore/dom/style"
	"github.com/npillmayer/rendercore/dom/style/css"
	"github.com/npillmayer/rendercore/dom/style/cssom"
	"github.com/npillmayer/rendercore/dom/style/cssom/cssparser"
	"github.com/npillmayer/rendercore/dom/styledtree"
	"github.com/npillmayer/rendercore/layout"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func styleMarkup(t *testing.T, markup, css string) *styledtree.StyNode {
	t.Helper()
	root, err := dom.ParseFragment(markup)
	require.NoError(t, err)
	sheet, err := cssparser.Parse(css)
	require.NoError(t, err)
	return cssom.Style(root, sheet)
}

// blockNode creates a detached block-level styled node with properties.
func blockNode(props map[string]style.Value) *styledtree.StyNode {
	pmap := style.NewPropertyMap()
	pmap.Set("display", style.Keyword("block"))
	for k, v := range props {
		pmap.Set(k, v)
	}
	return styledtree.NewNodeForHTMLNode(nil, pmap)
}

func horizontalSum(d layout.Dimensions) float32 {
	return d.Margin.Left + d.Border.Left + d.Padding.Left + d.Content.Width +
		d.Padding.Right + d.Border.Right + d.Margin.Right
}

func TestWidthResolutionCases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendercore.layout")
	defer teardown()
	//
	px := style.Pixels
	auto := style.Auto
	common := func(m map[string]style.Value) map[string]style.Value {
		m["padding"] = px(10)
		m["border-width"] = px(5)
		return m
	}
	for _, c := range []struct {
		name                 string
		props                map[string]style.Value
		width, mLeft, mRight float32
	}{
		{"all fixed", common(map[string]style.Value{
			"width": px(400), "margin-left": px(20), "margin-right": px(30)}), 400, 20, 350},
		{"right margin auto", common(map[string]style.Value{
			"width": px(400), "margin-left": px(20), "margin-right": auto}), 400, 20, 350},
		{"left margin auto", common(map[string]style.Value{
			"width": px(400), "margin-left": auto, "margin-right": px(30)}), 400, 340, 30},
		{"width auto", common(map[string]style.Value{
			"width": auto, "margin-left": px(20), "margin-right": auto}), 750, 20, 0},
		{"both margins auto", common(map[string]style.Value{
			"width": px(400), "margin": auto}), 400, 185, 185},
	} {
		box := layout.Layout(blockNode(c.props), layout.Viewport(800, 600))
		assert.Equal(t, c.width, box.Content.Width, c.name)
		assert.Equal(t, c.mLeft, box.Margin.Left, c.name)
		assert.Equal(t, c.mRight, box.Margin.Right, c.name)
		assert.Equal(t, float32(800), horizontalSum(box.Dimensions), c.name)
		assert.Equal(t, float32(15), box.Content.X-box.Margin.Left, c.name)
	}
}

func TestWidthOverflowClampsAutoMargins(t *testing.T) {
	box := layout.Layout(blockNode(map[string]style.Value{
		"width":  style.Pixels(900),
		"margin": style.Auto,
	}), layout.Viewport(800, 600))
	assert.Equal(t, float32(900), box.Content.Width)
	assert.Equal(t, float32(0), box.Margin.Left)
	assert.Equal(t, float32(-100), box.Margin.Right)
	assert.Equal(t, float32(800), horizontalSum(box.Dimensions))
}

func TestWidthAutoNegativeUnderflow(t *testing.T) {
	box := layout.Layout(blockNode(map[string]style.Value{
		"margin-left":  style.Pixels(500),
		"margin-right": style.Pixels(500),
	}), layout.Viewport(800, 600))
	assert.Equal(t, float32(0), box.Content.Width, "width never gets negative")
	assert.Equal(t, float32(500), box.Margin.Left)
	assert.Equal(t, float32(300), box.Margin.Right)
}

func TestBlockStacking(t *testing.T) {
	parent := blockNode(map[string]style.Value{"padding-top": style.Pixels(7)})
	heights := []float32{10, 20, 30}
	for i, h := range heights {
		props := map[string]style.Value{"height": style.Pixels(h)}
		if i == 1 {
			props["margin-top"] = style.Pixels(4)
			props["margin-bottom"] = style.Pixels(6)
		}
		parent.AddStyledChild(blockNode(props))
	}
	root := layout.Layout(parent, layout.Viewport(800, 600))
	children := root.ChildBoxes()
	require.Len(t, children, 3)
	cursor := root.Content.Y
	assert.Equal(t, float32(7), cursor)
	for i, ch := range children {
		assert.Equal(t, cursor, ch.MarginBox().Y, "child %d", i)
		cursor += ch.MarginBox().Height
	}
	assert.Equal(t, float32(10+20+10+30), root.Content.Height)
}

func TestExplicitHeightOverridesChildren(t *testing.T) {
	parent := blockNode(map[string]style.Value{"height": style.Pixels(5)})
	parent.AddStyledChild(blockNode(map[string]style.Value{"height": style.Pixels(50)}))
	root := layout.Layout(parent, layout.Viewport(800, 600))
	assert.Equal(t, float32(5), root.Content.Height)
	//
	parent = blockNode(map[string]style.Value{"height": style.Keyword("auto")})
	parent.AddStyledChild(blockNode(map[string]style.Value{"height": style.Pixels(50)}))
	root = layout.Layout(parent, layout.Viewport(800, 600))
	assert.Equal(t, float32(50), root.Content.Height)
}

func TestContainingBlockHeightIsReset(t *testing.T) {
	cb := layout.Viewport(800, 600)
	cb.Content.Y = 3
	box := layout.Layout(blockNode(nil), cb)
	assert.Equal(t, float32(3), box.Content.Y, "viewport height must not shift the root")
}

func TestSingleDivScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendercore.layout")
	defer teardown()
	//
	sn := styleMarkup(t, `<div class="c"></div>`,
		`div{display:block;width:400px;} .c{background:#ffffff;}`)
	box := layout.Layout(sn, layout.Viewport(800, 600))
	assert.Equal(t, layout.BlockNode, box.Type)
	assert.Equal(t, 0, box.ChildCount())
	assert.Equal(t, float32(400), box.Content.Width)
	assert.Equal(t, float32(0), box.Margin.Left)
	assert.Equal(t, float32(400), box.Margin.Right, "underflow goes into the right margin")
	assert.Equal(t, layout.Rect{X: 0, Y: 0, Width: 400, Height: 0}, box.Content)
}

func TestNestedPaddedBlocks(t *testing.T) {
	markup := `<div><div><div><div><div><div><div></div></div></div></div></div></div></div>`
	sn := styleMarkup(t, markup, `div { display: block; padding: 12px; }`)
	root := layout.Layout(sn, layout.Viewport(800, 600))
	box, y, w := root, float32(0), float32(800)
	levels := 0
	for {
		levels++
		assert.Equal(t, y+12, box.Content.Y, "level %d", levels)
		assert.Equal(t, w-24, box.Content.Width, "level %d", levels)
		y, w = box.Content.Y, box.Content.Width
		children := box.ChildBoxes()
		if len(children) == 0 {
			break
		}
		require.Len(t, children, 1)
		box = children[0]
	}
	assert.Equal(t, 7, levels)
	assert.Equal(t, float32(6*24), root.Content.Height)
	assert.Equal(t, float32(7*24), root.MarginBox().Height)
	t.Logf("\n%s", layout.Dump(root))
}

func TestAnonymousBlocksGroupInlineRuns(t *testing.T) {
	sn := styleMarkup(t,
		`<div><span>a</span><em>b</em><p></p><span>c</span><i class="hidden">x</i></div>`,
		`div, p { display: block; } .hidden { display: none; }`)
	root := layout.BuildBoxTree(sn)
	children := root.ChildBoxes()
	require.Len(t, children, 3)
	assert.Equal(t, layout.AnonymousBlock, children[0].Type)
	assert.Equal(t, 2, children[0].ChildCount())
	assert.Equal(t, layout.BlockNode, children[1].Type)
	assert.Equal(t, layout.AnonymousBlock, children[2].Type)
	assert.Equal(t, 1, children[2].ChildCount(), "display: none is pruned")
	span := children[0].ChildBoxes()[0]
	assert.Equal(t, layout.InlineNode, span.Type)
	assert.Equal(t, 1, span.ChildCount(), "inline boxes host their inline children")
	assert.Equal(t, layout.InlineNode, span.ChildBoxes()[0].Type)
}

func TestDumpShowsDisplayModes(t *testing.T) {
	sn := styleMarkup(t, `<div><span>a</span><p></p></div>`, `div, p { display: block; }`)
	out := layout.Dump(layout.BuildBoxTree(sn))
	t.Logf("\n%s", out)
	assert.Contains(t, out, css.BlockMode.Symbol()+" [block <div>")
	assert.Contains(t, out, css.InlineMode.Symbol()+" [inline <span>")
	assert.Contains(t, out, "[anonymous]")
}

func TestInlineAndAnonymousBoxesHaveNoGeometry(t *testing.T) {
	sn := styleMarkup(t, `<div><span>a</span></div>`, `div { display: block; padding: 3px; }`)
	root := layout.Layout(sn, layout.Viewport(100, 100))
	anon := root.ChildBoxes()[0]
	assert.Equal(t, layout.Dimensions{}, anon.Dimensions)
	assert.Equal(t, float32(0), root.Content.Height)
}

func TestInlineRoot(t *testing.T) {
	sn := styleMarkup(t, `<span><p></p>text</span>`, `p { display: block; }`)
	root := layout.Layout(sn, layout.Viewport(100, 100))
	assert.Equal(t, layout.InlineNode, root.Type)
	children := root.ChildBoxes()
	require.Len(t, children, 2)
	assert.Equal(t, layout.BlockNode, children[0].Type)
	assert.Equal(t, layout.InlineNode, children[1].Type)
}

func TestPreconditionViolations(t *testing.T) {
	sn := styleMarkup(t, `<div></div>`, `div { display: none; }`)
	assert.Panics(t, func() {
		layout.Layout(sn, layout.Viewport(100, 100))
	}, "root with display: none")
	//
	sn = styleMarkup(t, `<div><b></b></div>`, `div { display: block; }`)
	root := layout.BuildBoxTree(sn)
	anon := root.ChildBoxes()[0]
	require.Equal(t, layout.AnonymousBlock, anon.Type)
	assert.Panics(t, func() { anon.StyleNode() })
	assert.Same(t, sn, root.StyleNode())
}

func TestBoxGeometryHelpers(t *testing.T) {
	d := layout.Dimensions{
		Content: layout.Rect{X: 10, Y: 20, Width: 100, Height: 50},
		Padding: layout.EdgeSizes{Left: 1, Right: 2, Top: 3, Bottom: 4},
		Border:  layout.EdgeSizes{Left: 1, Right: 1, Top: 1, Bottom: 1},
		Margin:  layout.EdgeSizes{Left: 5, Right: 5, Top: 0, Bottom: 10},
	}
	assert.Equal(t, layout.Rect{X: 9, Y: 17, Width: 103, Height: 57}, d.PaddingBox())
	assert.Equal(t, layout.Rect{X: 8, Y: 16, Width: 105, Height: 59}, d.BorderBox())
	assert.Equal(t, layout.Rect{X: 3, Y: 16, Width: 115, Height: 69}, d.MarginBox())
}
