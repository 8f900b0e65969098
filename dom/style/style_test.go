package style

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueToPx(t *testing.T) {
	assert.Equal(t, float32(12), Pixels(12).ToPx())
	assert.Equal(t, float32(0), Auto.ToPx(), "keywords convert to 0px")
	assert.Equal(t, float32(0), ColorOf(RGB(1, 2, 3)).ToPx(), "colors convert to 0px")
	assert.Equal(t, float32(0), NullValue.ToPx())
}

func TestValueComparable(t *testing.T) {
	assert.True(t, Keyword("auto") == Auto)
	assert.False(t, Pixels(0) == Auto)
	assert.True(t, ColorOf(RGB(0xff, 0, 0)) == ColorOf(Color{0xff, 0, 0, 0xff}))
	assert.True(t, Auto.IsKeyword("auto"))
	assert.False(t, Pixels(3).IsKeyword("auto"))
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "12px", Pixels(12).String())
	assert.Equal(t, "1.5px", Pixels(1.5).String())
	assert.Equal(t, "#ff8000", ColorOf(RGB(0xff, 0x80, 0)).String())
	assert.Equal(t, "block", Keyword("block").String())
	assert.Equal(t, "", NullValue.String())
}

func TestColor(t *testing.T) {
	c := RGB(0x11, 0x22, 0x33)
	assert.Equal(t, uint32(0xff112233), c.ARGB())
	var _ color.Color = c
	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(0x1111), r)
	assert.Equal(t, uint32(0x2222), g)
	assert.Equal(t, uint32(0x3333), b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestPropertyMapLookup(t *testing.T) {
	pm := NewPropertyMap()
	pm.Set("margin", Pixels(5))
	pm.Set("margin-left", Auto)
	zero := Pixels(0)
	assert.Equal(t, Auto, pm.Lookup("margin-left", "margin", zero), "explicit side wins")
	assert.Equal(t, Pixels(5), pm.Lookup("margin-top", "margin", zero), "falls back to shorthand")
	assert.Equal(t, zero, pm.Lookup("padding-top", "padding", zero), "falls back to default")

	var empty *PropertyMap
	assert.Equal(t, 0, empty.Size())
	_, ok := empty.Property("width")
	assert.False(t, ok)
	assert.Equal(t, zero, empty.Lookup("width", "width", zero))
}

func TestPropertyMapSetAdd(t *testing.T) {
	pm := NewPropertyMap()
	pm.Set("width", Pixels(10))
	pm.Set("width", Pixels(20))
	pm.Add("width", Pixels(30))
	pm.Add("height", Pixels(40))
	v, _ := pm.Property("width")
	assert.Equal(t, Pixels(20), v, "last write wins, Add does not overwrite")
	assert.Equal(t, 2, pm.Size())
	assert.Equal(t, "{height:40px; width:20px;}", pm.String())
}

func TestGroupNames(t *testing.T) {
	assert.Equal(t, PGMargins, GroupNameFromPropertyKey("margin-top"))
	assert.Equal(t, PGMargins, GroupNameFromPropertyKey("margin"))
	assert.Equal(t, PGBorder, GroupNameFromPropertyKey("border-left-width"))
	assert.Equal(t, PGBackground, GroupNameFromPropertyKey("background"))
	assert.Equal(t, PGDimension, GroupNameFromPropertyKey("width"))
	assert.Equal(t, PGX, GroupNameFromPropertyKey("funny-margin"))
}

func TestUserAgentCSS(t *testing.T) {
	src := UserAgentCSS()
	assert.True(t, strings.Contains(src, "div"))
	assert.True(t, strings.Contains(src, "display: none;"))
	assert.Equal(t, src, UserAgentCSS())
}
