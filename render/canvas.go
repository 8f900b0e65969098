package render

import (
	"image"
	"image/color"
	"math"

	"github.com/npillmayer/rendercore/layout"
	"golang.org/x/image/draw"
)

// Canvas is a pixel buffer of Width×Height pixels, row-major with origin
// top-left. Pixels are 0xAARRGGBB with alpha always 0xFF.
type Canvas struct {
	Width, Height int
	Pixels        []uint32
}

// At returns the pixel at (x, y), or 0 for coordinates outside the canvas.
func (c *Canvas) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return 0
	}
	return c.Pixels[y*c.Width+x]
}

// Image returns a copy of the canvas as an image, e.g. for encoding it
// as PNG.
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for i, p := range c.Pixels {
		o := 4 * i
		img.Pix[o] = uint8(p >> 16)
		img.Pix[o+1] = uint8(p >> 8)
		img.Pix[o+2] = uint8(p)
		img.Pix[o+3] = uint8(p >> 24)
	}
	return img
}

// Rasterize executes a display list on a new canvas of w×h pixels.
// The canvas starts out opaque black. Every command overwrites the pixels
// its rectangle covers, clipped to the canvas bounds. Colors are drawn
// opaque, whatever their alpha.
func Rasterize(list DisplayList, w, h int) *Canvas {
	if w < 0 || h < 0 {
		panic("render: negative canvas size")
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	for _, cmd := range list {
		switch cmd := cmd.(type) {
		case SolidColor:
			r := pixelRect(cmd.Rect, w, h)
			if r.Empty() {
				continue
			}
			c := cmd.Color
			c.A = 0xff
			draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
		}
	}
	canvas := &Canvas{Width: w, Height: h, Pixels: make([]uint32, w*h)}
	for i := range canvas.Pixels {
		o := 4 * i
		canvas.Pixels[i] = 0xff000000 |
			uint32(img.Pix[o])<<16 | uint32(img.Pix[o+1])<<8 | uint32(img.Pix[o+2])
	}
	tracer().Debugf("rasterized %d commands onto %dx%d canvas", len(list), w, h)
	return canvas
}

// pixelRect converts a layout rectangle into pixel coordinates clipped to a
// w×h canvas, rounding the edges to the nearest pixel. Edges are clamped
// before conversion, as float coordinates may exceed the range of int.
// Rectangles with negative extent stay non-canonical and therefore empty.
func pixelRect(r layout.Rect, w, h int) image.Rectangle {
	clamp := func(x float32, max int) int {
		v := math.Round(float64(x))
		if math.IsNaN(v) || v < 0 {
			return 0
		}
		return int(math.Min(v, float64(max)))
	}
	return image.Rectangle{
		Min: image.Pt(clamp(r.X, w), clamp(r.Y, h)),
		Max: image.Pt(clamp(r.X+r.Width, w), clamp(r.Y+r.Height, h)),
	}
}

// Paint builds the display list for a box tree and rasterizes it onto a
// canvas of w×h pixels.
func Paint(root *layout.Box, w, h int) *Canvas {
	return Rasterize(BuildDisplayList(root), w, h)
}
