package style

import (
	"fmt"
	"strconv"
)

// ValueKind discriminates the variants of a Value.
type ValueKind uint8

// Variants of CSS values.
const (
	NoValue      ValueKind = iota // zero value, unset
	KeywordValue                  // e.g., `auto`, `block`
	LengthValue                   // e.g., `12px`
	ColorValue                    // e.g., `#cc0000`
)

// Unit is the unit of a length value. Only pixels are supported.
type Unit uint8

// Units for lengths.
const (
	Px Unit = iota
)

func (u Unit) String() string {
	if u == Px {
		return "px"
	}
	return "?"
}

// Color is an RGBA color with 8 bits per channel, not alpha-premultiplied.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// RGBA is part of interface image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	a |= a << 8
	r = uint32(c.R)
	r |= r << 8
	r = r * a / 0xffff
	g = uint32(c.G)
	g |= g << 8
	g = g * a / 0xffff
	b = uint32(c.B)
	b |= b << 8
	b = b * a / 0xffff
	return
}

// ARGB packs a color into a 32-bit 0xAARRGGBB pixel value.
func (c Color) ARGB() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Value is a specified value for a CSS property. It is a tagged union of
//
//     Keyword(string) | Length(number, unit) | Color(r, g, b, a)
//
// Values are small and comparable with ==.
type Value struct {
	kind    ValueKind
	keyword string
	length  float32
	unit    Unit
	color   Color
}

// NullValue is the unset value.
var NullValue = Value{}

// Keyword creates a keyword value, e.g. `auto`.
func Keyword(kw string) Value {
	return Value{kind: KeywordValue, keyword: kw}
}

// Length creates a length value.
func Length(x float32, unit Unit) Value {
	return Value{kind: LengthValue, length: x, unit: unit}
}

// Pixels creates a length value in pixels.
func Pixels(x float32) Value {
	return Length(x, Px)
}

// ColorOf creates a color value.
func ColorOf(c Color) Value {
	return Value{kind: ColorValue, color: c}
}

// Auto is the keyword `auto`.
var Auto = Keyword("auto")

// Kind returns the variant of a value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsEmpty is true for the unset value.
func (v Value) IsEmpty() bool {
	return v.kind == NoValue
}

// IsKeyword checks if v is a given keyword.
func (v Value) IsKeyword(kw string) bool {
	return v.kind == KeywordValue && v.keyword == kw
}

// Keyword returns the keyword of a keyword value.
func (v Value) Keyword() (string, bool) {
	return v.keyword, v.kind == KeywordValue
}

// Length returns magnitude and unit of a length value.
func (v Value) Length() (float32, Unit, bool) {
	return v.length, v.unit, v.kind == LengthValue
}

// Color returns the color of a color value.
func (v Value) Color() (Color, bool) {
	return v.color, v.kind == ColorValue
}

// ToPx extracts the pixel magnitude of a length, or 0 for any other value.
func (v Value) ToPx() float32 {
	if v.kind == LengthValue && v.unit == Px {
		return v.length
	}
	return 0
}

func (v Value) String() string {
	switch v.kind {
	case KeywordValue:
		return v.keyword
	case LengthValue:
		return strconv.FormatFloat(float64(v.length), 'f', -1, 32) + v.unit.String()
	case ColorValue:
		return v.color.String()
	}
	return ""
}
