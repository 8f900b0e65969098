package css

import (
	"strconv"

	"github.com/npillmayer/rendercore/dom/style"
)

const (
	dimenNone     uint32 = 0
	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	kindMask      uint32 = 0x000f
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	px    float32
	flags uint32
}

/*
type DimenT
	= Auto
	| JustDimen px
*/

// Auto creates the dimension `auto`.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// JustDimen creates a CSS dimension with a fixed value of x pixels.
func JustDimen(x float32) DimenT {
	return DimenT{px: x, flags: dimenAbsolute}
}

// DimenOf interprets a specified value as a dimension. An absent value and
// the keyword `auto` are Auto; every other value is a fixed dimension of
// v.ToPx() pixels.
func DimenOf(v style.Value) DimenT {
	if v.IsEmpty() || v == style.Auto {
		return Auto()
	}
	return JustDimen(v.ToPx())
}

// IsAuto is true for dimension `auto`.
func (d DimenT) IsAuto() bool {
	return d.flags&kindMask == dimenAuto
}

// Px returns the fixed value of a dimension, or 0 for `auto`.
func (d DimenT) Px() float32 {
	if d.flags&dimenAbsolute > 0 {
		return d.px
	}
	return 0
}

func (d DimenT) String() string {
	var px float32
	switch m := d.Match(); m {
	case m.IsKind(Auto()):
		return "auto"
	case m.Just(&px):
		return strconv.FormatFloat(float64(px), 'f', -1, 32) + "px"
	}
	return "none"
}

// ---------------------------------------------------------------------------

// Match starts a match expression on a dimension:
//
//     switch m := d.Match(); m {
//     case m.Just(&px):
//         …
//     case m.IsKind(css.Auto()):
//         …
//     }
//
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is a helper type for matching dimensions.
type Matcher struct {
	dimen DimenT
}

// IsKind matches if the dimension is of the same kind as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	if m.dimen.flags&kindMask == d.flags&kindMask {
		return m
	}
	return nil
}

// Just matches a fixed dimension and extracts its value into px.
func (m *Matcher) Just(px *float32) *Matcher {
	if m.dimen.flags&dimenAbsolute > 0 {
		if px != nil {
			*px = m.dimen.px
		}
		return m
	}
	return nil
}
