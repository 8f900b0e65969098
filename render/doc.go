/*
Package render paints a laid out box tree.

Painting is split into two steps. BuildDisplayList flattens a box tree into
an ordered list of drawing commands, parents before children. Rasterize
executes a display list on a canvas of 32-bit ARGB pixels. Later commands
overwrite earlier ones; there is no blending.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rendercore.render'.
func tracer() tracing.Trace {
	return tracing.Select("rendercore.render")
}
