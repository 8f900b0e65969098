/*
Package layout computes the geometry of boxes for a styled tree.

Layout happens in two phases. First a box tree is built from the styled
tree: nodes with `display: none` are pruned, block nodes become block boxes
and runs of inline siblings are wrapped into anonymous block boxes. Then
block boxes are laid out recursively in a block formatting context.
Widths and positions flow top-down from the containing block, heights flow
bottom-up from the children. Block children stack vertically; margins do
not collapse.

Only block boxes receive geometry. Inline boxes and anonymous blocks keep
zero dimensions, as there is no inline formatting (line breaking, text
shaping).

    root := cssom.Style(doc, sheet)
    boxes := layout.Layout(root, layout.Viewport(800, 600))

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rendercore.layout'.
func tracer() tracing.Trace {
	return tracing.Select("rendercore.layout")
}
