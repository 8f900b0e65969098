/*
Package css interprets specified CSS values for the layout engine.

CSS properties are plentyful and some of them are complicated.
This package shields clients from the handling of raw property values
for the few properties block layout cares about: `display`, lengths which
may be `auto`, and the four edges of margins, borders and paddings with
their shorthand fallbacks.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

// see
// https://developer.mozilla.org/en-US/docs/Web/CSS/Reference#dom-css_cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rendercore.layout'.
func tracer() tracing.Trace {
	return tracing.Select("rendercore.layout")
}
