/*
Package dom provides read-only helpers for HTML parse trees.

Overview

Documents enter the rendering pipeline as parse trees produced by
golang.org/x/net/html. Styling only ever reads three things from an element:
its tag name, its `id` attribute and its whitespace separated `class`
attribute. This package bundles these accessors, together with small helpers
to obtain a document from markup source.

The DOM is never copied by later stages. Styled nodes reference the
*html.Node they have been created for.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'rendercore.dom'
func tracer() tracing.Trace {
	return tracing.Select("rendercore.dom")
}
