/*
Package styledtree is a straightforward implementation of a styled document tree.

Overview

A styled tree mirrors an HTML parse tree node for node. Every styled node
references the HTML node it has been created for (the DOM is never copied)
and holds the specified values of the CSS properties which apply to it.
Styled trees are created by the cascade (see package cssom) and are
read-only afterwards.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rendercore.dom'.
func tracer() tracing.Trace {
	return tracing.Select("rendercore.dom")
}
