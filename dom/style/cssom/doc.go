/*
Package cssom provides the CSS object model and the cascade.

Status

This is a small engine. It supports type, class, id and universal
selectors, combined with descendant, child and sibling combinators. It
does not support at-rules, pseudo-classes or `!important`.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. A Stylesheet
is an ordered list of rules; each rule carries a list of selectors and a
list of declarations. Source order of the rules is significant: it breaks
ties between rules of equal specificity.

Function Style performs the cascade. It walks an HTML parse tree and
creates a styled tree (see package styledtree) of identical shape. For
every element, all rules with a matching selector are collected, sorted by
specificity (stable with respect to source order), and their declarations
are applied in this order. Later writes win.

Combinators need context not available from an element alone: ancestors
for descendant/child selectors, preceding siblings for sibling selectors.
The cascade threads this context explicitly while descending the document
tree, in form of a Scope chain.

A good explanation of styling may be found in

   https://hacks.mozilla.org/2017/08/inside-a-super-fast-css-engine-quantum-css-aka-stylo/

Stylesheets are produced from CSS source by package cssparser.
___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'rendercore.css'.
func tracer() tracing.Trace {
	return tracing.Select("rendercore.css")
}
