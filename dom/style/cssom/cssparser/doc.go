/*
Package cssparser parses CSS source into a cssom.StyleSheet.

The grammar is a small subset of CSS:

    stylesheet  := rule*
    rule        := selectors '{' declaration* '}'
    selectors   := chain (',' chain)*
    chain       := simple ( ('>' | '+' | '~' | <whitespace>) simple )*
    simple      := ( ident | '#' name | '.' ident | '*' )+
    declaration := ident ':' value (';' | before '}')
    value       := number | number 'px' | '#' hex6 | ident

Lexical scanning is done by github.com/tdewolff/parse/v2/css. Whitespace
and comments are dropped from the token stream, but every token remembers
if it has been preceded by whitespace; this separates descendant
combinators (`div .c`) from compound selectors (`div.c`).

The parser does not recover from errors: the first malformed construct
aborts parsing with a *SyntaxError and no stylesheet is returned.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssparser

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'rendercore.css'.
func tracer() tracing.Trace {
	return tracing.Select("rendercore.css")
}
