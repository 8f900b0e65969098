package cssparser

import (
	"fmt"
	"strings"
)

// SyntaxError is returned for malformed CSS source. Parsing stops at the
// first syntax error.
type SyntaxError struct {
	Offset int    // byte offset of the offending token
	Line   int    // 1-based line of the offending token
	Column int    // 1-based column (in bytes) of the offending token
	Token  string // source text of the offending token, empty at end of input
	Msg    string
}

func (e *SyntaxError) Error() string {
	near := "end of input"
	if e.Token != "" {
		near = fmt.Sprintf("%q", e.Token)
	}
	return fmt.Sprintf("css syntax error at %d:%d near %s: %s", e.Line, e.Column, near, e.Msg)
}

func newSyntaxError(src string, tok token, msg string) *SyntaxError {
	off := tok.offset
	if off > len(src) {
		off = len(src)
	}
	line := strings.Count(src[:off], "\n") + 1
	col := off - strings.LastIndex(src[:off], "\n")
	return &SyntaxError{
		Offset: off,
		Line:   line,
		Column: col,
		Token:  tok.text,
		Msg:    msg,
	}
}
