package cssparser

import (
	"io"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// tokenKind classifies the tokens the parser is interested in.
type tokenKind uint8

const (
	tEOF tokenKind = iota
	tIdent
	tHash
	tNumber
	tDimension
	tPercentage
	tString
	tColon
	tSemicolon
	tComma
	tLBrace
	tRBrace
	tDelim // one of . > + ~ * and other single characters
	tOther // anything else (at-keywords, functions, brackets, …)
)

func (k tokenKind) String() string {
	switch k {
	case tEOF:
		return "end of input"
	case tIdent:
		return "identifier"
	case tHash:
		return "hash"
	case tNumber:
		return "number"
	case tDimension:
		return "dimension"
	case tPercentage:
		return "percentage"
	case tString:
		return "string"
	case tColon:
		return "':'"
	case tSemicolon:
		return "';'"
	case tComma:
		return "','"
	case tLBrace:
		return "'{'"
	case tRBrace:
		return "'}'"
	case tDelim:
		return "delimiter"
	}
	return "token"
}

type token struct {
	kind   tokenKind
	text   string  // raw source text of the token
	value  string  // identifier, hash name, unit, string content or delimiter
	num    float32 // numeric part of numbers, dimensions, percentages
	space  bool    // token has been preceded by whitespace
	offset int     // byte offset into source
}

func (t token) isDelim(c string) bool {
	return t.kind == tDelim && t.value == c
}

// scan splits CSS source into a token slice. Whitespace and comments are
// dropped.
func scan(src string) ([]token, error) {
	l := css.NewLexer(parse.NewInputString(src))
	var tokens []token
	offset := 0
	space := false
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			if err := l.Err(); err != nil && err != io.EOF {
				return nil, newSyntaxError(src, token{kind: tOther, offset: offset}, err.Error())
			}
			break
		}
		start := offset
		offset += len(data)
		switch tt {
		case css.WhitespaceToken:
			space = true
			continue
		case css.CommentToken:
			continue
		}
		tok := token{text: string(data), space: space, offset: start}
		space = false
		if err := classify(tt, &tok); err != nil {
			return nil, newSyntaxError(src, tok, err.Error())
		}
		tokens = append(tokens, tok)
	}
	tracer().Debugf("css scanner produced %d tokens", len(tokens))
	return tokens, nil
}

func classify(tt css.TokenType, tok *token) error {
	var err error
	switch tt {
	case css.IdentToken:
		tok.kind, tok.value = tIdent, tok.text
	case css.HashToken:
		tok.kind, tok.value = tHash, strings.TrimPrefix(tok.text, "#")
	case css.NumberToken:
		tok.kind = tNumber
		tok.num, err = parseNumber(tok.text)
	case css.DimensionToken:
		tok.kind = tDimension
		var num string
		num, tok.value = splitDimension(tok.text)
		tok.num, err = parseNumber(num)
	case css.PercentageToken:
		tok.kind, tok.value = tPercentage, "%"
		tok.num, err = parseNumber(strings.TrimSuffix(tok.text, "%"))
	case css.StringToken:
		tok.kind = tString
		if len(tok.text) >= 2 {
			tok.value = tok.text[1 : len(tok.text)-1]
		}
	case css.ColonToken:
		tok.kind = tColon
	case css.SemicolonToken:
		tok.kind = tSemicolon
	case css.CommaToken:
		tok.kind = tComma
	case css.LeftBraceToken:
		tok.kind = tLBrace
	case css.RightBraceToken:
		tok.kind = tRBrace
	case css.DelimToken:
		tok.kind, tok.value = tDelim, tok.text
	default:
		tok.kind, tok.value = tOther, tok.text
	}
	return err
}

func parseNumber(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	return float32(f), nil
}

// splitDimension splits a dimension token like `-1.5e2px` into number and
// unit.
func splitDimension(s string) (string, string) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
		i++
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			i = j
			for i < len(s) && isDigit(s[i]) {
				i++
			}
		}
	}
	return s[:i], s[i:]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
