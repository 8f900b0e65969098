package cssparser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/rendercore/dom/style"
	"github.com/npillmayer/rendercore/dom/style/cssom"
)

// Parse parses CSS source into a stylesheet. Rules appear in the stylesheet
// in source order. Selectors of a rule are sorted descending by
// specificity.
//
// On malformed input Parse returns a *SyntaxError and no stylesheet.
func Parse(src string) (*cssom.StyleSheet, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	sheet := &cssom.StyleSheet{}
	for !p.eof() {
		rule, err := p.parseRule()
		if err != nil {
			tracer().Errorf("cannot parse stylesheet: %v", err)
			return nil, err
		}
		sheet.Rules = append(sheet.Rules, rule)
	}
	tracer().Debugf("parsed stylesheet with %d rules", len(sheet.Rules))
	return sheet, nil
}

// ParseSelectors parses a comma separated list of selectors, reaching to
// the end of src, e.g. `h1, div > p.note`.
func ParseSelectors(src string) ([]cssom.Selector, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	return p.parseSelectors(tEOF)
}

// ParseValue parses a single property value, e.g. `12px` or `#ff0000`.
func ParseValue(src string) (style.Value, error) {
	p, err := newParser(src)
	if err != nil {
		return style.NullValue, err
	}
	v, err := p.parseValue()
	if err != nil {
		return style.NullValue, err
	}
	if !p.eof() {
		return style.NullValue, p.errorf(p.cur(), "unexpected token after value")
	}
	return v, nil
}

// --- Parser ----------------------------------------------------------------

type parser struct {
	src    string
	tokens []token
	pos    int
}

func newParser(src string) (*parser, error) {
	tokens, err := scan(src)
	if err != nil {
		return nil, err
	}
	return &parser{src: src, tokens: tokens}, nil
}

func (p *parser) eof() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) cur() token {
	if p.eof() {
		return token{kind: tEOF, offset: len(p.src)}
	}
	return p.tokens[p.pos]
}

func (p *parser) consume() token {
	t := p.cur()
	if !p.eof() {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind) (token, error) {
	t := p.consume()
	if t.kind != kind {
		return t, p.errorf(t, "expected %s, found %s", kind, t.kind)
	}
	return t, nil
}

func (p *parser) errorf(t token, format string, args ...interface{}) error {
	return newSyntaxError(p.src, t, fmt.Sprintf(format, args...))
}

// rule := selectors '{' declaration* '}'
func (p *parser) parseRule() (*cssom.Rule, error) {
	selectors, err := p.parseSelectors(tLBrace)
	if err != nil {
		return nil, err
	}
	decls, err := p.parseDeclarations()
	if err != nil {
		return nil, err
	}
	return &cssom.Rule{Selectors: selectors, Declarations: decls}, nil
}

// parseSelectors parses selector chains separated by commas, up to (not
// including) a terminating token.
func (p *parser) parseSelectors(terminator tokenKind) ([]cssom.Selector, error) {
	var selectors []cssom.Selector
	for {
		sel, err := p.parseSelectorChain()
		if err != nil {
			return nil, err
		}
		selectors = append(selectors, sel)
		t := p.cur()
		switch {
		case t.kind == tComma:
			p.consume()
			continue
		case t.kind == terminator:
		default:
			return nil, p.errorf(t, "unexpected %s in selector list", t.kind)
		}
		break
	}
	cssom.SortBySpecificity(selectors)
	return selectors, nil
}

// chain := simple ( combinator simple )*
func (p *parser) parseSelectorChain() (cssom.Selector, error) {
	simple, err := p.parseSimpleSelector()
	if err != nil {
		return nil, err
	}
	var sel cssom.Selector = simple
	for !p.eof() {
		t := p.cur()
		var comb cssom.Combinator
		switch {
		case t.kind == tComma || t.kind == tLBrace:
			return sel, nil
		case t.isDelim(">"):
			comb = cssom.Child
			p.consume()
		case t.isDelim("+"):
			comb = cssom.AdjacentSibling
			p.consume()
		case t.isDelim("~"):
			comb = cssom.GeneralSibling
			p.consume()
		case startsSimpleSelector(t) && t.space:
			comb = cssom.Descendant
		default:
			return nil, p.errorf(t, "unexpected %s in selector", t.kind)
		}
		next, err := p.parseSimpleSelector()
		if err != nil {
			return nil, err
		}
		sel = cssom.Combine(comb, sel, next)
	}
	return sel, nil
}

func startsSimpleSelector(t token) bool {
	return t.kind == tIdent || t.kind == tHash || t.isDelim(".") || t.isDelim("*")
}

// simple := ( ident | '#' name | '.' ident | '*' )+
//
// Components of a simple selector must not be separated by whitespace.
func (p *parser) parseSimpleSelector() (cssom.SimpleSelector, error) {
	var s cssom.SimpleSelector
	first := p.cur()
	if !startsSimpleSelector(first) {
		return s, p.errorf(first, "expected selector, found %s", first.kind)
	}
	for n := 0; ; n++ {
		t := p.cur()
		if !startsSimpleSelector(t) || (n > 0 && t.space) {
			break
		}
		p.consume()
		switch {
		case t.kind == tIdent:
			if s.Tag != "" {
				return s, p.errorf(t, "more than one type selector")
			}
			s.Tag = strings.ToLower(t.value)
		case t.kind == tHash:
			if s.ID != "" {
				return s, p.errorf(t, "more than one id selector")
			}
			s.ID = t.value
		case t.isDelim("."):
			class := p.consume()
			if class.kind != tIdent || class.space {
				return s, p.errorf(class, "expected class name after '.'")
			}
			s.Classes = append(s.Classes, class.value)
		case t.isDelim("*"):
			// universal selector adds no constraint
		}
	}
	return s, nil
}

// parseDeclarations parses '{' declaration* '}'. The ';' after the last
// declaration is optional.
func (p *parser) parseDeclarations() ([]cssom.Declaration, error) {
	if _, err := p.expect(tLBrace); err != nil {
		return nil, err
	}
	var decls []cssom.Declaration
	for p.cur().kind != tRBrace {
		d, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
		t := p.cur()
		if t.kind == tSemicolon {
			p.consume()
		} else if t.kind != tRBrace {
			return nil, p.errorf(t, "expected ';' or '}' after declaration, found %s", t.kind)
		}
	}
	p.consume() // '}'
	return decls, nil
}

// declaration := ident ':' value
func (p *parser) parseDeclaration() (cssom.Declaration, error) {
	name, err := p.expect(tIdent)
	if err != nil {
		return cssom.Declaration{}, p.errorf(name, "expected property name, found %s", name.kind)
	}
	if _, err := p.expect(tColon); err != nil {
		return cssom.Declaration{}, err
	}
	v, err := p.parseValue()
	if err != nil {
		return cssom.Declaration{}, err
	}
	return cssom.Declaration{Name: strings.ToLower(name.value), Value: v}, nil
}

// value := number | number 'px' | '#' hex6 | ident
func (p *parser) parseValue() (style.Value, error) {
	t := p.consume()
	switch t.kind {
	case tNumber:
		return style.Pixels(t.num), nil
	case tDimension:
		if !strings.EqualFold(t.value, "px") {
			return style.NullValue, p.errorf(t, "unknown unit %q", t.value)
		}
		return style.Pixels(t.num), nil
	case tHash:
		c, ok := hexColor(t.value)
		if !ok {
			return style.NullValue, p.errorf(t, "color must have 6 hex digits")
		}
		return style.ColorOf(c), nil
	case tIdent:
		return style.Keyword(strings.ToLower(t.value)), nil
	}
	return style.NullValue, p.errorf(t, "unsupported value %s", t.kind)
}

func hexColor(h string) (style.Color, bool) {
	if len(h) != 6 {
		return style.Color{}, false
	}
	var rgb [3]uint8
	for i := range rgb {
		x, err := strconv.ParseUint(h[2*i:2*i+2], 16, 8)
		if err != nil {
			return style.Color{}, false
		}
		rgb[i] = uint8(x)
	}
	return style.RGB(rgb[0], rgb[1], rgb[2]), true
}
