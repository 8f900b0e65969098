/*
Package douceuradapter imports stylesheets parsed by douceur into the
cssom representation.

Package cssparser is strict: it rejects a stylesheet as a whole on the first
construct it does not understand. Real-world stylesheets are full of
at-rules, vendor properties and units the engine does not support.
douceur parses such sheets leniently; this package converts every rule and
declaration the engine understands and reports the rest as (non-fatal)
errors.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/rendercore/dom"
	"github.com/npillmayer/rendercore/dom/style/cssom"
	"github.com/npillmayer/rendercore/dom/style/cssom/cssparser"
	"github.com/npillmayer/schuko/tracing"
	"go.uber.org/multierr"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'rendercore.css'.
func tracer() tracing.Trace {
	return tracing.Select("rendercore.css")
}

// ParseLenient parses CSS source with douceur and converts the result.
// The returned stylesheet is non-nil unless douceur itself fails. All
// rules and declarations which have been dropped are reported in a combined
// error; use multierr.Errors to inspect them one by one.
func ParseLenient(src string) (*cssom.StyleSheet, error) {
	dsheet, err := parser.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("douceur: %w", err)
	}
	return Convert(dsheet)
}

// Convert converts a douceur stylesheet. At-rules are skipped. A rule with
// a selector list the engine cannot parse is dropped completely; a
// declaration with an unsupported value is dropped from its rule.
func Convert(dsheet *css.Stylesheet) (*cssom.StyleSheet, error) {
	sheet := &cssom.StyleSheet{}
	if dsheet == nil {
		return sheet, nil
	}
	var errs error
	for _, drule := range dsheet.Rules {
		if drule.Kind == css.AtRule {
			errs = multierr.Append(errs, fmt.Errorf("at-rule %s not supported", drule.Name))
			continue
		}
		rule, err := convertRule(drule)
		errs = multierr.Append(errs, err)
		if rule != nil {
			sheet.Rules = append(sheet.Rules, rule)
		}
	}
	if errs != nil {
		tracer().Infof("lenient CSS import dropped %d items", len(multierr.Errors(errs)))
	}
	return sheet, errs
}

func convertRule(drule *css.Rule) (*cssom.Rule, error) {
	selectors, err := cssparser.ParseSelectors(drule.Prelude)
	if err != nil {
		return nil, fmt.Errorf("rule %q dropped: %w", strings.TrimSpace(drule.Prelude), err)
	}
	rule := &cssom.Rule{Selectors: selectors}
	var errs error
	for _, d := range drule.Declarations {
		v, err := cssparser.ParseValue(d.Value)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("declaration %s: %s dropped: %w", d.Property, d.Value, err))
			continue
		}
		rule.Declarations = append(rule.Declarations, cssom.Declaration{
			Name:  strings.ToLower(d.Property),
			Value: v,
		})
	}
	return rule, errs
}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and collects the contents of embedded <style> elements, in document
// order.
func ExtractStyleElements(htmldoc *html.Node) []string {
	var sources []string
	for _, a := range []atom.Atom{atom.Head, atom.Body} {
		sources = append(sources, extractStyles(dom.FindElement(a, htmldoc))...)
	}
	return sources
}

func extractStyles(h *html.Node) []string {
	if h == nil {
		return nil
	}
	var sources []string
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode || ch.DataAtom != atom.Style {
			continue
		}
		var b strings.Builder
		for t := ch.FirstChild; t != nil; t = t.NextSibling {
			if t.Type == html.TextNode {
				b.WriteString(t.Data)
			}
		}
		sources = append(sources, b.String())
	}
	return sources
}
