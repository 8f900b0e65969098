package dom

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// IsElement is a predicate for element nodes.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// TagName returns the tag name of an element, or "" for non-elements.
func TagName(n *html.Node) string {
	if !IsElement(n) {
		return ""
	}
	return n.Data
}

// Attr returns the value of an attribute of an element, together with
// an indicator wether the attribute is present.
func Attr(n *html.Node, key string) (string, bool) {
	if !IsElement(n) {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// ID returns the `id` attribute of an element.
func ID(n *html.Node) (string, bool) {
	return Attr(n, "id")
}

// Classes returns the whitespace separated entries of the `class` attribute
// of an element.
func Classes(n *html.Node) []string {
	c, ok := Attr(n, "class")
	if !ok {
		return nil
	}
	return strings.Fields(c)
}

// HasClass checks if an element carries a given class.
func HasClass(n *html.Node, class string) bool {
	for _, c := range Classes(n) {
		if c == class {
			return true
		}
	}
	return false
}

// FindElement searches depth-first for the first element with a given tag.
func FindElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.Type == html.ElementNode && h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := FindElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}

// ErrNoRootElement is returned if a markup fragment does not contain exactly
// one top-level element.
var ErrNoRootElement = errors.New("markup fragment must have exactly one root element")

// ParseFragment parses a fragment of HTML markup in the context of a <body>
// element and returns its single top-level element. Whitespace text around
// the root element is ignored.
//
//     root, err := dom.ParseFragment(`<div class="c"><p>Hello</p></div>`)
//
func ParseFragment(markup string) (*html.Node, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), body)
	if err != nil {
		return nil, fmt.Errorf("dom: cannot parse fragment: %w", err)
	}
	var root *html.Node
	for _, n := range nodes {
		switch {
		case n.Type == html.TextNode && strings.TrimSpace(n.Data) == "":
			continue
		case n.Type == html.CommentNode:
			continue
		case n.Type == html.ElementNode && root == nil:
			root = n
		default:
			tracer().Debugf("fragment has extra top-level node %q", n.Data)
			return nil, ErrNoRootElement
		}
	}
	if root == nil {
		return nil, ErrNoRootElement
	}
	return root, nil
}

// Parse parses a complete HTML document and returns its <html> element.
func Parse(markup string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("dom: cannot parse document: %w", err)
	}
	root := FindElement(atom.Html, doc)
	if root == nil {
		return nil, ErrNoRootElement
	}
	return root, nil
}
