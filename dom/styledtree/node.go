package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"fmt"

	"github.com/npillmayer/rendercore/dom/style"
	"github.com/npillmayer/rendercore/tree"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	htmlNode            *html.Node
	specifiedStyles     *style.PropertyMap
}

// NewNodeForHTMLNode creates a new styled node linked to an HTML node.
func NewNodeForHTMLNode(h *html.Node, styles *style.PropertyMap) *StyNode {
	sn := &StyNode{}
	sn.Payload = sn // Payload will always reference the node itself
	sn.htmlNode = h
	if styles == nil {
		styles = style.NewPropertyMap()
	}
	sn.specifiedStyles = styles
	return sn
}

// HTMLNode gets the HTML DOM node corresponding to this styled node.
func (sn *StyNode) HTMLNode() *html.Node {
	return sn.htmlNode
}

// Styles returns the specified property values of this node.
func (sn *StyNode) Styles() *style.PropertyMap {
	return sn.specifiedStyles
}

// AddStyledChild appends a child node.
func (sn *StyNode) AddStyledChild(ch *StyNode) *StyNode {
	sn.AddChild(&ch.Node)
	return sn
}

// StyledChildren returns the children of this node in document order.
func (sn *StyNode) StyledChildren() []*StyNode {
	children := sn.Children()
	r := make([]*StyNode, len(children))
	for i, ch := range children {
		r[i] = ch.Payload
	}
	return r
}

// Value returns the specified value for a property, if present.
func (sn *StyNode) Value(key string) (style.Value, bool) {
	return sn.specifiedStyles.Property(key)
}

// Lookup returns the specified value of a property, falling back first to
// the value of fallbackKey, then to def.
func (sn *StyNode) Lookup(key, fallbackKey string, def style.Value) style.Value {
	return sn.specifiedStyles.Lookup(key, fallbackKey, def)
}

func (sn *StyNode) String() string {
	return fmt.Sprintf("%s%s", nodeLabel(sn.htmlNode), sn.specifiedStyles)
}

func nodeLabel(h *html.Node) string {
	if h == nil {
		return "<nil>"
	}
	switch h.Type {
	case html.ElementNode:
		return "<" + h.Data + ">"
	case html.TextNode:
		if s, cut := Truncate(h.Data, 10); cut {
			return fmt.Sprintf("%q…", s)
		}
		return fmt.Sprintf("%q", h.Data)
	case html.DocumentNode:
		return "#document"
	case html.CommentNode:
		return "#comment"
	}
	return "#node"
}

// Truncate shortens s to at most n runes. It reports whether s has been cut.
func Truncate(s string, n int) (string, bool) {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos], true
		}
		i++
	}
	return s, false
}

// Dump returns an indented textual representation of a styled (sub-)tree.
func Dump(sn *StyNode) string {
	p := tp.New()
	dump(p, sn)
	tracer().Debugf("dumped styled tree of %d nodes", sn.Size())
	return p.String()
}

func dump(p tp.Tree, sn *StyNode) {
	if sn.ChildCount() == 0 {
		p.AddNode(sn.String())
		return
	}
	branch := p.AddBranch(sn.String())
	for _, ch := range sn.StyledChildren() {
		dump(branch, ch)
	}
}
