package cssom

import (
	"github.com/npillmayer/rendercore/dom"
	"golang.org/x/net/html"
)

// Scope is the matching context of an element: the element itself, the
// scope of its parent element and the scope of its immediately preceding
// element sibling. Scopes form a persistent chain which the cascade extends
// while descending the document tree; they are never modified once created.
//
// The parent scope is nil for the root of the styled (sub-)tree; the
// sibling scope is nil for the first element child.
type Scope struct {
	node   *html.Node
	parent *Scope
	prev   *Scope
}

// NewScope creates a matching context for an element.
func NewScope(node *html.Node, parent, prev *Scope) *Scope {
	return &Scope{node: node, parent: parent, prev: prev}
}

// ScopeFor derives the matching context of an element from the links of the
// HTML parse tree. Only element ancestors and element siblings are included.
func ScopeFor(node *html.Node) *Scope {
	if !dom.IsElement(node) {
		return nil
	}
	var parent, prev *Scope
	if dom.IsElement(node.Parent) {
		parent = ScopeFor(node.Parent)
	}
	for sib := node.PrevSibling; sib != nil; sib = sib.PrevSibling {
		if dom.IsElement(sib) {
			prev = ScopeFor(sib)
			break
		}
	}
	return NewScope(node, parent, prev)
}

// Node returns the element of a scope.
func (sc *Scope) Node() *html.Node {
	return sc.node
}

// Parent returns the scope of the parent element.
func (sc *Scope) Parent() *Scope {
	return sc.parent
}

// PrevSibling returns the scope of the preceding element sibling.
func (sc *Scope) PrevSibling() *Scope {
	return sc.prev
}

// Matches checks if a selector matches the element of a scope.
func Matches(sel Selector, sc *Scope) bool {
	if sc == nil || !dom.IsElement(sc.node) {
		return false
	}
	switch s := sel.(type) {
	case SimpleSelector:
		return MatchesSimple(s, sc.node)
	case Combination:
		if _, ok := s.Right.(Combination); ok {
			return Matches(Combine(s.Combinator, s.Left, s.Right), sc)
		}
		if !Matches(s.Right, sc) {
			return false
		}
		switch s.Combinator {
		case Descendant:
			for anc := sc.parent; anc != nil; anc = anc.parent {
				if Matches(s.Left, anc) {
					return true
				}
			}
		case Child:
			return Matches(s.Left, sc.parent)
		case AdjacentSibling:
			return Matches(s.Left, sc.prev)
		case GeneralSibling:
			for sib := sc.prev; sib != nil; sib = sib.prev {
				if Matches(s.Left, sib) {
					return true
				}
			}
		}
	}
	return false
}

// MatchesSimple checks a simple selector against an element, without any
// context. Absent constraints are always satisfied.
func MatchesSimple(s SimpleSelector, el *html.Node) bool {
	if !dom.IsElement(el) {
		return false
	}
	if s.Tag != "" && s.Tag != el.Data {
		return false
	}
	if s.ID != "" {
		if id, ok := dom.ID(el); !ok || id != s.ID {
			return false
		}
	}
	if len(s.Classes) > 0 {
		classes := dom.Classes(el)
		for _, c := range s.Classes {
			if !contains(classes, c) {
				return false
			}
		}
	}
	return true
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
