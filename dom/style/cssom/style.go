package cssom

import (
	"sort"

	"github.com/npillmayer/rendercore/dom"
	"github.com/npillmayer/rendercore/dom/style"
	"github.com/npillmayer/rendercore/dom/styledtree"
	"golang.org/x/net/html"
)

// Style creates a styled tree for an HTML (sub-)tree. The styled tree has
// exactly one node per HTML node, in document order. Element nodes receive
// the specified values of all matching rules; other nodes (text, comments,
// the document node) receive an empty property map.
//
// If root is linked into a larger parse tree, its ancestors and preceding
// siblings take part in matching combinators.
//
// Style is a pure function of its arguments; the HTML tree is not modified.
func Style(root *html.Node, sheet *StyleSheet) *styledtree.StyNode {
	if root == nil {
		return nil
	}
	var parent, prev *Scope
	if sc := ScopeFor(root); sc != nil {
		parent, prev = sc.parent, sc.prev
	}
	sn, _ := styleNode(root, parent, prev, sheet)
	tracer().Debugf("styled tree has %d nodes", sn.Size())
	return sn
}

// styleNode creates the styled node for h and recursively for its children.
// It returns the scope of h if h is an element, to serve as the preceding
// sibling scope for the next element.
func styleNode(h *html.Node, parent, prev *Scope, sheet *StyleSheet) (*styledtree.StyNode, *Scope) {
	var sc *Scope
	var pmap *style.PropertyMap
	if dom.IsElement(h) {
		sc = NewScope(h, parent, prev)
		pmap = SpecifiedValues(sc, sheet)
	} else {
		pmap = style.NewPropertyMap()
	}
	sn := styledtree.NewNodeForHTMLNode(h, pmap)
	childParent := sc
	if sc == nil {
		// non-elements do not take part in matching; their children
		// see the enclosing element as parent
		childParent = parent
	}
	var prevChild *Scope
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		chnode, chscope := styleNode(ch, childParent, prevChild, sheet)
		sn.AddStyledChild(chnode)
		if chscope != nil {
			prevChild = chscope
		}
	}
	return sn, sc
}

// MatchedRule is a rule matching an element, together with the specificity
// of its first matching selector.
type MatchedRule struct {
	Specificity Specificity
	Rule        *Rule
}

// MatchingRules returns all rules of a stylesheet which match the element of
// a scope, in source order. A rule matches via the first of its selectors
// which matches.
func MatchingRules(sc *Scope, sheet *StyleSheet) []MatchedRule {
	if sheet.Empty() {
		return nil
	}
	var matched []MatchedRule
	for _, rule := range sheet.Rules {
		for _, sel := range rule.Selectors {
			if Matches(sel, sc) {
				matched = append(matched, MatchedRule{sel.Specificity(), rule})
				break
			}
		}
	}
	return matched
}

// SpecifiedValues computes the cascaded property values for the element of a
// scope: matching rules are applied in ascending order of specificity, ties
// broken by source order; later declarations overwrite earlier ones.
func SpecifiedValues(sc *Scope, sheet *StyleSheet) *style.PropertyMap {
	pmap := style.NewPropertyMap()
	rules := MatchingRules(sc, sheet)
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Specificity.Less(rules[j].Specificity)
	})
	for _, m := range rules {
		for _, d := range m.Rule.Declarations {
			pmap.Set(d.Name, d.Value)
		}
	}
	if len(rules) > 0 {
		tracer().P("element", sc.node.Data).Debugf("%d matching rules, %d properties",
			len(rules), pmap.Size())
	}
	return pmap
}
