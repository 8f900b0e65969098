package cssom

import (
	"strings"

	"github.com/npillmayer/rendercore/dom/style"
)

// StyleSheet is an ordered list of rules. Insertion order equals source
// order.
type StyleSheet struct {
	Rules []*Rule
}

// Rule is the type stylesheets consist of.
type Rule struct {
	Selectors    []Selector    // sorted descending by specificity
	Declarations []Declaration // in source order
}

// Declaration is a property name together with its specified value.
type Declaration struct {
	Name  string
	Value style.Value
}

// Empty checks if this stylesheet contains any rules.
func (sheet *StyleSheet) Empty() bool {
	return sheet == nil || len(sheet.Rules) == 0
}

// AppendRules appends rules from another stylesheet. Rules of other will
// follow the rules of sheet in source order.
func (sheet *StyleSheet) AppendRules(other *StyleSheet) {
	if other == nil {
		return
	}
	sheet.Rules = append(sheet.Rules, other.Rules...)
}

// String returns the stylesheet in CSS syntax.
func (sheet *StyleSheet) String() string {
	if sheet == nil {
		return ""
	}
	var b strings.Builder
	for _, r := range sheet.Rules {
		b.WriteString(r.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Rule) String() string {
	var b strings.Builder
	for i, sel := range r.Selectors {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(sel.String())
	}
	b.WriteString(" {")
	for _, d := range r.Declarations {
		b.WriteString(" ")
		b.WriteString(d.Name)
		b.WriteString(": ")
		b.WriteString(d.Value.String())
		b.WriteString(";")
	}
	b.WriteString(" }")
	return b.String()
}
