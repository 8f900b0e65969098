package cssom

import (
	"sort"
	"strings"
)

// Selector is either a SimpleSelector or a Combination of two selectors.
//
//     type Selector
//         = Simple tag id classes
//         | Descendant Selector Selector
//         | Child Selector Selector
//         | AdjacentSibling Selector Selector
//         | GeneralSibling Selector Selector
//
type Selector interface {
	Specificity() Specificity
	String() string
	isSelector()
}

// SimpleSelector matches an element by tag, id and classes. An empty Tag or
// ID does not constrain the match.
type SimpleSelector struct {
	Tag     string
	ID      string
	Classes []string
}

func (SimpleSelector) isSelector() {}

// Specificity is (#ids, #classes, #tags).
func (s SimpleSelector) Specificity() Specificity {
	var sp Specificity
	if s.ID != "" {
		sp[0] = 1
	}
	sp[1] = len(s.Classes)
	if s.Tag != "" {
		sp[2] = 1
	}
	return sp
}

// IsUniversal is true for a selector without any constraints (`*`).
func (s SimpleSelector) IsUniversal() bool {
	return s.Tag == "" && s.ID == "" && len(s.Classes) == 0
}

func (s SimpleSelector) String() string {
	if s.IsUniversal() {
		return "*"
	}
	var b strings.Builder
	b.WriteString(s.Tag)
	if s.ID != "" {
		b.WriteString("#")
		b.WriteString(s.ID)
	}
	for _, c := range s.Classes {
		b.WriteString(".")
		b.WriteString(c)
	}
	return b.String()
}

// Combinator is the relation between the two parts of a Combination.
type Combinator uint8

// Combinators
const (
	Descendant      Combinator = iota // A B
	Child                             // A > B
	AdjacentSibling                   // A + B
	GeneralSibling                    // A ~ B
)

func (c Combinator) String() string {
	switch c {
	case Descendant:
		return " "
	case Child:
		return " > "
	case AdjacentSibling:
		return " + "
	case GeneralSibling:
		return " ~ "
	}
	return " ? "
}

// Combination combines two selectors. Right is matched against the element
// under test, Left against a related element (an ancestor for Descendant and
// Child, a preceding sibling for AdjacentSibling and GeneralSibling).
//
// Chains are left-nested: `a b > c` is
// Combination{Child, Combination{Descendant, a, b}, c}, so Right is always
// a simple selector. Combine keeps to this shape; Matches re-associates
// combinations built by hand with a combination on the right.
type Combination struct {
	Combinator Combinator
	Left       Selector
	Right      Selector
}

func (Combination) isSelector() {}

// Specificity of a combination is the component-wise sum of the
// specificities of its parts.
func (c Combination) Specificity() Specificity {
	return c.Left.Specificity().Add(c.Right.Specificity())
}

func (c Combination) String() string {
	return c.Left.String() + c.Combinator.String() + c.Right.String()
}

// Combine creates a combination of two selectors. If right is itself a
// combination, the result is re-associated to the left:
// Combine(c, a, (b c2 d)) is ((a c b) c2 d).
func Combine(comb Combinator, left, right Selector) Combination {
	if r, ok := right.(Combination); ok {
		return Combination{Combinator: r.Combinator, Left: Combine(comb, left, r.Left), Right: r.Right}
	}
	return Combination{Combinator: comb, Left: left, Right: right}
}

var _ Selector = SimpleSelector{}
var _ Selector = Combination{}

// --- Specificity -----------------------------------------------------------

// Specificity is the CSS specificity as defined in
// https://www.w3.org/TR/selectors/#specificity-rules
// with the convention Specificity = [A,B,C] = (ids, classes, tags).
type Specificity [3]int

// Less returns true if s < other (strictly), comparing lexicographically.
func (s Specificity) Less(other Specificity) bool {
	return s.Compare(other) < 0
}

// Compare returns -1, 0 or +1 for s < other, s == other and s > other.
func (s Specificity) Compare(other Specificity) int {
	for i := range s {
		if s[i] < other[i] {
			return -1
		}
		if s[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Add returns the component-wise sum of two specificities.
func (s Specificity) Add(other Specificity) Specificity {
	for i, sp := range other {
		s[i] += sp
	}
	return s
}

// SortBySpecificity sorts selectors descending by specificity. Selectors of
// equal specificity keep their relative order.
func SortBySpecificity(selectors []Selector) {
	sort.SliceStable(selectors, func(i, j int) bool {
		return selectors[j].Specificity().Less(selectors[i].Specificity())
	})
}
