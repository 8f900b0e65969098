package cssom_test

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/rendercore/dom"
	"github.com/npillmayer/rendercore/dom/style/cssom"
	"github.com/npillmayer/rendercore/dom/style/cssom/cssparser"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var matchDoc = `<!DOCTYPE html>
<html><head><title>t</title></head>
<body>
  <div id="main" class="page wide">
    <h1 class="title">Title</h1>
    <p class="first">one</p>
    <!-- comment between siblings -->
    <p>two <span class="em">x</span></p>
    <ul><li>a</li><li class="last">b</li></ul>
  </div>
  <p class="footer">footer</p>
</body></html>`

func parseDoc(t *testing.T, markup string) *html.Node {
	doc, err := html.Parse(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func elements(n *html.Node) []*html.Node {
	var els []*html.Node
	var walk func(*html.Node)
	walk = func(h *html.Node) {
		if dom.IsElement(h) {
			els = append(els, h)
		}
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(n)
	return els
}

func TestMatchesSimple(t *testing.T) {
	root, err := dom.ParseFragment(`<div id="x" class="a b">text</div>`)
	require.NoError(t, err)
	for _, c := range []struct {
		sel  cssom.SimpleSelector
		want bool
	}{
		{cssom.SimpleSelector{}, true},
		{cssom.SimpleSelector{Tag: "div"}, true},
		{cssom.SimpleSelector{Tag: "p"}, false},
		{cssom.SimpleSelector{ID: "x"}, true},
		{cssom.SimpleSelector{ID: "y"}, false},
		{cssom.SimpleSelector{Classes: []string{"b", "a"}}, true},
		{cssom.SimpleSelector{Classes: []string{"a", "c"}}, false},
		{cssom.SimpleSelector{Tag: "div", ID: "x", Classes: []string{"a"}}, true},
	} {
		assert.Equal(t, c.want, cssom.MatchesSimple(c.sel, root), c.sel.String())
	}
	assert.False(t, cssom.MatchesSimple(cssom.SimpleSelector{}, root.FirstChild),
		"text nodes never match")
}

// Selector matching is cross-checked against cascadia.
func TestMatchesAgreesWithCascadia(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendercore.css")
	defer teardown()
	//
	doc := parseDoc(t, matchDoc)
	els := elements(doc)
	require.NotEmpty(t, els)
	for _, src := range []string{
		"p",
		"*",
		"#main",
		".page.wide",
		"div.page",
		"div p",
		"body > p",
		"div > p.first",
		"h1 + p",
		"h1 ~ p",
		"p + p",
		"p ~ p",
		"#main span.em",
		"div li + li",
		"ul > li.last",
		"body div ul li",
		"h1 + span",
		"html > div",
		"div ~ p.footer",
	} {
		sels, err := cssparser.ParseSelectors(src)
		require.NoError(t, err, src)
		require.Len(t, sels, 1)
		oracle := cascadia.MustCompile(src)
		for _, el := range els {
			want := oracle.Match(el)
			got := cssom.Matches(sels[0], cssom.ScopeFor(el))
			assert.Equal(t, want, got, "selector %q on <%s>", src, el.Data)
		}
	}
}

func TestScopeFor(t *testing.T) {
	doc := parseDoc(t, matchDoc)
	main := cascadia.MustCompile("#main").MatchFirst(doc)
	require.NotNil(t, main)
	sc := cssom.ScopeFor(main)
	require.NotNil(t, sc)
	assert.Equal(t, "body", sc.Parent().Node().Data)
	assert.Equal(t, "html", sc.Parent().Parent().Node().Data)
	assert.Nil(t, sc.Parent().Parent().Parent(), "document node is not part of the scope chain")
	assert.Nil(t, sc.PrevSibling())
	//
	second := cascadia.MustCompile("p:not(.first):not(.footer)").MatchFirst(doc)
	require.NotNil(t, second)
	sc = cssom.ScopeFor(second)
	assert.Equal(t, "first", dom.Classes(sc.PrevSibling().Node())[0],
		"comments are skipped when looking for the preceding element")
	assert.Nil(t, cssom.ScopeFor(main.FirstChild), "text nodes have no scope")
}

func TestMatchesNilScope(t *testing.T) {
	assert.False(t, cssom.Matches(cssom.SimpleSelector{}, nil))
}

func TestMatchesRightNestedCombination(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendercore.css")
	defer teardown()
	//
	div, p := cssom.SimpleSelector{Tag: "div"}, cssom.SimpleSelector{Tag: "p"}
	// div (div > p), built by hand with a combination on the right
	sel := cssom.Combination{
		Combinator: cssom.Descendant,
		Left:       div,
		Right:      cssom.Combination{Combinator: cssom.Child, Left: div, Right: p},
	}
	want := cssom.Combination{
		Combinator: cssom.Child,
		Left:       cssom.Combination{Combinator: cssom.Descendant, Left: div, Right: div},
		Right:      p,
	}
	assert.Equal(t, want, cssom.Combine(sel.Combinator, sel.Left, sel.Right))
	assert.Equal(t, want.Specificity(), sel.Specificity())

	shallow, err := dom.ParseFragment(`<div><p></p></div>`)
	require.NoError(t, err)
	assert.False(t, cssom.Matches(sel, cssom.ScopeFor(shallow.FirstChild)),
		"div > p needs another div above the parent")

	deep, err := dom.ParseFragment(`<div><div><p></p></div></div>`)
	require.NoError(t, err)
	pdeep := deep.FirstChild.FirstChild
	assert.True(t, cssom.Matches(sel, cssom.ScopeFor(pdeep)))
	assert.Equal(t, cascadia.MustCompile("div div > p").Match(pdeep),
		cssom.Matches(sel, cssom.ScopeFor(pdeep)))
}
