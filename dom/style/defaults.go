package style

import (
	"strings"
	"sync"
)

// The engine knows nothing about HTML semantics: without any style
// rules every element lays out as `display: inline`. Hosts rendering real
// documents will usually prepend the user-agent stylesheet returned by
// UserAgentCSS to the author stylesheets.

var blockLevelElements = []string{
	"html", "body", "address", "article", "aside", "blockquote", "dd", "div",
	"dl", "dt", "fieldset", "figcaption", "figure", "footer", "form",
	"h1", "h2", "h3", "h4", "h5", "h6", "header", "hr", "li", "main",
	"nav", "ol", "p", "pre", "section", "table", "ul",
}

var hiddenElements = []string{
	"head", "link", "meta", "script", "style", "template", "title",
}

var uaCSS struct {
	once sync.Once
	src  string
}

// UserAgentCSS returns the source of the default user-agent stylesheet.
// It sets `display: block` for block-level HTML elements and hides
// elements of the document head.
func UserAgentCSS() string {
	uaCSS.once.Do(func() {
		var b strings.Builder
		b.WriteString(strings.Join(blockLevelElements, ", "))
		b.WriteString(" { display: block; }\n")
		b.WriteString(strings.Join(hiddenElements, ", "))
		b.WriteString(" { display: none; }\n")
		uaCSS.src = b.String()
		tracer().Debugf("user-agent stylesheet has %d block-level and %d hidden elements",
			len(blockLevelElements), len(hiddenElements))
	})
	return uaCSS.src
}
