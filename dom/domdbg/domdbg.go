/*
Package domdbg implements helpers to debug a styled tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/rendercore/dom/style"
	"github.com/npillmayer/rendercore/dom/styledtree"
	"golang.org/x/net/html"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
	PgpgTmpl       *template.Template
}

var defaultGroups = []string{
	style.PGDisplay,
	style.PGDimension,
	style.PGMargins,
	style.PGPadding,
	style.PGBorder,
	style.PGBackground,
}

// ToGraphViz outputs a diagram for a styled tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the styled tree, a Writer, and an optional list of style parameter groups.
// The diagram will include all styles belonging to one of the
// parameter groups.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//     - Display
//     - Dimension
//     - Margins
//     - Padding
//     - Border
//     - Background
//
func ToGraphViz(root *styledtree.StyNode, w io.Writer, styleGroups []string) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.PgpgTmpl = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	g := &graph{w: w, params: &gparams, dict: make(map[*styledtree.StyNode]string, 256)}
	g.nodes(root)
	if g.err != nil {
		return g.err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a styled node and a testing.T, it
// will create a GraphViz image of the styled tree under sn and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If GraphViz is not installed, the test is skipped. If an error occurs,
// t.Error(…) will be set, causing the test to fail.
//
func Dotty(sn *styledtree.StyNode, t *testing.T) {
	dot, err := exec.LookPath("dot")
	if err != nil {
		t.Skip("GraphViz dot not found")
	}
	tmpfile, err := os.CreateTemp(".", "styled.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing styled tree digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(sn, tmpfile, nil); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command(dot, "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing styled tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type graph struct {
	w      io.Writer
	params *graphParamsType
	dict   map[*styledtree.StyNode]string
	err    error
}

type node struct {
	N    *styledtree.StyNode
	Name string
}

// IsText is used by the node template.
func (n node) IsText() bool {
	h := n.N.HTMLNode()
	return h != nil && h.Type == html.TextNode
}

// Label is used by the node template.
func (n node) Label() string {
	h := n.N.HTMLNode()
	switch {
	case h == nil:
		return "?"
	case h.Type == html.ElementNode:
		return h.Data
	case h.Type == html.DocumentNode:
		return "#document"
	case h.Type == html.CommentNode:
		return "#comment"
	}
	return "#text"
}

type propGroup struct {
	ID         string
	Name       string
	Properties []style.KeyValue
}

func (g *graph) exec(tmpl *template.Template, data interface{}) {
	if g.err != nil {
		return
	}
	g.err = tmpl.Execute(g.w, data)
}

func (g *graph) name(sn *styledtree.StyNode) string {
	name := g.dict[sn]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(g.dict)+1)
		g.dict[sn] = name
	}
	return name
}

func (g *graph) nodes(sn *styledtree.StyNode) {
	g.exec(g.params.NodeTmpl, node{sn, g.name(sn)})
	g.styles(sn)
	for _, ch := range sn.StyledChildren() {
		g.nodes(ch)
		g.exec(g.params.EdgeTmpl, edge{node{sn, g.name(sn)}, node{ch, g.name(ch)}})
	}
}

func (g *graph) styles(sn *styledtree.StyNode) {
	groups := sn.Styles().GroupProperties()
	var prev *propGroup
	for _, s := range g.params.StyleGroups {
		props, ok := groups[s]
		if !ok {
			continue
		}
		pg := &propGroup{ID: g.name(sn) + "_" + s, Name: s, Properties: props}
		g.exec(g.params.StylegroupTmpl, pg)
		if prev == nil {
			g.exec(g.params.PgedgeTmpl, pgedge{g.name(sn), pg})
		} else {
			g.exec(g.params.PgpgTmpl, []*propGroup{prev, pg})
		}
		prev = pg
	}
}

type edge struct {
	N1, N2 node
}

type pgedge struct {
	Name      string
	PropGroup *propGroup
}

func shortText(n node) string {
	h := n.N.HTMLNode()
	s := "\"\\\""
	if short, cut := styledtree.Truncate(h.Data, 10); cut {
		s += short + "...\\\"\""
	} else {
		s += h.Data + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if .IsText }}
{{ .Name }}	[ label={{ shortstring . }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const styleGroupTmpl = `{{ .ID }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ .PropGroup.ID }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ (index . 0).ID }} -> {{ (index . 1).ID }} [dir=none weight=1 style="dashed"] ;
`
