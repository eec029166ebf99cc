/*
Package domdbg implements helpers to debug a styled tree.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
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

	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/restyle/dom/styledtree"
	tp "github.com/xlab/treeprint"
)

// Sprint returns an indented listing of a styled tree: for every node its
// label, style classes, pseudo-class state and the label of the applied
// declaration block.
func Sprint(root *styledtree.StyNode) string {
	if root == nil {
		return "<empty tree>"
	}
	printer := tp.New()
	printer.SetValue(nodeText(root))
	for _, ch := range root.ChildNodes() {
		printNode(printer, ch)
	}
	return printer.String()
}

// Print writes the listing of Sprint to w.
func Print(root *styledtree.StyNode, w io.Writer) error {
	_, err := io.WriteString(w, Sprint(root))
	return err
}

func printNode(printer tp.Tree, n *styledtree.StyNode) {
	children := n.ChildNodes()
	if len(children) == 0 {
		printer.AddNode(nodeText(n))
		return
	}
	branch := printer.AddBranch(nodeText(n))
	for _, ch := range children {
		printNode(branch, ch)
	}
}

func nodeText(n *styledtree.StyNode) string {
	switch s := n.Styles(); {
	case s == nil:
		return n.String() + " ⟶ <unstyled>"
	case s.IsNoStyle():
		return n.String() + " ⟶ <no style>"
	default:
		return fmt.Sprintf("%s ⟶ %s", n, s.Label())
	}
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
}

// ToGraphViz outputs a diagram for a styled tree. The diagram is in
// GraphViz (DOT) format. Every node is drawn together with the property
// groups of the declaration block applied to it.
func ToGraphViz(root *styledtree.StyNode, w io.Writer) error {
	tmpl, err := template.New("styledtree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("stynode").Funcs(
		template.FuncMap{
			"quote": quote,
		}).Parse(styNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*styledtree.StyNode]string, 256)
	if root != nil {
		if err = nodes(root, w, dict, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a styled tree and a testing.T, it
// will create a Graphviz image of the tree and write it to a file in the
// current folder, choosing a unique file name. The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(root *styledtree.StyNode, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "styledtree.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing styled tree digraph to %s\n", tmpfile.Name())
	if err = ToGraphViz(root, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N    *styledtree.StyNode
	Name string
}

func nodes(n *styledtree.StyNode, w io.Writer, dict map[*styledtree.StyNode]string,
	gparams *graphParamsType) error {
	//
	if err := styNode(n, w, dict, gparams); err != nil {
		return err
	}
	for _, ch := range n.ChildNodes() {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		e := edge{node{n, dict[n]}, node{ch, dict[ch]}}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

func styNode(n *styledtree.StyNode, w io.Writer, dict map[*styledtree.StyNode]string,
	gparams *graphParamsType) error {
	//
	name := fmt.Sprintf("node%05d", len(dict)+1)
	dict[n] = name
	if err := gparams.NodeTmpl.Execute(w, &node{n, name}); err != nil {
		return err
	}
	for _, pg := range n.Styles().Groups() {
		if err := gparams.StylegroupTmpl.Execute(w, pg); err != nil {
			return err
		}
		if err := gparams.PgedgeTmpl.Execute(w, pgedge{name, pg}); err != nil {
			return err
		}
	}
	return nil
}

type edge struct {
	N1, N2 node
}

type pgedge struct {
	Name      string
	PropGroup *style.PropertyGroup
}

func quote(n *styledtree.StyNode) string {
	s := n.String()
	if len(s) > 40 {
		s = s[:40] + "…"
	}
	return fmt.Sprintf("%q", strings.ReplaceAll(s, "\n", " "))
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const styNodeTmpl = `{{ .Name }}	[ label={{ quote .N }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
`

const styleGroupTmpl = `{{ printf "pg%p" . }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const edgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ printf "pg%p" .PropGroup }} [dir=none weight=1 style="dashed"] ;
`
