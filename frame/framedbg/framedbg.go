/*
Package framedbg implements helpers to debug a box tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package framedbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/boxer/dom/style"
	"github.com/npillmayer/boxer/frame"
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
	style.PGColor,
}

// ToGraphViz outputs a diagram for a box tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root box,
// a Writer, and an optional list of style parameter groups.
// The diagram will include all styles belonging to one of the
// parameter groups.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//     - Display
//     - Color
//
// Boxes with a "background" property naming a color are filled with
// this color.
func ToGraphViz(root *frame.Box, w io.Writer, styleGroups []string) error {
	tmpl, err := template.New("boxes").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("box").Funcs(
		template.FuncMap{
			"label": label,
		}).Parse(boxNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("boxedge").Parse(boxEdgeTmpl))
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
	if root != nil {
		dict := make(map[*frame.Box]string, 256)
		if err = boxes(root, w, dict, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a box tree and a testing.T, it will
// create a Graphiviz image of the tree and write it to a file in the current
// folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(root *frame.Box, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "boxes.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing box digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(root, tmpfile, nil); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing box tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	B     *frame.Box
	Name  string
	Fill  string
	Shape string
}

func boxes(b *frame.Box, w io.Writer, dict map[*frame.Box]string, gparams *graphParamsType) error {
	if err := boxNode(b, w, dict, gparams); err != nil {
		return err
	}
	for _, ch := range b.BoxChildren() {
		if err := boxes(ch, w, dict, gparams); err != nil {
			return err
		}
		e := edge{dict[b], dict[ch]}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

func boxNode(b *frame.Box, w io.Writer, dict map[*frame.Box]string, gparams *graphParamsType) error {
	name := dict[b]
	if name == "" {
		name = fmt.Sprintf("box%05d", len(dict)+1)
		dict[b] = name
	}
	n := node{B: b, Name: name}
	switch b.Type() {
	case frame.BlockBox:
		n.Fill, n.Shape = "lightblue3", "box"
	case frame.InlineBox:
		n.Fill, n.Shape = "darkseagreen2", "ellipse"
	default:
		n.Fill, n.Shape = "grey90", "box"
	}
	props, ok := b.Props()
	if ok {
		if c, isSet := props.Styles.Property("background"); isSet {
			if rgb, known := c.Color(); known {
				n.Fill = style.ColorString(rgb)
			}
		}
	}
	if err := gparams.NodeTmpl.Execute(w, &n); err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return boxStyles(name, props.Styles, w, gparams)
}

func boxStyles(name string, pmap *style.PropertyMap, w io.Writer, gparams *graphParamsType) error {
	var prev *style.PropertyGroup
	for _, s := range gparams.StyleGroups {
		pg := pmap.Group(s)
		if pg == nil {
			continue
		}
		if err := gparams.StylegroupTmpl.Execute(w, pg); err != nil {
			return err
		}
		var err error
		if prev == nil {
			err = gparams.PgedgeTmpl.Execute(w, pgedge{name, pg})
		} else {
			err = gparams.PgpgTmpl.Execute(w, []*style.PropertyGroup{prev, pg})
		}
		if err != nil {
			return err
		}
		prev = pg
	}
	return nil
}

type edge struct {
	Name1, Name2 string
}

type pgedge struct {
	Name      string
	PropGroup *style.PropertyGroup
}

func label(b *frame.Box) string {
	props, ok := b.Props()
	if !ok {
		return "\"anonymous\""
	}
	if props.Node.IsText() {
		return shortText(props.Node.Data())
	}
	return fmt.Sprintf("%q", props.Node.TagName())
}

func shortText(data string) string {
	s := "\"\\\""
	if r := []rune(data); len(r) > 10 {
		s += string(r[:10]) + "...\\\"\""
	} else {
		s += data + "\\\"\""
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

const boxNodeTmpl = `{{ .Name }}	[ label={{ label .B }} shape={{ .Shape }} style=filled fillcolor="{{ .Fill }}" ] ;
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

const boxEdgeTmpl = `{{ .Name1 }} -> {{ .Name2 }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ printf "pg%p" .PropGroup }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ index . 0 | printf "pg%p"  }} -> {{ index . 1 | printf "pg%p" }} [dir=none weight=1 style="dashed"] ;
`
