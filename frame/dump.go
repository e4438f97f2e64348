package frame

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// Dump returns a multi-line representation of a box tree, one box per line.
// Boxes for elements list their properties.
func Dump(box *Box) string {
	if box == nil {
		return "<empty box tree>\n"
	}
	tp := treeprint.NewWithRoot(label(box))
	dumpChildren(box, tp)
	return tp.String()
}

func dumpChildren(box *Box, branch treeprint.Tree) {
	for _, ch := range box.BoxChildren() {
		if ch.ChildCount() == 0 {
			branch.AddNode(label(ch))
			continue
		}
		dumpChildren(ch, branch.AddBranch(label(ch)))
	}
}

func label(box *Box) string {
	props, ok := box.Props()
	if !ok || props.Styles.Len() == 0 {
		return box.String()
	}
	kv := props.Styles.Properties()
	s := make([]string, len(kv))
	for i, p := range kv {
		s[i] = p.String()
	}
	return fmt.Sprintf("%s { %s }", box, strings.Join(s, "; "))
}
