package layout

import (
	tp "github.com/xlab/treeprint"
)

// Dump returns an indented textual representation of a box tree,
// one box per line together with its content rectangle.
func Dump(root *Box) string {
	p := tp.New()
	dump(p, root)
	return p.String()
}

func dump(p tp.Tree, box *Box) {
	if box.ChildCount() == 0 {
		p.AddNode(box.String())
		return
	}
	branch := p.AddBranch(box.String())
	for _, ch := range box.ChildBoxes() {
		dump(branch, ch)
	}
}
