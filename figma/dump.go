package figma

import (
	"fmt"
	"time"

	"fig2html/utils/debug"
)

// Dump renders the node tree in a compact indented form for reports.
func (f *File) Dump() string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "document %q version %s modified %s", f.Name, f.Version, f.LastModified.Format(time.RFC3339))
	if f.Document != nil {
		f.Document.dump(tw, 1)
	}
	return tw.String()
}

func (n *Node) dump(tw *debug.TreeWriter, depth int) {
	var attrs string
	if !n.IsVisible() {
		attrs += " hidden"
	}
	if n.AutoLayout() {
		attrs += " " + n.Layout().String()
	}
	if n.Box != nil {
		attrs += fmt.Sprintf(" [%gx%g at %g,%g]", n.Box.Width, n.Box.Height, n.Box.X, n.Box.Y)
	}
	tw.Line(depth, "%s %q id %s%s", n.Type, n.Name, n.ID, attrs)

	if n.Kind() == NodeKindText {
		tw.TextBlock(depth+1, "characters", n.Characters, 80)
	}
	for _, child := range n.Children {
		child.dump(tw, depth+1)
	}
}

// Stats returns the number of nodes in the subtree and its maximum depth.
func (n *Node) Stats() (nodes, depth int) {
	nodes = 1
	for _, child := range n.Children {
		cn, cd := child.Stats()
		nodes += cn
		if cd > depth {
			depth = cd
		}
	}
	return nodes, depth + 1
}
