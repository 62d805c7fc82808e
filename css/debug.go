package css

import (
	"fmt"

	"cmod/utils/debug"
)

// DumpNodes renders a parsed value tree in indented form for debug
// logging.
func DumpNodes(nodes []*Node) string {
	tw := debug.NewTreeWriter()
	dumpNodes(tw, 0, nodes)
	return tw.String()
}

func dumpNodes(tw *debug.TreeWriter, depth int, nodes []*Node) {
	for _, n := range nodes {
		switch n.Type {
		case NodeFunction:
			tw.Line(depth, "func %s() @%d", n.Value, n.Offset)
			dumpNodes(tw, depth+1, n.Nodes)
		case NodeSpace:
			tw.Line(depth, "space @%d", n.Offset)
		case NodeComment:
			tw.TextBlock(depth, fmt.Sprintf("comment @%d", n.Offset), n.Value)
		case NodeDiv:
			tw.TextBlock(depth, fmt.Sprintf("div @%d", n.Offset), n.Value)
		default:
			tw.TextBlock(depth, fmt.Sprintf("word @%d", n.Offset), n.Value)
		}
	}
}
