package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fleetyard/wastenav/pkg/datastructure"
)

// WriteDOT renders the graph as Graphviz DOT. When highlight is
// non-empty, the edges along that path are drawn bold red so a computed
// route stands out in the rendered picture. Pure display step: it
// renders what it is given and carries no routing contract.
func WriteDOT(w io.Writer, g *datastructure.Graph, highlight datastructure.Path) error {
	onPath := make(map[[2]datastructure.NodeID]bool)
	nodes := highlight.GetNodes()
	for i := 0; i+1 < len(nodes); i++ {
		u, v := nodes[i], nodes[i+1]
		if v < u {
			u, v = v, u
		}
		onPath[[2]datastructure.NodeID{u, v}] = true
	}

	if _, err := fmt.Fprintln(w, "graph wastenav {"); err != nil {
		return err
	}

	for _, id := range g.NodeIDs() {
		node, _ := g.GetNode(id)
		label := strconv.FormatInt(int64(id), 10)
		if node.GetName() != "" {
			label = fmt.Sprintf("%d\\n%s", id, node.GetName())
		}
		if _, err := fmt.Fprintf(w, "  %d [label=%q];\n", id, label); err != nil {
			return err
		}
	}

	var writeErr error
	g.ForEdges(func(e datastructure.Edge) {
		if writeErr != nil {
			return
		}
		u, v := e.GetFrom(), e.GetTo()
		if v < u {
			u, v = v, u
		}
		attrs := fmt.Sprintf("label=\"%g\"", e.GetWeight())
		if onPath[[2]datastructure.NodeID{u, v}] {
			attrs += ", color=red, penwidth=2.5"
		}
		_, writeErr = fmt.Fprintf(w, "  %d -- %d [%s];\n", e.GetFrom(), e.GetTo(), attrs)
	})
	if writeErr != nil {
		return writeErr
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
