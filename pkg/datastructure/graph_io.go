package datastructure

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/fleetyard/wastenav/pkg"
	"github.com/fleetyard/wastenav/pkg/util"
)

// WriteGraph writes a bzip2-compressed snapshot of the graph. The
// snapshot is build output (cmd/builder), not runtime state: the
// server loads it once at startup and never writes it back.
func (g *Graph) WriteGraph(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	defer bz.Close()

	w := bufio.NewWriter(bz)

	fmt.Fprintf(w, "%d %d\n", g.NumberOfVertices(), g.NumberOfEdges())

	for _, id := range g.NodeIDs() {
		v := g.nodes[id]
		latF := strconv.FormatFloat(v.lat, 'f', -1, 64)
		lonF := strconv.FormatFloat(v.lon, 'f', -1, 64)

		fmt.Fprintf(w, "%d %s %s %s %s\n",
			v.id, latF, lonF, v.stream.String(), strconv.Quote(v.name))
	}

	for _, e := range g.edges {
		weightF := strconv.FormatFloat(e.weight, 'f', -1, 64)

		fmt.Fprintf(w, "%d %d %s\n", e.from, e.to, weightF)
	}

	return w.Flush()
}

// ReadGraph loads a snapshot written by WriteGraph.
func ReadGraph(filename string) (*Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	sc := bufio.NewScanner(bz)
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)

	if !sc.Scan() {
		return nil, util.WrapErrorf(sc.Err(), util.ErrGraphError,
			"graph snapshot %s: missing header", filename)
	}
	var n, m int
	if _, err := fmt.Sscanf(sc.Text(), "%d %d", &n, &m); err != nil {
		return nil, util.WrapErrorf(err, util.ErrGraphError,
			"graph snapshot %s: malformed header %q", filename, sc.Text())
	}

	g := NewGraph()

	for i := 0; i < n; i++ {
		if !sc.Scan() {
			return nil, util.WrapErrorf(sc.Err(), util.ErrGraphError,
				"graph snapshot %s: truncated node section", filename)
		}
		node, err := parseNodeLine(sc.Text())
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrGraphError,
				"graph snapshot %s: node line %d", filename, i)
		}
		if err := g.AddNode(node); err != nil {
			return nil, err
		}
	}

	for i := 0; i < m; i++ {
		if !sc.Scan() {
			return nil, util.WrapErrorf(sc.Err(), util.ErrGraphError,
				"graph snapshot %s: truncated edge section", filename)
		}
		var (
			from, to int64
			weightF  string
		)
		if _, err := fmt.Sscanf(sc.Text(), "%d %d %s", &from, &to, &weightF); err != nil {
			return nil, util.WrapErrorf(err, util.ErrGraphError,
				"graph snapshot %s: edge line %d: %q", filename, i, sc.Text())
		}
		weight, err := util.StringToFloat64(weightF)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrGraphError,
				"graph snapshot %s: edge line %d: bad weight %q", filename, i, weightF)
		}
		if err := g.AddEdge(NodeID(from), NodeID(to), weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func parseNodeLine(line string) (Node, error) {
	fields := strings.SplitN(line, " ", 5)
	if len(fields) != 5 {
		return Node{}, fmt.Errorf("expected 5 fields, got %d", len(fields))
	}

	id, err := util.StringToInt64(fields[0])
	if err != nil {
		return Node{}, err
	}
	lat, err := util.StringToFloat64(fields[1])
	if err != nil {
		return Node{}, err
	}
	lon, err := util.StringToFloat64(fields[2])
	if err != nil {
		return Node{}, err
	}
	stream := pkg.GetContainerType(fields[3])
	name, err := strconv.Unquote(fields[4])
	if err != nil {
		return Node{}, err
	}

	return NewCollectionPoint(NodeID(id), name, lat, lon, stream), nil
}
