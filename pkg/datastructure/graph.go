package datastructure

import (
	"math"
	"sort"

	"github.com/fleetyard/wastenav/pkg"
	"github.com/fleetyard/wastenav/pkg/util"
)

// NodeID identifies a collection point. Opaque and comparable, never
// interpreted arithmetically by the routing code.
type NodeID int64

type Node struct {
	id     NodeID
	name   string
	lat    float64
	lon    float64
	stream pkg.ContainerType
}

func NewNode(id NodeID) Node {
	return Node{id: id, stream: pkg.UNKNOWN}
}

func NewCollectionPoint(id NodeID, name string, lat, lon float64, stream pkg.ContainerType) Node {
	return Node{id: id, name: name, lat: lat, lon: lon, stream: stream}
}

func (n Node) GetID() NodeID {
	return n.id
}

func (n Node) GetName() string {
	return n.name
}

func (n Node) GetLat() float64 {
	return n.lat
}

func (n Node) GetLon() float64 {
	return n.lon
}

func (n Node) GetStream() pkg.ContainerType {
	return n.stream
}

// Edge is an undirected road segment between two distinct collection
// points, weighted by distance. Weights must be non-negative.
type Edge struct {
	from   NodeID
	to     NodeID
	weight float64
}

func NewEdge(from, to NodeID, weight float64) Edge {
	return Edge{from: from, to: to, weight: weight}
}

func (e Edge) GetFrom() NodeID {
	return e.from
}

func (e Edge) GetTo() NodeID {
	return e.to
}

func (e Edge) GetWeight() float64 {
	return e.weight
}

type arc struct {
	to     NodeID
	weight float64
}

// Graph is an in-memory undirected weighted graph of collection points.
// Immutable for the duration of a path query: AddNode/AddEdge happen
// during construction only, queries never mutate it.
type Graph struct {
	nodes map[NodeID]Node
	adj   map[NodeID][]arc
	edges []Edge
}

func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[NodeID]Node),
		adj:   make(map[NodeID][]arc),
	}
}

// BuildGraph builds a graph containing exactly the given nodes and
// edges. Node ids must be unique. An edge referencing an id missing
// from nodes auto-registers that node (coordinate-less), matching the
// permissive construction behavior the service relies on.
func BuildGraph(nodes []Node, edges []Edge) (*Graph, error) {
	g := NewGraph()
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e.from, e.to, e.weight); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// BuildGraphFromCoordinates derives each edge weight from the node
// coordinates via distFn (the service passes the haversine distance).
func BuildGraphFromCoordinates(nodes []Node, pairs [][2]NodeID,
	distFn func(a, b Node) float64) (*Graph, error) {
	g := NewGraph()
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			return nil, err
		}
	}
	for _, p := range pairs {
		from, okFrom := g.nodes[p[0]]
		to, okTo := g.nodes[p[1]]
		if !okFrom || !okTo {
			missing := p[0]
			if okFrom {
				missing = p[1]
			}
			return nil, util.WrapErrorf(nil, util.ErrGraphError,
				"edge (%d,%d) references node %d without coordinates", p[0], p[1], missing)
		}
		if err := g.AddEdge(p[0], p[1], distFn(from, to)); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Graph) AddNode(n Node) error {
	if _, ok := g.nodes[n.id]; ok {
		return util.WrapErrorf(nil, util.ErrGraphError,
			"duplicate node id %d", n.id)
	}
	g.nodes[n.id] = n
	return nil
}

// AddEdge registers an undirected edge. Unknown endpoints are
// auto-registered as bare nodes.
func (g *Graph) AddEdge(from, to NodeID, weight float64) error {
	if from == to {
		return util.WrapErrorf(nil, util.ErrGraphError,
			"self-loop edge on node %d", from)
	}
	if weight < 0 {
		return util.WrapErrorf(nil, util.ErrGraphError,
			"negative weight %f on edge (%d,%d)", weight, from, to)
	}
	if _, ok := g.nodes[from]; !ok {
		g.nodes[from] = NewNode(from)
	}
	if _, ok := g.nodes[to]; !ok {
		g.nodes[to] = NewNode(to)
	}

	g.adj[from] = append(g.adj[from], arc{to: to, weight: weight})
	g.adj[to] = append(g.adj[to], arc{to: from, weight: weight})
	g.edges = append(g.edges, NewEdge(from, to, weight))
	return nil
}

func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

func (g *Graph) GetNode(id NodeID) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

func (g *Graph) NumberOfVertices() int {
	return len(g.nodes)
}

func (g *Graph) NumberOfEdges() int {
	return len(g.edges)
}

// ForAdjacentEdges visits the arcs out of u in insertion order.
func (g *Graph) ForAdjacentEdges(u NodeID, fn func(to NodeID, weight float64)) {
	for _, a := range g.adj[u] {
		fn(a.to, a.weight)
	}
}

// NodeIDs returns all node ids sorted ascending, for deterministic
// iteration in exports and snapshots.
func (g *Graph) NodeIDs() []NodeID {
	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ForEdges visits each undirected edge once, in insertion order.
func (g *Graph) ForEdges(fn func(e Edge)) {
	for _, e := range g.edges {
		fn(e)
	}
}

// float comparators with epsilon tolerance

func Eq(a, b float64) bool {
	return math.Abs(a-b) <= pkg.EPS
}

func Lt(a, b float64) bool {
	return a+pkg.EPS < b
}

func Ge(a, b float64) bool {
	return !Lt(a, b)
}
