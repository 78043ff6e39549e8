package routing

import (
	"github.com/fleetyard/wastenav/pkg"
	da "github.com/fleetyard/wastenav/pkg/datastructure"
	"github.com/fleetyard/wastenav/pkg/util"
	"go.uber.org/zap"
)

// Engine answers point-to-point shortest-path queries over an immutable
// collection-point graph. A query is a single synchronous call with no
// state kept between calls.
type Engine struct {
	graph *da.Graph
	log   *zap.Logger
}

func NewEngine(graph *da.Graph, log *zap.Logger) *Engine {
	return &Engine{graph: graph, log: log}
}

func (e *Engine) GetGraph() *da.Graph {
	return e.graph
}

type vertexInfo struct {
	dist    float64
	parent  da.NodeID
	hasPrev bool
	settled bool

	heapNode *da.PriorityQueueNode[da.NodeID]
}

// ShortestPath runs Dijkstra from start to end and returns the
// minimum-total-weight path. Ties between equal-weight paths are broken
// by the lower predecessor id, so results are reproducible.
//
// Error kinds, matchable with errors.Is:
//   - util.ErrNodeNotFound: start or end is not in the graph
//   - util.ErrNoPathExists: the endpoints are in different components
//   - util.ErrGraphError: structural inconsistency (e.g. negative weight)
func (e *Engine) ShortestPath(start, end da.NodeID) (da.Path, error) {
	if !e.graph.HasNode(start) {
		return da.Path{}, util.WrapErrorf(nil, util.ErrNodeNotFound,
			"start node %d not found in graph", start)
	}
	if !e.graph.HasNode(end) {
		return da.Path{}, util.WrapErrorf(nil, util.ErrNodeNotFound,
			"end node %d not found in graph", end)
	}

	if start == end {
		return da.NewPath([]da.NodeID{start}, 0), nil
	}

	info, err := e.search(start, func(settled da.NodeID) bool { return settled == end })
	if err != nil {
		return da.Path{}, err
	}

	endInfo, ok := info[end]
	if !ok || da.Ge(endInfo.dist, pkg.INF_WEIGHT) {
		return da.Path{}, util.WrapErrorf(nil, util.ErrNoPathExists,
			"no path exists between node %d and node %d", start, end)
	}

	nodes := make([]da.NodeID, 0, 8)
	for at := end; ; {
		nodes = append(nodes, at)
		cur := info[at]
		if !cur.hasPrev {
			break
		}
		at = cur.parent
	}
	if nodes[len(nodes)-1] != start {
		return da.Path{}, util.WrapErrorf(nil, util.ErrGraphError,
			"broken predecessor chain reconstructing path %d -> %d", start, end)
	}

	return da.NewPath(util.ReverseG(nodes), endInfo.dist), nil
}

// DistancesFrom runs a single-source search and returns the shortest
// distance from source to every reachable node, source included with
// distance 0.
func (e *Engine) DistancesFrom(source da.NodeID) (map[da.NodeID]float64, error) {
	if !e.graph.HasNode(source) {
		return nil, util.WrapErrorf(nil, util.ErrNodeNotFound,
			"source node %d not found in graph", source)
	}

	info, err := e.search(source, nil)
	if err != nil {
		return nil, err
	}

	dists := make(map[da.NodeID]float64, len(info))
	for id, vi := range info {
		if da.Lt(vi.dist, pkg.INF_WEIGHT) {
			dists[id] = vi.dist
		}
	}
	return dists, nil
}

// search settles vertices in nondecreasing distance order until the
// queue drains or stopAt reports the settled vertex is the target.
func (e *Engine) search(source da.NodeID, stopAt func(da.NodeID) bool) (map[da.NodeID]*vertexInfo, error) {
	info := make(map[da.NodeID]*vertexInfo, e.graph.NumberOfVertices())
	pq := da.NewFourAryHeap[da.NodeID]()
	pq.Preallocate(e.graph.NumberOfVertices())

	srcNode := da.NewPriorityQueueNode(0, source)
	info[source] = &vertexInfo{dist: 0, heapNode: srcNode}
	pq.Insert(srcNode)

	targetReached := false
	targetDist := 0.0

	for !pq.IsEmpty() {
		minNode, err := pq.ExtractMin()
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrGraphError,
				"priority queue inconsistency during search from %d", source)
		}
		u := minNode.GetItem()
		uInfo := info[u]
		if uInfo.settled {
			continue
		}
		uInfo.settled = true

		if stopAt != nil && stopAt(u) {
			targetReached = true
			targetDist = uInfo.dist
		}

		var relaxErr error
		e.graph.ForAdjacentEdges(u, func(v da.NodeID, weight float64) {
			if relaxErr != nil {
				return
			}
			if weight < 0 {
				relaxErr = util.WrapErrorf(nil, util.ErrGraphError,
					"negative weight %f on edge (%d,%d)", weight, u, v)
				return
			}

			newDist := uInfo.dist + weight

			vInfo, labelled := info[v]
			if !labelled {
				vhNode := da.NewPriorityQueueNode(newDist, v)
				info[v] = &vertexInfo{dist: newDist, parent: u, hasPrev: true, heapNode: vhNode}
				pq.Insert(vhNode)
				return
			}

			if da.Lt(newDist, vInfo.dist) {
				vInfo.dist = newDist
				vInfo.parent = u
				vInfo.hasPrev = true
				if !vInfo.settled {
					pq.DecreaseKey(vInfo.heapNode, newDist)
				}
				return
			}

			// equal-distance tie: keep the lower predecessor id so the
			// reconstructed path is deterministic
			if da.Eq(newDist, vInfo.dist) && vInfo.hasPrev && u < vInfo.parent {
				vInfo.parent = u
			}
		})
		if relaxErr != nil {
			return nil, relaxErr
		}

		// keep settling until every equal-distance label of the target
		// has been relaxed, otherwise the predecessor tie-break could
		// depend on heap pop order
		if targetReached && da.Lt(targetDist, pq.GetMinrank()) {
			break
		}
	}

	return info, nil
}
