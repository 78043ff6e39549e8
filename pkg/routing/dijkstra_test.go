package routing

import (
	"errors"
	"strings"
	"testing"

	da "github.com/fleetyard/wastenav/pkg/datastructure"
	"github.com/fleetyard/wastenav/pkg/logger"
	"github.com/fleetyard/wastenav/pkg/util"
)

func newTestEngine(t *testing.T, edges [][3]float64) *Engine {
	t.Helper()

	g := da.NewGraph()
	for _, e := range edges {
		if err := g.AddEdge(da.NodeID(e[0]), da.NodeID(e[1]), e[2]); err != nil {
			t.Fatalf("err: %v", err)
		}
	}

	log, err := logger.New()
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	return NewEngine(g, log)
}

// the example district: five collection points, six road segments
func exampleDistrictEngine(t *testing.T) *Engine {
	t.Helper()
	return newTestEngine(t, [][3]float64{
		{1, 2, 7},
		{2, 3, 10},
		{3, 4, 5},
		{4, 5, 2},
		{1, 5, 8},
		{2, 5, 3},
	})
}

func pathWeightSum(t *testing.T, e *Engine, path da.Path) float64 {
	t.Helper()

	nodes := path.GetNodes()
	total := 0.0
	for i := 0; i+1 < len(nodes); i++ {
		found := false
		e.GetGraph().ForAdjacentEdges(nodes[i], func(to da.NodeID, weight float64) {
			if to == nodes[i+1] && !found {
				total += weight
				found = true
			}
		})
		if !found {
			t.Fatalf("consecutive pair (%d,%d) not connected by an edge", nodes[i], nodes[i+1])
		}
	}
	return total
}

func TestShortestPathExampleDistrict(t *testing.T) {
	e := exampleDistrictEngine(t)

	path, err := e.ShortestPath(1, 4)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	// cheapest of the three candidates: [1 5 4]=10, [1 2 5 4]=12, [1 2 3 4]=22
	want := []da.NodeID{1, 5, 4}
	got := path.GetNodes()
	if len(got) != len(want) {
		t.Fatalf("path = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("path = %v, want %v", got, want)
		}
	}

	if !da.Eq(path.GetTotalWeight(), 10) {
		t.Fatalf("total weight = %v, want 10", path.GetTotalWeight())
	}
}

func TestShortestPathWeightMatchesEdgeSum(t *testing.T) {
	e := exampleDistrictEngine(t)

	for _, pair := range [][2]da.NodeID{{1, 4}, {1, 3}, {2, 4}, {3, 5}, {5, 1}} {
		path, err := e.ShortestPath(pair[0], pair[1])
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		sum := pathWeightSum(t, e, path)
		if !da.Eq(path.GetTotalWeight(), sum) {
			t.Fatalf("%d->%d: total weight %v, sum of edges %v", pair[0], pair[1], path.GetTotalWeight(), sum)
		}
	}
}

func TestShortestPathSameStartEnd(t *testing.T) {
	e := exampleDistrictEngine(t)

	path, err := e.ShortestPath(3, 3)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if path.Len() != 1 || path.GetNodes()[0] != 3 {
		t.Fatalf("path = %v, want [3]", path.GetNodes())
	}
	if path.GetTotalWeight() != 0 {
		t.Fatalf("total weight = %v, want 0", path.GetTotalWeight())
	}
}

func TestShortestPathDirectEdgeWhenNoCheaperAlternative(t *testing.T) {
	e := exampleDistrictEngine(t)

	// 4-5 direct edge costs 2, every detour is more expensive
	path, err := e.ShortestPath(4, 5)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	got := path.GetNodes()
	if len(got) != 2 || got[0] != 4 || got[1] != 5 {
		t.Fatalf("path = %v, want [4 5]", got)
	}
	if !da.Eq(path.GetTotalWeight(), 2) {
		t.Fatalf("total weight = %v, want 2", path.GetTotalWeight())
	}
}

func TestShortestPathNodeNotFound(t *testing.T) {
	e := exampleDistrictEngine(t)

	_, err := e.ShortestPath(99, 4)
	if !errors.Is(err, util.ErrNodeNotFound) {
		t.Fatalf("err = %v, want ErrNodeNotFound", err)
	}
	if !strings.Contains(err.Error(), "99") {
		t.Fatalf("error message %q does not name the missing id", err.Error())
	}

	_, err = e.ShortestPath(1, 42)
	if !errors.Is(err, util.ErrNodeNotFound) {
		t.Fatalf("err = %v, want ErrNodeNotFound", err)
	}
	if !strings.Contains(err.Error(), "42") {
		t.Fatalf("error message %q does not name the missing id", err.Error())
	}
}

func TestShortestPathNoPathExists(t *testing.T) {
	// two components: {1,2} and {7,8}
	e := newTestEngine(t, [][3]float64{
		{1, 2, 1},
		{7, 8, 1},
	})

	_, err := e.ShortestPath(1, 8)
	if !errors.Is(err, util.ErrNoPathExists) {
		t.Fatalf("err = %v, want ErrNoPathExists", err)
	}
	if !strings.Contains(err.Error(), "1") || !strings.Contains(err.Error(), "8") {
		t.Fatalf("error message %q does not name both endpoints", err.Error())
	}
}

func TestShortestPathErrorKindsAreDistinct(t *testing.T) {
	e := newTestEngine(t, [][3]float64{
		{1, 2, 1},
		{7, 8, 1},
	})

	_, err := e.ShortestPath(1, 8)
	if errors.Is(err, util.ErrNodeNotFound) || errors.Is(err, util.ErrGraphError) {
		t.Fatalf("ErrNoPathExists matched another kind: %v", err)
	}

	_, err = e.ShortestPath(1, 99)
	if errors.Is(err, util.ErrNoPathExists) || errors.Is(err, util.ErrGraphError) {
		t.Fatalf("ErrNodeNotFound matched another kind: %v", err)
	}
}

func TestShortestPathEqualWeightTieBreak(t *testing.T) {
	// two minimum-weight paths 1->4: [1 2 4] and [1 3 4], both cost 2.
	// the lower predecessor id must win, so [1 2 4] is expected.
	e := newTestEngine(t, [][3]float64{
		{1, 2, 1},
		{1, 3, 1},
		{2, 4, 1},
		{3, 4, 1},
	})

	for i := 0; i < 20; i++ {
		path, err := e.ShortestPath(1, 4)
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		got := path.GetNodes()
		if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 4 {
			t.Fatalf("run %d: path = %v, want [1 2 4]", i, got)
		}
	}
}

func TestShortestPathOptimality(t *testing.T) {
	// exhaustively check 1->6 against all simple paths of a small graph
	e := newTestEngine(t, [][3]float64{
		{1, 2, 2},
		{1, 3, 9},
		{2, 3, 6},
		{2, 4, 3},
		{3, 6, 1},
		{4, 5, 4},
		{4, 6, 7},
		{5, 6, 2},
	})

	path, err := e.ShortestPath(1, 6)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	best := enumerateBestSimplePath(e.GetGraph(), 1, 6)
	if !da.Eq(path.GetTotalWeight(), best) {
		t.Fatalf("total weight = %v, exhaustive minimum = %v", path.GetTotalWeight(), best)
	}
}

func enumerateBestSimplePath(g *da.Graph, start, end da.NodeID) float64 {
	best := -1.0
	visited := map[da.NodeID]bool{start: true}

	var dfs func(at da.NodeID, cost float64)
	dfs = func(at da.NodeID, cost float64) {
		if at == end {
			if best < 0 || cost < best {
				best = cost
			}
			return
		}
		g.ForAdjacentEdges(at, func(to da.NodeID, weight float64) {
			if visited[to] {
				return
			}
			visited[to] = true
			dfs(to, cost+weight)
			visited[to] = false
		})
	}
	dfs(start, 0)
	return best
}

func TestDistancesFrom(t *testing.T) {
	e := exampleDistrictEngine(t)

	dists, err := e.DistancesFrom(1)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	want := map[da.NodeID]float64{1: 0, 2: 7, 3: 15, 4: 10, 5: 8}
	if len(dists) != len(want) {
		t.Fatalf("dists = %v, want %v", dists, want)
	}
	for id, d := range want {
		if !da.Eq(dists[id], d) {
			t.Fatalf("dist to %d = %v, want %v", id, dists[id], d)
		}
	}
}

func TestDistancesFromUnknownSource(t *testing.T) {
	e := exampleDistrictEngine(t)

	_, err := e.DistancesFrom(1000)
	if !errors.Is(err, util.ErrNodeNotFound) {
		t.Fatalf("err = %v, want ErrNodeNotFound", err)
	}
}

func TestDistancesFromOmitsUnreachable(t *testing.T) {
	e := newTestEngine(t, [][3]float64{
		{1, 2, 4},
		{7, 8, 1},
	})

	dists, err := e.DistancesFrom(1)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if _, ok := dists[7]; ok {
		t.Fatalf("unreachable node 7 present in distances: %v", dists)
	}
	if !da.Eq(dists[2], 4) {
		t.Fatalf("dist to 2 = %v, want 4", dists[2])
	}
}
