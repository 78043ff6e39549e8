package datastructure

import (
	"path/filepath"
	"testing"

	"github.com/fleetyard/wastenav/pkg"
)

func TestGraphSnapshotRoundTrip(t *testing.T) {
	g := NewGraph()
	if err := g.AddNode(NewCollectionPoint(1, "Depot Tegalrejo", -7.781349, 110.360935, pkg.RESIDUAL)); err != nil {
		t.Fatalf("err: %v", err)
	}
	if err := g.AddNode(NewCollectionPoint(2, "Pasar Kranggan", -7.783459, 110.367418, pkg.ORGANIC)); err != nil {
		t.Fatalf("err: %v", err)
	}
	if err := g.AddEdge(1, 2, 1.25); err != nil {
		t.Fatalf("err: %v", err)
	}
	if err := g.AddEdge(2, 3, 0.5); err != nil { // auto-registered node
		t.Fatalf("err: %v", err)
	}

	file := filepath.Join(t.TempDir(), "district.graph")
	if err := g.WriteGraph(file); err != nil {
		t.Fatalf("err: %v", err)
	}

	loaded, err := ReadGraph(file)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	if loaded.NumberOfVertices() != g.NumberOfVertices() {
		t.Fatalf("vertices = %d, want %d", loaded.NumberOfVertices(), g.NumberOfVertices())
	}
	if loaded.NumberOfEdges() != g.NumberOfEdges() {
		t.Fatalf("edges = %d, want %d", loaded.NumberOfEdges(), g.NumberOfEdges())
	}

	node, ok := loaded.GetNode(1)
	if !ok {
		t.Fatalf("node 1 missing after reload")
	}
	if node.GetName() != "Depot Tegalrejo" {
		t.Fatalf("name = %q, want %q", node.GetName(), "Depot Tegalrejo")
	}
	if !Eq(node.GetLat(), -7.781349) || !Eq(node.GetLon(), 110.360935) {
		t.Fatalf("coordinates lost: %v,%v", node.GetLat(), node.GetLon())
	}
	if node.GetStream() != pkg.RESIDUAL {
		t.Fatalf("stream = %v, want residual", node.GetStream())
	}

	weight := 0.0
	loaded.ForAdjacentEdges(1, func(to NodeID, w float64) {
		if to == 2 {
			weight = w
		}
	})
	if !Eq(weight, 1.25) {
		t.Fatalf("edge weight = %v, want 1.25", weight)
	}
}

func TestReadGraphMissingFile(t *testing.T) {
	if _, err := ReadGraph(filepath.Join(t.TempDir(), "nope.graph")); err == nil {
		t.Fatalf("expected error for missing snapshot")
	}
}
