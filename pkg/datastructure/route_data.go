package datastructure

// Path is the result of one shortest-path query: the visited node ids
// from start to end inclusive, plus the sum of traversed edge weights.
// Produced fresh per query, never cached or mutated.
type Path struct {
	nodes       []NodeID
	totalWeight float64
}

func NewPath(nodes []NodeID, totalWeight float64) Path {
	return Path{nodes: nodes, totalWeight: totalWeight}
}

func (p Path) GetNodes() []NodeID {
	return p.nodes
}

func (p Path) GetTotalWeight() float64 {
	return p.totalWeight
}

func (p Path) Len() int {
	return len(p.nodes)
}
