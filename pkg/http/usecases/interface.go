package usecases

import (
	"github.com/fleetyard/wastenav/pkg/datastructure"
)

type RoutingEngine interface {
	ShortestPath(start, end datastructure.NodeID) (datastructure.Path, error)
	DistancesFrom(source datastructure.NodeID) (map[datastructure.NodeID]float64, error)
	GetGraph() *datastructure.Graph
}

type SpatialIndex interface {
	NearestPoint(graph *datastructure.Graph, qLat, qLon, radius float64) (datastructure.Node, bool)
}
