package controllers

import (
	"github.com/fleetyard/wastenav/pkg/datastructure"
)

type RoutingService interface {
	ShortestPath(from, to datastructure.NodeID) (datastructure.Path, string, error)
	DistanceTable(sources, targets []datastructure.NodeID) ([][]float64, error)
	NearestCollectionPoint(lat, lon float64) (datastructure.Node, float64, error)
}
