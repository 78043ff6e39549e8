package spatialindex

import (
	"math"

	"github.com/fleetyard/wastenav/pkg/datastructure"
	"github.com/fleetyard/wastenav/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// Rtree indexes collection points by coordinate so the service can
// resolve a raw GPS position to the nearest point before routing.
type Rtree struct {
	tr *rtree.RTreeG[datastructure.NodeID]
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[datastructure.NodeID]
	return &Rtree{
		tr: &tr,
	}
}

// Build inserts every collection point that carries survey coordinates,
// each leaf having a bounding box with radius boundingBoxRadius (in km).
func (rt *Rtree) Build(graph *datastructure.Graph, boundingBoxRadius float64, log *zap.Logger) {
	log.Info("Building R-tree spatial index...")

	inserted := 0
	for _, id := range graph.NodeIDs() {
		node, _ := graph.GetNode(id)
		if node.GetLat() == 0 && node.GetLon() == 0 {
			continue
		}

		lowerLat, lowerLon := geo.GetDestinationPoint(node.GetLat(), node.GetLon(), 225, boundingBoxRadius)
		upperLat, upperLon := geo.GetDestinationPoint(node.GetLat(), node.GetLon(), 45, boundingBoxRadius)

		rt.tr.Insert([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat}, id)
		inserted++
	}

	log.Info("R-tree spatial index built.", zap.Int("points", inserted))
}

// SearchWithinRadius returns the ids of collection points whose leaf
// box intersects the query box of the given radius (in km).
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []datastructure.NodeID {
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radius)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radius)

	results := make([]datastructure.NodeID, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, id datastructure.NodeID) bool {
			results = append(results, id)
			return true
		})
	return results
}

// NearestPoint returns the collection point closest to the query
// position among candidates within radius km, by haversine distance.
func (rt *Rtree) NearestPoint(graph *datastructure.Graph, qLat, qLon, radius float64) (datastructure.Node, bool) {
	best := datastructure.Node{}
	bestDist := math.Inf(1)
	found := false

	for _, id := range rt.SearchWithinRadius(qLat, qLon, radius) {
		node, ok := graph.GetNode(id)
		if !ok {
			continue
		}
		d := geo.CalculateHaversineDistance(qLat, qLon, node.GetLat(), node.GetLon())
		if d < bestDist {
			best = node
			bestDist = d
			found = true
		}
	}

	return best, found
}
