package geo

import (
	"github.com/fleetyard/wastenav/pkg/datastructure"
	"github.com/twpayne/go-polyline"
)

// NodeDistance is the edge-weight function used when a graph is built
// from surveyed coordinates: great-circle distance in km.
func NodeDistance(a, b datastructure.Node) float64 {
	return CalculateHaversineDistance(a.GetLat(), a.GetLon(), b.GetLat(), b.GetLon())
}

// PolylineFromCoords encodes coordinates with the google polyline format.
func PolylineFromCoords(coords []Coordinate) string {
	buf := make([][]float64, 0, len(coords))
	for _, c := range coords {
		buf = append(buf, []float64{c.GetLat(), c.GetLon()})
	}
	return string(polyline.EncodeCoords(buf))
}

// RouteGeometry resolves a path's node ids to coordinates, skipping
// nodes registered without survey coordinates.
func RouteGeometry(g *datastructure.Graph, path datastructure.Path) []Coordinate {
	coords := make([]Coordinate, 0, path.Len())
	for _, id := range path.GetNodes() {
		node, ok := g.GetNode(id)
		if !ok {
			continue
		}
		if node.GetLat() == 0 && node.GetLon() == 0 {
			continue
		}
		coords = append(coords, NewCoordinate(node.GetLat(), node.GetLon()))
	}
	return coords
}
