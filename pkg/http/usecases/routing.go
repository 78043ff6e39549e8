package usecases

import (
	"errors"

	"github.com/fleetyard/wastenav/pkg/concurrent"
	"github.com/fleetyard/wastenav/pkg/datastructure"
	"github.com/fleetyard/wastenav/pkg/geo"
	"github.com/fleetyard/wastenav/pkg/metrics"
	"github.com/fleetyard/wastenav/pkg/util"
	"go.uber.org/zap"
)

type RoutingService struct {
	log          *zap.Logger
	engine       RoutingEngine
	spatialIndex SpatialIndex
	searchRadius float64
	tableWorkers int
}

func NewRoutingService(log *zap.Logger, engine RoutingEngine, spatialIndex SpatialIndex,
	searchRadius float64, tableWorkers int) *RoutingService {
	return &RoutingService{
		log:          log,
		engine:       engine,
		spatialIndex: spatialIndex,
		searchRadius: searchRadius,
		tableWorkers: tableWorkers,
	}
}

// ShortestPath computes the cheapest collection route between two
// points and encodes its geometry as a google polyline.
func (rs *RoutingService) ShortestPath(from, to datastructure.NodeID) (datastructure.Path, string, error) {
	path, err := rs.engine.ShortestPath(from, to)
	if err != nil {
		metrics.RoutesComputed.WithLabelValues(outcomeLabel(err)).Inc()
		return datastructure.Path{}, "", err
	}

	metrics.RoutesComputed.WithLabelValues("ok").Inc()
	metrics.RouteLength.Observe(path.GetTotalWeight())

	pathPolyline := geo.PolylineFromCoords(geo.RouteGeometry(rs.engine.GetGraph(), path))
	return path, pathPolyline, nil
}

type tableJob struct {
	row    int
	source datastructure.NodeID
}

type tableRow struct {
	row   int
	dists []float64
	err   error
}

// DistanceTable returns the shortest distance from every source to
// every target, -1 for unreachable pairs. Each cell comes from an
// independent single-source query; the queries are fanned out over a
// worker pool but each query itself stays synchronous.
func (rs *RoutingService) DistanceTable(sources, targets []datastructure.NodeID) ([][]float64, error) {
	graph := rs.engine.GetGraph()
	for _, id := range append(append([]datastructure.NodeID{}, sources...), targets...) {
		if !graph.HasNode(id) {
			return nil, util.WrapErrorf(nil, util.ErrNodeNotFound,
				"node %d not found in graph", id)
		}
	}

	pool := concurrent.NewWorkerPool[tableJob, tableRow](rs.tableWorkers, len(sources))
	pool.Start(func(job tableJob) tableRow {
		dists, err := rs.engine.DistancesFrom(job.source)
		if err != nil {
			return tableRow{row: job.row, err: err}
		}
		row := make([]float64, len(targets))
		for i, t := range targets {
			d, ok := dists[t]
			if !ok {
				d = -1
			}
			row[i] = d
		}
		return tableRow{row: job.row, dists: row}
	})

	for i, s := range sources {
		pool.AddJob(tableJob{row: i, source: s})
	}
	pool.Close()
	pool.Wait()

	table := make([][]float64, len(sources))
	for res := range pool.CollectResults() {
		if res.err != nil {
			return nil, res.err
		}
		table[res.row] = res.dists
	}
	return table, nil
}

// NearestCollectionPoint snaps a raw GPS position to the closest
// surveyed collection point within the configured search radius.
func (rs *RoutingService) NearestCollectionPoint(lat, lon float64) (datastructure.Node, float64, error) {
	node, found := rs.spatialIndex.NearestPoint(rs.engine.GetGraph(), lat, lon, rs.searchRadius)
	if !found {
		return datastructure.Node{}, 0, util.WrapErrorf(nil, util.ErrNotFound,
			"no collection point within %.2f km of %f,%f", rs.searchRadius, lat, lon)
	}

	dist := geo.CalculateHaversineDistance(lat, lon, node.GetLat(), node.GetLon())
	return node, dist, nil
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, util.ErrNodeNotFound):
		return "node_not_found"
	case errors.Is(err, util.ErrNoPathExists):
		return "no_path"
	default:
		return "graph_error"
	}
}
