package main

import (
	"context"
	"flag"

	"github.com/fleetyard/wastenav/pkg/datastructure"
	"github.com/fleetyard/wastenav/pkg/http"
	"github.com/fleetyard/wastenav/pkg/http/usecases"
	"github.com/fleetyard/wastenav/pkg/logger"
	"github.com/fleetyard/wastenav/pkg/routing"
	"github.com/fleetyard/wastenav/pkg/spatialindex"
	"github.com/fleetyard/wastenav/pkg/util"
	"go.uber.org/zap"
)

var (
	graphFile             = flag.String("graph", "./data/collection.graph", "graph snapshot built by cmd/builder")
	leafBoundingBoxRadius = flag.Float64("leaf_bounding_box_radius", 0.05, "leaf node (r-tree) bounding box radius in km")
	snapRadius            = flag.Float64("snap_radius", 2.0, "nearest collection point search radius in km")
	tableWorkers          = flag.Int("table_workers", 4, "worker pool size for distance table queries")
	useRateLimit          = flag.Bool("rate_limit", false, "enable the request rate limit middleware")
)

func main() {
	flag.Parse()
	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		log.Warn("no config file, using defaults", zap.Error(err))
	}

	graph, err := datastructure.ReadGraph(*graphFile)
	if err != nil {
		log.Fatal("loading graph snapshot", zap.Error(err))
	}
	routingEngine := routing.NewEngine(graph, log)

	rtree := spatialindex.NewRtree()
	rtree.Build(graph, *leafBoundingBoxRadius, log)

	api := http.NewServer(log)

	routingService := usecases.NewRoutingService(log, routingEngine, rtree, *snapRadius, *tableWorkers)
	ctx, cleanup := newContext()

	_, err = api.Use(ctx, log, *useRateLimit, routingService)
	if err != nil {
		log.Fatal("starting API", zap.Error(err))
	}

	signal := http.GracefulShutdown()

	log.Info("wastenav routing server stopped", zap.String("signal", signal.String()))
	cleanup()
}

func newContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	return ctx, func() { cancel() }
}
