package main

import (
	"flag"

	"github.com/fleetyard/wastenav/pkg/logger"
	"github.com/fleetyard/wastenav/pkg/surveyparser"
	"go.uber.org/zap"
)

var (
	pointsFile = flag.String("points", "./data/points.csv", "collection points survey file")
	edgesFile  = flag.String("edges", "./data/edges.csv", "road segments survey file")
	outFile    = flag.String("out", "./data/collection.graph", "graph snapshot output")
)

func main() {
	flag.Parse()
	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	parser := surveyparser.NewSurveyParser(log)
	graph, err := parser.BuildGraph(*pointsFile, *edgesFile)
	if err != nil {
		log.Fatal("building graph from survey files", zap.Error(err))
	}

	if err := graph.WriteGraph(*outFile); err != nil {
		log.Fatal("writing graph snapshot", zap.Error(err))
	}

	log.Info("graph snapshot written",
		zap.String("file", *outFile),
		zap.Int("points", graph.NumberOfVertices()),
		zap.Int("segments", graph.NumberOfEdges()))
}
