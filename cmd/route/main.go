package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fleetyard/wastenav/pkg/datastructure"
	"github.com/fleetyard/wastenav/pkg/logger"
	"github.com/fleetyard/wastenav/pkg/render"
	"github.com/fleetyard/wastenav/pkg/routing"
	"github.com/fleetyard/wastenav/pkg/surveyparser"
	"github.com/fleetyard/wastenav/pkg/util"
	"go.uber.org/zap"
)

var (
	from       = flag.Int64("from", 1, "start collection point id")
	to         = flag.Int64("to", 4, "end collection point id")
	pointsFile = flag.String("points", "", "collection points survey file (empty: built-in example district)")
	edgesFile  = flag.String("edges", "", "road segments survey file (empty: built-in example district)")
	dotFile    = flag.String("dot", "", "write a Graphviz rendering of the graph with the route highlighted")
)

// exampleDistrict is a small demo network of five collection points.
func exampleDistrict() (*datastructure.Graph, error) {
	nodes := []datastructure.Node{
		datastructure.NewNode(1),
		datastructure.NewNode(2),
		datastructure.NewNode(3),
		datastructure.NewNode(4),
		datastructure.NewNode(5),
	}
	edges := []datastructure.Edge{
		datastructure.NewEdge(1, 2, 7),
		datastructure.NewEdge(2, 3, 10),
		datastructure.NewEdge(3, 4, 5),
		datastructure.NewEdge(4, 5, 2),
		datastructure.NewEdge(1, 5, 8),
		datastructure.NewEdge(2, 5, 3),
	}
	return datastructure.BuildGraph(nodes, edges)
}

func main() {
	flag.Parse()
	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	var graph *datastructure.Graph
	if *pointsFile != "" && *edgesFile != "" {
		parser := surveyparser.NewSurveyParser(log)
		graph, err = parser.BuildGraph(*pointsFile, *edgesFile)
	} else {
		graph, err = exampleDistrict()
	}
	if err != nil {
		log.Fatal("building graph", zap.Error(err))
	}

	engine := routing.NewEngine(graph, log)
	path, err := engine.ShortestPath(datastructure.NodeID(*from), datastructure.NodeID(*to))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNodeNotFound):
			fmt.Fprintf(os.Stderr, "unknown collection point: %v\n", err)
		case errors.Is(err, util.ErrNoPathExists):
			fmt.Fprintf(os.Stderr, "no route: %v\n", err)
		default:
			fmt.Fprintf(os.Stderr, "graph error: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("route %d -> %d: %v (total %.2f)\n", *from, *to, path.GetNodes(), path.GetTotalWeight())

	if *dotFile != "" {
		f, err := os.Create(*dotFile)
		if err != nil {
			log.Fatal("creating dot file", zap.Error(err))
		}
		defer f.Close()
		if err := render.WriteDOT(f, graph, path); err != nil {
			log.Fatal("rendering graph", zap.Error(err))
		}
		log.Info("graph rendered", zap.String("file", *dotFile))
	}
}
