package surveyparser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fleetyard/wastenav/pkg"
	"github.com/fleetyard/wastenav/pkg/datastructure"
	"github.com/fleetyard/wastenav/pkg/geo"
	"github.com/fleetyard/wastenav/pkg/util"
	"go.uber.org/zap"
)

// SurveyParser reads depot survey CSVs (collection points and road
// segments) and builds the routing graph from them. This is the data
// supply layer: the routing core only ever sees the finished graph.
type SurveyParser struct {
	log *zap.Logger
}

func NewSurveyParser(log *zap.Logger) *SurveyParser {
	return &SurveyParser{log: log}
}

// ParsePoints reads a collection-point file with records
// id,name,lat,lon,stream. A header row is skipped when present.
func (sp *SurveyParser) ParsePoints(filename string) ([]datastructure.Node, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	nodes := make([]datastructure.Node, 0)
	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("points file %s: %w", filename, err)
		}
		line++

		if line == 1 && strings.EqualFold(record[0], "id") {
			continue
		}
		if len(record) < 5 {
			return nil, util.WrapErrorf(nil, util.ErrGraphError,
				"points file %s line %d: expected 5 fields, got %d", filename, line, len(record))
		}

		id, err := util.StringToInt64(record[0])
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrGraphError,
				"points file %s line %d: bad id %q", filename, line, record[0])
		}
		lat, err := util.StringToFloat64(record[2])
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrGraphError,
				"points file %s line %d: bad lat %q", filename, line, record[2])
		}
		lon, err := util.StringToFloat64(record[3])
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrGraphError,
				"points file %s line %d: bad lon %q", filename, line, record[3])
		}

		nodes = append(nodes, datastructure.NewCollectionPoint(
			datastructure.NodeID(id), record[1], lat, lon, pkg.GetContainerType(record[4])))
	}

	sp.log.Info("parsed collection points", zap.String("file", filename), zap.Int("points", len(nodes)))
	return nodes, nil
}

// ParseEdges reads a road-segment file with records from,to[,weight].
// A missing or empty weight means "derive from coordinates later".
func (sp *SurveyParser) ParseEdges(filename string) ([]datastructure.Edge, [][2]datastructure.NodeID, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	weighted := make([]datastructure.Edge, 0)
	weightless := make([][2]datastructure.NodeID, 0)
	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("edges file %s: %w", filename, err)
		}
		line++

		if line == 1 && strings.EqualFold(record[0], "from") {
			continue
		}
		if len(record) < 2 {
			return nil, nil, util.WrapErrorf(nil, util.ErrGraphError,
				"edges file %s line %d: expected at least 2 fields, got %d", filename, line, len(record))
		}

		from, err := util.StringToInt64(record[0])
		if err != nil {
			return nil, nil, util.WrapErrorf(err, util.ErrGraphError,
				"edges file %s line %d: bad from id %q", filename, line, record[0])
		}
		to, err := util.StringToInt64(record[1])
		if err != nil {
			return nil, nil, util.WrapErrorf(err, util.ErrGraphError,
				"edges file %s line %d: bad to id %q", filename, line, record[1])
		}

		if len(record) >= 3 && record[2] != "" {
			weight, err := util.StringToFloat64(record[2])
			if err != nil {
				return nil, nil, util.WrapErrorf(err, util.ErrGraphError,
					"edges file %s line %d: bad weight %q", filename, line, record[2])
			}
			weighted = append(weighted, datastructure.NewEdge(
				datastructure.NodeID(from), datastructure.NodeID(to), weight))
			continue
		}

		weightless = append(weightless,
			[2]datastructure.NodeID{datastructure.NodeID(from), datastructure.NodeID(to)})
	}

	sp.log.Info("parsed road segments", zap.String("file", filename),
		zap.Int("weighted", len(weighted)), zap.Int("derived", len(weightless)))
	return weighted, weightless, nil
}

// BuildGraph assembles the routing graph from the two survey files.
// Segments without an explicit weight get the great-circle distance
// between their endpoints.
func (sp *SurveyParser) BuildGraph(pointsFile, edgesFile string) (*datastructure.Graph, error) {
	nodes, err := sp.ParsePoints(pointsFile)
	if err != nil {
		return nil, err
	}
	weighted, weightless, err := sp.ParseEdges(edgesFile)
	if err != nil {
		return nil, err
	}

	g, err := datastructure.BuildGraph(nodes, weighted)
	if err != nil {
		return nil, err
	}
	for _, p := range weightless {
		from, okFrom := g.GetNode(p[0])
		to, okTo := g.GetNode(p[1])
		if !okFrom || !okTo {
			return nil, util.WrapErrorf(nil, util.ErrGraphError,
				"segment (%d,%d) references an unsurveyed point", p[0], p[1])
		}
		if err := g.AddEdge(p[0], p[1], geo.NodeDistance(from, to)); err != nil {
			return nil, err
		}
	}

	return g, nil
}
