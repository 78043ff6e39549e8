package controllers

import (
	"github.com/fleetyard/wastenav/pkg/datastructure"
)

type routeRequest struct {
	From int64 `json:"from" validate:"min=0"`
	To   int64 `json:"to" validate:"min=0"`
}

type routeResponse struct {
	Path        []int64 `json:"path"`
	TotalWeight float64 `json:"total_weight"`
	Polyline    string  `json:"polyline"`
}

func NewRouteResponse(path datastructure.Path, polyline string) routeResponse {
	ids := make([]int64, 0, path.Len())
	for _, id := range path.GetNodes() {
		ids = append(ids, int64(id))
	}
	return routeResponse{
		Path:        ids,
		TotalWeight: path.GetTotalWeight(),
		Polyline:    polyline,
	}
}

type distanceTableRequest struct {
	Sources []int64 `json:"sources" validate:"required,min=1,dive,min=0"`
	Targets []int64 `json:"targets" validate:"required,min=1,dive,min=0"`
}

type distanceTableResponse struct {
	Sources []int64     `json:"sources"`
	Targets []int64     `json:"targets"`
	Table   [][]float64 `json:"table"`
}

func NewDistanceTableResponse(sources, targets []int64, table [][]float64) distanceTableResponse {
	return distanceTableResponse{
		Sources: sources,
		Targets: targets,
		Table:   table,
	}
}

type nearestPointRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

type nearestPointResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Stream     string  `json:"stream"`
	DistanceKm float64 `json:"distance_km"`
}

func NewNearestPointResponse(node datastructure.Node, distKm float64) nearestPointResponse {
	return nearestPointResponse{
		ID:         int64(node.GetID()),
		Name:       node.GetName(),
		Lat:        node.GetLat(),
		Lon:        node.GetLon(),
		Stream:     node.GetStream().String(),
		DistanceKm: distKm,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
