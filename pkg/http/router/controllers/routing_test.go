package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fleetyard/wastenav/pkg/datastructure"
	helper "github.com/fleetyard/wastenav/pkg/http/router/routerhelper"
	"github.com/fleetyard/wastenav/pkg/http/usecases"
	"github.com/fleetyard/wastenav/pkg/logger"
	"github.com/fleetyard/wastenav/pkg/routing"
	"github.com/fleetyard/wastenav/pkg/spatialindex"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	g := datastructure.NewGraph()
	require.NoError(t, g.AddNode(datastructure.NewCollectionPoint(1, "depot", -7.781349, 110.360935, 0)))
	require.NoError(t, g.AddNode(datastructure.NewCollectionPoint(2, "market", -7.783459, 110.367418, 0)))
	require.NoError(t, g.AddNode(datastructure.NewCollectionPoint(4, "terminal", -7.747226, 110.355788, 0)))
	require.NoError(t, g.AddNode(datastructure.NewCollectionPoint(5, "monument", -7.749629, 110.366557, 0)))
	for _, e := range [][3]float64{{1, 2, 7}, {4, 5, 2}, {1, 5, 8}, {2, 5, 3}} {
		require.NoError(t, g.AddEdge(datastructure.NodeID(e[0]), datastructure.NodeID(e[1]), e[2]))
	}

	log, err := logger.New()
	require.NoError(t, err)

	rt := spatialindex.NewRtree()
	rt.Build(g, 0.05, log)
	service := usecases.NewRoutingService(log, routing.NewEngine(g, log), rt, 2.0, 2)

	router := httprouter.New()
	api := New(service, log)
	api.Routes(helper.NewRouteGroup(router, "/api"))
	return router
}

func TestRouteEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/route?from=1&to=4", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Path        []int64 `json:"path"`
			TotalWeight float64 `json:"total_weight"`
			Polyline    string  `json:"polyline"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []int64{1, 5, 4}, body.Data.Path)
	assert.InDelta(t, 10.0, body.Data.TotalWeight, 1e-9)
	assert.NotEmpty(t, body.Data.Polyline)
}

func TestRouteEndpointMissingParam(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/route?from=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouteEndpointUnknownNode(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/route?from=1&to=99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "99")
}

func TestDistanceTableEndpoint(t *testing.T) {
	router := newTestRouter(t)

	body := `{"sources":[1],"targets":[2,4]}`
	req := httptest.NewRequest(http.MethodPost, "/api/distanceTable", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Table [][]float64 `json:"table"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Table, 1)
	assert.InDelta(t, 7.0, resp.Data.Table[0][0], 1e-9)
	assert.InDelta(t, 10.0, resp.Data.Table[0][1], 1e-9) // 1 -> 5 -> 4
}

func TestDistanceTableEndpointValidation(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/distanceTable", strings.NewReader(`{"sources":[],"targets":[1]}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNearestPointEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nearestPoint?lat=-7.7814&lon=110.3610", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Data.ID)
	assert.Equal(t, "depot", resp.Data.Name)
}

func TestNearestPointEndpointBadLat(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nearestPoint?lat=abc&lon=110.3610", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
