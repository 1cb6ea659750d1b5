package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/price-predictor/internal/config"
	"github.com/price-predictor/internal/delivery/http/handler"
	"github.com/price-predictor/internal/delivery/http/middleware"
	"github.com/price-predictor/internal/infrastructure/predictionapi"
	"github.com/price-predictor/internal/usecase"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := zap.NewNop()

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8000},
		PredictionAPI: config.PredictionAPIConfig{
			BaseURL:      "http://127.0.0.1:1",
			PredictRoute: "/predict",
			Username:     "user",
			Password:     "pass",
			Timeout:      time.Second,
		},
		CORS: config.CORSConfig{AllowOrigins: "*"},
	}

	views, err := handler.NewViews()
	require.NoError(t, err)

	client := predictionapi.NewPredictionClient(&cfg.PredictionAPI, logger)
	h := handler.NewPredictHandler(usecase.NewPredictionUseCase(client, logger), views, logger)

	return NewServer(cfg, logger, h)
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.HeaderRequestID))

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "healthy", payload["status"])
}

func TestServer_UnknownRouteIsJSONError(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var payload struct {
		Error map[string]interface{} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "NOT_FOUND", payload.Error["code"])
}

func TestServer_FormRoute(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}

func TestServer_UnreachableServiceIsBadGateway(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict",
		jsonBody(`{"surface_bati":100,"nombre_pieces":3,"type_local":"maison"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.App().Test(req, 5000)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func jsonBody(s string) *strings.Reader {
	return strings.NewReader(s)
}
