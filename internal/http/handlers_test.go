package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pawnstorm/guess-the-gm/internal/catalog"
	"github.com/pawnstorm/guess-the-gm/internal/config"
	"github.com/pawnstorm/guess-the-gm/internal/game"
	"github.com/pawnstorm/guess-the-gm/internal/metrics"
	"github.com/pawnstorm/guess-the-gm/internal/session"
	"github.com/pawnstorm/guess-the-gm/internal/wikidata"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestServer wires a server over a three-player catalog with in-memory
// collaborators.
func setupTestServer(t *testing.T) *Server {
	t.Helper()

	cat := catalog.FromRecords([]*wikidata.PlayerRecord{
		{Name: "Fabiano Caruana", PeakRating: 2844},
		{Name: "Hikaru Nakamura", PeakRating: 2816},
		{Name: "Magnus Carlsen", PeakRating: 2882, BirthDate: "30.11.1990", Images: []string{"http://example.com/magnus.jpg"}},
	})

	sessions := session.NewStore(0)
	t.Cleanup(sessions.Stop)

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsHandler := metrics.NewMetricsHandler(reg)
	tallies := metrics.NewMockTallyStore()
	engine := game.New(cat, sessions, metricsSvc, tallies, game.DefaultMaxHint)

	return NewServer(engine, metricsSvc, metricsHandler, tallies, config.Config{})
}

func TestHealthCheckHandler(t *testing.T) {
	server := setupTestServer(t)

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK!", rr.Body.String())
}

func TestStartGameHandler(t *testing.T) {
	server := setupTestServer(t)

	req := httptest.NewRequest("GET", "/start_game?game_id=5", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var display game.Display
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &display))
	require.Len(t, display.Lines, 1)
	assert.Equal(t, "Peak rating", display.Lines[0].Category)
	assert.Equal(t, "2882", display.Lines[0].Answer)
}

func TestStartGameHandler_BadGameID(t *testing.T) {
	server := setupTestServer(t)

	for _, query := range []string{"", "?game_id=abc", "?game_id=-1"} {
		req := httptest.NewRequest("GET", "/start_game"+query, nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "query %q", query)
	}
}

func TestCategoryHandler_Progression(t *testing.T) {
	server := setupTestServer(t)

	start := httptest.NewRequest("GET", "/start_game?game_id=5", nil)
	server.ServeHTTP(httptest.NewRecorder(), start)

	for level := 2; level <= 7; level++ {
		req := httptest.NewRequest("GET", "/category?game_id=5", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code, "level %d", level)
		var display game.Display
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &display))
		assert.Len(t, display.Lines, min(level, 6))
	}

	// Hints exhausted: the losing result with the true name, as 201.
	req := httptest.NewRequest("GET", "/category?game_id=5", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	var result game.Result
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Equal(t, "Magnus Carlsen", result.Player.Name)
	assert.Equal(t, "http://example.com/magnus.jpg", result.Player.Image)
}

func TestCategoryHandler_UnknownSession(t *testing.T) {
	server := setupTestServer(t)

	req := httptest.NewRequest("GET", "/category?game_id=42", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestSkipHandler(t *testing.T) {
	server := setupTestServer(t)

	req := httptest.NewRequest("GET", "/skip?game_id=5", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	var result game.Result
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Equal(t, "Magnus Carlsen", result.Player.Name)
}

func TestPredictionHandler(t *testing.T) {
	server := setupTestServer(t)

	t.Run("match", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/prediction?name=Mag", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var prediction game.Prediction
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &prediction))
		assert.True(t, prediction.Found)
		assert.Equal(t, "Magnus Carlsen", prediction.Name)
	})

	t.Run("too short", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/prediction?name=ab", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var prediction game.Prediction
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &prediction))
		assert.False(t, prediction.Found)
	})
}

func TestAnswerHandler(t *testing.T) {
	server := setupTestServer(t)

	t.Run("correct", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/answer?game_id=5&name=magnus+carlsen", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var result game.Result
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.True(t, result.Success)
		assert.Equal(t, "Magnus Carlsen", result.Player.Name)
		assert.Len(t, result.Player.Lines, 6)
	})

	t.Run("incorrect is a teapot", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/answer?game_id=5&name=Garry+Kasparov", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusTeapot, rr.Code)
	})
}

func TestClearSessionHandler(t *testing.T) {
	server := setupTestServer(t)

	start := httptest.NewRequest("GET", "/start_game?game_id=5", nil)
	server.ServeHTTP(httptest.NewRecorder(), start)

	req := httptest.NewRequest("GET", "/clear?game_id=5", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	// The cleared game now reads as never started.
	req = httptest.NewRequest("GET", "/category?game_id=5", nil)
	rr = httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestStatsHandler(t *testing.T) {
	server := setupTestServer(t)

	server.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/start_game?game_id=1", nil))
	server.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/answer?game_id=1&name=wrong", nil))

	req := httptest.NewRequest("GET", "/stats", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var stats struct {
		Sessions int            `json:"sessions"`
		Tallies  map[string]int `json:"tallies"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.Sessions)
	assert.Equal(t, 1, stats.Tallies[metrics.TallyAnswersTotal])
	assert.Equal(t, 0, stats.Tallies[metrics.TallyAnswersCorrect])
}
