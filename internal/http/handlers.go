package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/pawnstorm/guess-the-gm/internal/game"
)

// gameIDFromRequest parses the game_id query parameter.
func gameIDFromRequest(r *http.Request) (uint32, error) {
	raw := r.URL.Query().Get("game_id")
	if raw == "" {
		return 0, fmt.Errorf("missing game_id parameter")
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid game_id %q: %w", raw, err)
	}
	return uint32(id), nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// StartGameHandler begins a game and returns its opening one-line display.
func (s *Server) StartGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, err := gameIDFromRequest(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		display := s.Engine.Start(gameID)
		writeJSON(w, http.StatusOK, display)
	}
}

// CategoryHandler reveals the next hint level. An exhausted game comes back
// as 201 with the losing result; an unknown game id as an empty 204.
func (s *Server) CategoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, err := gameIDFromRequest(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp := s.Engine.Reveal(gameID)
		switch resp.Outcome {
		case game.OutcomeNoSession:
			w.WriteHeader(http.StatusNoContent)
		case game.OutcomeExhausted:
			writeJSON(w, http.StatusCreated, resp.Result)
		default:
			writeJSON(w, http.StatusOK, resp.Display)
		}
	}
}

// SkipHandler forfeits the game and reveals the answer.
func (s *Server) SkipHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, err := gameIDFromRequest(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		result := s.Engine.Skip(gameID)
		writeJSON(w, http.StatusCreated, result)
	}
}

// PredictionHandler completes a partial player name.
func (s *Server) PredictionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prediction := s.Engine.Predict(r.URL.Query().Get("name"))
		writeJSON(w, http.StatusOK, prediction)
	}
}

// AnswerHandler checks a guess. A wrong guess is 418: a deliberate
// game-rules signal the client distinguishes from real errors.
func (s *Server) AnswerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, err := gameIDFromRequest(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp := s.Engine.Answer(gameID, r.URL.Query().Get("name"))
		switch resp.Outcome {
		case game.OutcomeCorrect:
			writeJSON(w, http.StatusOK, resp.Result)
		default:
			w.WriteHeader(http.StatusTeapot)
		}
	}
}

// ClearSessionHandler drops the session for a game id.
func (s *Server) ClearSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, err := gameIDFromRequest(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		s.Engine.Reset(gameID)
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Cleared session %d!", gameID)
	}
}

// StatsHandler reports all-time answer tallies and the live session count.
func (s *Server) StatsHandler() http.HandlerFunc {
	type stats struct {
		Sessions int            `json:"sessions"`
		Tallies  map[string]int `json:"tallies"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		tallies, err := s.Tallies.GetAll()
		if err != nil {
			log.Error("Failed to read tallies", "error", err)
			http.Error(w, "Failed to read stats", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, stats{
			Sessions: s.Engine.SessionCount(),
			Tallies:  tallies,
		})
	}
}
