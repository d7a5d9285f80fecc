package http

import (
	"net/http"

	"github.com/pawnstorm/guess-the-gm/internal/config"
	"github.com/pawnstorm/guess-the-gm/internal/game"
	"github.com/pawnstorm/guess-the-gm/internal/metrics"
)

func NewServer(engine *game.Engine, metricsSvc metrics.Metrics, metricsHandler http.Handler, tallies metrics.TallyStore, cfg config.Config) *Server {
	server := &Server{
		Engine:         engine,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Tallies:        tallies,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/stats", Chain(s.StatsHandler(), paramsMiddleware))
	s.Router.Handle("/start_game", Chain(s.StartGameHandler(), paramsMiddleware))
	s.Router.Handle("/category", Chain(s.CategoryHandler(), paramsMiddleware))
	s.Router.Handle("/skip", Chain(s.SkipHandler(), paramsMiddleware))
	s.Router.Handle("/prediction", Chain(s.PredictionHandler(), paramsMiddleware))
	s.Router.Handle("/answer", Chain(s.AnswerHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearSessionHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
