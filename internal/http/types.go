package http

import (
	"net/http"

	"github.com/pawnstorm/guess-the-gm/internal/config"
	"github.com/pawnstorm/guess-the-gm/internal/game"
	"github.com/pawnstorm/guess-the-gm/internal/metrics"
)

type Server struct {
	Engine         *game.Engine
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Tallies        metrics.TallyStore
	Cfg            config.Config
	Router         *http.ServeMux
}
