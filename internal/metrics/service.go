package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		GamesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "guessgm_games_started_total",
			Help: "The total number of game sessions started.",
		}),
		HintsRevealed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "guessgm_hints_revealed_total",
			Help: "The total number of hint categories revealed.",
		}),
		GamesExhausted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "guessgm_games_exhausted_total",
			Help: "The total number of games lost by running out of hints.",
		}),
		AnswersCorrect: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "guessgm_answers_correct_total",
			Help: "The total number of correct answers submitted.",
		}),
		AnswersIncorrect: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "guessgm_answers_incorrect_total",
			Help: "The total number of incorrect answers submitted.",
		}),
		Predictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "guessgm_predictions_total",
			Help: "The total number of name predictions served.",
		}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "guessgm_active_sessions",
			Help: "The number of game sessions currently held in memory.",
		}),
		StartupTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "guessgm_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.GamesStarted,
		s.HintsRevealed,
		s.GamesExhausted,
		s.AnswersCorrect,
		s.AnswersIncorrect,
		s.Predictions,
		s.ActiveSessions,
		s.StartupTime,
	)

	return s
}

func (s *Service) IncGamesStarted() {
	s.GamesStarted.Inc()
}

func (s *Service) IncHintsRevealed() {
	s.HintsRevealed.Inc()
}

func (s *Service) IncGamesExhausted() {
	s.GamesExhausted.Inc()
}

func (s *Service) IncAnswersCorrect() {
	s.AnswersCorrect.Inc()
}

func (s *Service) IncAnswersIncorrect() {
	s.AnswersIncorrect.Inc()
}

func (s *Service) IncPredictions() {
	s.Predictions.Inc()
}

func (s *Service) SetActiveSessions(count float64) {
	s.ActiveSessions.Set(count)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTime.Set(duration)
}
