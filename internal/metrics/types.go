package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	GamesStarted     prometheus.Counter
	HintsRevealed    prometheus.Counter
	GamesExhausted   prometheus.Counter
	AnswersCorrect   prometheus.Counter
	AnswersIncorrect prometheus.Counter
	Predictions      prometheus.Counter
	ActiveSessions   prometheus.Gauge
	StartupTime      prometheus.Gauge
}
