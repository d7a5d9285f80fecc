package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the game engine from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncGamesStarted()
	IncHintsRevealed()
	IncGamesExhausted()
	IncAnswersCorrect()
	IncAnswersIncorrect()
	IncPredictions()
	SetActiveSessions(count float64)
	SetStartupTime(duration float64)
}

// TallyStore persists answer tallies across restarts, so the all-time
// correct/total counts survive redeploys.
type TallyStore interface {
	Increment(key string)
	GetAll() (map[string]int, error)
}
