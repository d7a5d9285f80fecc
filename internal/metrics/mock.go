package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	gamesStarted     int
	hintsRevealed    int
	gamesExhausted   int
	answersCorrect   int
	answersIncorrect int
	predictions      int
	activeSessions   float64
	startupTime      float64
}

var _ Metrics = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncGamesStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gamesStarted++
}

func (m *Mock) IncHintsRevealed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hintsRevealed++
}

func (m *Mock) IncGamesExhausted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gamesExhausted++
}

func (m *Mock) IncAnswersCorrect() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.answersCorrect++
}

func (m *Mock) IncAnswersIncorrect() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.answersIncorrect++
}

func (m *Mock) IncPredictions() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.predictions++
}

func (m *Mock) SetActiveSessions(count float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activeSessions = count
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// GamesStarted returns the number of times IncGamesStarted was called.
func (m *Mock) GamesStarted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gamesStarted
}

// HintsRevealed returns the number of times IncHintsRevealed was called.
func (m *Mock) HintsRevealed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hintsRevealed
}

// GamesExhausted returns the number of times IncGamesExhausted was called.
func (m *Mock) GamesExhausted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gamesExhausted
}

// AnswersCorrect returns the number of times IncAnswersCorrect was called.
func (m *Mock) AnswersCorrect() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.answersCorrect
}

// AnswersIncorrect returns the number of times IncAnswersIncorrect was called.
func (m *Mock) AnswersIncorrect() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.answersIncorrect
}

// Predictions returns the number of times IncPredictions was called.
func (m *Mock) Predictions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.predictions
}

// ActiveSessions returns the last value passed to SetActiveSessions.
func (m *Mock) ActiveSessions() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeSessions
}

// MockTallyStore is an in-memory TallyStore for testing.
type MockTallyStore struct {
	mu      sync.Mutex
	tallies map[string]int
}

var _ TallyStore = (*MockTallyStore)(nil)

// NewMockTallyStore creates a new in-memory tally store.
func NewMockTallyStore() *MockTallyStore {
	return &MockTallyStore{tallies: make(map[string]int)}
}

func (m *MockTallyStore) Increment(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tallies[key]++
}

func (m *MockTallyStore) GetAll() (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int, len(m.tallies))
	for k, v := range m.tallies {
		out[k] = v
	}
	return out, nil
}
