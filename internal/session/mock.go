package session

import "sync"

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	CreateFunc   func(gameID uint32) Session
	GetFunc      func(gameID uint32) (Session, bool)
	NextHintFunc func(gameID uint32) (uint32, bool)
	DeleteFunc   func(gameID uint32)
	LenFunc      func() int

	CreateCalls   []uint32
	NextHintCalls []uint32
	DeleteCalls   []uint32
	StopCalls     int
}

var _ Store = (*MockStore)(nil)

func (m *MockStore) Create(gameID uint32) Session {
	m.mu.Lock()
	m.CreateCalls = append(m.CreateCalls, gameID)
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(gameID)
	}
	return Session{GameID: gameID, CurrentHint: startingHint}
}

func (m *MockStore) Get(gameID uint32) (Session, bool) {
	if m.GetFunc != nil {
		return m.GetFunc(gameID)
	}
	return Session{}, false
}

func (m *MockStore) NextHint(gameID uint32) (uint32, bool) {
	m.mu.Lock()
	m.NextHintCalls = append(m.NextHintCalls, gameID)
	m.mu.Unlock()
	if m.NextHintFunc != nil {
		return m.NextHintFunc(gameID)
	}
	return 0, false
}

func (m *MockStore) Delete(gameID uint32) {
	m.mu.Lock()
	m.DeleteCalls = append(m.DeleteCalls, gameID)
	m.mu.Unlock()
	if m.DeleteFunc != nil {
		m.DeleteFunc(gameID)
	}
}

func (m *MockStore) Len() int {
	if m.LenFunc != nil {
		return m.LenFunc()
	}
	return 0
}

func (m *MockStore) Stop() {
	m.mu.Lock()
	m.StopCalls++
	m.mu.Unlock()
}
