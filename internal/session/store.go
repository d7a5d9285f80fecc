package session

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// store is the in-memory Store implementation. A single lock over the whole
// table is enough at the session counts this game sees; the lock is only held
// for map operations, never across request handling.
type store struct {
	mu       sync.Mutex
	sessions map[uint32]*Session

	ttl  time.Duration
	done chan struct{}
	once sync.Once
}

// NewStore creates a session store. A non-zero ttl starts a janitor that
// evicts sessions idle since before the ttl window; zero disables eviction
// and the table grows until process restart.
func NewStore(ttl time.Duration) Store {
	s := &store{
		sessions: make(map[uint32]*Session),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	if ttl > 0 {
		go s.janitor()
	}
	return s
}

func (s *store) Create(gameID uint32) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{
		GameID:      gameID,
		CurrentHint: startingHint,
		StartedAt:   time.Now(),
	}
	s.sessions[gameID] = sess
	return *sess
}

func (s *store) Get(gameID uint32) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[gameID]
	if !ok {
		return Session{}, false
	}
	return *sess, true
}

func (s *store) NextHint(gameID uint32) (uint32, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[gameID]
	if !ok {
		return 0, false
	}
	hint := sess.CurrentHint
	sess.CurrentHint++
	return hint, true
}

func (s *store) Delete(gameID uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, gameID)
}

func (s *store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

func (s *store) Stop() {
	s.once.Do(func() {
		close(s.done)
	})
}

func (s *store) janitor() {
	ticker := time.NewTicker(s.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.evictBefore(now.Add(-s.ttl))
		}
	}
}

func (s *store) evictBefore(cutoff time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, sess := range s.sessions {
		if sess.StartedAt.Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		log.Debug("Evicted expired sessions", "count", evicted, "remaining", len(s.sessions))
	}
}
