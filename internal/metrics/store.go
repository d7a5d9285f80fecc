package metrics

import (
	"database/sql"
	"sync"

	"github.com/charmbracelet/log"
)

// store persists answer tallies in the metrics table.
type store struct {
	db *sql.DB
	mu sync.Mutex
}

// Tally keys used by the game engine.
const (
	TallyAnswersCorrect = "answers_correct"
	TallyAnswersTotal   = "answers_total"
)

// New creates a new TallyStore.
func New(db *sql.DB) TallyStore {
	return &store{
		db: db,
	}
}

// Increment upserts a tally key and increments its value by one. Failures are
// logged and swallowed: a lost tally must never fail a game request.
func (s *store) Increment(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stmt, err := s.db.Prepare(`
		INSERT INTO metrics (key, value) VALUES (?, 1)
		ON CONFLICT(key) DO UPDATE SET value = value + 1;
	`)
	if err != nil {
		log.Error("Failed to prepare statement for tally increment", "error", err, "key", key)
		return
	}
	defer stmt.Close()

	if _, err = stmt.Exec(key); err != nil {
		log.Error("Failed to execute statement for tally increment", "error", err, "key", key)
	} else {
		log.Debug("Incremented tally", "key", key)
	}
}

// GetAll returns all tallies from the database.
func (s *store) GetAll() (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT key, value FROM metrics")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tallies := make(map[string]int)
	for rows.Next() {
		var key string
		var value int
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		tallies[key] = value
	}
	return tallies, rows.Err()
}
