package session

// Store owns the only mutable shared state in the game engine: the table of
// in-flight sessions keyed by game id. The catalog itself is read-only, so
// everything that needs synchronization lives behind this interface.
type Store interface {
	// Create starts (or restarts) the session for a game id.
	Create(gameID uint32) Session
	// Get returns the session for a game id, if one exists.
	Get(gameID uint32) (Session, bool)
	// NextHint returns the current hint counter for the session and advances
	// it by one, as a single atomic step. The second return is false when no
	// session exists for the id.
	NextHint(gameID uint32) (uint32, bool)
	// Delete removes a session.
	Delete(gameID uint32)
	// Len reports the number of live sessions.
	Len() int
	// Stop shuts down any background eviction.
	Stop()
}
