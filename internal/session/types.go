package session

import "time"

// startingHint is the hint counter value a fresh session is seeded with. Two
// categories count as pre-revealed so the second request already shows more
// than the single opening line.
const startingHint = 2

// Session tracks how far one game has progressed.
type Session struct {
	GameID      uint32
	CurrentHint uint32
	StartedAt   time.Time
}
