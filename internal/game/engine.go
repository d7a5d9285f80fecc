package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pawnstorm/guess-the-gm/internal/catalog"
	"github.com/pawnstorm/guess-the-gm/internal/metrics"
	"github.com/pawnstorm/guess-the-gm/internal/session"
	"github.com/pawnstorm/guess-the-gm/internal/wikidata"
)

// DefaultMaxHint covers the six fact categories plus the trailing image
// reveal step. Deployments with a different category set override it through
// configuration; the engine never assumes this exact value.
const DefaultMaxHint = 7

// Engine runs the hint-progression game over a loaded catalog. The catalog is
// read-only and shared freely across requests; all mutable state lives in the
// session store.
type Engine struct {
	catalog  *catalog.Catalog
	sessions session.Store
	metrics  metrics.Metrics
	tallies  metrics.TallyStore
	maxHint  uint32
}

// New creates a game engine. maxHint is the hint counter value past which a
// game is exhausted: the number of categories to reveal plus one image step.
func New(cat *catalog.Catalog, sessions session.Store, metricsSvc metrics.Metrics, tallies metrics.TallyStore, maxHint uint32) *Engine {
	if maxHint == 0 {
		maxHint = DefaultMaxHint
	}
	return &Engine{
		catalog:  cat,
		sessions: sessions,
		metrics:  metricsSvc,
		tallies:  tallies,
		maxHint:  maxHint,
	}
}

// Start begins a new game for the id, seeding its session. The returned
// display always shows exactly one line, regardless of the seeded counter.
func (e *Engine) Start(gameID uint32) *Display {
	e.sessions.Create(gameID)
	e.metrics.IncGamesStarted()
	e.metrics.SetActiveSessions(float64(e.sessions.Len()))

	player := e.catalog.Select(gameID)
	log.Info("Game started", "gameID", gameID)
	return e.display(player, 1)
}

// Reveal advances the session's hint counter and returns the categories
// visible at the new level. Once the counter moves past the last category and
// the image step, the game is a loss and the full profile comes back instead.
func (e *Engine) Reveal(gameID uint32) RevealResponse {
	hint, ok := e.sessions.NextHint(gameID)
	if !ok {
		log.Debug("Reveal for unknown session", "gameID", gameID)
		return RevealResponse{Outcome: OutcomeNoSession}
	}

	player := e.catalog.Select(gameID)
	if hint > e.maxHint {
		log.Info("Game exhausted", "gameID", gameID, "hint", hint)
		e.metrics.IncGamesExhausted()
		result := e.resolve(player, false, "")
		return RevealResponse{Outcome: OutcomeExhausted, Result: &result}
	}

	e.metrics.IncHintsRevealed()
	return RevealResponse{Outcome: OutcomeOK, Display: e.display(player, hint)}
}

// Skip forfeits the game immediately, revealing the truth without a win.
func (e *Engine) Skip(gameID uint32) Result {
	log.Info("Game skipped", "gameID", gameID)
	e.metrics.IncGamesExhausted()
	return e.resolve(e.catalog.Select(gameID), false, "")
}

// Predict offers a name completion for a partial guess.
func (e *Engine) Predict(partial string) Prediction {
	e.metrics.IncPredictions()
	name, found := e.catalog.Predict(partial)
	return Prediction{Found: found, Name: name}
}

// Answer checks a guess against the target for the game id. A correct guess
// wins and reveals the full profile along with the solve time; anything else
// is the incorrect outcome.
func (e *Engine) Answer(gameID uint32, guess string) AnswerResponse {
	target := e.catalog.Select(gameID)
	if target == nil {
		return AnswerResponse{Outcome: OutcomeIncorrect}
	}

	e.tallies.Increment(metrics.TallyAnswersTotal)

	if !strings.EqualFold(guess, target.Name) {
		log.Info("Incorrect answer", "gameID", gameID)
		e.metrics.IncAnswersIncorrect()
		return AnswerResponse{Outcome: OutcomeIncorrect}
	}

	e.tallies.Increment(metrics.TallyAnswersCorrect)
	e.metrics.IncAnswersCorrect()

	solveTime := ""
	if sess, ok := e.sessions.Get(gameID); ok {
		solveTime = fmt.Sprintf("%ds", int(time.Since(sess.StartedAt).Seconds()))
	}

	log.Info("Correct answer", "gameID", gameID, "time", solveTime)
	result := e.resolve(target, true, solveTime)
	return AnswerResponse{Outcome: OutcomeCorrect, Result: &result}
}

// Reset drops the session for a game id.
func (e *Engine) Reset(gameID uint32) {
	e.sessions.Delete(gameID)
	e.metrics.SetActiveSessions(float64(e.sessions.Len()))
}

// SessionCount reports the number of live sessions.
func (e *Engine) SessionCount() int {
	return e.sessions.Len()
}

// categoryCount is the number of fact categories in play: every hint level
// below maxHint is a category, the final one is the image reveal.
func (e *Engine) categoryCount(lines []Line) int {
	return min(len(lines), int(e.maxHint)-1)
}

// categories builds the full, fixed-order fact list for a player.
func (e *Engine) categories(player *wikidata.PlayerRecord, hint uint32) []Line {
	chessCom := "Unknown"
	if len(player.ChessComName) > 0 {
		chessCom = player.ChessComName[0]
	}

	lines := []Line{
		{Category: "Peak rating", Answer: fmt.Sprint(player.PeakRating), Animated: hint == 1},
		{Category: "Birth date", Answer: player.BirthDate, Animated: hint == 2},
		{Category: "Year of GM title", Answer: fmt.Sprint(player.YearOfGM), Animated: hint == 3},
		{Category: "Citizenship", Answer: player.CitizenshipCountry, Animated: hint == 4},
		{Category: "Birth place", Answer: player.BirthPlace, Animated: hint == 5},
		{Category: "Chess.com username", Answer: chessCom, Animated: hint == 6},
	}
	return lines
}

// display renders the catalog view at a hint level: lines truncated to the
// level, the newest line animated, image attached from the last category on.
func (e *Engine) display(player *wikidata.PlayerRecord, hint uint32) *Display {
	if player == nil {
		return &Display{Lines: []Line{}}
	}

	lines := e.categories(player, hint)
	n := e.categoryCount(lines)
	visible := lines[:min(int(hint), n)]

	display := &Display{Lines: visible}
	if int(hint) >= n {
		display.Image = firstImage(player)
		display.ShowImage = true
	}
	return display
}

// resolve builds the terminal view with every category and the image out.
func (e *Engine) resolve(player *wikidata.PlayerRecord, success bool, solveTime string) Result {
	if player == nil {
		return Result{Success: success, Time: solveTime, Player: PlayerReveal{Lines: []Line{}}}
	}

	lines := e.categories(player, e.maxHint)
	n := e.categoryCount(lines)
	return Result{
		Success: success,
		Time:    solveTime,
		Player: PlayerReveal{
			Name:  player.Name,
			Lines: lines[:n],
			Image: firstImage(player),
		},
	}
}

func firstImage(player *wikidata.PlayerRecord) string {
	if len(player.Images) > 0 {
		return player.Images[0]
	}
	return ""
}
