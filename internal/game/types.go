package game

// Outcome classifies the result of an engine call. Outcomes are ordinary
// domain results, never errors; the boundary layer decides how to put them on
// the wire.
type Outcome int

const (
	// OutcomeOK carries a regular hint display.
	OutcomeOK Outcome = iota
	// OutcomeNoSession means the game id was never started.
	OutcomeNoSession
	// OutcomeExhausted means the game ran out of hints and is lost.
	OutcomeExhausted
	// OutcomeCorrect means the submitted answer matched the target.
	OutcomeCorrect
	// OutcomeIncorrect means the submitted answer did not match. This is a
	// game-rules signal, distinct from any validation or server error.
	OutcomeIncorrect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeNoSession:
		return "no_session"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// Line is one revealed fact category.
type Line struct {
	Category string `json:"category"`
	Answer   string `json:"answer"`
	// Animated marks the newest line of the display so the client can play
	// its reveal animation on just that one.
	Animated bool `json:"animated"`
}

// Display is the hint view for an in-flight game: the visible category lines
// and, once every category is out, the player's image.
type Display struct {
	Lines     []Line `json:"lines"`
	Image     string `json:"image,omitempty"`
	ShowImage bool   `json:"show_image"`
}

// PlayerReveal is the fully revealed profile shown when a game ends.
type PlayerReveal struct {
	Name  string `json:"name"`
	Lines []Line `json:"lines"`
	Image string `json:"image"`
}

// Result is the terminal view of a game, win or lose.
type Result struct {
	Success bool         `json:"success"`
	Time    string       `json:"time"`
	Player  PlayerReveal `json:"player"`
}

// RevealResponse is the engine's answer to a hint request.
type RevealResponse struct {
	Outcome Outcome
	Display *Display
	// Result is set when Outcome is OutcomeExhausted: the game is over and
	// the truth is revealed without a win.
	Result *Result
}

// AnswerResponse is the engine's answer to a guess submission.
type AnswerResponse struct {
	Outcome Outcome
	// Result is set when Outcome is OutcomeCorrect.
	Result *Result
}

// Prediction is a name completion offer.
type Prediction struct {
	Found bool   `json:"found"`
	Name  string `json:"name,omitempty"`
}
