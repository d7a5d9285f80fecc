package game_test

import (
	"fmt"
	"testing"

	"github.com/pawnstorm/guess-the-gm/internal/catalog"
	"github.com/pawnstorm/guess-the-gm/internal/game"
	"github.com/pawnstorm/guess-the-gm/internal/metrics"
	"github.com/pawnstorm/guess-the-gm/internal/session"
	"github.com/pawnstorm/guess-the-gm/internal/wikidata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *catalog.Catalog {
	return catalog.FromRecords([]*wikidata.PlayerRecord{
		{
			Name:               "Fabiano Caruana",
			BirthDate:          "30.7.1992",
			BirthPlace:         "Miami, United States",
			YearOfGM:           2007,
			PeakRating:         2844,
			CitizenshipCountry: "United States of America",
			ChessComName:       []string{"FabianoCaruana"},
			Images:             []string{"http://example.com/fabiano.jpg"},
		},
		{
			Name:               "Hikaru Nakamura",
			BirthDate:          "9.12.1987",
			PeakRating:         2816,
			CitizenshipCountry: "United States of America",
		},
		{
			Name:               "Magnus Carlsen",
			BirthDate:          "30.11.1990",
			BirthPlace:         "Tønsberg, Norway",
			YearOfGM:           2004,
			PeakRating:         2882,
			CitizenshipCountry: "Norway",
			ChessComName:       []string{"MagnusCarlsen"},
			Images:             []string{"http://example.com/magnus.jpg"},
		},
	})
}

// setupEngine wires an engine with real in-memory collaborators.
func setupEngine(t *testing.T) (*game.Engine, *metrics.Mock, *metrics.MockTallyStore) {
	t.Helper()

	sessions := session.NewStore(0)
	t.Cleanup(sessions.Stop)

	metricsMock := metrics.NewMock()
	tallies := metrics.NewMockTallyStore()
	engine := game.New(testCatalog(), sessions, metricsMock, tallies, game.DefaultMaxHint)
	return engine, metricsMock, tallies
}

func TestStartShowsExactlyOneLine(t *testing.T) {
	engine, metricsMock, _ := setupEngine(t)

	display := engine.Start(5)
	require.Len(t, display.Lines, 1)
	assert.Equal(t, "Peak rating", display.Lines[0].Category)
	// game 5 against 3 players lands on ordinal 2: Magnus Carlsen.
	assert.Equal(t, "2882", display.Lines[0].Answer)
	assert.True(t, display.Lines[0].Animated)
	assert.False(t, display.ShowImage)
	assert.Equal(t, 1, metricsMock.GamesStarted())
}

func TestRevealProgression(t *testing.T) {
	engine, _, _ := setupEngine(t)
	engine.Start(5)

	wantCategories := []string{"Peak rating", "Birth date", "Year of GM title", "Citizenship", "Birth place", "Chess.com username"}

	// Hint levels 2 through 6 reveal one more line each.
	for level := 2; level <= 6; level++ {
		resp := engine.Reveal(5)
		require.Equal(t, game.OutcomeOK, resp.Outcome, "level %d", level)
		require.Len(t, resp.Display.Lines, level)

		for i, line := range resp.Display.Lines {
			assert.Equal(t, wantCategories[i], line.Category)
			assert.Equal(t, i == level-1, line.Animated, "only the newest line animates at level %d", level)
		}

		if level < 6 {
			assert.False(t, resp.Display.ShowImage, "image stays hidden before the last category")
		} else {
			assert.True(t, resp.Display.ShowImage, "image appears with the last category")
			assert.Equal(t, "http://example.com/magnus.jpg", resp.Display.Image)
		}
	}

	// The seventh level is the image step: same six lines, image kept.
	resp := engine.Reveal(5)
	require.Equal(t, game.OutcomeOK, resp.Outcome)
	assert.Len(t, resp.Display.Lines, 6)
	assert.True(t, resp.Display.ShowImage)

	// Past the image step the game is lost and the truth comes out.
	resp = engine.Reveal(5)
	require.Equal(t, game.OutcomeExhausted, resp.Outcome)
	require.NotNil(t, resp.Result)
	assert.False(t, resp.Result.Success)
	assert.Equal(t, "Magnus Carlsen", resp.Result.Player.Name)
	assert.Len(t, resp.Result.Player.Lines, 6)
	assert.Equal(t, "http://example.com/magnus.jpg", resp.Result.Player.Image)
}

func TestRevealWithoutStart(t *testing.T) {
	engine, _, _ := setupEngine(t)

	resp := engine.Reveal(99)
	assert.Equal(t, game.OutcomeNoSession, resp.Outcome)
	assert.Nil(t, resp.Display)
	assert.Nil(t, resp.Result)
}

func TestSelectionIsDeterministic(t *testing.T) {
	engine, _, _ := setupEngine(t)

	first := engine.Start(5)
	second := engine.Start(5)
	assert.Equal(t, first, second)

	// Same ordinal arithmetic: 2 mod 3 == 5 mod 3.
	assert.Equal(t, engine.Start(2), engine.Start(5))
}

func TestAnswer(t *testing.T) {
	engine, metricsMock, tallies := setupEngine(t)
	engine.Start(5)

	t.Run("case-insensitive match wins", func(t *testing.T) {
		resp := engine.Answer(5, "mAgNuS cArLsEn")
		require.Equal(t, game.OutcomeCorrect, resp.Outcome)
		require.NotNil(t, resp.Result)
		assert.True(t, resp.Result.Success)
		assert.Equal(t, "Magnus Carlsen", resp.Result.Player.Name)
		assert.Len(t, resp.Result.Player.Lines, 6)
		assert.Equal(t, "http://example.com/magnus.jpg", resp.Result.Player.Image)
		assert.NotEmpty(t, resp.Result.Time)
	})

	t.Run("wrong guess is the incorrect outcome", func(t *testing.T) {
		resp := engine.Answer(5, "Hikaru Nakamura")
		assert.Equal(t, game.OutcomeIncorrect, resp.Outcome)
		assert.Nil(t, resp.Result)
	})

	assert.Equal(t, 1, metricsMock.AnswersCorrect())
	assert.Equal(t, 1, metricsMock.AnswersIncorrect())

	all, err := tallies.GetAll()
	require.NoError(t, err)
	assert.Equal(t, 2, all[metrics.TallyAnswersTotal])
	assert.Equal(t, 1, all[metrics.TallyAnswersCorrect])
}

func TestAnswerWithoutSessionHasNoSolveTime(t *testing.T) {
	engine, _, _ := setupEngine(t)

	resp := engine.Answer(5, "Magnus Carlsen")
	require.Equal(t, game.OutcomeCorrect, resp.Outcome)
	assert.Empty(t, resp.Result.Time)
}

func TestSkipRevealsAnswerWithoutWin(t *testing.T) {
	engine, metricsMock, _ := setupEngine(t)
	engine.Start(5)

	result := engine.Skip(5)
	assert.False(t, result.Success)
	assert.Equal(t, "Magnus Carlsen", result.Player.Name)
	assert.Equal(t, 1, metricsMock.GamesExhausted())
}

func TestChessComFallback(t *testing.T) {
	engine, _, _ := setupEngine(t)

	// game 4 mod 3 = 1: Hikaru Nakamura, who has no chess.com handle here.
	result := engine.Skip(4)
	require.Len(t, result.Player.Lines, 6)
	assert.Equal(t, "Unknown", result.Player.Lines[5].Answer)
	assert.Equal(t, "", result.Player.Image)
}

func TestConfiguredMaxHintBoundsTermination(t *testing.T) {
	sessions := session.NewStore(0)
	t.Cleanup(sessions.Stop)

	// Five categories plus the image step.
	engine := game.New(testCatalog(), sessions, metrics.NewMock(), metrics.NewMockTallyStore(), 6)
	engine.Start(5)

	var lastOK int
	for i := 2; ; i++ {
		resp := engine.Reveal(5)
		if resp.Outcome == game.OutcomeExhausted {
			break
		}
		require.Equal(t, game.OutcomeOK, resp.Outcome)
		assert.LessOrEqual(t, len(resp.Display.Lines), 5, "a 6-hint deployment reveals at most five categories")
		lastOK = i
	}
	assert.Equal(t, 6, lastOK, fmt.Sprintf("hint levels up to the configured bound succeed, got %d", lastOK))
}

func TestPredictPassthrough(t *testing.T) {
	engine, metricsMock, _ := setupEngine(t)

	prediction := engine.Predict("Mag")
	assert.True(t, prediction.Found)
	assert.Equal(t, "Magnus Carlsen", prediction.Name)

	prediction = engine.Predict("ab")
	assert.False(t, prediction.Found)

	assert.Equal(t, 2, metricsMock.Predictions())
}

func TestResetDropsSession(t *testing.T) {
	engine, _, _ := setupEngine(t)
	engine.Start(5)
	require.Equal(t, 1, engine.SessionCount())

	engine.Reset(5)
	assert.Equal(t, 0, engine.SessionCount())
	assert.Equal(t, game.OutcomeNoSession, engine.Reveal(5).Outcome)
}
