package wikidata

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
)

// ErrMalformedDump marks an input document that could not be decoded at all.
// The pipeline never recovers from it; no partial catalog is ever written.
var ErrMalformedDump = errors.New("malformed wikidata dump")

// ParseDump decodes the raw export into its statement sequence, preserving
// input order.
func ParseDump(data []byte) ([]Statement, error) {
	var statements []Statement
	if err := json.Unmarshal(data, &statements); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDump, err)
	}
	return statements, nil
}

// BuildCatalog folds the statement sequence into one PlayerRecord per distinct
// subject. Statement order only affects last-write-wins fields (citizenship,
// sport country, birth place); all other merges are order-independent.
//
// Unknown predicate labels are skipped so that new export columns do not break
// existing deployments. Unparsable dates are fatal for the whole run: there is
// no fallback value a player profile could carry instead.
func BuildCatalog(statements []Statement) (map[string]*PlayerRecord, error) {
	players := make(map[string]*PlayerRecord)

	for _, stmt := range statements {
		player, ok := players[stmt.PlayerLabel]
		if !ok {
			player = &PlayerRecord{Name: stmt.PlayerLabel}
			players[stmt.PlayerLabel] = player
		}

		switch stmt.Predicate {
		case PredicateLichessUsername:
			player.LichessName = appendUnique(player.LichessName, stmt.Value)

		case PredicateChessComID:
			player.ChessComName = appendUnique(player.ChessComName, stmt.Value)

		case PredicateChessTitle:
			if stmt.Value != TitleGrandmaster {
				continue
			}
			// The export guarantees a qualifier date on every Grandmaster
			// title statement; its absence is a broken dump, not a
			// recoverable per-player case.
			if stmt.QualifierValue == nil {
				return nil, fmt.Errorf("grandmaster title statement for %q is missing its date qualifier", stmt.PlayerLabel)
			}
			date, err := time.Parse(time.RFC3339, *stmt.QualifierValue)
			if err != nil {
				return nil, fmt.Errorf("parsing GM title date for %q: %w", stmt.PlayerLabel, err)
			}
			player.YearOfGM = date.Year()

		case PredicateEloRating:
			rating, err := strconv.ParseUint(stmt.Value, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("parsing Elo rating %q for %q: %w", stmt.Value, stmt.PlayerLabel, err)
			}
			if uint32(rating) > player.PeakRating {
				player.PeakRating = uint32(rating)
			}

		case PredicateBirthPlace:
			player.BirthPlace = stmt.Value
			if stmt.QualifierLabel != nil && stmt.QualifierValue != nil {
				player.BirthPlace += ", " + *stmt.QualifierValue
			}

		case PredicateBirthDate:
			date, err := time.Parse(time.RFC3339, stmt.Value)
			if err != nil {
				return nil, fmt.Errorf("parsing birth date for %q: %w", stmt.PlayerLabel, err)
			}
			player.BirthDate = fmt.Sprintf("%d.%d.%d", date.Day(), int(date.Month()), date.Year())

		case PredicateSportCountry:
			player.SportCountry = stmt.Value

		case PredicateCitizenship:
			player.CitizenshipCountry = stmt.Value

		case PredicateImage:
			player.Images = appendUnique(player.Images, stmt.Value)

		default:
			log.Debug("Skipping unmapped predicate", "predicate", stmt.Predicate, "player", stmt.PlayerLabel)
		}
	}

	return players, nil
}

// appendUnique keeps set semantics while preserving first-seen order, so
// repeated pipeline runs on the same dump produce identical records.
func appendUnique(values []string, value string) []string {
	for _, v := range values {
		if v == value {
			return values
		}
	}
	return append(values, value)
}
