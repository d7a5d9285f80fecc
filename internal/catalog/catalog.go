package catalog

import (
	"sort"
	"strings"

	"github.com/pawnstorm/guess-the-gm/internal/wikidata"
)

// minPredictionLength is the shortest partial name Predict will attempt to
// complete.
const minPredictionLength = 3

// Catalog is the full player collection, materialized into a fixed order once
// at load time. Selection by game id depends on that order staying stable
// across process restarts, so it is always name-sorted here rather than
// whatever order the source map or document happened to carry.
//
// A Catalog is read-only after construction and safe for concurrent use.
type Catalog struct {
	players []*wikidata.PlayerRecord
}

// New builds a catalog from a pipeline output mapping.
func New(players map[string]*wikidata.PlayerRecord) *Catalog {
	records := make([]*wikidata.PlayerRecord, 0, len(players))
	for _, p := range players {
		records = append(records, p)
	}
	return FromRecords(records)
}

// FromRecords builds a catalog from an already-materialized record list, e.g.
// a loaded artifact or a database read.
func FromRecords(records []*wikidata.PlayerRecord) *Catalog {
	sorted := make([]*wikidata.PlayerRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return &Catalog{players: sorted}
}

// Size returns the number of players in the catalog.
func (c *Catalog) Size() int {
	return len(c.players)
}

// Players returns the ordered player sequence. Callers must not mutate it.
func (c *Catalog) Players() []*wikidata.PlayerRecord {
	return c.players
}

// Select maps a game id to its target player. The same id always lands on the
// same player for the lifetime of one loaded catalog.
func (c *Catalog) Select(gameID uint32) *wikidata.PlayerRecord {
	if len(c.players) == 0 {
		return nil
	}
	return c.players[int(gameID)%len(c.players)]
}

// Predict completes a partial name to the first matching player, checking
// full names across the whole catalog before falling back to the
// whitespace-delimited tokens of each name. Inputs shorter than three
// characters never produce a prediction.
func (c *Catalog) Predict(partial string) (string, bool) {
	if len(partial) < minPredictionLength {
		return "", false
	}
	partial = strings.ToLower(partial)

	for _, player := range c.players {
		if strings.HasPrefix(strings.ToLower(player.Name), partial) {
			return player.Name, true
		}
	}

	for _, player := range c.players {
		for _, token := range strings.Fields(player.Name) {
			if strings.HasPrefix(strings.ToLower(token), partial) {
				return player.Name, true
			}
		}
	}

	return "", false
}
