package catalog

import "github.com/pawnstorm/guess-the-gm/internal/wikidata"

// Store defines the database operations for the persisted player catalog.
type Store interface {
	UpsertPlayers(players []*wikidata.PlayerRecord) error
	GetAllPlayers() ([]*wikidata.PlayerRecord, error)
	Clear() error
}
