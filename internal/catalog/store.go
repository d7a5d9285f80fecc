package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pawnstorm/guess-the-gm/internal/wikidata"
)

// store handles all database operations for the player catalog. Set-valued
// fields are kept as JSON columns.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewStore creates a new catalog Store backed by the given database.
func NewStore(db *sql.DB) Store {
	return &store{db: db}
}

// UpsertPlayers writes the full record set in one transaction. Reruns of the
// pipeline against the same dump are idempotent.
func (s *store) UpsertPlayers(players []*wikidata.PlayerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO players (name, birth_date, birth_place, year_of_gm, peak_rating, sport_country, citizenship_country, chess_com_json, lichess_json, images_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			birth_date = excluded.birth_date,
			birth_place = excluded.birth_place,
			year_of_gm = excluded.year_of_gm,
			peak_rating = excluded.peak_rating,
			sport_country = excluded.sport_country,
			citizenship_country = excluded.citizenship_country,
			chess_com_json = excluded.chess_com_json,
			lichess_json = excluded.lichess_json,
			images_json = excluded.images_json;
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, player := range players {
		chessComJSON, err := json.Marshal(player.ChessComName)
		if err != nil {
			tx.Rollback()
			return err
		}
		lichessJSON, err := json.Marshal(player.LichessName)
		if err != nil {
			tx.Rollback()
			return err
		}
		imagesJSON, err := json.Marshal(player.Images)
		if err != nil {
			tx.Rollback()
			return err
		}

		if _, err := stmt.Exec(player.Name, player.BirthDate, player.BirthPlace, player.YearOfGM, player.PeakRating, player.SportCountry, player.CitizenshipCountry, chessComJSON, lichessJSON, imagesJSON); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to upsert player %q: %w", player.Name, err)
		}
	}

	return tx.Commit()
}

// GetAllPlayers reads the persisted catalog back, ordered by name.
func (s *store) GetAllPlayers() ([]*wikidata.PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT name, birth_date, birth_place, year_of_gm, peak_rating, sport_country, citizenship_country, chess_com_json, lichess_json, images_json
		FROM players
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []*wikidata.PlayerRecord
	for rows.Next() {
		var (
			player       wikidata.PlayerRecord
			chessComJSON []byte
			lichessJSON  []byte
			imagesJSON   []byte
		)
		if err := rows.Scan(&player.Name, &player.BirthDate, &player.BirthPlace, &player.YearOfGM, &player.PeakRating, &player.SportCountry, &player.CitizenshipCountry, &chessComJSON, &lichessJSON, &imagesJSON); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(chessComJSON, &player.ChessComName); err != nil {
			return nil, fmt.Errorf("failed to decode chess.com names for %q: %w", player.Name, err)
		}
		if err := json.Unmarshal(lichessJSON, &player.LichessName); err != nil {
			return nil, fmt.Errorf("failed to decode lichess names for %q: %w", player.Name, err)
		}
		if err := json.Unmarshal(imagesJSON, &player.Images); err != nil {
			return nil, fmt.Errorf("failed to decode images for %q: %w", player.Name, err)
		}
		players = append(players, &player)
	}
	return players, rows.Err()
}

// Clear drops every persisted player.
func (s *store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM players")
	return err
}
