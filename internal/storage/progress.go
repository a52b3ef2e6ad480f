package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/aetherial/gardens/internal/model"
)

// LoadProgress reads all per-size bests from the database.
func (s *Store) LoadProgress() (*model.Progress, error) {
	rows, err := s.db.Query(`SELECT size_key, best_moves, best_stars FROM progress`)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer rows.Close()

	progress := model.NewProgress()
	for rows.Next() {
		var sizeKey string
		var bestMoves sql.NullInt64
		var bestStars int
		if err := rows.Scan(&sizeKey, &bestMoves, &bestStars); err != nil {
			return nil, fmt.Errorf("failed to scan progress row: %w", err)
		}
		if bestMoves.Valid {
			progress.BestMoves[sizeKey] = int(bestMoves.Int64)
		}
		if bestStars > 0 {
			progress.BestStars[sizeKey] = bestStars
		}
	}
	return progress, rows.Err()
}

// SaveBest upserts the bests for one board size. A negative move count is
// stored as NULL, meaning "no completed run yet". Callers decide whether a
// result is an improvement; the store writes what it is given.
func (s *Store) SaveBest(sizeKey string, bestMoves, bestStars int) error {
	var moves sql.NullInt64
	if bestMoves >= 0 {
		moves = sql.NullInt64{Int64: int64(bestMoves), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO progress (size_key, best_moves, best_stars, last_updated)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(size_key) DO UPDATE SET
			best_moves = excluded.best_moves,
			best_stars = excluded.best_stars,
			last_updated = excluded.last_updated`,
		sizeKey, moves, bestStars, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save progress for %s: %w", sizeKey, err)
	}
	return nil
}

// legacySave mirrors the old save_data.json layout. Earlier builds also used
// flat "best_3x3" / "stars_3x3" keys, which json.RawMessage catches below.
type legacySave struct {
	BestMoves map[string]int `json:"best_moves"`
	BestStars map[string]int `json:"best_stars"`
}

// MigrateLegacyJSON imports bests from an old save_data.json file if one
// exists, then renames it so the import runs only once. A missing file is
// not an error.
func (s *Store) MigrateLegacyJSON(jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read legacy save file: %w", err)
	}

	var legacy legacySave
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return fmt.Errorf("failed to parse legacy save file: %w", err)
	}
	if legacy.BestMoves == nil {
		legacy.BestMoves = make(map[string]int)
	}
	if legacy.BestStars == nil {
		legacy.BestStars = make(map[string]int)
	}

	// Pre-refactor saves used flat keys like "best_3x3" and "stars_3x3".
	// When both forms are present the flat keys win, as they did in the
	// importer these files came from; a JSON null means "no value".
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(raw, &flat); err == nil {
		for _, size := range []string{"3x3", "4x4", "5x5"} {
			if v, ok := flat["best_"+size]; ok && string(v) != "null" {
				var moves int
				if json.Unmarshal(v, &moves) == nil {
					legacy.BestMoves[size] = moves
				}
			}
			if v, ok := flat["stars_"+size]; ok && string(v) != "null" {
				var stars int
				if json.Unmarshal(v, &stars) == nil {
					legacy.BestStars[size] = stars
				}
			}
		}
	}

	existing, err := s.LoadProgress()
	if err != nil {
		return err
	}

	merged := make(map[string]bool)
	for key := range legacy.BestMoves {
		merged[key] = true
	}
	for key := range legacy.BestStars {
		merged[key] = true
	}

	for key := range merged {
		moves, hasMoves := legacy.BestMoves[key]
		if best := existing.BestMovesFor(key); hasMoves && best != -1 && best <= moves {
			moves = best
		} else if !hasMoves {
			moves = existing.BestMovesFor(key)
		}

		stars := legacy.BestStars[key]
		if best := existing.BestStarsFor(key); best > stars {
			stars = best
		}

		if err := s.SaveBest(key, moves, stars); err != nil {
			return err
		}
	}

	// Rename rather than delete so a failed import can be retried by hand.
	return os.Rename(jsonPath, jsonPath+".migrated")
}
