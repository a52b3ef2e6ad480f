package storage

import (
	"fmt"
	"time"

	"github.com/aetherial/gardens/internal/model"
)

// InsertMemory records gallery metadata for a saved puzzle image.
func (s *Store) InsertMemory(m *model.Memory) error {
	created := m.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}

	_, err := s.db.Exec(`
		INSERT INTO memories (id, filename, puzzle_size, moves, stars, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.Filename, m.PuzzleSize, m.Moves, m.Stars, created)
	if err != nil {
		return fmt.Errorf("failed to insert memory %s: %w", m.ID, err)
	}
	return nil
}

// ListMemories returns all gallery entries, newest first.
func (s *Store) ListMemories() ([]*model.Memory, error) {
	rows, err := s.db.Query(`
		SELECT id, filename, puzzle_size, moves, stars, created_at
		FROM memories ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query memories: %w", err)
	}
	defer rows.Close()

	var memories []*model.Memory
	for rows.Next() {
		m := &model.Memory{}
		if err := rows.Scan(&m.ID, &m.Filename, &m.PuzzleSize, &m.Moves, &m.Stars, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan memory row: %w", err)
		}
		memories = append(memories, m)
	}
	return memories, rows.Err()
}

// DeleteMemory removes a gallery entry by ID. Deleting an unknown ID is an
// error so the UI can tell the user the entry was already gone.
func (s *Store) DeleteMemory(id string) error {
	result, err := s.db.Exec(`DELETE FROM memories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete memory %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("memory not found: %s", id)
	}
	return nil
}
