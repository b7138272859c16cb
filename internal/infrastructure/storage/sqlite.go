// Package storage persists puzzles and completion records in SQLite.
// Region geometry is stored as a JSON blob next to the indexed columns used
// for listing and leaderboard queries.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"svw.info/mapcolor/internal/domain"
)

type SQLite struct {
	db *sql.DB
}

var ErrNotFound = errors.New("storage: not found")

// NewSQLite opens (creating if needed) the database at path and applies the
// schema. Use ":memory:" for an ephemeral store.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS puzzles (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		difficulty INTEGER NOT NULL,
		level INTEGER NOT NULL DEFAULT 1,
		min_colors INTEGER NOT NULL,
		data JSON NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS completions (
		id TEXT PRIMARY KEY,
		puzzle_id TEXT,
		seed INTEGER,
		difficulty INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		colors INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_completions_rank
		ON completions(difficulty, duration_ms);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLite) SavePuzzle(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal puzzle: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO puzzles (id, seed, difficulty, level, min_colors, data, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Seed, int(p.Difficulty), p.Level, p.MinColors, data, p.CreatedAt)
	return err
}

func (s *SQLite) LoadPuzzle(ctx context.Context, id string) (*domain.Puzzle, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM puzzles WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query puzzle: %w", err)
	}
	p := &domain.Puzzle{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal puzzle: %w", err)
	}
	return p, nil
}

func (s *SQLite) SaveCompletion(ctx context.Context, c *domain.Completion) error {
	if c == nil || c.ID == "" {
		return errors.New("invalid completion: missing ID")
	}
	created := c.CreatedAt
	if created == 0 {
		created = time.Now().UnixMilli()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO completions (id, puzzle_id, seed, difficulty, duration_ms, colors, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.PuzzleID, c.Seed, int(c.Difficulty), c.DurationMs, c.Colors, created)
	return err
}

// Leaderboard returns the fastest completions for a difficulty, best first.
func (s *SQLite) Leaderboard(ctx context.Context, d domain.Difficulty, limit int) ([]domain.Completion, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, puzzle_id, seed, difficulty, duration_ms, colors, created_at
		FROM completions
		WHERE difficulty = ?
		ORDER BY duration_ms ASC
		LIMIT ?`, int(d), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query completions: %w", err)
	}
	defer rows.Close()

	var out []domain.Completion
	for rows.Next() {
		var c domain.Completion
		var diff int
		if err := rows.Scan(&c.ID, &c.PuzzleID, &c.Seed, &diff, &c.DurationMs, &c.Colors, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		c.Difficulty = domain.Difficulty(diff)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *SQLite) Close() error { return s.db.Close() }
