package ports

import (
	"context"
	"time"

	"svw.info/mapcolor/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Generator realizes a seeded puzzle end to end: graph synthesis, geometric
// partitioning, adjacency resolution, and chromatic certification.
type Generator interface {
	Generate(ctx context.Context, seed int64, d domain.Difficulty, level int, boardW, boardH float64) (*domain.Puzzle, Stats, error)
}

// Colorer answers coloring questions over a region snapshot.
type Colorer interface {
	ChromaticNumber(ctx context.Context, regions []*domain.Region) (int, Stats, error)
	GreedyUpperBound(regions []*domain.Region) int
	HasConflict(regionID string, color int, regions []*domain.Region) bool
}

// Hinter returns the next forced coloring move, if any.
type Hinter interface {
	Hint(ctx context.Context, p *domain.Puzzle) (domain.Hint, bool, error)
}

// Storage persists puzzles and completion records.
type Storage interface {
	SavePuzzle(ctx context.Context, p *domain.Puzzle) error
	LoadPuzzle(ctx context.Context, id string) (*domain.Puzzle, error)
	SaveCompletion(ctx context.Context, c *domain.Completion) error
	Leaderboard(ctx context.Context, d domain.Difficulty, limit int) ([]domain.Completion, error)
}
