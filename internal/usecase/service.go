package usecase

import (
	"context"
	"errors"

	"svw.info/mapcolor/internal/coloring"
	"svw.info/mapcolor/internal/domain"
	"svw.info/mapcolor/internal/ports"
)

type Service struct {
	Generator ports.Generator
	Colorer   ports.Colorer
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(g ports.Generator, c ports.Colorer, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Generator: g, Colorer: c, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty, level int, boardW, boardH float64) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d, level, boardW, boardH)
}

// Attempt checks a proposed move against the geometric adjacency. The region
// snapshot is never mutated; committing an accepted color is the caller's
// responsibility.
func (u *Service) Attempt(regionID string, color int, regions []*domain.Region) domain.AttemptResult {
	return coloring.Attempt(regionID, color, regions)
}

func (u *Service) Hint(ctx context.Context, p *domain.Puzzle) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, p)
}

func (u *Service) IsComplete(regions []*domain.Region) bool {
	return coloring.IsComplete(regions)
}

func (u *Service) DistinctColors(regions []*domain.Region) int {
	return coloring.DistinctColors(regions)
}

// Persistence
func (u *Service) SavePuzzle(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.SavePuzzle(ctx, p)
}

func (u *Service) LoadPuzzle(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.LoadPuzzle(ctx, id)
}

func (u *Service) RecordCompletion(ctx context.Context, c *domain.Completion) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.SaveCompletion(ctx, c)
}

func (u *Service) Leaderboard(ctx context.Context, d domain.Difficulty, limit int) ([]domain.Completion, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Leaderboard(ctx, d, limit)
}
