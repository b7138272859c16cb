package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/mapcolor/internal/domain"
)

func newStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPuzzleRoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	p := &domain.Puzzle{
		ID:         "p1",
		Seed:       42,
		Difficulty: domain.Hard,
		Level:      3,
		BoardW:     800,
		BoardH:     600,
		MinColors:  3,
		CreatedAt:  1000,
		Regions: []*domain.Region{
			{
				ID:       "r1",
				Vertices: []domain.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}},
				Center:   domain.Point{X: 5, Y: 3},
				Adjacent: map[string]bool{"r2": true},
			},
			{
				ID:       "r2",
				Vertices: []domain.Point{{X: 10, Y: 0}, {X: 20, Y: 0}, {X: 15, Y: 8}},
				Center:   domain.Point{X: 15, Y: 3},
				Adjacent: map[string]bool{"r1": true},
			},
		},
	}
	require.NoError(t, s.SavePuzzle(ctx, p))

	got, err := s.LoadPuzzle(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, p.Seed, got.Seed)
	assert.Equal(t, p.Difficulty, got.Difficulty)
	assert.Equal(t, p.MinColors, got.MinColors)
	require.Len(t, got.Regions, 2)
	assert.Equal(t, p.Regions[0].Vertices, got.Regions[0].Vertices)
	assert.Equal(t, p.Regions[0].Adjacent, got.Regions[0].Adjacent)
}

func TestLoadPuzzleMissing(t *testing.T) {
	s := newStore(t)
	_, err := s.LoadPuzzle(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSavePuzzleInvalid(t *testing.T) {
	s := newStore(t)
	assert.Error(t, s.SavePuzzle(context.Background(), nil))
	assert.Error(t, s.SavePuzzle(context.Background(), &domain.Puzzle{}))
}

func TestLeaderboardOrderAndFilter(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	recs := []*domain.Completion{
		{ID: "c1", Difficulty: domain.Hard, DurationMs: 9000, Colors: 4},
		{ID: "c2", Difficulty: domain.Hard, DurationMs: 3000, Colors: 4},
		{ID: "c3", Difficulty: domain.Hard, DurationMs: 6000, Colors: 5},
		{ID: "c4", Difficulty: domain.Easy, DurationMs: 1000, Colors: 3},
	}
	for _, r := range recs {
		require.NoError(t, s.SaveCompletion(ctx, r))
	}

	top, err := s.Leaderboard(ctx, domain.Hard, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "c2", top[0].ID, "fastest first")
	assert.Equal(t, "c3", top[1].ID)

	easy, err := s.Leaderboard(ctx, domain.Easy, 10)
	require.NoError(t, err)
	require.Len(t, easy, 1)
	assert.Equal(t, "c4", easy[0].ID)
	assert.NotZero(t, easy[0].CreatedAt, "created_at is defaulted on save")
}

func TestLeaderboardDefaultLimit(t *testing.T) {
	s := newStore(t)
	out, err := s.Leaderboard(context.Background(), domain.Medium, 0)
	require.NoError(t, err)
	assert.Empty(t, out)
}
