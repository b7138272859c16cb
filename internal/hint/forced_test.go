package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/mapcolor/internal/domain"
)

// trianglePuzzle builds a triangle r1-r2-r3 certified at three colors.
func trianglePuzzle() *domain.Puzzle {
	r1 := &domain.Region{ID: "r1", Adjacent: map[string]bool{"r2": true, "r3": true}}
	r2 := &domain.Region{ID: "r2", Adjacent: map[string]bool{"r1": true, "r3": true}}
	r3 := &domain.Region{ID: "r3", Adjacent: map[string]bool{"r1": true, "r2": true}}
	return &domain.Puzzle{
		Regions:   []*domain.Region{r1, r2, r3},
		MinColors: 3,
	}
}

func TestHintForcedMove(t *testing.T) {
	p := trianglePuzzle()
	p.Regions[0].Color = 1
	p.Regions[1].Color = 2

	h, found, err := NewForced().Hint(context.Background(), p)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "r3", h.RegionID)
	assert.Equal(t, 3, h.Color)
	assert.NotEmpty(t, h.Message)
}

func TestHintNoForcedMove(t *testing.T) {
	p := trianglePuzzle()
	p.Regions[0].Color = 1
	// r2 and r3 each still have two legal colors.
	_, found, err := NewForced().Hint(context.Background(), p)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestHintSkipsColoredRegions(t *testing.T) {
	p := trianglePuzzle()
	for _, r := range p.Regions {
		r.Color = 1 // invalid play state, but nothing is blank
	}
	_, found, err := NewForced().Hint(context.Background(), p)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestHintNilPuzzle(t *testing.T) {
	_, found, err := NewForced().Hint(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestHintCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewForced().Hint(ctx, trianglePuzzle())
	assert.ErrorIs(t, err, context.Canceled)
}
