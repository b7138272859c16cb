package partition

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/mapcolor/internal/geom"
)

const (
	boardW = 800.0
	boardH = 600.0
)

func TestPartitionCountAndSimplicity(t *testing.T) {
	for _, count := range []int{1, 2, 4, 8, 16} {
		for _, complexity := range []float64{0, 0.5, 1} {
			name := fmt.Sprintf("count=%d/complexity=%.1f", count, complexity)
			t.Run(name, func(t *testing.T) {
				for seed := int64(1); seed <= 5; seed++ {
					rng := rand.New(rand.NewSource(seed))
					protos := Partition(rng, count, boardW, boardH, complexity)
					require.Len(t, protos, count, "seed=%d", seed)
					for i, p := range protos {
						require.GreaterOrEqual(t, len(p.Vertices), 3, "seed=%d region=%d", seed, i)
						assert.True(t, geom.IsSimple(p.Vertices), "seed=%d region=%d self-intersects", seed, i)
						assert.True(t, geom.PointInPolygon(p.Center, p.Vertices), "seed=%d region=%d center outside", seed, i)
						assert.Greater(t, geom.PolygonArea(p.Vertices), 0.0, "seed=%d region=%d", seed, i)
					}
				}
			})
		}
	}
}

func TestPartitionCoversBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	protos := Partition(rng, 8, boardW, boardH, 0.8)
	total := 0.0
	for _, p := range protos {
		total += geom.PolygonArea(p.Vertices)
		for _, v := range p.Vertices {
			assert.GreaterOrEqual(t, v.X, -1.0)
			assert.LessOrEqual(t, v.X, boardW+1)
			assert.GreaterOrEqual(t, v.Y, -1.0)
			assert.LessOrEqual(t, v.Y, boardH+1)
		}
	}
	// Pieces tile the organic perimeter, which sits just inside the board.
	assert.Greater(t, total, 0.7*boardW*boardH)
	assert.Less(t, total, boardW*boardH)
}

func TestPartitionDeterministic(t *testing.T) {
	a := Partition(rand.New(rand.NewSource(123)), 10, boardW, boardH, 0.6)
	b := Partition(rand.New(rand.NewSource(123)), 10, boardW, boardH, 0.6)
	require.Equal(t, a, b)
}

func TestPartitionDegenerate(t *testing.T) {
	assert.Nil(t, Partition(rand.New(rand.NewSource(1)), 0, boardW, boardH, 0.5))

	protos := Partition(rand.New(rand.NewSource(1)), 1, boardW, boardH, 0.5)
	require.Len(t, protos, 1)
	assert.Len(t, protos[0].Vertices, perimeterSteps)
}

func TestDiagonalSplitAlwaysSucceeds(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	poly := perimeter(rng, boardW, boardH, 1)
	a, b := diagonalSplit(poly)
	assert.True(t, geom.IsSimple(a))
	assert.True(t, geom.IsSimple(b))
	parent := geom.PolygonArea(poly)
	assert.InDelta(t, parent, geom.PolygonArea(a)+geom.PolygonArea(b), parent*0.01)
}
