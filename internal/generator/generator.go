// Package generator orchestrates puzzle creation: graph synthesis, geometric
// partitioning, adjacency resolution, and chromatic certification, all driven
// by a single seeded rng so a puzzle is reproducible from its seed.
package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"svw.info/mapcolor/internal/adjacency"
	"svw.info/mapcolor/internal/domain"
	"svw.info/mapcolor/internal/graph"
	"svw.info/mapcolor/internal/partition"
	"svw.info/mapcolor/internal/ports"
)

// PuzzleGenerator wires the pipeline behind the ports.Generator contract.
type PuzzleGenerator struct {
	Colorer ports.Colorer
}

// NewPuzzleGenerator returns a generator certifying minimum colors with the
// given solver.
func NewPuzzleGenerator(c ports.Colorer) *PuzzleGenerator {
	return &PuzzleGenerator{Colorer: c}
}

// ConfigFor maps a difficulty tier and progression level to generation
// parameters. Region count grows with level and is capped at 16, where the
// exact solver still answers within interactive budget.
func ConfigFor(d domain.Difficulty, level int) domain.Config {
	if level < 1 {
		level = 1
	}
	var regions int
	var complexity float64
	switch d {
	case domain.Easy:
		regions, complexity = 4, 0.25
	case domain.Hard:
		regions, complexity = 8, 0.65
	case domain.Expert:
		regions, complexity = 10, 0.85
	default:
		regions, complexity = 6, 0.45
	}
	regions += (level - 1) / 2
	if regions > 16 {
		regions = 16
	}
	complexity += 0.02 * float64(level-1)
	if complexity > 1 {
		complexity = 1
	}
	return domain.Config{RegionCount: regions, Complexity: complexity}
}

func connectivityFor(d domain.Difficulty) float64 {
	switch d {
	case domain.Easy:
		return 0.5
	case domain.Hard:
		return 1.5
	case domain.Expert:
		return 2.0
	default:
		return 1.0
	}
}

// Generate produces a playable region set plus its certified minimum color
// count. Generation itself never fails; the only error path is context
// cancellation during certification.
func (g *PuzzleGenerator) Generate(ctx context.Context, seed int64, d domain.Difficulty, level int, boardW, boardH float64) (*domain.Puzzle, ports.Stats, error) {
	rng := rand.New(rand.NewSource(seed))
	cfg := ConfigFor(d, level)

	gr := graph.Synthesize(rng, cfg.RegionCount, connectivityFor(d))
	ids := gr.IDs()
	protos := partition.Partition(rng, len(ids), boardW, boardH, cfg.Complexity)

	regions := make([]*domain.Region, len(ids))
	for i, id := range ids {
		regions[i] = &domain.Region{
			ID:       id,
			Vertices: protos[i].Vertices,
			Center:   protos[i].Center,
			Adjacent: make(map[string]bool),
		}
	}
	adjacency.Resolve(regions)

	minColors, st, err := g.Colorer.ChromaticNumber(ctx, regions)
	if err != nil {
		return nil, st, err
	}
	p := &domain.Puzzle{
		ID:         uuid.NewString(),
		Seed:       seed,
		Difficulty: d,
		Level:      level,
		BoardW:     boardW,
		BoardH:     boardH,
		Regions:    regions,
		MinColors:  minColors,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, st, nil
}
