// Package adjacency derives which regions share a border purely from their
// polygon geometry. The result supersedes the synthesizer's abstract edges:
// geometric subdivision does not preserve them exactly, so geometry is the
// ground truth for gameplay.
package adjacency

import (
	"math"

	"svw.info/mapcolor/internal/domain"
	"svw.info/mapcolor/internal/geom"
)

const (
	// borderTolerance is the maximum gap, in board units, between vertices
	// or edges of two regions still considered to share a border.
	borderTolerance = 15.0
	// rejectFactor scales the radius-sum cutoff of the cheap pair rejection.
	rejectFactor = 2.2
)

// Resolve recomputes the Adjacent set of every region in place. Existing
// sets are discarded first, so calling it twice on the same geometry yields
// identical results.
func Resolve(regions []*domain.Region) {
	radii := make([]float64, len(regions))
	for i, r := range regions {
		r.Adjacent = make(map[string]bool)
		radii[i] = geom.MaxRadius(r.Vertices, r.Center)
	}
	for i := 0; i < len(regions); i++ {
		for j := i + 1; j < len(regions); j++ {
			a, b := regions[i], regions[j]
			if geom.Dist(a.Center, b.Center) > rejectFactor*(radii[i]+radii[j]) {
				continue
			}
			if touches(a, b) {
				a.Adjacent[b.ID] = true
				b.Adjacent[a.ID] = true
			}
		}
	}
	repairIsolated(regions)
}

// touches reports whether two regions share a border: any vertex pair within
// tolerance, or any edge pair closer than tolerance.
func touches(a, b *domain.Region) bool {
	for _, va := range a.Vertices {
		for _, vb := range b.Vertices {
			if geom.Dist(va, vb) < borderTolerance {
				return true
			}
		}
	}
	na, nb := len(a.Vertices), len(b.Vertices)
	for i := 0; i < na; i++ {
		a1 := a.Vertices[i]
		a2 := a.Vertices[(i+1)%na]
		for j := 0; j < nb; j++ {
			b1 := b.Vertices[j]
			b2 := b.Vertices[(j+1)%nb]
			if geom.SegmentsDist(a1, a2, b1, b2) < borderTolerance {
				return true
			}
		}
	}
	return false
}

// repairIsolated connects any region left without neighbors to its
// nearest-centroid neighbor, both ways. The coloring solver needs the
// adjacency graph free of isolated vertices to certify a meaningful minimum.
func repairIsolated(regions []*domain.Region) {
	if len(regions) < 2 {
		return
	}
	for _, r := range regions {
		if len(r.Adjacent) > 0 {
			continue
		}
		var nearest *domain.Region
		best := math.Inf(1)
		for _, other := range regions {
			if other.ID == r.ID {
				continue
			}
			if d := geom.Dist(r.Center, other.Center); d < best {
				nearest, best = other, d
			}
		}
		r.Adjacent[nearest.ID] = true
		nearest.Adjacent[r.ID] = true
	}
}
