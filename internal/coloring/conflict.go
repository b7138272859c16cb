package coloring

import "svw.info/mapcolor/internal/domain"

// HasConflict reports whether any region adjacent to regionID currently
// holds color. Direct adjacency only: a color merely reachable through a
// chain of neighbors is not a conflict.
func (s *BacktrackingColorer) HasConflict(regionID string, color int, regions []*domain.Region) bool {
	r := domain.RegionByID(regions, regionID)
	if r == nil || color == 0 {
		return false
	}
	for nb := range r.Adjacent {
		if other := domain.RegionByID(regions, nb); other != nil && other.Color == color {
			return true
		}
	}
	return false
}

// Attempt evaluates a proposed move without mutating any region. On a
// conflict the move is rejected; otherwise the caller may commit the color.
func Attempt(regionID string, color int, regions []*domain.Region) domain.AttemptResult {
	s := BacktrackingColorer{}
	if s.HasConflict(regionID, color, regions) {
		return domain.AttemptResult{Accepted: false, Conflict: true}
	}
	return domain.AttemptResult{Accepted: true, Conflict: false}
}

// IsComplete reports whether every region holds a color.
func IsComplete(regions []*domain.Region) bool {
	for _, r := range regions {
		if r.Color == 0 {
			return false
		}
	}
	return len(regions) > 0
}

// DistinctColors returns the number of distinct non-zero colors in use.
func DistinctColors(regions []*domain.Region) int {
	seen := make(map[int]bool)
	for _, r := range regions {
		if r.Color != 0 {
			seen[r.Color] = true
		}
	}
	return len(seen)
}
