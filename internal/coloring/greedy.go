package coloring

import (
	"sort"

	"svw.info/mapcolor/internal/domain"
)

// GreedyUpperBound colors regions in Welsh-Powell order (descending degree,
// id as tie-break) assigning each the smallest color unused by its already
// colored neighbors, and returns the number of colors consumed. An upper
// bound on the chromatic number, linear in the edge count.
func (s *BacktrackingColorer) GreedyUpperBound(regions []*domain.Region) int {
	if len(regions) == 0 {
		return 0
	}
	ordered := make([]*domain.Region, len(regions))
	copy(ordered, regions)
	sort.Slice(ordered, func(i, j int) bool {
		if len(ordered[i].Adjacent) != len(ordered[j].Adjacent) {
			return len(ordered[i].Adjacent) > len(ordered[j].Adjacent)
		}
		return ordered[i].ID < ordered[j].ID
	})

	assigned := make(map[string]int, len(ordered))
	used := 0
	for _, r := range ordered {
		taken := make(map[int]bool, len(r.Adjacent))
		for nb := range r.Adjacent {
			if c, ok := assigned[nb]; ok {
				taken[c] = true
			}
		}
		c := 1
		for taken[c] {
			c++
		}
		assigned[r.ID] = c
		if c > used {
			used = c
		}
	}
	return used
}
