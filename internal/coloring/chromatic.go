package coloring

import (
	"context"
	"sort"
	"time"

	"svw.info/mapcolor/internal/domain"
	"svw.info/mapcolor/internal/ports"
)

// BacktrackingColorer is the exact solver: it certifies the minimum number
// of colors by depth-first search with backtracking. Exponential in the
// worst case, which is acceptable at puzzle scale (at most ~16 regions) and
// because planar-like subdivisions color within a handful of colors.
type BacktrackingColorer struct{}

func NewBacktrackingColorer() *BacktrackingColorer { return &BacktrackingColorer{} }

// ChromaticNumber returns the smallest k for which a complete k-coloring of
// the regions exists. Regions are visited in ascending id order and colors
// tried in ascending index order, so the search is deterministic. The loop
// always terminates: k = len(regions) admits the trivial one-color-each
// assignment.
func (s *BacktrackingColorer) ChromaticNumber(ctx context.Context, regions []*domain.Region) (int, ports.Stats, error) {
	start := time.Now()
	n := len(regions)
	if n == 0 {
		return 0, ports.Stats{Duration: time.Since(start)}, nil
	}
	_, adj := index(regions)
	nodes := 0
	for k := 1; k <= n; k++ {
		colors := make([]int, n)
		var dfs func(i int) bool
		dfs = func(i int) bool {
			if ctx.Err() != nil {
				return false
			}
			if i == n {
				return true
			}
			for c := 1; c <= k; c++ {
				nodes++
				if neighborHolds(adj[i], colors, c) {
					continue
				}
				colors[i] = c
				if dfs(i + 1) {
					return true
				}
				colors[i] = 0
			}
			return false
		}
		if dfs(0) {
			return k, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
		}
		if err := ctx.Err(); err != nil {
			return 0, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
	}
	return n, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

func neighborHolds(neighbors []int, colors []int, c int) bool {
	for _, nb := range neighbors {
		if colors[nb] == c {
			return true
		}
	}
	return false
}

// index maps the region collection to a fixed id ordering and an
// integer-indexed adjacency list.
func index(regions []*domain.Region) ([]string, [][]int) {
	ids := make([]string, len(regions))
	for i, r := range regions {
		ids[i] = r.ID
	}
	sort.Strings(ids)
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	adj := make([][]int, len(ids))
	for _, r := range regions {
		i := pos[r.ID]
		for nb := range r.Adjacent {
			if j, ok := pos[nb]; ok {
				adj[i] = append(adj[i], j)
			}
		}
		sort.Ints(adj[i])
	}
	return ids, adj
}
