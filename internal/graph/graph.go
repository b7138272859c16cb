// Package graph synthesizes the abstract connected graph a puzzle starts
// from. The edge count is capped by the planar bound 3n-6, a structural
// heuristic only; the geometric partitioner is what produces the authoritative
// adjacency later.
package graph

import (
	"fmt"
	"math/rand"
)

// Node is one abstract puzzle unit prior to geometric realization.
type Node struct {
	ID        string
	Neighbors map[string]bool
}

// Graph maps node id to node. Edges are always added symmetrically.
type Graph struct {
	Nodes map[string]*Node
	ids   []string // insertion order, for deterministic iteration
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{Nodes: make(map[string]*Node)}
}

// AddNode inserts an isolated node. Duplicate ids are ignored.
func (g *Graph) AddNode(id string) {
	if _, ok := g.Nodes[id]; ok {
		return
	}
	g.Nodes[id] = &Node{ID: id, Neighbors: make(map[string]bool)}
	g.ids = append(g.ids, id)
}

// AddEdge connects a and b both ways. Self-edges are ignored.
func (g *Graph) AddEdge(a, b string) {
	if a == b {
		return
	}
	na, oka := g.Nodes[a]
	nb, okb := g.Nodes[b]
	if !oka || !okb {
		return
	}
	na.Neighbors[b] = true
	nb.Neighbors[a] = true
}

// HasEdge reports whether a and b are adjacent.
func (g *Graph) HasEdge(a, b string) bool {
	n, ok := g.Nodes[a]
	return ok && n.Neighbors[b]
}

// IDs returns node ids in insertion order.
func (g *Graph) IDs() []string { return g.ids }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, n := range g.Nodes {
		total += len(n.Neighbors)
	}
	return total / 2
}

// Connected reports whether every node is reachable from the first.
func (g *Graph) Connected() bool {
	if len(g.ids) <= 1 {
		return true
	}
	seen := map[string]bool{g.ids[0]: true}
	queue := []string{g.ids[0]}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for nb := range g.Nodes[cur].Neighbors {
			if !seen[nb] {
				seen[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return len(seen) == len(g.ids)
}

// Synthesize builds a random connected graph over nodeCount nodes.
// targetConnectivity is the desired average number of extra edges per node
// beyond the spanning tree. The rng is threaded explicitly so generation is
// reproducible from a seed.
func Synthesize(rng *rand.Rand, nodeCount int, targetConnectivity float64) *Graph {
	g := New()
	if nodeCount <= 0 {
		return g
	}
	for i := 0; i < nodeCount; i++ {
		g.AddNode(fmt.Sprintf("r%d", i+1))
	}
	// Random spanning tree: attach each node to a uniform earlier one.
	// Connectivity holds in a single pass.
	for i := 1; i < nodeCount; i++ {
		g.AddEdge(g.ids[i], g.ids[rng.Intn(i)])
	}
	if nodeCount < 3 {
		return g
	}

	// Extra edges up to the planar ceiling minus the tree edges already used.
	maxExtra := 3*nodeCount - 6 - (nodeCount - 1)
	want := int(targetConnectivity * float64(nodeCount) / 2)
	if want > maxExtra {
		want = maxExtra
	}
	added := 0
	for attempt := 0; attempt < want*20 && added < want; attempt++ {
		a := g.ids[rng.Intn(nodeCount)]
		b := g.ids[rng.Intn(nodeCount)]
		if a == b || g.HasEdge(a, b) {
			continue
		}
		g.AddEdge(a, b)
		added++
	}
	return g
}
