package bfs

import (
	"sort"

	"github.com/katalvlaran/flarelath/core"
)

// ConnectedComponents partitions the vertices of g into connected components.
//
// Each component is sorted lexicographically and the components are ordered by
// their smallest vertex ID, so the output is fully deterministic. Edge
// orientation is honored as stored: on directed graphs the result is the set of
// forward-reachability classes seeded in vertex order, so callers wanting weak
// components should pass an undirected graph.
//
// Only WithContext and WithFilterNeighbor are meaningful here; hooks fire per
// component traversal.
//
// Complexity: O(V log V + E).
func ConnectedComponents(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]bool, g.VertexCount())
	runOpts := make([]Option, 0, len(opts)+1)
	runOpts = append(runOpts, opts...)
	runOpts = append(runOpts, WithFilterNeighbor(combineSkip(opts, seen)))

	var comps [][]string
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id, runOpts...)
		if err != nil {
			return nil, err
		}
		comp := make([]string, 0, len(res.Order))
		for _, v := range res.Order {
			seen[v] = true
			comp = append(comp, v)
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

// combineSkip wraps the caller's neighbor filter so already-assigned vertices
// are never re-entered from a later seed.
func combineSkip(opts []Option, seen map[string]bool) func(curr, nbr string) bool {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	user := o.FilterNeighbor

	return func(curr, nbr string) bool {
		return !seen[nbr] && user(curr, nbr)
	}
}
