package centrality

import (
	"github.com/katalvlaran/flarelath/bfs"
	"github.com/katalvlaran/flarelath/core"
)

// Harmonic returns harmonic centrality for every vertex of g.
// Terms are summed by increasing distance, so vertices with the same distance
// profile score exactly equal.
func Harmonic(g *core.Graph) (map[string]float64, error) {
	return fromLayers(g, func(layers []int, _ int) float64 {
		var h float64
		for d := 1; d < len(layers); d++ {
			h += float64(layers[d]) / float64(d)
		}
		return h
	})
}

// Closeness returns Wasserman–Faust scaled closeness centrality for every
// vertex of g, computed over distances from the vertex outward.
func Closeness(g *core.Graph) (map[string]float64, error) {
	return fromLayers(g, func(layers []int, n int) float64 {
		var total, reached int
		for d, count := range layers {
			total += d * count
			reached += count
		}
		reach := float64(reached - 1)
		if total == 0 || n <= 1 {
			return 0
		}
		return reach / float64(total) * reach / float64(n-1)
	})
}

// fromLayers runs one BFS per vertex, counting visited vertices per hop depth,
// and folds the layer counts into a score. layers[0] is always 1.
func fromLayers(g *core.Graph, fold func(layers []int, n int) float64) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Vertices()
	out := make(map[string]float64, len(ids))
	for _, v := range ids {
		var layers []int
		count := func(_ string, depth int) error {
			for len(layers) <= depth {
				layers = append(layers, 0)
			}
			layers[depth]++
			return nil
		}
		if _, err := bfs.BFS(g, v, bfs.WithOnVisit(count)); err != nil {
			return nil, err
		}
		out[v] = fold(layers, len(ids))
	}

	return out, nil
}
