package centrality

import (
	"github.com/katalvlaran/flarelath/core"
)

// Betweenness returns normalized shortest-path betweenness centrality for
// every vertex of g using Brandes' accumulation over BFS layers.
//
// Each ordered source is processed once, so on undirected graphs every pair is
// counted in both directions; the 1/((n-1)(n-2)) scale accounts for that.
func Betweenness(g *core.Graph) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Vertices()
	n := len(ids)
	scores := make(map[string]float64, n)
	for _, v := range ids {
		scores[v] = 0
	}

	adj := make(map[string][]string, n)
	for _, v := range ids {
		nbrs, err := g.NeighborIDs(v)
		if err != nil {
			return nil, err
		}
		adj[v] = nbrs
	}

	for _, s := range ids {
		dist := map[string]int{s: 0}
		sigma := map[string]float64{s: 1}
		pred := make(map[string][]string)
		order := []string{s}

		for head := 0; head < len(order); head++ {
			u := order[head]
			for _, w := range adj[u] {
				if w == u {
					continue
				}
				if _, seen := dist[w]; !seen {
					dist[w] = dist[u] + 1
					order = append(order, w)
				}
				if dist[w] == dist[u]+1 {
					sigma[w] += sigma[u]
					pred[w] = append(pred[w], u)
				}
			}
		}

		delta := make(map[string]float64, len(order))
		for i := len(order) - 1; i >= 0; i-- {
			w := order[i]
			for _, v := range pred[w] {
				delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
			}
			if w != s {
				scores[w] += delta[w]
			}
		}
	}

	if n > 2 {
		scale := 1 / float64((n-1)*(n-2))
		for v := range scores {
			scores[v] *= scale
		}
	}

	return scores, nil
}
