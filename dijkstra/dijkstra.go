// Package dijkstra implements multi-source Dijkstra over a core.Graph with an
// injected edge-cost resolver.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), heap entries included under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Weight validation is a separate step (ValidateWeights). Relaxation still
//     refuses a bad weight it meets, returning a single-issue *WeightError.
//   - Edges resolving to +Inf are skipped as impassable.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - Lazy decrease-key: duplicates are pushed and stale entries ignored on pop.
//   - Heap ties are ordered by vertex ID so runs are reproducible.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/flarelath/core"
)

// Dijkstra computes shortest distances from the configured Sources to every
// vertex of g and returns (dist, prev, err). prev is nil unless WithReturnPath
// was given. It is a thin wrapper over MultiSource for single-source callers:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	res, err := run(g, cfg)
	if err != nil {
		return nil, nil, err
	}

	return res.Dist, res.Prev, nil
}

// MultiSource computes shortest distances from the nearest of sources to every
// vertex of g. Duplicate sources are harmless.
//
// Preconditions and validation (in order):
//  1. sources non-empty (ErrEmptySource).
//  2. g non-nil (ErrNilGraph).
//  3. every source present in g (ErrVertexNotFound).
//  4. options valid (ErrBadMaxDistance).
//  5. EdgeWeigher only on a weighted graph (*WeightError, ReasonMissing).
func MultiSource(g *core.Graph, sources []string, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	cfg.Sources = append(cfg.Sources, sources...)
	for _, opt := range opts {
		opt(&cfg)
	}

	return run(g, cfg)
}

func run(g *core.Graph, cfg Options) (*Result, error) {
	if len(cfg.Sources) == 0 {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	for _, s := range cfg.Sources {
		if s == "" {
			return nil, ErrEmptySource
		}
		if !g.HasVertex(s) {
			return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, s)
		}
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if weightsAbsent(g, cfg.Weigher) {
		if err := missingWeights(g); err != nil {
			return nil, err
		}
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(vertices))
	}

	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// init sets dist[v] = +Inf everywhere and seeds every source at 0.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
	}
	heap.Init(&r.pq)
	for _, s := range r.options.Sources {
		if r.dist[s] == 0 {
			continue // duplicate source
		}
		r.dist[s] = 0
		heap.Push(&r.pq, &nodeItem{id: s, dist: 0})
	}
}

// process pops the closest unsettled vertex and relaxes its edges until the
// heap drains or the frontier passes MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u and improves neighbor distances.
// Assumes r.dist[u] is final.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	var v string
	var w, newDist float64
	for _, e := range neighbors {
		v = e.Other(u)
		if r.visited[v] {
			continue
		}
		issue, bad := checkEdge(r.options.Weigher, u, v, e)
		if bad {
			return &WeightError{Issues: []WeightIssue{issue}}
		}
		w, _ = r.options.Weigher.Weight(u, v, e)
		if math.IsInf(w, 1) {
			continue // impassable
		}

		newDist = r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
