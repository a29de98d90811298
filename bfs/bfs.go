package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/flarelath/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// frontierItem is a discovered vertex awaiting expansion.
type frontierItem struct {
	id    string
	depth int
}

// walker holds the state of one traversal. The frontier is a slice consumed
// through a head index, so dequeue never reallocates.
type walker struct {
	graph    *core.Graph
	opts     BFSOptions
	ctx      context.Context
	frontier []frontierItem
	head     int
	res      *BFSResult
}

// BFS runs breadth-first search on g from startID.
//
// Edge weights are ignored: Depth is the hop count from startID. Directed edges
// are followed From→To only.
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// the context error on cancellation, or the wrapped OnVisit error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:    g,
		opts:     o,
		ctx:      o.Ctx,
		frontier: make([]frontierItem, 0, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.discover(startID, 0, "")

	return w.res, w.loop()
}

// discover records depth and parent of id and appends it to the frontier.
// Depth doubles as the visited set.
func (w *walker) discover(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.frontier = append(w.frontier, frontierItem{id: id, depth: d})
}

func (w *walker) loop() error {
	for w.head < len(w.frontier) {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.frontier[w.head]
		w.head++

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand discovers the unseen, unfiltered neighbors of item within MaxDepth.
func (w *walker) expand(item frontierItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if w.res.Reached(nbr) || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.discover(nbr, next, item.id)
	}

	return nil
}
