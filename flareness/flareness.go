package flareness

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/flarelath/bfs"
	"github.com/katalvlaran/flarelath/core"
	"github.com/katalvlaran/flarelath/coreshell"
	"github.com/katalvlaran/flarelath/dijkstra"
	"github.com/katalvlaran/flarelath/trace"
)

// Flareness computes the flareness signature of entity in g.
//
// Steps:
//  1. H = vertices whose membership set contains entity. Empty H yields
//     &Result{Found: false} and a nil error.
//  2. H is split into core and shell (coreshell.Split).
//  3. With a non-empty shell, multi-source Dijkstra runs from the shell over
//     the subgraph induced by H.
//  4. The core is split into connected components; each component scores the
//     maximum distance of its vertices, or +Inf if any is unreachable.
//
// A pure-shell entity returns Found == true with an empty Signature.
//
// Complexity: O((|H| + E_H) log |H|) after the O(V) membership scan.
func Flareness(g *core.Graph, entity string, opts ...Option) (*Result, error) {
	cfg := newOptions(opts)
	if cfg.err != nil {
		return nil, cfg.err
	}

	return analyze(context.Background(), g, entity, cfg)
}

// analyze is Flareness after option parsing; ctx bounds the component split.
func analyze(ctx context.Context, g *core.Graph, entity string, cfg Options) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if entity == "" {
		return nil, ErrEmptyEntity
	}

	H := coreshell.MembersOf(g, entity, cfg.MembershipKey)
	if len(H) == 0 {
		return notFound(cfg, entity), nil
	}

	sub := core.InducedSubgraphOf(g, H)
	if cfg.shouldValidate() {
		if err := dijkstra.ValidateWeights(sub, cfg.Weigher); err != nil {
			cfg.Recorder.Record(trace.Event{
				RunID: cfg.runID, Op: trace.OpValidation, Node: entity, Flare: -1, Detail: err.Error(),
			})
			return nil, fmt.Errorf("flareness: %q: %w", entity, err)
		}
	}

	p, err := coreshell.Split(g, H)
	if err != nil {
		return nil, fmt.Errorf("flareness: %q: %w", entity, err)
	}

	var dist map[string]float64
	if len(p.Shell) > 0 {
		res, err := dijkstra.MultiSource(sub, p.Shell, dijkstra.WithWeigher(cfg.Weigher))
		if err != nil {
			return nil, fmt.Errorf("flareness: %q: %w", entity, err)
		}
		dist = res.Dist
	}

	comps, err := bfs.ConnectedComponents(core.InducedSubgraphOf(g, p.Core), bfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("flareness: %q: %w", entity, err)
	}

	res := &Result{
		Entity:     entity,
		Found:      true,
		Core:       p.Core,
		Shell:      p.Shell,
		Signature:  make(Signature, 0, len(comps)),
		Components: comps,
	}
	for _, comp := range comps {
		res.Signature = append(res.Signature, componentValue(comp, dist))
	}

	typ, idx := Classify(res.Signature)
	cfg.Recorder.Record(trace.Event{
		RunID: cfg.runID, Op: trace.OpEntity, Node: entity, Flare: -1, Value: idx, Detail: typ.String(),
	})

	return res, nil
}

// componentValue is the largest distance in comp, or +Inf as soon as one
// vertex has no finite distance. A nil dist (no shell) makes every vertex
// unreachable.
func componentValue(comp []string, dist map[string]float64) float64 {
	v := math.Inf(-1)
	for _, x := range comp {
		d, ok := dist[x]
		if !ok || math.IsInf(d, 1) {
			return math.Inf(1)
		}
		if d > v {
			v = d
		}
	}

	return v
}

// notFound records and returns the result of an entity with no vertices.
func notFound(cfg Options, entity string) *Result {
	cfg.Recorder.Record(trace.Event{RunID: cfg.runID, Op: trace.OpNotFound, Node: entity, Flare: -1})

	return &Result{Entity: entity}
}
