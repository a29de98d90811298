package flareness

import (
	"context"
	"fmt"
	"sort"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/flarelath/core"
	"github.com/katalvlaran/flarelath/dijkstra"
	"github.com/katalvlaran/flarelath/trace"
)

// Row is the tabular view of one analyzed entity.
// Index is meaningful only when Found is true; NotFound rows carry 0, not an
// absent value, so callers must check Found or Type.
type Row struct {
	Entity    string
	Found     bool
	Type      Type
	Index     float64
	Signature Signature
}

// Report is the outcome of AnalyzeAll.
//
// Rows follow the input order (duplicates dropped); rows of absent entities
// appear only with IncludeNotFound. The buckets name entities by class:
// FlareOnly is ordered by ascending index, the others by input order.
type Report struct {
	RunID          string
	Rows           []Row
	PureIsland     []string
	FlareAndIsland []string
	FlareOnly      []string
	Degenerate     []string
	NotFound       []string
}

// Row returns the row of entity, if present.
func (r *Report) Row(entity string) (Row, bool) {
	for _, row := range r.Rows {
		if row.Entity == entity {
			return row, true
		}
	}

	return Row{}, false
}

// AnalyzeAll runs Flareness for every entity, up to Workers at a time.
//
// g must not be mutated while AnalyzeAll runs. Weight validation, when
// enabled, happens once over the whole graph before any entity is analyzed.
// An empty entity ID names no vertex and is reported as not found.
// The first per-entity error cancels the remaining work and is returned.
func AnalyzeAll(ctx context.Context, g *core.Graph, entities []string, opts ...Option) (rep *Report, err error) {
	cfg := newOptions(opts)
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg.runID = trace.NewRunID()
	ctx, finish := trace.Span(ctx, "flareness.AnalyzeAll",
		attribute.String("run.id", cfg.runID),
		attribute.Int("entities", len(entities)),
		attribute.Int("workers", cfg.Workers),
	)
	defer func() { finish(err) }()

	cfg.Recorder.Record(trace.Event{RunID: cfg.runID, Op: trace.OpRunStart, Flare: -1, Value: float64(len(entities))})

	if cfg.shouldValidate() {
		if err = dijkstra.ValidateWeights(g, cfg.Weigher); err != nil {
			cfg.Recorder.Record(trace.Event{RunID: cfg.runID, Op: trace.OpValidation, Flare: -1, Detail: err.Error()})
			return nil, fmt.Errorf("flareness: %w", err)
		}
	}
	cfg.validate, cfg.validateSet = false, true

	uniq := dedupeEntities(entities)
	results := make([]*Result, len(uniq))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for i, entity := range uniq {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			if entity == "" {
				results[i] = notFound(cfg, entity)
				return nil
			}
			res, err := analyze(egCtx, g, entity, cfg)
			if err != nil {
				return err
			}
			results[i] = res

			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	rep = buildReport(cfg, results)
	cfg.Recorder.Record(trace.Event{RunID: cfg.runID, Op: trace.OpRunDone, Flare: -1, Value: float64(len(rep.Rows))})

	return rep, nil
}

func dedupeEntities(entities []string) []string {
	seen := make(map[string]bool, len(entities))
	out := make([]string, 0, len(entities))
	for _, e := range entities {
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}

	return out
}

func buildReport(cfg Options, results []*Result) *Report {
	rep := &Report{RunID: cfg.runID}
	var flares []Row
	for _, res := range results {
		typ, idx := ClassifyResult(res)
		row := Row{Entity: res.Entity, Found: res.Found, Type: typ, Index: idx, Signature: res.Signature}

		switch typ {
		case NotFound:
			rep.NotFound = append(rep.NotFound, res.Entity)
		case None:
			rep.Degenerate = append(rep.Degenerate, res.Entity)
		case PureIsland:
			rep.PureIsland = append(rep.PureIsland, res.Entity)
		case FlareAndIsland:
			rep.FlareAndIsland = append(rep.FlareAndIsland, res.Entity)
		case PureFlare:
			flares = append(flares, row)
		}

		if res.Found || cfg.IncludeNotFound {
			rep.Rows = append(rep.Rows, row)
		}
	}

	sort.SliceStable(flares, func(i, j int) bool { return flares[i].Index < flares[j].Index })
	for _, row := range flares {
		rep.FlareOnly = append(rep.FlareOnly, row.Entity)
	}

	return rep
}
