package flaretree

import (
	"errors"
	"sort"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/flarelath/core"
	"github.com/katalvlaran/flarelath/trace"
)

// Detect runs the flare sweep of g under filtration.
//
// For each vertex v in ascending filtration order:
//  1. below = neighbors of v whose value is <= value(v).
//  2. candidates = live roots whose tree contains a vertex of below.
//  3. No candidate: v is born as a new root flare.
//  4. Otherwise the elder candidate keeps v; every other candidate dies at
//     value(v), is attached under the elder, and is collapsed into it when its
//     lifespan is below the prune threshold.
//
// An *InvariantError aborts the sweep; it signals a bug, not bad input.
//
// Complexity: O(V log V + E·d) where d is the forest depth.
func Detect(g *core.Graph, filtration Filtration, opts ...Option) (res *Result, err error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrGraphNil
	}

	runID := trace.NewRunID()
	_, finish := trace.Span(cfg.Ctx, "flaretree.Detect",
		attribute.String("run.id", runID),
		attribute.String("filtration", filtration.String()),
		attribute.Int("vertices", g.VertexCount()),
		attribute.Float64("prune_threshold", cfg.PruneThreshold),
	)
	defer func() { finish(err) }()

	values, err := filtration.Resolve(g)
	if err != nil {
		return nil, err
	}

	s := &sweep{
		g:      g,
		cfg:    cfg,
		runID:  runID,
		values: values,
		forest: NewForest(),
	}
	s.record(trace.Event{Op: trace.OpRunStart, Flare: -1, Value: float64(len(values)), Detail: filtration.String()})
	if err = s.run(); err != nil {
		var inv *InvariantError
		if errors.As(err, &inv) {
			s.record(trace.Event{Op: trace.OpInvariant, Node: inv.Origin, Flare: inv.Slot, Detail: inv.Error()})
		}
		return nil, err
	}

	res = s.result()
	s.record(trace.Event{Op: trace.OpRunDone, Flare: -1, Value: float64(len(res.Flares))})

	return res, nil
}

type sweep struct {
	g      *core.Graph
	cfg    Options
	runID  string
	values map[string]float64
	forest *Forest
}

func (s *sweep) record(e trace.Event) {
	e.RunID = s.runID
	s.cfg.Recorder.Record(e)
}

// order sorts vertices by value; Vertices is lexicographic, so the stable
// sort breaks ties by ID.
func (s *sweep) order() []string {
	ids := s.g.Vertices()
	sort.SliceStable(ids, func(i, j int) bool { return s.values[ids[i]] < s.values[ids[j]] })

	return ids
}

func (s *sweep) run() error {
	for _, v := range s.order() {
		val := s.values[v]
		cands, err := s.candidates(v, val)
		if err != nil {
			return err
		}

		if len(cands) == 0 {
			slot := s.forest.Birth(v, val)
			s.record(trace.Event{Op: trace.OpBirth, Node: v, Flare: slot, Value: val})
			continue
		}

		elder := cands[0]
		for _, younger := range cands[1:] {
			if err = s.kill(elder, younger, v, val); err != nil {
				return err
			}
		}
		s.forest.Add(elder, v)
		s.record(trace.Event{Op: trace.OpMerge, Node: v, Flare: elder, Value: val})
	}

	return nil
}

// candidates returns the distinct live roots reached from the processed
// neighbors of v, elder first.
func (s *sweep) candidates(v string, val float64) ([]int, error) {
	nbrs, err := s.g.NeighborIDs(v)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool)
	var cands []int
	for _, n := range nbrs {
		if n == v || s.values[n] > val {
			continue
		}
		root, ok := s.forest.Root(n)
		if !ok || seen[root] {
			continue
		}
		seen[root] = true
		cands = append(cands, root)
	}

	slots := s.forest.slots
	sort.Slice(cands, func(i, j int) bool {
		a, b := slots[cands[i]], slots[cands[j]]
		if a.birth != b.birth {
			return a.birth < b.birth
		}

		return a.origin < b.origin
	})

	return cands, nil
}

func (s *sweep) kill(elder, younger int, v string, val float64) error {
	f := s.forest
	if err := f.Terminate(younger, val, v); err != nil {
		return err
	}
	s.record(trace.Event{Op: trace.OpDeath, Node: v, Flare: younger, Value: val})

	if err := f.Attach(elder, younger); err != nil {
		return err
	}

	life := val - f.slots[younger].birth
	if life < s.cfg.PruneThreshold {
		if err := f.Collapse(elder, younger); err != nil {
			return err
		}
		s.record(trace.Event{Op: trace.OpCollapse, Node: v, Flare: younger, Value: life})
	}

	return nil
}

// result flattens the forest, sorts the records by lifespan and maps every
// vertex to the sorted index of its owning flare.
func (s *sweep) result() *Result {
	order := s.forest.Walk()
	flares := make([]Flare, len(order))
	for i, slot := range order {
		flares[i] = s.forest.Flare(slot)
	}

	perm := make([]int, len(order))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		return lessFlare(flares[perm[i]], flares[perm[j]])
	})

	res := &Result{
		RunID:     s.runID,
		Flares:    make([]Flare, len(perm)),
		NodeFlare: make(map[string]int, len(s.values)),
		NodeValue: s.values,
	}
	sortedIdx := make(map[int]int, len(perm))
	for to, from := range perm {
		res.Flares[to] = flares[from]
		sortedIdx[order[from]] = to
	}
	for id := range s.values {
		if slot, ok := s.forest.Owner(id); ok {
			res.NodeFlare[id] = sortedIdx[slot]
		}
	}

	return res
}

// lessFlare orders by lifespan descending, then birth, then origin.
func lessFlare(a, b Flare) bool {
	la, lb := a.Lifespan(), b.Lifespan()
	if la != lb {
		return la > lb
	}
	if a.Birth != b.Birth {
		return a.Birth < b.Birth
	}

	return a.Origin < b.Origin
}
