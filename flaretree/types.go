package flaretree

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/flarelath/trace"
)

// Sentinel errors.
var (
	ErrGraphNil          = errors.New("flaretree: graph is nil")
	ErrMissingFiltration = errors.New("flaretree: missing filtration value")
	ErrBadFiltration     = errors.New("flaretree: bad filtration value")
	ErrBadThreshold      = errors.New("flaretree: prune threshold must be >= 0")
	ErrInvariant         = errors.New("flaretree: invariant violation")
)

// Flare is the record of one connected branch born at Origin.
//
// Death is +Inf while the flare is alive. Members is sorted.
type Flare struct {
	Origin     string
	Birth      float64
	Death      float64
	Terminator string
	Members    []string
}

// Lifespan returns Death - Birth; +Inf for a flare that never died.
func (f Flare) Lifespan() float64 {
	return f.Death - f.Birth
}

// Alive reports whether the flare never died.
func (f Flare) Alive() bool {
	return math.IsInf(f.Death, 1)
}

// Has reports whether id is a member of f.
func (f Flare) Has(id string) bool {
	i := sort.SearchStrings(f.Members, id)

	return i < len(f.Members) && f.Members[i] == id
}

// InvariantError describes an impossible forest operation.
// Slot and Parent are arena indices; -1 when not applicable.
type InvariantError struct {
	Op     string
	Slot   int
	Parent int
	Origin string
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%v: %s slot %d (origin %q) parent %d: %s",
		ErrInvariant, e.Op, e.Slot, e.Origin, e.Parent, e.Reason)
}

// Is reports target == ErrInvariant.
func (e *InvariantError) Is(target error) bool { return target == ErrInvariant }

// Result is the outcome of Detect.
//
// Flares is sorted by lifespan descending. NodeFlare maps each vertex to the
// index in Flares of the flare it finally belongs to; NodeValue maps it to its
// filtration value.
type Result struct {
	RunID     string
	Flares    []Flare
	NodeFlare map[string]int
	NodeValue map[string]float64
}

// Options configures Detect.
//
// PruneThreshold – younger trees with a shorter lifespan are collapsed; 0 disables.
// Recorder       – structured diagnostics sink; default trace.Nop.
// Ctx            – parent context of the tracing span.
type Options struct {
	PruneThreshold float64
	Recorder       trace.Recorder
	Ctx            context.Context

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions disables pruning and records nothing.
func DefaultOptions() Options {
	return Options{
		Recorder: trace.Nop{},
		Ctx:      context.Background(),
	}
}

// WithPruneThreshold sets the collapse threshold. Negative or NaN values
// surface as ErrBadThreshold when Detect runs.
func WithPruneThreshold(t float64) Option {
	return func(o *Options) {
		if t < 0 || math.IsNaN(t) {
			o.err = fmt.Errorf("%w: %g", ErrBadThreshold, t)
			return
		}
		o.PruneThreshold = t
	}
}

// WithRecorder installs a diagnostics recorder.
func WithRecorder(r trace.Recorder) Option {
	return func(o *Options) {
		o.Recorder = trace.OrNop(r)
	}
}

// WithContext sets the parent context for tracing. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
