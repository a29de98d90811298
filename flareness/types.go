package flareness

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/flarelath/core"
	"github.com/katalvlaran/flarelath/dijkstra"
	"github.com/katalvlaran/flarelath/trace"
)

// Sentinel errors.
var (
	ErrGraphNil    = errors.New("flareness: graph is nil")
	ErrEmptyEntity = errors.New("flareness: entity is empty")
	ErrBadWorkers  = errors.New("flareness: workers must be >= 1")
)

// Signature lists one flareness value per core component.
// +Inf marks an island; values are never NaN.
type Signature []float64

// HasIsland reports whether any component is unreachable from the shell.
func (s Signature) HasIsland() bool {
	for _, v := range s {
		if math.IsInf(v, 1) {
			return true
		}
	}

	return false
}

// HasFlare reports whether any component has a finite value.
func (s Signature) HasFlare() bool {
	for _, v := range s {
		if !math.IsInf(v, 1) {
			return true
		}
	}

	return false
}

// Type is the flare class of an entity.
type Type int

// Flare classes. The integer values are part of the output format.
const (
	NotFound       Type = -1
	None           Type = 0
	PureFlare      Type = 1
	FlareAndIsland Type = 2
	PureIsland     Type = 3
)

// String returns a lower-case label for t.
func (t Type) String() string {
	switch t {
	case NotFound:
		return "not found"
	case None:
		return "none"
	case PureFlare:
		return "flare"
	case FlareAndIsland:
		return "flare and island"
	case PureIsland:
		return "island"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Result is the outcome of analyzing one entity.
//
// When Found is false the entity has no vertices and every other field
// except Entity is empty. Components[i] is the sorted vertex list that
// produced Signature[i].
type Result struct {
	Entity     string
	Found      bool
	Core       []string
	Shell      []string
	Signature  Signature
	Components [][]string
}

// Options configures Flareness and AnalyzeAll.
//
// MembershipKey   – vertex metadata key holding member sets.
// Weigher         – edge cost resolution; default dijkstra.UnitWeigher.
// Recorder        – structured diagnostics sink; default trace.Nop.
// Workers         – AnalyzeAll concurrency limit; default 1.
// IncludeNotFound – keep rows of absent entities in Report.Rows.
type Options struct {
	MembershipKey   string
	Weigher         dijkstra.Weigher
	Recorder        trace.Recorder
	Workers         int
	IncludeNotFound bool

	validate    bool
	validateSet bool
	runID       string
	err         error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the default membership key, unit costs, one worker
// and not-found rows dropped.
func DefaultOptions() Options {
	return Options{
		MembershipKey: core.DefaultMembershipKey,
		Weigher:       dijkstra.UnitWeigher{},
		Recorder:      trace.Nop{},
		Workers:       1,
	}
}

// WithMembershipKey selects the metadata key holding member sets.
// An empty key keeps the default.
func WithMembershipKey(key string) Option {
	return func(o *Options) {
		if key != "" {
			o.MembershipKey = key
		}
	}
}

// WithWeigher installs the edge cost resolver. nil keeps the default.
func WithWeigher(w dijkstra.Weigher) Option {
	return func(o *Options) {
		if w != nil {
			o.Weigher = w
		}
	}
}

// WithValidateWeights forces weight validation on or off.
func WithValidateWeights(on bool) Option {
	return func(o *Options) {
		o.validate = on
		o.validateSet = true
	}
}

// WithRecorder installs a diagnostics recorder.
func WithRecorder(r trace.Recorder) Option {
	return func(o *Options) {
		o.Recorder = trace.OrNop(r)
	}
}

// WithWorkers bounds AnalyzeAll concurrency.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: got %d", ErrBadWorkers, n)
			return
		}
		o.Workers = n
	}
}

// WithIncludeNotFound keeps or drops rows of absent entities.
func WithIncludeNotFound(on bool) Option {
	return func(o *Options) {
		o.IncludeNotFound = on
	}
}

func newOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// shouldValidate is the explicit setting, or true for any non-unit Weigher.
func (o Options) shouldValidate() bool {
	if o.validateSet {
		return o.validate
	}
	_, unit := o.Weigher.(dijkstra.UnitWeigher)

	return !unit
}
