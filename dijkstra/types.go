package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/flarelath/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no source vertex was supplied.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrInvalidWeight indicates that at least one edge weight is missing,
	// not comparable (NaN) or negative.
	ErrInvalidWeight = errors.New("dijkstra: invalid edge weight")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Weigher resolves the traversal cost of edge e when walked from→to.
// ok=false reports a missing weight.
//
// Implementations must be safe for concurrent use; the flareness batch runs
// one Dijkstra per entity on parallel workers sharing a Weigher.
type Weigher interface {
	Weight(from, to string, e *core.Edge) (w float64, ok bool)
}

// WeigherFunc adapts a plain function to the Weigher interface.
type WeigherFunc func(from, to string, e *core.Edge) (float64, bool)

// Weight calls f(from, to, e).
func (f WeigherFunc) Weight(from, to string, e *core.Edge) (float64, bool) { return f(from, to, e) }

// UnitWeigher assigns cost 1 to every edge. It is the default.
type UnitWeigher struct{}

// Weight returns 1.
func (UnitWeigher) Weight(string, string, *core.Edge) (float64, bool) { return 1, true }

// EdgeWeigher reads Edge.Weight as stored on the graph. The graph must be
// weighted; otherwise every edge counts as missing.
type EdgeWeigher struct{}

// Weight returns e.Weight; a nil edge is reported as missing.
func (EdgeWeigher) Weight(_, _ string, e *core.Edge) (float64, bool) {
	if e == nil {
		return 0, false
	}

	return e.Weight, true
}

// Weight issue reasons reported by ValidateWeights.
const (
	ReasonMissing       = "missing"
	ReasonNotComparable = "not comparable"
	ReasonNegative      = "negative"
)

// WeightIssue identifies one offending edge and why it was rejected.
type WeightIssue struct {
	EdgeID string
	From   string
	To     string
	Weight float64
	Reason string
}

// WeightError lists every offending edge found by ValidateWeights.
// errors.Is(err, ErrInvalidWeight) holds for any *WeightError.
type WeightError struct {
	Issues []WeightIssue
}

// Error summarises the issues, one edge per clause.
func (e *WeightError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrInvalidWeight.Error())
	for i, is := range e.Issues {
		if i == 0 {
			sb.WriteString(": ")
		} else {
			sb.WriteString("; ")
		}
		fmt.Fprintf(&sb, "%s %s→%s (%s)", is.EdgeID, is.From, is.To, is.Reason)
	}

	return sb.String()
}

// Is reports target == ErrInvalidWeight.
func (e *WeightError) Is(target error) bool { return target == ErrInvalidWeight }

// Options configures the behavior of the Dijkstra algorithm.
//
// Sources     – starting vertex IDs; each starts at distance 0.
// ReturnPath  – if true, return the predecessor map; otherwise Prev is nil.
// MaxDistance – vertices farther than this are left at +Inf. Default +Inf.
// Weigher     – edge cost resolution. Default UnitWeigher.
type Options struct {
	Sources     []string
	ReturnPath  bool
	MaxDistance float64
	Weigher     Weigher

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source appends a starting vertex ID. May be given more than once.
func Source(id string) Option {
	return func(o *Options) {
		o.Sources = append(o.Sources, id)
	}
}

// Sources appends several starting vertex IDs.
func Sources(ids ...string) Option {
	return func(o *Options) {
		o.Sources = append(o.Sources, ids...)
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Negative or NaN values surface as ErrBadMaxDistance when Dijkstra runs.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: %g", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithWeigher installs the edge cost resolver. nil keeps the default.
func WithWeigher(w Weigher) Option {
	return func(o *Options) {
		if w != nil {
			o.Weigher = w
		}
	}
}

// DefaultOptions returns unit weights, no distance cap and no path recording.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
		Weigher:     UnitWeigher{},
	}
}

// Result carries shortest distances and, on request, predecessors.
//
// Dist holds every vertex of the graph; unreachable vertices map to +Inf.
// Prev[v] == u means a shortest path to v goes through u; sources and
// unreachable vertices have no entry.
type Result struct {
	Dist map[string]float64
	Prev map[string]string
}

// PathTo rebuilds a shortest path ending at dest, or nil when dest is
// unreachable or predecessors were not recorded.
func (r *Result) PathTo(dest string) []string {
	if r.Prev == nil || math.IsInf(r.Dist[dest], 1) {
		return nil
	}
	var path []string
	for cur, ok := dest, true; ok; cur, ok = r.Prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
