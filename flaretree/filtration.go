package flaretree

import (
	"fmt"
	"math"

	"github.com/katalvlaran/flarelath/centrality"
	"github.com/katalvlaran/flarelath/core"
)

type filtrationKind int

const (
	kindUnset filtrationKind = iota
	kindExplicit
	kindAttribute
	kindCentrality
)

// Filtration selects the scalar that orders the sweep.
// The zero value is unset and rejected by Detect.
type Filtration struct {
	kind   filtrationKind
	name   string
	values map[string]float64
}

// Explicit uses a precomputed vertex -> value mapping.
// Entries for vertices absent from the graph are ignored.
func Explicit(values map[string]float64) Filtration {
	return Filtration{kind: kindExplicit, values: values}
}

// ByAttribute reads a numeric vertex metadata entry.
func ByAttribute(key string) Filtration {
	return Filtration{kind: kindAttribute, name: key}
}

// ByCentrality computes a centrality measure by name (see centrality.Names).
func ByCentrality(name string) Filtration {
	return Filtration{kind: kindCentrality, name: name}
}

// String describes f for logs and span attributes.
func (f Filtration) String() string {
	switch f.kind {
	case kindExplicit:
		return "explicit"
	case kindAttribute:
		return "attribute:" + f.name
	case kindCentrality:
		return "centrality:" + f.name
	default:
		return "unset"
	}
}

// Resolve evaluates f on every vertex of g. Every vertex must receive a
// finite value.
func (f Filtration) Resolve(g *core.Graph) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var src map[string]float64
	switch f.kind {
	case kindExplicit:
		src = f.values
	case kindAttribute:
		return f.fromAttribute(g)
	case kindCentrality:
		fn, err := centrality.ByName(f.name)
		if err != nil {
			return nil, fmt.Errorf("flaretree: %w", err)
		}
		if src, err = fn(g); err != nil {
			return nil, fmt.Errorf("flaretree: %s: %w", f, err)
		}
	default:
		return nil, fmt.Errorf("%w: unset filtration", ErrBadFiltration)
	}

	out := make(map[string]float64, g.VertexCount())
	for _, id := range g.Vertices() {
		v, ok := src[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s: vertex %q", ErrMissingFiltration, f, id)
		}
		if err := checkFinite(f, id, v); err != nil {
			return nil, err
		}
		out[id] = v
	}

	return out, nil
}

func (f Filtration) fromAttribute(g *core.Graph) (map[string]float64, error) {
	out := make(map[string]float64, g.VertexCount())
	for _, id := range g.Vertices() {
		raw, ok := g.Attr(id, f.name)
		if !ok {
			return nil, fmt.Errorf("%w: %s: vertex %q", ErrMissingFiltration, f, id)
		}
		v, ok := toFloat(raw)
		if !ok {
			return nil, fmt.Errorf("%w: %s: vertex %q holds %T", ErrBadFiltration, f, id, raw)
		}
		if err := checkFinite(f, id, v); err != nil {
			return nil, err
		}
		out[id] = v
	}

	return out, nil
}

func checkFinite(f Filtration, id string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s: vertex %q = %g", ErrBadFiltration, f, id, v)
	}

	return nil
}

func toFloat(raw interface{}) (float64, bool) {
	switch x := raw.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case int32:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint64:
		return float64(x), true
	case uint32:
		return float64(x), true
	default:
		return 0, false
	}
}
