package centrality

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/flarelath/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrUnknownMeasure is returned by ByName/Code for unsupported names.
	ErrUnknownMeasure = errors.New("centrality: unknown measure")
)

// Measure names accepted by ByName.
const (
	NameHarmonic    = "harmonic"
	NameCloseness   = "closeness"
	NameBetweenness = "betweenness"
)

// Func computes one score per vertex of g.
type Func func(g *core.Graph) (map[string]float64, error)

var registry = map[string]struct {
	fn   Func
	code string
}{
	NameHarmonic:    {Harmonic, "H"},
	NameCloseness:   {Closeness, "C"},
	NameBetweenness: {Betweenness, "B"},
}

// ByName returns the measure registered under name.
func ByName(name string) (Func, error) {
	m, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMeasure, name)
	}

	return m.fn, nil
}

// Code returns the one-letter annotation label of a measure.
func Code(name string) (string, error) {
	m, ok := registry[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMeasure, name)
	}

	return m.code, nil
}

// Names lists the supported measures in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}
