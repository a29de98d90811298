package flaretree

import (
	"fmt"

	"github.com/katalvlaran/flarelath/centrality"
	"github.com/katalvlaran/flarelath/core"
)

// Metadata key suffixes written by Annotate.
const (
	FlareSuffix      = "flare"
	CentralitySuffix = "centrality"
)

// Annotate writes res onto g: vertex metadata "<label>flare" receives the
// index of the vertex's flare and "<label>centrality" its filtration value.
func Annotate(g *core.Graph, res *Result, label string) error {
	if g == nil {
		return ErrGraphNil
	}
	if res == nil {
		return nil
	}
	for id, idx := range res.NodeFlare {
		if err := g.SetAttr(id, label+FlareSuffix, idx); err != nil {
			return fmt.Errorf("flaretree: annotate %q: %w", id, err)
		}
	}
	for id, v := range res.NodeValue {
		if err := g.SetAttr(id, label+CentralitySuffix, v); err != nil {
			return fmt.Errorf("flaretree: annotate %q: %w", id, err)
		}
	}

	return nil
}

// annotationOrder lists the measures AnnotateCentralities runs.
var annotationOrder = []string{
	centrality.NameHarmonic,
	centrality.NameCloseness,
	centrality.NameBetweenness,
}

// AnnotateCentralities runs Detect under harmonic, closeness and betweenness
// centrality and annotates g with each, labelled by the measure's code
// (Hflare, Hcentrality, Cflare, ...). All measures are computed before the
// graph is written to. The results are returned keyed by code.
func AnnotateCentralities(g *core.Graph, opts ...Option) (map[string]*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	out := make(map[string]*Result, len(annotationOrder))
	codes := make([]string, 0, len(annotationOrder))
	for _, name := range annotationOrder {
		code, err := centrality.Code(name)
		if err != nil {
			return nil, fmt.Errorf("flaretree: %w", err)
		}
		res, err := Detect(g, ByCentrality(name), opts...)
		if err != nil {
			return nil, err
		}
		out[code] = res
		codes = append(codes, code)
	}
	for _, code := range codes {
		if err := Annotate(g, out[code], code); err != nil {
			return nil, err
		}
	}

	return out, nil
}
