package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/katalvlaran/flarelath/builder"
	"github.com/katalvlaran/flarelath/core"
	"github.com/katalvlaran/flarelath/coreshell"
	"github.com/katalvlaran/flarelath/flareness"
	"github.com/katalvlaran/flarelath/flaretree"
	"github.com/katalvlaran/flarelath/loader"
)

// FlarenessCmd classifies entities of a graph document.
type FlarenessCmd struct {
	Graph           string   `arg:"" type:"existingfile" help:"Graph document (YAML)"`
	Entities        []string `arg:"" optional:"" help:"Entities to analyze (default: every entity in the graph)"`
	Workers         int      `short:"w" help:"Concurrent analyses (default from config)"`
	IncludeNotFound bool     `help:"Keep rows for entities absent from the graph"`
	EdgeWeights     bool     `help:"Use edge weights instead of hop counts"`
}

// Run executes the flareness command.
func (c *FlarenessCmd) Run(app *App) error {
	g, err := loader.LoadFile(c.Graph)
	if err != nil {
		return err
	}
	cfg := *app.Cfg
	if c.Workers > 0 {
		cfg.Workers = c.Workers
	}
	cfg.IncludeNotFound = cfg.IncludeNotFound || c.IncludeNotFound
	cfg.EdgeWeights = cfg.EdgeWeights || c.EdgeWeights

	return runFlareness(app, g, cfg.FlarenessOptions(app.Rec), c.Entities, cfg.MembershipKey)
}

func runFlareness(app *App, g *core.Graph, opts []flareness.Option, entities []string, key string) error {
	if len(entities) == 0 {
		entities = coreshell.Entities(g, key)
	}
	app.Log.Info("analyzing flareness", "entities", len(entities), "vertices", g.VertexCount())

	rep, err := flareness.AnalyzeAll(context.Background(), g, entities, opts...)
	if err != nil {
		return fmt.Errorf("flareness: %w", err)
	}
	printReport(app.Out, rep)

	return nil
}

// DetectCmd lists the flares of a graph document.
type DetectCmd struct {
	Graph      string  `arg:"" type:"existingfile" help:"Graph document (YAML)"`
	Centrality string  `help:"Centrality filtration: harmonic, closeness or betweenness (default from config)"`
	Attribute  string  `help:"Use a numeric vertex attribute as filtration instead of a centrality"`
	Prune      float64 `default:"-1" help:"Prune threshold; negative keeps the configured value"`
}

// Run executes the detect command.
func (c *DetectCmd) Run(app *App) error {
	g, err := loader.LoadFile(c.Graph)
	if err != nil {
		return err
	}
	cfg := *app.Cfg
	if c.Centrality != "" {
		cfg.Centrality = c.Centrality
	}
	if c.Prune >= 0 {
		cfg.PruneThreshold = c.Prune
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	filtration := cfg.Filtration()
	if c.Attribute != "" {
		filtration = flaretree.ByAttribute(c.Attribute)
	}

	return runDetect(app, g, filtration, cfg.DetectOptions(app.Rec))
}

func runDetect(app *App, g *core.Graph, filtration flaretree.Filtration, opts []flaretree.Option) error {
	app.Log.Info("detecting flares", "filtration", filtration, "vertices", g.VertexCount())
	res, err := flaretree.Detect(g, filtration, opts...)
	if err != nil {
		return fmt.Errorf("detect: %w", err)
	}
	printFlares(app.Out, res)

	return nil
}

// AnnotateCmd prints per-vertex flare indices under every centrality.
type AnnotateCmd struct {
	Graph string `arg:"" type:"existingfile" help:"Graph document (YAML)"`
}

// Run executes the annotate command.
func (c *AnnotateCmd) Run(app *App) error {
	g, err := loader.LoadFile(c.Graph)
	if err != nil {
		return err
	}
	if _, err = flaretree.AnnotateCentralities(g, app.Cfg.DetectOptions(app.Rec)...); err != nil {
		return fmt.Errorf("annotate: %w", err)
	}
	printAnnotations(app.Out, g)

	return nil
}

// DemoCmd runs the pipeline on a generated fixture.
type DemoCmd struct {
	Shape string `default:"star" enum:"path,star,cycle" help:"Fixture topology (path, star, cycle)"`
	Size  int    `default:"11" help:"Vertex count"`
}

// Run executes the demo command.
func (c *DemoCmd) Run(app *App) error {
	g, err := c.build(app.Cfg.MembershipKey)
	if err != nil {
		return err
	}
	if err = runDetect(app, g, app.Cfg.Filtration(), app.Cfg.DetectOptions(app.Rec)); err != nil {
		return err
	}
	fmt.Fprintln(app.Out)

	return runFlareness(app, g, app.Cfg.FlarenessOptions(app.Rec), nil, app.Cfg.MembershipKey)
}

// build tags "everywhere" on every vertex, "tail" on all but the first
// generated vertex and "head" on the first one.
func (c *DemoCmd) build(key string) (*core.Graph, error) {
	var shape builder.Constructor
	switch c.Shape {
	case "path":
		shape = builder.Path(c.Size)
	case "cycle":
		shape = builder.Cycle(c.Size)
	default:
		shape = builder.Star(c.Size)
	}

	first := builder.DefaultIDFn(0)
	if c.Shape == "star" {
		first = builder.CenterVertexID
	}
	var tail []string
	for i := 1; i < c.Size; i++ {
		tail = append(tail, strconv.Itoa(i))
	}

	return builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithMembershipKey(key)},
		shape,
		builder.TagAll("everywhere"),
		builder.Tag("head", first),
		builder.Tag("tail", tail...),
	)
}
