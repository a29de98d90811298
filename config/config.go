// Package config loads and validates the YAML settings shared by the
// flarelath command and library callers.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/flarelath/centrality"
	"github.com/katalvlaran/flarelath/core"
	"github.com/katalvlaran/flarelath/dijkstra"
	"github.com/katalvlaran/flarelath/flareness"
	"github.com/katalvlaran/flarelath/flaretree"
	"github.com/katalvlaran/flarelath/trace"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// DefaultPruneThreshold is the collapse threshold used for annotation runs.
const DefaultPruneThreshold = 0.01

// Config holds analysis settings.
type Config struct {
	// MembershipKey is the vertex metadata key listing entities.
	MembershipKey string `yaml:"membership_key" validate:"required"`
	// PruneThreshold collapses younger flares living shorter than this.
	PruneThreshold float64 `yaml:"prune_threshold" validate:"gte=0"`
	// Centrality names the filtration measure for detect.
	Centrality string `yaml:"centrality" validate:"oneof=harmonic closeness betweenness"`
	// Workers bounds concurrent entity analyses.
	Workers int `yaml:"workers" validate:"min=1"`
	// IncludeNotFound keeps rows for entities absent from the graph.
	IncludeNotFound bool `yaml:"include_not_found"`
	// EdgeWeights measures distances with edge weights instead of hop counts.
	EdgeWeights bool `yaml:"edge_weights"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		MembershipKey:  core.DefaultMembershipKey,
		PruneThreshold: DefaultPruneThreshold,
		Centrality:     centrality.NameHarmonic,
		Workers:        1,
		LogLevel:       "info",
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Parse decodes YAML bytes on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads YAML from r on top of Default and validates the result.
// Unknown keys are rejected. An empty document yields the defaults.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var validate = validator.New()

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s fails %q (value %v)", ErrInvalid, fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Weigher returns the edge cost resolver selected by EdgeWeights.
func (c Config) Weigher() dijkstra.Weigher {
	if c.EdgeWeights {
		return dijkstra.EdgeWeigher{}
	}

	return dijkstra.UnitWeigher{}
}

// FlarenessOptions translates c into flareness options.
func (c Config) FlarenessOptions(rec trace.Recorder) []flareness.Option {
	return []flareness.Option{
		flareness.WithMembershipKey(c.MembershipKey),
		flareness.WithWeigher(c.Weigher()),
		flareness.WithWorkers(c.Workers),
		flareness.WithIncludeNotFound(c.IncludeNotFound),
		flareness.WithRecorder(rec),
	}
}

// DetectOptions translates c into flaretree options.
func (c Config) DetectOptions(rec trace.Recorder) []flaretree.Option {
	return []flaretree.Option{
		flaretree.WithPruneThreshold(c.PruneThreshold),
		flaretree.WithRecorder(rec),
	}
}

// Filtration returns the centrality filtration named by c.
func (c Config) Filtration() flaretree.Filtration {
	return flaretree.ByCentrality(c.Centrality)
}
