// Package loader decodes a YAML graph document into a core.Graph.
//
// Document shape:
//
//	weighted: true          # optional, default false
//	membership_key: firms   # optional, default "unique_members"
//	vertices:
//	  - id: n1
//	    members: [acme, globex]
//	    attrs: {size: 12}
//	edges:
//	  - {from: n1, to: n2, weight: 0.5}
//
// Vertices referenced only by edges are created without members.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/flarelath/core"
)

// ErrBadDocument is wrapped by every structural failure.
var ErrBadDocument = errors.New("loader: bad graph document")

// Document is the YAML form of a graph.
type Document struct {
	Directed      bool             `yaml:"directed"`
	Weighted      bool             `yaml:"weighted"`
	MembershipKey string           `yaml:"membership_key"`
	Vertices      []VertexDocument `yaml:"vertices" validate:"dive"`
	Edges         []EdgeDocument   `yaml:"edges" validate:"dive"`
}

// VertexDocument is one vertex entry.
type VertexDocument struct {
	ID      string                 `yaml:"id" validate:"required"`
	Members []string               `yaml:"members" validate:"dive,required"`
	Attrs   map[string]interface{} `yaml:"attrs"`
}

// EdgeDocument is one edge entry. Weight is required when the document is
// weighted and must be absent otherwise.
type EdgeDocument struct {
	From   string   `yaml:"from" validate:"required"`
	To     string   `yaml:"to" validate:"required"`
	Weight *float64 `yaml:"weight"`
}

var validate = validator.New()

// LoadFile reads and builds the graph stored at path.
func LoadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// LoadBytes builds a graph from an in-memory document.
func LoadBytes(data []byte) (*core.Graph, error) {
	return Load(bytes.NewReader(data))
}

// Load decodes a document from r and builds the graph.
func Load(r io.Reader) (*core.Graph, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	return doc.Build()
}

// Build validates d and converts it into a graph.
// Duplicate vertex entries merge their members and attrs.
func (d Document) Build() (*core.Graph, error) {
	if err := validate.Struct(d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	key := d.MembershipKey
	if key == "" {
		key = core.DefaultMembershipKey
	}

	opts := []core.GraphOption{core.WithDirected(d.Directed)}
	if d.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)

	for i, v := range d.Vertices {
		if err := g.AddVertex(v.ID); err != nil {
			return nil, fmt.Errorf("%w: vertex %d: %v", ErrBadDocument, i, err)
		}
		for k, val := range v.Attrs {
			if err := g.SetAttr(v.ID, k, val); err != nil {
				return nil, fmt.Errorf("%w: vertex %q: %v", ErrBadDocument, v.ID, err)
			}
		}
		if len(v.Members) == 0 {
			continue
		}
		prev, err := g.Members(v.ID, key)
		if err != nil {
			return nil, fmt.Errorf("%w: vertex %q: %v", ErrBadDocument, v.ID, err)
		}
		if err = g.SetAttr(v.ID, key, append(prev, v.Members...)); err != nil {
			return nil, fmt.Errorf("%w: vertex %q: %v", ErrBadDocument, v.ID, err)
		}
	}

	for i, e := range d.Edges {
		var w float64
		switch {
		case e.Weight != nil:
			w = *e.Weight
		case d.Weighted:
			return nil, fmt.Errorf("%w: edge %d (%s-%s): weight missing", ErrBadDocument, i, e.From, e.To)
		}
		if _, err := g.AddEdge(e.From, e.To, w); err != nil {
			return nil, fmt.Errorf("%w: edge %d (%s-%s): %w", ErrBadDocument, i, e.From, e.To, err)
		}
	}

	return g, nil
}
