// Package coreshell splits a vertex subset of a graph into its core (vertices
// whose every neighbor lies inside the subset) and its shell (vertices with at
// least one neighbor outside it).
//
// Partition is pure and runs in O(Σ deg(h)) over the subset.
package coreshell

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/flarelath/core"
)

// ErrGraphNil is returned when a nil graph is passed.
var ErrGraphNil = errors.New("coreshell: graph is nil")

// Partition is the core/shell split of a vertex subset H.
// Core ∪ Shell == H and Core ∩ Shell == ∅. Both slices follow the
// first-occurrence order of H.
type Partition struct {
	Core  []string
	Shell []string
}

// Split partitions H within g. Duplicates in H are ignored; an empty H
// yields an empty Partition. Neighbors are taken from the full graph, so on a
// directed graph only out-neighbors are inspected.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - core.ErrVertexNotFound (wrapped) for an ID of H absent from g.
func Split(g *core.Graph, H []string) (Partition, error) {
	var p Partition
	if g == nil {
		return p, ErrGraphNil
	}

	in := make(map[string]bool, len(H))
	for _, h := range H {
		in[h] = true
	}

	seen := make(map[string]bool, len(in))
	for _, x := range H {
		if seen[x] {
			continue
		}
		seen[x] = true

		nbrs, err := g.NeighborIDs(x)
		if err != nil {
			return Partition{}, fmt.Errorf("coreshell: neighbors of %q: %w", x, err)
		}
		if allInside(nbrs, in) {
			p.Core = append(p.Core, x)
		} else {
			p.Shell = append(p.Shell, x)
		}
	}

	return p, nil
}

func allInside(nbrs []string, in map[string]bool) bool {
	for _, n := range nbrs {
		if !in[n] {
			return false
		}
	}

	return true
}

// MembersOf returns, in sorted vertex order, every vertex of g whose
// membership set under key contains entity.
// Vertices with a malformed membership attribute are skipped.
func MembersOf(g *core.Graph, entity, key string) []string {
	if g == nil {
		return nil
	}
	var out []string
	for _, id := range g.Vertices() {
		if g.HasMember(id, key, entity) {
			out = append(out, id)
		}
	}

	return out
}

// Entities lists, sorted, every entity named by some vertex's membership set
// under key. Malformed membership attributes and empty entity IDs are skipped.
func Entities(g *core.Graph, key string) []string {
	if g == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, id := range g.Vertices() {
		members, err := g.Members(id, key)
		if err != nil {
			continue
		}
		for _, m := range members {
			if m != "" && !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	sort.Strings(out)

	return out
}
