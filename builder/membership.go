// SPDX-License-Identifier: MIT
// Package: flarelath/builder
//
// membership.go — constructors attaching entity membership to vertices,
// turning a plain topology into a Mapper-style fixture.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/flarelath/core"
)

// Tag adds entity to the member set of every listed vertex.
// The vertices must already exist (ErrUnknownVertex). Repeated tagging is idempotent.
// Complexity: O(k · m log m) for k vertices with m members each.
func Tag(entity string, ids ...string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if entity == "" {
			return fmt.Errorf("Tag: %w", ErrEmptyEntity)
		}
		for _, id := range ids {
			if err := addMember(g, cfg.membershipKey, id, entity); err != nil {
				return fmt.Errorf("Tag(%s): %w", entity, err)
			}
		}

		return nil
	}
}

// TagAll adds entity to every vertex currently in the graph.
func TagAll(entity string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		return Tag(entity, g.Vertices()...)(g, cfg)
	}
}

// Members assigns member sets from a vertex → entities table, replacing any
// existing set. Vertices are processed in sorted order.
func Members(table map[string][]string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		ids := make([]string, 0, len(table))
		for id := range table {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			if !g.HasVertex(id) {
				return fmt.Errorf("Members: %q: %w", id, ErrUnknownVertex)
			}
			set := append([]string(nil), table[id]...)
			sort.Strings(set)
			if err := g.SetAttr(id, cfg.membershipKey, dedupe(set)); err != nil {
				return fmt.Errorf("Members: %w", err)
			}
		}

		return nil
	}
}

func addMember(g *core.Graph, key, id, entity string) error {
	if !g.HasVertex(id) {
		return fmt.Errorf("%q: %w", id, ErrUnknownVertex)
	}
	cur, err := g.Members(id, key)
	if err != nil {
		return err
	}
	i := sort.SearchStrings(cur, entity)
	if i < len(cur) && cur[i] == entity {
		return nil
	}
	next := make([]string, 0, len(cur)+1)
	next = append(next, cur[:i]...)
	next = append(next, entity)
	next = append(next, cur[i:]...)

	return g.SetAttr(id, key, next)
}

// dedupe compacts a sorted slice in place.
func dedupe(s []string) []string {
	w := 0
	for i, x := range s {
		if i > 0 && x == s[w-1] {
			continue
		}
		s[w] = x
		w++
	}

	return s[:w]
}
