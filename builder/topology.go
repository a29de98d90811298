// SPDX-License-Identifier: MIT
// Package: flarelath/builder
//
// topology.go — deterministic topology constructors.
//
// Each constructor:
//   - adds vertices via cfg.idFn (Star additionally uses the fixed ID "Center"),
//   - emits edges in a stable, documented order,
//   - draws weights from cfg.weightFn only on weighted graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/flarelath/core"
)

// CenterVertexID is the fixed hub ID used by Star.
const CenterVertexID = "Center"

const (
	methodPath     = "Path"
	methodStar     = "Star"
	methodCycle    = "Cycle"
	methodComplete = "Complete"

	minPathNodes     = 2
	minStarNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 1
)

// Path builds a simple path P_n: idFn(0)–idFn(1)–…–idFn(n-1), n ≥ 2.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodPath, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a star with hub CenterVertexID and n-1 leaves idFn(1)…idFn(n-1), n ≥ 2.
// On directed graphs every spoke is emitted in both directions.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := addEdge(g, cfg, methodStar, CenterVertexID, leaf); err != nil {
				return err
			}
			if g.Directed() {
				if err := addEdge(g, cfg, methodStar, leaf, CenterVertexID); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Cycle builds C_n, n ≥ 3: a path closed by idFn(n-1)–idFn(0).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n, n ≥ 1, emitting pairs (i,j) with i<j in row-major order.
// Directed graphs receive both orientations.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}
		directed := g.Directed()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := cfg.idFn(i), cfg.idFn(j)
				if err := addEdge(g, cfg, methodComplete, u, v); err != nil {
					return err
				}
				if directed {
					if err := addEdge(g, cfg, methodComplete, v, u); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Edges adds explicit undirected-or-directed edges given as ID pairs
// {from0, to0, from1, to1, ...}. An odd-length list is rejected.
// Useful for small hand-drawn Mapper fixtures.
func Edges(pairs ...string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(pairs)%2 != 0 {
			return fmt.Errorf("Edges: odd endpoint count %d: %w", len(pairs), ErrConstructFailed)
		}
		for i := 0; i < len(pairs); i += 2 {
			if err := addEdge(g, cfg, "Edges", pairs[i], pairs[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := edgeWeight(g, cfg)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
