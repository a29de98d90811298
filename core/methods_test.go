// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flarelath/core"
)

func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A"))
	assert.True(t, g.HasVertex("A"))

	// idempotent
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, 1, g.VertexCount())

	assert.ErrorIs(t, g.RemoveVertex(""), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.RemoveVertex("Z"), core.ErrVertexNotFound)
	require.NoError(t, g.RemoveVertex("A"))
	assert.False(t, g.HasVertex("A"))
}

func TestGraph_RemoveVertexDropsIncidentEdges(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 0)
	require.NoError(t, err)

	require.NoError(t, g.RemoveVertex("B"))
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.HasEdge("A", "B"))
	nbs, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Empty(t, nbs)
}

func TestGraph_AddEdgePolicies(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("A", "B", 2.5)
	assert.ErrorIs(t, err, core.ErrBadWeight)

	_, err = g.AddEdge("A", "A", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	// undirected mirror is the same pair
	_, err = g.AddEdge("B", "A", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	_, err = g.AddEdge("", "B", 0)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestGraph_WeightedAcceptsAnyFloat(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	eid, err := g.AddEdge("A", "B", -3)
	require.NoError(t, err)

	e, err := g.GetEdge(eid)
	require.NoError(t, err)
	assert.Equal(t, -3.0, e.Weight)
	assert.Equal(t, "B", e.Other("A"))
	assert.Equal(t, "A", e.Other("B"))
}

func TestGraph_DirectedAdjacency(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))

	out, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, out)
	in, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Empty(t, in)
}

func TestGraph_DeterministicOrdering(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"d", "b", "a", "c"} {
		require.NoError(t, g.AddVertex(id))
	}
	_, _ = g.AddEdge("a", "d", 0)
	_, _ = g.AddEdge("a", "b", 0)
	_, _ = g.AddEdge("a", "c", 0)

	assert.Equal(t, []string{"a", "b", "c", "d"}, g.Vertices())
	nbs, err := g.NeighborIDs("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "d"}, nbs)

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e3", edges[2].ID)

	deg, err := g.Degree("a")
	require.NoError(t, err)
	assert.Equal(t, 3, deg)
}

func TestGraph_RemoveEdge(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	e1, _ := g.AddEdge("A", "B", 0)
	e2, _ := g.AddEdge("A", "B", 0)
	assert.Len(t, g.EdgesBetween("B", "A"), 2)

	require.NoError(t, g.RemoveEdge(e1))
	assert.True(t, g.HasEdge("A", "B"))
	require.NoError(t, g.RemoveEdge(e2))
	assert.False(t, g.HasEdge("B", "A"))
	assert.ErrorIs(t, g.RemoveEdge(e2), core.ErrEdgeNotFound)
}

func TestGraph_SelfLoopDegree(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, err := g.AddEdge("A", "A", 0)
	require.NoError(t, err)
	deg, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 2, deg)
}
