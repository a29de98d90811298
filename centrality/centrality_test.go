package centrality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flarelath/builder"
	"github.com/katalvlaran/flarelath/centrality"
	"github.com/katalvlaran/flarelath/core"
)

func TestHarmonic_Path(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)

	h, err := centrality.Harmonic(g)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, h["0"], 1e-12)
	assert.InDelta(t, 2.0, h["1"], 1e-12)
	assert.InDelta(t, 1.5, h["2"], 1e-12)
}

func TestHarmonic_PathIsSymmetricAndPeaksInMiddle(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(10))
	require.NoError(t, err)
	h, err := centrality.Harmonic(g)
	require.NoError(t, err)

	assert.Equal(t, h["0"], h["9"])
	assert.Equal(t, h["4"], h["5"])
	assert.Less(t, h["0"], h["1"])
	assert.Less(t, h["3"], h["4"])
}

func TestCloseness(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("iso"))

	c, err := centrality.Closeness(g)
	require.NoError(t, err)
	// n = 4, so reach scaling applies: (2/3)·(2/3)
	assert.InDelta(t, 4.0/9.0, c["0"], 1e-12)
	assert.InDelta(t, 2.0/3.0, c["1"], 1e-12)
	assert.Equal(t, 0.0, c["iso"])
}

func TestBetweenness(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)
	b, err := centrality.Betweenness(g)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, b["1"], 1e-12)
	assert.Equal(t, 0.0, b["0"])

	star, err := builder.BuildGraph(nil, nil, builder.Star(4))
	require.NoError(t, err)
	b, err = centrality.Betweenness(star)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, b[builder.CenterVertexID], 1e-12)
	assert.Equal(t, 0.0, b["1"])
}

// Two shortest paths through different middles split the credit.
func TestBetweenness_SplitsCredit(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	require.NoError(t, err)
	b, err := centrality.Betweenness(g)
	require.NoError(t, err)
	// each vertex sits on half of the paths between its two neighbors
	for _, v := range g.Vertices() {
		assert.InDelta(t, 1.0/6.0, b[v], 1e-12, v)
	}
}

func TestByNameAndCode(t *testing.T) {
	for _, name := range centrality.Names() {
		fn, err := centrality.ByName(name)
		require.NoError(t, err)
		_, err = fn(core.NewGraph())
		require.NoError(t, err)
	}
	code, err := centrality.Code(centrality.NameCloseness)
	require.NoError(t, err)
	assert.Equal(t, "C", code)

	_, err = centrality.ByName("pagerank")
	assert.ErrorIs(t, err, centrality.ErrUnknownMeasure)
	_, err = centrality.Code("pagerank")
	assert.ErrorIs(t, err, centrality.ErrUnknownMeasure)
	assert.Equal(t, []string{"betweenness", "closeness", "harmonic"}, centrality.Names())

	_, err = centrality.Harmonic(nil)
	assert.ErrorIs(t, err, centrality.ErrGraphNil)
	_, err = centrality.Betweenness(nil)
	assert.ErrorIs(t, err, centrality.ErrGraphNil)
}
