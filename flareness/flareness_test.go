package flareness_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flarelath/builder"
	"github.com/katalvlaran/flarelath/core"
	"github.com/katalvlaran/flarelath/dijkstra"
	"github.com/katalvlaran/flarelath/flareness"
	"github.com/katalvlaran/flarelath/trace"
)

var inf = math.Inf(1)

// fooBarPath is 0-1-2-3-4-5 with "bar" on 0 and "foo" on 1..5.
func fooBarPath(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil,
		builder.Path(6),
		builder.Tag("bar", "0"),
		builder.Tag("foo", "1", "2", "3", "4", "5"),
	)
	require.NoError(t, err)

	return g
}

func TestFlareness_PathWithShell(t *testing.T) {
	res, err := flareness.Flareness(fooBarPath(t), "foo")
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, []string{"2", "3", "4", "5"}, res.Core)
	assert.Equal(t, []string{"1"}, res.Shell)
	assert.Equal(t, flareness.Signature{4}, res.Signature)
	assert.Equal(t, [][]string{{"2", "3", "4", "5"}}, res.Components)
}

func TestFlareness_NoShellIsIsland(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(6), builder.TagAll("foo"))
	require.NoError(t, err)

	res, err := flareness.Flareness(g, "foo")
	require.NoError(t, err)
	assert.Empty(t, res.Shell)
	require.Len(t, res.Signature, 1)
	assert.True(t, math.IsInf(res.Signature[0], 1))

	typ, idx := flareness.ClassifyResult(res)
	assert.Equal(t, flareness.PureIsland, typ)
	assert.True(t, math.IsInf(idx, 1))
}

// "bar" sits on the single vertex 0 whose neighbor lies outside: pure shell.
func TestFlareness_PureShellIsDegenerate(t *testing.T) {
	res, err := flareness.Flareness(fooBarPath(t), "bar")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Empty(t, res.Signature)

	typ, idx := flareness.ClassifyResult(res)
	assert.Equal(t, flareness.None, typ)
	assert.Equal(t, 0.0, idx)
}

func TestFlareness_NotFound(t *testing.T) {
	rec := &trace.Collector{}
	res, err := flareness.Flareness(fooBarPath(t), "baz", flareness.WithRecorder(rec))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, "baz", res.Entity)
	assert.Nil(t, res.Signature)
	assert.Equal(t, 1, rec.Count(trace.OpNotFound))

	typ, _ := flareness.ClassifyResult(res)
	assert.Equal(t, flareness.NotFound, typ)
}

// Path 0-1-2-3 plus a detached edge x-y; "foo" on 1,2,3,x,y.
func TestFlareness_FlareAndIsland(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil,
		builder.Edges("0", "1", "1", "2", "2", "3", "x", "y"),
		builder.Tag("foo", "1", "2", "3", "x", "y"),
	)
	require.NoError(t, err)

	res, err := flareness.Flareness(g, "foo")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"2", "3"}, {"x", "y"}}, res.Components)
	assert.Equal(t, flareness.Signature{2, inf}, res.Signature)
	assert.True(t, res.Signature.HasFlare())
	assert.True(t, res.Signature.HasIsland())

	typ, idx := flareness.ClassifyResult(res)
	assert.Equal(t, flareness.FlareAndIsland, typ)
	assert.Equal(t, 2.0, idx)
}

func TestFlareness_EdgeWeights(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("0", "1", 1)
	_, _ = g.AddEdge("1", "2", 2.5)
	_, _ = g.AddEdge("2", "3", 0.5)
	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, g.SetAttr(id, core.DefaultMembershipKey, []string{"foo"}))
	}

	res, err := flareness.Flareness(g, "foo", flareness.WithWeigher(dijkstra.EdgeWeigher{}))
	require.NoError(t, err)
	assert.Equal(t, flareness.Signature{3}, res.Signature)

	unit, err := flareness.Flareness(g, "foo")
	require.NoError(t, err)
	assert.Equal(t, flareness.Signature{2}, unit.Signature)
}

// Stored weights cannot be read from a graph that never had any.
func TestFlareness_EdgeWeightsOnUnweightedGraph(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil,
		builder.Path(4),
		builder.Tag("bar", "0"),
		builder.Tag("foo", "1", "2", "3"),
	)
	require.NoError(t, err)

	_, err = flareness.Flareness(g, "foo", flareness.WithWeigher(dijkstra.EdgeWeigher{}))
	require.ErrorIs(t, err, dijkstra.ErrInvalidWeight)
	var werr *dijkstra.WeightError
	require.True(t, errors.As(err, &werr))
	require.NotEmpty(t, werr.Issues)
	for _, is := range werr.Issues {
		assert.Equal(t, dijkstra.ReasonMissing, is.Reason)
	}

	_, err = flareness.Flareness(g, "foo",
		flareness.WithWeigher(dijkstra.EdgeWeigher{}), flareness.WithValidateWeights(false))
	assert.ErrorIs(t, err, dijkstra.ErrInvalidWeight)
}

func TestFlareness_InvalidWeightsReportedBeforeSearch(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("0", "1", 1)
	bad, _ := g.AddEdge("1", "2", -2)
	for _, id := range []string{"1", "2"} {
		require.NoError(t, g.SetAttr(id, core.DefaultMembershipKey, []string{"foo"}))
	}

	rec := &trace.Collector{}
	_, err := flareness.Flareness(g, "foo",
		flareness.WithWeigher(dijkstra.EdgeWeigher{}), flareness.WithRecorder(rec))
	require.ErrorIs(t, err, dijkstra.ErrInvalidWeight)

	var werr *dijkstra.WeightError
	require.True(t, errors.As(err, &werr))
	require.NotEmpty(t, werr.Issues)
	assert.Equal(t, bad, werr.Issues[0].EdgeID)
	assert.Equal(t, dijkstra.ReasonNegative, werr.Issues[0].Reason)
	assert.Equal(t, 1, rec.Count(trace.OpValidation))
	assert.Zero(t, rec.Count(trace.OpEntity))
}

func TestFlareness_CustomMembershipKey(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithMembershipKey("firms")},
		builder.Path(4),
		builder.Tag("acme", "2", "3"),
	)
	require.NoError(t, err)

	res, err := flareness.Flareness(g, "acme")
	require.NoError(t, err)
	assert.False(t, res.Found)

	res, err = flareness.Flareness(g, "acme", flareness.WithMembershipKey("firms"))
	require.NoError(t, err)
	assert.Equal(t, flareness.Signature{1}, res.Signature)
}

func TestFlareness_Errors(t *testing.T) {
	_, err := flareness.Flareness(nil, "foo")
	assert.ErrorIs(t, err, flareness.ErrGraphNil)

	_, err = flareness.Flareness(core.NewGraph(), "")
	assert.ErrorIs(t, err, flareness.ErrEmptyEntity)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		sig   flareness.Signature
		typ   flareness.Type
		index float64
	}{
		{"empty", flareness.Signature{}, flareness.None, 0},
		{"island", flareness.Signature{inf}, flareness.PureIsland, inf},
		{"islands", flareness.Signature{inf, inf}, flareness.PureIsland, inf},
		{"mixed", flareness.Signature{3, 4, inf}, flareness.FlareAndIsland, 4},
		{"flare", flareness.Signature{1, 1, 2}, flareness.PureFlare, 2},
		{"zero", flareness.Signature{0}, flareness.PureFlare, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			typ, idx := flareness.Classify(tc.sig)
			assert.Equal(t, tc.typ, typ)
			assert.Equal(t, tc.index, idx)
		})
	}
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "not found", flareness.NotFound.String())
	assert.Equal(t, "flare and island", flareness.FlareAndIsland.String())
	assert.Equal(t, "Type(9)", flareness.Type(9).String())
}
