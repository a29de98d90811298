package flareness_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flarelath/builder"
	"github.com/katalvlaran/flarelath/core"
	"github.com/katalvlaran/flarelath/coreshell"
	"github.com/katalvlaran/flarelath/dijkstra"
	"github.com/katalvlaran/flarelath/flareness"
	"github.com/katalvlaran/flarelath/trace"
)

// reportGraph is the path 0..5 with:
//
//	long  on 1..5 -> [4]
//	short on 3..5 -> [2]
//	isl   on all  -> [+Inf]
//	edge  on 0    -> []
func reportGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil,
		builder.Path(6),
		builder.Tag("long", "1", "2", "3", "4", "5"),
		builder.Tag("short", "3", "4", "5"),
		builder.TagAll("isl"),
		builder.Tag("edge", "0"),
	)
	require.NoError(t, err)

	return g
}

func TestAnalyzeAll_Buckets(t *testing.T) {
	g := reportGraph(t)
	rep, err := flareness.AnalyzeAll(context.Background(), g,
		[]string{"long", "isl", "ghost", "short", "edge", "long"},
		flareness.WithWorkers(3))
	require.NoError(t, err)

	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, []string{"short", "long"}, rep.FlareOnly)
	assert.Equal(t, []string{"isl"}, rep.PureIsland)
	assert.Empty(t, rep.FlareAndIsland)
	assert.Equal(t, []string{"edge"}, rep.Degenerate)
	assert.Equal(t, []string{"ghost"}, rep.NotFound)

	var names []string
	for _, row := range rep.Rows {
		names = append(names, row.Entity)
	}
	assert.Equal(t, []string{"long", "isl", "short", "edge"}, names)

	row, ok := rep.Row("long")
	require.True(t, ok)
	assert.Equal(t, flareness.PureFlare, row.Type)
	assert.Equal(t, 4.0, row.Index)
	assert.Equal(t, flareness.Signature{4}, row.Signature)
}

func TestAnalyzeAll_IncludeNotFound(t *testing.T) {
	g := reportGraph(t)
	rep, err := flareness.AnalyzeAll(context.Background(), g, []string{"ghost", "short"},
		flareness.WithIncludeNotFound(true))
	require.NoError(t, err)

	require.Len(t, rep.Rows, 2)
	assert.Equal(t, flareness.Row{Entity: "ghost", Type: flareness.NotFound}, rep.Rows[0])
	assert.True(t, rep.Rows[1].Found)
}

func TestAnalyzeAll_ManyWorkersMatchSequential(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(40))
	require.NoError(t, err)
	var entities []string
	for i := 0; i < 30; i++ {
		e := fmt.Sprintf("e%02d", i)
		entities = append(entities, e)
		ids := make([]string, 0, 10)
		for j := i; j < i+10; j++ {
			ids = append(ids, fmt.Sprint(j))
		}
		require.NoError(t, builder.Apply(g, nil, builder.Tag(e, ids...)))
	}

	seq, err := flareness.AnalyzeAll(context.Background(), g, entities)
	require.NoError(t, err)
	par, err := flareness.AnalyzeAll(context.Background(), g, entities, flareness.WithWorkers(8))
	require.NoError(t, err)

	assert.Equal(t, seq.Rows, par.Rows)
	assert.Equal(t, seq.FlareOnly, par.FlareOnly)
	assert.Len(t, par.Rows, 30)
}

// Validation covers the whole graph, even edges no entity touches.
func TestAnalyzeAll_ValidatesOnce(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("a", "b", 1)
	_, _ = g.AddEdge("x", "y", -1)
	require.NoError(t, g.SetAttr("a", core.DefaultMembershipKey, []string{"foo"}))

	rec := &trace.Collector{}
	_, err := flareness.AnalyzeAll(context.Background(), g, []string{"foo"},
		flareness.WithWeigher(dijkstra.EdgeWeigher{}), flareness.WithRecorder(rec))
	require.ErrorIs(t, err, dijkstra.ErrInvalidWeight)
	assert.Equal(t, 1, rec.Count(trace.OpValidation))
	assert.Zero(t, rec.Count(trace.OpEntity))
}

// An empty entity ID, even one stored as a member, does not sink the run.
func TestAnalyzeAll_EmptyEntityIsNotFound(t *testing.T) {
	g := reportGraph(t)
	require.NoError(t, g.SetAttr("0", core.DefaultMembershipKey, []string{"", "edge", "isl"}))

	entities := coreshell.Entities(g, core.DefaultMembershipKey)
	assert.Equal(t, []string{"edge", "isl", "long", "short"}, entities)

	rec := &trace.Collector{}
	rep, err := flareness.AnalyzeAll(context.Background(), g, append([]string{""}, entities...),
		flareness.WithWorkers(2), flareness.WithIncludeNotFound(true), flareness.WithRecorder(rec))
	require.NoError(t, err)

	assert.Equal(t, []string{""}, rep.NotFound)
	assert.Equal(t, []string{"short", "long"}, rep.FlareOnly)
	assert.Equal(t, []string{"isl"}, rep.PureIsland)
	assert.Equal(t, []string{"edge"}, rep.Degenerate)
	require.Len(t, rep.Rows, 5)
	assert.False(t, rep.Rows[0].Found)
	assert.Equal(t, flareness.NotFound, rep.Rows[0].Type)
	assert.Zero(t, rep.Rows[0].Index)
	assert.Equal(t, 1, rec.Count(trace.OpNotFound))
}

func TestAnalyzeAll_Errors(t *testing.T) {
	_, err := flareness.AnalyzeAll(context.Background(), nil, nil)
	assert.ErrorIs(t, err, flareness.ErrGraphNil)

	_, err = flareness.AnalyzeAll(context.Background(), core.NewGraph(), nil, flareness.WithWorkers(0))
	assert.ErrorIs(t, err, flareness.ErrBadWorkers)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = flareness.AnalyzeAll(ctx, reportGraph(t), []string{"long"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzeAll_RecordsRun(t *testing.T) {
	rec := &trace.Collector{}
	rep, err := flareness.AnalyzeAll(context.Background(), reportGraph(t), []string{"long", "ghost"},
		flareness.WithRecorder(rec))
	require.NoError(t, err)

	assert.Equal(t, 1, rec.Count(trace.OpRunStart))
	assert.Equal(t, 1, rec.Count(trace.OpRunDone))
	assert.Equal(t, 1, rec.Count(trace.OpEntity))
	assert.Equal(t, 1, rec.Count(trace.OpNotFound))
	for _, e := range rec.Events() {
		assert.Equal(t, rep.RunID, e.RunID)
	}
}
