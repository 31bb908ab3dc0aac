// SPDX-License-Identifier: MIT

package simgraph_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvsum/matrix"
	"github.com/katalvlaran/lvsum/simgraph"
	"github.com/katalvlaran/lvsum/textmodel"
	"github.com/stretchr/testify/require"
)

func model(t *testing.T, query string, sentences ...string) *textmodel.Model {
	t.Helper()
	specs := make([]textmodel.SentenceSpec, len(sentences))
	for i, s := range sentences {
		specs[i] = textmodel.SentenceSpec{Text: s, Words: words(s)}
	}
	ds := textmodel.NewBuilder("t").AddDocument(specs...).Build()
	var q *textmodel.Query
	if query != "" {
		q = &textmodel.Query{Text: query, Words: words(query)}
	}

	return textmodel.NewModel(ds, q)
}

func words(s string) []textmodel.Word {
	var out []textmodel.Word
	for _, f := range strings.Fields(s) {
		out = append(out, textmodel.Word(f))
	}

	return out
}

var corpus = []string{
	"solar panels convert sunlight into power",
	"wind turbines convert wind into power",
	"solar power grows fast",
	"the cat sleeps",
}

func requireSymmetric(t *testing.T, g *simgraph.Graph) {
	t.Helper()
	for i := 0; i < g.Len(); i++ {
		require.Zero(t, g.Weight(i, i))
		for j := 0; j < g.Len(); j++ {
			require.Equal(t, g.Weight(i, j), g.Weight(j, i))
			require.GreaterOrEqual(t, g.Weight(i, j), 0.0)
			require.LessOrEqual(t, g.Weight(i, j), 1.0)
		}
	}
}

func TestBuildCosineSymmetric(t *testing.T) {
	g, err := simgraph.Build(model(t, "", corpus...))
	require.NoError(t, err)
	require.Equal(t, 4, g.Len())
	requireSymmetric(t, g)
	require.NoError(t, matrix.ValidateSymmetric(g.Matrix(), matrix.DefaultEpsilon))
	require.False(t, g.HasQuery())

	require.Greater(t, g.Weight(0, 2), 0.0)
	require.Zero(t, g.Weight(0, 3)) // nothing in common
	require.Empty(t, g.Neighbors(3))
	require.Equal(t, 3, g.EdgeCount())
}

func TestBuildOverlapScaled(t *testing.T) {
	g, err := simgraph.Build(model(t, "", corpus...), simgraph.WithMeasure(simgraph.Overlap))
	require.NoError(t, err)
	requireSymmetric(t, g)

	peak := 0.0
	for i := 0; i < g.Len(); i++ {
		for _, e := range g.Neighbors(i) {
			peak = max(peak, e.Weight)
		}
	}
	require.InDelta(t, 1.0, peak, 1e-12) // scaled by the maximum
}

func TestThresholdAndTopK(t *testing.T) {
	m := model(t, "", corpus...)
	dense, err := simgraph.Build(m)
	require.NoError(t, err)

	cut := dense.Weight(0, 1) + 1e-9
	thr, err := simgraph.Build(m, simgraph.WithThreshold(cut))
	require.NoError(t, err)
	require.Zero(t, thr.Weight(0, 1))
	requireSymmetric(t, thr)

	top, err := simgraph.Build(m, simgraph.WithTopK(1))
	require.NoError(t, err)
	requireSymmetric(t, top)
	for i := 0; i < top.Len(); i++ {
		for _, e := range top.Neighbors(i) {
			// kept edges are someone's strongest neighbour
			strongestOfI := true
			for _, other := range dense.Neighbors(i) {
				if other.Weight > e.Weight {
					strongestOfI = false
				}
			}
			strongestOfJ := true
			for _, other := range dense.Neighbors(e.To) {
				if other.Weight > e.Weight {
					strongestOfJ = false
				}
			}
			require.True(t, strongestOfI || strongestOfJ)
		}
	}
}

func TestBuildOptionErrors(t *testing.T) {
	m := model(t, "", corpus...)
	_, err := simgraph.Build(m, simgraph.WithThreshold(1.5))
	require.ErrorIs(t, err, simgraph.ErrBadThreshold)
	_, err = simgraph.Build(m, simgraph.WithTopK(-1))
	require.ErrorIs(t, err, simgraph.ErrBadTopK)
	_, err = simgraph.Build(m, simgraph.WithMeasure(simgraph.Measure(9)))
	require.ErrorIs(t, err, simgraph.ErrBadMeasure)
	_, err = simgraph.Build(nil)
	require.ErrorIs(t, err, simgraph.ErrNilModel)
}

func TestQuerySim(t *testing.T) {
	g, err := simgraph.Build(model(t, "wind power", corpus...))
	require.NoError(t, err)
	require.True(t, g.HasQuery())
	require.Len(t, g.QuerySim, 4)
	require.Greater(t, g.QuerySim[1], g.QuerySim[0]) // shares both words
	require.Zero(t, g.QuerySim[3])
	require.Equal(t, 4, g.Len()) // query is not a node
}

func TestTransitionRowStochastic(t *testing.T) {
	g, err := simgraph.Build(model(t, "", corpus...))
	require.NoError(t, err)
	tr, err := simgraph.Transition(g)
	require.NoError(t, err)
	for i := 0; i < tr.Rows(); i++ {
		sum := 0.0
		for _, v := range tr.RowView(i) {
			sum += v
		}
		require.InDelta(t, 1.0, sum, 1e-12)
	}
	require.InDelta(t, 0.25, tr.RowView(3)[0], 1e-12) // isolated → uniform

	s, err := simgraph.Normalized(g)
	require.NoError(t, err)
	require.Zero(t, s.RowView(3)[0]) // isolated stays zero

	empty, err := simgraph.Build(model(t, ""))
	require.NoError(t, err)
	_, err = simgraph.Transition(empty)
	require.ErrorIs(t, err, simgraph.ErrEmptyGraph)
}
