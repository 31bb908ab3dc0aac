// SPDX-License-Identifier: MIT

package summarizer_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/lvsum/centrality"
	"github.com/katalvlaran/lvsum/coverage"
	"github.com/katalvlaran/lvsum/summarizer"
	"github.com/katalvlaran/lvsum/textmodel"
	"github.com/katalvlaran/lvsum/textproc"
	"github.com/stretchr/testify/require"
)

var energy = []string{
	"Wind turbines generate power.",
	"Solar panels generate power.",
	"Wind turbines spin blades.",
	"Solar panels absorb light.",
	"Batteries store generated power.",
}

func energySet() *textmodel.DocumentSet {
	specs := make([]textmodel.SentenceSpec, len(energy))
	for i, s := range energy {
		specs[i] = textmodel.SentenceSpec{Text: s}
	}

	return textmodel.NewBuilder("energy").AddDocument(specs...).Build()
}

func mustSummarizer(t *testing.T, opts ...summarizer.Option) *summarizer.Summarizer {
	t.Helper()
	cfg, err := summarizer.NewConfig(opts...)
	require.NoError(t, err)
	s, err := summarizer.New(cfg, textproc.NewNormalizer(textproc.English, nil, false))
	require.NoError(t, err)

	return s
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name     string
		hasQuery bool
		want     summarizer.Strategy
		err      error
	}{
		{"LexRank", false, summarizer.LexRank, nil},
		{"lexrank", true, summarizer.LexRank, nil},
		{" ilp ", false, summarizer.ILP, nil},
		{"manifoldrank", true, summarizer.ManifoldRank, nil},
		{"manifoldrank", false, "", summarizer.ErrQueryRequired},
		{"textrank", true, "", summarizer.ErrQueryNotSupported},
		{"luhn", false, "", summarizer.ErrUnknownStrategy},
	}
	for _, tc := range tests {
		got, err := summarizer.ParseStrategy(tc.name, tc.hasQuery)
		if tc.err != nil {
			require.ErrorIs(t, err, tc.err, tc.name)

			continue
		}
		require.NoError(t, err, tc.name)
		require.Equal(t, tc.want, got)
	}
	require.Equal(t, []string{"lexrank", "manifoldrank"}, summarizer.Strategies(true))
	require.Len(t, summarizer.Strategies(false), 8)
}

func TestNewConfigParams(t *testing.T) {
	cfg, err := summarizer.NewConfig(
		summarizer.WithStrategy(summarizer.ManifoldRank),
		summarizer.WithParams(0.9, 0.5),
	)
	require.NoError(t, err)
	require.Equal(t, 0.9, cfg.Alpha)
	require.Equal(t, 0.5, cfg.Lambda)
	require.Equal(t, summarizer.DefaultBudget, cfg.Budget)
	require.NotNil(t, cfg.Logger)

	// params win over earlier options regardless of order
	cfg, err = summarizer.NewConfig(
		summarizer.WithParams(1.5),
		summarizer.WithStrategy(summarizer.ILP),
		summarizer.WithTimeLimit(time.Minute),
	)
	require.NoError(t, err)
	require.Equal(t, 1500*time.Millisecond, cfg.TimeLimit)

	cfg, err = summarizer.NewConfig(summarizer.WithStrategy(summarizer.LSA), summarizer.WithParams(2))
	require.NoError(t, err)
	require.Equal(t, 2, cfg.RankK)

	bad := [][]summarizer.Option{
		{summarizer.WithStrategy(summarizer.LexRank), summarizer.WithParams(1.2)},
		{summarizer.WithStrategy(summarizer.KL), summarizer.WithParams(1)},
		{summarizer.WithStrategy(summarizer.ManifoldRank), summarizer.WithParams(0.5, 0.5, 0.5)},
		{summarizer.WithBudget(-1)},
		{summarizer.WithLambda(1.1)},
		{summarizer.WithTopics(0)},
		{summarizer.WithMethod("best")},
	}
	for i, opts := range bad {
		_, err = summarizer.NewConfig(opts...)
		require.ErrorIs(t, err, summarizer.ErrBadParam, "case %d", i)
	}
	_, err = summarizer.NewConfig(summarizer.WithStrategy("luhn"))
	require.ErrorIs(t, err, summarizer.ErrUnknownStrategy)
}

func TestNewRejects(t *testing.T) {
	cfg, err := summarizer.NewConfig()
	require.NoError(t, err)
	_, err = summarizer.New(cfg, nil)
	require.ErrorIs(t, err, summarizer.ErrNilNormalizer)
	_, err = summarizer.New(summarizer.Config{}, textproc.NewNormalizer(textproc.English, nil, false))
	require.ErrorIs(t, err, summarizer.ErrUnknownStrategy)
}

func TestSummarizeEmpty(t *testing.T) {
	for _, name := range summarizer.Strategies(false) {
		s := mustSummarizer(t, summarizer.WithStrategy(summarizer.Strategy(name)))
		out, err := s.Summarize(textmodel.NewBuilder("empty").Build(), "", 250)
		require.NoError(t, err, name)
		require.Empty(t, out.Sentences, name)
		require.Zero(t, out.Words)

		out, err = s.Summarize(nil, "", 250)
		require.NoError(t, err, name)
		require.Empty(t, out.Indices, name)
	}
}

func TestSummarizeBudgetEdges(t *testing.T) {
	s := mustSummarizer(t)
	out, err := s.Summarize(energySet(), "", 3) // every sentence has 4 words
	require.NoError(t, err)
	require.Empty(t, out.Indices)

	out, err = s.Summarize(energySet(), "", 0)
	require.NoError(t, err)
	require.Empty(t, out.Indices)

	_, err = s.Summarize(energySet(), "", -1)
	require.ErrorIs(t, err, summarizer.ErrBadParam)
}

func TestSummarizeQueryMode(t *testing.T) {
	_, err := mustSummarizer(t, summarizer.WithStrategy(summarizer.KL)).Summarize(energySet(), "solar", 8)
	require.ErrorIs(t, err, summarizer.ErrQueryNotSupported)

	m := mustSummarizer(t, summarizer.WithStrategy(summarizer.ManifoldRank))
	_, err = m.Summarize(energySet(), "  ", 8)
	require.ErrorIs(t, err, summarizer.ErrQueryRequired)
	_, err = m.Summarize(energySet(), "the of and", 8) // only stopwords
	require.ErrorIs(t, err, summarizer.ErrQueryRequired)

	out, err := mustSummarizer(t).Summarize(energySet(), "solar panels", 8)
	require.NoError(t, err)
	require.LessOrEqual(t, out.Words, 8)
}

func TestSubmodularFiveSentences(t *testing.T) {
	ds := energySet()
	budget := 2 * ds.TotalLength() / ds.Len()
	out, err := mustSummarizer(t, summarizer.WithStrategy(summarizer.Submodular)).Summarize(ds, "", budget)
	require.NoError(t, err)
	require.Len(t, out.Indices, 2)
	require.Less(t, out.Indices[0], out.Indices[1])

	norm := textproc.NewNormalizer(textproc.English, nil, false)
	i := 0
	normalized := ds.MapWords(func([]textmodel.Word) []textmodel.Word {
		w := norm.Normalize(norm.Tokenize(energy[i]))
		i++

		return w
	})
	inst, err := coverage.FromDocumentSet(normalized, 0)
	require.NoError(t, err)
	got := inst.Value(out.Indices)
	lengths := ds.Lengths()
	require.InDelta(t, 15.0, got, 1e-9)
	for a := 0; a < ds.Len(); a++ {
		for b := a + 1; b < ds.Len(); b++ {
			if lengths[a]+lengths[b] <= budget {
				require.GreaterOrEqual(t, got, inst.Value([]int{a, b}), "pair %d,%d", a, b)
			}
		}
	}
	require.Equal(t, []int{0, 3}, out.Indices)
}

func TestSummarizeDefaultUsesConfiguredBudget(t *testing.T) {
	s := mustSummarizer(t, summarizer.WithStrategy(summarizer.Submodular), summarizer.WithBudget(8))
	require.Equal(t, 8, s.Config().Budget)

	got, err := s.SummarizeDefault(energySet(), "")
	require.NoError(t, err)
	want, err := s.Summarize(energySet(), "", 8)
	require.NoError(t, err)
	require.Equal(t, want.Indices, got.Indices)
	require.Equal(t, []int{0, 3}, got.Indices)
	require.LessOrEqual(t, got.Words, 8)
}

func TestILPIsOptimal(t *testing.T) {
	out, err := mustSummarizer(t, summarizer.WithStrategy(summarizer.ILP)).Summarize(energySet(), "", 8)
	require.NoError(t, err)
	require.True(t, out.Diagnostics.Optimal)
	require.Positive(t, out.Diagnostics.Nodes)
	require.Len(t, out.Indices, 2)
}

func TestManifoldMMRLambdaOne(t *testing.T) {
	for _, budget := range []int{4, 8, 12} {
		top, err := mustSummarizer(t,
			summarizer.WithStrategy(summarizer.ManifoldRank),
		).Summarize(energySet(), "wind power", budget)
		require.NoError(t, err)

		mmr, err := mustSummarizer(t,
			summarizer.WithStrategy(summarizer.ManifoldRank),
			summarizer.WithMethod(summarizer.MethodMMR),
			summarizer.WithLambda(1),
		).Summarize(energySet(), "wind power", budget)
		require.NoError(t, err)
		require.Equal(t, top.Indices, mmr.Indices, "budget %d", budget)
	}
}

func TestManifoldPrefersQuerySentence(t *testing.T) {
	for _, solve := range []centrality.Method{centrality.Direct, centrality.Iterative} {
		out, err := mustSummarizer(t,
			summarizer.WithStrategy(summarizer.ManifoldRank),
			summarizer.WithSolve(solve),
		).Summarize(energySet(), "absorb light", 4)
		require.NoError(t, err)
		require.Equal(t, []int{3}, out.Indices, solve.String())
		require.False(t, out.Diagnostics.Fallback)
	}
}

func TestEveryStrategyBudgetAndOrder(t *testing.T) {
	ds := energySet()
	for _, name := range summarizer.Strategies(false) {
		for _, budget := range []int{4, 9, 13, 100} {
			out, err := mustSummarizer(t, summarizer.WithStrategy(summarizer.Strategy(name))).Summarize(ds, "", budget)
			require.NoError(t, err, name)
			require.LessOrEqual(t, out.Words, budget, name)
			require.NotEmpty(t, out.Indices, name)
			require.Equal(t, summarizer.Strategy(name), out.Diagnostics.Strategy)
			for i, idx := range out.Indices {
				require.Equal(t, idx, out.Sentences[i].Index)
				require.Equal(t, energy[idx], out.Sentences[i].Text)
				if i > 0 {
					require.Less(t, out.Indices[i-1], idx, name)
				}
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	for _, name := range summarizer.Strategies(false) {
		s := mustSummarizer(t, summarizer.WithStrategy(summarizer.Strategy(name)), summarizer.WithSeed(7))
		first, err := s.Summarize(energySet(), "", 9)
		require.NoError(t, err)
		for run := 0; run < 3; run++ {
			again, err := s.Summarize(energySet(), "", 9)
			require.NoError(t, err)
			require.Equal(t, first, again, name)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvsum.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
strategy: ManifoldRank
budget: 100
stem: true
manifold:
  alpha: 0.9
  method: mmr
  solve: iterative
coverage:
  time_limit_secs: 0.5
params: [0.8, 0.4]
`), 0o600))

	opts, err := summarizer.LoadFile(path)
	require.NoError(t, err)
	cfg, err := summarizer.NewConfig(opts...)
	require.NoError(t, err)
	require.Equal(t, summarizer.ManifoldRank, cfg.Strategy)
	require.Equal(t, 100, cfg.Budget)
	require.True(t, cfg.Stem)
	require.Equal(t, 0.8, cfg.Alpha) // params override manifold.alpha
	require.Equal(t, 0.4, cfg.Lambda)
	require.Equal(t, summarizer.MethodMMR, cfg.Method)
	require.Equal(t, centrality.Iterative, cfg.Solve)
	require.Equal(t, 500*time.Millisecond, cfg.TimeLimit)

	require.NoError(t, os.WriteFile(path, []byte("manifold:\n  solve: qr\n"), 0o600))
	_, err = summarizer.LoadFile(path)
	require.ErrorIs(t, err, summarizer.ErrBadParam)

	_, err = summarizer.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
