// SPDX-License-Identifier: MIT

package distributional_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/lvsum/distributional"
	"github.com/katalvlaran/lvsum/textmodel"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var corpus = []string{
	"markets rallied as investors cheered strong bank earnings",
	"bank earnings beat forecasts and markets climbed",
	"the football club signed a young striker",
	"the striker scored twice in the club debut",
	"investors expect markets to stay strong",
	"rain is expected tomorrow",
}

func docSet(sentences ...string) *textmodel.DocumentSet {
	specs := make([]textmodel.SentenceSpec, len(sentences))
	for i, s := range sentences {
		var ws []textmodel.Word
		for _, f := range strings.Fields(s) {
			ws = append(ws, textmodel.Word(f))
		}
		specs[i] = textmodel.SentenceSpec{Text: s, Words: ws}
	}

	return textmodel.NewBuilder("news").AddDocument(specs...).Build()
}

func requireWithinBudget(t *testing.T, sel, lengths []int, budget int) {
	t.Helper()
	used := 0
	seen := map[int]bool{}
	for _, i := range sel {
		require.False(t, seen[i], "duplicate %d", i)
		seen[i] = true
		used += lengths[i]
	}
	require.LessOrEqual(t, used, budget)
}

func TestRandomSeeded(t *testing.T) {
	lengths := []int{3, 4, 5, 6, 7, 8, 9}
	a, err := distributional.Random(lengths, 20, 42)
	require.NoError(t, err)
	b, err := distributional.Random(lengths, 20, 42)
	require.NoError(t, err)
	require.Equal(t, a, b)
	requireWithinBudget(t, a, lengths, 20)

	z1, err := distributional.Random(lengths, 100, 0)
	require.NoError(t, err)
	z2, err := distributional.Random(lengths, 100, 1) // seed 0 maps to the default seed 1
	require.NoError(t, err)
	require.Equal(t, z1, z2)
	require.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6}, z1) // everything fits

	_, err = distributional.Random(lengths, -1, 0)
	require.ErrorIs(t, err, distributional.ErrBadBudget)
}

func TestKLPrefersRepresentativeSentences(t *testing.T) {
	ds := docSet(corpus...)
	sel, err := distributional.KL(ds, 8)
	require.NoError(t, err)
	require.NotEmpty(t, sel)
	requireWithinBudget(t, sel, ds.Lengths(), 8)

	again, err := distributional.KL(ds, 8)
	require.NoError(t, err)
	require.Equal(t, sel, again)

	all, err := distributional.KL(ds, ds.TotalLength())
	require.NoError(t, err)
	require.Len(t, all, ds.Len()) // keeps adding while anything fits
}

func TestKLSingleWordTie(t *testing.T) {
	// identical distributions: the lower index wins
	ds := docSet("alpha beta", "alpha beta", "gamma")
	sel, err := distributional.KL(ds, 2)
	require.NoError(t, err)
	require.Equal(t, []int{0}, sel)
}

// klReference computes KL(Q ‖ P) over the whole vocabulary, Q being the
// words of sel.
func klReference(ds *textmodel.DocumentSet, sel []int) float64 {
	doc := map[textmodel.Word]float64{}
	var docTotal float64
	for _, s := range ds.Sentences() {
		for _, w := range s.Words {
			doc[w]++
			docTotal++
		}
	}
	q := map[textmodel.Word]float64{}
	var qTotal float64
	for _, i := range sel {
		for _, w := range ds.Sentences()[i].Words {
			q[w]++
			qTotal++
		}
	}
	if qTotal == 0 {
		return math.Inf(1)
	}
	var d float64
	for w, p := range doc {
		if q[w] == 0 {
			continue
		}
		qw := q[w] / qTotal
		d += qw * math.Log(qw/(p/docTotal))
	}

	return d
}

// TestKLStepsMinimiseDivergence replays every greedy step against the
// full-vocabulary divergence.
func TestKLStepsMinimiseDivergence(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	vocab := strings.Fields("a b c d e f g h i j k l m n o p q r s t u v w x y z")
	for trial := 0; trial < 20; trial++ {
		sentences := make([]string, 5+rng.Intn(10))
		for i := range sentences {
			words := make([]string, 1+rng.Intn(6))
			for j := range words {
				words[j] = vocab[rng.Intn(len(vocab))]
			}
			sentences[i] = strings.Join(words, " ")
		}
		ds := docSet(sentences...)
		lengths := ds.Lengths()
		budget := 3 + rng.Intn(15)

		sel, err := distributional.KL(ds, budget)
		require.NoError(t, err)
		requireWithinBudget(t, sel, lengths, budget)

		used := map[int]bool{}
		remaining := budget
		for k, got := range sel {
			bestRef := math.Inf(1)
			for i := range sentences {
				if used[i] || lengths[i] > remaining {
					continue
				}
				bestRef = math.Min(bestRef, klReference(ds, append(append([]int(nil), sel[:k]...), i)))
			}
			require.InDelta(t, bestRef, klReference(ds, sel[:k+1]), 1e-9, "trial %d step %d", trial, k)
			used[got] = true
			remaining -= lengths[got]
		}
		for i := range sentences {
			require.True(t, used[i] || lengths[i] > remaining, "trial %d: %d still fits", trial, i)
		}
	}
}

func TestLSAScores(t *testing.T) {
	ds := docSet(corpus...)
	m := textmodel.NewModel(ds, nil)

	scores, err := distributional.LSAScores(m, 0)
	require.NoError(t, err)
	require.Len(t, scores, ds.Len())
	for _, s := range scores {
		require.GreaterOrEqual(t, s, 0.0)
	}

	// with k = rank the score is the column norm of A
	full, err := distributional.LSAScores(m, 1_000)
	require.NoError(t, err)
	for j := range full {
		require.InDelta(t, m.Vector(j).Norm(), full[j], 1e-9)
	}

	sel, err := distributional.LSA(m, ds.Lengths(), 10, 2)
	require.NoError(t, err)
	requireWithinBudget(t, sel, ds.Lengths(), 10)

	_, err = distributional.LSA(m, []int{1}, 10, 2)
	require.ErrorIs(t, err, distributional.ErrLengthMismatch)
}

func TestFactorizeReducesError(t *testing.T) {
	a := mat.NewDense(3, 4, []float64{
		1, 1, 0, 0,
		1, 1, 0, 0,
		0, 0, 2, 2,
	})
	residual := func(iter int) float64 {
		w, h := distributional.Factorize(a, 2, iter, 5)
		var wh, diff mat.Dense
		wh.Mul(w, h)
		diff.Sub(a, &wh)

		return mat.Norm(&diff, 2)
	}
	require.Less(t, residual(300), residual(1))
	require.Less(t, residual(300), 0.5) // ‖A‖ ≈ 3.46; rank-2 input is mostly recovered
}

func TestNMFVisitsEverySentence(t *testing.T) {
	ds := docSet(corpus...)
	m := textmodel.NewModel(ds, nil)
	lengths := ds.Lengths()

	sel, err := distributional.NMF(m, lengths, ds.TotalLength(), distributional.WithTopics(2))
	require.NoError(t, err)
	require.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5}, sel)

	small, err := distributional.NMF(m, lengths, 12, distributional.WithTopics(2), distributional.WithIterations(50))
	require.NoError(t, err)
	requireWithinBudget(t, small, lengths, 12)
	again, err := distributional.NMF(m, lengths, 12, distributional.WithTopics(2), distributional.WithIterations(50))
	require.NoError(t, err)
	require.Equal(t, small, again)

	_, err = distributional.NMF(m, lengths, 12, distributional.WithTopics(0))
	require.ErrorIs(t, err, distributional.ErrBadOption)
}

func TestEmptyInputs(t *testing.T) {
	ds := docSet()
	m := textmodel.NewModel(ds, nil)

	sel, err := distributional.KL(ds, 10)
	require.NoError(t, err)
	require.Empty(t, sel)
	sel, err = distributional.LSA(m, nil, 10, 0)
	require.NoError(t, err)
	require.Empty(t, sel)
	sel, err = distributional.NMF(m, nil, 10)
	require.NoError(t, err)
	require.Empty(t, sel)
	sel, err = distributional.Random(nil, 10, 3)
	require.NoError(t, err)
	require.Empty(t, sel)
}
