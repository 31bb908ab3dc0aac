// SPDX-License-Identifier: MIT

package coverage_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/katalvlaran/lvsum/coverage"
	"github.com/katalvlaran/lvsum/textmodel"
	"github.com/stretchr/testify/require"
)

// bruteForce returns OPT over all subsets fitting the budget.
func bruteForce(inst *coverage.Instance, budget int) float64 {
	n := inst.Len()
	best := 0.0
	for mask := 0; mask < 1<<n; mask++ {
		var sel []int
		used := 0
		for s := 0; s < n; s++ {
			if mask&(1<<s) != 0 {
				sel = append(sel, s)
				used += inst.Length(s)
			}
		}
		if used > budget {
			continue
		}
		best = math.Max(best, inst.Value(sel))
	}

	return best
}

// randomInstance draws n sentences over c concepts with lengths in [1,maxLen].
func randomInstance(t *testing.T, rng *rand.Rand, n, c, maxLen int) *coverage.Instance {
	t.Helper()
	concepts := make([][]int, n)
	lengths := make([]int, n)
	for s := range concepts {
		k := 1 + rng.Intn(4)
		for j := 0; j < k; j++ {
			concepts[s] = append(concepts[s], rng.Intn(c))
		}
		lengths[s] = 1 + rng.Intn(maxLen)
	}
	weights := make([]float64, c)
	for i := range weights {
		weights[i] = float64(1 + rng.Intn(5))
	}
	inst, err := coverage.NewInstance(concepts, weights, lengths)
	require.NoError(t, err)

	return inst
}

func requireFeasible(t *testing.T, inst *coverage.Instance, res coverage.Result, budget int) {
	t.Helper()
	used := 0
	for k, s := range res.Selected {
		if k > 0 {
			require.Less(t, res.Selected[k-1], s) // ascending, duplicate-free
		}
		used += inst.Length(s)
	}
	require.LessOrEqual(t, used, budget)
	require.Equal(t, used, res.Length)
	require.InDelta(t, inst.Value(res.Selected), res.Value, 1e-9)
}

// TestGreedyApproximationUnitLengths checks F(greedy) ≥ (1−1/e)·OPT on
// cardinality-constrained instances of up to 12 sentences.
func TestGreedyApproximationUnitLengths(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 60; trial++ {
		n := 4 + rng.Intn(9) // 4..12
		inst := randomInstance(t, rng, n, 10, 1)
		k := 1 + rng.Intn(n)

		res, err := coverage.Greedy(inst, k)
		require.NoError(t, err)
		requireFeasible(t, inst, res, k)
		opt := bruteForce(inst, k)
		require.GreaterOrEqual(t, res.Value+1e-9, (1-1/math.E)*opt, "trial %d", trial)
		require.False(t, res.Optimal)
	}
}

// TestGreedyApproximationKnapsack checks the same bound with lengths 1..8
// and budgets 1..20.
func TestGreedyApproximationKnapsack(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	for trial := 0; trial < 300; trial++ {
		n := 4 + rng.Intn(9) // 4..12
		inst := randomInstance(t, rng, n, 10, 8)
		budget := 1 + rng.Intn(20)

		res, err := coverage.Greedy(inst, budget)
		require.NoError(t, err)
		requireFeasible(t, inst, res, budget)
		opt := bruteForce(inst, budget)
		require.GreaterOrEqual(t, res.Value+1e-9, (1-1/math.E)*opt, "trial %d", trial)
	}
}

func TestGreedySeededRestart(t *testing.T) {
	// By ratio the short sentence goes first and only one long sentence
	// fits after it; the two long sentences together are worth more.
	inst, err := coverage.NewInstance(
		[][]int{{0}, {1, 2}, {3, 4}},
		[]float64{3, 3, 3, 3, 3},
		[]int{1, 4, 4},
	)
	require.NoError(t, err)

	plain, err := coverage.Greedy(inst, 8, coverage.WithSeedSize(0))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, plain.Selected)
	require.Equal(t, 9.0, plain.Value)

	seeded, err := coverage.Greedy(inst, 8)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, seeded.Selected)
	require.Equal(t, 12.0, seeded.Value)

	_, err = coverage.Greedy(inst, 8, coverage.WithSeedSize(-1))
	require.ErrorIs(t, err, coverage.ErrBadOption)
}

func TestBranchAndBoundMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 60; trial++ {
		n := 3 + rng.Intn(10) // 3..12
		inst := randomInstance(t, rng, n, 12, 6)
		budget := rng.Intn(20)

		res, err := coverage.BranchAndBound(inst, budget)
		require.NoError(t, err)
		require.True(t, res.Optimal)
		require.Empty(t, res.Cutoff)
		requireFeasible(t, inst, res, budget)
		require.InDelta(t, bruteForce(inst, budget), res.Value, 1e-9, "trial %d", trial)

		g, err := coverage.Greedy(inst, budget)
		require.NoError(t, err)
		require.GreaterOrEqual(t, res.Value+1e-9, g.Value) // never worse than its seed
	}
}

func TestBranchAndBoundNodeCutoff(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	inst := randomInstance(t, rng, 12, 12, 4)
	g, err := coverage.Greedy(inst, 10)
	require.NoError(t, err)

	res, err := coverage.BranchAndBound(inst, 10, coverage.WithMaxNodes(1))
	require.NoError(t, err) // cutoff is not an error
	require.False(t, res.Optimal)
	require.Equal(t, "nodes", res.Cutoff)
	require.Equal(t, g.Selected, res.Selected) // greedy incumbent survives
	requireFeasible(t, inst, res, 10)
}

func TestBranchAndBoundTimeLimit(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	inst := randomInstance(t, rng, 2000, 400, 8)
	limit := 100 * time.Millisecond

	start := time.Now()
	res, err := coverage.BranchAndBound(inst, 250, coverage.WithTimeLimit(limit), coverage.WithMaxNodes(0))
	elapsed := time.Since(start)
	require.NoError(t, err)
	require.Less(t, elapsed, 15*limit)
	if !res.Optimal {
		require.Equal(t, "time", res.Cutoff)
	}
	requireFeasible(t, inst, res, 250)
}

func TestGreedySingletonCorrection(t *testing.T) {
	// Two short sentences with good ratios would use up the budget; the long
	// sentence alone is worth more.
	inst, err := coverage.NewInstance(
		[][]int{{0}, {1}, {2, 3, 4, 5}},
		[]float64{2, 2, 3, 3, 3, 3},
		[]int{1, 1, 10},
	)
	require.NoError(t, err)
	res, err := coverage.Greedy(inst, 10)
	require.NoError(t, err)
	require.Equal(t, []int{2}, res.Selected)
	require.Equal(t, 12.0, res.Value)
}

func TestGreedyLengthExponent(t *testing.T) {
	inst, err := coverage.NewInstance(
		[][]int{{0, 1, 2}, {3}, {4}, {5}},
		[]float64{1, 1, 1, 1, 1, 1},
		[]int{4, 1, 1, 1},
	)
	require.NoError(t, err)

	byRatio, err := coverage.Greedy(inst, 5, coverage.WithSeedSize(0))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, byRatio.Selected) // short sentences first, then 0 overflows
	require.Equal(t, 3.0, byRatio.Value)

	byGain, err := coverage.Greedy(inst, 5, coverage.WithLengthExponent(0), coverage.WithSeedSize(0))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, byGain.Selected) // raw gain ignores length
	require.Equal(t, 4.0, byGain.Value)
}

func TestZeroBudgetAndEmpty(t *testing.T) {
	inst, err := coverage.NewInstance([][]int{{0}}, []float64{1}, []int{3})
	require.NoError(t, err)
	res, err := coverage.BranchAndBound(inst, 0)
	require.NoError(t, err)
	require.Empty(t, res.Selected)
	require.True(t, res.Optimal)

	empty, err := coverage.NewInstance(nil, nil, nil)
	require.NoError(t, err)
	res, err = coverage.Greedy(empty, 100)
	require.NoError(t, err)
	require.Empty(t, res.Selected)
}

func TestInstanceErrors(t *testing.T) {
	_, err := coverage.NewInstance([][]int{{0}}, []float64{1}, nil)
	require.ErrorIs(t, err, coverage.ErrLengthMismatch)
	_, err = coverage.NewInstance([][]int{{1}}, []float64{1}, []int{1})
	require.ErrorIs(t, err, coverage.ErrBadConcept)
	_, err = coverage.NewInstance([][]int{{0}}, []float64{-1}, []int{1})
	require.ErrorIs(t, err, coverage.ErrBadWeight)
	_, err = coverage.NewInstance([][]int{{0}}, []float64{1}, []int{-2})
	require.ErrorIs(t, err, coverage.ErrBadLength)

	inst, err := coverage.NewInstance([][]int{{0, 0}}, []float64{1}, []int{1})
	require.NoError(t, err)
	require.Equal(t, 1.0, inst.Value([]int{0, 0})) // duplicates collapse
	_, err = coverage.Greedy(inst, -1)
	require.ErrorIs(t, err, coverage.ErrBadBudget)
	_, err = coverage.BranchAndBound(inst, 1, coverage.WithMaxNodes(-1))
	require.ErrorIs(t, err, coverage.ErrBadOption)
}

func TestFromDocumentSet(t *testing.T) {
	w := func(ws ...string) []textmodel.Word {
		out := make([]textmodel.Word, len(ws))
		for i, s := range ws {
			out[i] = textmodel.Word(s)
		}

		return out
	}
	ds := textmodel.NewBuilder("").
		AddDocument(
			textmodel.SentenceSpec{Words: w("storm", "coast")},
			textmodel.SentenceSpec{Words: w("storm", "rain")},
		).
		AddDocument(textmodel.SentenceSpec{Words: w("storm", "coast", "damage")}).
		Build()
	inst, err := coverage.FromDocumentSet(ds, 2) // keep concepts in both documents
	require.NoError(t, err)
	require.Equal(t, 3, inst.Len())
	require.Equal(t, 4.0, inst.Value([]int{0}))    // storm(2) + coast(2)
	require.Equal(t, 2.0, inst.Value([]int{1}))    // storm only
	require.Equal(t, 4.0, inst.Value([]int{0, 2})) // nothing new

	res, err := coverage.BranchAndBound(inst, 2)
	require.NoError(t, err)
	require.Equal(t, []int{0}, res.Selected)
}
