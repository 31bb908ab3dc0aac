// SPDX-License-Identifier: MIT

// Package diversity selects sentences under a word budget while trading
// relevance against redundancy.
//
// MMR scores an unconsidered sentence s as
//
//	λ·rel'(s) − (1−λ)·max_{t ∈ selected} sim(s, t)
//
// where rel' is relevance divided by its maximum, so both terms live in
// [0,1]. Each step considers the best-scoring sentence exactly once: it is
// appended when its length fits the remaining budget and permanently skipped
// otherwise. Ties go to the lower arena index. λ = 1 reduces MMR to
// TopByScore.
package diversity

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvsum/simgraph"
)

// Sentinel errors.
var (
	// ErrLengthMismatch indicates scores, lengths and graph disagree on n.
	ErrLengthMismatch = errors.New("diversity: input lengths differ")

	// ErrBadLambda indicates λ outside [0,1] or NaN.
	ErrBadLambda = errors.New("diversity: lambda must be in [0,1]")

	// ErrBadBudget indicates a negative word budget.
	ErrBadBudget = errors.New("diversity: budget must be >= 0")
)

// DefaultLambda balances relevance and novelty towards relevance.
const DefaultLambda = 0.7

// MMR returns the selected arena indices in selection order.
//
// Complexity: O(n²) time, O(n) extra space.
func MMR(rel []float64, g *simgraph.Graph, lengths []int, budget int, lambda float64) ([]int, error) {
	n := len(rel)
	if len(lengths) != n || g.Len() != n {
		return nil, fmt.Errorf("MMR: rel %d, lengths %d, graph %d: %w", n, len(lengths), g.Len(), ErrLengthMismatch)
	}
	if math.IsNaN(lambda) || lambda < 0 || lambda > 1 {
		return nil, fmt.Errorf("MMR: lambda %v: %w", lambda, ErrBadLambda)
	}
	if budget < 0 {
		return nil, fmt.Errorf("MMR: budget %d: %w", budget, ErrBadBudget)
	}

	norm := scaleByMax(rel)
	considered := make([]bool, n)
	maxSim := make([]float64, n) // max similarity to the current selection
	selected := make([]int, 0)
	remaining := budget

	var (
		step, v, best int
		score, top    float64
	)
	for step = 0; step < n; step++ {
		best = -1
		for v = 0; v < n; v++ { // scan unconsidered sentences for the best MMR score
			if considered[v] {
				continue
			}
			score = lambda*norm[v] - (1-lambda)*maxSim[v]
			if best == -1 || score > top {
				best, top = v, score // strict > keeps the lower index on ties
			}
		}
		considered[best] = true
		if lengths[best] > remaining {
			continue // overflow: skipped for good
		}
		selected = append(selected, best)
		remaining -= lengths[best]
		for v = 0; v < n; v++ { // refresh redundancy against the new member
			if w := g.Weight(v, best); w > maxSim[v] {
				maxSim[v] = w
			}
		}
	}

	return selected, nil
}

// TopByScore walks sentences by descending score (ties: lower index) and
// keeps those that fit the remaining budget. The result is in walk order.
func TopByScore(scores []float64, lengths []int, budget int) ([]int, error) {
	n := len(scores)
	if len(lengths) != n {
		return nil, fmt.Errorf("TopByScore: scores %d, lengths %d: %w", n, len(lengths), ErrLengthMismatch)
	}
	if budget < 0 {
		return nil, fmt.Errorf("TopByScore: budget %d: %w", budget, ErrBadBudget)
	}

	order := Rank(scores)
	selected := make([]int, 0)
	remaining := budget
	for _, i := range order {
		if lengths[i] <= remaining {
			selected = append(selected, i)
			remaining -= lengths[i]
		}
	}

	return selected, nil
}

// Rank returns arena indices sorted by descending score, ties by index.
func Rank(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })

	return order
}

// AveragePairwise returns the mean similarity over all pairs of sel, or 0
// when sel has fewer than two members.
func AveragePairwise(g *simgraph.Graph, sel []int) float64 {
	if len(sel) < 2 {
		return 0
	}
	var sum float64
	pairs := 0
	for a := 0; a < len(sel); a++ {
		for b := a + 1; b < len(sel); b++ {
			sum += g.Weight(sel[a], sel[b])
			pairs++
		}
	}

	return sum / float64(pairs)
}

// scaleByMax divides by the maximum; a non-positive maximum yields zeros.
func scaleByMax(x []float64) []float64 {
	out := make([]float64, len(x))
	peak := 0.0
	for _, v := range x {
		if v > peak {
			peak = v
		}
	}
	if peak <= 0 {
		return out
	}
	for i, v := range x {
		out[i] = v / peak
	}

	return out
}
