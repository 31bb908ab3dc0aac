// SPDX-License-Identifier: MIT

package coverage

import (
	"fmt"
	"math"
	"time"
)

// Greedy returns the budgeted greedy selection with partial enumeration: the
// greedy is restarted from every fitting seed set of up to SeedSize
// sentences and the best completion wins, compared at the end with the best
// fitting singleton. With the default seed size and r=1 the result is
// within (1−1/e) of the optimum on small inputs; larger inputs shrink the
// seed size (see seedWork) down to the plain greedy. TimeLimit, when set,
// stops the enumeration early but never the plain greedy.
//
// Complexity: O(S·n²·c) where S is the number of seeds tried and c is the
// mean concepts per sentence.
func Greedy(inst *Instance, budget int, opts ...Option) (Result, error) {
	o, err := newOptions(opts)
	if err != nil {
		return Result{}, fmt.Errorf("Greedy: %w", err)
	}
	if budget < 0 {
		return Result{}, fmt.Errorf("Greedy: budget %d: %w", budget, ErrBadBudget)
	}
	var deadline time.Time
	if o.TimeLimit > 0 {
		deadline = time.Now().Add(o.TimeLimit)
	}

	return inst.result(greedy(inst, budget, o, deadline)), nil
}

// seedCap returns the largest seed size k ≤ want with
// (number of seeds of size ≤ k)·n ≤ seedWork.
func seedCap(n, want int) int {
	k, seeds, choose := 0, 0, 1
	for k < want && k < n {
		choose = choose * (n - k) / (k + 1) // C(n, k+1)
		if (seeds+choose)*n > seedWork {
			break
		}
		seeds += choose
		k++
	}

	return k
}

// greedy runs the plain greedy, then every seeded restart, keeping strict
// improvements only, so ties resolve to the earlier candidate.
func greedy(inst *Instance, budget int, o Options, deadline time.Time) []int {
	n := inst.Len()
	best := greedyFrom(inst, budget, o.LengthExponent, nil)
	bestVal := inst.Value(best)

	k := seedCap(n, o.SeedSize)
	seed := make([]int, 0, k)
	var expired bool
	var walk func(from, used, size int)
	walk = func(from, used, size int) {
		if expired {
			return
		}
		if len(seed) == size {
			if !deadline.IsZero() && time.Now().After(deadline) {
				expired = true

				return
			}
			sel := greedyFrom(inst, budget, o.LengthExponent, seed)
			if v := inst.Value(sel); v > bestVal+epsValue {
				best, bestVal = sel, v
			}

			return
		}
		for s := from; s < n; s++ {
			if used+inst.lengths[s] > budget {
				continue
			}
			seed = append(seed, s)
			walk(s+1, used+inst.lengths[s], size)
			seed = seed[:len(seed)-1]
		}
	}
	for size := 1; size <= k && !expired; size++ {
		walk(0, 0, size)
	}

	// Compare with the best fitting singleton.
	singleBest, singleVal := -1, 0.0
	for s := 0; s < n; s++ {
		if inst.lengths[s] > budget {
			continue
		}
		if v := inst.singleton(s); v > singleVal {
			singleBest, singleVal = s, v
		}
	}
	if singleBest >= 0 && singleVal > bestVal+epsValue {
		return []int{singleBest}
	}

	return best
}

// greedyFrom extends seed (which must fit the budget) by descending marginal
// ratio, skipping sentences that overflow.
func greedyFrom(inst *Instance, budget int, r float64, seed []int) []int {
	n := inst.Len()
	cover := make([]int, len(inst.weights))
	considered := make([]bool, n)
	selected := make([]int, 0, len(seed))
	remaining := budget
	for _, s := range seed {
		considered[s] = true
		selected = append(selected, s)
		remaining -= inst.lengths[s]
		for _, c := range inst.concepts[s] {
			cover[c]++
		}
	}

	var (
		s, best   int
		g, ratio  float64
		bestRatio float64
		bestGain  float64
	)
	for step := len(seed); step < n; step++ {
		best = -1
		for s = 0; s < n; s++ { // scan unconsidered sentences by marginal ratio
			if considered[s] {
				continue
			}
			g = inst.gain(s, cover)
			ratio = lengthRatio(g, inst.lengths[s], r)
			if best == -1 || ratio > bestRatio {
				best, bestRatio, bestGain = s, ratio, g // strict > keeps the lower index
			}
		}
		if best == -1 || bestGain <= 0 {
			break // nothing left adds value
		}
		considered[best] = true
		if inst.lengths[best] > remaining {
			continue
		}
		selected = append(selected, best)
		remaining -= inst.lengths[best]
		for _, c := range inst.concepts[best] {
			cover[c]++
		}
	}

	return selected
}

// lengthRatio is gain/length^r; zero-length sentences with a positive gain
// come first.
func lengthRatio(gain float64, length int, r float64) float64 {
	if length == 0 {
		if gain > 0 {
			return math.Inf(1)
		}

		return 0
	}

	return gain / math.Pow(float64(length), r)
}
