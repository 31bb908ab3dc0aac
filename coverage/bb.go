// SPDX-License-Identifier: MIT

package coverage

import (
	"fmt"
	"sort"
	"time"
)

// bbEngine holds the search state of one BranchAndBound call.
type bbEngine struct {
	inst   *Instance
	budget int

	// Cutoffs
	useDeadline bool
	deadline    time.Time
	maxNodes    int
	nodes       int
	work        int // sentences scanned by upperBound since the last clock read
	cutoff      string

	// Branching order: sentences by descending singleton ratio (index tiebreak).
	order []int

	// Current search state
	cover []int // per-concept count of selected sentences covering it
	path  []int // selected sentences on the current branch

	// Incumbent
	best    []int
	bestVal float64

	// Scratch for the fractional-knapsack bound.
	cand []bound
}

type bound struct {
	gain   float64
	length int
}

// stop reports whether a cutoff fired. The node cap is exact; the clock is
// read every 64 nodes or once checkWork sentences were scanned, whichever
// comes first.
func (e *bbEngine) stop() bool {
	if e.cutoff != "" {
		return true
	}
	e.nodes++
	if e.maxNodes > 0 && e.nodes >= e.maxNodes {
		e.cutoff = "nodes"

		return true
	}
	if e.useDeadline && ((e.nodes&checkMask) == 0 || e.work >= checkWork) {
		e.work = 0
		if time.Now().After(e.deadline) {
			e.cutoff = "time"

			return true
		}
	}

	return false
}

// buildOrder sorts sentences with a positive singleton value by descending
// value/length; zero-value sentences never help and are left out.
func (e *bbEngine) buildOrder() {
	n := e.inst.Len()
	ratio := make([]float64, n)
	e.order = e.order[:0]
	for s := 0; s < n; s++ {
		v := e.inst.singleton(s)
		if v <= 0 || e.inst.lengths[s] > e.budget {
			continue
		}
		ratio[s] = lengthRatio(v, e.inst.lengths[s], 1)
		e.order = append(e.order, s)
	}
	sort.SliceStable(e.order, func(a, b int) bool { return ratio[e.order[a]] > ratio[e.order[b]] })
}

// upperBound is value plus the fractional knapsack over the marginal gains
// of order[depth:] within the remaining budget.
func (e *bbEngine) upperBound(value float64, depth, remaining int) float64 {
	e.cand = e.cand[:0]
	e.work += len(e.order) - depth
	var free float64
	for _, s := range e.order[depth:] {
		g := e.inst.gain(s, e.cover)
		if g <= 0 || e.inst.lengths[s] > remaining {
			continue
		}
		if e.inst.lengths[s] == 0 {
			free += g

			continue
		}
		e.cand = append(e.cand, bound{gain: g, length: e.inst.lengths[s]})
	}
	sort.Slice(e.cand, func(a, b int) bool {
		return e.cand[a].gain*float64(e.cand[b].length) > e.cand[b].gain*float64(e.cand[a].length)
	})

	ub := value + free
	left := float64(remaining)
	for _, c := range e.cand {
		l := float64(c.length)
		if l <= left {
			ub += c.gain
			left -= l

			continue
		}
		ub += c.gain * left / l

		break
	}

	return ub
}

func (e *bbEngine) record(value float64) {
	e.best = append(e.best[:0], e.path...)
	e.bestVal = value
}

// dfs branches include-first on order[depth].
func (e *bbEngine) dfs(depth int, value float64, remaining int) {
	if e.stop() {
		return
	}
	if value > e.bestVal+epsValue {
		e.record(value)
	}
	if depth == len(e.order) {
		return
	}
	if e.upperBound(value, depth, remaining) <= e.bestVal+epsValue {
		return // prune
	}

	s := e.order[depth]
	if l := e.inst.lengths[s]; l <= remaining {
		if g := e.inst.gain(s, e.cover); g > 0 {
			for _, c := range e.inst.concepts[s] {
				e.cover[c]++
			}
			e.path = append(e.path, s)
			e.dfs(depth+1, value+g, remaining-l)
			e.path = e.path[:len(e.path)-1]
			for _, c := range e.inst.concepts[s] {
				e.cover[c]--
			}
		}
	}
	e.dfs(depth+1, value, remaining)
}

// BranchAndBound solves the coverage ILP exactly unless a cutoff fires, in
// which case the best incumbent is returned with Optimal=false. Cutoffs are
// never errors.
func BranchAndBound(inst *Instance, budget int, opts ...Option) (Result, error) {
	o, err := newOptions(opts)
	if err != nil {
		return Result{}, fmt.Errorf("BranchAndBound: %w", err)
	}
	if budget < 0 {
		return Result{}, fmt.Errorf("BranchAndBound: budget %d: %w", budget, ErrBadBudget)
	}

	e := bbEngine{
		inst:     inst,
		budget:   budget,
		maxNodes: o.MaxNodes,
		cover:    make([]int, len(inst.weights)),
	}
	if o.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(o.TimeLimit)
	}

	// Seed the incumbent with the greedy solution; its restarts share the
	// deadline.
	seed := greedy(inst, budget, o, e.deadline)
	e.best = append(e.best, seed...)
	e.bestVal = inst.Value(seed)

	if e.useDeadline && time.Now().After(e.deadline) {
		e.cutoff = "time"
	} else {
		e.buildOrder()
		e.dfs(0, 0, budget)
	}

	res := inst.result(e.best)
	res.Optimal = e.cutoff == ""
	res.Nodes = e.nodes
	res.Cutoff = e.cutoff

	return res, nil
}
