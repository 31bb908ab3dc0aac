// SPDX-License-Identifier: MIT

package distributional

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvsum/textmodel"
	"gonum.org/v1/gonum/mat"
)

// Defaults for NMF.
const (
	DefaultTopics        = 3
	DefaultNMFIterations = 200
	nmfGuard             = 1e-12 // keeps multiplicative updates away from 0/0
)

// NMFOptions configures NMF.
type NMFOptions struct {
	Topics     int
	Iterations int
	Seed       int64
}

// NMFOption mutates NMFOptions.
type NMFOption func(*NMFOptions)

// WithTopics sets the number of latent topics (clamped to the matrix shape).
func WithTopics(k int) NMFOption { return func(o *NMFOptions) { o.Topics = k } }

// WithIterations sets the number of multiplicative update rounds.
func WithIterations(n int) NMFOption { return func(o *NMFOptions) { o.Iterations = n } }

// WithSeed sets the initialisation seed (0 means the default seed).
func WithSeed(seed int64) NMFOption { return func(o *NMFOptions) { o.Seed = seed } }

// Factorize returns W (terms×k) and H (k×sentences) with A ≈ W·H.
// A must be non-negative.
func Factorize(a *mat.Dense, k, iterations int, seed int64) (*mat.Dense, *mat.Dense) {
	r, c := a.Dims()
	rng := rngFromSeed(seed)
	wData := make([]float64, r*k)
	hData := make([]float64, k*c)
	positiveUniform(wData, rng)
	positiveUniform(hData, rng)
	w := mat.NewDense(r, k, wData)
	h := mat.NewDense(k, c, hData)

	var num, den, wtw, hht mat.Dense
	for it := 0; it < iterations; it++ {
		// H ← H ∘ (WᵀA) / (WᵀW·H)
		num.Mul(w.T(), a)
		wtw.Mul(w.T(), w)
		den.Mul(&wtw, h)
		den.Apply(func(_, _ int, v float64) float64 { return v + nmfGuard }, &den)
		num.DivElem(&num, &den)
		h.MulElem(h, &num)

		// W ← W ∘ (A·Hᵀ) / (W·H·Hᵀ)
		num.Reset()
		den.Reset()
		num.Mul(a, h.T())
		hht.Mul(h, h.T())
		den.Mul(w, &hht)
		den.Apply(func(_, _ int, v float64) float64 { return v + nmfGuard }, &den)
		num.DivElem(&num, &den)
		w.MulElem(w, &num)

		num.Reset()
		den.Reset()
		wtw.Reset()
		hht.Reset()
	}

	return w, h
}

// NMF selects sentences topic by topic. Topics are visited in descending
// strength Σ_j H_kj, round robin; each visit takes the topic's highest
// loading unvisited sentence, keeps it when it fits and marks it visited
// either way. Selection ends when every sentence is visited.
func NMF(m *textmodel.Model, lengths []int, budget int, opts ...NMFOption) ([]int, error) {
	o := NMFOptions{Topics: DefaultTopics, Iterations: DefaultNMFIterations}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Topics < 1 || o.Iterations < 0 {
		return nil, fmt.Errorf("NMF: topics %d, iterations %d: %w", o.Topics, o.Iterations, ErrBadOption)
	}
	if len(lengths) != m.Len() {
		return nil, fmt.Errorf("NMF: lengths %d, model %d: %w", len(lengths), m.Len(), ErrLengthMismatch)
	}
	if budget < 0 {
		return nil, fmt.Errorf("NMF: budget %d: %w", budget, ErrBadBudget)
	}
	a := termSentence(m)
	if a == nil {
		return []int{}, nil
	}
	r, n := a.Dims()
	k := min(o.Topics, r, n)
	_, h := Factorize(a, k, o.Iterations, o.Seed)

	strength := make([]float64, k)
	topics := make([]int, k)
	for t := 0; t < k; t++ {
		topics[t] = t
		for j := 0; j < n; j++ {
			strength[t] += h.At(t, j)
		}
	}
	sort.SliceStable(topics, func(x, y int) bool { return strength[topics[x]] > strength[topics[y]] })

	visited := make([]bool, n)
	selected := make([]int, 0)
	remaining := budget
	for left := n; left > 0; {
		for _, t := range topics {
			if left == 0 {
				break
			}
			best := -1
			for j := 0; j < n; j++ {
				if visited[j] {
					continue
				}
				if best == -1 || h.At(t, j) > h.At(t, best) {
					best = j
				}
			}
			visited[best] = true
			left--
			if lengths[best] <= remaining {
				selected = append(selected, best)
				remaining -= lengths[best]
			}
		}
	}

	return selected, nil
}
