// SPDX-License-Identifier: MIT

package textmodel

import "math"

// Vector is a sparse term-weight vector. Terms are vocabulary ids in
// strictly ascending order; Weights[k] belongs to Terms[k].
type Vector struct {
	Terms   []int
	Weights []float64
	norm    float64
}

// newVector builds a Vector from ascending ids and caches its L2 norm.
func newVector(terms []int, weights []float64) Vector {
	var sq float64
	for _, w := range weights {
		sq += w * w
	}

	return Vector{Terms: terms, Weights: weights, norm: math.Sqrt(sq)}
}

// Norm returns the cached L2 norm.
func (v Vector) Norm() float64 { return v.norm }

// Len returns the number of non-zero terms.
func (v Vector) Len() int { return len(v.Terms) }

// Dot returns the inner product of two sparse vectors by merge-join.
func Dot(a, b Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a.Terms) && j < len(b.Terms) {
		switch {
		case a.Terms[i] == b.Terms[j]:
			sum += a.Weights[i] * b.Weights[j]
			i++
			j++
		case a.Terms[i] < b.Terms[j]:
			i++
		default:
			j++
		}
	}

	return sum
}

// Cosine returns the cosine similarity of a and b, or 0 when either norm is 0.
// The result is clamped to [0, 1]; weights are non-negative so only rounding
// can push it past 1.
func Cosine(a, b Vector) float64 {
	if a.norm == 0 || b.norm == 0 {
		return 0
	}
	c := Dot(a, b) / (a.norm * b.norm)
	if c > 1 {
		return 1
	}
	if c < 0 {
		return 0
	}

	return c
}

// Overlap returns the number of shared terms.
func Overlap(a, b Vector) int {
	n := 0
	i, j := 0, 0
	for i < len(a.Terms) && j < len(b.Terms) {
		switch {
		case a.Terms[i] == b.Terms[j]:
			n++
			i++
			j++
		case a.Terms[i] < b.Terms[j]:
			i++
		default:
			j++
		}
	}

	return n
}
