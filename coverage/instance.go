// SPDX-License-Identifier: MIT

package coverage

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvsum/textmodel"
)

// Sentinel errors.
var (
	// ErrLengthMismatch indicates concepts and lengths disagree on n.
	ErrLengthMismatch = errors.New("coverage: concepts and lengths differ in size")

	// ErrBadConcept indicates a concept id outside the weight table.
	ErrBadConcept = errors.New("coverage: concept id out of range")

	// ErrBadWeight indicates a negative or non-finite concept weight.
	ErrBadWeight = errors.New("coverage: concept weight must be finite and >= 0")

	// ErrBadLength indicates a negative sentence length.
	ErrBadLength = errors.New("coverage: sentence length must be >= 0")

	// ErrBadBudget indicates a negative word budget.
	ErrBadBudget = errors.New("coverage: budget must be >= 0")

	// ErrBadOption indicates an invalid solver option.
	ErrBadOption = errors.New("coverage: invalid option")
)

// Instance is an immutable coverage problem.
type Instance struct {
	concepts [][]int // per sentence, distinct and ascending
	weights  []float64
	lengths  []int
}

// NewInstance validates and copies its inputs. Duplicate concept ids inside
// one sentence are collapsed.
func NewInstance(concepts [][]int, weights []float64, lengths []int) (*Instance, error) {
	if len(concepts) != len(lengths) {
		return nil, fmt.Errorf("NewInstance: concepts %d, lengths %d: %w", len(concepts), len(lengths), ErrLengthMismatch)
	}
	for c, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("NewInstance: weight[%d]=%v: %w", c, w, ErrBadWeight)
		}
	}
	inst := &Instance{
		concepts: make([][]int, len(concepts)),
		weights:  append([]float64(nil), weights...),
		lengths:  append([]int(nil), lengths...),
	}
	for s, cs := range concepts {
		if lengths[s] < 0 {
			return nil, fmt.Errorf("NewInstance: length[%d]=%d: %w", s, lengths[s], ErrBadLength)
		}
		set := append([]int(nil), cs...)
		sort.Ints(set)
		out := set[:0]
		for k, c := range set {
			if c < 0 || c >= len(weights) {
				return nil, fmt.Errorf("NewInstance: sentence %d concept %d: %w", s, c, ErrBadConcept)
			}
			if k > 0 && c == set[k-1] {
				continue
			}
			out = append(out, c)
		}
		inst.concepts[s] = out
	}

	return inst, nil
}

// FromDocumentSet derives an Instance from the concepts of ds.
func FromDocumentSet(ds *textmodel.DocumentSet, minWeight float64) (*Instance, error) {
	cs := textmodel.Concepts(ds, minWeight)
	inst, err := NewInstance(cs.PerSentence, cs.Weights, ds.Lengths())
	if err != nil {
		return nil, fmt.Errorf("FromDocumentSet: %w", err)
	}

	return inst, nil
}

// Len returns the number of sentences.
func (in *Instance) Len() int { return len(in.lengths) }

// Length returns the length of sentence s.
func (in *Instance) Length(s int) int { return in.lengths[s] }

// Value returns F(sel). Out-of-range indices are ignored.
func (in *Instance) Value(sel []int) float64 {
	covered := make([]bool, len(in.weights))
	var v float64
	for _, s := range sel {
		if s < 0 || s >= in.Len() {
			continue
		}
		for _, c := range in.concepts[s] {
			if !covered[c] {
				covered[c] = true
				v += in.weights[c]
			}
		}
	}

	return v
}

// singleton returns F({s}).
func (in *Instance) singleton(s int) float64 {
	var v float64
	for _, c := range in.concepts[s] {
		v += in.weights[c]
	}

	return v
}

// gain returns the marginal value of s given per-concept cover counts.
func (in *Instance) gain(s int, cover []int) float64 {
	var g float64
	for _, c := range in.concepts[s] {
		if cover[c] == 0 {
			g += in.weights[c]
		}
	}

	return g
}

// Result is a solver outcome.
type Result struct {
	// Selected holds arena indices in ascending order.
	Selected []int

	// Value is F(Selected).
	Value float64

	// Length is the summed length of Selected.
	Length int

	// Optimal is true only when BranchAndBound finished its search.
	Optimal bool

	// Nodes is the number of search nodes expanded (BranchAndBound only).
	Nodes int

	// Cutoff names the limit that stopped the search ("", "time", "nodes").
	Cutoff string
}

func (in *Instance) result(sel []int) Result {
	out := append([]int(nil), sel...)
	sort.Ints(out)
	length := 0
	for _, s := range out {
		length += in.lengths[s]
	}

	return Result{Selected: out, Value: round1e9(in.Value(out)), Length: length}
}

// round1e9 stabilises objective values for comparison across platforms.
func round1e9(x float64) float64 { return math.Round(x*1e9) / 1e9 }
