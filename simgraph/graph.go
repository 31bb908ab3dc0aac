// SPDX-License-Identifier: MIT

package simgraph

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvsum/matrix"
	"github.com/katalvlaran/lvsum/textmodel"
)

// Graph is the symmetric sentence-similarity graph.
type Graph struct {
	w *matrix.Dense
	n int

	// QuerySim[i] is cos(query, s_i); nil when the model has no query.
	QuerySim []float64
}

// Edge is one weighted adjacency of a node.
type Edge struct {
	To     int
	Weight float64
}

// Build computes the similarity graph of m.
//
// Complexity: O(n²·t) for the pairwise pass (t = terms per sentence),
// plus O(n²·log n) when top-k is enabled.
func Build(m *textmodel.Model, opts ...Option) (*Graph, error) {
	if m == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilModel)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	n := m.Len()
	g := &Graph{n: n}
	if qv, ok := m.QueryVector(); ok {
		g.QuerySim = make([]float64, n)
		for i := 0; i < n; i++ {
			g.QuerySim[i] = textmodel.Cosine(qv, m.Vector(i))
		}
	}
	if n == 0 {
		return g, nil
	}

	w, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	switch o.Measure {
	case Overlap:
		fillOverlap(w, m)
	default:
		fillCosine(w, m)
	}
	if o.Threshold > 0 {
		applyThreshold(w, o.Threshold)
	}
	if o.TopK > 0 && o.TopK < n-1 {
		applyTopK(w, o.TopK)
	}
	if err = matrix.ValidateSymmetric(w, matrix.DefaultEpsilon); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	g.w = w

	return g, nil
}

func fillCosine(w *matrix.Dense, m *textmodel.Model) {
	n := m.Len()
	for i := 0; i < n; i++ {
		ri := w.RowView(i)
		for j := i + 1; j < n; j++ {
			s := textmodel.Cosine(m.Vector(i), m.Vector(j))
			ri[j] = s
			w.RowView(j)[i] = s
		}
	}
}

// fillOverlap writes |Si∩Sj| / (log|Si| + log|Sj|) and rescales by the
// maximum. |S| is the normalised word count of the sentence.
func fillOverlap(w *matrix.Dense, m *textmodel.Model) {
	n := m.Len()
	logLen := make([]float64, n)
	for i := 0; i < n; i++ {
		var words float64
		for _, c := range m.Counts(i).Weights {
			words += c
		}
		if words > 0 {
			logLen[i] = math.Log(words)
		}
	}

	var peak float64
	for i := 0; i < n; i++ {
		ri := w.RowView(i)
		for j := i + 1; j < n; j++ {
			den := logLen[i] + logLen[j]
			if den <= 0 {
				continue
			}
			s := float64(textmodel.Overlap(m.Vector(i), m.Vector(j))) / den
			ri[j] = s
			w.RowView(j)[i] = s
			if s > peak {
				peak = s
			}
		}
	}
	if peak == 0 {
		return
	}
	for i := 0; i < n; i++ {
		ri := w.RowView(i)
		for j := range ri {
			ri[j] /= peak
		}
	}
}

func applyThreshold(w *matrix.Dense, t float64) {
	n := w.Rows()
	for i := 0; i < n; i++ {
		ri := w.RowView(i)
		for j := range ri {
			if ri[j] < t {
				ri[j] = 0
			}
		}
	}
}

// applyTopK keeps edge (i,j) when j is among the k strongest neighbours of i
// or i among those of j. Ties rank the lower index first.
func applyTopK(w *matrix.Dense, k int) {
	n := w.Rows()
	keep := make([][]bool, n)
	order := make([]int, n)
	for i := 0; i < n; i++ {
		keep[i] = make([]bool, n)
		ri := w.RowView(i)
		order = order[:0]
		for j := 0; j < n; j++ {
			if j != i && ri[j] > 0 {
				order = append(order, j)
			}
		}
		sort.SliceStable(order, func(a, b int) bool { return ri[order[a]] > ri[order[b]] })
		if len(order) > k {
			order = order[:k]
		}
		for _, j := range order {
			keep[i][j] = true
		}
	}
	for i := 0; i < n; i++ {
		ri := w.RowView(i)
		for j := i + 1; j < n; j++ {
			if !keep[i][j] && !keep[j][i] {
				ri[j] = 0
				w.RowView(j)[i] = 0
			}
		}
	}
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}

	return g.n
}

// HasQuery reports whether the graph carries a query row.
func (g *Graph) HasQuery() bool { return g != nil && g.QuerySim != nil }

// Weight returns the similarity of i and j, 0 for out-of-range indices.
func (g *Graph) Weight(i, j int) float64 {
	if i < 0 || j < 0 || i >= g.Len() || j >= g.Len() {
		return 0
	}

	return g.w.RowView(i)[j]
}

// Matrix returns the underlying similarity matrix, nil for an empty graph.
// Callers must not modify it.
func (g *Graph) Matrix() *matrix.Dense {
	if g == nil {
		return nil
	}

	return g.w
}

// Neighbors returns the non-zero edges of i in ascending index order.
func (g *Graph) Neighbors(i int) []Edge {
	if i < 0 || i >= g.Len() {
		return nil
	}
	row := g.w.RowView(i)
	var out []Edge
	for j, v := range row {
		if v > 0 {
			out = append(out, Edge{To: j, Weight: v})
		}
	}

	return out
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	count := 0
	for i := 0; i < g.Len(); i++ {
		row := g.w.RowView(i)
		for j := i + 1; j < g.n; j++ {
			if row[j] > 0 {
				count++
			}
		}
	}

	return count
}

// Transition returns the row-stochastic random-walk matrix of g. Rows of
// isolated nodes become uniform.
func Transition(g *Graph) (*matrix.Dense, error) {
	if g.Len() == 0 {
		return nil, fmt.Errorf("Transition: %w", ErrEmptyGraph)
	}
	t, err := matrix.Stochastic(g.w)
	if err != nil {
		return nil, fmt.Errorf("Transition: %w", err)
	}

	return t, nil
}

// Normalized returns the similarity matrix with every row divided by its
// sum; rows of isolated nodes stay zero.
func Normalized(g *Graph) (*matrix.Dense, error) {
	if g.Len() == 0 {
		return nil, fmt.Errorf("Normalized: %w", ErrEmptyGraph)
	}
	s, _, err := matrix.NormalizeRowsL1(g.w)
	if err != nil {
		return nil, fmt.Errorf("Normalized: %w", err)
	}

	return s, nil
}
