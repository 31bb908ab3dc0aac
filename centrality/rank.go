// SPDX-License-Identifier: MIT

package centrality

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsum/matrix"
	"github.com/katalvlaran/lvsum/simgraph"
)

// Ranking is the output of a ranker.
type Ranking struct {
	// Scores by arena index; they sum to 1.
	Scores []float64

	// Iterations is the number of sweeps performed (0 for Direct).
	Iterations int

	// Residual is the last L1 step size, or ‖(I−αS)f − y‖₁ for Direct.
	Residual float64

	// Converged is false when MaxIter was reached first.
	Converged bool
}

// Stationary returns the damped random-walk stationary distribution of g.
//
// Complexity: O(n²) per sweep.
func Stationary(g *simgraph.Graph, opts ...Option) (Ranking, error) {
	o := newOptions(opts)
	if !openUnit(o.Damping) {
		return Ranking{}, fmt.Errorf("Stationary: damping %v: %w", o.Damping, ErrBadDamping)
	}
	if err := o.validateIteration(); err != nil {
		return Ranking{}, fmt.Errorf("Stationary: %w", err)
	}
	n := g.Len()
	if n == 0 {
		return Ranking{Scores: []float64{}, Converged: true}, nil
	}
	u, err := distribution(o.Teleport, n)
	if err != nil {
		return Ranking{}, fmt.Errorf("Stationary: %w", err)
	}

	t, err := simgraph.Transition(g)
	if err != nil {
		return Ranking{}, fmt.Errorf("Stationary: %w", err)
	}
	mt, err := matrix.Transpose(t)
	if err != nil {
		return Ranking{}, fmt.Errorf("Stationary: %w", err)
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = 1 / float64(n)
	}
	d := o.Damping

	r, err := iterate(x, o, func(cur []float64) ([]float64, error) {
		next, err := matrix.MatVec(mt, cur)
		if err != nil {
			return nil, err
		}
		for i := range next {
			next[i] = d*next[i] + (1-d)*u[i]
		}

		return next, nil
	})
	if err != nil {
		return Ranking{}, fmt.Errorf("Stationary: %w", err)
	}
	normalize(r.Scores) // absorb rounding drift

	return r, nil
}

// Manifold ranks sentences by propagating the query seed g.QuerySim.
//
// Errors: ErrNoQuery when g has no query row; ErrBadAlpha; for Direct, any
// factorisation error from package matrix (callers may retry Iterative).
func Manifold(g *simgraph.Graph, opts ...Option) (Ranking, error) {
	o := newOptions(opts)
	if !g.HasQuery() {
		return Ranking{}, fmt.Errorf("Manifold: %w", ErrNoQuery)
	}
	if !openUnit(o.Alpha) {
		return Ranking{}, fmt.Errorf("Manifold: alpha %v: %w", o.Alpha, ErrBadAlpha)
	}
	if err := o.validateIteration(); err != nil {
		return Ranking{}, fmt.Errorf("Manifold: %w", err)
	}
	n := g.Len()
	if n == 0 {
		return Ranking{Scores: []float64{}, Converged: true}, nil
	}
	y, err := distribution(g.QuerySim, n)
	if err != nil {
		return Ranking{}, fmt.Errorf("Manifold: %w", err)
	}
	s, err := simgraph.Normalized(g)
	if err != nil {
		return Ranking{}, fmt.Errorf("Manifold: %w", err)
	}

	var r Ranking
	switch o.Method {
	case Iterative:
		r, err = manifoldIterative(s, y, o)
	case Direct:
		r, err = manifoldDirect(s, y, o.Alpha)
	default:
		err = fmt.Errorf("%v: %w", o.Method, ErrBadMethod)
	}
	if err != nil {
		return Ranking{}, fmt.Errorf("Manifold: %w", err)
	}
	normalize(r.Scores)

	return r, nil
}

func manifoldIterative(s *matrix.Dense, y []float64, o Options) (Ranking, error) {
	f := make([]float64, len(y))
	copy(f, y)
	a := o.Alpha

	return iterate(f, o, func(cur []float64) ([]float64, error) {
		next, err := matrix.MatVec(s, cur)
		if err != nil {
			return nil, err
		}
		for i := range next {
			next[i] = a*next[i] + y[i]
		}

		return next, nil
	})
}

func manifoldDirect(s *matrix.Dense, y []float64, alpha float64) (Ranking, error) {
	n := len(y)
	id, err := matrix.NewIdentity(n)
	if err != nil {
		return Ranking{}, err
	}
	as, err := matrix.Scale(s, alpha)
	if err != nil {
		return Ranking{}, err
	}
	a, err := matrix.Sub(id, as)
	if err != nil {
		return Ranking{}, err
	}
	f, err := matrix.Solve(a, y)
	if err != nil {
		return Ranking{}, err
	}
	check, err := matrix.MatVec(a, f)
	if err != nil {
		return Ranking{}, err
	}

	return Ranking{Scores: f, Residual: l1(check, y), Converged: true}, nil
}

// iterate runs step until the L1 change drops below Epsilon or MaxIter is hit.
func iterate(x []float64, o Options, step func([]float64) ([]float64, error)) (Ranking, error) {
	r := Ranking{Residual: math.Inf(1)}
	for r.Iterations < o.MaxIter {
		next, err := step(x)
		if err != nil {
			return Ranking{}, err
		}
		r.Iterations++
		r.Residual = l1(next, x)
		x = next
		if r.Residual < o.Epsilon {
			r.Converged = true

			break
		}
	}
	r.Scores = x

	return r, nil
}

func l1(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}

	return sum
}

func normalize(x []float64) {
	var sum float64
	for _, v := range x {
		sum += v
	}
	if sum == 0 {
		return
	}
	for i := range x {
		x[i] /= sum
	}
}
