// SPDX-License-Identifier: MIT

package centrality

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors.
var (
	// ErrBadDamping indicates a damping factor outside (0,1).
	ErrBadDamping = errors.New("centrality: damping must be in (0,1)")

	// ErrBadAlpha indicates a propagation constant outside (0,1).
	ErrBadAlpha = errors.New("centrality: alpha must be in (0,1)")

	// ErrBadEpsilon indicates a non-positive or NaN tolerance.
	ErrBadEpsilon = errors.New("centrality: epsilon must be > 0")

	// ErrBadMaxIter indicates a non-positive iteration cap.
	ErrBadMaxIter = errors.New("centrality: max iterations must be >= 1")

	// ErrBadTeleport indicates a teleport vector of the wrong length or with
	// negative or non-finite entries.
	ErrBadTeleport = errors.New("centrality: invalid teleport vector")

	// ErrNoQuery indicates Manifold was called on a graph without a query row.
	ErrNoQuery = errors.New("centrality: graph has no query")

	// ErrBadMethod indicates an unknown manifold solve method.
	ErrBadMethod = errors.New("centrality: unknown method")
)

// Method selects how Manifold solves (I − α·S)·f = y.
type Method int

const (
	// Iterative runs f_{t+1} = α·S·f_t + y to convergence.
	Iterative Method = iota

	// Direct factorises I − α·S once and solves by substitution.
	Direct
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case Iterative:
		return "iterative"
	case Direct:
		return "direct"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Defaults.
const (
	DefaultDamping = 0.85
	DefaultAlpha   = 0.85
	DefaultEpsilon = 1e-8
	DefaultMaxIter = 1000
	DefaultMethod  = Iterative
)

// Options configures Stationary and Manifold.
type Options struct {
	// Damping is d in the random walk (Stationary only).
	Damping float64

	// Alpha is the propagation constant (Manifold only).
	Alpha float64

	// Epsilon is the L1 stopping tolerance.
	Epsilon float64

	// MaxIter caps the number of sweeps.
	MaxIter int

	// Teleport biases the random walk; nil means uniform.
	Teleport []float64

	// Method is the Manifold solver.
	Method Method
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Damping: DefaultDamping,
		Alpha:   DefaultAlpha,
		Epsilon: DefaultEpsilon,
		MaxIter: DefaultMaxIter,
		Method:  DefaultMethod,
	}
}

// WithDamping sets the random-walk damping factor.
func WithDamping(d float64) Option { return func(o *Options) { o.Damping = d } }

// WithAlpha sets the manifold propagation constant.
func WithAlpha(a float64) Option { return func(o *Options) { o.Alpha = a } }

// WithEpsilon sets the L1 stopping tolerance.
func WithEpsilon(eps float64) Option { return func(o *Options) { o.Epsilon = eps } }

// WithMaxIter sets the sweep cap.
func WithMaxIter(n int) Option { return func(o *Options) { o.MaxIter = n } }

// WithTeleport replaces the uniform teleport with y normalised to sum 1.
// An all-zero y falls back to uniform.
func WithTeleport(y []float64) Option {
	return func(o *Options) {
		o.Teleport = make([]float64, len(y))
		copy(o.Teleport, y)
	}
}

// WithMethod selects the Manifold solver.
func WithMethod(m Method) Option { return func(o *Options) { o.Method = m } }

func newOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o Options) validateIteration() error {
	if math.IsNaN(o.Epsilon) || o.Epsilon <= 0 {
		return fmt.Errorf("epsilon %v: %w", o.Epsilon, ErrBadEpsilon)
	}
	if o.MaxIter < 1 {
		return fmt.Errorf("max iterations %d: %w", o.MaxIter, ErrBadMaxIter)
	}

	return nil
}

func openUnit(x float64) bool { return x > 0 && x < 1 }

// distribution normalises y to sum 1 (uniform when y sums to 0).
func distribution(y []float64, n int) ([]float64, error) {
	u := make([]float64, n)
	if y == nil {
		for i := range u {
			u[i] = 1 / float64(n)
		}

		return u, nil
	}
	if len(y) != n {
		return nil, fmt.Errorf("len %d, want %d: %w", len(y), n, ErrBadTeleport)
	}
	var sum float64
	for i, v := range y {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("entry %d = %v: %w", i, v, ErrBadTeleport)
		}
		sum += v
	}
	for i := range u {
		if sum == 0 {
			u[i] = 1 / float64(n)
		} else {
			u[i] = y[i] / sum
		}
	}

	return u, nil
}
