// SPDX-License-Identifier: MIT

package coverage

import (
	"fmt"
	"math"
	"time"
)

// Defaults.
const (
	// DefaultLengthExponent is r in gain/length^r.
	DefaultLengthExponent = 1.0

	// DefaultTimeLimit bounds one BranchAndBound call.
	DefaultTimeLimit = 2 * time.Second

	// DefaultMaxNodes bounds the number of expanded search nodes.
	DefaultMaxNodes = 1_000_000

	// DefaultSeedSize is the largest seed set the greedy restarts from.
	DefaultSeedSize = 3

	// seedWork caps seeded restarts: seed size shrinks until
	// seeds·n stays within it.
	seedWork = 1 << 14

	// checkMask and checkWork set the clock period of BranchAndBound: every
	// 64 nodes, or sooner once bound evaluation has scanned checkWork
	// sentences.
	checkMask = 63
	checkWork = 1 << 15

	// epsValue is the improvement tolerance for incumbents and pruning.
	epsValue = 1e-9
)

// Options configures the solvers.
type Options struct {
	LengthExponent float64
	TimeLimit      time.Duration // 0 disables the time cutoff
	MaxNodes       int           // 0 disables the node cutoff
	SeedSize       int           // 0 runs the plain greedy
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		LengthExponent: DefaultLengthExponent,
		TimeLimit:      DefaultTimeLimit,
		MaxNodes:       DefaultMaxNodes,
		SeedSize:       DefaultSeedSize,
	}
}

// WithLengthExponent sets r in the greedy ratio gain/length^r.
func WithLengthExponent(r float64) Option { return func(o *Options) { o.LengthExponent = r } }

// WithTimeLimit bounds the wall-clock time of BranchAndBound.
func WithTimeLimit(d time.Duration) Option { return func(o *Options) { o.TimeLimit = d } }

// WithMaxNodes bounds the number of expanded BranchAndBound nodes.
func WithMaxNodes(n int) Option { return func(o *Options) { o.MaxNodes = n } }

// WithSeedSize sets the largest seed set the greedy restarts from.
func WithSeedSize(k int) Option { return func(o *Options) { o.SeedSize = k } }

func newOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if math.IsNaN(o.LengthExponent) || math.IsInf(o.LengthExponent, 0) || o.LengthExponent < 0 {
		return o, fmt.Errorf("length exponent %v: %w", o.LengthExponent, ErrBadOption)
	}
	if o.TimeLimit < 0 {
		return o, fmt.Errorf("time limit %v: %w", o.TimeLimit, ErrBadOption)
	}
	if o.MaxNodes < 0 {
		return o, fmt.Errorf("max nodes %d: %w", o.MaxNodes, ErrBadOption)
	}
	if o.SeedSize < 0 {
		return o, fmt.Errorf("seed size %d: %w", o.SeedSize, ErrBadOption)
	}

	return o, nil
}
