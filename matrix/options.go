// SPDX-License-Identifier: MIT

// Package matrix: numeric policy options.
//
// The only configurable knob is whether Set rejects NaN/Inf. DefaultEpsilon
// is the tolerance callers pass to ValidateSymmetric.
package matrix

const (
	// DefaultEpsilon is the tolerance used by structural checks (symmetry).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf makes Set reject NaN/±Inf.
	DefaultValidateNaNInf = true
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the resolved numeric policy.
type Options struct {
	validateNaNInf bool
}

// WithNoValidateNaNInf disables NaN/Inf rejection in Set.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves setters against the documented defaults
// (last writer wins).
func NewOptions(opts ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}
