// SPDX-License-Identifier: MIT

package simgraph

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors.
var (
	// ErrBadThreshold indicates a threshold outside [0,1] or NaN.
	ErrBadThreshold = errors.New("simgraph: threshold must be in [0,1]")

	// ErrBadTopK indicates a negative top-k.
	ErrBadTopK = errors.New("simgraph: top-k must be >= 0")

	// ErrBadMeasure indicates an unknown similarity measure.
	ErrBadMeasure = errors.New("simgraph: unknown similarity measure")

	// ErrNilModel indicates Build was called without a model.
	ErrNilModel = errors.New("simgraph: model is nil")

	// ErrEmptyGraph indicates an operation that needs at least one node.
	ErrEmptyGraph = errors.New("simgraph: graph has no nodes")
)

// Measure selects the pairwise similarity.
type Measure int

const (
	// Cosine is the TF-IDF cosine similarity.
	Cosine Measure = iota

	// Overlap is the TextRank shared-word similarity.
	Overlap
)

// String implements fmt.Stringer.
func (m Measure) String() string {
	switch m {
	case Cosine:
		return "cosine"
	case Overlap:
		return "overlap"
	default:
		return fmt.Sprintf("Measure(%d)", int(m))
	}
}

// Defaults keep every edge.
const (
	DefaultThreshold = 0.0
	DefaultTopK      = 0 // 0 disables top-k sparsification
	DefaultMeasure   = Cosine
)

// Options holds Build parameters.
type Options struct {
	Threshold float64
	TopK      int
	Measure   Measure
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the dense cosine configuration.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold, TopK: DefaultTopK, Measure: DefaultMeasure}
}

// WithThreshold zeroes edges whose weight is below t.
func WithThreshold(t float64) Option {
	return func(o *Options) { o.Threshold = t }
}

// WithTopK keeps only the k strongest edges of every node (union semantics).
func WithTopK(k int) Option {
	return func(o *Options) { o.TopK = k }
}

// WithMeasure selects the similarity measure.
func WithMeasure(m Measure) Option {
	return func(o *Options) { o.Measure = m }
}

func (o Options) validate() error {
	if math.IsNaN(o.Threshold) || o.Threshold < 0 || o.Threshold > 1 {
		return fmt.Errorf("threshold %v: %w", o.Threshold, ErrBadThreshold)
	}
	if o.TopK < 0 {
		return fmt.Errorf("top-k %d: %w", o.TopK, ErrBadTopK)
	}
	if o.Measure != Cosine && o.Measure != Overlap {
		return fmt.Errorf("%v: %w", o.Measure, ErrBadMeasure)
	}

	return nil
}
