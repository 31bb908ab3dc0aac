// SPDX-License-Identifier: MIT

package summarizer

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/lvsum/centrality"
	"github.com/katalvlaran/lvsum/coverage"
	"github.com/katalvlaran/lvsum/distributional"
	"github.com/katalvlaran/lvsum/diversity"
	"go.uber.org/zap"
)

// Defaults.
const (
	DefaultStrategy       = LexRank
	DefaultBudget         = 250
	DefaultLanguage       = "english"
	DefaultDamping        = centrality.DefaultDamping
	DefaultAlpha          = centrality.DefaultAlpha
	DefaultLambda         = diversity.DefaultLambda
	DefaultThreshold      = 0.0
	DefaultTopics         = distributional.DefaultTopics
	DefaultLengthExponent = coverage.DefaultLengthExponent
	DefaultTimeLimit      = coverage.DefaultTimeLimit
	DefaultMaxNodes       = coverage.DefaultMaxNodes
	DefaultMethod         = MethodDefault
	DefaultSolve          = centrality.Direct
)

// Config is an immutable summariser configuration. Build it with NewConfig.
type Config struct {
	Strategy Strategy
	Budget   int // words, used by SummarizeDefault

	// Normalisation settings, read by whoever builds the Normalizer.
	Language  string
	Stopwords string // stopword file; "" means the bundled list
	Stem      bool

	Damping   float64 // lexrank, textrank
	Alpha     float64 // manifoldrank propagation
	Lambda    float64 // MMR trade-off
	Method    Method  // manifoldrank selection
	Solve     centrality.Method
	Threshold float64 // similarity edges below it are dropped
	TopK      int     // 0 keeps every edge

	RankK          int // lsa dimensions; 0 picks min(3, rank)
	Topics         int // nmf
	Seed           int64
	LengthExponent float64 // submodular
	TimeLimit      time.Duration
	MaxNodes       int

	Logger *zap.Logger

	params []float64
}

// Option mutates a Config under construction.
type Option func(*Config)

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Strategy:       DefaultStrategy,
		Budget:         DefaultBudget,
		Language:       DefaultLanguage,
		Damping:        DefaultDamping,
		Alpha:          DefaultAlpha,
		Lambda:         DefaultLambda,
		Method:         DefaultMethod,
		Solve:          DefaultSolve,
		Threshold:      DefaultThreshold,
		Topics:         DefaultTopics,
		LengthExponent: DefaultLengthExponent,
		TimeLimit:      DefaultTimeLimit,
		MaxNodes:       DefaultMaxNodes,
		Logger:         zap.NewNop(),
	}
}

// WithStrategy selects the strategy.
func WithStrategy(s Strategy) Option { return func(c *Config) { c.Strategy = s } }

// WithBudget sets the default word budget.
func WithBudget(words int) Option { return func(c *Config) { c.Budget = words } }

// WithLanguage records the text language.
func WithLanguage(lang string) Option { return func(c *Config) { c.Language = lang } }

// WithStopwords records a stopword file path.
func WithStopwords(path string) Option { return func(c *Config) { c.Stopwords = path } }

// WithStem enables stemming.
func WithStem(on bool) Option { return func(c *Config) { c.Stem = on } }

// WithDamping sets the random-walk damping factor.
func WithDamping(d float64) Option { return func(c *Config) { c.Damping = d } }

// WithAlpha sets the manifold propagation weight.
func WithAlpha(a float64) Option { return func(c *Config) { c.Alpha = a } }

// WithLambda sets the MMR relevance weight.
func WithLambda(l float64) Option { return func(c *Config) { c.Lambda = l } }

// WithMethod selects default or MMR selection for manifoldrank.
func WithMethod(m Method) Option { return func(c *Config) { c.Method = m } }

// WithSolve selects the manifold solver.
func WithSolve(m centrality.Method) Option { return func(c *Config) { c.Solve = m } }

// WithThreshold sets the similarity edge threshold.
func WithThreshold(t float64) Option { return func(c *Config) { c.Threshold = t } }

// WithTopK keeps the k strongest edges per sentence.
func WithTopK(k int) Option { return func(c *Config) { c.TopK = k } }

// WithRankK sets the LSA dimensions.
func WithRankK(k int) Option { return func(c *Config) { c.RankK = k } }

// WithTopics sets the NMF topic count.
func WithTopics(k int) Option { return func(c *Config) { c.Topics = k } }

// WithSeed seeds the random baseline and the NMF initialisation.
func WithSeed(seed int64) Option { return func(c *Config) { c.Seed = seed } }

// WithLengthExponent sets r in the submodular ratio gain/length^r.
func WithLengthExponent(r float64) Option { return func(c *Config) { c.LengthExponent = r } }

// WithTimeLimit bounds the ILP search.
func WithTimeLimit(d time.Duration) Option { return func(c *Config) { c.TimeLimit = d } }

// WithMaxNodes bounds the ILP search nodes.
func WithMaxNodes(n int) Option { return func(c *Config) { c.MaxNodes = n } }

// WithLogger sets the diagnostics logger; nil means a no-op logger.
func WithLogger(l *zap.Logger) Option { return func(c *Config) { c.Logger = l } }

// WithParams sets strategy parameters positionally, applied after every
// other option:
//
//	lexrank, textrank  damping
//	manifoldrank       alpha, lambda
//	submodular         length exponent
//	lsa                dimensions
//	nmf                topics
//	random             seed
//	ilp                time limit in seconds
func WithParams(params ...float64) Option {
	return func(c *Config) { c.params = append([]float64(nil), params...) }
}

// NewConfig applies opts over DefaultConfig and validates the result.
func NewConfig(opts ...Option) (Config, error) {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if _, ok := unbiased[c.Strategy]; !ok {
		if _, ok = biased[c.Strategy]; !ok {
			return Config{}, fmt.Errorf("NewConfig: %q: %w", c.Strategy, ErrUnknownStrategy)
		}
	}
	if err := c.applyParams(); err != nil {
		return Config{}, fmt.Errorf("NewConfig: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, fmt.Errorf("NewConfig: %w", err)
	}

	return c, nil
}

// paramArity is the number of positional parameters per strategy.
var paramArity = map[Strategy]int{
	LexRank: 1, TextRank: 1, ManifoldRank: 2, Submodular: 1,
	LSA: 1, NMF: 1, Random: 1, ILP: 1, KL: 0,
}

func (c *Config) applyParams() error {
	p := c.params
	c.params = nil
	if len(p) == 0 {
		return nil
	}
	if len(p) > paramArity[c.Strategy] {
		return fmt.Errorf("%s takes %d params, got %d: %w", c.Strategy, paramArity[c.Strategy], len(p), ErrBadParam)
	}
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("param %v: %w", v, ErrBadParam)
		}
	}

	switch c.Strategy {
	case LexRank, TextRank:
		c.Damping = p[0]
	case ManifoldRank:
		c.Alpha = p[0]
		if len(p) > 1 {
			c.Lambda = p[1]
		}
	case Submodular:
		c.LengthExponent = p[0]
	case LSA:
		c.RankK = int(p[0])
	case NMF:
		c.Topics = int(p[0])
	case Random:
		c.Seed = int64(p[0])
	case ILP:
		c.TimeLimit = time.Duration(p[0] * float64(time.Second))
	}

	return nil
}

func (c *Config) validate() error {
	switch {
	case c.Budget < 0:
		return fmt.Errorf("budget %d: %w", c.Budget, ErrBadParam)
	case !(c.Damping > 0 && c.Damping < 1):
		return fmt.Errorf("damping %v: %w", c.Damping, ErrBadParam)
	case !(c.Alpha > 0 && c.Alpha < 1):
		return fmt.Errorf("alpha %v: %w", c.Alpha, ErrBadParam)
	case !(c.Lambda >= 0 && c.Lambda <= 1):
		return fmt.Errorf("lambda %v: %w", c.Lambda, ErrBadParam)
	case !(c.Threshold >= 0 && c.Threshold <= 1):
		return fmt.Errorf("threshold %v: %w", c.Threshold, ErrBadParam)
	case c.TopK < 0, c.RankK < 0, c.MaxNodes < 0:
		return fmt.Errorf("top-k %d, rank %d, max nodes %d: %w", c.TopK, c.RankK, c.MaxNodes, ErrBadParam)
	case c.Topics < 1:
		return fmt.Errorf("topics %d: %w", c.Topics, ErrBadParam)
	case !(c.LengthExponent >= 0) || math.IsInf(c.LengthExponent, 0):
		return fmt.Errorf("length exponent %v: %w", c.LengthExponent, ErrBadParam)
	case c.TimeLimit < 0:
		return fmt.Errorf("time limit %v: %w", c.TimeLimit, ErrBadParam)
	case c.Method != MethodDefault && c.Method != MethodMMR:
		return fmt.Errorf("method %q: %w", c.Method, ErrBadParam)
	case c.Solve != centrality.Iterative && c.Solve != centrality.Direct:
		return fmt.Errorf("solve %v: %w", c.Solve, ErrBadParam)
	}

	return nil
}
