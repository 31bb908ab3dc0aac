// SPDX-License-Identifier: MIT

package summarizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvsum/centrality"
	"github.com/katalvlaran/lvsum/coverage"
	"github.com/katalvlaran/lvsum/distributional"
	"github.com/katalvlaran/lvsum/diversity"
	"github.com/katalvlaran/lvsum/simgraph"
	"github.com/katalvlaran/lvsum/textmodel"
	"go.uber.org/zap"
)

// Normalizer turns raw text into Words. textproc.Normalizer implements it.
type Normalizer interface {
	Tokenize(text string) []textmodel.Word
	Normalize(words []textmodel.Word) []textmodel.Word
}

// Diagnostics reports how a Summary was produced.
type Diagnostics struct {
	Strategy Strategy

	// Converged is false when a ranker hit its iteration cap.
	Converged  bool
	Iterations int

	// Optimal is true when the ILP search finished (ilp only).
	Optimal bool
	Nodes   int

	// Fallback is true when the direct manifold solve failed and the
	// iterative one was used instead.
	Fallback bool
}

// Summary is the selected subset, in arena order.
type Summary struct {
	Sentences   []textmodel.Sentence
	Indices     []int
	Words       int
	Diagnostics Diagnostics
}

// Summarizer runs one configured strategy. It holds no per-call state and
// may be reused.
type Summarizer struct {
	cfg  Config
	norm Normalizer
	log  *zap.Logger
}

// New validates cfg and binds it to norm.
func New(cfg Config, norm Normalizer) (*Summarizer, error) {
	if norm == nil {
		return nil, fmt.Errorf("New: %w", ErrNilNormalizer)
	}
	if _, ok := paramArity[cfg.Strategy]; !ok {
		return nil, fmt.Errorf("New: %q: %w", cfg.Strategy, ErrUnknownStrategy)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Summarizer{cfg: cfg, norm: norm, log: log.With(zap.String("strategy", string(cfg.Strategy)))}, nil
}

// Config returns the bound configuration.
func (s *Summarizer) Config() Config { return s.cfg }

// SummarizeDefault is Summarize with the configured Config.Budget.
func (s *Summarizer) SummarizeDefault(ds *textmodel.DocumentSet, query string) (Summary, error) {
	return s.Summarize(ds, query, s.cfg.Budget)
}

// Summarize selects sentences of ds totalling at most budget words. A blank
// query runs the unbiased variant of the strategy.
//
// An empty ds, or a budget shorter than every sentence, yields an empty
// Summary and no error.
func (s *Summarizer) Summarize(ds *textmodel.DocumentSet, query string, budget int) (Summary, error) {
	hasQuery := strings.TrimSpace(query) != ""
	if err := s.cfg.Strategy.check(hasQuery); err != nil {
		return Summary{}, fmt.Errorf("Summarize: %s: %w", s.cfg.Strategy, err)
	}
	if budget < 0 {
		return Summary{}, fmt.Errorf("Summarize: budget %d: %w", budget, ErrBadParam)
	}

	lengths := ds.Lengths()
	if len(lengths) == 0 || budget < minInt(lengths) {
		s.log.Debug("nothing fits", zap.Int("sentences", len(lengths)), zap.Int("budget", budget))

		return s.finish(ds, nil, Diagnostics{Converged: true}), nil
	}

	prepared := s.prepare(ds)
	var q *textmodel.Query
	if hasQuery {
		q = &textmodel.Query{Text: query, Words: s.norm.Normalize(s.norm.Tokenize(query))}
		if q.Empty() && s.cfg.Strategy == ManifoldRank {
			return Summary{}, fmt.Errorf("Summarize: query %q has no content words: %w", query, ErrQueryRequired)
		}
	}

	sel, diag, err := s.run(prepared, q, lengths, budget)
	if err != nil {
		return Summary{}, fmt.Errorf("Summarize: %s: %w", s.cfg.Strategy, err)
	}
	out := s.finish(ds, sel, diag)
	s.log.Debug("summarized",
		zap.Int("sentences", len(lengths)),
		zap.Int("budget", budget),
		zap.Int("selected", len(out.Indices)),
		zap.Int("words", out.Words),
	)

	return out, nil
}

// prepare normalises every sentence; sentences built from Text alone are
// tokenised first.
func (s *Summarizer) prepare(ds *textmodel.DocumentSet) *textmodel.DocumentSet {
	sentences := ds.Sentences()
	i := 0

	return ds.MapWords(func(words []textmodel.Word) []textmodel.Word {
		if len(words) == 0 {
			words = s.norm.Tokenize(sentences[i].Text)
		}
		i++

		return s.norm.Normalize(words)
	})
}

func (s *Summarizer) run(ds *textmodel.DocumentSet, q *textmodel.Query, lengths []int, budget int) ([]int, Diagnostics, error) {
	diag := Diagnostics{Converged: true}
	var (
		sel []int
		err error
	)
	switch s.cfg.Strategy {
	case LexRank, TextRank, ManifoldRank:
		return s.rank(ds, q, lengths, budget)

	case Submodular, ILP:
		var inst *coverage.Instance
		if inst, err = coverage.FromDocumentSet(ds, 0); err != nil {
			return nil, diag, err
		}
		opts := []coverage.Option{
			coverage.WithLengthExponent(s.cfg.LengthExponent),
			coverage.WithTimeLimit(s.cfg.TimeLimit),
			coverage.WithMaxNodes(s.cfg.MaxNodes),
		}
		var res coverage.Result
		if s.cfg.Strategy == Submodular {
			res, err = coverage.Greedy(inst, budget, opts...)
		} else {
			res, err = coverage.BranchAndBound(inst, budget, opts...)
			diag.Optimal, diag.Nodes = res.Optimal, res.Nodes
			if err == nil && !res.Optimal {
				s.log.Warn("ilp search cut off, using best incumbent",
					zap.String("cutoff", res.Cutoff), zap.Int("nodes", res.Nodes), zap.Float64("value", res.Value))
			}
		}
		sel = res.Selected

	case KL:
		sel, err = distributional.KL(ds, budget)

	case LSA:
		sel, err = distributional.LSA(textmodel.NewModel(ds, nil), lengths, budget, s.cfg.RankK)

	case NMF:
		sel, err = distributional.NMF(textmodel.NewModel(ds, nil), lengths, budget,
			distributional.WithTopics(s.cfg.Topics), distributional.WithSeed(s.cfg.Seed))

	case Random:
		sel, err = distributional.Random(lengths, budget, s.cfg.Seed)

	default:
		err = ErrUnknownStrategy
	}

	return sel, diag, err
}

// rank runs the graph strategies: one model, one graph, one ranking.
func (s *Summarizer) rank(ds *textmodel.DocumentSet, q *textmodel.Query, lengths []int, budget int) ([]int, Diagnostics, error) {
	var diag Diagnostics
	measure := simgraph.Cosine
	if s.cfg.Strategy == TextRank {
		measure = simgraph.Overlap
	}
	g, err := simgraph.Build(textmodel.NewModel(ds, q),
		simgraph.WithThreshold(s.cfg.Threshold),
		simgraph.WithTopK(s.cfg.TopK),
		simgraph.WithMeasure(measure),
	)
	if err != nil {
		return nil, diag, err
	}

	var r centrality.Ranking
	if s.cfg.Strategy == ManifoldRank {
		r, diag.Fallback, err = s.manifold(g)
	} else {
		opts := []centrality.Option{centrality.WithDamping(s.cfg.Damping)}
		if g.HasQuery() {
			opts = append(opts, centrality.WithTeleport(g.QuerySim))
		}
		r, err = centrality.Stationary(g, opts...)
	}
	if err != nil {
		return nil, diag, err
	}
	diag.Converged, diag.Iterations = r.Converged, r.Iterations
	if !r.Converged {
		s.log.Warn("ranking did not converge, using last iterate",
			zap.Int("iterations", r.Iterations), zap.Float64("residual", r.Residual))
	}

	var sel []int
	if s.cfg.Strategy == ManifoldRank && s.cfg.Method == MethodMMR {
		sel, err = diversity.MMR(r.Scores, g, lengths, budget, s.cfg.Lambda)
	} else {
		sel, err = diversity.TopByScore(r.Scores, lengths, budget)
	}

	return sel, diag, err
}

// manifold solves with the configured method and retries iteratively when
// the direct factorisation fails.
func (s *Summarizer) manifold(g *simgraph.Graph) (centrality.Ranking, bool, error) {
	r, err := centrality.Manifold(g, centrality.WithAlpha(s.cfg.Alpha), centrality.WithMethod(s.cfg.Solve))
	if err == nil || s.cfg.Solve != centrality.Direct {
		return r, false, err
	}
	s.log.Warn("direct manifold solve failed, falling back to iteration", zap.Error(err))
	r, err = centrality.Manifold(g, centrality.WithAlpha(s.cfg.Alpha), centrality.WithMethod(centrality.Iterative))

	return r, true, err
}

// finish sorts sel into arena order and resolves the sentences of ds.
func (s *Summarizer) finish(ds *textmodel.DocumentSet, sel []int, diag Diagnostics) Summary {
	diag.Strategy = s.cfg.Strategy
	idx := append([]int{}, sel...)
	sort.Ints(idx)

	all := ds.Sentences()
	out := Summary{Sentences: make([]textmodel.Sentence, 0, len(idx)), Indices: idx, Diagnostics: diag}
	for _, i := range idx {
		out.Sentences = append(out.Sentences, all[i])
		out.Words += all[i].Length
	}

	return out
}

func minInt(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}

	return m
}
