// SPDX-License-Identifier: MIT

package summarizer

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors.
var (
	// ErrUnknownStrategy indicates a strategy name outside the closed set.
	ErrUnknownStrategy = errors.New("summarizer: unknown strategy")

	// ErrQueryNotSupported indicates a query given to an unbiased-only strategy.
	ErrQueryNotSupported = errors.New("summarizer: strategy does not accept a query")

	// ErrQueryRequired indicates a query-only strategy run without a query.
	ErrQueryRequired = errors.New("summarizer: strategy requires a query")

	// ErrBadParam indicates an invalid configuration value.
	ErrBadParam = errors.New("summarizer: invalid parameter")

	// ErrNilNormalizer indicates New was called without a Normalizer.
	ErrNilNormalizer = errors.New("summarizer: normalizer is nil")
)

// Strategy names a summarisation strategy.
type Strategy string

// Strategies.
const (
	ILP          Strategy = "ilp"
	KL           Strategy = "kl"
	LexRank      Strategy = "lexrank"
	LSA          Strategy = "lsa"
	NMF          Strategy = "nmf"
	Random       Strategy = "random"
	Submodular   Strategy = "submodular"
	TextRank     Strategy = "textrank"
	ManifoldRank Strategy = "manifoldrank"
)

// unbiased strategies run without a query.
var unbiased = map[Strategy]struct{}{
	ILP: {}, KL: {}, LexRank: {}, LSA: {}, NMF: {},
	Random: {}, Submodular: {}, TextRank: {},
}

// biased strategies run with a query.
var biased = map[Strategy]struct{}{
	LexRank: {}, ManifoldRank: {},
}

// ParseStrategy resolves name against the strategies valid for the query
// mode.
func ParseStrategy(name string, hasQuery bool) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	if err := s.check(hasQuery); err != nil {
		return "", fmt.Errorf("ParseStrategy(%q): %w", name, err)
	}

	return s, nil
}

func (s Strategy) check(hasQuery bool) error {
	_, u := unbiased[s]
	_, b := biased[s]
	switch {
	case !u && !b:
		return ErrUnknownStrategy
	case hasQuery && !b:
		return ErrQueryNotSupported
	case !hasQuery && !u:
		return ErrQueryRequired
	}

	return nil
}

// Strategies lists the strategy names for the query mode, sorted.
func Strategies(hasQuery bool) []string {
	set := unbiased
	if hasQuery {
		set = biased
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, string(s))
	}
	sort.Strings(out)

	return out
}

// Method selects how a ranking becomes a selection.
type Method string

// Selection methods.
const (
	// MethodDefault takes sentences by descending score.
	MethodDefault Method = "default"

	// MethodMMR re-ranks with maximal marginal relevance.
	MethodMMR Method = "mmr"
)

// ParseMethod accepts "default" and "mmr" (any case); "" is MethodDefault.
func ParseMethod(name string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(name))); m {
	case "", MethodDefault:
		return MethodDefault, nil
	case MethodMMR:
		return MethodMMR, nil
	default:
		return "", fmt.Errorf("ParseMethod(%q): %w", name, ErrBadParam)
	}
}
