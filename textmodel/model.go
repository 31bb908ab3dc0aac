// SPDX-License-Identifier: MIT

package textmodel

import (
	"math"
	"sort"
)

// Option configures NewModel.
type Option func(*modelOptions)

type modelOptions struct {
	sublinear bool
}

// WithSublinearTF replaces raw term counts with 1+log(tf).
func WithSublinearTF() Option {
	return func(o *modelOptions) { o.sublinear = true }
}

// Model is the TF-IDF view of a DocumentSet (and optional Query).
//
// idf is smoothed over sentence units: idf(t) = log((1+N)/(1+df(t))) + 1,
// where N counts the query as one extra unit when present.
type Model struct {
	vocab   []Word
	index   map[Word]int
	idf     []float64
	vectors []Vector
	counts  []Vector
	query   *Vector
}

// NewModel builds the vocabulary, idf table and sentence vectors.
// A nil or empty DocumentSet yields an empty Model.
func NewModel(ds *DocumentSet, q *Query, opts ...Option) *Model {
	var o modelOptions
	for _, opt := range opts {
		opt(&o)
	}

	n := ds.Len()
	units := make([][]Word, 0, n+1)
	for i := 0; i < n; i++ {
		units = append(units, ds.sentences[i].Words)
	}
	hasQuery := !q.Empty()
	if hasQuery {
		units = append(units, q.Words)
	}

	// Sorted vocabulary keeps vector layout independent of map order.
	seen := make(map[Word]struct{})
	for _, u := range units {
		for _, w := range u {
			seen[w] = struct{}{}
		}
	}
	vocab := make([]Word, 0, len(seen))
	for w := range seen {
		vocab = append(vocab, w)
	}
	sort.Slice(vocab, func(a, b int) bool { return vocab[a] < vocab[b] })
	index := make(map[Word]int, len(vocab))
	for i, w := range vocab {
		index[w] = i
	}

	counts := make([]Vector, len(units))
	df := make([]int, len(vocab))
	for u, words := range units {
		counts[u] = countVector(words, index)
		for _, t := range counts[u].Terms {
			df[t]++
		}
	}

	N := float64(len(units))
	idf := make([]float64, len(vocab))
	for t := range idf {
		idf[t] = math.Log((1+N)/(1+float64(df[t]))) + 1
	}

	vectors := make([]Vector, len(units))
	for u := range units {
		c := counts[u]
		weights := make([]float64, len(c.Terms))
		for k, t := range c.Terms {
			tf := c.Weights[k]
			if o.sublinear {
				tf = 1 + math.Log(tf)
			}
			weights[k] = tf * idf[t]
		}
		vectors[u] = newVector(c.Terms, weights)
	}

	m := &Model{vocab: vocab, index: index, idf: idf}
	if hasQuery {
		qv := vectors[n]
		m.query = &qv
		vectors = vectors[:n]
		counts = counts[:n]
	}
	m.vectors = vectors
	m.counts = counts

	return m
}

// countVector returns raw term counts as a sparse Vector over index.
func countVector(words []Word, index map[Word]int) Vector {
	tf := make(map[int]float64, len(words))
	for _, w := range words {
		tf[index[w]]++
	}
	terms := make([]int, 0, len(tf))
	for t := range tf {
		terms = append(terms, t)
	}
	sort.Ints(terms)
	weights := make([]float64, len(terms))
	for k, t := range terms {
		weights[k] = tf[t]
	}

	return newVector(terms, weights)
}

// Len returns the number of sentence vectors.
func (m *Model) Len() int { return len(m.vectors) }

// VocabularySize returns the number of distinct terms.
func (m *Model) VocabularySize() int { return len(m.vocab) }

// Vocabulary returns a copy of the sorted vocabulary.
func (m *Model) Vocabulary() []Word {
	out := make([]Word, len(m.vocab))
	copy(out, m.vocab)

	return out
}

// TermID returns the vocabulary id of w.
func (m *Model) TermID(w Word) (int, bool) {
	id, ok := m.index[w]

	return id, ok
}

// IDF returns the idf of term id t, or 0 when t is unknown.
func (m *Model) IDF(t int) float64 {
	if t < 0 || t >= len(m.idf) {
		return 0
	}

	return m.idf[t]
}

// Vector returns the TF-IDF vector of sentence i.
func (m *Model) Vector(i int) Vector { return m.vectors[i] }

// Counts returns the raw term-count vector of sentence i.
func (m *Model) Counts(i int) Vector { return m.counts[i] }

// HasQuery reports whether the model was built with a non-empty query.
func (m *Model) HasQuery() bool { return m.query != nil }

// QueryVector returns the query vector when one is present.
func (m *Model) QueryVector() (Vector, bool) {
	if m.query == nil {
		return Vector{}, false
	}

	return *m.query, true
}
