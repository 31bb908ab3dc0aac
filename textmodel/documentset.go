// SPDX-License-Identifier: MIT

package textmodel

import "fmt"

// DocumentSet is a named, immutable arena of sentences grouped into
// Documents by Span. The zero value and nil are valid empty sets.
type DocumentSet struct {
	name      string
	sentences []Sentence
	spans     []Span
}

// Builder accumulates Documents for a DocumentSet.
type Builder struct {
	name      string
	sentences []Sentence
	spans     []Span
}

// NewBuilder starts a DocumentSet with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// AddDocument appends one Document made of specs, in order. Words are
// copied, so callers may reuse their slices.
func (b *Builder) AddDocument(specs ...SentenceSpec) *Builder {
	doc := len(b.spans)
	start := len(b.sentences)
	for pos, spec := range specs {
		words := make([]Word, len(spec.Words))
		copy(words, spec.Words)
		b.sentences = append(b.sentences, Sentence{
			Text:   spec.Text,
			Words:  words,
			Length: specLength(spec),
			Doc:    doc,
			Pos:    pos,
			Index:  start + pos,
		})
	}
	b.spans = append(b.spans, Span{Start: start, End: len(b.sentences)})

	return b
}

// Build freezes the accumulated Documents. The Builder must not be used
// afterwards.
func (b *Builder) Build() *DocumentSet {
	ds := &DocumentSet{name: b.name, sentences: b.sentences, spans: b.spans}
	b.sentences, b.spans = nil, nil

	return ds
}

// Name returns the set name.
func (ds *DocumentSet) Name() string {
	if ds == nil {
		return ""
	}

	return ds.name
}

// Len returns the number of sentences across all Documents.
func (ds *DocumentSet) Len() int {
	if ds == nil {
		return 0
	}

	return len(ds.sentences)
}

// DocumentCount returns the number of Documents (empty ones included).
func (ds *DocumentSet) DocumentCount() int {
	if ds == nil {
		return 0
	}

	return len(ds.spans)
}

// Sentence returns the sentence at arena index i.
func (ds *DocumentSet) Sentence(i int) (Sentence, error) {
	if i < 0 || i >= ds.Len() {
		return Sentence{}, fmt.Errorf("Sentence(%d): %w", i, ErrSentenceOutOfRange)
	}

	return ds.sentences[i], nil
}

// Sentences returns a copy of the arena in (Document, Position) order.
func (ds *DocumentSet) Sentences() []Sentence {
	out := make([]Sentence, ds.Len())
	if ds != nil {
		copy(out, ds.sentences)
	}

	return out
}

// Documents returns a copy of the Document spans.
func (ds *DocumentSet) Documents() []Span {
	out := make([]Span, ds.DocumentCount())
	if ds != nil {
		copy(out, ds.spans)
	}

	return out
}

// Lengths returns the budget length of every sentence, by arena index.
func (ds *DocumentSet) Lengths() []int {
	out := make([]int, ds.Len())
	for i := range out {
		out[i] = ds.sentences[i].Length
	}

	return out
}

// TotalLength returns the summed Length of all sentences.
func (ds *DocumentSet) TotalLength() int {
	total := 0
	for i := 0; i < ds.Len(); i++ {
		total += ds.sentences[i].Length
	}

	return total
}

// MapWords derives a new DocumentSet whose sentences carry fn(Words).
// Text, Length, Doc, Pos and Index are preserved; the receiver is untouched.
// fn is called once per sentence, in arena order.
func (ds *DocumentSet) MapWords(fn func([]Word) []Word) *DocumentSet {
	out := &DocumentSet{
		name:      ds.Name(),
		sentences: make([]Sentence, ds.Len()),
		spans:     ds.Documents(),
	}
	for i := range out.sentences {
		s := ds.sentences[i]
		in := make([]Word, len(s.Words))
		copy(in, s.Words)
		s.Words = fn(in)
		out.sentences[i] = s
	}

	return out
}
