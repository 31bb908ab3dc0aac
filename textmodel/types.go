// SPDX-License-Identifier: MIT

package textmodel

import (
	"errors"
	"strings"
)

// ErrSentenceOutOfRange is returned when an arena index is outside the set.
var ErrSentenceOutOfRange = errors.New("textmodel: sentence index out of range")

// Word is a normalised token.
type Word string

// Sentence is one arena entry. Values handed out by a DocumentSet share
// their Words backing array with the set; treat it as read-only.
type Sentence struct {
	// Text is the raw sentence text as ingested.
	Text string

	// Words are the normalised tokens used for vectorisation.
	Words []Word

	// Length is the word count charged against a budget.
	Length int

	// Doc is the index of the owning Document.
	Doc int

	// Pos is the position of the sentence inside its Document.
	Pos int

	// Index is the arena index inside the DocumentSet.
	Index int
}

// SentenceSpec is the builder input for one sentence.
// A zero Length is derived from Text (whitespace fields) or, for empty
// Text, from len(Words).
type SentenceSpec struct {
	Text   string
	Words  []Word
	Length int
}

// Span is the half-open arena range [Start, End) of one Document.
type Span struct {
	Start int
	End   int
}

// Len returns the number of sentences in the span.
func (s Span) Len() int { return s.End - s.Start }

// Query is a transient pseudo-sentence used to bias ranking.
type Query struct {
	Text  string
	Words []Word
}

// Empty reports whether the query carries no words.
func (q *Query) Empty() bool { return q == nil || len(q.Words) == 0 }

func specLength(spec SentenceSpec) int {
	if spec.Length > 0 {
		return spec.Length
	}
	if spec.Text != "" {
		return len(strings.Fields(spec.Text))
	}

	return len(spec.Words)
}
