// SPDX-License-Identifier: MIT

// Package textmodel defines the sentence arena every summarisation
// strategy works on, and the vector representations derived from it.
//
// Entities:
//
//   - Word: a normalised token (after stopword filtering, optionally stemmed).
//   - Sentence: ordered Words plus raw Text, its word-count Length, its
//     Document index, its Position inside the Document and its arena Index.
//   - DocumentSet: a named, flat arena of Sentences; each Document is a
//     half-open Span of arena indices. Arena order equals
//     (Document, Position) order, so "lower index" is the canonical
//     deterministic tie-break across the module.
//   - Query: a transient pseudo-sentence; never stored in a DocumentSet.
//
// Representations:
//
//   - Model: sorted vocabulary, smoothed idf over sentence units (plus the
//     query when present) and sparse TF-IDF Vectors with cached L2 norms.
//   - ConceptSet: distinct terms per sentence with document-frequency
//     weights, the coverage unit of combinatorial selection.
//
// A DocumentSet is immutable once built; MapWords derives a new one.
package textmodel
