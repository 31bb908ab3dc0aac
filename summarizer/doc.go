// SPDX-License-Identifier: MIT

// Package summarizer is the single entry point over the ranking and
// selection engines.
//
// A Strategy is one of a closed set of names. Unbiased strategies:
//
//	ilp          exact concept coverage (branch and bound)
//	kl           greedy KL divergence to the input distribution
//	lexrank      cosine graph, stationary distribution
//	lsa          SVD salience
//	nmf          topic round robin over a non-negative factorisation
//	random       seeded baseline
//	submodular   budgeted greedy concept coverage
//	textrank     word-overlap graph, stationary distribution
//
// Query-biased strategies are lexrank (teleport to query-similar sentences)
// and manifoldrank (propagation from the query, selected by score or MMR).
//
// Configuration is an immutable Config built once by NewConfig from
// functional options or a YAML file (LoadFile). Summarize never mutates its
// input; output sentences are always in arena order and never exceed the
// word budget.
package summarizer
