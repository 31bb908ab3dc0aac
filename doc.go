// SPDX-License-Identifier: MIT

// Package lvsum is an extractive summarisation toolkit: it picks a
// length-bounded, representative subset of sentences from a document or a
// document collection, optionally biased toward a query.
//
// 🚀 What is lvsum?
//
//	A family of interchangeable ranking-and-selection engines over one
//	sentence arena:
//		• Graph centrality: LexRank, TextRank, query-biased LexRank
//		• Manifold ranking: query propagation, iterative or direct solve
//		• Diversity: maximal marginal relevance (MMR)
//		• Concept coverage: exact branch-and-bound ILP, submodular greedy
//		• Distributional: KL divergence, LSA (SVD), NMF, random baseline
//
// ✨ Guarantees
//
//   - Summaries never exceed the word budget; sentences are never truncated
//   - Output keeps the original sentence order
//   - Every strategy except random is deterministic; random is seeded
//
// Packages:
//
//	textmodel/      sentence arena, TF-IDF vectors, concepts
//	matrix/         dense matrices, LU solve, row normalisation
//	simgraph/       similarity graph with threshold and top-k sparsification
//	centrality/     stationary distribution and manifold ranking
//	diversity/      MMR and top-by-score selection
//	coverage/       coverage objective, greedy and branch-and-bound solvers
//	distributional/ KL, LSA, NMF and random selectors
//	summarizer/     Strategy, immutable Config, Summarize
//	textproc/       tokenisation, stopwords, stemming, output joining
//	ingest/         plaintext and XML parsers, file and directory loading
//	cmd/lvsum/      command-line front end
//
// Quick start:
//
//	lvsum -method lexrank -file news/ -length 100
//	lvsum manifoldrank -file report.txt -query "wind power" -select mmr
//
//	go install github.com/katalvlaran/lvsum/cmd/lvsum@latest
package lvsum
