// SPDX-License-Identifier: MIT

// Package distributional selects sentences from word-distribution and
// latent-topic views of the input.
//
//   - KL: greedy minimisation of KL(Q_sel ‖ P_doc) between the unigram
//     distribution of the selection and that of the whole input.
//   - LSA: thin SVD of the term×sentence TF-IDF matrix; a sentence scores
//     sqrt(Σ_{i<k} (σ_i·V_{j,i})²) and selection walks scores downwards.
//   - NMF: A ≈ W·H by Lee–Seung multiplicative updates from a seeded
//     start; topics are visited by strength Σ_j H_kj and each picks its
//     highest-loading unvisited sentence.
//   - Random: a seeded permutation, kept in order while sentences fit.
//
// Every selector returns arena indices in selection order and never exceeds
// the budget. Seed 0 means the fixed default seed, so all four are
// deterministic.
package distributional
