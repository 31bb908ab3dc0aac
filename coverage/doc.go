// SPDX-License-Identifier: MIT

// Package coverage selects sentences by weighted concept coverage.
//
// Objective:
//
//	F(S) = Σ_{c ∈ ∪_{s∈S} concepts(s)} w_c
//
// F is monotone, submodular and non-negative. Two solvers share one Instance:
//
//   - Greedy: repeatedly takes the sentence with the highest
//     gain/length^r that still fits, then compares the result with the best
//     fitting singleton and keeps the better one. With unit lengths this is
//     the classic (1−1/e) greedy.
//   - BranchAndBound: exact solution of
//
//     max Σ_c w_c·y_c
//     s.t. y_c ≤ Σ_{s∋c} x_s,  Σ_s l_s·x_s ≤ B,  x, y ∈ {0,1}
//
//     by depth-first include/exclude branching over sentences in descending
//     singleton ratio. The bound at a node is the current value plus the
//     fractional-knapsack relaxation of the remaining marginal gains, which
//     never underestimates the best completion because F is submodular.
//     The incumbent is seeded by Greedy. Time and node cutoffs are checked
//     every 4096 nodes; hitting one returns the incumbent with
//     Optimal=false and no error.
//
// Results list sentences in ascending arena index.
package coverage
