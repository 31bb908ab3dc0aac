// SPDX-License-Identifier: MIT

// Package centrality ranks sentences by their position in the similarity
// graph.
//
// Stationary computes the stationary distribution of the damped random walk
// (LexRank and TextRank differ only in the graph measure):
//
//	x_{t+1} = d·Mᵀ·x_t + (1−d)·u
//
// where M is simgraph.Transition(g), d the damping factor and u the uniform
// teleport vector. WithTeleport replaces u with a caller-supplied bias (the
// query-similarity row for query-biased LexRank), normalised to sum 1.
//
// Manifold propagates a query seed over the row-normalised similarity S:
//
//	f = (I − α·S)⁻¹·y
//
// either iteratively (f_{t+1} = α·S·f_t + y) or by a direct LU solve. With a
// zero diagonal and rows summing to at most 1, I − α·S is strictly
// diagonally dominant for α < 1, so the non-pivoting LU in package matrix
// never meets a zero pivot.
//
// Both stop on ‖x_{t+1} − x_t‖₁ < Epsilon or after MaxIter sweeps. Hitting
// MaxIter is not an error: the last iterate is returned with Converged=false.
package centrality
