// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric substrate used by the ranking
// engines: a row-major Dense matrix with safe accessors, canonical
// validators, and the handful of linear-algebra kernels that graph
// centrality needs.
//
// What is here:
//
//   - Dense: row-major storage, At/Set return sentinel errors instead of
//     panicking, RowView gives a no-copy window on one row for hot loops.
//   - Validators: ValidateNotNil, ValidateSquare, ValidateVecLen,
//     ValidateSymmetric, ValidateSameShape.
//   - Kernels: Sub, Scale, Transpose, MatVec, LU (Doolittle, no
//     pivoting), Solve (LU + forward/backward substitution).
//   - Row operations: NormalizeRowsL1, Stochastic (stochastic rows with a
//     uniform fallback for zero rows).
//
// Determinism:
//
//	Every kernel walks its operands in a fixed i→j order and never iterates
//	maps, so identical inputs give bit-identical outputs.
//
// Errors:
//
//	All failures are package sentinels (errors.go), wrapped with the
//	operation tag ("LU: matrix: singular matrix") and matched via errors.Is.
package matrix
