// SPDX-License-Identifier: MIT
// Package matrix - linear-algebra kernels used by the rankers.
//
// Purpose:
//   - Sub/Scale/Transpose/MatVec for building and applying transition
//     and propagation operators.
//   - LU (Doolittle, unit-lower L, no pivoting) and Solve for closed-form
//     manifold ranking, (I − αS)·f = y.
//
// Notes:
//   - Every kernel validates through validators.go and wraps failures with
//     its operation tag via matrixErrorf.
//   - *Dense operands take a flat-slice fast path; any other Matrix is first
//     materialised into a Dense through At (fixed i→j order).

package matrix

import "fmt"

// ZeroSum is the initial value of accumulators in substitution loops.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Solve.
const ZeroPivot = 0.0

const (
	opSub       = "Sub"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opLU        = "LU"
	opSolve     = "Solve"
)

// matrixErrorf wraps err with an operation tag. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy read
// through At in i→j order.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Sub returns a − b as a new Dense. Operands are not mutated.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	for idx := range res.data {
		res.data[idx] = da.data[idx] - db.data[idx]
	}

	return res, nil
}

// Scale returns alpha·m as a new Dense.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(d.r, d.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx, v := range d.data {
		res.data[idx] = alpha * v
	}

	return res, nil
}

// Transpose returns mᵀ.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			res.data[j*res.c+i] = d.data[i*d.c+j]
		}
	}

	return res, nil
}

// MatVec computes y = m·x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j order.
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, d.r)
	var (
		i, j, base int
		acc, xv    float64
	)
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			xv = x[j]
			if xv != 0 {
				acc += d.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}

// LU computes the Doolittle factorisation A = L·U with unit diagonal on L,
// without pivoting.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (U[i,i] == 0).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - No pivoting keeps results bit-reproducible. It is numerically safe for
//     strictly diagonally dominant inputs such as I − α·S with S
//     row-stochastic and α < 1, which is what the manifold ranker feeds in.
func LU(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	a, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	n := a.r
	L, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	var (
		i, j, k      int
		sum, pivot   float64
		baseI, baseJ int
	)
	for i = 0; i < n; i++ {
		baseI = i * n
		// Row i of U.
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[baseI+k] * U.data[k*n+j]
			}
			U.data[baseI+j] = a.data[baseI+j] - sum
		}
		pivot = U.data[baseI+i]
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}
		// Column i of L.
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			baseJ = j * n
			for k = 0; k < i; k++ {
				sum += L.data[baseJ+k] * U.data[k*n+i]
			}
			L.data[baseJ+i] = (a.data[baseJ+i] - sum) / pivot
		}
	}

	return L, U, nil
}

// Solve returns x with m·x = b using LU followed by one forward (L·y = b)
// and one backward (U·x = y) substitution.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square or len(b) != n),
//     ErrSingular.
//
// Complexity:
//   - Time O(n³) for LU + O(n²) for the substitutions, Space O(n²).
func Solve(m Matrix, b []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, m.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	L, U, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := L.r
	y := make([]float64, n)
	x := make([]float64, n)

	var (
		i, k  int
		sum   float64
		base  int
		pivot float64
	)
	// Forward: L has a unit diagonal.
	for i = 0; i < n; i++ {
		sum = ZeroSum
		base = i * n
		for k = 0; k < i; k++ {
			sum += L.data[base+k] * y[k]
		}
		y[i] = b[i] - sum
	}
	// Backward.
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		base = i * n
		for k = i + 1; k < n; k++ {
			sum += U.data[base+k] * x[k]
		}
		pivot = U.data[base+i]
		if pivot == ZeroPivot {
			return nil, matrixErrorf(opSolve, ErrSingular)
		}
		x[i] = (y[i] - sum) / pivot
	}

	return x, nil
}
