// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for shape/nil/symmetry checks.
//   - Return sentinels tagged with the validator name so call sites can
//     wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing.
//   - Symmetry check runs O(n²) over the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix when m is nil (including a typed nil *Dense).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions. Assumes non-nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks Rows == Cols. Assumes non-nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures x is non-nil with exactly n entries.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks that m is non-nil, square and |m[i,j]-m[j,i]| <= tol
// for all i<j.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (non-finite entry),
//     ErrAsymmetry.
//
// Complexity:
//   - Time O(n²), Space O(1).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.Rows()
	var (
		i, j   int
		a, b   float64
		err    error
		fast   = false
		dense  *Dense
		offIJ  int
		offJI  int
		ok     bool
		tagSym = "ValidateSymmetric"
	)
	if dense, ok = m.(*Dense); ok {
		fast = true
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if fast {
				offIJ, offJI = i*n+j, j*n+i
				a, b = dense.data[offIJ], dense.data[offJI]
			} else {
				if a, err = m.At(i, j); err != nil {
					return validatorErrorf(tagSym, err)
				}
				if b, err = m.At(j, i); err != nil {
					return validatorErrorf(tagSym, err)
				}
			}
			if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
				return validatorErrorf(tagSym, ErrNaNInf)
			}
			if math.Abs(a-b) > tol {
				return validatorErrorf(tagSym, ErrAsymmetry)
			}
		}
	}

	return nil
}
