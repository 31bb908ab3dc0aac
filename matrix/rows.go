// SPDX-License-Identifier: MIT
// Package matrix - row reductions and row normalisation.
//
// Purpose:
//   - NormalizeRowsL1 for propagation operators (zero rows stay zero).
//   - Stochastic for random-walk operators (zero rows become uniform).

package matrix

import "math"

const (
	opNormalizeL = "NormalizeRowsL1"
	opStochastic = "Stochastic"
)

// NormalizeRowsL1 returns a copy of m whose rows have L1 norm 1, together
// with the original per-row norms. Rows with norm 0 are left unchanged.
//
// Complexity: Time O(r*c), Space O(r*c).
func NormalizeRowsL1(m Matrix) (*Dense, []float64, error) {
	return normalizeRows(m, false, opNormalizeL)
}

// Stochastic returns a row-stochastic copy of m: every row is divided by its
// L1 norm, and rows with norm 0 are replaced by the uniform row 1/c.
// Entries are expected to be non-negative.
func Stochastic(m Matrix) (*Dense, error) {
	out, _, err := normalizeRows(m, true, opStochastic)

	return out, err
}

func normalizeRows(m Matrix, uniformZero bool, tag string) (*Dense, []float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	out, err := NewDense(d.r, d.c)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	norms := make([]float64, d.r)
	var (
		i, j, base int
		s, inv     float64
		uniform    = 1.0 / float64(d.c)
	)
	for i = 0; i < d.r; i++ {
		base = i * d.c
		s = 0
		for j = 0; j < d.c; j++ {
			s += math.Abs(d.data[base+j])
		}
		norms[i] = s
		switch {
		case s > 0:
			inv = 1.0 / s
			for j = 0; j < d.c; j++ {
				out.data[base+j] = d.data[base+j] * inv
			}
		case uniformZero:
			for j = 0; j < d.c; j++ {
				out.data[base+j] = uniform
			}
		default:
			copy(out.data[base:base+d.c], d.data[base:base+d.c])
		}
	}

	return out, norms, nil
}
