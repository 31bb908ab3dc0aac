// SPDX-License-Identifier: MIT

package distributional

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrBadBudget indicates a negative word budget.
	ErrBadBudget = errors.New("distributional: budget must be >= 0")

	// ErrLengthMismatch indicates lengths and the model disagree on n.
	ErrLengthMismatch = errors.New("distributional: input lengths differ")

	// ErrBadOption indicates an invalid selector option.
	ErrBadOption = errors.New("distributional: invalid option")

	// ErrFactorization indicates the SVD did not converge.
	ErrFactorization = errors.New("distributional: factorization failed")
)

// Random keeps sentences in seeded-permutation order while they fit.
func Random(lengths []int, budget int, seed int64) ([]int, error) {
	if budget < 0 {
		return nil, fmt.Errorf("Random: budget %d: %w", budget, ErrBadBudget)
	}
	order := permRange(len(lengths), rngFromSeed(seed))

	return fitInOrder(order, lengths, budget), nil
}

// fitInOrder walks order and keeps every sentence that still fits.
func fitInOrder(order, lengths []int, budget int) []int {
	selected := make([]int, 0)
	remaining := budget
	for _, i := range order {
		if lengths[i] <= remaining {
			selected = append(selected, i)
			remaining -= lengths[i]
		}
	}

	return selected
}
