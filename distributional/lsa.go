// SPDX-License-Identifier: MIT

package distributional

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsum/diversity"
	"github.com/katalvlaran/lvsum/textmodel"
	"gonum.org/v1/gonum/mat"
)

// DefaultLSADimensions caps the latent dimensions when k <= 0.
const DefaultLSADimensions = 3

// rankTol is the relative threshold under which a singular value counts as zero.
const rankTol = 1e-10

// termSentence returns the vocabulary×sentence TF-IDF matrix, or nil when
// the model has no sentences or no terms.
func termSentence(m *textmodel.Model) *mat.Dense {
	n, v := m.Len(), m.VocabularySize()
	if n == 0 || v == 0 {
		return nil
	}
	a := mat.NewDense(v, n, nil)
	for j := 0; j < n; j++ {
		vec := m.Vector(j)
		for k, t := range vec.Terms {
			a.Set(t, j, vec.Weights[k])
		}
	}

	return a
}

// LSAScores returns the LSA salience of every sentence. k <= 0 selects
// min(DefaultLSADimensions, rank); larger k is clamped to the rank.
//
// Complexity: one thin SVD, O(min(v,n)·v·n).
func LSAScores(m *textmodel.Model, k int) ([]float64, error) {
	scores := make([]float64, m.Len())
	a := termSentence(m)
	if a == nil {
		return scores, nil
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, fmt.Errorf("LSAScores: %w", ErrFactorization)
	}
	sigma := svd.Values(nil)
	var vt mat.Dense
	svd.VTo(&vt) // n × min(v,n); column i pairs with sigma[i]

	rank := 0
	for _, s := range sigma {
		if s > rankTol*sigma[0] {
			rank++
		}
	}
	if k <= 0 {
		k = min(DefaultLSADimensions, rank)
	}
	k = min(k, rank)

	for j := range scores {
		var sum float64
		for i := 0; i < k; i++ {
			x := sigma[i] * vt.At(j, i)
			sum += x * x
		}
		scores[j] = math.Sqrt(sum)
	}

	return scores, nil
}

// LSA selects by descending LSA salience within the budget.
func LSA(m *textmodel.Model, lengths []int, budget, k int) ([]int, error) {
	if len(lengths) != m.Len() {
		return nil, fmt.Errorf("LSA: lengths %d, model %d: %w", len(lengths), m.Len(), ErrLengthMismatch)
	}
	if budget < 0 {
		return nil, fmt.Errorf("LSA: budget %d: %w", budget, ErrBadBudget)
	}
	scores, err := LSAScores(m, k)
	if err != nil {
		return nil, fmt.Errorf("LSA: %w", err)
	}
	sel, err := diversity.TopByScore(scores, lengths, budget)
	if err != nil {
		return nil, fmt.Errorf("LSA: %w", err)
	}

	return sel, nil
}
