// SPDX-License-Identifier: MIT

package distributional

import "math/rand"

// defaultRNGSeed replaces a zero seed so the default run is reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 means defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// permRange returns a Fisher–Yates permutation of 0..n-1 drawn from rng.
//
// Complexity: O(n).
func permRange(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}

// positiveUniform fills dst with draws from (0,1]; multiplicative updates
// cannot leave an exact zero.
func positiveUniform(dst []float64, rng *rand.Rand) {
	for i := range dst {
		dst[i] = 1 - rng.Float64()
	}
}
