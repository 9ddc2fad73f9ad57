package generator

import "math/rand/v2"

// NewRand returns the single stream every generator in a run draws from.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// intBetween draws uniformly from the closed range [lo, hi].
func intBetween(r *rand.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

func choice[T any](r *rand.Rand, items []T) T {
	return items[r.IntN(len(items))]
}

func bernoulli(r *rand.Rand, p float64) bool {
	return r.Float64() < p
}

// weightedChoice picks items[i] with probability weights[i]/sum(weights).
func weightedChoice[T any](r *rand.Rand, items []T, weights []float64) T {
	var total float64
	for _, w := range weights {
		total += w
	}
	x := r.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if x < cum {
			return items[i]
		}
	}
	return items[len(items)-1]
}

// sampleIndexes draws k distinct indexes from [0, n) without replacement,
// in pick order.
func sampleIndexes(r *rand.Rand, n, k int) []int {
	if k > n {
		k = n
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	picked := make([]int, k)
	for i := 0; i < k; i++ {
		j := r.IntN(n - i)
		picked[i] = pool[j]
		pool[j] = pool[n-i-1]
	}
	return picked
}
