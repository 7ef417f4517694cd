package mathutil

import (
	"math"
	"math/rand/v2"
	"sort"
)

// Weighted pairs an item with a non-negative integer weight.
type Weighted[T any] struct {
	Weight int
	Item   T
}

// WeightedChoice picks an item with probability proportional to its weight.
// It computes prefix sums, draws r uniformly in [0, total) and returns the
// first item whose prefix sum exceeds r. ok is false when the total weight is
// zero, including an empty list.
func WeightedChoice[T any](rng *rand.Rand, items []Weighted[T]) (item T, ok bool) {
	prefix := make([]int, len(items))
	total := 0
	for i, it := range items {
		if it.Weight > 0 {
			total += it.Weight
		}
		prefix[i] = total
	}
	if total == 0 {
		return item, false
	}
	r := rng.IntN(total)
	i := sort.Search(len(prefix), func(i int) bool { return prefix[i] > r })
	return items[i].Item, true
}

// ContinuationProbability returns decay^(-i) * bias, the chance of adding
// another syllable after the i-th one (0-based).
func ContinuationProbability(decay, bias float64, i int) float64 {
	return math.Pow(decay, -float64(i)) * bias
}
