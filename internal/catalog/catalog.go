// Package catalog fabricates the demonstration datasets backing the
// dashboard. Every provider is deterministic: fixed seeds, fixed tables.
package catalog

import (
	"math"
	"math/rand"
)

const seed = 42

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func clamp(v float64, lo float64, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// pickWeighted draws one item according to the given weights. Weights are
// expected to sum to roughly 1.
func pickWeighted(r *rand.Rand, items []string, weights []float64) string {
	roll := r.Float64()
	acc := 0.0
	for i := 0; i < len(items); i++ {
		acc += weights[i]
		if roll < acc {
			return items[i]
		}
	}
	return items[len(items)-1]
}
