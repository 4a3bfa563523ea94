// Package shapley estimates each worker's Shapley value by sampling random
// join orders and averaging the marginal contributions.
package shapley

import (
	"errors"
	"math/rand/v2"
)

var (
	ErrNoWorkers = errors.New("shapley: at least one worker is required")
	ErrNoSamples = errors.New("shapley: at least one sample is required")
	ErrNoValue   = errors.New("shapley: value function is required")
)

// ValueFunc returns the worth of a coalition, given as worker indexes in
// join order. It must not retain the slice.
type ValueFunc func(coalition []int) float64

// Additive returns a ValueFunc that sums weights over the coalition.
// Workers without a weight contribute nothing.
func Additive(weights []float64) ValueFunc {
	return func(coalition []int) float64 {
		total := 0.0
		for _, w := range coalition {
			if w >= 0 && w < len(weights) {
				total += weights[w]
			}
		}
		return total
	}
}

// Estimate returns the estimated Shapley value of workers 0..workers-1 over
// samples random permutations drawn from rng. Marginals are taken against
// the worth of the empty coalition, so the estimates always sum to
// value(all) - value(none).
func Estimate(workers, samples int, value ValueFunc, rng *rand.Rand) ([]float64, error) {
	switch {
	case workers <= 0:
		return nil, ErrNoWorkers
	case samples <= 0:
		return nil, ErrNoSamples
	case value == nil:
		return nil, ErrNoValue
	}

	totals := make([]float64, workers)
	coalition := make([]int, 0, workers)
	empty := value(nil)

	for range samples {
		coalition = coalition[:0]
		prev := empty
		for _, w := range rng.Perm(workers) {
			coalition = append(coalition, w)
			cur := value(coalition)
			totals[w] += cur - prev
			prev = cur
		}
	}

	for i := range totals {
		totals[i] /= float64(samples)
	}
	return totals, nil
}
