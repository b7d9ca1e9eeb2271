// Package names composes replacement name token lists from component
// pools and weighted patterns. A Generator is an unbounded sequence: it
// is built once, holds only immutable pools, patterns and weights, and
// is sampled for the lifetime of the augmenter that consumes it.
package names

import (
	"fmt"
	"math/rand"

	"github.com/techthiyanes/augmenty/augment"
)

// Generator draws composed names: first a pattern (a sequence of slot
// names such as ["firstname", "lastname"]), then one string per slot
// from that slot's pool. Unset weights mean uniform sampling.
type Generator struct {
	pools    map[string][]string
	patterns [][]string

	poolWeights    map[string][]float64
	patternWeights []float64
}

var _ augment.Pool = (*Generator)(nil)

// New validates the pools, patterns and weights and creates a Generator.
// Every slot referenced by a pattern must have a non-empty pool; weight
// lists must match the length of what they weigh and must be
// non-negative with a positive sum.
func New(pools map[string][]string, patterns [][]string, poolWeights map[string][]float64, patternWeights []float64) (*Generator, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("%w: no name patterns given", augment.ErrInvalidConfig)
	}

	for i, pattern := range patterns {
		if len(pattern) == 0 {
			return nil, fmt.Errorf("%w: pattern %d is empty", augment.ErrInvalidConfig, i)
		}

		for _, slot := range pattern {
			if len(pools[slot]) == 0 {
				return nil, fmt.Errorf("%w: pattern %d references slot %q with no names", augment.ErrInvalidConfig, i, slot)
			}
		}
	}

	if patternWeights != nil {
		if err := validateWeights(patternWeights, len(patterns)); err != nil {
			return nil, fmt.Errorf("%w: pattern weights: %v", augment.ErrInvalidConfig, err)
		}
	}

	for slot, weights := range poolWeights {
		pool, ok := pools[slot]
		if !ok {
			return nil, fmt.Errorf("%w: weights given for unknown slot %q", augment.ErrInvalidConfig, slot)
		}

		if err := validateWeights(weights, len(pool)); err != nil {
			return nil, fmt.Errorf("%w: weights for slot %q: %v", augment.ErrInvalidConfig, slot, err)
		}
	}

	return &Generator{
		pools:          pools,
		patterns:       patterns,
		poolWeights:    poolWeights,
		patternWeights: patternWeights,
	}, nil
}

// Sample draws one composed name token list.
func (g *Generator) Sample(rng *rand.Rand) []string {
	pattern := g.patterns[weightedIndex(rng, len(g.patterns), g.patternWeights)]

	name := make([]string, len(pattern))
	for i, slot := range pattern {
		pool := g.pools[slot]
		name[i] = pool[weightedIndex(rng, len(pool), g.poolWeights[slot])]
	}

	return name
}

// weightedIndex draws an index in [0,n) according to the given weights,
// uniformly if weights is nil.
func weightedIndex(rng *rand.Rand, n int, weights []float64) int {
	if weights == nil {
		return rng.Intn(n)
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}

	x := rng.Float64() * total
	for i, w := range weights {
		x -= w
		if x < 0 {
			return i
		}
	}

	return n - 1
}

func validateWeights(weights []float64, n int) error {
	if len(weights) != n {
		return fmt.Errorf("got %d weights for %d candidates", len(weights), n)
	}

	total := 0.0
	for i, w := range weights {
		if w < 0 {
			return fmt.Errorf("weight %d is negative", i)
		}
		total += w
	}

	if total <= 0 {
		return fmt.Errorf("weights sum to %v", total)
	}

	return nil
}
