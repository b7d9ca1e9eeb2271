package augment

import (
	"fmt"
	"math/rand"
)

// Pool supplies candidate replacement token lists for one entity type.
// A replacement is an ordered list of surface tokens, e.g.
// ["Lasse", "Hansen"]. Sampling is with replacement; a Pool never
// exhausts.
type Pool interface {
	Sample(rng *rand.Rand) []string
}

// StaticPool is a finite collection of replacements, sampled uniformly.
type StaticPool [][]string

var _ Pool = StaticPool{}

func (p StaticPool) Sample(rng *rand.Rand) []string {
	return p[rng.Intn(len(p))]
}

// validatePools checks a replacement pool map at construction time. A
// label that is present but maps to an empty or nil static pool is a
// configuration error, not a silent no-op.
func validatePools(pools map[string]Pool) error {
	if len(pools) == 0 {
		return fmt.Errorf("%w: no replacement pools given", ErrInvalidConfig)
	}

	for label, pool := range pools {
		if pool == nil {
			return fmt.Errorf("%w: pool for label %q is nil", ErrInvalidConfig, label)
		}

		static, ok := pool.(StaticPool)
		if !ok {
			continue
		}

		if len(static) == 0 {
			return fmt.Errorf("%w: pool for label %q is empty", ErrInvalidConfig, label)
		}

		for i, repl := range static {
			if len(repl) == 0 {
				return fmt.Errorf("%w: replacement %d for label %q is empty", ErrInvalidConfig, i, label)
			}
		}
	}

	return nil
}
