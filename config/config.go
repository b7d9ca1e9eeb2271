// Package config loads augmenter configuration from a YAML file and
// constructs the configured engines.
package config

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/techthiyanes/augmenty/augment"
	"github.com/techthiyanes/augmenty/names"
)

// Config is the construction-time option surface of the augmenters.
// A file may configure the replacement engine (ent_dict and/or the name
// generator fields), the reorder/format engine (reordering, formatter,
// ent_types), or both; both engines share level.
type Config struct {
	// Level is the per-entity selection probability, 0-1.
	Level float64 `yaml:"level"`

	// Seed makes all sampling reproducible. Unset means time-seeded.
	Seed *int64 `yaml:"seed,omitempty"`

	// EntDict maps entity type labels to candidate replacement token
	// lists.
	EntDict map[string][][]string `yaml:"ent_dict,omitempty"`

	// ReplaceConsistency reuses the same replacement for repeated
	// identical surface text within one document.
	ReplaceConsistency bool `yaml:"replace_consistency"`

	// Name generator: component pools, slot patterns and optional
	// sampling weights. Composed names feed the PER replacement pool.
	Names     map[string][]string  `yaml:"names,omitempty"`
	Patterns  [][]string           `yaml:"patterns,omitempty"`
	NamesP    map[string][]float64 `yaml:"names_p,omitempty"`
	PatternsP []float64            `yaml:"patterns_p,omitempty"`

	// Reordering is the reorder/format engine's index permutation; a
	// null entry is the wildcard for all remaining tokens.
	Reordering []*int `yaml:"reordering,omitempty"`

	// Formatter names per position, resolved against the formatter
	// registry; an empty entry keeps the token.
	Formatter []string `yaml:"formatter,omitempty"`

	// EntTypes restricts the reorder/format engine to these entity
	// types. Unset means all types.
	EntTypes []string `yaml:"ent_types,omitempty"`
}

// Load reads and parses a YAML config file.
func Load(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", augment.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Rand returns the configured random source: seeded when a seed is set,
// otherwise time-seeded.
func (c Config) Rand() *rand.Rand {
	if c.Seed != nil {
		return rand.New(rand.NewSource(*c.Seed))
	}

	return rand.New(rand.NewSource(rand.Int63()))
}

// Augmenters constructs the configured engines, in replacement-first
// order. A config without any engine is invalid.
func (c Config) Augmenters(rng *rand.Rand) ([]augment.Augmenter, error) {
	var augs []augment.Augmenter

	pools := make(map[string]augment.Pool)
	for label, candidates := range c.EntDict {
		pools[label] = augment.StaticPool(candidates)
	}

	if len(c.Patterns) > 0 || len(c.Names) > 0 {
		gen, err := names.New(c.Names, c.Patterns, c.NamesP, c.PatternsP)
		if err != nil {
			return nil, err
		}

		pools["PER"] = gen
	}

	if len(pools) > 0 {
		replacer, err := augment.NewEntReplacer(pools, c.Level, c.ReplaceConsistency, augment.WithRand(rng))
		if err != nil {
			return nil, err
		}

		augs = append(augs, replacer)
	}

	if len(c.Reordering) > 0 {
		formatters, err := Formatters(c.Formatter)
		if err != nil {
			return nil, err
		}

		formatter, err := augment.NewEntFormatter(c.Reordering, formatters, c.Level, c.EntTypes, augment.WithRand(rng))
		if err != nil {
			return nil, err
		}

		augs = append(augs, formatter)
	}

	if len(augs) == 0 {
		return nil, fmt.Errorf("%w: config defines no engine (need ent_dict, names or reordering)", augment.ErrInvalidConfig)
	}

	return augs, nil
}
