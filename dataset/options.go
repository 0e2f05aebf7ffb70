// SPDX-License-Identifier: MIT
// Package: lvlsort/dataset
//
// options.go: functional options for the generators.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package dataset

import "math/rand"

const (
	defaultSeed int64 = 1    // seed used when neither WithSeed nor WithRand is given
	defaultMax        = 1000 // exclusive upper bound for Random/Floats values
)

// Option customizes a generator call.
type Option func(*config)

// config is the resolved parameter bundle of one generator call.
type config struct {
	rng *rand.Rand // value source; nil until resolved
	max int        // exclusive upper bound for uniform values (>0)
}

// newConfig applies opts over the defaults and guarantees a non-nil rng.
func newConfig(opts ...Option) config {
	cfg := config{max: defaultMax}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG shared across several generator calls.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("dataset: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithMax sets the exclusive upper bound of uniform values. Panics on max <= 0.
func WithMax(max int) Option {
	if max <= 0 {
		panic("dataset: WithMax(max<=0)")
	}

	return func(c *config) {
		c.max = max
	}
}
