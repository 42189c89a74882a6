// SPDX-License-Identifier: MIT
// Package: metronet/stations
//
// config.go — generator configuration, options and deterministic defaults.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)), applied in order.
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     Generate itself never panics.
//   • The seed passed to Generate is used unless WithRand supplies a stream.

package stations

import (
	"math"
	"math/rand"

	"github.com/paulmach/orb"
)

// DefaultBound is the simulation field: both axes uniform in [0, 10).
var DefaultBound = orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{10, 10}}

// genConfig aggregates the generator knobs. Passed by value.
type genConfig struct {
	bound orb.Bound  // sampling rectangle
	rng   *rand.Rand // explicit stream; nil → seeded from Generate's seed
}

// Option customizes Generate.
type Option func(*genConfig)

// newConfig applies opts over the defaults.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) genConfig {
	cfg := genConfig{bound: DefaultBound}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithBound sets the sampling rectangle. Panics on an empty or non-finite
// bound, or one reaching below the origin.
func WithBound(b orb.Bound) Option {
	for _, c := range []float64{b.Min[0], b.Min[1], b.Max[0], b.Max[1]} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			panic("stations: WithBound(non-finite)")
		}
	}
	if b.Min[0] < 0 || b.Min[1] < 0 {
		panic("stations: WithBound(negative origin)")
	}
	if b.Max[0] <= b.Min[0] || b.Max[1] <= b.Min[1] {
		panic("stations: WithBound(empty)")
	}
	return func(c *genConfig) {
		c.bound = b
	}
}

// WithRand draws from r instead of a stream seeded by Generate's seed.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("stations: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}
