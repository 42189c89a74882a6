// SPDX-License-Identifier: MIT
// Package: metronet/stations
//
// generate.go — Generate(count, seed) and the hour-based seed convention.
//
// Determinism:
//   • Source: math/rand rand.NewSource(seed); its sequence for a given seed is
//     fixed by the Go 1 compatibility promise.
//   • Draw order: for station i ascending, x then y.
//   • Same (count, seed, bound) ⇒ bit-identical output.

package stations

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/metronet/core"
)

const (
	methodGenerate = "Generate"
	minStations    = 1
)

// Generate draws count stations uniformly inside the configured bound.
//
// Errors:
//   - core.ErrInvalidInput if count < 1.
//
// Complexity: O(count) time and space.
func Generate(count int, seed int64, opts ...Option) ([]orb.Point, error) {
	// 1) Validate the count before touching the RNG.
	if count < minStations {
		return nil, fmt.Errorf("%s: count=%d < min=%d: %w",
			methodGenerate, count, minStations, core.ErrInvalidInput)
	}

	// 2) Resolve config; a missing stream is seeded here.
	cfg := newConfig(opts...)
	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(seed))
	}

	// 3) Sample x then y for each station, in index order.
	w := cfg.bound.Max[0] - cfg.bound.Min[0]
	h := cfg.bound.Max[1] - cfg.bound.Min[1]
	points := make([]orb.Point, count)
	for i := range points {
		x := cfg.bound.Min[0] + rng.Float64()*w
		y := cfg.bound.Min[1] + rng.Float64()*h
		points[i] = orb.Point{x, y}
	}

	return points, nil
}

// SeedFromHour returns the hour of t (0..23) as a seed: every run within the
// same wall-clock hour sees the same stations. The caller decides whether to
// use it; Generate never reads the clock.
func SeedFromHour(t time.Time) int64 { return int64(t.Hour()) }
