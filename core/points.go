// SPDX-License-Identifier: MIT
// Package core: station set validation and small planar helpers.

package core

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ValidateStations checks a station set at the package boundary.
//
// Rules:
//   - at least one station;
//   - every coordinate finite;
//   - every coordinate non-negative (the simulation field starts at the origin).
//
// Returns a wrapped ErrInvalidInput naming the first offending station.
// Complexity: O(N).
func ValidateStations(points []orb.Point) error {
	if len(points) == 0 {
		return fmt.Errorf("empty station set: %w", ErrInvalidInput)
	}
	for i, p := range points {
		for axis, c := range p {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return fmt.Errorf("station %d axis %d is not finite: %w", i, axis, ErrInvalidInput)
			}
			if c < 0 {
				return fmt.Errorf("station %d axis %d is negative (%g): %w", i, axis, c, ErrInvalidInput)
			}
		}
	}

	return nil
}

// Segment returns the straight line between stations u and v.
func Segment(points []orb.Point, k EdgeKey) orb.LineString {
	return orb.LineString{points[k.U], points[k.V]}
}

// Midpoint returns the point halfway along the connection k.
func Midpoint(points []orb.Point, k EdgeKey) orb.Point {
	a, b := points[k.U], points[k.V]

	return orb.Point{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2}
}

// Distance is the Euclidean distance between two stations.
func Distance(a, b orb.Point) float64 { return planar.Distance(a, b) }
