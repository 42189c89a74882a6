// SPDX-License-Identifier: MIT
// Package matrix - station distance matrix.
//
// Contract:
//   - Output is n×n, symmetric, zero diagonal, entry (i,j) = Euclidean
//     distance between station i and station j (orb/planar).
//   - Only the strict upper triangle is computed; the lower one is mirrored,
//     so symmetry is exact rather than within rounding.
//   - Built fresh on every call; no caching.

package matrix

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Distances builds the pairwise distance matrix of points.
//
// Errors:
//   - ErrBadShape for an empty point set.
//   - ErrNaNInf if any distance is not finite (non-finite coordinates).
//
// Complexity: O(n^2) time and space.
func Distances(points []orb.Point) (*Dense, error) {
	n := len(points)
	d, err := NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("Distances: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = d.SetSym(i, j, planar.Distance(points[i], points[j])); err != nil {
				return nil, fmt.Errorf("Distances: %w", err)
			}
		}
	}

	return d, nil
}
