// SPDX-License-Identifier: MIT
// Package core: station pair and edge types, sentinel errors.

package core

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates that a value crossing a package boundary violates
// its contract (bad count, bad coordinate, bad station pair, bad parameter).
var ErrInvalidInput = errors.New("core: invalid input")

// Edge is one selected connection of a network.
//
// From is the station that was already connected when the edge was chosen,
// To is the station the edge brought into the network. Weight is the
// Euclidean length of the connection.
type Edge struct {
	// From is the index of the station already inside the network.
	From int

	// To is the index of the station joined by this edge.
	To int

	// Weight is the length of the connection.
	Weight float64
}

// Key returns the unordered pair identifying this edge.
func (e Edge) Key() EdgeKey { return NewEdgeKey(e.From, e.To) }

// String renders the edge as "from-to(weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%.4f)", e.From, e.To, e.Weight)
}

// EdgeKey is an unordered pair of station indices with U <= V.
// Two keys are equal exactly when they name the same pair in either orientation.
type EdgeKey struct {
	U int
	V int
}

// NewEdgeKey builds the normalised key of the pair (a, b).
// Complexity: O(1).
func NewEdgeKey(a, b int) EdgeKey {
	if a > b {
		a, b = b, a
	}

	return EdgeKey{U: a, V: b}
}

// Matches reports whether (i, j) names this pair in either orientation.
func (k EdgeKey) Matches(i, j int) bool {
	return (k.U == i && k.V == j) || (k.U == j && k.V == i)
}

// Validate checks that the pair names two distinct stations in 0..n-1.
// Returns a wrapped ErrInvalidInput otherwise.
func (k EdgeKey) Validate(n int) error {
	if k.U == k.V {
		return fmt.Errorf("edge %s is a self pair: %w", k, ErrInvalidInput)
	}
	if k.U < 0 || k.V < 0 || k.U >= n || k.V >= n {
		return fmt.Errorf("edge %s outside stations 0..%d: %w", k, n-1, ErrInvalidInput)
	}

	return nil
}

// String renders the key as "u-v".
func (k EdgeKey) String() string { return fmt.Sprintf("%d-%d", k.U, k.V) }

// ParseEdgeKey parses the "u-v" form produced by String.
func ParseEdgeKey(s string) (EdgeKey, error) {
	var a, b int
	if _, err := fmt.Sscanf(s, "%d-%d", &a, &b); err != nil {
		return EdgeKey{}, fmt.Errorf("parse edge %q: %v: %w", s, err, ErrInvalidInput)
	}

	return NewEdgeKey(a, b), nil
}
