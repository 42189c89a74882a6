// Package network provides the constrained Prim construction.
package network

import (
	"fmt"
	"math"

	"github.com/katalvlaran/metronet/core"
	"github.com/katalvlaran/metronet/matrix"
)

// Prim grows the minimum spanning network from root over the complete graph
// described by dist, never selecting the forbidden pair.
//
// Error Conditions:
//   - core.ErrInvalidInput : dist not square, root outside 0..N-1, or an
//     invalid forbidden pair.
//   - ErrInfeasible        : a step finds no bridging pair other than the
//     forbidden one.
//
// Steps:
//  1. Validate shape, root and forbidden pair. A single station is the
//     trivial network (no edges, length 0).
//  2. Mark root as selected.
//  3. Until all N stations are selected:
//     a. scan i ascending over selected stations, j ascending over the rest;
//     b. skip the forbidden pair in either orientation;
//     c. keep the first strictly smaller distance;
//     d. no candidate → ErrInfeasible;
//     e. record (i, j) in Links and Edges, add its length, select j.
//  4. Return the network.
//
// Complexity: O(N^3) time in the worst case, O(N^2) memory for Links.
func Prim(dist *matrix.Dense, root int, forbidden *core.EdgeKey) (Network, error) {
	// 1. Validate inputs.
	n, err := checkInputs("Prim", dist, forbidden)
	if err != nil {
		return Network{}, err
	}
	if root < 0 || root >= n {
		return Network{}, fmt.Errorf("Prim: root %d outside stations 0..%d: %w", root, n-1, core.ErrInvalidInput)
	}

	links, err := matrix.NewSquare(n)
	if err != nil {
		return Network{}, fmt.Errorf("Prim: %w", err)
	}
	edges := make([]core.Edge, 0, n-1)
	var total float64

	// 2. Selected-set membership; root goes first.
	selected := make([]bool, n)
	selected[root] = true

	// 3. One edge per step until every station is selected.
	for len(edges) < n-1 {
		best := math.Inf(1)
		from, to := -1, -1

		// 3a-c. First strict improvement wins.
		for i := 0; i < n; i++ {
			if !selected[i] {
				continue
			}
			for j := 0; j < n; j++ {
				if selected[j] {
					continue
				}
				if forbidden != nil && forbidden.Matches(i, j) {
					continue
				}
				d, _ := dist.At(i, j) // in range by construction
				if d < best {
					best, from, to = d, i, j
				}
			}
		}

		// 3d. Only the forbidden pair bridged the cut.
		if to < 0 {
			return Network{}, fmt.Errorf("Prim: step %d: only bridging pair is %s: %w",
				len(edges)+1, forbidden, ErrInfeasible)
		}

		// 3e. Record the connection.
		if err = links.SetSym(from, to, best); err != nil {
			return Network{}, fmt.Errorf("Prim: %w", err)
		}
		edges = append(edges, core.Edge{From: from, To: to, Weight: best})
		total += best
		selected[to] = true
	}

	// 4. Completed network.
	return Network{Links: links, Edges: edges, Length: total}, nil
}

// checkInputs validates the distance matrix shape and the forbidden pair and
// returns the station count.
func checkInputs(method string, dist *matrix.Dense, forbidden *core.EdgeKey) (int, error) {
	if dist == nil {
		return 0, fmt.Errorf("%s: nil distance matrix: %w", method, core.ErrInvalidInput)
	}
	if dist.Rows() != dist.Cols() {
		return 0, fmt.Errorf("%s: %v: %w", method, matrix.ErrNonSquare, core.ErrInvalidInput)
	}
	n := dist.Rows()
	if forbidden != nil {
		if err := forbidden.Validate(n); err != nil {
			return 0, fmt.Errorf("%s: forbidden %w", method, err)
		}
	}

	return n, nil
}
