// Package network provides Kruskal's construction over the complete station graph.
package network

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/metronet/core"
	"github.com/katalvlaran/metronet/matrix"
)

// Kruskal computes the minimum spanning network of the complete graph
// described by dist, never selecting the forbidden pair.
//
// Error Conditions:
//   - core.ErrInvalidInput : dist not square or an invalid forbidden pair.
//   - ErrInfeasible        : fewer than N-1 edges could be joined.
//
// Steps:
//  1. Validate. A single station is the trivial network.
//  2. Collect every pair i<j in row-major order, skipping the forbidden one.
//  3. Stable sort by distance, so ties keep row-major order.
//  4. Walk the sorted pairs, joining those whose endpoints are in different
//     components, until N-1 edges are chosen.
//  5. Fewer than N-1 → ErrInfeasible.
//
// Edges are reported with From < To, in the order they were joined.
// Complexity: O(N^2 log N) time, O(N^2) memory.
func Kruskal(dist *matrix.Dense, forbidden *core.EdgeKey) (Network, error) {
	// 1. Validate inputs.
	n, err := checkInputs("Kruskal", dist, forbidden)
	if err != nil {
		return Network{}, err
	}
	links, err := matrix.NewSquare(n)
	if err != nil {
		return Network{}, fmt.Errorf("Kruskal: %w", err)
	}

	// 2. Candidate pairs.
	candidates := make([]core.Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if forbidden != nil && forbidden.Matches(i, j) {
				continue
			}
			d, _ := dist.At(i, j)
			candidates = append(candidates, core.Edge{From: i, To: j, Weight: d})
		}
	}

	// 3. Ascending weight; stable keeps row-major order among equals.
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].Weight < candidates[b].Weight
	})

	// 4. Union components.
	ds := newDisjointSet(n)
	edges := make([]core.Edge, 0, n-1)
	var total float64
	for _, e := range candidates {
		if len(edges) == n-1 {
			break
		}
		if !ds.union(e.From, e.To) {
			continue
		}
		if err = links.SetSym(e.From, e.To, e.Weight); err != nil {
			return Network{}, fmt.Errorf("Kruskal: %w", err)
		}
		edges = append(edges, e)
		total += e.Weight
	}

	// 5. Short of a spanning tree.
	if len(edges) < n-1 {
		return Network{}, fmt.Errorf("Kruskal: joined %d of %d edges without %s: %w",
			len(edges), n-1, forbidden, ErrInfeasible)
	}

	return Network{Links: links, Edges: edges, Length: total}, nil
}
