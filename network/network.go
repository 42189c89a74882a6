package network

import (
	"fmt"
	"math"

	"github.com/katalvlaran/metronet/core"
	"github.com/katalvlaran/metronet/matrix"
)

// lengthTol is the relative tolerance for comparing a recomputed total
// against Network.Length (the two sums run in different orders).
const lengthTol = 1e-9

// Network is the result of one build.
//
// Links is the N×N symmetric matrix: a nonzero entry (i,j) is a direct
// connection of that length, zero means no connection. Edges lists the N-1
// connections in selection order; it is the authoritative edge list when two
// stations coincide and their connection has length 0. Length is the sum of
// the edge weights.
type Network struct {
	Links  *matrix.Dense
	Edges  []core.Edge
	Length float64
}

// Stations returns the number of stations the network spans.
func (n Network) Stations() int {
	if n.Links == nil {
		return 0
	}

	return n.Links.Rows()
}

// Has reports whether stations u and v are directly connected.
// Complexity: O(N).
func (n Network) Has(u, v int) bool {
	for _, e := range n.Edges {
		if e.Key().Matches(u, v) {
			return true
		}
	}

	return false
}

// EdgeKeys returns the connections as normalised pairs in row-major order
// (ascending U, then ascending V), independent of selection order.
// Complexity: O(N^2).
func (n Network) EdgeKeys() []core.EdgeKey {
	size := n.Stations()
	chosen := make(map[core.EdgeKey]bool, len(n.Edges))
	for _, e := range n.Edges {
		chosen[e.Key()] = true
	}
	keys := make([]core.EdgeKey, 0, len(n.Edges))
	for u := 0; u < size; u++ {
		for v := u + 1; v < size; v++ {
			if chosen[core.EdgeKey{U: u, V: v}] {
				keys = append(keys, core.EdgeKey{U: u, V: v})
			}
		}
	}

	return keys
}

// Validate checks the spanning-tree invariant:
//  1. exactly N-1 edges, each naming two distinct stations in 0..N-1;
//  2. Links symmetric and each edge's Links entry equal to its weight;
//  3. no cycles and every station reachable (disjoint-set over Edges);
//  4. the upper-triangular sum of Links equals Length.
//
// Returns a wrapped ErrNotSpanning on the first violation.
// Complexity: O(N^2).
func (n Network) Validate() error {
	size := n.Stations()
	if size == 0 {
		return fmt.Errorf("Validate: no link matrix: %w", ErrNotSpanning)
	}
	if len(n.Edges) != size-1 {
		return fmt.Errorf("Validate: %d edges for %d stations: %w", len(n.Edges), size, ErrNotSpanning)
	}
	if err := matrix.ValidateSymmetric(n.Links, 0); err != nil {
		return fmt.Errorf("Validate: %v: %w", err, ErrNotSpanning)
	}

	ds := newDisjointSet(size)
	for _, e := range n.Edges {
		if err := e.Key().Validate(size); err != nil {
			return fmt.Errorf("Validate: %v: %w", err, ErrNotSpanning)
		}
		w, _ := n.Links.At(e.From, e.To)
		if w != e.Weight {
			return fmt.Errorf("Validate: edge %s has link %g: %w", e, w, ErrNotSpanning)
		}
		if !ds.union(e.From, e.To) {
			return fmt.Errorf("Validate: edge %s closes a cycle: %w", e, ErrNotSpanning)
		}
	}
	// N-1 successful unions over N stations leave exactly one component.

	var sum float64
	for i := 0; i < size; i++ {
		for j := i + 1; j < size; j++ {
			w, _ := n.Links.At(i, j)
			sum += w
		}
	}
	if math.Abs(sum-n.Length) > lengthTol*math.Max(1, math.Abs(n.Length)) {
		return fmt.Errorf("Validate: links sum %g != length %g: %w", sum, n.Length, ErrNotSpanning)
	}

	return nil
}

// disjointSet is a union-find over station indices with path compression
// and union by rank.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// find walks to the root, halving the path as it goes.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v; false if they were already joined.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	// Attach smaller-rank tree under larger-rank root.
	if ds.rank[ru] < ds.rank[rv] {
		ds.parent[ru] = rv
	} else {
		ds.parent[rv] = ru
		if ds.rank[ru] == ds.rank[rv] {
			ds.rank[ru]++
		}
	}

	return true
}
