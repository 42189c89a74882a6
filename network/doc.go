// Package network builds the minimum-length network that connects every
// station, optionally with one station pair forbidden for the whole run.
//
// What & Why
//
//   - The stations form a complete graph: any two of them may be linked, at a
//     cost equal to their Euclidean distance. The cheapest set of links that
//     lets every station reach every other is a Minimum Spanning Tree (MST).
//
//   - Forbidding one pair models an outside party blocking a single link (for
//     example the link that would cross their land). The result is the MST
//     subject to that link being unavailable, which is never shorter than the
//     unconstrained MST: unchanged if the link was not going to be used,
//     longer otherwise.
//
// Algorithms Provided
//
//   - Build(points, opts...) (Network, error)
//     Validates the stations, computes the distance matrix and dispatches on
//     the selected method (Prim by default).
//
//   - Prim(dist, root, forbidden) (Network, error)
//     Grows a single tree from root (station 0 by default). Each step scans
//     every (i, j) with i inside the tree and j outside, i ascending then j
//     ascending, skipping the forbidden pair in either orientation, and keeps
//     the first strictly smaller distance. Exact ties therefore resolve to the
//     earliest scanned pair. Time O(N^3) in the worst case over N-1 steps of
//     an O(N^2) scan; space O(N^2).
//
//   - Kruskal(dist, forbidden) (Network, error)
//     Sorts every pair by distance (stable, row-major order for ties) and
//     unions components with a disjoint set. Same exclusion rule. Used as an
//     independent cross-check of Prim's total length.
//
// Error Conditions
//
//   - core.ErrInvalidInput – empty station set, NaN/Inf or negative
//     coordinates, forbidden pair that is a self pair or names a missing
//     station, root outside 0..N-1.
//   - ErrInfeasible – at some step the only connection left between the tree
//     and the remaining stations is the forbidden pair (two stations with
//     their single link forbidden). No partial network is ever returned.
//   - ErrUnknownMethod – WithMethod named neither MethodPrim nor MethodKruskal.
//   - ErrNotSpanning – Network.Validate found a broken spanning-tree invariant.
//
// Every build starts from scratch: a constrained rebuild never patches a
// previous Network, and nothing is shared between calls.
package network
