// Package network defines configuration options and sentinel errors for
// network construction.
package network

import (
	"errors"

	"github.com/katalvlaran/metronet/core"
)

// ErrInfeasible indicates that no spanning network exists once the forbidden
// pair is removed: at some growth step it was the only bridging connection.
var ErrInfeasible = errors.New("network: no spanning network without the forbidden edge")

// ErrUnknownMethod indicates that Options.Method names no known algorithm.
var ErrUnknownMethod = errors.New("network: unknown method")

// ErrNotSpanning indicates that a Network is not a spanning tree over its stations.
var ErrNotSpanning = errors.New("network: not a spanning tree")

// MethodPrim selects Prim's algorithm (grow from a root by first strict minimum).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all pairs and union-find).
const MethodKruskal = "kruskal"

// DefaultRoot is the station every Prim run starts from.
const DefaultRoot = 0

// Options configures which algorithm runs, where Prim starts and which pair
// is forbidden. Use DefaultOptions() for the reference setup.
//
// Fields:
//
//	Method    string        — MethodPrim or MethodKruskal.
//	Root      int           — Prim's start station; ignored by Kruskal.
//	Forbidden *core.EdgeKey — pair excluded from selection, nil for none.
type Options struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting station for Prim.
	Root int

	// Forbidden is the single excluded station pair, if any.
	Forbidden *core.EdgeKey
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Prim from station 0 with nothing forbidden.
func DefaultOptions() Options {
	return Options{
		Method: MethodPrim,
		Root:   DefaultRoot,
	}
}

// WithMethod selects the algorithm. Unknown names surface as ErrUnknownMethod
// from Build rather than a panic, so they can come straight from user input.
func WithMethod(m string) Option {
	return func(opts *Options) {
		opts.Method = m
	}
}

// WithRoot sets Prim's starting station. Panics on a negative index.
func WithRoot(root int) Option {
	if root < 0 {
		panic("network: WithRoot(negative)")
	}
	return func(opts *Options) {
		opts.Root = root
	}
}

// WithForbidden forbids the pair (u, v) in either orientation.
func WithForbidden(u, v int) Option {
	return WithForbiddenEdge(core.NewEdgeKey(u, v))
}

// WithForbiddenEdge forbids the pair k.
func WithForbiddenEdge(k core.EdgeKey) Option {
	k = core.NewEdgeKey(k.U, k.V)
	return func(opts *Options) {
		opts.Forbidden = &k
	}
}
