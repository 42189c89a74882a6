package network

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/metronet/core"
	"github.com/katalvlaran/metronet/matrix"
)

// Build computes the minimum spanning network over points.
//
// With no options it runs Prim from station 0 with nothing forbidden, the
// reference baseline. WithForbidden / WithForbiddenEdge exclude one pair;
// WithMethod(MethodKruskal) swaps the algorithm.
//
// Errors:
//   - core.ErrInvalidInput for bad stations, root or forbidden pair.
//   - ErrInfeasible, ErrUnknownMethod as documented in the package.
//
// Complexity: O(N^2) for the distance matrix plus the chosen algorithm.
func Build(points []orb.Point, opts ...Option) (Network, error) {
	// Boundary checks happen here, never inside the algorithms.
	if err := core.ValidateStations(points); err != nil {
		return Network{}, fmt.Errorf("Build: %w", err)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dist, err := matrix.Distances(points)
	if err != nil {
		return Network{}, fmt.Errorf("Build: %v: %w", err, core.ErrInvalidInput)
	}

	return Compute(dist, o)
}

// Compute selects and runs the algorithm named by opts.Method on a
// precomputed distance matrix.
//
//	– MethodPrim:    Prim(dist, opts.Root, opts.Forbidden).
//	– MethodKruskal: Kruskal(dist, opts.Forbidden).
//	– otherwise:     ErrUnknownMethod.
func Compute(dist *matrix.Dense, opts Options) (Network, error) {
	switch opts.Method {
	case MethodPrim:
		return Prim(dist, opts.Root, opts.Forbidden)
	case MethodKruskal:
		return Kruskal(dist, opts.Forbidden)
	default:
		return Network{}, fmt.Errorf("Compute: %q: %w", opts.Method, ErrUnknownMethod)
	}
}
