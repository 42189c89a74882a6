package network_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metronet/core"
	"github.com/katalvlaran/metronet/matrix"
	"github.com/katalvlaran/metronet/network"
)

// fourStations is three close stations plus one far away:
//
//	(0,0) (0,1) (1,0) (10,10)
//
// Baseline: 0-1 (1), 0-2 (1), 1-3 (√181) — the far station is reached from
// (0,1) because (0,1)→(10,10) and (1,0)→(10,10) tie and (0,1) is scanned first.
func fourStations() []orb.Point {
	return []orb.Point{{0, 0}, {0, 1}, {1, 0}, {10, 10}}
}

// unitSquare has exact ties at every step.
func unitSquare() []orb.Point {
	return []orb.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
}

// TestBuild_FourStations checks the baseline network of fourStations.
func TestBuild_FourStations(t *testing.T) {
	net, err := network.Build(fourStations())
	require.NoError(t, err)
	require.NoError(t, net.Validate())

	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 1},
		{From: 1, To: 3, Weight: math.Sqrt(181)},
	}, net.Edges)
	assert.InDelta(t, 2+math.Sqrt(181), net.Length, 1e-12)
	assert.Equal(t, 4, net.Stations())
	assert.True(t, net.Has(3, 1))
	assert.False(t, net.Has(0, 3))

	v, _ := net.Links.At(3, 1)
	assert.Equal(t, math.Sqrt(181), v)
	v, _ = net.Links.At(2, 1)
	assert.Zero(t, v)
}

// TestBuild_ForbidTreeEdge: forbidding 0-1 reroutes (0,1) through (1,0).
func TestBuild_ForbidTreeEdge(t *testing.T) {
	base, err := network.Build(fourStations())
	require.NoError(t, err)

	net, err := network.Build(fourStations(), network.WithForbidden(1, 0))
	require.NoError(t, err)
	require.NoError(t, net.Validate())

	assert.Equal(t, []core.Edge{
		{From: 0, To: 2, Weight: 1},
		{From: 2, To: 1, Weight: math.Sqrt2},
		{From: 1, To: 3, Weight: math.Sqrt(181)},
	}, net.Edges)
	assert.False(t, net.Has(0, 1))
	assert.InDelta(t, base.Length+math.Sqrt2-1, net.Length, 1e-12)
	assert.Greater(t, net.Length, base.Length)
}

// TestBuild_ForbidNonTreeEdge: excluding an unused pair changes nothing.
func TestBuild_ForbidNonTreeEdge(t *testing.T) {
	base, err := network.Build(fourStations())
	require.NoError(t, err)

	net, err := network.Build(fourStations(), network.WithForbidden(0, 3))
	require.NoError(t, err)

	assert.Equal(t, base.Edges, net.Edges)
	assert.Equal(t, base.Length, net.Length)
	assert.True(t, matrix.Equal(base.Links, net.Links))
}

// TestBuild_FirstStrictImprovementWins pins the scan-order tie-break.
func TestBuild_FirstStrictImprovementWins(t *testing.T) {
	net, err := network.Build(unitSquare())
	require.NoError(t, err)

	// Step 1: 0-1 and 0-2 tie, 0-1 is scanned first.
	// Step 2: 0-2 and 1-3 tie, i=0 is scanned before i=1.
	// Step 3: 1-3 and 2-3 tie, i=1 is scanned before i=2.
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 1},
		{From: 1, To: 3, Weight: 1},
	}, net.Edges)
	assert.Equal(t, 3.0, net.Length)
}

// TestBuild_SingleStation is the trivial network.
func TestBuild_SingleStation(t *testing.T) {
	for _, method := range []string{network.MethodPrim, network.MethodKruskal} {
		net, err := network.Build([]orb.Point{{4, 2}}, network.WithMethod(method))
		require.NoError(t, err, method)
		assert.Empty(t, net.Edges)
		assert.Zero(t, net.Length)
		assert.NoError(t, net.Validate())
	}
}

// TestBuild_Infeasible: two stations whose only link is forbidden.
func TestBuild_Infeasible(t *testing.T) {
	pts := []orb.Point{{0, 0}, {3, 4}}
	for _, method := range []string{network.MethodPrim, network.MethodKruskal} {
		net, err := network.Build(pts, network.WithForbidden(0, 1), network.WithMethod(method))
		assert.ErrorIs(t, err, network.ErrInfeasible, method)
		assert.Nil(t, net.Links, "no partial network on failure")
		assert.Empty(t, net.Edges)
	}
}

// TestBuild_InvalidInput covers the boundary rejections.
func TestBuild_InvalidInput(t *testing.T) {
	cases := []struct {
		name string
		pts  []orb.Point
		opts []network.Option
	}{
		{"empty", nil, nil},
		{"nan", []orb.Point{{0, 0}, {math.NaN(), 1}}, nil},
		{"negative", []orb.Point{{0, 0}, {1, -1}}, nil},
		{"forbidden out of range", fourStations(), []network.Option{network.WithForbidden(0, 4)}},
		{"forbidden self pair", fourStations(), []network.Option{network.WithForbidden(2, 2)}},
		{"root out of range", fourStations(), []network.Option{network.WithRoot(4)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := network.Build(tc.pts, tc.opts...)
			assert.ErrorIs(t, err, core.ErrInvalidInput)
		})
	}

	assert.Panics(t, func() { network.WithRoot(-1) })
}

// TestBuild_UnknownMethod surfaces ErrUnknownMethod.
func TestBuild_UnknownMethod(t *testing.T) {
	_, err := network.Build(fourStations(), network.WithMethod("boruvka"))
	assert.ErrorIs(t, err, network.ErrUnknownMethod)
}

// TestBuild_Root starts Prim elsewhere; the total stays minimal.
func TestBuild_Root(t *testing.T) {
	base, _ := network.Build(fourStations())
	net, err := network.Build(fourStations(), network.WithRoot(3))
	require.NoError(t, err)
	require.NoError(t, net.Validate())
	assert.Equal(t, 3, net.Edges[0].From)
	assert.InDelta(t, base.Length, net.Length, 1e-12)
}

// TestKruskal_MatchesPrim compares the two methods on the fixed sets.
func TestKruskal_MatchesPrim(t *testing.T) {
	for _, pts := range [][]orb.Point{fourStations(), unitSquare()} {
		p, err := network.Build(pts)
		require.NoError(t, err)
		k, err := network.Build(pts, network.WithMethod(network.MethodKruskal))
		require.NoError(t, err)
		require.NoError(t, k.Validate())
		assert.InDelta(t, p.Length, k.Length, 1e-12)
		for _, e := range k.Edges {
			assert.Less(t, e.From, e.To)
		}
	}
}

// TestBuild_CoincidentStations keeps zero-length edges in Edges.
func TestBuild_CoincidentStations(t *testing.T) {
	net, err := network.Build([]orb.Point{{1, 1}, {1, 1}, {2, 1}})
	require.NoError(t, err)
	require.NoError(t, net.Validate())
	require.Len(t, net.Edges, 2)
	assert.Equal(t, core.Edge{From: 0, To: 1, Weight: 0}, net.Edges[0])
	assert.Equal(t, 1.0, net.Length)
}

// TestValidate_DetectsBrokenNetworks tampers with a valid network.
func TestValidate_DetectsBrokenNetworks(t *testing.T) {
	good, err := network.Build(fourStations())
	require.NoError(t, err)

	missing := good
	missing.Edges = good.Edges[:2]
	assert.ErrorIs(t, missing.Validate(), network.ErrNotSpanning)

	cycle := good
	cycle.Edges = []core.Edge{good.Edges[0], good.Edges[1], {From: 1, To: 0, Weight: 1}}
	assert.ErrorIs(t, cycle.Validate(), network.ErrNotSpanning)

	wrongLength := good
	wrongLength.Length = good.Length + 1
	assert.ErrorIs(t, wrongLength.Validate(), network.ErrNotSpanning)

	asym := good
	asym.Links = good.Links.Clone()
	_ = asym.Links.Set(0, 1, 5)
	assert.ErrorIs(t, asym.Validate(), network.ErrNotSpanning)

	assert.ErrorIs(t, network.Network{}.Validate(), network.ErrNotSpanning)
}

// TestEdgeKeys returns row-major normalised pairs.
func TestEdgeKeys(t *testing.T) {
	net, err := network.Build(fourStations(), network.WithForbidden(0, 1))
	require.NoError(t, err)
	assert.Equal(t, []core.EdgeKey{{U: 0, V: 2}, {U: 1, V: 2}, {U: 1, V: 3}}, net.EdgeKeys())
}

// TestCompute_PrecomputedDistances runs on a hand-written matrix.
func TestCompute_PrecomputedDistances(t *testing.T) {
	// Triangle A—B(1), B—C(2), A—C(3).
	d, _ := matrix.NewSquare(3)
	_ = d.SetSym(0, 1, 1)
	_ = d.SetSym(1, 2, 2)
	_ = d.SetSym(0, 2, 3)

	net, err := network.Compute(d, network.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 3.0, net.Length)

	forbid := core.NewEdgeKey(1, 2)
	opts := network.DefaultOptions()
	opts.Forbidden = &forbid
	net, err = network.Compute(d, opts)
	require.NoError(t, err)
	assert.Equal(t, 4.0, net.Length)

	rect, _ := matrix.NewDense(2, 3)
	_, err = network.Prim(rect, 0, nil)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
	_, err = network.Kruskal(nil, nil)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}
