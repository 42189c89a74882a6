// SPDX-License-Identifier: MIT
// Package matrix_test verifies Dense accessors, the symmetry validator and
// the station distance matrix.

package matrix_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metronet/matrix"
)

// TestNewDense_Shape rejects non-positive shapes.
func TestNewDense_Shape(t *testing.T) {
	for _, rc := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		m, err := matrix.NewDense(rc[0], rc[1])
		assert.Nil(t, m)
		assert.ErrorIs(t, err, matrix.ErrBadShape)
	}

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
}

// TestDense_AtSet covers bounds and the finite-only numeric policy.
func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewSquare(2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 2.5))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(1, 1, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Set(1, 1, math.Inf(-1)), matrix.ErrNaNInf)
}

// TestDense_CloneIndependent ensures Clone does not alias storage.
func TestDense_CloneIndependent(t *testing.T) {
	m, _ := matrix.NewSquare(2)
	_ = m.SetSym(0, 1, 3)
	cp := m.Clone()
	assert.True(t, matrix.Equal(m, cp))

	_ = cp.Set(0, 1, 7)
	v, _ := m.At(0, 1)
	assert.Equal(t, 3.0, v)
	assert.False(t, matrix.Equal(m, cp))
	assert.Equal(t, "[0, 3]\n[3, 0]\n", m.String())
}

// TestValidateSymmetric covers the square, tolerance and asymmetry checks.
func TestValidateSymmetric(t *testing.T) {
	rect, _ := matrix.NewDense(2, 3)
	assert.ErrorIs(t, matrix.ValidateSymmetric(rect, 0), matrix.ErrNonSquare)

	m, _ := matrix.NewSquare(3)
	_ = m.SetSym(0, 2, 1)
	assert.NoError(t, matrix.ValidateSymmetric(m, 0))
	assert.ErrorIs(t, matrix.ValidateSymmetric(m, math.NaN()), matrix.ErrNaNInf)

	_ = m.Set(2, 0, 1.5)
	assert.ErrorIs(t, matrix.ValidateSymmetric(m, 0.1), matrix.ErrAsymmetry)
	assert.NoError(t, matrix.ValidateSymmetric(m, 0.5))
}

// TestDistances checks symmetry, zero diagonal and Euclidean entries.
func TestDistances(t *testing.T) {
	pts := []orb.Point{{0, 0}, {3, 4}, {0, 1}}
	d, err := matrix.Distances(pts)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(d, 0))

	for i := range pts {
		v, _ := d.At(i, i)
		assert.Zero(t, v)
	}
	v, _ := d.At(0, 1)
	assert.InDelta(t, 5.0, v, 1e-12)
	v, _ = d.At(2, 1)
	assert.InDelta(t, math.Sqrt(18), v, 1e-12)

	_, err = matrix.Distances(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}
