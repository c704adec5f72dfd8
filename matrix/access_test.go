// SPDX-License-Identifier: MIT
// Package matrix_test covers the three access tiers: checked Get/GetMut,
// fatal At/Set and the unchecked fast path.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/clrs/matrix"
	"github.com/stretchr/testify/require"
)

// TestGet_InAndOutOfRange checks that Get never reports a value outside the shape.
func TestGet_InAndOutOfRange(t *testing.T) {
	m := seqMatrix(t, 3, 3)

	v, ok := m.Get(2, 1)
	require.True(t, ok)
	require.Equal(t, 7, v)

	for _, idx := range [][2]int{{3, 0}, {0, 3}, {10, 10}, {-1, 0}, {0, -1}} {
		v, ok = m.Get(idx[0], idx[1])
		require.False(t, ok, "index %v", idx)
		require.Zero(t, v)
	}
}

// TestGetMut_WritesThrough verifies GetMut aliases the store and nils out of range.
func TestGetMut_WritesThrough(t *testing.T) {
	m := matrix.WithValue(2, 2, 1)
	p := m.GetMut(1, 0)
	require.NotNil(t, p)
	*p = 15
	require.Equal(t, 15, m.At(1, 0))

	require.Nil(t, m.GetMut(2, 0))
	require.Nil(t, m.GetMut(0, 2))
}

// TestAtSet_ElementAccess mirrors the classic operator() round trip.
func TestAtSet_ElementAccess(t *testing.T) {
	m := matrix.WithValue(3, 3, 1)
	m.Set(0, 0, 10)
	m.Set(1, 1, 20)
	m.Set(2, 2, 30)

	require.Equal(t, 10, m.At(0, 0))
	require.Equal(t, 20, m.At(1, 1))
	require.Equal(t, 30, m.At(2, 2))
	require.Equal(t, 1, m.At(0, 1)) // unchanged
}

// TestAtSet_OutOfRangeIsFatal ensures the index operator never clamps or wraps.
func TestAtSet_OutOfRangeIsFatal(t *testing.T) {
	m := matrix.WithValue(3, 3, 1)

	require.PanicsWithError(t, "Matrix.At(10,10): matrix: index out of range", func() { m.At(10, 10) })
	require.PanicsWithError(t, "Matrix.Set(3,0): matrix: index out of range", func() { m.Set(3, 0, 5) })
	requirePanicIs(t, matrix.ErrOutOfRange, func() { m.At(0, 3) })
	requirePanicIs(t, matrix.ErrOutOfRange, func() { m.At(-1, 0) })

	// (0,3) would wrap to (1,0) in the flat store; it must not be written.
	requirePanicIs(t, matrix.ErrOutOfRange, func() { m.Set(0, 3, 99) })
	require.Equal(t, 1, m.At(1, 0))
}

// TestGetUnchecked_MatchesChecked compares both paths over every valid cell.
func TestGetUnchecked_MatchesChecked(t *testing.T) {
	m := seqMatrix(t, 4, 5)
	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 5; j++ {
			require.Equal(t, m.At(i, j), m.GetUnchecked(i, j))
		}
	}

	*m.GetUncheckedMut(3, 4) = -1
	require.Equal(t, -1, m.At(3, 4))
}

// TestGetUnchecked_SkipsLogicalBounds documents the caller-proven contract:
// the formula is applied as-is, within the allocation.
func TestGetUnchecked_SkipsLogicalBounds(t *testing.T) {
	m := seqMatrix(t, 3, 3)
	require.Equal(t, 3, m.GetUnchecked(0, 3)) // lands on (1,0)

	require.Panics(t, func() { m.GetUnchecked(3, 0) }) // past Cap(): runtime bound check
}
