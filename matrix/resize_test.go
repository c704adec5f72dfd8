// SPDX-License-Identifier: MIT
// Package matrix_test verifies Resize: in-place reshape within capacity,
// exact reallocation beyond it, and stale-data exposure.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/clrs/matrix"
	"github.com/stretchr/testify/require"
)

// TestResize_WithinCapacityTouchesNoSlot checks that only the shape changes.
func TestResize_WithinCapacityTouchesNoSlot(t *testing.T) {
	m := seqMatrix(t, 3, 4)
	before := append([]int(nil), matrix.Backing(m)...)

	for _, s := range [][2]int{{2, 6}, {1, 1}, {4, 3}, {0, 7}, {12, 1}, {3, 4}} {
		m.Resize(s[0], s[1])
		r, c := m.Size()
		require.Equal(t, s, [2]int{r, c})
		require.Equal(t, 12, m.Cap())
		require.Equal(t, before, matrix.Backing(m))
	}
}

// TestResize_ShrinkThenRegrowExposesStaleValues documents that growth within
// capacity does not clear newly visible cells.
func TestResize_ShrinkThenRegrowExposesStaleValues(t *testing.T) {
	m := matrix.WithValue(3, 3, 7)
	m.Resize(1, 1)
	m.Set(0, 0, 1)
	m.Resize(3, 3)

	require.Equal(t, 1, m.At(0, 0))
	require.Equal(t, 7, m.At(2, 2)) // stale, not zero
	require.Equal(t, 9, m.Cap())
}

// TestResize_ReinterpretsRowMajor shows that a column-count change reshapes
// the same linear sequence.
func TestResize_ReinterpretsRowMajor(t *testing.T) {
	m := seqMatrix(t, 2, 3) // 0 1 2 / 3 4 5
	m.Resize(3, 2)          // 0 1 / 2 3 / 4 5

	require.Equal(t, 2, m.At(1, 0))
	require.Equal(t, 5, m.At(2, 1))
}

// TestResize_GrowPreservesOldSlots checks exact reallocation and preservation.
func TestResize_GrowPreservesOldSlots(t *testing.T) {
	m := seqMatrix(t, 2, 2)
	old := append([]int(nil), matrix.Backing(m)...)

	m.Resize(3, 3)
	require.Equal(t, 9, m.Cap()) // exactly rows*cols, no geometric growth
	r, c := m.Size()
	require.Equal(t, [2]int{3, 3}, [2]int{r, c})
	require.Equal(t, old, matrix.Backing(m)[:len(old)])
	require.Equal(t, 0, m.At(0, 0))

	m.Resize(1, 1)
	require.Equal(t, 9, m.Cap()) // never shrinks
}

// TestResize_GrowThenShrink checks that growth keeps (0,0) and shrinking keeps
// the allocation.
func TestResize_GrowThenShrink(t *testing.T) {
	m := matrix.WithValue(2, 2, 1)
	m.Set(0, 0, 10)
	m.Set(1, 1, 20)

	m.Resize(3, 3)
	require.Equal(t, 10, m.At(0, 0))

	m.Resize(1, 1)
	r, c := m.Size()
	require.Equal(t, [2]int{1, 1}, [2]int{r, c})
}

// TestResize_UsesReservedCapacity avoids reallocation when WithCapacity fits.
func TestResize_UsesReservedCapacity(t *testing.T) {
	m := matrix.Zeros[int](1, 1, matrix.WithCapacity(16))
	store := matrix.Backing(m)
	m.Resize(4, 4)
	require.Equal(t, 16, m.Cap())
	require.Same(t, &store[0], &matrix.Backing(m)[0])
}

// TestResize_InvalidShapeIsFatal keeps the matrix untouched on failure.
func TestResize_InvalidShapeIsFatal(t *testing.T) {
	m := seqMatrix(t, 2, 2)
	requirePanicIs(t, matrix.ErrBadShape, func() { m.Resize(-1, 2) })
	requirePanicIs(t, matrix.ErrSizeOverflow, func() { m.Resize(math.MaxInt/2, 4) })

	r, c := m.Size()
	require.Equal(t, [2]int{2, 2}, [2]int{r, c})
}
