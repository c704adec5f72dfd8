// SPDX-License-Identifier: MIT

// Package matrix - backing store (single contiguous allocation).
//
// Purpose:
//   - Own exactly `capacity` element slots in one row-major buffer.
//   - Grow by reallocation to an exact size (no geometric over-allocation).
//   - Never clear or move slots except during a reallocation, which copies the
//     old slots verbatim into the front of the new buffer.
//
// Complexity quicksheet:
//   - newStore: O(n); grow: O(old capacity + n).

package matrix

import (
	"math"
	"unsafe"
)

// store holds the backing buffer; len(data) IS the capacity.
type store[T any] struct {
	data []T // contiguous slots, row-major for the owning Matrix
}

// newStore allocates n zero-valued slots.
func newStore[T any](n int) store[T] {
	return store[T]{data: make([]T, n)}
}

// capacity returns the number of allocated slots.
func (s *store[T]) capacity() int { return len(s.data) }

// grow reallocates to exactly n slots, preserving the first capacity() slots
// in place. It is a no-op when n does not exceed the current capacity.
func (s *store[T]) grow(n int) {
	if n <= len(s.data) {
		return
	}
	next := make([]T, n)
	copy(next, s.data) // realloc-style move of the linear sequence

	s.data = next
}

// maxElems is the largest element count whose byte size still fits an int.
func maxElems[T any]() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return math.MaxInt
	}

	return math.MaxInt / size
}

// checkedSize validates a shape and returns rows*cols.
// Negative dimensions panic with ErrBadShape; a product that does not fit the
// addressable range panics with ErrSizeOverflow.
func checkedSize[T any](typ, method string, rows, cols int) int {
	if rows < 0 || cols < 0 {
		fail(typ, method, ErrBadShape, rows, cols)
	}
	if rows == 0 || cols == 0 {
		return 0
	}
	if rows > maxElems[T]()/cols {
		fail(typ, method, ErrSizeOverflow, rows, cols)
	}

	return rows * cols
}
