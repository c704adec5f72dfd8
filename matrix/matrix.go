// SPDX-License-Identifier: MIT

// Package matrix - Matrix[T]: owned, capacity-tracked, row-major 2-D buffer.
//
// Purpose:
//   - Keep rows×cols elements in one contiguous store with the explicit index
//     formula i*cols + j.
//   - Track capacity separately from the logical shape so Resize within the
//     reservation never reallocates.
//   - Hand out no-copy windows (View, MutableView) guarded by a runtime
//     exclusivity check (see borrow.go).
//
// Complexity quicksheet:
//   - New/WithValue/Zeros: O(capacity); accessors: O(1); Clone/Transpose: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxMatrix     = "Matrix"      // type tag for Matrix methods
	ctxView       = "View"        // type tag for View methods
	ctxMutView    = "MutableView" // type tag for MutableView methods
	ctxNew        = "New"
	ctxWithValue  = "WithValue"
	ctxZeros      = "Zeros"
	ctxGet        = "Get"
	ctxGetMut     = "GetMut"
	ctxAt         = "At"
	ctxSet        = "Set"
	ctxUnchecked  = "GetUnchecked"
	ctxUncheckedM = "GetUncheckedMut"
	ctxResize     = "Resize"
	ctxTranspose  = "Transpose"
	ctxClone      = "Clone"
	ctxSwap       = "Swap"
	ctxData       = "Data"
	ctxDo         = "Do"
	ctxString     = "String"
	ctxSubView    = "View"
	ctxSubViewMut = "ViewMut"
	ctxFill       = "Fill"
	ctxCopy       = "Copy"
	ctxRelease    = "Release"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Cloner is implemented by element types whose copies must not share state
// (e.g. types holding slices or maps). Construction, Clone and Transpose call
// Clone for such types; plain Go assignment is used for everything else.
type Cloner[T any] interface {
	Clone() T
}

// cloneOf returns an independent copy of v.
func cloneOf[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}

	return v
}

// Matrix is a row-major matrix that owns its backing store.
//   - rows, cols hold the logical shape; rows*cols <= capacity always.
//   - buf holds capacity slots; capacity only grows.
//   - guard enforces the exclusivity rule for views (nil when disabled).
//
// A Matrix must not be copied by value once views exist; pass *Matrix.
type Matrix[T any] struct {
	buf   store[T]
	rows  int
	cols  int
	guard *borrowGuard
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// New creates a rows×cols Matrix.
// The slots are unspecified by contract; in Go they hold T's zero value,
// since the runtime never exposes uninitialised memory.
//
// Panics with ErrBadShape on negative dimensions and ErrSizeOverflow when the
// element count does not fit the addressable range. 0×N and N×0 are legal.
//
// Complexity: O(capacity).
func New[T any](rows, cols int, opts ...Option) *Matrix[T] {
	return newMatrix[T](ctxNew, rows, cols, opts)
}

// WithValue creates a rows×cols Matrix whose every allocated slot is a clone
// of value, including any extra capacity reserved with WithCapacity.
//
// Complexity: O(capacity).
func WithValue[T any](rows, cols int, value T, opts ...Option) *Matrix[T] {
	m := newMatrix[T](ctxWithValue, rows, cols, opts)
	for i := range m.buf.data {
		m.buf.data[i] = cloneOf(value)
	}

	return m
}

// Zeros creates a rows×cols Matrix filled with T's zero value.
//
// Complexity: O(capacity).
func Zeros[T any](rows, cols int, opts ...Option) *Matrix[T] {
	// make() already zero-fills; no second pass.
	return newMatrix[T](ctxZeros, rows, cols, opts)
}

// newMatrix validates the shape, resolves options and allocates the store.
func newMatrix[T any](method string, rows, cols int, opts []Option) *Matrix[T] {
	o := gatherOptions(opts...)
	size := checkedSize[T](ctxMatrix, method, rows, cols)

	capacity := size
	if o.capacity > capacity {
		if o.capacity > maxElems[T]() {
			fail(ctxMatrix, method, ErrSizeOverflow, rows, cols)
		}
		capacity = o.capacity
	}

	return &Matrix[T]{
		buf:   newStore[T](capacity),
		rows:  rows,
		cols:  cols,
		guard: newBorrowGuard(o.borrowCheck),
	}
}

// Nrows returns the logical row count.
func (m *Matrix[T]) Nrows() int { return m.rows }

// Ncols returns the logical column count.
func (m *Matrix[T]) Ncols() int { return m.cols }

// Size returns (rows, cols).
func (m *Matrix[T]) Size() (rows, cols int) { return m.rows, m.cols }

// Cap returns the number of allocated slots. Cap() >= Nrows()*Ncols().
func (m *Matrix[T]) Cap() int { return m.buf.capacity() }

// Clone returns a deep copy with the same shape, capacity and borrow-check
// setting. Every slot, including spare capacity, is cloned.
//
// Complexity: O(capacity).
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m.guard.readBlocked() {
		fail(ctxMatrix, ctxClone, ErrBorrowConflict)
	}
	cp := newStore[T](m.buf.capacity())
	for i, v := range m.buf.data {
		cp.data[i] = cloneOf(v)
	}

	return &Matrix[T]{
		buf:   cp,
		rows:  m.rows,
		cols:  m.cols,
		guard: newBorrowGuard(m.guard != nil),
	}
}

// Swap exchanges the contents (store and shape) of m and other.
// The borrow-check setting stays with each handle.
// Panics with ErrBorrowConflict if either matrix has a live view.
func (m *Matrix[T]) Swap(other *Matrix[T]) {
	if m.guard.writeBlocked() || other.guard.writeBlocked() {
		fail(ctxMatrix, ctxSwap, ErrBorrowConflict)
	}
	m.buf, other.buf = other.buf, m.buf
	m.rows, other.rows = other.rows, m.rows
	m.cols, other.cols = other.cols, m.cols
}

// Data returns the logical rows*cols prefix of the store in row-major order.
// The slice aliases the Matrix; its capacity is clipped so append never
// writes into spare slots. It counts as write access.
func (m *Matrix[T]) Data() []T {
	if m.guard.writeBlocked() {
		fail(ctxMatrix, ctxData, ErrBorrowConflict)
	}
	n := m.rows * m.cols

	return m.buf.data[:n:n]
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
//
// Complexity: O(r*c), no allocations.
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) {
	if m.guard.readBlocked() {
		fail(ctxMatrix, ctxDo, ErrBorrowConflict)
	}
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			if !f(i, j, m.buf.data[base+j]) {
				return
			}
		}
	}
}

// String renders one bracketed line per row, values formatted with %v.
// Intended for diagnostics.
func (m *Matrix[T]) String() string {
	if m.guard.readBlocked() {
		fail(ctxMatrix, ctxString, ErrBorrowConflict)
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			fmt.Fprintf(&b, "%v", m.buf.data[base+j])
			if j+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
