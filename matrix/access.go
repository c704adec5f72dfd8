// SPDX-License-Identifier: MIT

// Package matrix - indexed access.
//
// Three tiers, same row-major formula row*cols + col:
//   - Get/GetMut: bounds-checked against the logical shape; report misses.
//   - At/Set: the index operator; an out-of-range index is fatal.
//   - GetUnchecked/GetUncheckedMut: opt-in fast path, no logical bounds check.

package matrix

// indexOf returns the linear offset of (row, col) and whether it lies inside
// the logical shape.
func (m *Matrix[T]) indexOf(row, col int) (int, bool) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, false
	}

	return row*m.cols + col, true
}

// Get returns the element at (row, col) and true, or T's zero value and
// false when the index is outside the logical shape.
func (m *Matrix[T]) Get(row, col int) (T, bool) {
	if m.guard.readBlocked() {
		fail(ctxMatrix, ctxGet, ErrBorrowConflict, row, col)
	}
	off, ok := m.indexOf(row, col)
	if !ok {
		var zero T
		return zero, false
	}

	return m.buf.data[off], true
}

// GetMut returns a pointer to the element at (row, col), or nil when the
// index is outside the logical shape. The pointer aliases the store and is
// invalidated by a reallocating Resize.
func (m *Matrix[T]) GetMut(row, col int) *T {
	if m.guard.writeBlocked() {
		fail(ctxMatrix, ctxGetMut, ErrBorrowConflict, row, col)
	}
	off, ok := m.indexOf(row, col)
	if !ok {
		return nil
	}

	return &m.buf.data[off]
}

// At returns the element at (row, col).
// Panics with ErrOutOfRange when the index is outside the logical shape.
func (m *Matrix[T]) At(row, col int) T {
	if m.guard.readBlocked() {
		fail(ctxMatrix, ctxAt, ErrBorrowConflict, row, col)
	}
	off, ok := m.indexOf(row, col)
	if !ok {
		fail(ctxMatrix, ctxAt, ErrOutOfRange, row, col)
	}

	return m.buf.data[off]
}

// Set stores v at (row, col).
// Panics with ErrOutOfRange when the index is outside the logical shape.
func (m *Matrix[T]) Set(row, col int, v T) {
	if m.guard.writeBlocked() {
		fail(ctxMatrix, ctxSet, ErrBorrowConflict, row, col)
	}
	off, ok := m.indexOf(row, col)
	if !ok {
		fail(ctxMatrix, ctxSet, ErrOutOfRange, row, col)
	}
	m.buf.data[off] = v
}

// GetUnchecked returns the element at (row, col) without checking the index
// against the logical shape. The caller guarantees row < Nrows() and
// col < Ncols(); otherwise the result is whatever slot the formula lands on,
// and an address past Cap() trips the runtime bound check.
func (m *Matrix[T]) GetUnchecked(row, col int) T {
	if m.guard.readBlocked() {
		fail(ctxMatrix, ctxUnchecked, ErrBorrowConflict, row, col)
	}

	return m.buf.data[row*m.cols+col]
}

// GetUncheckedMut is the write counterpart of GetUnchecked.
func (m *Matrix[T]) GetUncheckedMut(row, col int) *T {
	if m.guard.writeBlocked() {
		fail(ctxMatrix, ctxUncheckedM, ErrBorrowConflict, row, col)
	}

	return &m.buf.data[row*m.cols+col]
}
