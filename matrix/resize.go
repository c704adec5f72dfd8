// SPDX-License-Identifier: MIT

package matrix

// Resize changes the logical shape to newRows×newCols.
//
// Implementation:
//   - Stage 1: validate the shape (ErrBadShape / ErrSizeOverflow are fatal).
//   - Stage 2: if newRows*newCols <= Cap(), update the shape only. No slot is
//     moved, cleared or reinterpreted.
//   - Stage 3: otherwise reallocate to exactly newRows*newCols slots, copying
//     the old linear sequence into the front of the new store, then update
//     the shape.
//
// Behavior highlights:
//   - Cells exposed by growth within capacity hold whatever a previous shape
//     left there (stale values). They are not zeroed.
//   - Preserved slots keep their linear position, so with a different column
//     count the same values land on different (row, col) coordinates.
//   - Capacity never shrinks.
//
// Panics with ErrBorrowConflict while any view is live.
//
// Complexity: O(1) within capacity; O(old capacity + new size) otherwise.
func (m *Matrix[T]) Resize(newRows, newCols int) {
	if m.guard.writeBlocked() {
		fail(ctxMatrix, ctxResize, ErrBorrowConflict, newRows, newCols)
	}
	size := checkedSize[T](ctxMatrix, ctxResize, newRows, newCols)
	if size > m.buf.capacity() {
		m.buf.grow(size)
	}
	m.rows, m.cols = newRows, newCols
}
