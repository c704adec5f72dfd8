// SPDX-License-Identifier: MIT

// Package matrix - read-only views.
//
// Purpose:
//   - Project an h×w rectangle of a Matrix without copying.
//   - Compose sub-views by adding offsets; the stride stays the column count
//     of the Matrix the root view was carved from.
//
// Lifetime:
//   - A view borrows its Matrix until Release. Prefer WithView, which
//     releases on return, or pair every View call with `defer v.Release()`.

package matrix

// View is a non-owning, read-only window into a Matrix.
type View[T any] struct {
	base  *Matrix[T] // storage owner
	win   window     // offsets, shape and original stride
	claim *claim     // shared borrow
}

// View returns a read-only h×w window whose top-left cell is (r0, c0).
// Bounds are checked against the Matrix shape at call time.
//
// Panics with ErrOutOfRange when the window does not fit, and with
// ErrBorrowConflict when a live MutableView overlaps it.
//
// Complexity: O(1) plus O(live views) for the borrow check.
func (m *Matrix[T]) View(r0, c0, h, w int) *View[T] {
	if !fits(m.rows, m.cols, r0, c0, h, w) {
		fail(ctxMatrix, ctxSubView, ErrOutOfRange, r0, c0, h, w)
	}
	win := window{rowOff: r0, colOff: c0, rows: h, cols: w, stride: m.cols}
	c, err := m.guard.acquire(nil, win, false)
	if err != nil {
		fail(ctxMatrix, ctxSubView, err, r0, c0, h, w)
	}

	return &View[T]{base: m, win: win, claim: c}
}

// WithView runs fn with a read-only window and releases it when fn returns.
func (m *Matrix[T]) WithView(r0, c0, h, w int, fn func(v *View[T])) {
	v := m.View(r0, c0, h, w)
	defer v.Release()
	fn(v)
}

// Nrows returns the view height.
func (v *View[T]) Nrows() int { return v.win.rows }

// Ncols returns the view width.
func (v *View[T]) Ncols() int { return v.win.cols }

// Size returns (rows, cols) of the view.
func (v *View[T]) Size() (rows, cols int) { return v.win.rows, v.win.cols }

// checkRead panics unless the view may be read.
func (v *View[T]) checkRead(method string) {
	if err := v.claim.readErr(); err != nil {
		fail(ctxView, method, err)
	}
}

// Get returns the element at (row, col) of the view and true, or T's zero
// value and false when the index is outside the view.
func (v *View[T]) Get(row, col int) (T, bool) {
	if err := v.claim.readErr(); err != nil {
		fail(ctxView, ctxGet, err, row, col)
	}
	if !v.win.contains(row, col) {
		var zero T
		return zero, false
	}

	return v.base.buf.data[v.win.offset(row, col)], true
}

// At returns the element at (row, col) of the view.
// Panics with ErrOutOfRange when the index is outside the view.
func (v *View[T]) At(row, col int) T {
	if err := v.claim.readErr(); err != nil {
		fail(ctxView, ctxAt, err, row, col)
	}
	if !v.win.contains(row, col) {
		fail(ctxView, ctxAt, ErrOutOfRange, row, col)
	}

	return v.base.buf.data[v.win.offset(row, col)]
}

// GetUnchecked reads (row, col) without checking it against the view shape.
// The caller guarantees the index is inside the view.
func (v *View[T]) GetUnchecked(row, col int) T {
	if err := v.claim.readErr(); err != nil {
		fail(ctxView, ctxUnchecked, err, row, col)
	}

	return v.base.buf.data[v.win.offset(row, col)]
}

// View returns a read-only sub-window checked against this view's shape.
// Offsets compose; the stride is inherited unchanged.
func (v *View[T]) View(r0, c0, h, w int) *View[T] {
	if !fits(v.win.rows, v.win.cols, r0, c0, h, w) {
		fail(ctxView, ctxSubView, ErrOutOfRange, r0, c0, h, w)
	}
	win := v.win.sub(r0, c0, h, w)
	c, err := v.base.guard.acquire(v.claim, win, false)
	if err != nil {
		fail(ctxView, ctxSubView, err, r0, c0, h, w)
	}

	return &View[T]{base: v.base, win: win, claim: c}
}

// Do visits the view in row-major order; stops when f returns false.
func (v *View[T]) Do(f func(i, j int, val T) bool) {
	v.checkRead(ctxDo)
	doWindow(v.base.buf.data, v.win, f)
}

// Copy materializes the window into a new, independent Matrix.
func (v *View[T]) Copy() *Matrix[T] {
	v.checkRead(ctxCopy)

	return copyWindow(v.base, v.win)
}

// Release ends the borrow. Calling it again is a no-op.
// Panics with ErrBorrowConflict while sub-views of v are still live.
func (v *View[T]) Release() {
	if err := v.claim.release(); err != nil {
		fail(ctxView, ctxRelease, err)
	}
}

// doWindow is the shared row-major visitor for both view kinds.
func doWindow[T any](data []T, win window, f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < win.rows; i++ {
		base = win.offset(i, 0)
		for j = 0; j < win.cols; j++ {
			if !f(i, j, data[base+j]) {
				return
			}
		}
	}
}

// copyWindow clones the window's cells into a fresh Matrix.
func copyWindow[T any](m *Matrix[T], win window) *Matrix[T] {
	out := newMatrix[T](ctxCopy, win.rows, win.cols, []Option{WithBorrowCheck(m.guard != nil)})
	var i, j, src int
	for i = 0; i < win.rows; i++ {
		src = win.offset(i, 0)
		for j = 0; j < win.cols; j++ {
			out.buf.data[i*win.cols+j] = cloneOf(m.buf.data[src+j])
		}
	}

	return out
}
