// SPDX-License-Identifier: MIT

// Package matrix - mutable views.
//
// A MutableView holds an exclusive claim on its rectangle: while it is live,
// no other view may overlap it and the owning Matrix can neither be read nor
// written directly. Writes go straight into the Matrix store.
//
// Re-borrowing:
//   - mv.View(...) and mv.ViewMut(...) carve sub-windows. While any of them is
//     live mv cannot write; while a mutable one is live mv cannot read either.
//   - Sibling sub-windows follow the usual overlap rule, so disjoint mutable
//     children of one parent may be live together.

package matrix

// MutableView is a non-owning window with exclusive write access.
type MutableView[T any] struct {
	base  *Matrix[T] // storage owner
	win   window     // offsets, shape and original stride
	claim *claim     // exclusive borrow
}

// ViewMut returns an exclusive h×w window whose top-left cell is (r0, c0).
// Bounds are checked against the Matrix shape at call time.
//
// Panics with ErrOutOfRange when the window does not fit, and with
// ErrBorrowConflict when any live view overlaps it.
func (m *Matrix[T]) ViewMut(r0, c0, h, w int) *MutableView[T] {
	if !fits(m.rows, m.cols, r0, c0, h, w) {
		fail(ctxMatrix, ctxSubViewMut, ErrOutOfRange, r0, c0, h, w)
	}
	win := window{rowOff: r0, colOff: c0, rows: h, cols: w, stride: m.cols}
	c, err := m.guard.acquire(nil, win, true)
	if err != nil {
		fail(ctxMatrix, ctxSubViewMut, err, r0, c0, h, w)
	}

	return &MutableView[T]{base: m, win: win, claim: c}
}

// WithViewMut runs fn with an exclusive window and releases it on return.
func (m *Matrix[T]) WithViewMut(r0, c0, h, w int, fn func(v *MutableView[T])) {
	v := m.ViewMut(r0, c0, h, w)
	defer v.Release()
	fn(v)
}

// Nrows returns the view height.
func (v *MutableView[T]) Nrows() int { return v.win.rows }

// Ncols returns the view width.
func (v *MutableView[T]) Ncols() int { return v.win.cols }

// Size returns (rows, cols) of the view.
func (v *MutableView[T]) Size() (rows, cols int) { return v.win.rows, v.win.cols }

// Get returns the element at (row, col) of the view and true, or T's zero
// value and false when the index is outside the view.
func (v *MutableView[T]) Get(row, col int) (T, bool) {
	if err := v.claim.readErr(); err != nil {
		fail(ctxMutView, ctxGet, err, row, col)
	}
	if !v.win.contains(row, col) {
		var zero T
		return zero, false
	}

	return v.base.buf.data[v.win.offset(row, col)], true
}

// GetMut returns a pointer into the Matrix store for (row, col), or nil when
// the index is outside the view.
func (v *MutableView[T]) GetMut(row, col int) *T {
	if err := v.claim.writeErr(); err != nil {
		fail(ctxMutView, ctxGetMut, err, row, col)
	}
	if !v.win.contains(row, col) {
		return nil
	}

	return &v.base.buf.data[v.win.offset(row, col)]
}

// At returns the element at (row, col) of the view.
// Panics with ErrOutOfRange when the index is outside the view.
func (v *MutableView[T]) At(row, col int) T {
	if err := v.claim.readErr(); err != nil {
		fail(ctxMutView, ctxAt, err, row, col)
	}
	if !v.win.contains(row, col) {
		fail(ctxMutView, ctxAt, ErrOutOfRange, row, col)
	}

	return v.base.buf.data[v.win.offset(row, col)]
}

// Set stores val at (row, col) of the view.
// Panics with ErrOutOfRange when the index is outside the view.
func (v *MutableView[T]) Set(row, col int, val T) {
	if err := v.claim.writeErr(); err != nil {
		fail(ctxMutView, ctxSet, err, row, col)
	}
	if !v.win.contains(row, col) {
		fail(ctxMutView, ctxSet, ErrOutOfRange, row, col)
	}
	v.base.buf.data[v.win.offset(row, col)] = val
}

// GetUnchecked reads (row, col) without checking it against the view shape.
func (v *MutableView[T]) GetUnchecked(row, col int) T {
	if err := v.claim.readErr(); err != nil {
		fail(ctxMutView, ctxUnchecked, err, row, col)
	}

	return v.base.buf.data[v.win.offset(row, col)]
}

// GetUncheckedMut is the write counterpart of GetUnchecked.
func (v *MutableView[T]) GetUncheckedMut(row, col int) *T {
	if err := v.claim.writeErr(); err != nil {
		fail(ctxMutView, ctxUncheckedM, err, row, col)
	}

	return &v.base.buf.data[v.win.offset(row, col)]
}

// Fill stores a clone of val into every cell of the view.
func (v *MutableView[T]) Fill(val T) {
	if err := v.claim.writeErr(); err != nil {
		fail(ctxMutView, ctxFill, err)
	}
	var i, j, base int
	for i = 0; i < v.win.rows; i++ {
		base = v.win.offset(i, 0)
		for j = 0; j < v.win.cols; j++ {
			v.base.buf.data[base+j] = cloneOf(val)
		}
	}
}

// View returns a read-only sub-window checked against this view's shape.
// v cannot write until the sub-view is released.
func (v *MutableView[T]) View(r0, c0, h, w int) *View[T] {
	if !fits(v.win.rows, v.win.cols, r0, c0, h, w) {
		fail(ctxMutView, ctxSubView, ErrOutOfRange, r0, c0, h, w)
	}
	win := v.win.sub(r0, c0, h, w)
	c, err := v.base.guard.acquire(v.claim, win, false)
	if err != nil {
		fail(ctxMutView, ctxSubView, err, r0, c0, h, w)
	}

	return &View[T]{base: v.base, win: win, claim: c}
}

// ViewMut returns a nested exclusive sub-window checked against this view's
// shape. v can neither read nor write until the sub-view is released; further
// sub-windows of v are allowed as long as they do not overlap it.
func (v *MutableView[T]) ViewMut(r0, c0, h, w int) *MutableView[T] {
	if !fits(v.win.rows, v.win.cols, r0, c0, h, w) {
		fail(ctxMutView, ctxSubViewMut, ErrOutOfRange, r0, c0, h, w)
	}
	win := v.win.sub(r0, c0, h, w)
	c, err := v.base.guard.acquire(v.claim, win, true)
	if err != nil {
		fail(ctxMutView, ctxSubViewMut, err, r0, c0, h, w)
	}

	return &MutableView[T]{base: v.base, win: win, claim: c}
}

// Do visits the view in row-major order; stops when f returns false.
func (v *MutableView[T]) Do(f func(i, j int, val T) bool) {
	if err := v.claim.readErr(); err != nil {
		fail(ctxMutView, ctxDo, err)
	}
	doWindow(v.base.buf.data, v.win, f)
}

// Copy materializes the window into a new, independent Matrix.
func (v *MutableView[T]) Copy() *Matrix[T] {
	if err := v.claim.readErr(); err != nil {
		fail(ctxMutView, ctxCopy, err)
	}

	return copyWindow(v.base, v.win)
}

// Release ends the exclusive borrow. Calling it again is a no-op.
// Panics with ErrBorrowConflict while sub-views of v are still live.
func (v *MutableView[T]) Release() {
	if err := v.claim.release(); err != nil {
		fail(ctxMutView, ctxRelease, err)
	}
}
