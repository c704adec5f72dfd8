// SPDX-License-Identifier: MIT

package matrix

// window is the projection shared by View and MutableView.
// rowOff/colOff accumulate across sub-views; stride is the column count of
// the owning Matrix when the root view was carved and is never recomputed.
type window struct {
	rowOff int // first row, absolute
	colOff int // first column, absolute
	rows   int // window height
	cols   int // window width
	stride int // original Matrix column count
}

// offset resolves (r, c) inside the window to a linear slot index.
func (w window) offset(r, c int) int {
	return (w.rowOff+r)*w.stride + (w.colOff + c)
}

// contains reports whether (r, c) lies inside the window.
func (w window) contains(r, c int) bool {
	return r >= 0 && r < w.rows && c >= 0 && c < w.cols
}

// sub composes a child window; the caller has already validated the bounds.
func (w window) sub(r0, c0, h, wd int) window {
	return window{
		rowOff: w.rowOff + r0,
		colOff: w.colOff + c0,
		rows:   h,
		cols:   wd,
		stride: w.stride,
	}
}

// overlaps reports whether two windows share at least one cell.
// Zero-area windows overlap nothing.
func (w window) overlaps(o window) bool {
	if w.rows == 0 || w.cols == 0 || o.rows == 0 || o.cols == 0 {
		return false
	}

	return w.rowOff < o.rowOff+o.rows && o.rowOff < w.rowOff+w.rows &&
		w.colOff < o.colOff+o.cols && o.colOff < w.colOff+w.cols
}

// fits reports whether the h×w rectangle at (r0, c0) lies inside a rows×cols
// area. Written without r0+h so huge arguments cannot overflow.
func fits(rows, cols, r0, c0, h, w int) bool {
	return r0 >= 0 && c0 >= 0 && h >= 0 && w >= 0 &&
		h <= rows && w <= cols && r0 <= rows-h && c0 <= cols-w
}
