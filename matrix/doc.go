// Package matrix provides a generic, row-major, capacity-tracked matrix with
// zero-copy rectangular views.
//
// The matrix package provides:
//
//   - Matrix[T]: one contiguous store of Cap() slots holding a logical
//     Nrows()×Ncols() shape. Resize within capacity only changes the shape;
//     growth reallocates to the exact new size and keeps the old slots in
//     place.
//   - View[T] and MutableView[T]: windows described by an offset and the
//     ORIGINAL matrix's column count as stride. Sub-views compose offsets and
//     never recompute the stride, so cell (r, c) of any view at any depth lives
//     at (rowOff+r)*stride + (colOff+c).
//   - A runtime borrow guard: any number of readers, or exactly one writer,
//     per cell. Violations panic.
//   - AsGonum / FromGonum for float64 interop with gonum.org/v1/gonum/mat.
//
// Error model: every contract violation (out-of-range index through At/Set,
// out-of-range window, negative shape, size overflow, borrow conflict, use
// after Release) panics with an error wrapping one of the package sentinels.
// Get/GetMut are the non-panicking accessors.
//
// Typical use:
//
//	m := matrix.WithValue(4, 4, 1.0)
//	m.WithViewMut(1, 1, 2, 2, func(v *matrix.MutableView[float64]) {
//		v.Set(0, 0, 5)
//	})
//	fmt.Println(m.At(1, 1)) // 5
package matrix
