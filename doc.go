// Package clrs collects textbook algorithms together with the data structure
// they lean on: a contiguous, resizable, generic matrix with zero-copy views.
//
// 🚀 What is in clrs?
//
//	• matrix     – row-major Matrix[T] with exact capacity, Resize, Transpose,
//	               read-only View and exclusive MutableView (views of views too)
//	• algorithms – chapter 2: insertion, selection, bubble and merge sort,
//	               linear search, array sum, Horner's rule
//	• sampling   – normal random vectors with recoverable argument errors
//	• cmd/clrs   – demo driver (cobra) for all of the above
//
// ✨ Guarantees
//
//   - Views never copy: every window addresses the Matrix store through its
//     offset and the column count of the Matrix it was carved from.
//   - Contract violations (bad shape, out of range, conflicting borrow) panic
//     with an error wrapping a matrix sentinel; bad sampling arguments are
//     returned as errors instead.
//
// Under the hood, everything is organized under these packages:
//
//	matrix/     - Matrix, View, MutableView, borrow guard, gonum adapter
//	algorithms/ - generic sorts, search and sums
//	sampling/   - Randn on gonum distuv
//	cmd/clrs/   - chapter2 and matrix demos
//
// Quick ASCII example, a 2×2 view at (1,1) of a 4×4 matrix:
//
//	+---+---+---+---+
//	| 0 | 1 | 1 | 1 |
//	+---+===+===+---+
//	| 1 | 2   1 | 1 |   v := m.View(1, 1, 2, 2)
//	+---+       +---+   v.At(0, 0) == 2
//	| 1 | 1   3 | 1 |   v.At(1, 1) == 3
//	+---+===+===+---+
//	| 1 | 1 | 1 | 4 |
//	+---+---+---+---+
//
//	go get github.com/katalvlaran/clrs
package clrs
