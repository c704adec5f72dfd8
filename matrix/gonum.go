// SPDX-License-Identifier: MIT

// Package matrix - gonum interop for float64 matrices.
//
// AsGonum and ViewAsGonum wrap a Matrix[float64] / View[float64] in gonum's
// mat interfaces without copying, so gonum routines can read (and for
// AsGonum, write) the store directly. Every access goes through the checked
// At/Set path and therefore through the borrow guard.
// FromGonum copies any mat.Matrix into a new Matrix[float64].

package matrix

import "gonum.org/v1/gonum/mat"

// Compile-time assertions for gonum interface conformance.
var (
	_ mat.Mutable = gonumMatrix{}
	_ mat.Matrix  = gonumView{}
)

// gonumMatrix adapts *Matrix[float64] to mat.Mutable.
type gonumMatrix struct{ m *Matrix[float64] }

// AsGonum exposes m as a gonum mat.Mutable sharing m's storage.
func AsGonum(m *Matrix[float64]) mat.Mutable { return gonumMatrix{m: m} }

// Dims returns the dimensions of the wrapped matrix.
func (g gonumMatrix) Dims() (r, c int) { return g.m.Size() }

// At returns the value at row i, column j; panics when out of range.
func (g gonumMatrix) At(i, j int) float64 { return g.m.At(i, j) }

// Set alters the value at row i, column j; panics when out of range.
func (g gonumMatrix) Set(i, j int, v float64) { g.m.Set(i, j, v) }

// T returns gonum's implicit transpose; no data is copied.
func (g gonumMatrix) T() mat.Matrix { return mat.Transpose{Matrix: g} }

// gonumView adapts *View[float64] to mat.Matrix.
type gonumView struct{ v *View[float64] }

// ViewAsGonum exposes a read-only window as a gonum mat.Matrix.
// The adapter is valid only until v is released.
func ViewAsGonum(v *View[float64]) mat.Matrix { return gonumView{v: v} }

// Dims returns the dimensions of the wrapped view.
func (g gonumView) Dims() (r, c int) { return g.v.Size() }

// At returns the value at row i, column j of the view.
func (g gonumView) At(i, j int) float64 { return g.v.At(i, j) }

// T returns gonum's implicit transpose.
func (g gonumView) T() mat.Matrix { return mat.Transpose{Matrix: g} }

// FromGonum copies a into a new Matrix[float64] of the same shape.
//
// Complexity: O(r*c).
func FromGonum(a mat.Matrix, opts ...Option) *Matrix[float64] {
	r, c := a.Dims()
	m := New[float64](r, c, opts...)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			m.buf.data[i*c+j] = a.At(i, j)
		}
	}

	return m
}
