// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/clrs/matrix"
)

// ExampleMatrix_View carves a window and a nested sub-window out of a
// diagonal matrix without copying.
func ExampleMatrix_View() {
	m := matrix.WithValue(4, 4, 1.0)
	m.Set(0, 0, 0)
	m.Set(1, 1, 2)
	m.Set(2, 2, 3)
	m.Set(3, 3, 4)

	m.WithView(1, 1, 2, 2, func(v *matrix.View[float64]) {
		rows, cols := v.Size()
		fmt.Println("view size:", rows, cols)
		fmt.Println("view[0,0] =", v.At(0, 0))
		fmt.Println("view[1,1] =", v.At(1, 1))

		sub := v.View(0, 0, 1, 1)
		defer sub.Release()
		fmt.Println("sub[0,0] =", sub.At(0, 0))
	})

	// Output:
	// view size: 2 2
	// view[0,0] = 2
	// view[1,1] = 3
	// sub[0,0] = 2
}

// ExampleMatrix_ViewMut writes into the parent through an exclusive window.
func ExampleMatrix_ViewMut() {
	m := matrix.Zeros[float64](3, 3)

	m.WithViewMut(1, 1, 2, 2, func(v *matrix.MutableView[float64]) {
		v.Set(0, 0, 5)
		v.Set(1, 1, 6)
	})
	fmt.Print(m)

	// Output:
	// [0, 0, 0]
	// [0, 5, 0]
	// [0, 0, 6]
}

// ExampleMatrix_Resize keeps the allocation when shrinking and reallocates
// exactly when growing.
func ExampleMatrix_Resize() {
	m := matrix.WithValue(2, 2, 1)
	m.Set(0, 0, 10)

	m.Resize(3, 3)
	fmt.Println("after grow:", m.Nrows(), m.Ncols(), "cap", m.Cap(), "m[0,0] =", m.At(0, 0))

	m.Resize(1, 1)
	fmt.Println("after shrink:", m.Nrows(), m.Ncols(), "cap", m.Cap())

	// Output:
	// after grow: 3 3 cap 9 m[0,0] = 10
	// after shrink: 1 1 cap 9
}

// ExampleMatrix_Transpose swaps rows and columns into a new matrix.
func ExampleMatrix_Transpose() {
	m := matrix.New[int](2, 3)
	copy(m.Data(), []int{1, 2, 3, 4, 5, 6})

	fmt.Print(m.Transpose())

	// Output:
	// [1, 4]
	// [2, 5]
	// [3, 6]
}
