package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/clrs/matrix"
	"github.com/katalvlaran/clrs/sampling"
	"github.com/spf13/cobra"
)

func newMatrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Walk through views, mutable views, resize and transpose",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMatrix(cmd.OutOrStdout())
		},
	}
}

// runMatrix prints each scenario in turn.
func runMatrix(w io.Writer) error {
	fmt.Fprintln(w, "== read-only view ==")
	viewScenario(w)

	fmt.Fprintln(w, "== mutable view ==")
	mutableViewScenario(w)

	fmt.Fprintln(w, "== resize ==")
	resizeScenario(w)

	fmt.Fprintln(w, "== transpose ==")
	return transposeScenario(w)
}

// viewScenario projects a 2×2 window out of a 4×4 diagonal matrix, then a
// 1×1 window out of that.
func viewScenario(w io.Writer) {
	m := matrix.WithValue(4, 4, 1.0)
	m.Set(0, 0, 0.0)
	m.Set(1, 1, 2.0)
	m.Set(2, 2, 3.0)
	m.Set(3, 3, 4.0)
	fmt.Fprint(w, m)

	m.WithView(1, 1, 2, 2, func(v *matrix.View[float64]) {
		rows, cols := v.Size()
		fmt.Fprintf(w, "view size: (%d, %d)\n", rows, cols)
		fmt.Fprintf(w, "view[0,0] = %v, view[1,1] = %v\n", v.At(0, 0), v.At(1, 1))

		sub := v.View(0, 0, 1, 1)
		defer sub.Release()
		fmt.Fprintf(w, "sub[0,0] = %v\n", sub.At(0, 0))
	})
}

// mutableViewScenario writes through a window of a zero matrix.
func mutableViewScenario(w io.Writer) {
	m := matrix.Zeros[float64](3, 3)
	m.WithViewMut(1, 1, 2, 2, func(v *matrix.MutableView[float64]) {
		v.Set(0, 0, 5.0)
		v.Set(1, 1, 6.0)
	})
	fmt.Fprint(w, m)
}

// resizeScenario grows then shrinks a matrix and reports capacity.
func resizeScenario(w io.Writer) {
	m := matrix.WithValue(2, 2, 1)
	m.Set(0, 0, 10)
	m.Set(1, 1, 20)

	m.Resize(3, 3)
	fmt.Fprintf(w, "after grow: %dx%d cap=%d m[0,0]=%d\n", m.Nrows(), m.Ncols(), m.Cap(), m.At(0, 0))
	m.Resize(1, 1)
	fmt.Fprintf(w, "after shrink: %dx%d cap=%d\n", m.Nrows(), m.Ncols(), m.Cap())
}

// transposeScenario transposes a 2×3 matrix of standard normal draws.
func transposeScenario(w io.Writer) error {
	const rows, cols = 2, 3
	xs, err := sampling.Randn(0.0, 1.0, rows*cols)
	if err != nil {
		return fmt.Errorf("transpose: %w", err)
	}
	m := matrix.New[float64](rows, cols)
	copy(m.Data(), xs)

	fmt.Fprint(w, m)
	fmt.Fprintln(w, "transposed:")
	fmt.Fprint(w, m.Transpose())

	return nil
}
