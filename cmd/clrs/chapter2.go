package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/katalvlaran/clrs/algorithms"
	"github.com/katalvlaran/clrs/sampling"
	"github.com/spf13/cobra"
)

const (
	defaultN    = 10
	defaultMean = 0.0
	defaultStd  = 1.0

	// missingTarget is a value a standard normal draw practically never hits.
	missingTarget = 10.0
)

// chapter2Flags holds the parsed flags of the chapter2 command.
type chapter2Flags struct {
	n    int
	mean float64
	std  float64
}

func newChapter2Cmd() *cobra.Command {
	var f chapter2Flags
	cmd := &cobra.Command{
		Use:   "chapter2",
		Short: "Sort, sum and search a random normal vector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChapter2(cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().IntVar(&f.n, "n", defaultN, "number of samples")
	cmd.Flags().Float64Var(&f.mean, "mean", defaultMean, "mean of the normal distribution")
	cmd.Flags().Float64Var(&f.std, "std", defaultStd, "standard deviation, must be positive")

	return cmd
}

// runChapter2 draws the vector, sorts two copies with different algorithms,
// then sums and searches the sorted result.
func runChapter2(w io.Writer, f chapter2Flags) error {
	arr, err := sampling.Randn(f.mean, f.std, f.n)
	if err != nil {
		return fmt.Errorf("chapter2: %w", err)
	}
	fmt.Fprintln(w, "Hello, welcome to Chapter 2!")
	fmt.Fprintln(w, arr)

	bySelection := slices.Clone(arr)
	algorithms.InsertionSort(arr)
	fmt.Fprintln(w, arr)
	algorithms.SelectionSort(bySelection)
	fmt.Fprintln(w, bySelection)

	fmt.Fprintf(w, "Sum of array elements: %v\n", algorithms.Sum(arr))

	const fifth = 4
	if len(arr) > fifth {
		reportSearch(w, arr, arr[fifth])
	}
	reportSearch(w, arr, missingTarget)

	return nil
}

// reportSearch prints the outcome of a linear search for target.
func reportSearch(w io.Writer, arr []float64, target float64) {
	if i, ok := algorithms.LinearSearch(arr, target); ok {
		fmt.Fprintf(w, "Found target at index %d\n", i)
		return
	}
	fmt.Fprintln(w, "Target not found")
}
