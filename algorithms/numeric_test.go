package algorithms_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/clrs/algorithms"
	"github.com/stretchr/testify/require"
)

func TestLinearSearch(t *testing.T) {
	arr := []int{7, 3, 9, 3}

	i, ok := algorithms.LinearSearch(arr, 3)
	require.True(t, ok)
	require.Equal(t, 1, i) // first match

	i, ok = algorithms.LinearSearch(arr, 10)
	require.False(t, ok)
	require.Equal(t, -1, i)

	_, ok = algorithms.LinearSearch[string](nil, "x")
	require.False(t, ok)
}

func TestLinearSearch_FloatNaNNeverMatches(t *testing.T) {
	_, ok := algorithms.LinearSearch([]float64{1, math.NaN()}, math.NaN())
	require.False(t, ok)
}

func TestSum(t *testing.T) {
	require.Equal(t, 15, algorithms.Sum([]int{1, 2, 3, 4, 5}))
	require.Equal(t, 0, algorithms.Sum([]int{}))
	require.InDelta(t, 0.6, algorithms.Sum([]float64{0.1, 0.2, 0.3}), 1e-12)
	require.Equal(t, complex(4, 2), algorithms.Sum([]complex128{1 + 1i, 3 + 1i}))
	require.Equal(t, uint8(255), algorithms.Sum([]uint8{200, 55}))
}

func TestSumFrom(t *testing.T) {
	require.Equal(t, 110, algorithms.SumFrom([]int{1, 2, 3, 4}, 100))
	require.Equal(t, -1.5, algorithms.SumFrom(nil, -1.5))
}

func TestHorner(t *testing.T) {
	// 1 + 2x + 3x² at x = 2 → 1 + 4 + 12
	require.Equal(t, 17.0, algorithms.Horner([]float64{1, 2, 3}, 2))
	require.Equal(t, 5.0, algorithms.Horner([]float64{5}, 100))
	require.Equal(t, 0.0, algorithms.Horner(nil, 3))

	// Agrees with naive evaluation.
	coeff := []float64{0.5, -1, 0.25, 2, -0.75}
	x := 1.3
	var naive float64
	for k, a := range coeff {
		naive += a * math.Pow(x, float64(k))
	}
	require.InDelta(t, naive, algorithms.Horner(coeff, x), 1e-12)
}
