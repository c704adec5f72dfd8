// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Matrix/View tests.
//   • Turn the package's panic-on-violation contract into testify assertions.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/clrs/matrix"
	"github.com/stretchr/testify/require"
)

// requirePanicIs runs fn and fails unless it panics with an error wrapping target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %#v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}

// seqMatrix builds a rows×cols int matrix with m[i,j] = i*cols + j.
func seqMatrix(t testing.TB, rows, cols int, opts ...matrix.Option) *matrix.Matrix[int] {
	t.Helper()
	m := matrix.New[int](rows, cols, opts...)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			m.Set(i, j, i*cols+j)
		}
	}

	return m
}

// randMatrix fills a rows×cols float64 matrix from a fixed seed.
func randMatrix(t testing.TB, rows, cols int, seed int64) *matrix.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := matrix.New[float64](rows, cols)
	data := m.Data()
	for i := range data {
		data[i] = rng.NormFloat64()
	}

	return m
}

// snapshot returns every element of m in row-major order.
func snapshot[T any](m *matrix.Matrix[T]) []T {
	out := make([]T, 0, m.Nrows()*m.Ncols())
	m.Do(func(_, _ int, v T) bool {
		out = append(out, v)
		return true
	})

	return out
}

// viewSnapshot returns every element of v in row-major order.
func viewSnapshot[T any](v *matrix.View[T]) []T {
	out := make([]T, 0, v.Nrows()*v.Ncols())
	v.Do(func(_, _ int, val T) bool {
		out = append(out, val)
		return true
	})

	return out
}

// box is an element type with reference semantics, used to prove that
// construction and transpose clone through matrix.Cloner.
type box struct {
	vals []int
}

// Clone implements matrix.Cloner[box].
func (b box) Clone() box {
	return box{vals: append([]int(nil), b.vals...)}
}
