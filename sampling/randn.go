// SPDX-License-Identifier: MIT

// Package sampling - normal random vectors.
//
// Randn draws from gonum's distuv.Normal. Without WithSource the draws come
// from the process-wide generator; WithSource makes a run reproducible.

package sampling

import (
	"fmt"
	"math"
	"math/rand/v2"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat/distuv"
)

// Option configures Randn.
type Option func(*Options)

// Options stores the effective Randn configuration.
type Options struct {
	src rand.Source // nil means the global generator
}

// WithSource draws from src instead of the global generator.
// A nil src restores the default.
func WithSource(src rand.Source) Option {
	return func(o *Options) { o.src = src }
}

// gatherOptions applies opts in order; later options win.
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Randn returns n independent samples of N(mean, stdDev²).
//
// Returns *InvalidArgumentsError when stdDev is not strictly positive, when
// mean or stdDev is NaN or infinite, or when n is negative. n == 0 yields an
// empty, non-nil slice.
//
// Complexity: O(n).
func Randn[T constraints.Float](mean, stdDev T, n int, opts ...Option) ([]T, error) {
	mu, sigma := float64(mean), float64(stdDev)
	switch {
	case math.IsNaN(mu) || math.IsInf(mu, 0):
		return nil, invalidArgs(fmt.Sprintf("the mean `mean` must be finite, but got %v", mean))
	case !(sigma > 0) || math.IsInf(sigma, 0):
		return nil, invalidArgs(fmt.Sprintf("the standard deviation `stdDev` must be positive, but got %v", stdDev))
	case n < 0:
		return nil, invalidArgs(fmt.Sprintf("the sample count `n` must be non-negative, but got %d", n))
	}

	o := gatherOptions(opts...)
	dist := distuv.Normal{Mu: mu, Sigma: sigma, Src: o.src}

	out := make([]T, n)
	for i := range out {
		out[i] = T(dist.Rand())
	}

	return out, nil
}
