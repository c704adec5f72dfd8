// SPDX-License-Identifier: MIT

// Package sampling generates random input vectors for the algorithms and
// matrix demos.
//
// Unlike the matrix package, which panics on contract violations, sampling
// reports bad parameters as ordinary errors: an *InvalidArgumentsError that
// matches ErrInvalidArguments under errors.Is.
//
//	xs, err := sampling.Randn(0.0, 1.0, 10)
//	if errors.Is(err, sampling.ErrInvalidArguments) {
//		// reject the input
//	}
package sampling
