// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Matrix constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCapacity is the reservation requested when WithCapacity is not
	// used. Zero means "exactly rows*cols".
	DefaultCapacity = 0

	// DefaultBorrowCheck enables the runtime exclusivity guard.
	DefaultBorrowCheck = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCapacityInvalid = "matrix: WithCapacity: capacity must be non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	capacity    int  // >= 0; DefaultCapacity
	borrowCheck bool // DefaultBorrowCheck
}

// WithCapacity reserves at least n element slots up front. The effective
// capacity is max(n, rows*cols). A later Resize that fits the reservation
// does not reallocate.
//
// Panics when n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.capacity = n }
}

// WithBorrowCheck toggles the runtime exclusivity guard.
//
// With the guard off, views are plain offset/stride projections and nothing
// stops a caller from resizing or writing the Matrix under a live view. The
// view then keeps its original stride and reads whatever the new layout
// holds at those addresses. Use only in hot loops whose borrow discipline is
// proven by construction.
func WithBorrowCheck(enabled bool) Option {
	return func(o *Options) { o.borrowCheck = enabled }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{
		capacity:    DefaultCapacity,
		borrowCheck: DefaultBorrowCheck,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
