// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (white-box) for the backing store and the borrow guard.
// Compiled only with the package tests; production API is unchanged.

// Backing exposes the whole store, spare capacity included.
func Backing[T any](m *Matrix[T]) []T { return m.buf.data }

// LiveClaims reports how many views currently borrow m.
func LiveClaims[T any](m *Matrix[T]) int {
	if m.guard == nil {
		return 0
	}

	return int(m.guard.claims.Load())
}

// BorrowCheckEnabled reports whether m carries a guard.
func BorrowCheckEnabled[T any](m *Matrix[T]) bool { return m.guard != nil }

// OptionsSnapshot is a read-only copy of the resolved Options.
type OptionsSnapshot struct {
	Capacity    int
	BorrowCheck bool
}

// GatherOptionsSnapshot resolves opts the way constructors do.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Capacity: o.capacity, BorrowCheck: o.borrowCheck}
}

// Panic message exports to avoid "magic strings" in tests.
const PanicCapacityInvalid = panicCapacityInvalid
