// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every contract violation on Matrix, View and MutableView is FATAL: the
// offending call panics with an error value that wraps one of the sentinels
// below, so a caller that really must survive can recover() and match with
// errors.Is. Nothing in this package returns these as ordinary error results.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Panic values
// are built by the helpers at the bottom of this file, which prepend the
// method and its arguments: "Matrix.View(3,3,2,2): matrix: index out of range".

var (
	// ErrBadShape is raised when a requested shape has a negative dimension.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index or a view window lies outside the
	// current logical dimensions.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSizeOverflow signals that rows*cols (or the byte size of that many
	// elements) does not fit the largest addressable object.
	ErrSizeOverflow = errors.New("matrix: size exceeds addressable range")

	// ErrBorrowConflict signals a violation of the exclusivity rule: a writer
	// and another reader or writer were active over the same cells.
	ErrBorrowConflict = errors.New("matrix: conflicting borrow")

	// ErrReleased indicates use of a view after Release.
	ErrReleased = errors.New("matrix: view already released")
)

// fail panics with err wrapped in "<typ>.<method>(<args>)" context.
func fail(typ, method string, err error, args ...int) {
	panic(callErrorf(typ, method, err, args...))
}

// callErrorf formats the call context around a sentinel.
func callErrorf(typ, method string, err error, args ...int) error {
	b := make([]byte, 0, 32)
	for i, a := range args {
		if i > 0 {
			b = append(b, ',')
		}
		b = fmt.Appendf(b, "%d", a)
	}

	return fmt.Errorf("%s.%s(%s): %w", typ, method, b, err)
}
