// SPDX-License-Identifier: MIT

package sampling

import "errors"

// ErrInvalidArguments is the sentinel matched by every InvalidArgumentsError.
var ErrInvalidArguments = errors.New("sampling: invalid arguments")

// InvalidArgumentsError reports a rejected parameter together with a
// human-readable reason. errors.Is(err, ErrInvalidArguments) holds for it.
type InvalidArgumentsError struct {
	Msg string
}

// Error implements error.
func (e *InvalidArgumentsError) Error() string {
	return "invalid arguments: " + e.Msg
}

// Is reports whether target is ErrInvalidArguments.
func (e *InvalidArgumentsError) Is(target error) bool {
	return target == ErrInvalidArguments
}

// invalidArgs builds an *InvalidArgumentsError.
func invalidArgs(msg string) error {
	return &InvalidArgumentsError{Msg: msg}
}
