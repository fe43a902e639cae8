// SPDX-License-Identifier: MIT
package interval

import (
	"errors"
	"fmt"
)

// ErrInvalidBoundary indicates a malformed interval (start > end) or an N-D
// operation invoked across intervals/points of mismatched arity (axis
// count), per spec.md §7.
var ErrInvalidBoundary = errors.New("interval: invalid boundary")

func errorf(method, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("interval: %s: %s: %w", method, inner, ErrInvalidBoundary)
}
