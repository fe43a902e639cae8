// SPDX-License-Identifier: MIT
package boxtree

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch indicates a box or tree dimension count mismatch.
var ErrDimensionMismatch = errors.New("boxtree: dimension mismatch")

func errorf(method, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("boxtree: %s: %s: %w", method, inner, ErrDimensionMismatch)
}
