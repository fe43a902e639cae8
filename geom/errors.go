// SPDX-License-Identifier: MIT
package geom

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch indicates two geometric values (boxes, coordinates)
// have differing axis counts.
var ErrDimensionMismatch = errors.New("geom: dimension mismatch")

func errorf(method, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("geom: %s: %s: %w", method, inner, ErrDimensionMismatch)
}
