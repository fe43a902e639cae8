// SPDX-License-Identifier: MIT
// Package: domain
//
// errors.go — sentinel errors for the domain package.
//
// Error policy (explicit and strict): only sentinel variables are exposed,
// callers MUST use errors.Is to branch on semantics, sentinels are never
// wrapped with formatted strings at the definition site.
package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidBoundary indicates an Open boundary was requested for a discrete
// value, or an operation received points of mismatched kind/arity.
var ErrInvalidBoundary = errors.New("domain: invalid boundary")

// errorf wraps an inner error message with method context, preserving err
// for errors.Is via %w.
func errorf(method, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("domain: %s: %s: %w", method, inner, ErrInvalidBoundary)
}
