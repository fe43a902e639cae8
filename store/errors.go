package store

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound indicates ReplaceByKey (or another keyed lookup) found no
// entry starting at the given point.
var ErrKeyNotFound = errors.New("store: key not found")

// ErrNonDisjointInput indicates a constructor or bulk-load call received
// entries that violate I1 (pairwise disjointness) while
// config.Tunables.RequireDisjoint is enabled.
var ErrNonDisjointInput = errors.New("store: non-disjoint input")

func errorf(method, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("store: %s: %s: %w", method, inner, ErrKeyNotFound)
}

func errorfDisjoint(method, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("store: %s: %s: %w", method, inner, ErrNonDisjointInput)
}
