// Package clock provides the abstract time collaborator required by
// spec.md §6 for the versioned overlay: production code uses the system
// wall clock, tests inject a fixed simulated clock.
//
// Clock is a thin re-export of github.com/benbjohnson/clock.Clock so
// callers need not import that package directly to satisfy
// versioned.New's Clock parameter.
package clock

import "github.com/benbjohnson/clock"

// Clock reports the current time. Implementations: New() for production,
// NewMock() for deterministic tests.
type Clock = clock.Clock

// New returns the system wall clock.
func New() Clock { return clock.New() }

// Mock is a controllable Clock for tests.
type Mock = clock.Mock

// NewMock returns a Clock whose Now() is fixed until advanced by the
// caller via Mock.Add/Set, matching spec.md §6's "tests inject a fixed
// simulated clock" requirement.
func NewMock() *Mock { return clock.NewMock() }
