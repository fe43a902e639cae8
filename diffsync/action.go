package diffsync

import "github.com/rremple/intervalidus-sub004/interval"

// Kind tags which change an Action represents.
type Kind string

const (
	// ActionCreate adds a new entry at Interval with Value.
	ActionCreate Kind = "create"
	// ActionUpdate replaces the value of the entry keyed by Key with Value,
	// and/or its interval with Interval (both carried for replay
	// convenience; Key identifies which entry to touch).
	ActionUpdate Kind = "update"
	// ActionDelete removes the entry keyed by Key. Interval/Value are zero.
	ActionDelete Kind = "delete"
)

// Action is one step in a diff stream: applying every Action in order to the
// "old" store reproduces the "new" store's observable contents.
//
// Key is the entry's interval start (spec.md §4.5: "Keys are interval
// starts"), stable across an update that only changes Value.
type Action struct {
	Kind     Kind               `json:"kind"`
	Key      interval.DomainN   `json:"key"`
	Interval interval.IntervalN `json:"interval,omitempty"`
	Value    interface{}        `json:"value,omitempty"`
}
