package versioned

import "math"

// Version is a version number on the overlay's trailing version axis.
type Version int32

// BottomVersion is strictly less than every version a store can be set to;
// SetCurrentVersion/ResetToVersion reject it, matching version_axis's Bottom
// sentinel in spec.md §4.7.
const BottomVersion Version = math.MinInt32

// DefaultUnapprovedStart is the reserved lower bound of the unapproved range
// used by New unless WithUnapprovedStart overrides it: comfortably above any
// version number a long-lived store will reach through ordinary increments,
// while leaving currentVersion room to grow before colliding with it.
const DefaultUnapprovedStart Version = 1 << 20

type selKind uint8

const (
	selCurrent selKind = iota
	selUnapproved
	selAt
)

// Selection picks which layer of the version axis an operation reads from
// or writes to (spec.md §4.7's VersionSelection): the current approved
// state, the pending unapproved state, or an exact historical version.
type Selection struct {
	kind selKind
	at   Version
}

// SelectCurrent reads/writes the current (approved) version.
func SelectCurrent() Selection { return Selection{kind: selCurrent} }

// SelectUnapproved reads/writes the reserved pending-approval version.
func SelectUnapproved() Selection { return Selection{kind: selUnapproved} }

// SelectAt reads/writes the exact version v, committed or not.
func SelectAt(v Version) Selection { return Selection{kind: selAt, at: v} }
