package versioned

import "errors"

// ErrVersionOutOfRange indicates SetCurrentVersion or ResetToVersion was
// given a version at or past unapprovedStart, or at or below BottomVersion.
var ErrVersionOutOfRange = errors.New("versioned: version out of range")

// ErrVersionExhausted indicates IncrementCurrentVersion would advance
// current_version into the reserved unapproved range.
var ErrVersionExhausted = errors.New("versioned: version range exhausted")
