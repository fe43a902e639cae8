// Package versioned implements the versioned overlay of spec.md §4.7: it
// lifts a d-dimensional store.DimensionalStore into one of dimension d+1,
// whose trailing axis is an integer "version", and exposes an approval
// workflow (set/remove under a VersionSelection, approve/approve_all,
// increment/set/reset current version, collapse_version_history).
//
// A version axis segment [w, Top) records "this value has been true from
// version w onward"; approving an unapproved write moves w from
// unapprovedStart down to currentVersion, and a plain point read at a
// chosen version selects whichever segment currently contains that point —
// the same disjoint-interval carving store.DimensionalStore already
// performs on every axis handles layering two pending writes over one
// committed one without any extra bookkeeping.
package versioned
