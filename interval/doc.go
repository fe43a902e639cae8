// Package interval implements the 1-D and N-D interval algebra described in
// spec.md §4.2–§4.3: containment, intersection, remainder (set difference),
// adjacency, and the per-axis lift of all of these onto heterogeneous
// N-dimensional intervals.
//
// Interval1D pairs two domain.Point boundaries (start, end) with the
// invariant start <= end (compared in their respective start/end roles).
// IntervalN is a slice of Interval1D, one per axis; DomainN is the matching
// slice of domain.Point used for interval starts/ends and for point queries.
package interval
