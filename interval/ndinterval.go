package interval

import "github.com/rremple/intervalidus-sub004/domain"

// DomainN is a heterogeneous N-tuple of domain.Point, one per axis. It is
// used both as an interval boundary tuple (IntervalN.Start()/End()) and as a
// point-query coordinate.
type DomainN []domain.Point

// IntervalN is a Cartesian product of per-axis Interval1D: an N-dimensional
// interval. Containment/intersection/remainder are lifted from Interval1D
// axis-by-axis, per spec.md §4.3.
type IntervalN []Interval1D

// Dim returns the number of axes.
func (n IntervalN) Dim() int { return len(n) }

// Dim returns the number of axes.
func (d DomainN) Dim() int { return len(d) }

// ValidateArity returns ErrInvalidBoundary if a and b have different axis
// counts. Call at system boundaries (public store/diffsync entry points);
// internal helpers assume equal arity once validated.
func ValidateArity(a, b int) error {
	if a != b {
		return errorf("ValidateArity", "mismatched axis count %d vs %d", a, b)
	}
	return nil
}

// Start returns the DomainN of this interval's per-axis start boundaries.
func (n IntervalN) Start() DomainN {
	out := make(DomainN, len(n))
	for i, iv := range n {
		out[i] = iv.Start
	}
	return out
}

// End returns the DomainN of this interval's per-axis end boundaries.
func (n IntervalN) End() DomainN {
	out := make(DomainN, len(n))
	for i, iv := range n {
		out[i] = iv.End
	}
	return out
}

// Clone returns an independent copy of the per-axis interval slice.
func (n IntervalN) Clone() IntervalN {
	out := make(IntervalN, len(n))
	copy(out, n)
	return out
}

// Contains reports whether the point p lies within n on every axis.
// Precondition: len(p) == n.Dim() (validate at the caller's boundary).
func (n IntervalN) Contains(p DomainN) bool {
	for i, iv := range n {
		if !iv.ContainsPoint(p[i]) {
			return false
		}
	}
	return true
}

// Intersects reports whether n and other overlap on every axis.
// Precondition: n.Dim() == other.Dim().
func (n IntervalN) Intersects(other IntervalN) bool {
	for i, iv := range n {
		if !iv.Intersects(other[i]) {
			return false
		}
	}
	return true
}

// Intersection returns the per-axis overlap of n and other, or false if they
// do not intersect on some axis.
func (n IntervalN) Intersection(other IntervalN) (IntervalN, bool) {
	out := make(IntervalN, len(n))
	for i, iv := range n {
		sub, ok := iv.Intersection(other[i])
		if !ok {
			return nil, false
		}
		out[i] = sub
	}
	return out, true
}

// Equal reports structural equality axis-by-axis.
func (n IntervalN) Equal(other IntervalN) bool {
	if len(n) != len(other) {
		return false
	}
	for i := range n {
		if !n[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Compare gives DomainN a lexicographic total order by axis (axis 0 most
// significant), per spec.md §3.
func (d DomainN) Compare(o DomainN) int {
	for i := range d {
		if c := d[i].Compare(o[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Less reports whether d sorts strictly before o lexicographically.
func (d DomainN) Less(o DomainN) bool { return d.Compare(o) < 0 }

// Equal reports element-wise equality.
func (d DomainN) Equal(o DomainN) bool {
	if len(d) != len(o) {
		return false
	}
	for i := range d {
		if !d[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (d DomainN) Clone() DomainN {
	out := make(DomainN, len(d))
	copy(out, d)
	return out
}
