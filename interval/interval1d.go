package interval

import "github.com/rremple/intervalidus-sub004/domain"

// Interval1D is a single-axis interval [start, end] over domain.Point
// boundaries, with the invariant start <= end (as boundary roles: start
// compared in the start role, end in the end role — see domain.Point).
type Interval1D struct {
	Start domain.Point
	End   domain.Point
}

// NewInterval1D builds an Interval1D, failing with ErrInvalidBoundary if
// start sorts strictly after end.
func NewInterval1D(start, end domain.Point) (Interval1D, error) {
	iv := Interval1D{Start: start, End: end}
	if start.CompareAsBoundary(end, true, false) > 0 {
		return Interval1D{}, errorf("NewInterval1D", "start %v after end %v", start, end)
	}
	return iv, nil
}

// From returns the unbounded-below-to-end interval (-inf, end].
func From(end domain.Point) Interval1D { return Interval1D{Start: domain.MakeBottom(), End: end} }

// To returns the start-to-unbounded-above interval [start, +inf).
func To(start domain.Point) Interval1D { return Interval1D{Start: start, End: domain.MakeTop()} }

// Unbounded returns the interval covering the entire domain.
func Unbounded() Interval1D { return Interval1D{Start: domain.MakeBottom(), End: domain.MakeTop()} }

// Contains reports whether x lies within iv (inclusive of non-excluded
// boundaries).
func (iv Interval1D) Contains(x domain.Value) bool {
	p := domain.MakePoint(x)
	return iv.Start.CompareAsBoundary(p, true, true) <= 0 &&
		p.CompareAsBoundary(iv.End, true, false) <= 0
}

// ContainsPoint reports whether the boundary point p (itself an inclusive
// query point) lies within iv. Used internally when comparing against
// derived boundaries rather than raw values.
func (iv Interval1D) ContainsPoint(p domain.Point) bool {
	return iv.Start.CompareAsBoundary(p, true, true) <= 0 &&
		p.CompareAsBoundary(iv.End, true, false) <= 0
}

// Intersects reports whether iv and other share at least one point.
func (iv Interval1D) Intersects(other Interval1D) bool {
	// iv.Start <= other.End (end role) and other.Start <= iv.End (end role).
	return iv.Start.CompareAsBoundary(other.End, true, false) <= 0 &&
		other.Start.CompareAsBoundary(iv.End, true, false) <= 0
}

// Intersection returns the overlap of iv and other, and false if they do
// not intersect.
func (iv Interval1D) Intersection(other Interval1D) (Interval1D, bool) {
	if !iv.Intersects(other) {
		return Interval1D{}, false
	}
	start := iv.Start
	if other.Start.CompareAsBoundary(start, true, true) > 0 {
		start = other.Start
	}
	end := iv.End
	if other.End.CompareAsBoundary(end, false, false) < 0 {
		end = other.End
	}
	return Interval1D{Start: start, End: end}, true
}

// Before reports whether iv lies entirely before other (with no overlap;
// they may or may not be adjacent).
func (iv Interval1D) Before(other Interval1D) bool {
	return iv.End.CompareAsBoundary(other.Start, false, true) < 0
}

// After reports whether iv lies entirely after other.
func (iv Interval1D) After(other Interval1D) bool { return other.Before(iv) }

// AdjacentTo reports whether iv and other are disjoint but share no gap:
// the point immediately after iv.End equals other.Start (or symmetrically
// for other before iv), per spec.md §4.2.
func (iv Interval1D) AdjacentTo(other Interval1D) bool {
	if iv.Before(other) {
		next := domain.FromRightAdjacent(iv.End)
		return next.CompareAsBoundary(other.Start, true, true) == 0
	}
	if other.Before(iv) {
		next := domain.FromRightAdjacent(other.End)
		return next.CompareAsBoundary(iv.Start, true, true) == 0
	}
	return false
}

// UnionIfAdjacent merges iv and other into their spanning interval if they
// are adjacent or intersecting, and reports whether a merge occurred.
func (iv Interval1D) UnionIfAdjacent(other Interval1D) (Interval1D, bool) {
	if !iv.Intersects(other) && !iv.AdjacentTo(other) {
		return Interval1D{}, false
	}
	start := iv.Start
	if other.Start.CompareAsBoundary(start, true, true) < 0 {
		start = other.Start
	}
	end := iv.End
	if other.End.CompareAsBoundary(end, false, false) > 0 {
		end = other.End
	}
	return Interval1D{Start: start, End: end}, true
}

// Between returns the gap strictly between a (ending first) and b (starting
// later), per spec.md §4.2: from_right_adjacent(a.End) .. to_left_adjacent(b.Start).
// ok is false if a and b overlap or are already adjacent (no gap exists).
func Between(a, b Interval1D) (Interval1D, bool) {
	if !a.Before(b) || a.AdjacentTo(b) {
		return Interval1D{}, false
	}
	start := domain.FromRightAdjacent(a.End)
	end := domain.ToLeftAdjacent(b.Start)
	return Interval1D{Start: start, End: end}, true
}

// Equal reports structural equality of boundaries.
func (iv Interval1D) Equal(other Interval1D) bool {
	return iv.Start.Equal(other.Start) && iv.End.Equal(other.End)
}
