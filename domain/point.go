package domain

import "math"

// Kind tags which of the four Point variants a Point holds.
type Kind uint8

const (
	// Bottom is less than every Open/Point/Top point.
	Bottom Kind = iota
	// KindOpen is an exclusive boundary at its wrapped value.
	KindOpen
	// KindPoint is a concrete, inclusive point.
	KindPoint
	// Top is greater than every other point.
	Top
)

// openEpsilon is the bump added to OrderedHash for an Open point, per
// spec.md §4.1. It is a coordinate-projection detail only: correctness of
// containment/ordering never depends on it (see Compare/CompareAsBoundary).
const openEpsilon = 1e-9

// Point is a 1-D domain point: Bottom, Open(v), Point(v), or Top.
//
// Open(v) always means "v is excluded". Its effect depends on which role it
// plays in an Interval1D: as a start it excludes v from below (the interval
// begins strictly after v); as an end it excludes v from above (the interval
// ends strictly before v). CompareAsBoundary takes the role explicitly;
// Compare assumes the "start" role, which is also the role used to order
// byStart keys and matches spec.md §3's literal ordering description
// (Bottom < Open(v) < Point(v') for v' > v).
type Point struct {
	kind Kind
	v    Value
}

// MakeBottom returns the Bottom sentinel point.
func MakeBottom() Point { return Point{kind: Bottom} }

// MakeTop returns the Top sentinel point.
func MakeTop() Point { return Point{kind: Top} }

// MakePoint returns an inclusive point at v.
func MakePoint(v Value) Point { return Point{kind: KindPoint, v: v} }

// MakeOpen returns an exclusive boundary at v. It fails with
// ErrInvalidBoundary if v is Discrete, per spec.md §4.1: discrete domains
// express exclusive bounds via the adjacent inclusive point instead.
func MakeOpen(v Value) (Point, error) {
	if _, ok := IsDiscrete(v); ok {
		return Point{}, errorf("MakeOpen", "Open boundary not allowed for discrete value %v", v)
	}
	return Point{kind: KindOpen, v: v}, nil
}

// Kind reports the point's variant.
func (p Point) Kind() Kind { return p.kind }

// Value returns the wrapped value and true, or (nil, false) for Bottom/Top.
func (p Point) Value() (Value, bool) {
	if p.kind == Bottom || p.kind == Top {
		return nil, false
	}
	return p.v, true
}

// IsBottom reports whether p is the Bottom sentinel.
func (p Point) IsBottom() bool { return p.kind == Bottom }

// IsTop reports whether p is the Top sentinel.
func (p Point) IsTop() bool { return p.kind == Top }

// boundaryRank breaks ties between an Open and a Point boundary that wrap an
// equal underlying value, given the role (asStart) the point plays.
// As a start, Open(v) sorts after Point(v) (excludes v from below).
// As an end, Open(v) sorts before Point(v) (excludes v from above).
func (p Point) boundaryRank(asStart bool) int {
	if p.kind != KindOpen {
		return 0
	}
	if asStart {
		return 1
	}
	return -1
}

// CompareAsBoundary compares p and o where p plays role pAsStart (true for a
// start boundary, false for an end boundary) and o plays role oAsStart.
// Mixed-role comparisons (e.g. a start against a query point, or a start
// against an end for overlap detection) are well-defined: a bare query point
// is always constructed with MakePoint, whose rank is role-independent.
func (p Point) CompareAsBoundary(o Point, pAsStart, oAsStart bool) int {
	if p.kind == Bottom && o.kind == Bottom {
		return 0
	}
	if p.kind == Bottom {
		return -1
	}
	if o.kind == Bottom {
		return 1
	}
	if p.kind == Top && o.kind == Top {
		return 0
	}
	if p.kind == Top {
		return 1
	}
	if o.kind == Top {
		return -1
	}

	c := p.v.CompareTo(o.v)
	if c != 0 {
		return c
	}
	return p.boundaryRank(pAsStart) - o.boundaryRank(oAsStart)
}

// Compare orders p and o both in the "start" role, matching spec.md §3's
// literal ordering (Bottom < Open(v) < Point(v') for v' > v, Open(v) >
// Point(v)). Used for byStart key ordering and DomainN's lexicographic
// total order.
func (p Point) Compare(o Point) int { return p.CompareAsBoundary(o, true, true) }

// Less reports whether p sorts strictly before o in the start role.
func (p Point) Less(o Point) bool { return p.Compare(o) < 0 }

// Equal reports whether p and o denote the same point (role-independent:
// Open/Point only tie-break when compared in the same role, and equal Open
// points, equal Point points, or matching sentinels are always equal).
func (p Point) Equal(o Point) bool {
	if p.kind != o.kind {
		return false
	}
	if p.kind == Bottom || p.kind == Top {
		return true
	}
	return p.v.CompareTo(o.v) == 0
}

// OrderedHash projects p onto float64 per spec.md §4.1:
// Bottom -> -Inf, Top -> +Inf, Open(v) -> hash(v)+epsilon, Point(v) -> hash(v).
// This is a coordinate for the spatial index only; collisions are
// permitted and correctness never relies on it (I4, spec.md §9).
func (p Point) OrderedHash() float64 {
	switch p.kind {
	case Bottom:
		return math.Inf(-1)
	case Top:
		return math.Inf(1)
	case KindOpen:
		return p.v.OrderedHash() + openEpsilon
	default:
		return p.v.OrderedHash()
	}
}

// RightAdjacentValue returns the discrete successor of p's wrapped value, if
// p is an inclusive Point over a Discrete value.
func (p Point) RightAdjacentValue() (Value, bool) {
	if p.kind != KindPoint {
		return nil, false
	}
	d, ok := IsDiscrete(p.v)
	if !ok {
		return nil, false
	}
	return d.Successor()
}

// LeftAdjacentValue returns the discrete predecessor of p's wrapped value, if
// p is an inclusive Point over a Discrete value.
func (p Point) LeftAdjacentValue() (Value, bool) {
	if p.kind != KindPoint {
		return nil, false
	}
	d, ok := IsDiscrete(p.v)
	if !ok {
		return nil, false
	}
	return d.Predecessor()
}

// FromRightAdjacent returns the start boundary of the interval that begins
// immediately after one ending at end: Point(successor(v)) for discrete
// values, Open(v) for continuous values (excludes v, begins just after it).
// An Open(v) end (excludes v from above) is followed by Point(v). Bottom/Top
// are returned unchanged.
func FromRightAdjacent(end Point) Point {
	if end.kind == KindOpen {
		return MakePoint(end.v)
	}
	if end.kind != KindPoint {
		return end
	}
	if succ, ok := end.RightAdjacentValue(); ok {
		return MakePoint(succ)
	}
	if open, err := MakeOpen(end.v); err == nil {
		return open
	}
	return end
}

// ToLeftAdjacent returns the end boundary of the interval that ends
// immediately before one starting at start: Point(predecessor(v)) for
// discrete values, Open(v) for continuous values (excludes v, ends just
// before it, per the end-role interpretation of Open). An Open(v) start
// (excludes v from below) is preceded by Point(v). Bottom/Top are returned
// unchanged.
func ToLeftAdjacent(start Point) Point {
	if start.kind == KindOpen {
		return MakePoint(start.v)
	}
	if start.kind != KindPoint {
		return start
	}
	if pred, ok := start.LeftAdjacentValue(); ok {
		return MakePoint(pred)
	}
	if open, err := MakeOpen(start.v); err == nil {
		return open
	}
	return start
}
