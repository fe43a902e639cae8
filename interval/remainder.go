package interval

import "github.com/rremple/intervalidus-sub004/domain"

// RemainderKind tags which shape a 1-D remainder (self \ other) takes.
type RemainderKind uint8

const (
	// RemainderNone means other fully covers self: self \ other is empty.
	RemainderNone RemainderKind = iota
	// RemainderSingle means other clipped only one side of self.
	RemainderSingle
	// RemainderSplit means other lies strictly inside self, splitting it
	// into two pieces.
	RemainderSplit
)

// Remainder1D is the result of Interval1D.Remainder: self \ other.
type Remainder1D struct {
	Kind   RemainderKind
	Pieces []Interval1D // len 0 for None, 1 for Single, 2 for Split
}

// Remainder computes self \ other, the set difference restricted to this
// axis, per spec.md §4.2:
//   - no intersection                    -> Single(self)
//   - other fully contains self          -> None
//   - other clips only start or end      -> Single(remaining piece)
//   - other lies strictly inside self    -> Split(left, right)
func (self Interval1D) Remainder(other Interval1D) Remainder1D {
	inter, ok := self.Intersection(other)
	if !ok {
		return Remainder1D{Kind: RemainderSingle, Pieces: []Interval1D{self}}
	}
	startsEqual := inter.Start.CompareAsBoundary(self.Start, true, true) == 0
	endsEqual := inter.End.CompareAsBoundary(self.End, false, false) == 0

	switch {
	case startsEqual && endsEqual:
		// other fully contains self (the overlap equals the whole of self).
		return Remainder1D{Kind: RemainderNone}
	case startsEqual && !endsEqual:
		// other clipped the start; the remainder is the tail after inter.
		tail := Interval1D{Start: domain.FromRightAdjacent(inter.End), End: self.End}
		return Remainder1D{Kind: RemainderSingle, Pieces: []Interval1D{tail}}
	case !startsEqual && endsEqual:
		// other clipped the end; the remainder is the head before inter.
		head := Interval1D{Start: self.Start, End: domain.ToLeftAdjacent(inter.Start)}
		return Remainder1D{Kind: RemainderSingle, Pieces: []Interval1D{head}}
	default:
		// other lies strictly inside self: two remaining pieces.
		left := Interval1D{Start: self.Start, End: domain.ToLeftAdjacent(inter.Start)}
		right := Interval1D{Start: domain.FromRightAdjacent(inter.End), End: self.End}
		return Remainder1D{Kind: RemainderSplit, Pieces: []Interval1D{left, right}}
	}
}

// Excluded returns the sub-interval of self that Remainder removed (i.e.
// self ∩ other expressed as a piece of self), used by the N-D engine to
// compute the excluded product piece per spec.md §4.3.
func (self Interval1D) Excluded(other Interval1D) (Interval1D, bool) {
	return self.Intersection(other)
}
