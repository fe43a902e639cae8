package interval

// RemainderN computes the N-D decomposition of self \ other described in
// spec.md §4.3: self and other must share the same axis count (validated by
// the caller). It returns the kept pieces (self minus the excluded region),
// the excluded piece (self ∩ other, axis-wise), and whether an excluded
// region exists at all (false when self and other do not overlap on some
// axis, in which case kept is just [self] unchanged).
//
// Construction: for each axis i, let R_i be self[i].Remainder(other[i])
// (0, 1 or 2 pieces) and X_i be the axis-wise intersection piece. The full
// partition of self is the Cartesian product, over axes, of
// (R_i.Pieces ++ [X_i]); the all-X_i combination is exactly the excluded
// N-D piece and is omitted from kept. Because each axis only contributes as
// many segments as Remainder actually produced (0-2, plus the exclusion),
// this already enumerates the minimal ≤3^N-1 partition spec.md §4.3
// requires — the same construction serves both the "brute force" and
// "topological" code paths named in spec.md §6/§9: there is no further
// pruning a named-case dispatch could add that per-axis segment counts do
// not already provide.
func (self IntervalN) RemainderN(other IntervalN) (kept []IntervalN, excluded IntervalN, hasExcluded bool) {
	n := len(self)
	segsPerAxis := make([][]Interval1D, n)
	exclAxis := make([]Interval1D, n)

	for i := range self {
		inter, ok := self[i].Intersection(other[i])
		if !ok {
			return []IntervalN{self.Clone()}, nil, false
		}
		exclAxis[i] = inter
		rem := self[i].Remainder(other[i])
		segs := make([]Interval1D, 0, len(rem.Pieces)+1)
		segs = append(segs, rem.Pieces...)
		segs = append(segs, inter) // exclusion segment is always last
		segsPerAxis[i] = segs
	}

	combo := make([]Interval1D, n)
	var walk func(axis int, allExcl bool)
	walk = func(axis int, allExcl bool) {
		if axis == n {
			if allExcl {
				return // this combination is the excluded piece itself
			}
			piece := make(IntervalN, n)
			copy(piece, combo)
			kept = append(kept, piece)
			return
		}
		segs := segsPerAxis[axis]
		lastIdx := len(segs) - 1
		for idx, seg := range segs {
			combo[axis] = seg
			walk(axis+1, allExcl && idx == lastIdx)
		}
	}
	walk(0, true)

	return kept, IntervalN(exclAxis), true
}
