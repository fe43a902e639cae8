package store

import "github.com/rremple/intervalidus-sub004/interval"

// refineAxis splits every piece of partition that overlaps seg into its
// exact overlap with seg plus whatever of the piece seg didn't cover,
// reusing Interval1D.Remainder/Intersection — the same 1-D primitives
// RemainderN composes across axes.
func refineAxis(partition []interval.Interval1D, seg interval.Interval1D) []interval.Interval1D {
	next := make([]interval.Interval1D, 0, len(partition)+1)
	for _, p := range partition {
		inter, ok := p.Intersection(seg)
		if !ok {
			next = append(next, p)
			continue
		}
		rem := p.Remainder(seg)
		next = append(next, rem.Pieces...)
		next = append(next, inter)
	}
	return next
}

// atomicCells returns the common refinement, axis by axis, of every
// Interval1D appearing on that axis across all given entry sets: starting
// from the whole unbounded axis, each observed segment is folded in via
// refineAxis until the partition is exact. The Cartesian product across
// axes is the atomic grid RecompressAll (one entry set) and
// Zip/ZipAll/Merge (two entry sets) decompose into.
func atomicCells(dim int, entrySets ...[]*ValidData) []interval.IntervalN {
	axisParts := make([][]interval.Interval1D, dim)
	for axis := 0; axis < dim; axis++ {
		partition := []interval.Interval1D{interval.Unbounded()}
		for _, es := range entrySets {
			for _, e := range es {
				partition = refineAxis(partition, e.Interval[axis])
			}
		}
		axisParts[axis] = partition
	}

	var cells []interval.IntervalN
	cur := make(interval.IntervalN, dim)
	var walk func(axis int)
	walk = func(axis int) {
		if axis == dim {
			cell := make(interval.IntervalN, dim)
			copy(cell, cur)
			cells = append(cells, cell)
			return
		}
		for _, seg := range axisParts[axis] {
			cur[axis] = seg
			walk(axis + 1)
		}
	}
	walk(0)
	return cells
}

// valueCovering returns the value of the entry in es whose interval exactly
// covers cell. A cell drawn from atomicCells always either exactly
// coincides with an entry's intersection or falls entirely outside it,
// since cell's per-axis segments are themselves drawn from the entries' own
// boundaries.
func valueCovering(es []*ValidData, cell interval.IntervalN) (interface{}, bool) {
	for _, e := range es {
		if sub, ok := e.Interval.Intersection(cell); ok && sub.Equal(cell) {
			return e.Value, true
		}
	}
	return nil, false
}
