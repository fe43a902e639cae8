package store

import "github.com/rremple/intervalidus-sub004/interval"

// pointInterval builds a degenerate (zero-width) IntervalN at point, used to
// query the spatial index for get_at without a separate point-query path.
func pointInterval(point interval.DomainN) interval.IntervalN {
	out := make(interval.IntervalN, len(point))
	for i, p := range point {
		out[i] = interval.Interval1D{Start: p, End: p}
	}
	return out
}

// GetAt returns the value of the stored entry whose interval contains
// point, if any. By I1 at most one entry can match.
func (s *DimensionalStore) GetAt(point interval.DomainN) (interface{}, bool) {
	s.lock()
	defer s.unlock()
	for _, e := range s.intersectingRaw(pointInterval(point)) {
		if e.Interval.Contains(point) {
			return e.Value, true
		}
	}
	return nil, false
}

// GetIntersecting returns every stored entry whose interval intersects
// target, deduplicated.
func (s *DimensionalStore) GetIntersecting(target interval.IntervalN) []ValidData {
	s.lock()
	defer s.unlock()
	hits := s.intersectingRaw(target)
	out := make([]ValidData, len(hits))
	for i, e := range hits {
		out[i] = *e
	}
	return out
}

// Domain returns the compressed cover of all stored intervals: the current
// entries' intervals, which the store's compression invariant (I2) already
// keeps maximally merged.
func (s *DimensionalStore) Domain() []interval.IntervalN {
	s.lock()
	defer s.unlock()
	es := s.allEntries()
	out := make([]interval.IntervalN, len(es))
	for i, e := range es {
		out[i] = e.Interval.Clone()
	}
	return out
}

// DomainComplement returns the disjoint pieces of the universe not covered
// by Domain, by subtracting every stored interval from the all-axes
// unbounded interval via the same N-D remainder construction update_or_remove
// uses.
func (s *DimensionalStore) DomainComplement() []interval.IntervalN {
	s.lock()
	defer s.unlock()
	universal := make(interval.IntervalN, s.dim)
	for i := range universal {
		universal[i] = interval.Unbounded()
	}
	pieces := []interval.IntervalN{universal}
	for _, e := range s.allEntries() {
		var next []interval.IntervalN
		for _, p := range pieces {
			kept, _, hasExcluded := p.RemainderN(e.Interval)
			if !hasExcluded {
				next = append(next, p)
				continue
			}
			next = append(next, kept...)
		}
		pieces = next
	}
	return pieces
}

// Intervals returns every interval currently mapped to a value equal to v
// (per the store's EqualFunc).
func (s *DimensionalStore) Intervals(v interface{}) []interval.IntervalN {
	s.lock()
	defer s.unlock()
	es := s.bucketFor(v)
	out := make([]interval.IntervalN, len(es))
	for i, e := range es {
		out[i] = e.Interval.Clone()
	}
	return out
}
