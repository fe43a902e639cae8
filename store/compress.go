package store

import (
	"github.com/google/uuid"

	"github.com/rremple/intervalidus-sub004/interval"
)

// mergeableAxis reports the single axis, if any, on which a and b are
// adjacent while being equal on every other axis — the merge condition
// compress(v) repeatedly applies (spec.md §4.5).
func mergeableAxis(a, b interval.IntervalN) (int, bool) {
	for k := range a {
		if !a[k].AdjacentTo(b[k]) {
			continue
		}
		same := true
		for j := range a {
			if j == k {
				continue
			}
			if !a[j].Equal(b[j]) {
				same = false
				break
			}
		}
		if same {
			return k, true
		}
	}
	return 0, false
}

// mergeEntries replaces a and b with a single entry spanning their union on
// axis, keeping every other axis's shared bound.
func (s *DimensionalStore) mergeEntries(a, b *ValidData, axis int, v interface{}) {
	union, _ := a.Interval[axis].UnionIfAdjacent(b.Interval[axis])
	newIv := a.Interval.Clone()
	newIv[axis] = union
	s.removeRaw(a)
	s.removeRaw(b)
	s.addRaw(&ValidData{ID: uuid.New(), Interval: newIv, Value: v})
}

// compressLocked merges every value-equal, single-axis-adjacent pair of
// entries holding v until no further merge applies. Caller must hold s.mu.
func (s *DimensionalStore) compressLocked(v interface{}) {
	for {
		es := s.bucketFor(v)
		merged := false
		for i := 0; i < len(es) && !merged; i++ {
			for j := i + 1; j < len(es); j++ {
				if axis, ok := mergeableAxis(es[i].Interval, es[j].Interval); ok {
					s.mergeEntries(es[i], es[j], axis, v)
					merged = true
					break
				}
			}
		}
		if !merged {
			return
		}
	}
}

// Compress merges all value-equal entries holding v that are adjacent along
// a single axis while equal on all others, iterating to a fixpoint.
func (s *DimensionalStore) Compress(v interface{}) {
	s.lock()
	defer s.unlock()
	s.compressLocked(v)
}

// CompressAll runs Compress for every distinct value currently stored.
func (s *DimensionalStore) CompressAll() {
	s.lock()
	defer s.unlock()
	for _, v := range s.distinctValues() {
		s.compressLocked(v)
	}
}

// RecompressAll decomposes the store into its unique atomic partition — each
// stored interval intersected against the Cartesian product of every unique
// per-axis interval appearing in the cover — then runs CompressAll. The
// result is a canonical physical form independent of insertion history.
func (s *DimensionalStore) RecompressAll() {
	s.lock()
	defer s.unlock()
	es := s.allEntries()
	if len(es) == 0 {
		return
	}
	cells := atomicCells(s.dim, es)

	type atom struct {
		iv interval.IntervalN
		v  interface{}
	}
	var atoms []atom
	for _, e := range es {
		for _, cell := range cells {
			if sub, ok := e.Interval.Intersection(cell); ok {
				atoms = append(atoms, atom{iv: sub, v: e.Value})
			}
		}
	}

	for _, e := range es {
		s.removeRaw(e)
	}
	for _, a := range atoms {
		s.addRaw(&ValidData{ID: uuid.New(), Interval: a.iv, Value: a.v})
	}
	for _, v := range s.distinctValues() {
		s.compressLocked(v)
	}
}
