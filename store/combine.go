package store

import "github.com/google/uuid"

// Pair is the value type Zip/ZipAll produce at each sub-interval where both
// stores hold a value.
type Pair struct {
	First  interface{}
	Second interface{}
}

// Zip returns a new store holding Pair{v, v2} at every sub-interval of the
// common refinement of s and other where both have a value.
func (s *DimensionalStore) Zip(other *DimensionalStore) *DimensionalStore {
	s.lock()
	defer s.unlock()
	if other != s {
		other.lock()
		defer other.unlock()
	}

	selfEs, otherEs := s.allEntries(), other.allEntries()
	out := New(s.dim, WithTunables(s.tun), WithLogger(s.logger))
	for _, cell := range atomicCells(s.dim, selfEs, otherEs) {
		v1, ok1 := valueCovering(selfEs, cell)
		if !ok1 {
			continue
		}
		v2, ok2 := valueCovering(otherEs, cell)
		if !ok2 {
			continue
		}
		out.addRaw(&ValidData{ID: uuid.New(), Interval: cell, Value: Pair{First: v1, Second: v2}})
	}
	out.CompressAll()
	return out
}

// ZipAll is Zip, but substitutes thisDefault/thatDefault for the side that
// lacks a value at a sub-interval where at least one side has one.
func (s *DimensionalStore) ZipAll(other *DimensionalStore, thisDefault, thatDefault interface{}) *DimensionalStore {
	s.lock()
	defer s.unlock()
	if other != s {
		other.lock()
		defer other.unlock()
	}

	selfEs, otherEs := s.allEntries(), other.allEntries()
	out := New(s.dim, WithTunables(s.tun), WithLogger(s.logger))
	for _, cell := range atomicCells(s.dim, selfEs, otherEs) {
		v1, ok1 := valueCovering(selfEs, cell)
		v2, ok2 := valueCovering(otherEs, cell)
		if !ok1 && !ok2 {
			continue
		}
		if !ok1 {
			v1 = thisDefault
		}
		if !ok2 {
			v2 = thatDefault
		}
		out.addRaw(&ValidData{ID: uuid.New(), Interval: cell, Value: Pair{First: v1, Second: v2}})
	}
	out.CompressAll()
	return out
}

// Merge returns the union cover of s and other, resolving value conflicts at
// shared sub-intervals via f(selfValue, otherValue); elsewhere the present
// side's value is taken verbatim.
func (s *DimensionalStore) Merge(other *DimensionalStore, f func(a, b interface{}) interface{}) *DimensionalStore {
	s.lock()
	defer s.unlock()
	if other != s {
		other.lock()
		defer other.unlock()
	}

	selfEs, otherEs := s.allEntries(), other.allEntries()
	out := New(s.dim, WithTunables(s.tun), WithLogger(s.logger))
	for _, cell := range atomicCells(s.dim, selfEs, otherEs) {
		v1, ok1 := valueCovering(selfEs, cell)
		v2, ok2 := valueCovering(otherEs, cell)
		switch {
		case ok1 && ok2:
			out.addRaw(&ValidData{ID: uuid.New(), Interval: cell, Value: f(v1, v2)})
		case ok1:
			out.addRaw(&ValidData{ID: uuid.New(), Interval: cell, Value: v1})
		case ok2:
			out.addRaw(&ValidData{ID: uuid.New(), Interval: cell, Value: v2})
		}
	}
	out.CompressAll()
	return out
}
