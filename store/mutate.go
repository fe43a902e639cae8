package store

import (
	"github.com/google/uuid"

	"github.com/rremple/intervalidus-sub004/interval"
)

// updateOrRemove is the central algorithm of spec.md §4.5: for every stored
// entry overlapping target, carve off the part inside target (the excluded
// piece) and either replace it (f returns a value) or drop it, keeping every
// other part of the entry unchanged. It is total: every branch leaves all
// three indices consistent before returning.
//
// f receives the old value at the excluded piece and returns the piece's new
// value, or (nil, false) to remove it outright.
func (s *DimensionalStore) updateOrRemove(target interval.IntervalN, f func(old interface{}) (interface{}, bool)) {
	touched := make(map[string]interface{})
	for _, e := range s.intersectingRaw(target) {
		// e came from intersectingRaw, so e.Interval truly intersects
		// target: RemainderN's hasExcluded is guaranteed true here.
		kept, excluded, _ := e.Interval.RemainderN(target)
		v := e.Value
		s.removeRaw(e)
		for _, sub := range kept {
			s.addRaw(&ValidData{ID: uuid.New(), Interval: sub, Value: v})
		}
		touched[s.keyOf(v)] = v
		if newVal, ok := f(v); ok {
			s.addRaw(&ValidData{ID: uuid.New(), Interval: excluded, Value: newVal})
			touched[s.keyOf(newVal)] = newVal
		}
	}
	for _, v := range touched {
		s.compressLocked(v)
	}
}

// Set makes data.Interval authoritative over its region: anything stored
// there is cleared first, then data is added and its value recompressed.
func (s *DimensionalStore) Set(data ValidData) {
	s.lock()
	defer s.unlock()
	s.updateOrRemove(data.Interval, discardAll)
	s.addEntry(data)
	s.compressLocked(data.Value)
}

// SetMany is the fold of Set over xs in order: later entries override
// earlier ones where they overlap.
func (s *DimensionalStore) SetMany(xs []ValidData) {
	for _, data := range xs {
		s.Set(data)
	}
}

// SetIfNoConflict adds data only if its interval does not intersect any
// existing entry, reporting whether the add happened.
func (s *DimensionalStore) SetIfNoConflict(data ValidData) bool {
	s.lock()
	defer s.unlock()
	if len(s.intersectingRaw(data.Interval)) > 0 {
		return false
	}
	s.addEntry(data)
	s.compressLocked(data.Value)
	return true
}

// Update replaces the value at every stored sub-interval intersecting
// data.Interval with data.Value; it does not add value where nothing was
// previously stored (that is Fill's job).
func (s *DimensionalStore) Update(data ValidData) {
	s.lock()
	defer s.unlock()
	s.updateOrRemove(data.Interval, func(interface{}) (interface{}, bool) { return data.Value, true })
}

// UpdateWith generalizes Update: f receives the old value of every stored
// sub-interval intersecting target and returns its replacement, or
// (nil, false) to remove that sub-interval instead. Exported so higher-level
// wrappers (multiset, versioned) can express their own per-value transforms
// without duplicating the central algorithm.
func (s *DimensionalStore) UpdateWith(target interval.IntervalN, f func(old interface{}) (interface{}, bool)) {
	s.lock()
	defer s.unlock()
	s.updateOrRemove(target, f)
}

// Remove clears every stored sub-interval intersecting target.
func (s *DimensionalStore) Remove(target interval.IntervalN) {
	s.lock()
	defer s.unlock()
	s.updateOrRemove(target, discardAll)
}

// RemoveMany is the fold of Remove over xs.
func (s *DimensionalStore) RemoveMany(xs []interval.IntervalN) {
	for _, t := range xs {
		s.Remove(t)
	}
}

// RemoveValue removes every interval currently mapped to a value equal to v.
func (s *DimensionalStore) RemoveValue(v interface{}) {
	s.lock()
	es := s.bucketFor(v)
	ivs := make([]interval.IntervalN, len(es))
	for i, e := range es {
		ivs[i] = e.Interval.Clone()
	}
	s.unlock()
	for _, iv := range ivs {
		s.Remove(iv)
	}
}

// Replace clears old, then makes newData authoritative over its own region.
func (s *DimensionalStore) Replace(old interval.IntervalN, newData ValidData) {
	s.lock()
	defer s.unlock()
	s.updateOrRemove(old, discardAll)
	s.updateOrRemove(newData.Interval, discardAll)
	s.addEntry(newData)
	s.compressLocked(newData.Value)
}

// ReplaceByKey replaces the unique entry whose interval starts at
// startPoint, failing with ErrKeyNotFound if none does.
func (s *DimensionalStore) ReplaceByKey(startPoint interval.DomainN, newData ValidData) error {
	s.lock()
	defer s.unlock()
	sentinel := &ValidData{Interval: pointInterval(startPoint)}
	old, ok := s.byStart.Get(sentinel)
	if !ok {
		return errorf("ReplaceByKey", "no entry starts at %v", startPoint)
	}
	s.updateOrRemove(old.Interval, discardAll)
	s.updateOrRemove(newData.Interval, discardAll)
	s.addEntry(newData)
	s.compressLocked(newData.Value)
	return nil
}

// Fill adds (sub, data.Value) for every sub-interval of data.Interval not
// already covered by some stored entry.
func (s *DimensionalStore) Fill(data ValidData) {
	s.lock()
	defer s.unlock()
	pieces := []interval.IntervalN{data.Interval.Clone()}
	for _, e := range s.intersectingRaw(data.Interval) {
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
	for _, p := range pieces {
		s.addRaw(&ValidData{ID: uuid.New(), Interval: p, Value: data.Value})
	}
	s.compressLocked(data.Value)
}

// addEntry adds data as a fresh entry, assigning an ID if none was set.
func (s *DimensionalStore) addEntry(data ValidData) {
	id := data.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	s.addRaw(&ValidData{ID: id, Interval: data.Interval.Clone(), Value: data.Value})
}

func discardAll(interface{}) (interface{}, bool) { return nil, false }
