package store

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/rremple/intervalidus-sub004/interval"
)

func sprintValue(v interface{}) string { return fmt.Sprintf("%#v", v) }

// addRaw inserts e into all three indices without checking disjointness or
// triggering compression; callers are responsible for both.
func (s *DimensionalStore) addRaw(e *ValidData) {
	s.byStart.ReplaceOrInsert(e)
	key := s.keyOf(e.Value)
	b, ok := s.byValue[key]
	if !ok {
		b = &valueBucket{sample: e.Value, entries: make(map[uuid.UUID]*ValidData)}
		s.byValue[key] = b
	}
	b.entries[e.ID] = e
	s.searchTree.Insert(boxOf(e.Interval), e.ID, e)
}

// removeRaw deletes e from all three indices.
func (s *DimensionalStore) removeRaw(e *ValidData) {
	s.byStart.Delete(e)
	key := s.keyOf(e.Value)
	if b, ok := s.byValue[key]; ok {
		delete(b.entries, e.ID)
		if len(b.entries) == 0 {
			delete(s.byValue, key)
		}
	}
	s.searchTree.Remove(boxOf(e.Interval), e.ID)
}

// allEntries returns every stored entry, in ascending-start order.
func (s *DimensionalStore) allEntries() []*ValidData {
	out := make([]*ValidData, 0, s.byStart.Len())
	s.byStart.Ascend(func(e *ValidData) bool {
		out = append(out, e)
		return true
	})
	return out
}

// intersectingRaw returns every stored entry whose interval truly
// intersects target, deduplicated by ID. It queries the spatial index
// unless config.Tunables.NoSearchTree is set, in which case it falls back
// to a linear scan over byStart; both paths must (and do) produce identical
// results, since the index query is only ever an over-approximation that
// this method re-filters with true IntervalN.Intersects (I4, spec.md §9).
func (s *DimensionalStore) intersectingRaw(target interval.IntervalN) []*ValidData {
	if s.tun.NoSearchTree {
		var out []*ValidData
		s.byStart.Ascend(func(e *ValidData) bool {
			if e.Interval.Intersects(target) {
				out = append(out, e)
			}
			return true
		})
		return out
	}
	hits := s.searchTree.Query(boxOf(target))
	seen := make(map[uuid.UUID]bool, len(hits))
	out := make([]*ValidData, 0, len(hits))
	for _, h := range hits {
		if seen[h.ID] {
			continue
		}
		seen[h.ID] = true
		e, ok := h.Data.(*ValidData)
		if !ok || !e.Interval.Intersects(target) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// bucketFor returns the entries currently holding value v (by key+equal
// match), ascending by start.
func (s *DimensionalStore) bucketFor(v interface{}) []*ValidData {
	b, ok := s.byValue[s.keyOf(v)]
	if !ok || !s.equal(b.sample, v) {
		return nil
	}
	out := make([]*ValidData, 0, len(b.entries))
	for _, e := range b.entries {
		out = append(out, e)
	}
	sortByStart(out)
	return out
}

// distinctValues returns one representative ValidData.Value per byValue
// bucket, used by CompressAll/RecompressAll to iterate every distinct value.
func (s *DimensionalStore) distinctValues() []interface{} {
	out := make([]interface{}, 0, len(s.byValue))
	for _, b := range s.byValue {
		out = append(out, b.sample)
	}
	return out
}

func sortByStart(es []*ValidData) {
	sort.Slice(es, func(i, j int) bool {
		return es[i].Interval.Start().Less(es[j].Interval.Start())
	})
}
