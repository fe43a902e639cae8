package multiset

import (
	"github.com/rremple/intervalidus-sub004/interval"
	"github.com/rremple/intervalidus-sub004/store"
)

// Store is a DimensionalStore specialized to Set-valued entries.
type Store struct {
	*store.DimensionalStore
	elemKey ElemKeyFunc
}

func setsEqual(a, b interface{}) bool {
	sa, aok := a.(Set)
	sb, bok := b.(Set)
	if !aok || !bok {
		return false
	}
	return sa.Equal(sb)
}

// New constructs an empty multiset Store over dim axes. elemKey derives the
// identity key used to deduplicate elements within a sub-interval's Set.
func New(dim int, elemKey ElemKeyFunc, opts ...store.Option) *Store {
	opts = append([]store.Option{store.WithEqual(setsEqual)}, opts...)
	return &Store{DimensionalStore: store.New(dim, opts...), elemKey: elemKey}
}

// AddOne unions e into the Set at every point of iv, seeding an empty Set
// first wherever iv was not yet covered.
func (st *Store) AddOne(iv interval.IntervalN, e interface{}) {
	st.Fill(store.ValidData{Interval: iv, Value: Set{}})
	key := st.elemKey(e)
	st.UpdateWith(iv, func(old interface{}) (interface{}, bool) {
		s, _ := old.(Set)
		return s.With(key, e), true
	})
}

// RemoveOne removes e from the Set at every point of iv currently covered.
// Uncovered sub-intervals are left untouched.
func (st *Store) RemoveOne(iv interval.IntervalN, e interface{}) {
	key := st.elemKey(e)
	st.UpdateWith(iv, func(old interface{}) (interface{}, bool) {
		s, ok := old.(Set)
		if !ok {
			return old, true
		}
		newSet := s.Without(key)
		return newSet, len(newSet) > 0
	})
}

// MergeOne unions the element sets of st and other at every shared
// sub-interval, taking one side's set verbatim where only it has coverage.
func (st *Store) MergeOne(other *Store) *Store {
	merged := st.DimensionalStore.Merge(other.DimensionalStore, func(a, b interface{}) interface{} {
		sa, _ := a.(Set)
		sb, _ := b.(Set)
		return sa.Union(sb)
	})
	return &Store{DimensionalStore: merged, elemKey: st.elemKey}
}

// ElementsAt returns the elements of the Set covering point, or nil if
// point is uncovered.
func (st *Store) ElementsAt(point interval.DomainN) []interface{} {
	v, ok := st.GetAt(point)
	if !ok {
		return nil
	}
	s, ok := v.(Set)
	if !ok {
		return nil
	}
	return s.Elements()
}
