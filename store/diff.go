package store

import (
	"sort"

	"github.com/rremple/intervalidus-sub004/diffsync"
	"github.com/rremple/intervalidus-sub004/interval"
)

func findByStart(es []*ValidData, start interval.DomainN) (*ValidData, bool) {
	for _, e := range es {
		if e.Interval.Start().Equal(start) {
			return e, true
		}
	}
	return nil, false
}

// DiffActionsFrom enumerates the diffsync.Action stream that, applied in
// order to old, reproduces s's current contents. Keys are interval starts,
// and the stream is emitted in ascending key order.
func (s *DimensionalStore) DiffActionsFrom(old *DimensionalStore) []diffsync.Action {
	s.lock()
	defer s.unlock()
	if old != s {
		old.lock()
		defer old.unlock()
	}

	selfEs := s.allEntries()
	oldEs := old.allEntries()

	var actions []diffsync.Action
	for _, e := range selfEs {
		start := e.Interval.Start()
		if oe, ok := findByStart(oldEs, start); ok {
			if !oe.Interval.Equal(e.Interval) || !s.equal(oe.Value, e.Value) {
				actions = append(actions, diffsync.Action{
					Kind: diffsync.ActionUpdate, Key: start,
					Interval: e.Interval.Clone(), Value: e.Value,
				})
			}
			continue
		}
		actions = append(actions, diffsync.Action{
			Kind: diffsync.ActionCreate, Key: start,
			Interval: e.Interval.Clone(), Value: e.Value,
		})
	}
	for _, e := range oldEs {
		start := e.Interval.Start()
		if _, ok := findByStart(selfEs, start); !ok {
			actions = append(actions, diffsync.Action{Kind: diffsync.ActionDelete, Key: start})
		}
	}

	sort.Slice(actions, func(i, j int) bool { return actions[i].Key.Less(actions[j].Key) })
	return actions
}

// ApplyDiffActions replays actions, in order, against s. An update first
// removes the entry starting at its Key, then sets the new interval.
func (s *DimensionalStore) ApplyDiffActions(actions []diffsync.Action) {
	for _, a := range actions {
		switch a.Kind {
		case diffsync.ActionCreate, diffsync.ActionUpdate:
			if a.Kind == diffsync.ActionUpdate {
				s.removeByStartKey(a.Key)
			}
			s.Set(ValidData{Interval: a.Interval, Value: a.Value})
		case diffsync.ActionDelete:
			s.removeByStartKey(a.Key)
		}
	}
}

func (s *DimensionalStore) removeByStartKey(key interval.DomainN) {
	s.lock()
	sentinel := &ValidData{Interval: pointInterval(key)}
	e, ok := s.byStart.Get(sentinel)
	s.unlock()
	if ok {
		s.Remove(e.Interval)
	}
}

// SyncWith makes s match other's contents by applying the actions that,
// replayed against s, would reproduce other.
func (s *DimensionalStore) SyncWith(other *DimensionalStore) {
	actions := other.DiffActionsFrom(s)
	s.ApplyDiffActions(actions)
}
