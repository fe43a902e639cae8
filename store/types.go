package store

import (
	"math"
	"reflect"
	"sync"

	"github.com/google/btree"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rremple/intervalidus-sub004/boxtree"
	"github.com/rremple/intervalidus-sub004/config"
	"github.com/rremple/intervalidus-sub004/geom"
	"github.com/rremple/intervalidus-sub004/interval"
)

// ValidData is one stored entry: an N-D interval mapped to a value, plus a
// stable identity handle used to track the same physical entry across
// remove/re-add cycles (spec.md §3's ValidData<V,D>).
type ValidData struct {
	ID       uuid.UUID
	Interval interval.IntervalN
	Value    interface{}
}

// EqualFunc reports whether two stored values are equal, used by Compress
// (I2) to decide which entries may merge. Defaults to reflect.DeepEqual.
type EqualFunc func(a, b interface{}) bool

// KeyFunc derives a comparison-map bucket key for a stored value, used to
// back byValue with an O(1)-average lookup instead of a linear EqualFunc
// scan. Each key is taken to identify one logical value: all entries whose
// values share a key go into one bucket, and EqualFunc is checked only
// against that bucket's representative value, not against each entry. A
// KeyFunc that maps unequal values to the same key therefore lets Compress
// treat entries holding different values as one value.
type KeyFunc func(v interface{}) string

// valueBucket groups every entry currently holding one logical value.
type valueBucket struct {
	sample  interface{} // representative value, for the EqualFunc check
	entries map[uuid.UUID]*ValidData
}

// DimensionalStore is the dimensional data engine of spec.md §4.5: a
// container of disjoint N-D intervals, each mapped to a value, maintained
// across three indices (I3) with automatic single-axis compression (I2).
type DimensionalStore struct {
	dim    int
	tun    config.Tunables
	logger *zap.Logger
	equal  EqualFunc
	keyOf  KeyFunc
	mu     *sync.Mutex // nil unless WithMutex(); guards every public method

	byStart    *btree.BTreeG[*ValidData]
	byValue    map[string]*valueBucket
	searchTree *boxtree.Tree
}

// Option configures a DimensionalStore at construction.
type Option func(*DimensionalStore)

// WithTunables overrides the store's config.Tunables (defaults come from
// config.Defaults()).
func WithTunables(t config.Tunables) Option { return func(s *DimensionalStore) { s.tun = t } }

// WithLogger attaches a zap.Logger for mutation diagnostics. The default is
// a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *DimensionalStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithEqual overrides the EqualFunc used by Compress to detect mergeable
// values. Defaults to reflect.DeepEqual.
func WithEqual(f EqualFunc) Option { return func(s *DimensionalStore) { s.equal = f } }

// WithKeyFunc overrides the KeyFunc used to bucket byValue. Defaults to a
// fmt.Sprintf("%#v", v)-based key.
func WithKeyFunc(f KeyFunc) Option { return func(s *DimensionalStore) { s.keyOf = f } }

// WithMutex wraps every public method in a coarse sync.Mutex, per spec.md §5
// ("optional coarse mutex"). Without it the store assumes external
// single-writer discipline and pays no lock overhead.
func WithMutex() Option {
	return func(s *DimensionalStore) { s.mu = &sync.Mutex{} }
}

func defaultKeyFunc(v interface{}) string {
	return reflect.TypeOf(v).String() + ":" + sprintValue(v)
}

// New constructs an empty DimensionalStore over dim axes.
func New(dim int, opts ...Option) *DimensionalStore {
	s := &DimensionalStore{
		dim:     dim,
		tun:     config.Defaults(),
		logger:  zap.NewNop(),
		equal:   reflect.DeepEqual,
		keyOf:   defaultKeyFunc,
		byValue: make(map[string]*valueBucket),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.byStart = btree.NewG(32, func(a, b *ValidData) bool {
		return a.Interval.Start().Less(b.Interval.Start())
	})
	s.searchTree = boxtree.New(dim, boxtree.WithTunables(s.tun), boxtree.WithLogger(s.logger))
	return s
}

// LoadDisjoint bulk-constructs a store directly from raw entries, bypassing
// update_or_remove. When tun.RequireDisjoint is set, every pair is checked
// for overlap first and ErrNonDisjointInput is returned on any violation;
// otherwise the caller's disjointness is trusted outright.
func LoadDisjoint(dim int, entries []ValidData, opts ...Option) (*DimensionalStore, error) {
	s := New(dim, opts...)
	if s.tun.RequireDisjoint {
		for i := range entries {
			for j := i + 1; j < len(entries); j++ {
				if entries[i].Interval.Intersects(entries[j].Interval) {
					return nil, errorfDisjoint("LoadDisjoint", "entries %d and %d overlap", i, j)
				}
			}
		}
	}
	for i := range entries {
		e := entries[i]
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}
		s.addRaw(&e)
	}
	return s, nil
}

// Dim returns the store's axis count.
func (s *DimensionalStore) Dim() int { return s.dim }

// Stats reports per-index entry counts: byStart size, distinct stored
// values, and search-tree payload count.
type Stats struct {
	ByStart        int
	DistinctValues int
	SearchTree     int
}

// Stats returns the current index sizes.
func (s *DimensionalStore) Stats() Stats {
	s.lock()
	defer s.unlock()
	return Stats{
		ByStart:        s.byStart.Len(),
		DistinctValues: len(s.byValue),
		SearchTree:     s.searchTree.Len(),
	}
}

func (s *DimensionalStore) lock() {
	if s.mu != nil {
		s.mu.Lock()
	}
}

func (s *DimensionalStore) unlock() {
	if s.mu != nil {
		s.mu.Unlock()
	}
}

// boundSentinel stands in for +/-Inf when projecting a Bottom/Top endpoint
// into the search tree's coordinate space. It must dominate any realistic
// finite domain value yet stay far from float64's overflow range, since
// geom.Capacity.Grow doubles the tree's capacity around its midpoint on
// every insert that doesn't yet contain a box.
const boundSentinel = 1e18

func clampOrdered(h float64) float64 {
	switch {
	case math.IsInf(h, -1):
		return -boundSentinel
	case math.IsInf(h, 1):
		return boundSentinel
	default:
		return h
	}
}

func boxOf(iv interval.IntervalN) geom.Box {
	n := iv.Dim()
	min := make(geom.Coordinate, n)
	max := make(geom.Coordinate, n)
	for i, seg := range iv {
		min[i] = clampOrdered(seg.Start.OrderedHash())
		max[i] = clampOrdered(seg.End.OrderedHash())
	}
	b, _ := geom.NewBox(min, max)
	return b
}
