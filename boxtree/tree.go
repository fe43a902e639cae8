package boxtree

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rremple/intervalidus-sub004/config"
	"github.com/rremple/intervalidus-sub004/geom"
)

// Payload is one entry stored in the tree: a box, a caller-assigned stable
// identity used for query deduplication (spec.md §4.4/§9), and an opaque
// data handle (in practice a *store.ValidData, but boxtree does not know
// that and never inspects Data).
type Payload struct {
	Box  geom.Box
	ID   uuid.UUID
	Data interface{}
}

// Tree is a hyperoctree spatial index over continuous R^n.
type Tree struct {
	dim    int
	tun    config.Tunables
	logger *zap.Logger
	root   *node
}

// Option configures a Tree at construction.
type Option func(*Tree)

// WithTunables overrides the tree's NodeCapacity/DepthLimit/
// BoundaryCapacitySize (defaults come from config.Defaults()).
func WithTunables(t config.Tunables) Option { return func(tr *Tree) { tr.tun = t } }

// WithLogger attaches a zap.Logger for split/grow diagnostics. The default
// is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(tr *Tree) {
		if l != nil {
			tr.logger = l
		}
	}
}

// New constructs an empty Tree over dim axes, centered at the origin with
// initial capacity side length Tunables.BoundaryCapacitySize.
func New(dim int, opts ...Option) *Tree {
	t := &Tree{dim: dim, tun: config.Defaults(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(t)
	}
	half := t.tun.BoundaryCapacitySize / 2
	min := make(geom.Coordinate, dim)
	max := make(geom.Coordinate, dim)
	for i := 0; i < dim; i++ {
		min[i], max[i] = -half, half
	}
	cap0, _ := geom.NewCapacity(min, max)
	t.root = newLeaf(cap0, 0)
	return t
}

// Dim returns the tree's axis count.
func (t *Tree) Dim() int { return t.dim }

// Insert places payload into every hyperoctant-subtree whose boundary
// intersects box, growing the tree first if box lies outside the current
// boundary (spec.md §4.4).
func (t *Tree) Insert(box geom.Box, id uuid.UUID, data interface{}) {
	for !t.root.capacity.ToBox().ContainsBox(box) {
		t.grow()
	}
	p := &Payload{Box: box, ID: id, Data: data}
	t.root.insert(p, t.tun)
}

// grow doubles the root capacity around the origin until it contains the
// pending insertion, redistributing existing payloads into a fresh root.
func (t *Tree) grow() {
	newCap := t.root.capacity.Grow()
	all := make([]*Payload, 0)
	t.root.collectAll(&all)
	t.logger.Debug("boxtree: growing capacity", zap.Int("payloads", len(all)))
	t.root = newLeaf(newCap, 0)
	for _, p := range all {
		t.root.insert(p, t.tun)
	}
}

// Query returns every payload whose box MAY intersect box: duplicates and
// false positives are permitted per spec.md §4.4; callers deduplicate by
// ID and re-filter with true interval intersection.
func (t *Tree) Query(box geom.Box) []*Payload {
	var out []*Payload
	t.root.query(box, &out)
	return out
}

// Remove deletes the payload with the given id from every subtree whose
// boundary touches box.
func (t *Tree) Remove(box geom.Box, id uuid.UUID) {
	t.root.remove(box, id)
}

// Len returns the number of distinct payloads stored in the tree: a payload
// placed into several leaves is counted once (deduplicated by ID).
func (t *Tree) Len() int {
	var all []*Payload
	t.root.collectAll(&all)
	return len(all)
}
