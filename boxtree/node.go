package boxtree

import (
	"github.com/google/uuid"

	"github.com/rremple/intervalidus-sub004/config"
	"github.com/rremple/intervalidus-sub004/geom"
)

// node is one hyperoctree node: either a leaf holding payloads directly, or
// a branch with 2^n children partitioning boundary at capacity.Midpoint().
type node struct {
	boundary geom.Box // the node's actual splittable region
	capacity geom.Capacity
	depth    int

	entries  []*Payload // non-nil only on a leaf
	children []*node    // non-nil only on a branch, length 2^dim
}

func newLeaf(cap geom.Capacity, depth int) *node {
	return &node{boundary: cap.ToBox(), capacity: cap, depth: depth, entries: []*Payload{}}
}

func (n *node) isLeaf() bool { return n.children == nil }

// childOctants returns the 2^dim sub-capacities of n.capacity, split at its
// midpoint: octant index i picks, per axis bit, the lower (0) or upper (1)
// half.
func (n *node) childOctants() []geom.Capacity {
	dim := len(n.capacity.Min)
	mid := n.capacity.Midpoint()
	count := 1 << uint(dim)
	out := make([]geom.Capacity, count)
	for octant := 0; octant < count; octant++ {
		min := make(geom.Coordinate, dim)
		max := make(geom.Coordinate, dim)
		for axis := 0; axis < dim; axis++ {
			if octant&(1<<uint(axis)) == 0 {
				min[axis], max[axis] = n.capacity.Min[axis], mid[axis]
			} else {
				min[axis], max[axis] = mid[axis], n.capacity.Max[axis]
			}
		}
		out[octant] = geom.Capacity{Min: min, Max: max}
	}
	return out
}

// split converts a leaf into a branch with 2^dim children, redistributing
// its entries into every child whose boundary intersects the entry's box.
func (n *node) split() {
	octants := n.childOctants()
	n.children = make([]*node, len(octants))
	for i, oct := range octants {
		n.children[i] = newLeaf(oct, n.depth+1)
	}
	pending := n.entries
	n.entries = nil
	for _, p := range pending {
		for _, child := range n.children {
			if child.boundary.Intersects(p.Box) {
				child.insertDirect(p)
			}
		}
	}
}

// insertDirect adds p to this node without further boundary growth
// (capacity growth is handled by Tree.Insert before descending).
func (n *node) insertDirect(p *Payload) {
	n.entries = append(n.entries, p)
}

// insert places p into every descendant subtree whose boundary intersects
// p.Box, splitting leaves that exceed NodeCapacity (unless at DepthLimit).
func (n *node) insert(p *Payload, tun config.Tunables) {
	if !n.isLeaf() {
		for _, child := range n.children {
			if child.boundary.Intersects(p.Box) {
				child.insert(p, tun)
			}
		}
		return
	}
	n.entries = append(n.entries, p)
	if len(n.entries) > tun.NodeCapacity && n.depth < tun.DepthLimit {
		n.split()
	}
}

// query appends every payload in subtrees whose boundary intersects box.
func (n *node) query(box geom.Box, out *[]*Payload) {
	if !n.boundary.Intersects(box) {
		return
	}
	if n.isLeaf() {
		for _, p := range n.entries {
			if p.Box.Intersects(box) {
				*out = append(*out, p)
			}
		}
		return
	}
	for _, child := range n.children {
		child.query(box, out)
	}
}

// remove deletes the payload with id from every subtree whose boundary
// touches box.
func (n *node) remove(box geom.Box, id uuid.UUID) {
	if !n.boundary.Intersects(box) {
		return
	}
	if n.isLeaf() {
		kept := n.entries[:0]
		for _, p := range n.entries {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		n.entries = kept
		return
	}
	for _, child := range n.children {
		child.remove(box, id)
	}
}

// collectAll appends every payload across this subtree, deduplicated by ID
// (a payload placed into multiple leaves is reported once), used by
// Tree.grow when redistributing into a larger capacity.
func (n *node) collectAll(out *[]*Payload) {
	if n.isLeaf() {
		seen := make(map[uuid.UUID]bool, len(n.entries))
		for _, p := range n.entries {
			if !seen[p.ID] {
				seen[p.ID] = true
				*out = append(*out, p)
			}
		}
		return
	}
	seen := make(map[uuid.UUID]bool)
	var raw []*Payload
	for _, child := range n.children {
		child.collectAll(&raw)
	}
	for _, p := range raw {
		if !seen[p.ID] {
			seen[p.ID] = true
			*out = append(*out, p)
		}
	}
}
