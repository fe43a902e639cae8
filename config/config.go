package config

import "github.com/kelseyhightower/envconfig"

// Tunables holds the diagnostic and sizing knobs spec.md §6 exposes via
// environment variables.
type Tunables struct {
	// NodeCapacity is the maximum payloads per box-tree leaf before it
	// splits into 2^n children. Default 256.
	NodeCapacity int `envconfig:"TREE_NODE_CAPACITY" default:"256"`

	// DepthLimit is the hard ceiling on box-tree recursion depth; leaves at
	// this depth never split even if over capacity (required for
	// correctness, since OrderedHash collisions could otherwise force
	// unbounded recursion). Default 32.
	DepthLimit int `envconfig:"TREE_DEPTH_LIMIT" default:"32"`

	// BoundaryCapacitySize is the side length of the initial capacity
	// square/cube around the origin. Default 1.0.
	BoundaryCapacitySize float64 `envconfig:"TREE_BOUNDARY_CAPACITY_SIZE" default:"1.0"`

	// RequireDisjoint, when true, makes constructors that accept raw
	// entries verify I1 (pairwise disjointness) and fail with
	// ErrNonDisjointInput otherwise. Default false.
	RequireDisjoint bool `envconfig:"REQUIRE_DISJOINT" default:"false"`

	// NoSearchTree, when true, disables the spatial index in favor of a
	// linear scan; must produce identical observable results. Default
	// false.
	NoSearchTree bool `envconfig:"NO_SEARCH_TREE" default:"false"`
}

// Defaults returns the Tunables that Load would produce with no environment
// variables set.
func Defaults() Tunables {
	return Tunables{
		NodeCapacity:         256,
		DepthLimit:           32,
		BoundaryCapacitySize: 1.0,
		RequireDisjoint:      false,
		NoSearchTree:         false,
	}
}

// Option overrides a resolved Tunables value explicitly, taking precedence
// over whatever the environment supplied.
type Option func(*Tunables)

// WithNodeCapacity overrides NodeCapacity.
func WithNodeCapacity(n int) Option { return func(t *Tunables) { t.NodeCapacity = n } }

// WithDepthLimit overrides DepthLimit.
func WithDepthLimit(n int) Option { return func(t *Tunables) { t.DepthLimit = n } }

// WithBoundaryCapacitySize overrides BoundaryCapacitySize.
func WithBoundaryCapacitySize(size float64) Option {
	return func(t *Tunables) { t.BoundaryCapacitySize = size }
}

// WithRequireDisjoint overrides RequireDisjoint.
func WithRequireDisjoint(v bool) Option { return func(t *Tunables) { t.RequireDisjoint = v } }

// WithNoSearchTree overrides NoSearchTree.
func WithNoSearchTree(v bool) Option { return func(t *Tunables) { t.NoSearchTree = v } }

// Load reads Tunables from the process environment (unset variables fall
// back to their documented defaults), then applies opts in order.
//
// Complexity: O(len(opts)), negligible; envconfig.Process is O(1) in the
// number of Tunables fields.
func Load(opts ...Option) (Tunables, error) {
	var t Tunables
	if err := envconfig.Process("", &t); err != nil {
		return Tunables{}, err
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t, nil
}
