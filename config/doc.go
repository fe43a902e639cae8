// Package config resolves the environment-driven tunables spec.md §6
// defines for the spatial index and the dimensional data engine:
// TREE_NODE_CAPACITY, TREE_DEPTH_LIMIT, TREE_BOUNDARY_CAPACITY_SIZE,
// REQUIRE_DISJOINT, NO_SEARCH_TREE.
//
// Tunables is populated by Load, which reads the process environment with
// github.com/kelseyhightower/envconfig on every call; callers that want to
// override a value without touching the environment pass a functional
// Option to Load, env default, explicit option wins. The store and box-tree
// constructors do not call Load: they start from Defaults, and environment
// values reach them only through their WithTunables options.
package config
