// Package intervalidus manages interval-indexed values in one or more
// dimensions, with automatic compression, disjointness guarantees, and a
// versioned overlay for staged approval workflows.
//
// Under the hood:
//
//	domain/     — ordered point/value algebra (Bottom/Open/Point/Top)
//	interval/   — 1-D and N-D intervals, containment/intersection/remainder
//	geom/       — axis-aligned box geometry backing the spatial index
//	boxtree/    — hyperoctree spatial index over stored intervals
//	config/     — env-driven tunables for the index and the engine
//	clock/      — abstract time collaborator for the versioned overlay
//	store/      — the dimensional data engine: set/update/remove/compress/
//	              zip/merge/diff over disjoint N-D intervals
//	multiset/   — Set-valued specialization of store (add_one/remove_one)
//	versioned/  — version-axis overlay with an approve/rollback workflow
//	diffsync/   — wire-form actions for syncing two stores
//
// This package holds no code of its own; import the subpackage you need.
package intervalidus
