// Package store implements DimensionalStore, the dimensional data engine at
// the heart of this module: a container that associates an arbitrary value
// with a disjoint, automatically-compressed cover of N-dimensional
// intervals, and supports the full set/update/remove/fill/compress/zip/
// merge/diff algebra.
//
// A DimensionalStore maintains three indices in lockstep:
//
//	byStart     — an ordered map (github.com/google/btree) keyed by
//	              interval start, the authoritative index (I3).
//	byValue     — a multimap from value to the set of entries holding it,
//	              bucketed by a caller-supplied KeyFunc for O(1) lookup.
//	searchTree  — a boxtree.Tree spatial index over the OrderedHash
//	              projection of each interval, used to accelerate
//	              get_intersecting (I4).
//
// Set, Update, UpdateWith, Remove, Replace and ReplaceByKey funnel through
// updateOrRemove, the central algorithm: find overlapping entries via the
// spatial index, carve each via interval.IntervalN.RemainderN, and
// re-compress every touched value. Fill and SetIfNoConflict only add to
// uncovered space; Compress/RecompressAll and Zip/ZipAll/Merge work on the
// indices directly.
package store
