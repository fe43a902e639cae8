// Package boxtree implements the hyperoctree spatial index described in
// spec.md §4.4: a recursive partition of continuous R^n into 2^n children
// per split, used to accelerate DimensionalStore's get_intersecting query.
//
// A payload may be inserted into more than one leaf (boxes spanning a split
// boundary are pushed into every overlapping child), and Query may report
// duplicates or false positives caused by OrderedHash collisions; callers
// deduplicate by payload identity and re-filter by true interval
// intersection, exactly as spec.md §4.4/§9 requires.
package boxtree
