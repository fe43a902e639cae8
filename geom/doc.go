// Package geom provides the continuous R^n geometry used by the box-tree
// spatial index (package boxtree): axis-aligned coordinates, boxes, and
// their fixed-coordinate "capacity" companions used to compute split
// midpoints and tree growth, per spec.md §4.4.
package geom
