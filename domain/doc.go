// Package domain defines the value contract that every axis of an
// interval-indexed store is built on: a total order over some value type V,
// an order-preserving projection into float64 used only as a spatial-index
// coordinate, and an optional adjacency extension for discrete value types.
//
// The package also defines Point, the four-way Bottom/Open/Point/Top variant
// used as a 1-D interval endpoint. Point never stores a raw V directly: it
// wraps a Value, so the same Point machinery works for integers, strings,
// dates, or any user type that implements Value.
//
// Concrete wrappers Int, Str, Float and Date are provided for the common
// cases; user types need only implement Value (and, for discrete domains,
// Discrete) to participate.
package domain
