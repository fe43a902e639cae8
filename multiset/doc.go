// Package multiset is the Set<E>-valued specialization of store.
// DimensionalStore: instead of one value per sub-interval, each sub-interval
// holds an immutable Set of elements, and add_one/remove_one/merge_one derive
// each sub-interval's new Set from its old one, element by element (as a new
// Set value), rather than replacing it wholesale with a caller-given Set as
// store.Set/Update do. Set is a map[string]interface{} keyed by a caller-supplied
// ElemKeyFunc, since this module carries no generics.
package multiset
