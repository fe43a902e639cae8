// Package diffsync defines the wire form of a store diff: the Action type
// spec.md §6 describes (Kind/Interval/Value/Key), used by
// store.DimensionalStore.DiffActionsFrom/ApplyDiffActions/SyncWith to
// represent a replayable stream of changes between two engines.
//
// This package holds types only, not the diffing algorithm itself: the
// algorithm lives in package store (it needs the engine's indices), and
// store imports diffsync, not the other way around. (De)serialization of
// Action is out of core scope per spec.md §1; the JSON struct tags are
// provided for collaborators that choose to serialize it themselves.
package diffsync
