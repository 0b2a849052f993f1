// Package memstore provides the in-memory implementations of the store
// interfaces.
//
// Both stores keep a map for lookups plus an insertion-ordered key
// slice, so that listings and the "first-max" tie policy of the
// analytics are deterministic. All methods are safe for concurrent use;
// a mutex serializes every mutation.
package memstore
