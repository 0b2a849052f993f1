// Package service provides the catalog and rating engine: it owns the
// user and book collections, wires ratings between users and books, and
// answers the aggregate queries derived from that relation.
package service

import "errors"

// Common service errors - sentinel errors used across service methods.
// Callers check for them with errors.Is().
var (
	// ErrEmptyCatalog indicates that an aggregate query needs at least
	// one catalog entry and the catalog has none.
	ErrEmptyCatalog = errors.New("catalog is empty")
)
