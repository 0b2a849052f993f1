// Package store defines the interfaces behind which the catalog keeps
// its collections, together with the error taxonomy shared by all
// implementations.
//
// The catalog service never touches a map directly; it owns a UserStore
// and a BookStore and every mutation or query goes through them. The
// only implementation in this application is the in-memory one in the
// memstore subpackage.
package store
