package store

import (
	"context"

	"github.com/fdarre/tome-rater/internal/domain"
)

// BookReadCount pairs a catalog book with the number of times it has
// been read across all users.
type BookReadCount struct {
	Book  *domain.Book `json:"book"`
	Reads int          `json:"reads"`
}

// BookStore defines the interface for the catalog's book collection.
//
// A book enters the catalog the first time any user reads it; a book
// that was created but never read is not a catalog entry. Every entry
// carries a read count of at least 1.
type BookStore interface {
	// ContainsISBN reports whether any catalog entry carries the given
	// ISBN. The match is on ISBN alone, not on the identity key.
	ContainsISBN(ctx context.Context, isbn int64) (bool, error)

	// RecordRead inserts the book at read count 1, or increments the
	// count of the existing entry with the same identity key. The book
	// entity registered by the first read is kept for the lifetime of
	// the entry. Returns the new read count.
	RecordRead(ctx context.Context, book *domain.Book) (int, error)

	// GetByKey retrieves a catalog book by its identity key.
	// Returns ErrBookNotFound if the book is not in the catalog.
	GetByKey(ctx context.Context, key domain.BookKey) (*domain.Book, error)

	// ReadCount returns the read count for the given identity key.
	// Returns ErrBookNotFound if the book is not in the catalog.
	ReadCount(ctx context.Context, key domain.BookKey) (int, error)

	// List returns all catalog books in insertion order.
	List(ctx context.Context) ([]*domain.Book, error)

	// ReadCounts returns all catalog entries with their read counts,
	// in insertion order.
	ReadCounts(ctx context.Context) ([]BookReadCount, error)

	// Len returns the number of catalog entries.
	Len(ctx context.Context) (int, error)
}
