package memstore

import (
	"context"
	"sync"

	"github.com/fdarre/tome-rater/internal/domain"
	"github.com/fdarre/tome-rater/internal/store"
)

type bookEntry struct {
	book  *domain.Book
	reads int
}

// BookStore is the in-memory implementation of store.BookStore.
type BookStore struct {
	mu    sync.RWMutex
	books map[domain.BookKey]*bookEntry
	order []domain.BookKey // identity keys in insertion order
}

// Statically verify interface compliance.
var _ store.BookStore = (*BookStore)(nil)

// NewBookStore creates an empty in-memory book store.
func NewBookStore() *BookStore {
	return &BookStore{
		books: make(map[domain.BookKey]*bookEntry),
	}
}

// ContainsISBN reports whether any catalog entry carries the given ISBN.
func (s *BookStore) ContainsISBN(_ context.Context, isbn int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, key := range s.order {
		if key.ISBN == isbn {
			return true, nil
		}
	}
	return false, nil
}

// RecordRead inserts the book at read count 1 or increments the
// existing entry for the same identity key. Returns the new count.
func (s *BookStore) RecordRead(_ context.Context, book *domain.Book) (int, error) {
	if book == nil {
		return 0, domain.ErrNilBook
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := book.Key()
	if entry, exists := s.books[key]; exists {
		entry.reads++
		return entry.reads, nil
	}

	s.books[key] = &bookEntry{book: book, reads: 1}
	s.order = append(s.order, key)
	return 1, nil
}

// GetByKey retrieves a catalog book by its identity key.
// Returns store.ErrBookNotFound if the book is not in the catalog.
func (s *BookStore) GetByKey(_ context.Context, key domain.BookKey) (*domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.books[key]
	if !exists {
		return nil, store.ErrBookNotFound
	}
	return entry.book, nil
}

// ReadCount returns the read count for the given identity key.
// Returns store.ErrBookNotFound if the book is not in the catalog.
func (s *BookStore) ReadCount(_ context.Context, key domain.BookKey) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.books[key]
	if !exists {
		return 0, store.ErrBookNotFound
	}
	return entry.reads, nil
}

// List returns all catalog books in insertion order.
func (s *BookStore) List(_ context.Context) ([]*domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]*domain.Book, 0, len(s.order))
	for _, key := range s.order {
		books = append(books, s.books[key].book)
	}
	return books, nil
}

// ReadCounts returns all catalog entries with read counts, in insertion order.
func (s *BookStore) ReadCounts(_ context.Context) ([]store.BookReadCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make([]store.BookReadCount, 0, len(s.order))
	for _, key := range s.order {
		entry := s.books[key]
		counts = append(counts, store.BookReadCount{Book: entry.book, Reads: entry.reads})
	}
	return counts, nil
}

// Len returns the number of catalog entries.
func (s *BookStore) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.books), nil
}
