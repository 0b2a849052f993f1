package domain

import (
	"fmt"
	"time"
)

// Book-specific validation errors
var (
	// ErrEmptyTitle is returned when a book's title is empty.
	ErrEmptyTitle = fmt.Errorf("%w: book title cannot be empty", ErrValidation)

	// ErrNegativePrice is returned when a book's price is negative.
	ErrNegativePrice = fmt.Errorf("%w: book price cannot be negative", ErrValidation)
)

// BookKind discriminates the book variants.
type BookKind string

// The supported book variants.
const (
	KindPlain      BookKind = "plain"
	KindFiction    BookKind = "fiction"
	KindNonFiction BookKind = "nonfiction"
)

// BookKey is the identity key of a book. Two books are the same book
// iff their titles and ISBNs both match; the key is comparable and is
// used as the map key in every collection that indexes books.
type BookKey struct {
	Title string `json:"title"`
	ISBN  int64  `json:"isbn"`
}

// MarshalText renders the key as "title#isbn". It exists so that maps
// keyed by BookKey can be JSON-encoded.
func (k BookKey) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%s#%d", k.Title, k.ISBN)), nil
}

// Book represents a book in the catalog.
//
// Instead of a type hierarchy, the variants (plain, fiction,
// non-fiction) share one record discriminated by Kind; the
// variant-specific fields are empty for the other kinds.
type Book struct {
	Title     string    `json:"title"`
	ISBN      int64     `json:"isbn"`
	Price     float64   `json:"price"`
	Kind      BookKind  `json:"kind"`
	Author    string    `json:"author,omitempty"`  // fiction only
	Subject   string    `json:"subject,omitempty"` // non-fiction only
	Level     string    `json:"level,omitempty"`   // non-fiction only
	Ratings   []Rating  `json:"ratings"`
	CreatedAt time.Time `json:"created_at"`
}

// NewBook creates a new plain book with the given title, ISBN and price.
// Returns an error if validation fails.
func NewBook(title string, isbn int64, price float64) (*Book, error) {
	book := &Book{
		Title:     title,
		ISBN:      isbn,
		Price:     price,
		Kind:      KindPlain,
		CreatedAt: time.Now().UTC(),
	}

	if err := book.Validate(); err != nil {
		return nil, err
	}

	return book, nil
}

// NewFiction creates a new fiction book with the given author.
func NewFiction(title, author string, isbn int64, price float64) (*Book, error) {
	book, err := NewBook(title, isbn, price)
	if err != nil {
		return nil, err
	}

	book.Kind = KindFiction
	book.Author = author
	return book, nil
}

// NewNonFiction creates a new non-fiction book with the given subject
// and difficulty level.
func NewNonFiction(title, subject, level string, isbn int64, price float64) (*Book, error) {
	book, err := NewBook(title, isbn, price)
	if err != nil {
		return nil, err
	}

	book.Kind = KindNonFiction
	book.Subject = subject
	book.Level = level
	return book, nil
}

// Validate checks if the Book has valid data.
// Returns an error if any field fails validation.
func (b *Book) Validate() error {
	if b.Title == "" {
		return ErrEmptyTitle
	}

	if b.Price < 0 {
		return ErrNegativePrice
	}

	return nil
}

// Key returns the book's identity key.
func (b *Book) Key() BookKey {
	return BookKey{Title: b.Title, ISBN: b.ISBN}
}

// Equal reports whether both books carry the same identity key.
// Price, kind and rating history do not participate in identity.
func (b *Book) Equal(other *Book) bool {
	if other == nil {
		return false
	}
	return b.Key() == other.Key()
}

// AddRating appends a rating to the book's rating history.
// Returns ErrInvalidRating if the rating is outside the valid range;
// the history is not modified in that case.
func (b *Book) AddRating(r Rating) error {
	if !r.Valid() {
		return ErrInvalidRating
	}

	b.Ratings = append(b.Ratings, r)
	return nil
}

// AverageRating returns the arithmetic mean of the book's ratings,
// or 0 when the book has no ratings.
func (b *Book) AverageRating() float64 {
	if len(b.Ratings) == 0 {
		return 0
	}

	var sum int
	for _, r := range b.Ratings {
		sum += int(r)
	}
	return float64(sum) / float64(len(b.Ratings))
}

// SetISBN changes the book's ISBN. The ISBN is part of the identity
// key, so this must not be called on a book that is already recorded
// in a catalog or in a user's collection.
func (b *Book) SetISBN(isbn int64) {
	b.ISBN = isbn
}

// String renders the book for listings.
func (b *Book) String() string {
	switch b.Kind {
	case KindFiction:
		return fmt.Sprintf("%s by %s (isbn %d)", b.Title, b.Author, b.ISBN)
	case KindNonFiction:
		return fmt.Sprintf("%s, a %s manual on %s (isbn %d)", b.Title, b.Level, b.Subject, b.ISBN)
	default:
		return fmt.Sprintf("%s (isbn %d)", b.Title, b.ISBN)
	}
}
