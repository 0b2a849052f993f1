package domain

import (
	"errors"
	"testing"
)

func TestValidationErrorClass(t *testing.T) {
	class := []error{
		ErrEmptyName,
		ErrEmptyEmail,
		ErrEmptyTitle,
		ErrNegativePrice,
		ErrInvalidEmail,
		ErrInvalidRating,
	}
	for _, err := range class {
		if !errors.Is(err, ErrValidation) {
			t.Errorf("Expected %v to wrap ErrValidation", err)
		}
	}

	if errors.Is(ErrNilBook, ErrValidation) {
		t.Error("Expected ErrNilBook not to be a validation error")
	}
}

func TestNewUser(t *testing.T) {
	user, err := NewUser("Alice", "alice@example.com")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.Name != "Alice" || user.Email != "alice@example.com" {
		t.Errorf("Unexpected user fields: %+v", user)
	}
	if user.BooksRead() != 0 {
		t.Errorf("Expected empty collection, got %d books", user.BooksRead())
	}
	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	_, err = NewUser("", "alice@example.com")
	if err != ErrEmptyName {
		t.Errorf("Expected error %v, got %v", ErrEmptyName, err)
	}

	_, err = NewUser("Alice", "")
	if err != ErrEmptyEmail {
		t.Errorf("Expected error %v, got %v", ErrEmptyEmail, err)
	}

	_, err = NewUser("Alice", "not-an-email")
	if err != ErrInvalidEmail {
		t.Errorf("Expected error %v, got %v", ErrInvalidEmail, err)
	}
}

func TestValidateEmailFormat(t *testing.T) {
	validEmails := []string{
		"user@example.com",
		"user.name@example.com",
		"user_name-2@sub.example.org",
		"User@Example.COM", // case-insensitive
		"user@example.info",
	}

	invalidEmails := []string{
		"",
		"not-an-email",
		"user@",
		"@example.com",
		"user..name@example.com",
		"user@example",
		"user@example.c",
		"user@example.solutions", // TLD longer than 4 letters
		"user name@example.com",
	}

	for _, email := range validEmails {
		if !validateEmailFormat(email) {
			t.Errorf("Expected email %s to be valid", email)
		}
	}

	for _, email := range invalidEmails {
		if validateEmailFormat(email) {
			t.Errorf("Expected email %s to be invalid", email)
		}
	}
}

func TestChangeEmail(t *testing.T) {
	user, _ := NewUser("Alice", "alice@example.com")

	if err := user.ChangeEmail("alice@mail.org"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.Email != "alice@mail.org" {
		t.Errorf("Expected email to be replaced, got %s", user.Email)
	}

	if err := user.ChangeEmail("broken"); err != ErrInvalidEmail {
		t.Errorf("Expected error %v, got %v", ErrInvalidEmail, err)
	}
	if user.Email != "alice@mail.org" {
		t.Errorf("Expected email to be unchanged after invalid change, got %s", user.Email)
	}
}

func TestReadBook(t *testing.T) {
	user, _ := NewUser("Alice", "alice@example.com")
	book, _ := NewBook("Dune", 1001, 20)

	if err := user.ReadBook(nil, nil); err != ErrNilBook {
		t.Errorf("Expected error %v, got %v", ErrNilBook, err)
	}

	// Invalid ratings abort the read entirely.
	for _, v := range []int{-1, 5} {
		if err := user.ReadBook(book, NewRating(v)); err != ErrInvalidRating {
			t.Errorf("Expected error %v for rating %d, got %v", ErrInvalidRating, v, err)
		}
	}
	if user.BooksRead() != 0 {
		t.Error("Expected failed reads not to be recorded")
	}
	if len(book.Ratings) != 0 {
		t.Error("Expected failed reads not to rate the book")
	}

	// An unrated read is recorded on the user only.
	if err := user.ReadBook(book, nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.BooksRead() != 1 {
		t.Errorf("Expected 1 book read, got %d", user.BooksRead())
	}
	if len(book.Ratings) != 0 {
		t.Error("Expected no rating forwarded for an unrated read")
	}

	// A rated re-read overwrites the entry and rates the book.
	if err := user.ReadBook(book, NewRating(3)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.BooksRead() != 1 {
		t.Errorf("Expected re-read to overwrite, got %d entries", user.BooksRead())
	}
	if len(book.Ratings) != 1 || book.Ratings[0] != 3 {
		t.Errorf("Expected the rating to be forwarded once, got %v", book.Ratings)
	}
}

func TestReadBookZeroRatingPropagates(t *testing.T) {
	// 0 is a real rating, distinct from "read but not rated".
	user, _ := NewUser("Alice", "alice@example.com")
	book, _ := NewBook("Dune", 1001, 20)

	if err := user.ReadBook(book, NewRating(0)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(book.Ratings) != 1 || book.Ratings[0] != 0 {
		t.Errorf("Expected a 0 rating to reach the book, got %v", book.Ratings)
	}
	if user.AverageRating() != 0 {
		t.Errorf("Expected average 0, got %f", user.AverageRating())
	}
}

func TestUserAverageRating(t *testing.T) {
	user, _ := NewUser("Alice", "alice@example.com")

	if got := user.AverageRating(); got != 0 {
		t.Errorf("Expected average 0 with no ratings, got %f", got)
	}

	dune, _ := NewBook("Dune", 1001, 20)
	foo, _ := NewBook("Foo", 1002, 10)
	bar, _ := NewBook("Bar", 1003, 5)

	if err := user.ReadBook(dune, NewRating(4)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := user.ReadBook(foo, NewRating(1)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := user.ReadBook(bar, nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Unrated reads do not count toward the mean.
	if got := user.AverageRating(); got != 2.5 {
		t.Errorf("Expected average 2.5, got %f", got)
	}
}

func TestUserEqual(t *testing.T) {
	a, _ := NewUser("Alice", "alice@example.com")
	b, _ := NewUser("Alice", "alice@example.com")
	c, _ := NewUser("Alice", "other@example.com")

	book, _ := NewBook("Dune", 1001, 20)
	if err := b.ReadBook(book, nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Equality is structural on (name, email) only.
	if !a.Equal(b) {
		t.Error("Expected users with same name and email to be equal")
	}
	if a.Equal(c) {
		t.Error("Expected users with different email to be unequal")
	}
	if a.Equal(nil) {
		t.Error("Expected inequality with nil")
	}
}

func TestUserCollection(t *testing.T) {
	user, _ := NewUser("Alice", "alice@example.com")
	dune, _ := NewBook("Dune", 1001, 20)
	foo, _ := NewBook("Foo", 1002, 10)

	if err := user.ReadBook(dune, nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := user.ReadBook(foo, NewRating(2)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	keys := user.Collection()
	if len(keys) != 2 {
		t.Fatalf("Expected 2 keys, got %d", len(keys))
	}
	seen := map[BookKey]bool{}
	for _, key := range keys {
		seen[key] = true
	}
	if !seen[dune.Key()] || !seen[foo.Key()] {
		t.Errorf("Expected both identity keys in the collection, got %v", keys)
	}
}
