package domain

import "testing"

func TestNewBook(t *testing.T) {
	book, err := NewBook("Dune", 1001, 20)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if book.Kind != KindPlain {
		t.Errorf("Expected kind %q, got %q", KindPlain, book.Kind)
	}
	if book.Title != "Dune" || book.ISBN != 1001 || book.Price != 20 {
		t.Errorf("Unexpected book fields: %+v", book)
	}
	if len(book.Ratings) != 0 {
		t.Errorf("Expected no ratings on a new book, got %d", len(book.Ratings))
	}
	if book.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	_, err = NewBook("", 1001, 20)
	if err != ErrEmptyTitle {
		t.Errorf("Expected error %v, got %v", ErrEmptyTitle, err)
	}

	_, err = NewBook("Dune", 1001, -1)
	if err != ErrNegativePrice {
		t.Errorf("Expected error %v, got %v", ErrNegativePrice, err)
	}
}

func TestNewFictionAndNonFiction(t *testing.T) {
	fiction, err := NewFiction("Dune", "Frank Herbert", 1001, 20)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if fiction.Kind != KindFiction {
		t.Errorf("Expected kind %q, got %q", KindFiction, fiction.Kind)
	}
	if fiction.Author != "Frank Herbert" {
		t.Errorf("Expected author to be set, got %q", fiction.Author)
	}

	nonFiction, err := NewNonFiction("Learning Go", "Go", "beginner", 1002, 30)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if nonFiction.Kind != KindNonFiction {
		t.Errorf("Expected kind %q, got %q", KindNonFiction, nonFiction.Kind)
	}
	if nonFiction.Subject != "Go" || nonFiction.Level != "beginner" {
		t.Errorf("Expected subject and level to be set, got %q/%q", nonFiction.Subject, nonFiction.Level)
	}
}

func TestBookIdentity(t *testing.T) {
	a, _ := NewBook("Dune", 1001, 20)
	b, _ := NewFiction("Dune", "Frank Herbert", 1001, 35)

	// Identity is (title, isbn); price, kind and ratings do not matter.
	if err := b.AddRating(4); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !a.Equal(b) {
		t.Error("Expected books with identical (title, isbn) to be equal")
	}
	if a.Key() != b.Key() {
		t.Error("Expected identical identity keys")
	}

	c, _ := NewBook("Dune", 1002, 20)
	if a.Equal(c) {
		t.Error("Expected books with different isbn to be unequal")
	}
	if a.Equal(nil) {
		t.Error("Expected inequality with nil")
	}
}

func TestBookAddRating(t *testing.T) {
	// A single valid rating is reported back exactly by the average.
	for r := RatingMin; r <= RatingMax; r++ {
		book, _ := NewBook("Dune", 1001, 20)
		if err := book.AddRating(r); err != nil {
			t.Fatalf("Expected rating %d to be valid, got %v", r, err)
		}
		if got := book.AverageRating(); got != float64(r) {
			t.Errorf("Expected average %d, got %f", r, got)
		}
	}

	book, _ := NewBook("Dune", 1001, 20)
	for _, r := range []Rating{-1, 5, 42} {
		if err := book.AddRating(r); err != ErrInvalidRating {
			t.Errorf("Expected error %v for rating %d, got %v", ErrInvalidRating, r, err)
		}
	}
	if len(book.Ratings) != 0 {
		t.Errorf("Expected invalid ratings not to be recorded, got %d", len(book.Ratings))
	}
}

func TestBookAverageRating(t *testing.T) {
	book, _ := NewBook("Dune", 1001, 20)

	if got := book.AverageRating(); got != 0 {
		t.Errorf("Expected average 0 for unrated book, got %f", got)
	}

	for _, r := range []Rating{1, 2, 4} {
		if err := book.AddRating(r); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}
	want := 7.0 / 3.0
	if got := book.AverageRating(); got != want {
		t.Errorf("Expected average %f, got %f", want, got)
	}
}

func TestBookSetISBN(t *testing.T) {
	book, _ := NewBook("Dune", 1001, 20)
	book.SetISBN(2001)

	if book.ISBN != 2001 {
		t.Errorf("Expected isbn 2001, got %d", book.ISBN)
	}
	if book.Key().ISBN != 2001 {
		t.Error("Expected identity key to follow the isbn change")
	}
}

func TestBookString(t *testing.T) {
	plain, _ := NewBook("Dune", 1001, 20)
	fiction, _ := NewFiction("Dune", "Frank Herbert", 1001, 20)
	nonFiction, _ := NewNonFiction("Learning Go", "Go", "beginner", 1002, 30)

	cases := map[string]string{
		plain.String():      "Dune (isbn 1001)",
		fiction.String():    "Dune by Frank Herbert (isbn 1001)",
		nonFiction.String(): "Learning Go, a beginner manual on Go (isbn 1002)",
	}
	for got, want := range cases {
		if got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}
}

func TestRatingValid(t *testing.T) {
	for r := RatingMin; r <= RatingMax; r++ {
		if !r.Valid() {
			t.Errorf("Expected rating %d to be valid", r)
		}
	}
	for _, r := range []Rating{-1, 5} {
		if r.Valid() {
			t.Errorf("Expected rating %d to be invalid", r)
		}
	}
}
