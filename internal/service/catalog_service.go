package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/fdarre/tome-rater/internal/domain"
	"github.com/fdarre/tome-rater/internal/events"
	"github.com/fdarre/tome-rater/internal/store"
)

// Reference values returned by aggregate queries that have nothing to
// rank: an empty catalog (HighestRatedBook) or an empty user set
// (MostPositiveUser). They carry an average rating of 0 and are never
// catalog data; callers must not mutate them or treat them as real
// entries.
var (
	ReferenceBook = &domain.Book{Title: "reference book", ISBN: 1000002, Kind: domain.KindPlain}
	ReferenceUser = &domain.User{Name: "reference user", Email: "mail@domain.com"}
)

// BookPrice pairs a book title with its price, for the most-expensive
// ranking.
type BookPrice struct {
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

// CatalogService is the engine orchestrating users, books and ratings.
//
// Soft failures (duplicate ISBN or email, unknown user) are returned as
// sentinel errors from the store package and leave the catalog
// unchanged; hard failures (invalid email, invalid rating, nil book)
// are domain errors and also perform no partial mutation.
type CatalogService struct {
	users   store.UserStore
	books   store.BookStore
	emitter events.EventEmitter
	logger  *slog.Logger
}

// NewCatalogService creates a new CatalogService on top of the given
// stores. The emitter may be nil, in which case no events are emitted.
func NewCatalogService(
	users store.UserStore,
	books store.BookStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
) *CatalogService {
	return &CatalogService{
		users:   users,
		books:   books,
		emitter: emitter,
		logger:  logger.With("component", "catalog_service"),
	}
}

// CreateBook creates a new plain book unless a book with the same ISBN
// is already in the catalog. The duplicate check scans ISBNs alone, so
// two books with the same ISBN but different titles still collide.
// Returns store.ErrISBNExists and no book on a duplicate.
//
// The new book is not a catalog entry yet; it enters the catalog the
// first time a user reads it.
func (s *CatalogService) CreateBook(ctx context.Context, title string, isbn int64, price float64) (*domain.Book, error) {
	return s.createBook(ctx, title, isbn, func() (*domain.Book, error) {
		return domain.NewBook(title, isbn, price)
	})
}

// CreateFiction creates a new fiction book with the given author,
// subject to the same ISBN duplicate check as CreateBook.
func (s *CatalogService) CreateFiction(ctx context.Context, title, author string, isbn int64, price float64) (*domain.Book, error) {
	return s.createBook(ctx, title, isbn, func() (*domain.Book, error) {
		return domain.NewFiction(title, author, isbn, price)
	})
}

// CreateNonFiction creates a new non-fiction book with the given
// subject and level, subject to the same ISBN duplicate check as
// CreateBook.
func (s *CatalogService) CreateNonFiction(ctx context.Context, title, subject, level string, isbn int64, price float64) (*domain.Book, error) {
	return s.createBook(ctx, title, isbn, func() (*domain.Book, error) {
		return domain.NewNonFiction(title, subject, level, isbn, price)
	})
}

// createBook runs the shared ISBN duplicate check and constructs the
// variant via the given constructor.
func (s *CatalogService) createBook(ctx context.Context, title string, isbn int64, construct func() (*domain.Book, error)) (*domain.Book, error) {
	exists, err := s.books.ContainsISBN(ctx, isbn)
	if err != nil {
		s.logger.Error("failed to check catalog for isbn",
			"error", err,
			"isbn", isbn)
		return nil, fmt.Errorf("failed to check catalog for isbn: %w", err)
	}
	if exists {
		s.logger.Debug("book already exists",
			"title", title,
			"isbn", isbn)
		return nil, store.ErrISBNExists
	}

	book, err := construct()
	if err != nil {
		s.logger.Error("failed to create book",
			"error", err,
			"title", title,
			"isbn", isbn)
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	s.emit(ctx, events.TypeBookCreated, events.BookCreatedPayload{
		Title: book.Title,
		ISBN:  book.ISBN,
		Kind:  string(book.Kind),
	})

	return book, nil
}

// AddUser registers a new user, keyed by email.
//
// An invalid email returns a domain validation error and performs no
// mutation; a duplicate email returns store.ErrEmailExists and performs
// no mutation. Initial books, if given, are added to the user's
// collection unrated; nil entries are skipped with a warning without
// aborting the rest.
func (s *CatalogService) AddUser(ctx context.Context, name, email string, initialBooks []*domain.Book) (*domain.User, error) {
	user, err := domain.NewUser(name, email)
	if err != nil {
		s.logger.Error("failed to create user object",
			"error", err,
			"email", email)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("user already exists",
				"email", email)
		} else {
			s.logger.Error("failed to register user",
				"error", err,
				"email", email)
		}
		return nil, err
	}

	s.emit(ctx, events.TypeUserAdded, events.UserAddedPayload{
		Name:  user.Name,
		Email: user.Email,
	})

	for _, book := range initialBooks {
		if book == nil {
			s.logger.Warn("skipping nil entry in initial books",
				"email", email)
			continue
		}
		if err := s.AddBookToUser(ctx, book, email, nil); err != nil {
			s.logger.Warn("failed to add initial book to user",
				"error", err,
				"title", book.Title,
				"email", email)
		}
	}

	return user, nil
}

// AddBookToUser records that the user with the given email has read the
// book, optionally with a rating, and updates the catalog read count.
//
// Returns store.ErrUserNotFound if no user has that email. Failures
// from the user's read operation (invalid rating, nil book) are
// propagated and the read count is not incremented.
func (s *CatalogService) AddBookToUser(ctx context.Context, book *domain.Book, email string, rating *domain.Rating) error {
	if book == nil {
		return domain.ErrNilBook
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("no user with email",
				"email", email)
		} else {
			s.logger.Error("failed to retrieve user",
				"error", err,
				"email", email)
		}
		return err
	}

	if err := user.ReadBook(book, rating); err != nil {
		s.logger.Debug("read not recorded",
			"error", err,
			"title", book.Title,
			"email", email)
		return err
	}

	reads, err := s.books.RecordRead(ctx, book)
	if err != nil {
		s.logger.Error("failed to record read in catalog",
			"error", err,
			"title", book.Title)
		return fmt.Errorf("failed to record read: %w", err)
	}

	s.emit(ctx, events.TypeBookRead, events.BookReadPayload{
		Title: book.Title,
		ISBN:  book.ISBN,
		Email: email,
		Rated: rating != nil,
		Reads: reads,
	})

	return nil
}

// ChangeUserEmail replaces a user's email and re-keys the engine-level
// email index in the same operation, so the index never references the
// old address.
//
// Returns store.ErrUserNotFound for an unknown old email,
// store.ErrEmailExists if the new email belongs to another user, and
// domain.ErrInvalidEmail (with no mutation) if the new email is
// malformed.
func (s *CatalogService) ChangeUserEmail(ctx context.Context, oldEmail, newEmail string) error {
	user, err := s.users.GetByEmail(ctx, oldEmail)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("no user with email",
				"email", oldEmail)
		}
		return err
	}

	if newEmail != oldEmail {
		if _, err := s.users.GetByEmail(ctx, newEmail); err == nil {
			s.logger.Debug("email already taken",
				"email", newEmail)
			return store.ErrEmailExists
		}
	}

	if err := user.ChangeEmail(newEmail); err != nil {
		s.logger.Debug("invalid new email",
			"error", err,
			"email", newEmail)
		return err
	}

	if err := s.users.UpdateEmail(ctx, oldEmail, newEmail); err != nil {
		s.logger.Error("failed to re-key user index",
			"error", err,
			"old_email", oldEmail,
			"new_email", newEmail)
		return fmt.Errorf("failed to re-key user index: %w", err)
	}

	s.emit(ctx, events.TypeEmailChanged, events.EmailChangedPayload{
		OldEmail: oldEmail,
		NewEmail: newEmail,
	})

	return nil
}

// MostReadBook returns the catalog book with the highest read count.
// Ties are broken in favor of the earliest catalog entry ("first-max").
// Returns ErrEmptyCatalog when nothing has been read yet.
func (s *CatalogService) MostReadBook(ctx context.Context) (*domain.Book, error) {
	counts, err := s.books.ReadCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list read counts: %w", err)
	}
	if len(counts) == 0 {
		return nil, ErrEmptyCatalog
	}

	best := counts[0]
	for _, entry := range counts[1:] {
		if entry.Reads > best.Reads {
			best = entry
		}
	}
	return best.Book, nil
}

// HighestRatedBook returns the catalog book with the highest average
// rating, first-max on ties. When the catalog is empty — or no book
// beats an average of 0 — the documented ReferenceBook sentinel is
// returned instead of catalog data.
func (s *CatalogService) HighestRatedBook(ctx context.Context) (*domain.Book, error) {
	catalog, err := s.books.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}

	best := ReferenceBook
	for _, book := range catalog {
		if book.AverageRating() > best.AverageRating() {
			best = book
		}
	}
	return best, nil
}

// MostPositiveUser returns the user with the highest average given
// rating, first-max on ties. When no users are registered — or none
// beats an average of 0 — the documented ReferenceUser sentinel is
// returned.
func (s *CatalogService) MostPositiveUser(ctx context.Context) (*domain.User, error) {
	registered, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	best := ReferenceUser
	for _, user := range registered {
		if user.AverageRating() > best.AverageRating() {
			best = user
		}
	}
	return best, nil
}

// NMostReadBooks returns up to n catalog entries sorted by read count
// descending. Ties keep their prior relative (insertion) order.
func (s *CatalogService) NMostReadBooks(ctx context.Context, n int) ([]store.BookReadCount, error) {
	counts, err := s.books.ReadCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list read counts: %w", err)
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Reads > counts[j].Reads
	})
	return truncate(counts, n), nil
}

// NMostProlificReaders returns up to n users sorted by the number of
// books read (rated or not) descending, stable on ties.
func (s *CatalogService) NMostProlificReaders(ctx context.Context, n int) ([]*domain.User, error) {
	registered, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	sort.SliceStable(registered, func(i, j int) bool {
		return registered[i].BooksRead() > registered[j].BooksRead()
	})
	return truncate(registered, n), nil
}

// NMostExpensiveBooks returns up to n (title, price) pairs sorted by
// price descending, stable on ties.
func (s *CatalogService) NMostExpensiveBooks(ctx context.Context, n int) ([]BookPrice, error) {
	catalog, err := s.books.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}

	prices := make([]BookPrice, 0, len(catalog))
	for _, book := range catalog {
		prices = append(prices, BookPrice{Title: book.Title, Price: book.Price})
	}

	sort.SliceStable(prices, func(i, j int) bool {
		return prices[i].Price > prices[j].Price
	})
	return truncate(prices, n), nil
}

// WorthOfUser sums the prices of all books in the user's collection,
// rated or not. Returns store.ErrUserNotFound for an unknown email.
func (s *CatalogService) WorthOfUser(ctx context.Context, email string) (float64, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("no user with email",
				"email", email)
		}
		return 0, err
	}

	var worth float64
	for _, key := range user.Collection() {
		book, err := s.books.GetByKey(ctx, key)
		if err != nil {
			// Reads always go through the catalog, so this indicates a
			// consistency bug rather than a user mistake.
			s.logger.Warn("book in user collection missing from catalog",
				"title", key.Title,
				"isbn", key.ISBN,
				"email", email)
			continue
		}
		worth += book.Price
	}
	return worth, nil
}

// HasBook reports whether the identity key is a catalog entry.
func (s *CatalogService) HasBook(ctx context.Context, key domain.BookKey) (bool, error) {
	_, err := s.books.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up book: %w", err)
	}
	return true, nil
}

// Books returns the catalog entries with their read counts, in
// insertion order. It feeds the display layer's catalog listing.
func (s *CatalogService) Books(ctx context.Context) ([]store.BookReadCount, error) {
	return s.books.ReadCounts(ctx)
}

// Users returns the registered users in insertion order.
func (s *CatalogService) Users(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// emit publishes a catalog event when an emitter is configured. Event
// delivery failures are logged, not propagated: the catalog mutation
// has already happened.
func (s *CatalogService) emit(ctx context.Context, eventType string, payload interface{}) {
	if s.emitter == nil {
		return
	}

	event, err := events.NewCatalogEvent(eventType, payload)
	if err != nil {
		s.logger.Warn("failed to build catalog event",
			"error", err,
			"event_type", eventType)
		return
	}

	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		s.logger.Warn("failed to emit catalog event",
			"error", err,
			"event_type", eventType)
	}
}

// truncate returns at most n leading elements of s; n <= 0 yields an
// empty slice.
func truncate[T any](s []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}
