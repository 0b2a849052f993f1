package domain

import (
	"fmt"
	"regexp"
	"time"
)

// User-specific validation errors
var (
	// ErrEmptyName is returned when a user's name is empty.
	ErrEmptyName = fmt.Errorf("%w: user name cannot be empty", ErrValidation)

	// ErrEmptyEmail is returned when a user's email is empty.
	ErrEmptyEmail = fmt.Errorf("%w: email cannot be empty", ErrValidation)
)

// emailPattern accepts a dotted lowercase local part, an @, a dotted
// domain and a terminal TLD of 2-4 letters, case-insensitively.
var emailPattern = regexp.MustCompile(
	`(?i)^[_a-z0-9-]+(\.[_a-z0-9-]+)*@[a-z0-9-]+(\.[a-z0-9-]+)*(\.[a-z]{2,4})$`,
)

// User represents a reader registered in the catalog.
//
// Books maps the identity key of every book the user has read to the
// rating the user gave it; a nil rating means "read but not rated".
type User struct {
	Name      string              `json:"name"`
	Email     string              `json:"email"`
	Books     map[BookKey]*Rating `json:"books"`
	CreatedAt time.Time           `json:"created_at"`
}

// NewUser creates a new User with the given name and email.
// Returns an error if validation fails.
func NewUser(name, email string) (*User, error) {
	user := &User{
		Name:      name,
		Email:     email,
		Books:     make(map[BookKey]*Rating),
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrEmptyName
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	return nil
}

// validateEmailFormat reports whether the email matches the accepted
// address shape.
func validateEmailFormat(email string) bool {
	return emailPattern.MatchString(email)
}

// ChangeEmail replaces the user's email address.
// Returns ErrInvalidEmail and leaves the user unchanged if the new
// address is malformed. Callers that index users by email must re-key
// their index as well; the catalog service does this.
func (u *User) ChangeEmail(newEmail string) error {
	if newEmail == "" {
		return ErrEmptyEmail
	}
	if !validateEmailFormat(newEmail) {
		return ErrInvalidEmail
	}

	u.Email = newEmail
	return nil
}

// ReadBook records that the user has read the given book, overwriting
// any prior entry for the same book identity.
//
// A nil rating records the book as read but not rated. A set rating
// must be within the valid range; an invalid rating returns
// ErrInvalidRating and the read is not recorded. A valid rating —
// including 0 — is also forwarded to the book's rating history.
func (u *User) ReadBook(book *Book, rating *Rating) error {
	if book == nil {
		return ErrNilBook
	}

	if rating != nil && !rating.Valid() {
		return ErrInvalidRating
	}

	if u.Books == nil {
		u.Books = make(map[BookKey]*Rating)
	}

	if rating == nil {
		u.Books[book.Key()] = nil
		return nil
	}

	r := *rating
	u.Books[book.Key()] = &r
	return book.AddRating(r)
}

// AverageRating returns the mean of the ratings the user has given.
// Unrated reads are not counted; 0 is returned when nothing is rated.
func (u *User) AverageRating() float64 {
	var count, sum int
	for _, r := range u.Books {
		if r == nil {
			continue
		}
		count++
		sum += int(*r)
	}

	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

// BooksRead returns the number of books the user has read, rated or not.
func (u *User) BooksRead() int {
	return len(u.Books)
}

// Collection returns the identity keys of the books the user has read.
// The order is unspecified.
func (u *User) Collection() []BookKey {
	keys := make([]BookKey, 0, len(u.Books))
	for key := range u.Books {
		keys = append(keys, key)
	}
	return keys
}

// Equal reports whether both users have the same name and email.
func (u *User) Equal(other *User) bool {
	if other == nil {
		return false
	}
	return u.Name == other.Name && u.Email == other.Email
}

// String renders the user for listings.
func (u *User) String() string {
	return fmt.Sprintf("%s <%s>, books read: %d", u.Name, u.Email, len(u.Books))
}
