package store

import (
	"context"

	"github.com/fdarre/tome-rater/internal/domain"
)

// UserStore defines the interface for the catalog's user collection,
// which is unique per email address.
type UserStore interface {
	// Create registers a new user.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns all registered users in insertion order.
	List(ctx context.Context) ([]*domain.User, error)

	// UpdateEmail re-keys a user from oldEmail to newEmail so that the
	// email index never goes stale after an email change. The user keeps
	// its position in the insertion order.
	// Returns ErrUserNotFound if oldEmail is unknown and ErrEmailExists
	// if newEmail already belongs to another user.
	UpdateEmail(ctx context.Context, oldEmail, newEmail string) error

	// Len returns the number of registered users.
	Len(ctx context.Context) (int, error)
}
