package memstore

import (
	"context"
	"sync"

	"github.com/fdarre/tome-rater/internal/domain"
	"github.com/fdarre/tome-rater/internal/store"
)

// UserStore is the in-memory implementation of store.UserStore.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]*domain.User
	order []string // emails in insertion order
}

// Statically verify interface compliance.
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates an empty in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[string]*domain.User),
	}
}

// Create registers a new user.
// Returns store.ErrEmailExists if the email is already taken.
func (s *UserStore) Create(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Email]; exists {
		return store.ErrEmailExists
	}

	s.users[user.Email] = user
	s.order = append(s.order, user.Email)
	return nil
}

// GetByEmail retrieves a user by email.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *UserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// List returns all users in insertion order.
func (s *UserStore) List(_ context.Context) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*domain.User, 0, len(s.order))
	for _, email := range s.order {
		users = append(users, s.users[email])
	}
	return users, nil
}

// UpdateEmail re-keys a user from oldEmail to newEmail, keeping the
// user's position in the insertion order.
func (s *UserStore) UpdateEmail(_ context.Context, oldEmail, newEmail string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[oldEmail]
	if !exists {
		return store.ErrUserNotFound
	}

	if newEmail == oldEmail {
		return nil
	}

	if _, taken := s.users[newEmail]; taken {
		return store.ErrEmailExists
	}

	delete(s.users, oldEmail)
	s.users[newEmail] = user
	for i, email := range s.order {
		if email == oldEmail {
			s.order[i] = newEmail
			break
		}
	}
	return nil
}

// Len returns the number of registered users.
func (s *UserStore) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.users), nil
}
