package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	// Entity-specific sentinels wrap the base errors, so callers can
	// match either level with errors.Is.
	assert.ErrorIs(t, ErrUserNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrBookNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrEmailExists, ErrDuplicate)
	assert.ErrorIs(t, ErrISBNExists, ErrDuplicate)

	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.True(t, IsDuplicateError(ErrISBNExists))
	assert.False(t, IsNotFoundError(ErrEmailExists))
	assert.False(t, IsDuplicateError(ErrBookNotFound))
	assert.False(t, IsNotFoundError(nil))
}

func TestStoreError(t *testing.T) {
	wrapped := NewStoreError("user", "create", "index rejected entry", ErrEmailExists)

	assert.Equal(t, "create operation on user failed: index rejected entry: entity already exists: email", wrapped.Error())

	// The wrapper stays transparent to errors.Is/errors.As.
	assert.ErrorIs(t, wrapped, ErrEmailExists)
	assert.ErrorIs(t, wrapped, ErrDuplicate)

	var storeErr *StoreError
	assert.True(t, errors.As(wrapped, &storeErr))
	assert.Equal(t, "user", storeErr.Entity)

	bare := NewStoreError("book", "record_read", "entry vanished", nil)
	assert.Equal(t, "record_read operation on book failed: entry vanished", bare.Error())
}
