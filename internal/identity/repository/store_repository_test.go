package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crismov/storefront/internal/identity/domain"
	"github.com/crismov/storefront/internal/storage"
)

func testUser() domain.User {
	return domain.User{
		ID:           "abc12345",
		Email:        "maria@example.com",
		Name:         "maria",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now(),
	}
}

func TestSaveAndFindByEmail(t *testing.T) {
	repo := NewStoreUserRepository(storage.NewMemoryStore())

	require.NoError(t, repo.Save(testUser()))

	got, ok := repo.FindByEmail("maria@example.com")
	require.True(t, ok)
	assert.Equal(t, "abc12345", got.ID)

	_, ok = repo.FindByEmail("absent@example.com")
	assert.False(t, ok)
}

func TestSessionRoundTrip(t *testing.T) {
	repo := NewStoreUserRepository(storage.NewMemoryStore())
	user := testUser()

	require.NoError(t, repo.Save(user))
	require.NoError(t, repo.SetSession(user, "token-123"))

	current, ok := repo.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, user.ID, current.ID)
	// The session copy never carries the password hash
	assert.Empty(t, current.PasswordHash)

	token, ok := repo.Token()
	require.True(t, ok)
	assert.Equal(t, "token-123", token)
}

func TestClearSession(t *testing.T) {
	repo := NewStoreUserRepository(storage.NewMemoryStore())
	user := testUser()

	require.NoError(t, repo.Save(user))
	require.NoError(t, repo.SetSession(user, "token-123"))
	require.NoError(t, repo.ClearSession())

	_, ok := repo.CurrentUser()
	assert.False(t, ok)
	_, ok = repo.Token()
	assert.False(t, ok)

	// User records stay after the session is dropped
	_, ok = repo.FindByEmail(user.Email)
	assert.True(t, ok)
}

func TestSetSessionWritesAllSessionKeys(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewStoreUserRepository(store)
	user := testUser()

	require.NoError(t, repo.SetSession(user, "token-123"))

	ctx := context.Background()
	session := storage.Get(ctx, store, AuthStorageKey, domain.Session{})
	require.NotNil(t, session.User)
	assert.Equal(t, user.ID, session.User.ID)
	assert.Equal(t, "token-123", session.Token)

	token := storage.Get(ctx, store, TokenKey, "")
	assert.Equal(t, "token-123", token)
}
