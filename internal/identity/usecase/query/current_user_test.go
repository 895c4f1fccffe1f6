package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crismov/storefront/internal/identity/domain"
	"github.com/crismov/storefront/internal/identity/repository"
	"github.com/crismov/storefront/internal/storage"
	"github.com/crismov/storefront/pkg/auth"
)

func newCurrentHandler(t *testing.T) (*CurrentUserHandler, *repository.StoreUserRepository) {
	t.Helper()
	repo := repository.NewStoreUserRepository(storage.NewMemoryStore())
	return NewCurrentUserHandler(repo), repo
}

func TestCurrentUserNobodyLoggedIn(t *testing.T) {
	handler, _ := newCurrentHandler(t)

	assert.Nil(t, handler.Handle(""))
}

func TestCurrentUserFromSession(t *testing.T) {
	handler, repo := newCurrentHandler(t)

	user := domain.User{ID: "u-1", Email: "maria@example.com", Name: "maria", PasswordHash: "hash"}
	require.NoError(t, repo.Save(user))
	require.NoError(t, repo.SetSession(user, "session-token"))

	got := handler.Handle("")
	require.NotNil(t, got)
	assert.Equal(t, "u-1", got.ID)
	assert.Empty(t, got.PasswordHash)
}

func TestCurrentUserFromBearerToken(t *testing.T) {
	handler, repo := newCurrentHandler(t)

	user := domain.User{ID: "u-1", Email: "maria@example.com", Name: "maria", PasswordHash: "hash"}
	require.NoError(t, repo.Save(user))

	token, err := auth.GenerateToken(user.ID, user.Email)
	require.NoError(t, err)

	// No session pointer set: the token alone resolves the user
	got := handler.Handle(token)
	require.NotNil(t, got)
	assert.Equal(t, "u-1", got.ID)
	assert.Empty(t, got.PasswordHash)
}

func TestCurrentUserInvalidBearerFallsBackToSession(t *testing.T) {
	handler, repo := newCurrentHandler(t)

	user := domain.User{ID: "u-1", Email: "maria@example.com", Name: "maria"}
	require.NoError(t, repo.Save(user))
	require.NoError(t, repo.SetSession(user, "session-token"))

	got := handler.Handle("not.a.token")
	require.NotNil(t, got)
	assert.Equal(t, "u-1", got.ID)
}

func TestCurrentUserBearerForUnknownEmail(t *testing.T) {
	handler, _ := newCurrentHandler(t)

	token, err := auth.GenerateToken("ghost", "ghost@example.com")
	require.NoError(t, err)

	assert.Nil(t, handler.Handle(token))
}
