package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crismov/storefront/internal/identity/repository"
	"github.com/crismov/storefront/internal/storage"
)

func newLoginHandler() (*LoginUserHandler, *repository.StoreUserRepository) {
	repo := repository.NewStoreUserRepository(storage.NewMemoryStore())
	return NewLoginUserHandler(repo), repo
}

func TestLoginCreatesUserLazily(t *testing.T) {
	handler, repo := newLoginHandler()

	resp, err := handler.Handle(LoginUserCommand{Email: "maria@example.com", Password: "whatever"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "maria@example.com", resp.User.Email)
	assert.Equal(t, "maria", resp.User.Name)
	assert.NotEmpty(t, resp.User.ID)

	stored, ok := repo.FindByEmail("maria@example.com")
	require.True(t, ok)
	assert.Equal(t, resp.User.ID, stored.ID)
}

func TestLoginSameEmailYieldsSameUser(t *testing.T) {
	handler, _ := newLoginHandler()

	first, err := handler.Handle(LoginUserCommand{Email: "maria@example.com", Password: "one"})
	require.NoError(t, err)

	// A different password still resolves to the same identity
	second, err := handler.Handle(LoginUserCommand{Email: "maria@example.com", Password: "two"})
	require.NoError(t, err)

	assert.Equal(t, first.User.ID, second.User.ID)
}

func TestLoginSetsSession(t *testing.T) {
	handler, repo := newLoginHandler()

	resp, err := handler.Handle(LoginUserCommand{Email: "maria@example.com", Password: "pw"})
	require.NoError(t, err)

	current, ok := repo.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, resp.User.ID, current.ID)

	token, ok := repo.Token()
	require.True(t, ok)
	assert.Equal(t, resp.Token, token)
}

func TestLoginValidation(t *testing.T) {
	handler, _ := newLoginHandler()

	_, err := handler.Handle(LoginUserCommand{Email: "", Password: "pw"})
	assert.Error(t, err)

	_, err = handler.Handle(LoginUserCommand{Email: "not-an-email", Password: "pw"})
	assert.Error(t, err)

	_, err = handler.Handle(LoginUserCommand{Email: "maria@example.com", Password: ""})
	assert.Error(t, err)
}

func TestRegisterThenLogin(t *testing.T) {
	repo := repository.NewStoreUserRepository(storage.NewMemoryStore())
	register := NewRegisterUserHandler(repo)
	login := NewLoginUserHandler(repo)

	registered, err := register.Handle(RegisterUserCommand{
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", registered.User.Name)

	// Login reuses the registered record instead of creating a new one
	logged, err := login.Handle(LoginUserCommand{Email: "maria@example.com", Password: "anything"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, logged.User.ID)
	assert.Equal(t, "Maria Silva", logged.User.Name)
}

func TestLogoutClearsSession(t *testing.T) {
	repo := repository.NewStoreUserRepository(storage.NewMemoryStore())
	login := NewLoginUserHandler(repo)
	logout := NewLogoutUserHandler(repo)

	_, err := login.Handle(LoginUserCommand{Email: "maria@example.com", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, logout.Handle())

	_, ok := repo.CurrentUser()
	assert.False(t, ok)
	_, ok = repo.Token()
	assert.False(t, ok)

	// The user record survives logout
	_, ok = repo.FindByEmail("maria@example.com")
	assert.True(t, ok)
}
