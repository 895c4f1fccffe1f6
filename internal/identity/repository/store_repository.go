package repository

import (
	"context"
	"sync"

	"github.com/crismov/storefront/internal/identity/domain"
	"github.com/crismov/storefront/internal/storage"
)

// Persisted storage keys. The session pointer is written under both
// auth-storage and the mock_auth_user/auth_token pair because the source
// system maintained both and either may be read back.
const (
	UsersKey       = "mock_users"
	AuthStorageKey = "auth-storage"
	SessionUserKey = "mock_auth_user"
	TokenKey       = "auth_token"
)

// StoreUserRepository persists identity state in the key-value store.
type StoreUserRepository struct {
	mu    sync.Mutex
	store storage.Store
}

// NewStoreUserRepository returns a repository over the given store.
func NewStoreUserRepository(store storage.Store) *StoreUserRepository {
	return &StoreUserRepository{store: store}
}

func (r *StoreUserRepository) FindByEmail(email string) (*domain.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := storage.Get(context.Background(), r.store, UsersKey, map[string]domain.User{})
	user, ok := users[email]
	if !ok {
		return nil, false
	}
	return &user, true
}

func (r *StoreUserRepository) Save(user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx := context.Background()
	users := storage.Get(ctx, r.store, UsersKey, map[string]domain.User{})
	users[user.Email] = user
	return storage.Set(ctx, r.store, UsersKey, users)
}

func (r *StoreUserRepository) SetSession(user domain.User, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx := context.Background()
	public := user.Public()
	if err := storage.Set(ctx, r.store, SessionUserKey, public); err != nil {
		return err
	}
	if err := storage.Set(ctx, r.store, TokenKey, token); err != nil {
		return err
	}
	return storage.Set(ctx, r.store, AuthStorageKey, domain.Session{User: &public, Token: token})
}

// ClearSession drops the session pointer only; per-email user records stay.
func (r *StoreUserRepository) ClearSession() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx := context.Background()
	if err := r.store.Delete(ctx, SessionUserKey); err != nil {
		return err
	}
	if err := r.store.Delete(ctx, TokenKey); err != nil {
		return err
	}
	return storage.Set(ctx, r.store, AuthStorageKey, domain.Session{})
}

func (r *StoreUserRepository) CurrentUser() (*domain.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := storage.Get[*domain.User](context.Background(), r.store, SessionUserKey, nil)
	if user == nil {
		return nil, false
	}
	return user, true
}

func (r *StoreUserRepository) Token() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token := storage.Get(context.Background(), r.store, TokenKey, "")
	return token, token != ""
}
