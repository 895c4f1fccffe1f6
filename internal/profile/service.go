package profile

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/crismov/storefront/internal/storage"
)

// StorageKey is the persisted profile document key
const StorageKey = "userProfile"

// UserProfile is the editable account profile, stored separately from the
// identity records.
type UserProfile struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// Service reads and writes the user profile.
type Service struct {
	mu    sync.Mutex
	store storage.Store
}

// NewService returns a profile service over the given store.
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Get returns the stored profile, empty when none was saved yet.
func (s *Service) Get(ctx context.Context) UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return storage.Get(ctx, s.store, StorageKey, UserProfile{})
}

// Save validates and persists the profile.
func (s *Service) Save(ctx context.Context, p UserProfile) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !strings.Contains(p.Email, "@") {
		return fmt.Errorf("invalid email address")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return storage.Set(ctx, s.store, StorageKey, p)
}
