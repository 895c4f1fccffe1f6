package favorites

import (
	"context"
	"sync"
	"time"

	"github.com/crismov/storefront/internal/storage"
)

// StorageKey is the persisted favorites document key
const StorageKey = "favorites-storage"

// Entry is a denormalized favorite snapshot keyed by the string form of the
// product id. Later product changes do not propagate into stored entries.
type Entry struct {
	ProductID string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	Category  string    `json:"category"`
	AddedAt   time.Time `json:"addedAt"`
}

// Service is the favorites registry.
type Service struct {
	mu    sync.Mutex
	store storage.Store
}

// NewService returns a registry over the given store.
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

func (s *Service) load(ctx context.Context) []Entry {
	return storage.Get(ctx, s.store, StorageKey, []Entry{})
}

// Add inserts the snapshot with the current timestamp. Adding a product id
// that is already favorited is a no-op, so a favorite/unfavorite pair always
// restores the previous registry size.
func (s *Service) Add(ctx context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load(ctx)
	for _, e := range entries {
		if e.ProductID == entry.ProductID {
			return nil
		}
	}

	entry.AddedAt = time.Now()
	entries = append(entries, entry)
	return storage.Set(ctx, s.store, StorageKey, entries)
}

// Remove deletes the entry for the product id; absent ids are a no-op.
func (s *Service) Remove(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load(ctx)
	next := entries[:0]
	for _, e := range entries {
		if e.ProductID != productID {
			next = append(next, e)
		}
	}
	if len(next) == len(entries) {
		return nil
	}
	return storage.Set(ctx, s.store, StorageKey, next)
}

// IsFavorite reports membership by product id.
func (s *Service) IsFavorite(ctx context.Context, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.load(ctx) {
		if e.ProductID == productID {
			return true
		}
	}
	return false
}

// List returns all favorite entries.
func (s *Service) List(ctx context.Context) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Clear removes every favorite.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return storage.Set(ctx, s.store, StorageKey, []Entry{})
}
