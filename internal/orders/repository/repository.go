package repository

import (
	"context"
	"sync"

	"github.com/crismov/storefront/internal/orders/domain"
	"github.com/crismov/storefront/internal/storage"
)

// StorageKey is the persisted orders document key
const StorageKey = "orders"

// StoreOrderRepository persists the order list in the key-value store,
// newest order first.
type StoreOrderRepository struct {
	mu    sync.Mutex
	store storage.Store
}

// NewStoreOrderRepository returns a repository over the given store.
func NewStoreOrderRepository(store storage.Store) *StoreOrderRepository {
	return &StoreOrderRepository{store: store}
}

// Prepend inserts the order at the head of the persisted list.
func (r *StoreOrderRepository) Prepend(order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx := context.Background()
	all := storage.Get(ctx, r.store, StorageKey, []domain.Order{})
	next := append([]domain.Order{order}, all...)
	return storage.Set(ctx, r.store, StorageKey, next)
}

// All returns every persisted order, across all owners.
func (r *StoreOrderRepository) All() []domain.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	return storage.Get(context.Background(), r.store, StorageKey, []domain.Order{})
}
