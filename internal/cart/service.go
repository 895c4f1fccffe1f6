package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/crismov/storefront/internal/catalog/domain"
	"github.com/crismov/storefront/internal/storage"
)

// StorageKey is the persisted cart document key
const StorageKey = "cart-storage"

// ErrInvalidQuantity is returned when a quantity below 1 reaches the service
var ErrInvalidQuantity = fmt.Errorf("quantity must be at least 1")

// Item is one cart line: a full product snapshot taken at add time plus
// the accumulated quantity. At most one item exists per product id.
type Item struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Service is the cart aggregator. Every mutation persists the full cart
// state before returning, so readers in the same process observe it
// immediately.
type Service struct {
	mu    sync.Mutex
	store storage.Store
}

// NewService loads nothing eagerly; the cart is read from storage per call.
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

func (s *Service) load(ctx context.Context) []Item {
	return storage.Get(ctx, s.store, StorageKey, []Item{})
}

func (s *Service) save(ctx context.Context, items []Item) error {
	return storage.Set(ctx, s.store, StorageKey, items)
}

// AddItem inserts the product with quantity 1, or increments the existing
// entry's quantity when the product is already in the cart.
func (s *Service) AddItem(ctx context.Context, product domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx)
	for i := range items {
		if items[i].Product.ID == product.ID {
			items[i].Quantity++
			return s.save(ctx, items)
		}
	}

	items = append(items, Item{Product: product, Quantity: 1})
	return s.save(ctx, items)
}

// UpdateQuantity sets the entry's quantity. Quantities below 1 are rejected
// with ErrInvalidQuantity; callers wanting removal use RemoveItem.
func (s *Service) UpdateQuantity(ctx context.Context, productID, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx)
	for i := range items {
		if items[i].Product.ID == productID {
			items[i].Quantity = quantity
			return s.save(ctx, items)
		}
	}
	return fmt.Errorf("product %d is not in the cart", productID)
}

// RemoveItem deletes the entry for the product. Removing an absent product
// is a no-op.
func (s *Service) RemoveItem(ctx context.Context, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx)
	next := items[:0]
	for _, item := range items {
		if item.Product.ID != productID {
			next = append(next, item)
		}
	}
	if len(next) == len(items) {
		return nil
	}
	return s.save(ctx, next)
}

// Items returns the current cart entries.
func (s *Service) Items(ctx context.Context) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// TotalItems returns the summed quantity across all entries.
func (s *Service) TotalItems(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.load(ctx) {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the sum of price times quantity over all entries.
// Plain float64 arithmetic, suitable for display formatting but not for
// ledger-grade accounting.
func (s *Service) TotalPrice(ctx context.Context) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, item := range s.load(ctx) {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// Clear empties the cart, used after checkout.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, []Item{})
}
