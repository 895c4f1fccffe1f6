package query

import (
	"fmt"

	"github.com/crismov/storefront/internal/orders/domain"
)

// GetOrderHandler handles the order lookup query
type GetOrderHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

// Handle scans every persisted order for the id. Unlike the history
// listing this lookup is deliberately not scoped to the current user;
// the source system behaved the same way and both behaviors are kept.
func (h *GetOrderHandler) Handle(id string) (*domain.Order, error) {
	if id == "" {
		return nil, fmt.Errorf("order id is required")
	}

	for _, order := range h.repo.All() {
		if order.ID == id {
			cp := order
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("order %s not found", id)
}
