package query

import "github.com/crismov/storefront/internal/orders/domain"

// ListOrdersHandler handles the current user's order history query
type ListOrdersHandler struct {
	repo    domain.OrderRepository
	session domain.SessionReader
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(repo domain.OrderRepository, session domain.SessionReader) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo, session: session}
}

// Handle returns the orders owned by the current user, newest first.
// With nobody logged in the list is empty.
func (h *ListOrdersHandler) Handle() []domain.Order {
	userID, ok := h.session.CurrentUser()
	if !ok {
		return []domain.Order{}
	}

	out := make([]domain.Order, 0)
	for _, order := range h.repo.All() {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	return out
}
