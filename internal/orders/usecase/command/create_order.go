package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/crismov/storefront/internal/events"
	"github.com/crismov/storefront/internal/orders/domain"
	"github.com/crismov/storefront/pkg/logger"
)

// CreateOrderCommand represents the command to create an order at checkout
type CreateOrderCommand struct {
	Items           []domain.OrderItem
	ShippingAddress domain.ShippingAddress
	PaymentMethod   string
}

// CreateOrderHandler handles order creation
type CreateOrderHandler struct {
	repo      domain.OrderRepository
	session   domain.SessionReader
	publisher events.Publisher
}

// NewCreateOrderHandler creates a new create order handler
func NewCreateOrderHandler(repo domain.OrderRepository, session domain.SessionReader, publisher events.Publisher) *CreateOrderHandler {
	return &CreateOrderHandler{repo: repo, session: session, publisher: publisher}
}

// Handle validates the checkout payload, stamps a pending order owned by
// the current user (or the anonymous sentinel) and prepends it to the
// persisted list.
func (h *CreateOrderHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error) {
	if len(cmd.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}
	for _, item := range cmd.Items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("item %q has an invalid quantity", item.Name)
		}
	}
	if err := validateAddress(cmd.ShippingAddress); err != nil {
		return nil, err
	}
	if !domain.ValidPaymentMethod(cmd.PaymentMethod) {
		return nil, fmt.Errorf("invalid payment method: %s", cmd.PaymentMethod)
	}

	subtotal := 0.0
	for _, item := range cmd.Items {
		subtotal += item.Price * float64(item.Quantity)
	}
	shipping := domain.ComputeShipping(subtotal)

	ownerID := domain.AnonymousOwner
	if id, ok := h.session.CurrentUser(); ok {
		ownerID = id
	}

	order := domain.Order{
		ID:              fmt.Sprintf("ORDER-%s", uuid.New().String()[:8]),
		UserID:          ownerID,
		Items:           cmd.Items,
		ShippingAddress: cmd.ShippingAddress,
		PaymentMethod:   cmd.PaymentMethod,
		Subtotal:        subtotal,
		Shipping:        shipping,
		Total:           subtotal + shipping,
		Status:          domain.StatusPending,
		CreatedAt:       time.Now(),
	}

	if err := h.repo.Prepend(order); err != nil {
		return nil, fmt.Errorf("failed to store order: %w", err)
	}

	if err := h.publisher.PublishOrderCreated(ctx, events.OrderCreatedEvent{
		OrderID:       order.ID,
		UserID:        order.UserID,
		ItemCount:     len(order.Items),
		Subtotal:      order.Subtotal,
		Shipping:      order.Shipping,
		Total:         order.Total,
		PaymentMethod: order.PaymentMethod,
	}); err != nil {
		// The order is already durable; a failed event is not fatal
		logger.Warn(ctx).Err(err).Str("order_id", order.ID).Msg("order event publish failed")
	}

	return &order, nil
}

func validateAddress(addr domain.ShippingAddress) error {
	required := map[string]string{
		"name":     addr.Name,
		"email":    addr.Email,
		"phone":    addr.Phone,
		"address":  addr.Address,
		"city":     addr.City,
		"state":    addr.State,
		"zip code": addr.ZipCode,
	}
	for field, value := range required {
		if value == "" {
			return fmt.Errorf("shipping %s is required", field)
		}
	}
	return nil
}
