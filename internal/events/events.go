package events

import (
	"context"
	"time"
)

// Event types
const (
	EventTypeOrderCreated = "order.created"
)

// Kafka topics
const (
	TopicOrderCreated = "order-created"
)

// OrderCreatedEvent is emitted once per checkout.
type OrderCreatedEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	OrderID       string    `json:"order_id"`
	UserID        string    `json:"user_id"`
	ItemCount     int       `json:"item_count"`
	Subtotal      float64   `json:"subtotal"`
	Shipping      float64   `json:"shipping"`
	Total         float64   `json:"total"`
	PaymentMethod string    `json:"payment_method"`
	Timestamp     time.Time `json:"timestamp"`
}

// Publisher publishes storefront domain events.
type Publisher interface {
	PublishOrderCreated(ctx context.Context, event OrderCreatedEvent) error
	Close() error
}

// NopPublisher discards events. It is the default when no brokers are
// configured; the storefront works fully offline.
type NopPublisher struct{}

func (NopPublisher) PublishOrderCreated(context.Context, OrderCreatedEvent) error { return nil }
func (NopPublisher) Close() error                                                 { return nil }
