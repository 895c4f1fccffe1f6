package domain

import "time"

// AnonymousOwner marks orders placed while nobody is logged in
const AnonymousOwner = "anon"

// Order statuses
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Payment methods
const (
	PaymentCreditCard = "credit_card"
	PaymentBoleto     = "boleto"
	PaymentPix        = "pix"
)

// Shipping rule: orders above the threshold ship free, everything else
// pays the flat rate.
const (
	FreeShippingThreshold = 100.0
	FlatShippingRate      = 15.0
)

// OrderItem is a product snapshot taken at checkout time.
type OrderItem struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// ShippingAddress is the delivery destination captured at checkout.
type ShippingAddress struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// Order is created once at checkout and never mutated afterwards in this
// system; the status stays at its initial value.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Items           []OrderItem     `json:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	Subtotal        float64         `json:"subtotal"`
	Shipping        float64         `json:"shipping"`
	Total           float64         `json:"total"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ComputeShipping applies the storefront shipping rule to a subtotal.
func ComputeShipping(subtotal float64) float64 {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return FlatShippingRate
}

// ValidPaymentMethod reports whether the method is one the store accepts.
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCreditCard, PaymentBoleto, PaymentPix:
		return true
	}
	return false
}

// OrderRepository defines the contract for order persistence.
type OrderRepository interface {
	Prepend(order Order) error
	All() []Order
}

// SessionReader exposes who is currently logged in, if anyone.
type SessionReader interface {
	CurrentUser() (id string, ok bool)
}
