//go:build wireinject
// +build wireinject

package orders

import (
	"github.com/google/wire"

	"github.com/crismov/storefront/internal/cart"
	"github.com/crismov/storefront/internal/events"
	httpDelivery "github.com/crismov/storefront/internal/orders/delivery/http"
	"github.com/crismov/storefront/internal/orders/domain"
	"github.com/crismov/storefront/internal/orders/repository"
	"github.com/crismov/storefront/internal/storage"
)

// ProvideOrderRepository provides the order repository
func ProvideOrderRepository(store storage.Store) domain.OrderRepository {
	return repository.NewStoreOrderRepository(store)
}

// RepositorySet wires the repository behind its interface
var RepositorySet = wire.NewSet(
	ProvideOrderRepository,
)

// InitializeOrderHandler initializes the HTTP handler with all dependencies
func InitializeOrderHandler(store storage.Store, session domain.SessionReader, publisher events.Publisher, cartSvc *cart.Service) *httpDelivery.OrderHandler {
	wire.Build(
		RepositorySet,
		httpDelivery.NewOrderHandler,
	)
	return nil
}
