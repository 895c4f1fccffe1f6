//go:build wireinject
// +build wireinject

package identity

import (
	"github.com/google/wire"

	httpDelivery "github.com/crismov/storefront/internal/identity/delivery/http"
	"github.com/crismov/storefront/internal/identity/domain"
	"github.com/crismov/storefront/internal/identity/repository"
	"github.com/crismov/storefront/internal/storage"
)

// ProvideUserRepository provides the identity repository
func ProvideUserRepository(store storage.Store) domain.UserRepository {
	return repository.NewStoreUserRepository(store)
}

// RepositorySet wires the repository behind its interface
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
)

// InitializeAuthHandler initializes the HTTP handler with all dependencies
func InitializeAuthHandler(store storage.Store) *httpDelivery.AuthHandler {
	wire.Build(
		RepositorySet,
		httpDelivery.NewAuthHandler,
	)
	return nil
}
