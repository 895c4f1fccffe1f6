package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crismov/storefront/internal/events"
	"github.com/crismov/storefront/internal/orders/domain"
	"github.com/crismov/storefront/internal/orders/repository"
	"github.com/crismov/storefront/internal/storage"
)

type fakeSession struct {
	id string
	ok bool
}

func (f fakeSession) CurrentUser() (string, bool) {
	return f.id, f.ok
}

func validCommand() CreateOrderCommand {
	return CreateOrderCommand{
		Items: []domain.OrderItem{
			{ProductID: 1, Name: "Camiseta", Price: 89.9, Quantity: 1},
		},
		ShippingAddress: domain.ShippingAddress{
			Name:    "Maria Silva",
			Email:   "maria@example.com",
			Phone:   "11999990000",
			Address: "Rua A, 123",
			City:    "São Paulo",
			State:   "SP",
			ZipCode: "01000-000",
		},
		PaymentMethod: domain.PaymentPix,
	}
}

func newHandler(session domain.SessionReader) (*CreateOrderHandler, domain.OrderRepository) {
	repo := repository.NewStoreOrderRepository(storage.NewMemoryStore())
	return NewCreateOrderHandler(repo, session, events.NopPublisher{}), repo
}

func TestCreateOrder(t *testing.T) {
	handler, repo := newHandler(fakeSession{id: "user-1", ok: true})

	order, err := handler.Handle(context.Background(), validCommand())
	require.NoError(t, err)

	assert.Contains(t, order.ID, "ORDER-")
	assert.Equal(t, "user-1", order.UserID)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Len(t, repo.All(), 1)
}

func TestCreateOrderAnonymousOwner(t *testing.T) {
	handler, _ := newHandler(fakeSession{})

	order, err := handler.Handle(context.Background(), validCommand())
	require.NoError(t, err)

	assert.Equal(t, domain.AnonymousOwner, order.UserID)
}

func TestCreateOrderShippingBelowThreshold(t *testing.T) {
	handler, _ := newHandler(fakeSession{})

	cmd := validCommand()
	cmd.Items = []domain.OrderItem{{ProductID: 1, Name: "Copo", Price: 59.9, Quantity: 1}}

	order, err := handler.Handle(context.Background(), cmd)
	require.NoError(t, err)

	assert.InDelta(t, 59.9, order.Subtotal, 0.001)
	assert.Equal(t, domain.FlatShippingRate, order.Shipping)
	assert.InDelta(t, 74.9, order.Total, 0.001)
}

func TestCreateOrderFreeShippingAboveThreshold(t *testing.T) {
	handler, _ := newHandler(fakeSession{})

	cmd := validCommand()
	cmd.Items = []domain.OrderItem{{ProductID: 2, Name: "Tênis", Price: 249.9, Quantity: 1}}

	order, err := handler.Handle(context.Background(), cmd)
	require.NoError(t, err)

	assert.Zero(t, order.Shipping)
	assert.InDelta(t, 249.9, order.Total, 0.001)
}

func TestCreateOrderValidation(t *testing.T) {
	handler, repo := newHandler(fakeSession{})
	ctx := context.Background()

	empty := validCommand()
	empty.Items = nil
	_, err := handler.Handle(ctx, empty)
	assert.Error(t, err)

	badQuantity := validCommand()
	badQuantity.Items[0].Quantity = 0
	_, err = handler.Handle(ctx, badQuantity)
	assert.Error(t, err)

	missingCity := validCommand()
	missingCity.ShippingAddress.City = ""
	_, err = handler.Handle(ctx, missingCity)
	assert.Error(t, err)

	badPayment := validCommand()
	badPayment.PaymentMethod = "cheque"
	_, err = handler.Handle(ctx, badPayment)
	assert.Error(t, err)

	// Nothing was persisted by the rejected commands
	assert.Empty(t, repo.All())
}

func TestCreateOrderPrependsNewestFirst(t *testing.T) {
	handler, repo := newHandler(fakeSession{id: "user-1", ok: true})
	ctx := context.Background()

	first, err := handler.Handle(ctx, validCommand())
	require.NoError(t, err)
	second, err := handler.Handle(ctx, validCommand())
	require.NoError(t, err)

	all := repo.All()
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}
