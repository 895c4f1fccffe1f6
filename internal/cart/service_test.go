package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crismov/storefront/internal/catalog/domain"
	"github.com/crismov/storefront/internal/storage"
)

func testProduct(id int, price float64) domain.Product {
	return domain.Product{ID: id, Name: "product", Price: price, Stock: 10}
}

func TestAddItemAggregatesQuantity(t *testing.T) {
	svc := NewService(storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, testProduct(1, 89.9)))
	require.NoError(t, svc.AddItem(ctx, testProduct(1, 89.9)))

	items := svc.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, svc.TotalItems(ctx))
}

func TestAddItemDistinctProducts(t *testing.T) {
	svc := NewService(storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, testProduct(1, 10)))
	require.NoError(t, svc.AddItem(ctx, testProduct(2, 20)))

	assert.Len(t, svc.Items(ctx), 2)
	assert.Equal(t, 2, svc.TotalItems(ctx))
}

func TestTotalPrice(t *testing.T) {
	svc := NewService(storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, testProduct(1, 89.9)))
	require.NoError(t, svc.AddItem(ctx, testProduct(1, 89.9)))
	require.NoError(t, svc.AddItem(ctx, testProduct(2, 59.9)))

	assert.InDelta(t, 89.9*2+59.9, svc.TotalPrice(ctx), 0.001)
}

func TestTotalPriceEmptyCart(t *testing.T) {
	svc := NewService(storage.NewMemoryStore())

	assert.Zero(t, svc.TotalPrice(context.Background()))
}

func TestUpdateQuantity(t *testing.T) {
	svc := NewService(storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, testProduct(1, 10)))
	require.NoError(t, svc.UpdateQuantity(ctx, 1, 5))

	items := svc.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestUpdateQuantityRejectsBelowOne(t *testing.T) {
	svc := NewService(storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, testProduct(1, 10)))

	assert.ErrorIs(t, svc.UpdateQuantity(ctx, 1, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, svc.UpdateQuantity(ctx, 1, -3), ErrInvalidQuantity)

	// Quantity is untouched after the rejected updates
	items := svc.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestUpdateQuantityMissingProduct(t *testing.T) {
	svc := NewService(storage.NewMemoryStore())

	err := svc.UpdateQuantity(context.Background(), 99, 2)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidQuantity)
}

func TestRemoveItem(t *testing.T) {
	svc := NewService(storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, testProduct(1, 10)))
	require.NoError(t, svc.AddItem(ctx, testProduct(2, 20)))

	require.NoError(t, svc.RemoveItem(ctx, 1))

	items := svc.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Product.ID)
}

func TestRemoveItemAbsentIsNoop(t *testing.T) {
	svc := NewService(storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, testProduct(1, 10)))
	require.NoError(t, svc.RemoveItem(ctx, 42))

	assert.Len(t, svc.Items(ctx), 1)
}

func TestClear(t *testing.T) {
	svc := NewService(storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, testProduct(1, 10)))
	require.NoError(t, svc.Clear(ctx))

	assert.Empty(t, svc.Items(ctx))
	assert.Zero(t, svc.TotalItems(ctx))
}

func TestCartPersistsAcrossServices(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	first := NewService(store)
	require.NoError(t, first.AddItem(ctx, testProduct(1, 10)))

	second := NewService(store)
	assert.Equal(t, 1, second.TotalItems(ctx))
}
