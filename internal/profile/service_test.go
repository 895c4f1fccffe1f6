package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crismov/storefront/internal/storage"
)

func TestGetEmptyProfile(t *testing.T) {
	svc := NewService(storage.NewMemoryStore())

	assert.Equal(t, UserProfile{}, svc.Get(context.Background()))
}

func TestSaveAndGet(t *testing.T) {
	svc := NewService(storage.NewMemoryStore())
	ctx := context.Background()

	want := UserProfile{
		Name:    "Maria Silva",
		Email:   "maria@example.com",
		Phone:   "11999990000",
		Address: "Rua A, 123",
		City:    "São Paulo",
		State:   "SP",
		ZipCode: "01000-000",
	}
	require.NoError(t, svc.Save(ctx, want))

	assert.Equal(t, want, svc.Get(ctx))
}

func TestSaveValidation(t *testing.T) {
	svc := NewService(storage.NewMemoryStore())
	ctx := context.Background()

	err := svc.Save(ctx, UserProfile{Name: "  ", Email: "maria@example.com"})
	assert.Error(t, err)

	err = svc.Save(ctx, UserProfile{Name: "Maria", Email: "not-an-email"})
	assert.Error(t, err)
}

func TestSaveOverwrites(t *testing.T) {
	svc := NewService(storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, UserProfile{Name: "Maria", Email: "maria@example.com"}))
	require.NoError(t, svc.Save(ctx, UserProfile{Name: "Maria Silva", Email: "maria@example.com", City: "Campinas"}))

	got := svc.Get(ctx)
	assert.Equal(t, "Maria Silva", got.Name)
	assert.Equal(t, "Campinas", got.City)
}
