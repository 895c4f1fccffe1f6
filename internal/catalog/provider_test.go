package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAll(t *testing.T) {
	p := NewProvider()

	all := p.GetAll(0)
	assert.Len(t, all, 4)
}

func TestGetAllFiltersByCategory(t *testing.T) {
	p := NewProvider()

	shirts := p.GetAll(1)
	require.Len(t, shirts, 2)
	for _, product := range shirts {
		assert.Equal(t, 1, product.Category.ID)
	}

	assert.Empty(t, p.GetAll(99))
}

func TestGetByID(t *testing.T) {
	p := NewProvider()

	product, ok := p.GetByID(2)
	require.True(t, ok)
	assert.Equal(t, "Tênis Walk in Faith", product.Name)

	_, ok = p.GetByID(99)
	assert.False(t, ok)
}

func TestGetByIDReturnsCopy(t *testing.T) {
	p := NewProvider()

	product, ok := p.GetByID(1)
	require.True(t, ok)
	product.Name = "mutated"

	again, ok := p.GetByID(1)
	require.True(t, ok)
	assert.Equal(t, "Camiseta Jesus Saves", again.Name)
}

func TestSearch(t *testing.T) {
	p := NewProvider()

	got := p.Search("camiseta")
	assert.Len(t, got, 2)

	// Description text matches too
	got = p.Search("térmico")
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)

	assert.Empty(t, p.Search("nonexistent"))
}

func TestCategories(t *testing.T) {
	p := NewProvider()

	categories := p.Categories()
	require.Len(t, categories, 3)

	category, ok := p.CategoryByID(3)
	require.True(t, ok)
	assert.Equal(t, "Copos", category.Name)

	_, ok = p.CategoryByID(99)
	assert.False(t, ok)
}
