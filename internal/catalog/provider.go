package catalog

import (
	"time"

	"github.com/crismov/storefront/internal/catalog/domain"
)

// Provider serves the fixed product catalog. All queries return copies,
// callers cannot mutate the seed data through the results.
type Provider struct {
	categories []domain.Category
	products   []domain.Product
}

// NewProvider builds the provider over the seed catalog.
func NewProvider() *Provider {
	now := time.Now()

	categories := []domain.Category{
		{ID: 1, Name: "Camisetas", Description: "Roupas com mensagens de fé", CreatedAt: now, UpdatedAt: now},
		{ID: 2, Name: "Tênis", Description: "Calçados com estilo cristão", CreatedAt: now, UpdatedAt: now},
		{ID: 3, Name: "Copos", Description: "Utensílios e acessórios", CreatedAt: now, UpdatedAt: now},
	}

	products := []domain.Product{
		{ID: 1, Name: "Camiseta Jesus Saves", Description: "100% algodão, estampa premium", Price: 89.9, Image: "/img/camiseta-jesus.jpg", Category: categories[0], Stock: 20, Rating: 4.6, CreatedAt: now, UpdatedAt: now},
		{ID: 2, Name: "Tênis Walk in Faith", Description: "Conforto e estilo", Price: 249.9, Image: "/img/tenis-faith.jpg", Category: categories[1], Stock: 12, Rating: 4.2, CreatedAt: now, UpdatedAt: now},
		{ID: 3, Name: "Copo Hope 500ml", Description: "Copo térmico com mensagem", Price: 59.9, Image: "/img/copo-hope.jpg", Category: categories[2], Stock: 30, Rating: 4.8, CreatedAt: now, UpdatedAt: now},
		{ID: 4, Name: "Camiseta Oficial", Description: "Oficial Cristão Movement", Price: 99.9, Image: "/img/camiseta.jpg", Category: categories[0], Stock: 15, Rating: 4.4, CreatedAt: now, UpdatedAt: now},
	}

	return &Provider{categories: categories, products: products}
}

// GetAll returns every product, optionally narrowed to one category.
// A categoryID of 0 means no category filter.
func (p *Provider) GetAll(categoryID int) []domain.Product {
	out := make([]domain.Product, 0, len(p.products))
	for _, product := range p.products {
		if categoryID != 0 && product.Category.ID != categoryID {
			continue
		}
		out = append(out, product)
	}
	return out
}

// GetByID returns the product with the given id, if any.
func (p *Provider) GetByID(id int) (*domain.Product, bool) {
	for _, product := range p.products {
		if product.ID == id {
			cp := product
			return &cp, true
		}
	}
	return nil, false
}

// Search returns products whose name or description contains the query,
// case-insensitively.
func (p *Provider) Search(query string) []domain.Product {
	out := make([]domain.Product, 0, len(p.products))
	for _, product := range p.products {
		if product.MatchesQuery(query) {
			out = append(out, product)
		}
	}
	return out
}

// Categories returns every catalog category.
func (p *Provider) Categories() []domain.Category {
	out := make([]domain.Category, len(p.categories))
	copy(out, p.categories)
	return out
}

// CategoryByID returns the category with the given id, if any.
func (p *Provider) CategoryByID(id int) (*domain.Category, bool) {
	for _, category := range p.categories {
		if category.ID == id {
			cp := category
			return &cp, true
		}
	}
	return nil, false
}
