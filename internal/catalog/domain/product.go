package domain

import (
	"strings"
	"time"
)

// Category represents a static catalog category
type Category struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Product represents a purchasable catalog product. Products are immutable
// in this system; the category is embedded, not referenced by id.
type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Category    Category  `json:"category"`
	Stock       int       `json:"stock"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InStock reports whether the product can be purchased
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// MatchesQuery reports a case-insensitive substring match against the
// product name or description.
func (p *Product) MatchesQuery(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

// CatalogProvider defines the read-only contract for catalog access
type CatalogProvider interface {
	GetAll(categoryID int) []Product
	GetByID(id int) (*Product, bool)
	Search(query string) []Product
	Categories() []Category
	CategoryByID(id int) (*Category, bool)
}
