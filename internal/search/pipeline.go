package search

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/crismov/storefront/internal/catalog/domain"
)

// Sort orders
const (
	SortRelevance = "relevance"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortName      = "name"
)

// Filters describes one search over the catalog. The filter predicate is
// the conjunction of every set field; zero values disable a criterion
// (a MaxPrice of 0 means unbounded).
type Filters struct {
	Query     string
	Category  string
	MinPrice  float64
	MaxPrice  float64
	MinRating float64
	InStock   bool
	SortBy    string
}

// RatingFunc resolves a product id to its current review average.
type RatingFunc func(productID string) float64

// Apply filters and sorts the products. It is a pure function: no side
// effects, no persistence, and the input slice is never mutated.
func Apply(products []domain.Product, filters Filters, ratingOf RatingFunc) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matches(p, filters, ratingOf) {
			out = append(out, p)
		}
	}

	// Sorting happens only after filtering; relevance keeps input order
	switch filters.SortBy {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return ratingAvg(out[i], ratingOf) > ratingAvg(out[j], ratingOf)
		})
	case SortName:
		// Collators carry mutable iterator state and are not safe to
		// share across goroutines, so each sort builds its own.
		c := collate.New(language.BrazilianPortuguese)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Name, out[j].Name) < 0
		})
	}

	return out
}

func matches(p domain.Product, filters Filters, ratingOf RatingFunc) bool {
	if filters.Query != "" {
		q := strings.ToLower(filters.Query)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) &&
			!strings.Contains(strings.ToLower(p.Category.Name), q) {
			return false
		}
	}

	if filters.Category != "" && p.Category.Name != filters.Category {
		return false
	}

	if p.Price < filters.MinPrice {
		return false
	}
	if filters.MaxPrice > 0 && p.Price > filters.MaxPrice {
		return false
	}

	if filters.MinRating > 0 && ratingAvg(p, ratingOf) < filters.MinRating {
		return false
	}

	if filters.InStock && p.Stock <= 0 {
		return false
	}

	return true
}

func ratingAvg(p domain.Product, ratingOf RatingFunc) float64 {
	if ratingOf == nil {
		return 0
	}
	return ratingOf(strconv.Itoa(p.ID))
}
