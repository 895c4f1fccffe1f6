package search

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crismov/storefront/internal/catalog/domain"
)

func fixture() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Camiseta Jesus Saves", Description: "100% algodão", Price: 89.9, Category: domain.Category{ID: 1, Name: "Camisetas"}, Stock: 20},
		{ID: 2, Name: "Tênis Walk in Faith", Description: "Conforto e estilo", Price: 249.9, Category: domain.Category{ID: 2, Name: "Tênis"}, Stock: 12},
		{ID: 3, Name: "Copo Hope 500ml", Description: "Copo térmico", Price: 59.9, Category: domain.Category{ID: 3, Name: "Copos"}, Stock: 0},
		{ID: 4, Name: "Camiseta Oficial", Description: "Oficial", Price: 149.9, Category: domain.Category{ID: 1, Name: "Camisetas"}, Stock: 15},
	}
}

func ratings(avgs map[string]float64) RatingFunc {
	return func(productID string) float64 {
		return avgs[productID]
	}
}

func ids(products []domain.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestApplyNoFiltersKeepsInputOrder(t *testing.T) {
	got := Apply(fixture(), Filters{}, nil)

	assert.Equal(t, []int{1, 2, 3, 4}, ids(got))
}

func TestApplyFilterConjunction(t *testing.T) {
	filters := Filters{
		MinPrice: 100,
		MaxPrice: 200,
		InStock:  true,
	}

	got := Apply(fixture(), filters, nil)

	// Only the product that satisfies every criterion survives
	assert.Equal(t, []int{4}, ids(got))
}

func TestApplyTextQuery(t *testing.T) {
	got := Apply(fixture(), Filters{Query: "camiseta"}, nil)
	assert.Equal(t, []int{1, 4}, ids(got))

	// Description matches too
	got = Apply(fixture(), Filters{Query: "térmico"}, nil)
	assert.Equal(t, []int{3}, ids(got))

	// Category name matches as well
	got = Apply(fixture(), Filters{Query: "copos"}, nil)
	assert.Equal(t, []int{3}, ids(got))
}

func TestApplyCategoryFilter(t *testing.T) {
	got := Apply(fixture(), Filters{Category: "Camisetas"}, nil)

	assert.Equal(t, []int{1, 4}, ids(got))
}

func TestApplyInStockFilter(t *testing.T) {
	got := Apply(fixture(), Filters{InStock: true}, nil)

	assert.NotContains(t, ids(got), 3)
}

func TestApplyMaxPriceZeroIsUnbounded(t *testing.T) {
	got := Apply(fixture(), Filters{MaxPrice: 0}, nil)

	assert.Len(t, got, 4)
}

func TestApplyMinRating(t *testing.T) {
	avgs := ratings(map[string]float64{"1": 4.5, "2": 3.0, "3": 5.0, "4": 4.0})

	got := Apply(fixture(), Filters{MinRating: 4}, avgs)

	assert.Equal(t, []int{1, 3, 4}, ids(got))
}

func TestApplyMinRatingZeroSkipsRatingLookup(t *testing.T) {
	// Unrated products pass when no rating floor is set
	got := Apply(fixture(), Filters{MinRating: 0}, ratings(nil))

	assert.Len(t, got, 4)
}

func TestSortPriceLow(t *testing.T) {
	got := Apply(fixture(), Filters{SortBy: SortPriceLow}, nil)

	assert.Equal(t, []int{3, 1, 4, 2}, ids(got))
}

func TestSortPriceHigh(t *testing.T) {
	got := Apply(fixture(), Filters{SortBy: SortPriceHigh}, nil)

	assert.Equal(t, []int{2, 4, 1, 3}, ids(got))
}

func TestSortRating(t *testing.T) {
	avgs := ratings(map[string]float64{"1": 4.5, "2": 3.0, "3": 5.0, "4": 4.0})

	got := Apply(fixture(), Filters{SortBy: SortRating}, avgs)

	assert.Equal(t, []int{3, 1, 4, 2}, ids(got))
}

func TestSortName(t *testing.T) {
	got := Apply(fixture(), Filters{SortBy: SortName}, nil)

	require.Len(t, got, 4)
	assert.Equal(t, "Camiseta Jesus Saves", got[0].Name)
	assert.Equal(t, "Camiseta Oficial", got[1].Name)
	assert.Equal(t, "Copo Hope 500ml", got[2].Name)
	assert.Equal(t, "Tênis Walk in Faith", got[3].Name)
}

// Name sorting is reached from concurrent HTTP requests, so parallel
// calls must stay race-free and each return the same ordering.
func TestSortNameConcurrent(t *testing.T) {
	products := fixture()
	want := []int{1, 4, 3, 2}

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				got := Apply(products, Filters{SortBy: SortName}, nil)
				assert.Equal(t, want, ids(got))
			}
		}()
	}
	wg.Wait()
}

func TestSortRelevanceKeepsFilteredOrder(t *testing.T) {
	got := Apply(fixture(), Filters{Query: "camiseta", SortBy: SortRelevance}, nil)

	assert.Equal(t, []int{1, 4}, ids(got))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	products := fixture()

	Apply(products, Filters{SortBy: SortPriceHigh}, nil)

	assert.Equal(t, []int{1, 2, 3, 4}, ids(products))
}
