package reviews

import "context"

// RatingAdapter exposes review averages to the search pipeline without the
// full ledger surface.
type RatingAdapter struct {
	svc *Service
}

// NewRatingAdapter returns a rating view over the ledger.
func NewRatingAdapter(svc *Service) *RatingAdapter {
	return &RatingAdapter{svc: svc}
}

// AverageFor returns the product's current review average, 0 when unreviewed.
func (a *RatingAdapter) AverageFor(productID string) float64 {
	return a.svc.ProductRating(context.Background(), productID).Average
}
