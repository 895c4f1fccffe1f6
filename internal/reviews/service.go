package reviews

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/crismov/storefront/internal/storage"
)

// StorageKey is the persisted reviews document key
const StorageKey = "reviews-storage"

// ErrUnauthorized is returned when a user tries to delete a review they
// did not author.
var ErrUnauthorized = fmt.Errorf("only the review author can delete it")

// Review is one entry in the append-only reviews ledger.
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// Rating is the derived aggregate for one product.
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// AddReviewRequest carries a new review submission.
type AddReviewRequest struct {
	ProductID string
	UserID    string
	UserName  string
	Rating    int
	Comment   string
}

// Service is the reviews ledger.
type Service struct {
	mu    sync.Mutex
	store storage.Store
}

// NewService returns a ledger over the given store.
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

func (s *Service) load(ctx context.Context) []Review {
	return storage.Get(ctx, s.store, StorageKey, []Review{})
}

// Add validates and appends a review, generating its id and timestamp.
func (s *Service) Add(ctx context.Context, req AddReviewRequest) (*Review, error) {
	if req.ProductID == "" {
		return nil, fmt.Errorf("product id is required")
	}
	if req.UserID == "" {
		return nil, fmt.Errorf("you must be logged in to review")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}
	if len(strings.TrimSpace(req.Comment)) < 10 {
		return nil, fmt.Errorf("comment must be at least 10 characters")
	}

	review := Review{
		ID:        fmt.Sprintf("review_%d_%s", time.Now().UnixMilli(), uuid.New().String()[:8]),
		ProductID: req.ProductID,
		UserID:    req.UserID,
		UserName:  req.UserName,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all := append(s.load(ctx), review)
	if err := storage.Set(ctx, s.store, StorageKey, all); err != nil {
		return nil, fmt.Errorf("failed to store review: %w", err)
	}
	return &review, nil
}

// ProductReviews returns the product's reviews, most recent first. The
// descending createdAt order is a contract relied on by the display layer.
func (s *Service) ProductReviews(ctx context.Context, productID string) []Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Review, 0)
	for _, r := range s.load(ctx) {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// ProductRating returns the review average rounded to one decimal plus the
// review count. A product with no reviews yields {0, 0}.
func (s *Service) ProductRating(ctx context.Context, productID string) Rating {
	reviews := s.ProductReviews(ctx, productID)
	if len(reviews) == 0 {
		return Rating{}
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	average := math.Round(float64(sum)/float64(len(reviews))*10) / 10

	return Rating{Average: average, Count: len(reviews)}
}

// Delete removes a review by id. Only the authoring user may delete it;
// anyone else gets ErrUnauthorized.
func (s *Service) Delete(ctx context.Context, reviewID, requesterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.load(ctx)
	for i, r := range all {
		if r.ID != reviewID {
			continue
		}
		if r.UserID != requesterID {
			return ErrUnauthorized
		}
		next := append(all[:i:i], all[i+1:]...)
		return storage.Set(ctx, s.store, StorageKey, next)
	}
	return fmt.Errorf("review %s not found", reviewID)
}
