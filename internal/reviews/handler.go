package reviews

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

// UserSource exposes the current user for review authorship.
type UserSource interface {
	Current() (id, name string, ok bool)
}

// Handler handles HTTP requests for reviews
type Handler struct {
	service *Service
	users   UserSource

	requestCounter *prometheus.CounterVec
}

// NewHandler creates a new reviews handler
func NewHandler(service *Service, users UserSource) *Handler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviews_service_requests_total",
			Help: "Total number of requests to review endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	prometheus.MustRegister(requestCounter)

	return &Handler{
		service:        service,
		users:          users,
		requestCounter: requestCounter,
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (h *Handler) withMetrics(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// ListForProduct handles GET /products/{id}/reviews
func (h *Handler) ListForProduct(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]
	h.respondJSON(w, http.StatusOK, h.service.ProductReviews(r.Context(), productID))
}

// RatingForProduct handles GET /products/{id}/rating
func (h *Handler) RatingForProduct(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]
	h.respondJSON(w, http.StatusOK, h.service.ProductRating(r.Context(), productID))
}

// Add handles POST /reviews. Authorship comes from the session, not the
// request body.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
		Rating    int    `json:"rating"`
		Comment   string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, userName, ok := h.users.Current()
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "You must be logged in to review")
		return
	}

	review, err := h.service.Add(r.Context(), AddReviewRequest{
		ProductID: req.ProductID,
		UserID:    userID,
		UserName:  userName,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusCreated, review)
}

// Delete handles DELETE /reviews/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	reviewID := mux.Vars(r)["id"]

	userID, _, ok := h.users.Current()
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "You must be logged in")
		return
	}

	if err := h.service.Delete(r.Context(), reviewID, userID); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			h.respondError(w, http.StatusForbidden, err.Error())
			return
		}
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Review deleted"})
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all review routes
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/products/{id}/reviews", h.withMetrics("/products/{id}/reviews", h.ListForProduct)).Methods("GET")
	router.HandleFunc("/products/{id}/rating", h.withMetrics("/products/{id}/rating", h.RatingForProduct)).Methods("GET")
	router.HandleFunc("/reviews", h.withMetrics("/reviews", h.Add)).Methods("POST")
	router.HandleFunc("/reviews/{id}", h.withMetrics("/reviews/{id}", h.Delete)).Methods("DELETE")
}
