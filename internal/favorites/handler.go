package favorites

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/crismov/storefront/internal/catalog/domain"
)

// Handler handles HTTP requests for favorites
type Handler struct {
	service *Service
	catalog domain.CatalogProvider

	requestCounter *prometheus.CounterVec
	favoritesCount prometheus.Gauge
}

// NewHandler creates a new favorites handler
func NewHandler(service *Service, catalog domain.CatalogProvider) *Handler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favorites_service_requests_total",
			Help: "Total number of requests to favorites endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	favoritesCount := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "favorites_service_entries",
			Help: "Number of favorited products",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(favoritesCount)

	return &Handler{
		service:        service,
		catalog:        catalog,
		requestCounter: requestCounter,
		favoritesCount: favoritesCount,
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

// List handles GET /favorites
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.List(r.Context()))
}

// Add handles POST /favorites. The snapshot is built server side from the
// catalog so later product changes cannot leak into stored entries.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID int `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, ok := h.catalog.GetByID(req.ProductID)
	if !ok {
		h.respondError(w, http.StatusNotFound, "Product not found")
		return
	}

	entry := Entry{
		ProductID: strconv.Itoa(product.ID),
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.Image,
		Category:  product.Category.Name,
	}
	if err := h.service.Add(r.Context(), entry); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.favoritesCount.Set(float64(len(h.service.List(r.Context()))))
	h.respondJSON(w, http.StatusOK, h.service.List(r.Context()))
}

// Remove handles DELETE /favorites/{id}
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	if err := h.service.Remove(r.Context(), productID); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.favoritesCount.Set(float64(len(h.service.List(r.Context()))))
	h.respondJSON(w, http.StatusOK, h.service.List(r.Context()))
}

// Check handles GET /favorites/{id}
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]
	h.respondJSON(w, http.StatusOK, map[string]bool{
		"favorite": h.service.IsFavorite(r.Context(), productID),
	})
}

// Clear handles DELETE /favorites
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Clear(r.Context()); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.favoritesCount.Set(0)
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Favorites cleared"})
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all favorites routes
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/favorites", h.withMetrics("/favorites", h.List)).Methods("GET")
	router.HandleFunc("/favorites", h.withMetrics("/favorites", h.Add)).Methods("POST")
	router.HandleFunc("/favorites", h.withMetrics("/favorites", h.Clear)).Methods("DELETE")
	router.HandleFunc("/favorites/{id}", h.withMetrics("/favorites/{id}", h.Check)).Methods("GET")
	router.HandleFunc("/favorites/{id}", h.withMetrics("/favorites/{id}", h.Remove)).Methods("DELETE")
}
