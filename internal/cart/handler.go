package cart

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/crismov/storefront/internal/catalog/domain"
)

// Handler handles HTTP requests for the cart
type Handler struct {
	service *Service
	catalog domain.CatalogProvider

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	cartItems      prometheus.Gauge
}

// NewHandler creates a new cart handler with Prometheus metrics
func NewHandler(service *Service, catalog domain.CatalogProvider) *Handler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_service_requests_total",
			Help: "Total number of requests to cart endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cart_service_request_duration_seconds",
			Help:    "Duration of cart requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	cartItems := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_service_items",
			Help: "Number of items currently in the cart",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(cartItems)

	return &Handler{
		service:        service,
		catalog:        catalog,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		cartItems:      cartItems,
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

func (h *Handler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// Get handles GET /cart
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	items := h.service.Items(ctx)

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"items":      items,
		"totalItems": h.service.TotalItems(ctx),
		"totalPrice": h.service.TotalPrice(ctx),
	})
}

// AddItem handles POST /cart/items
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.AddItem(r.Context(), *product); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.updateItemsGauge(r)
	h.respondJSON(w, http.StatusOK, h.service.Items(r.Context()))
}

// UpdateQuantity handles PUT /cart/items/{id}. A quantity of zero or less
// removes the entry instead of storing it, matching the storefront UI
// contract; the service itself rejects such quantities.
func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Quantity <= 0 {
		if err := h.service.RemoveItem(r.Context(), productID); err != nil {
			h.respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
	} else if err := h.service.UpdateQuantity(r.Context(), productID, req.Quantity); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrInvalidQuantity) {
			status = http.StatusUnprocessableEntity
		}
		h.respondError(w, status, err.Error())
		return
	}

	h.updateItemsGauge(r)
	h.respondJSON(w, http.StatusOK, h.service.Items(r.Context()))
}

// RemoveItem handles DELETE /cart/items/{id}
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.service.RemoveItem(r.Context(), productID); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.updateItemsGauge(r)
	h.respondJSON(w, http.StatusOK, h.service.Items(r.Context()))
}

// Clear handles DELETE /cart
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Clear(r.Context()); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.updateItemsGauge(r)
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Cart cleared"})
}

func (h *Handler) updateItemsGauge(r *http.Request) {
	h.cartItems.Set(float64(h.service.TotalItems(r.Context())))
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all cart routes
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/cart", h.metricsMiddleware("/cart", h.Get)).Methods("GET")
	router.HandleFunc("/cart", h.metricsMiddleware("/cart", h.Clear)).Methods("DELETE")
	router.HandleFunc("/cart/items", h.metricsMiddleware("/cart/items", h.AddItem)).Methods("POST")
	router.HandleFunc("/cart/items/{id}", h.metricsMiddleware("/cart/items/{id}", h.UpdateQuantity)).Methods("PUT")
	router.HandleFunc("/cart/items/{id}", h.metricsMiddleware("/cart/items/{id}", h.RemoveItem)).Methods("DELETE")
}
