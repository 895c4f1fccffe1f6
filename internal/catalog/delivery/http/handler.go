package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/crismov/storefront/internal/catalog/domain"
	"github.com/crismov/storefront/internal/search"
)

// RatingSource resolves product review aggregates for search filtering.
type RatingSource interface {
	AverageFor(productID string) float64
}

// CatalogHandler handles HTTP requests for the catalog and search
type CatalogHandler struct {
	catalog domain.CatalogProvider
	ratings RatingSource

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewCatalogHandler creates a new catalog handler with Prometheus metrics
func NewCatalogHandler(catalog domain.CatalogProvider, ratings RatingSource) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_service_requests_total",
			Help: "Total number of requests to catalog endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_service_request_duration_seconds",
			Help:    "Duration of catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &CatalogHandler{
		catalog:        catalog,
		ratings:        ratings,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
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

func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// ListProducts handles GET /products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	categoryID, _ := strconv.Atoi(r.URL.Query().Get("category"))
	h.respondJSON(w, http.StatusOK, h.catalog.GetAll(categoryID))
}

// GetProduct handles GET /products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, ok := h.catalog.GetByID(id)
	if !ok {
		h.respondError(w, http.StatusNotFound, "Product not found")
		return
	}

	h.respondJSON(w, http.StatusOK, product)
}

// SearchProducts handles GET /products/search. All filters compose as a
// conjunction; sorting applies after filtering.
func (h *CatalogHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	minPrice, _ := strconv.ParseFloat(q.Get("minPrice"), 64)
	maxPrice, _ := strconv.ParseFloat(q.Get("maxPrice"), 64)
	minRating, _ := strconv.ParseFloat(q.Get("minRating"), 64)
	inStock, _ := strconv.ParseBool(q.Get("inStock"))

	filters := search.Filters{
		Query:     q.Get("q"),
		Category:  q.Get("category"),
		MinPrice:  minPrice,
		MaxPrice:  maxPrice,
		MinRating: minRating,
		InStock:   inStock,
		SortBy:    q.Get("sortBy"),
	}

	results := search.Apply(h.catalog.GetAll(0), filters, h.ratings.AverageFor)
	h.respondJSON(w, http.StatusOK, results)
}

// ListCategories handles GET /categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.catalog.Categories())
}

// GetCategory handles GET /categories/{id}
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	category, ok := h.catalog.CategoryByID(id)
	if !ok {
		h.respondError(w, http.StatusNotFound, "Category not found")
		return
	}

	h.respondJSON(w, http.StatusOK, category)
}

func (h *CatalogHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *CatalogHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/products", h.metricsMiddleware("/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/products/search", h.metricsMiddleware("/products/search", h.SearchProducts)).Methods("GET")
	router.HandleFunc("/products/{id:[0-9]+}", h.metricsMiddleware("/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/categories", h.metricsMiddleware("/categories", h.ListCategories)).Methods("GET")
	router.HandleFunc("/categories/{id}", h.metricsMiddleware("/categories/{id}", h.GetCategory)).Methods("GET")
}
