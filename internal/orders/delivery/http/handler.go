package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/crismov/storefront/internal/cart"
	"github.com/crismov/storefront/internal/events"
	"github.com/crismov/storefront/internal/orders/domain"
	"github.com/crismov/storefront/internal/orders/usecase/command"
	"github.com/crismov/storefront/internal/orders/usecase/query"
)

// OrderHandler handles HTTP requests for orders and checkout
type OrderHandler struct {
	createHandler *command.CreateOrderHandler
	listHandler   *query.ListOrdersHandler
	getHandler    *query.GetOrderHandler
	cart          *cart.Service

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewOrderHandler creates a new order handler with Prometheus metrics
func NewOrderHandler(repo domain.OrderRepository, session domain.SessionReader, publisher events.Publisher, cartSvc *cart.Service) *OrderHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_service_requests_total",
			Help: "Total number of requests to order endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_service_request_duration_seconds",
			Help:    "Duration of order requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &OrderHandler{
		createHandler:  command.NewCreateOrderHandler(repo, session, publisher),
		listHandler:    query.NewListOrdersHandler(repo, session),
		getHandler:     query.NewGetOrderHandler(repo),
		cart:           cartSvc,
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

func (h *OrderHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// createOrderRequest is the typed checkout payload
type createOrderRequest struct {
	Items           []domain.OrderItem     `json:"items"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
}

// Create handles POST /orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.createHandler.Handle(r.Context(), command.CreateOrderCommand{
		Items:           req.Items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusCreated, order)
}

// Checkout handles POST /checkout: it turns the current cart into an order
// and clears the cart once the order is durable.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
		PaymentMethod   string                 `json:"paymentMethod"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	items := h.cart.Items(r.Context())
	orderItems := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, domain.OrderItem{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
			Image:     item.Product.Image,
		})
	}

	order, err := h.createHandler.Handle(r.Context(), command.CreateOrderCommand{
		Items:           orderItems,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.cart.Clear(r.Context()); err != nil {
		h.respondError(w, http.StatusInternalServerError, "order created but cart could not be cleared")
		return
	}

	h.respondJSON(w, http.StatusCreated, order)
}

// List handles GET /orders (current user's history)
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.listHandler.Handle())
}

// Get handles GET /orders/{id}
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	order, err := h.getHandler.Handle(vars["id"])
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *OrderHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/orders", h.metricsMiddleware("/orders", h.Create)).Methods("POST")
	router.HandleFunc("/orders", h.metricsMiddleware("/orders", h.List)).Methods("GET")
	router.HandleFunc("/orders/{id}", h.metricsMiddleware("/orders/{id}", h.Get)).Methods("GET")
	router.HandleFunc("/checkout", h.metricsMiddleware("/checkout", h.Checkout)).Methods("POST")
}
