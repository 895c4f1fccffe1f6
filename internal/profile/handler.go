package profile

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// Handler handles HTTP requests for the user profile
type Handler struct {
	service *Service
}

// NewHandler creates a new profile handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Get handles GET /profile
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.Get(r.Context()))
}

// Save handles PUT /profile
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var p UserProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.Save(r.Context(), p); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, p)
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers all profile routes
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/profile", h.Get).Methods("GET")
	router.HandleFunc("/profile", h.Save).Methods("PUT")
}
