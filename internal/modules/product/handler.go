package product

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the storefront API endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/api/products", h.listProducts)
	r.Post("/api/scan-market", h.scanMarket)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.Feed(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, items)
}

type scanMarketRequest struct {
	Keyword *string `json:"keyword"`
}

func (h *Handler) scanMarket(w http.ResponseWriter, r *http.Request) {
	var req scanMarketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	keyword := ""
	if req.Keyword != nil {
		keyword = *req.Keyword
	}
	respond(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": h.service.AcknowledgeScan(keyword),
	})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
