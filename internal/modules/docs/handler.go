package docs

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the catalog HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/docs", func(r chi.Router) {
		r.Get("/", h.search)
		r.Get("/stats", h.stats)
		r.Get("/{id}", h.getByID)
	})
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	productType := q.Get("product_type")
	if productType != "" {
		if _, ok := NormalizeProductType(productType); !ok {
			http.Error(w, "Invalid product_type. Must be one of: "+strings.Join(ProductTypes, ", "), http.StatusBadRequest)
			return
		}
	}

	page, err := queryInt(q.Get("page"), 1)
	if err != nil || page < 1 {
		http.Error(w, "page must be an integer greater than or equal to 1", http.StatusBadRequest)
		return
	}
	limit, err := queryInt(q.Get("limit"), 10)
	if err != nil || limit < 1 || limit > 100 {
		http.Error(w, "limit must be an integer between 1 and 100", http.StatusBadRequest)
		return
	}

	documents, err := h.service.Search(r.Context(), SearchParams{
		ProductType: productType,
		Search:      q.Get("search"),
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		http.Error(w, "Database error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if documents == nil {
		documents = []Document{}
	}
	respond(w, http.StatusOK, documents)
}

func (h *Handler) getByID(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, ErrInvalidID):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case err != nil:
		http.Error(w, "Database error: "+err.Error(), http.StatusInternalServerError)
	default:
		respond(w, http.StatusOK, doc)
	}
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		http.Error(w, "Database error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, stats)
}

func queryInt(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
