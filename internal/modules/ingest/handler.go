package ingest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the manual ingestion trigger.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/api/docs/ingest", h.trigger)
}

type triggerResponse struct {
	Message            string `json:"message"`
	DocumentsProcessed int    `json:"documents_processed"`
	Status             string `json:"status"`
}

func (h *Handler) trigger(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.Run(r.Context())
	if err != nil {
		http.Error(w, "Ingestion failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, triggerResponse{
		Message:            "Ingestion completed successfully",
		DocumentsProcessed: count,
		Status:             "success",
	})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
