package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to the Pinger interface.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// Handler reports process liveness and backend reachability.
type Handler struct {
	mongo Pinger
	redis Pinger
}

func NewHandler(mongo, redis Pinger) *Handler { return &Handler{mongo: mongo, redis: redis} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/", h.root)
	r.Get("/health", h.health)
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]string{"message": "NVIDIA Documentation MCP Server is running"})
}

// health never fails the request; unreachable backends degrade the reported
// status instead.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{
		"status":  "healthy",
		"mongodb": "connected",
		"redis":   "connected",
	}
	if err := h.mongo.Ping(r.Context()); err != nil {
		status["mongodb"] = "disconnected"
		status["status"] = "degraded"
	}
	if err := h.redis.Ping(r.Context()); err != nil {
		status["redis"] = "disconnected"
		status["status"] = "degraded"
	}
	respond(w, http.StatusOK, status)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
