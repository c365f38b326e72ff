package cache

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/user/articlehub-go/auth"
)

// ItemsHandler serves the item endpoint that demonstrates the cache-aside
// read path: check the cache, on a hit return the cached value, on a miss
// fetch the canonical value, populate the cache with a fixed TTL, and return
// the fresh value. Two concurrent misses for the same key may both fetch and
// both write; recomputation is idempotent, so the race is accepted rather
// than serialized.
type ItemsHandler struct {
	service *Service
	ttl     time.Duration
}

// NewItemsHandler creates an ItemsHandler with the configured item TTL.
func NewItemsHandler(service *Service, ttl time.Duration) *ItemsHandler {
	return &ItemsHandler{service: service, ttl: ttl}
}

// RegisterRoutes mounts the item endpoints.
func (h *ItemsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/{id}", h.handleGetItem)
}

// handleGetItem godoc
// @Summary Get an item by ID
// @Description Returns the item, served from cache when a live entry exists.
// @Tags Items
// @Produce plain
// @Param id path string true "Item ID"
// @Success 200 {string} string "Item value"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /items/{id} [get]
func (h *ItemsHandler) handleGetItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	cached, ok, err := h.service.GetCache(r.Context(), id)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	if ok {
		writeText(w, "Cached: "+cached)
		return
	}

	// Miss: fetch from the system of record, then populate the cache.
	fetched := fetchItem(id)
	if err := h.service.SetCache(r.Context(), id, fetched, h.ttl); err != nil {
		auth.WriteError(w, r, err)
		return
	}
	writeText(w, fetched)
}

// fetchItem stands in for the canonical lookup; the endpoint exists to
// exercise the caching path, not a real item store.
func fetchItem(id string) string {
	return fmt.Sprintf("Item %s from DB", id)
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, body)
}
