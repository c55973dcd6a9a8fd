// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"fmt"
	"net/http"
)

// ModelsDependencies defines the interface for catalog operations.
type ModelsDependencies interface {
	SeedModels(ctx context.Context) (int, error)
	ListModels(ctx context.Context) ([]Model, error)
}

// ModelsHandler handles model catalog requests.
type ModelsHandler struct {
	deps ModelsDependencies
}

// NewModelsHandler creates a new models handler.
func NewModelsHandler(deps ModelsDependencies) *ModelsHandler {
	return &ModelsHandler{deps: deps}
}

// HandleSeed handles POST /api/models/seed requests.
func (h *ModelsHandler) HandleSeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	n, err := h.deps.SeedModels(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{
		Success: true,
		Message: fmt.Sprintf("Seeded %d LLM models", n),
	})
}

// HandleList handles GET /api/models requests.
func (h *ModelsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	models, err := h.deps.ListModels(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, models)
}
