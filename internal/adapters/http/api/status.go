package api

import (
	"context"
	"net/http"
)

// StatusDependencies defines the interface for status check bookkeeping.
type StatusDependencies interface {
	CreateStatusCheck(ctx context.Context, clientName string) (StatusCheck, error)
	ListStatusChecks(ctx context.Context) ([]StatusCheck, error)
}

// StatusHandler handles status check requests.
type StatusHandler struct {
	deps StatusDependencies
}

// NewStatusHandler creates a new status handler.
func NewStatusHandler(deps StatusDependencies) *StatusHandler {
	return &StatusHandler{deps: deps}
}

type statusRequest struct {
	ClientName string `json:"client_name" validate:"required"`
}

// HandleStatus handles GET and POST /api/status requests.
func (h *StatusHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *StatusHandler) create(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	check, err := h.deps.CreateStatusCheck(r.Context(), req.ClientName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, check)
}

func (h *StatusHandler) list(w http.ResponseWriter, r *http.Request) {
	checks, err := h.deps.ListStatusChecks(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, checks)
}
