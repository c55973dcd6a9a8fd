// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/domain/battle"
)

// BattleDependencies defines the interface for battle pairing.
type BattleDependencies interface {
	DrawBattle(ctx context.Context) (Battle, error)
}

// BattleHandler handles battle pairing requests.
type BattleHandler struct {
	deps BattleDependencies
}

// NewBattleHandler creates a new battle handler.
func NewBattleHandler(deps BattleDependencies) *BattleHandler {
	return &BattleHandler{deps: deps}
}

// HandleGetBattle handles GET /api/battle requests.
func (h *BattleHandler) HandleGetBattle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	b, err := h.deps.DrawBattle(r.Context())
	if err != nil {
		if errors.Is(err, battle.ErrInsufficientModels) {
			writeError(w, http.StatusBadRequest, "insufficient_models", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}
