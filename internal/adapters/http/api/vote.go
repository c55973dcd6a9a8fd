package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	service "github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/app"
)

// VoteDependencies defines the interface for vote submission.
type VoteDependencies interface {
	SubmitVote(ctx context.Context, winnerID, loserID, voterIP string) error
}

// VoteHandler handles vote requests.
type VoteHandler struct {
	deps VoteDependencies
}

// NewVoteHandler creates a new vote handler.
func NewVoteHandler(deps VoteDependencies) *VoteHandler {
	return &VoteHandler{deps: deps}
}

// voteRequest mirrors the JSON body of POST /api/vote.
type voteRequest struct {
	WinnerID string `json:"winner_id" validate:"required"`
	LoserID  string `json:"loser_id"  validate:"required"`
}

// HandlePostVote handles POST /api/vote requests.
func (h *VoteHandler) HandlePostVote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req voteRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	err := h.deps.SubmitVote(r.Context(), req.WinnerID, req.LoserID, clientIP(r))
	if err != nil {
		if errors.Is(err, service.ErrInvalidVote) {
			writeError(w, http.StatusBadRequest, "invalid_vote", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true, Message: "Vote recorded successfully"})
}

// clientIP extracts the voter address, preferring X-Forwarded-For when a
// proxy sits in front of the service.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i > 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
