// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/adapters/agent"
	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/domain/model"
)

// Request bodies are checked with a shared validator instance.
var validate = validator.New() //nolint:gochecknoglobals // validator is safe for concurrent use

// Read shapes mirrored from the domain layer.
type (
	Model       = model.Model
	Battle      = model.Battle
	BattleStats = model.BattleStats
	StatusCheck = model.StatusCheck
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	SeedModels(ctx context.Context) (int, error)
	ListModels(ctx context.Context) ([]Model, error)
	DrawBattle(ctx context.Context) (Battle, error)
	SubmitVote(ctx context.Context, winnerID, loserID, voterIP string) error
	Leaderboard(ctx context.Context) ([]Model, error)
	BattleStats(ctx context.Context) (BattleStats, error)
	CreateStatusCheck(ctx context.Context, clientName string) (StatusCheck, error)
	ListStatusChecks(ctx context.Context) ([]StatusCheck, error)
	ExecuteAgent(ctx context.Context, agentType, prompt string, useTools bool) (agent.Result, []string, error)
	AgentCapabilities() map[string][]string
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statusHandler      *StatusHandler
	agentsHandler      *AgentsHandler
	modelsHandler      *ModelsHandler
	battleHandler      *BattleHandler
	voteHandler        *VoteHandler
	leaderboardHandler *LeaderboardHandler
	statsHandler       *StatsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(statsProvider),
		statusHandler:      NewStatusHandler(deps),
		agentsHandler:      NewAgentsHandler(deps),
		modelsHandler:      NewModelsHandler(deps),
		battleHandler:      NewBattleHandler(deps),
		voteHandler:        NewVoteHandler(deps),
		leaderboardHandler: NewLeaderboardHandler(deps),
		statsHandler:       NewStatsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux. Business routes live under the
// /api prefix; /healthz and /metrics stay at the root for operators.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", s.healthHandler.HandleHealth)
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)

	mux.HandleFunc("/api/", CORSMiddleware(MetricsMiddleware(handleRoot, "root")))
	mux.HandleFunc("/api/status", CORSMiddleware(MetricsMiddleware(s.statusHandler.HandleStatus, "status")))
	mux.HandleFunc("/api/chat", CORSMiddleware(MetricsMiddleware(s.agentsHandler.HandleChat, "chat")))
	mux.HandleFunc("/api/search", CORSMiddleware(MetricsMiddleware(s.agentsHandler.HandleSearch, "search")))
	mux.HandleFunc("/api/agents/capabilities", CORSMiddleware(MetricsMiddleware(s.agentsHandler.HandleCapabilities, "capabilities")))
	mux.HandleFunc("/api/models/seed", CORSMiddleware(MetricsMiddleware(s.modelsHandler.HandleSeed, "seed")))
	mux.HandleFunc("/api/models", CORSMiddleware(MetricsMiddleware(s.modelsHandler.HandleList, "models")))
	mux.HandleFunc("/api/battle", CORSMiddleware(MetricsMiddleware(s.battleHandler.HandleGetBattle, "battle")))
	mux.HandleFunc("/api/vote", CORSMiddleware(MetricsMiddleware(s.voteHandler.HandlePostVote, "vote")))
	mux.HandleFunc("/api/leaderboard", CORSMiddleware(MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard")))
	mux.HandleFunc("/api/stats", CORSMiddleware(MetricsMiddleware(s.statsHandler.HandleGetStats, "stats")))
}

// handleRoot answers GET /api/ with a hello message.
func handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet || r.URL.Path != "/api/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello World"})
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeRequest decodes and validates a JSON request body. Failures come
// back wrapped in ErrBadRequest.
func decodeRequest(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return nil
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
