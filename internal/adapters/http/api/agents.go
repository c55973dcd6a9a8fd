package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/adapters/agent"
	service "github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/app"
)

// AgentDependencies defines the interface for agent pass-through endpoints.
type AgentDependencies interface {
	ExecuteAgent(ctx context.Context, agentType, prompt string, useTools bool) (agent.Result, []string, error)
	AgentCapabilities() map[string][]string
}

// AgentsHandler handles chat and search requests backed by AI agents.
type AgentsHandler struct {
	deps AgentDependencies
}

// NewAgentsHandler creates a new agents handler.
func NewAgentsHandler(deps AgentDependencies) *AgentsHandler {
	return &AgentsHandler{deps: deps}
}

type chatRequest struct {
	Message   string         `json:"message" validate:"required"`
	AgentType string         `json:"agent_type"`
	Context   map[string]any `json:"context,omitempty"` // accepted for compatibility, not forwarded
}

type chatResponse struct {
	Success      bool     `json:"success"`
	Response     string   `json:"response"`
	AgentType    string   `json:"agent_type"`
	Capabilities []string `json:"capabilities"`
	Error        string   `json:"error,omitempty"`
}

type searchRequest struct {
	Query      string `json:"query" validate:"required"`
	MaxResults int    `json:"max_results"`
}

type searchResponse struct {
	Success       bool     `json:"success"`
	Query         string   `json:"query"`
	Summary       string   `json:"summary"`
	SearchResults []string `json:"search_results"`
	SourcesCount  int      `json:"sources_count"`
	Error         string   `json:"error,omitempty"`
}

// HandleChat handles POST /api/chat requests.
func (h *AgentsHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req chatRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	agentType := req.AgentType
	if agentType == "" {
		agentType = "chat"
	}

	result, capabilities, err := h.deps.ExecuteAgent(r.Context(), agentType, req.Message, false)
	if err != nil {
		h.writeAgentError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{
		Success:      result.Success,
		Response:     result.Content,
		AgentType:    agentType,
		Capabilities: capabilities,
		Error:        result.Error,
	})
}

// HandleSearch handles POST /api/search requests. The search agent is asked
// to research the query with its tools and summarize the findings.
func (h *AgentsHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req searchRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = 5
	}

	prompt := fmt.Sprintf("Search and summarize: %s. Provide a comprehensive summary with key findings (up to %d sources).", req.Query, maxResults)
	result, _, err := h.deps.ExecuteAgent(r.Context(), "search", prompt, true)
	if err != nil {
		h.writeAgentError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{
		Success:       result.Success,
		Query:         req.Query,
		Summary:       result.Content,
		SearchResults: []string{},
		SourcesCount:  0,
		Error:         result.Error,
	})
}

// HandleCapabilities handles GET /api/agents/capabilities requests.
func (h *AgentsHandler) HandleCapabilities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"capabilities": h.deps.AgentCapabilities(),
	})
}

func (h *AgentsHandler) writeAgentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, agent.ErrUnknownAgent):
		writeError(w, http.StatusBadRequest, "unknown_agent", err)
	case errors.Is(err, service.ErrAgentUnavailable):
		writeError(w, http.StatusServiceUnavailable, "agent_unavailable", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
