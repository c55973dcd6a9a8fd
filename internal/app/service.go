// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/adapters/agent"
	repository "github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/adapters/repository"
	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/domain/battle"
	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/domain/model"
	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/pkg/logger"
	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/pkg/metrics"
)

// Service implements the API dependencies for the battle system.
type Service struct {
	mu sync.RWMutex

	// Core components
	store    repository.Store
	selector *battle.Selector
	chat     agent.Agent
	search   agent.Agent

	// Configuration
	dbPath            string
	seeds             []model.Seed
	clearLedgerOnSeed bool
	statusListLimit   int

	// State
	started  bool
	ownStore bool // whether Stop should close the store

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dbPath:          "battle.db",
		seeds:           battle.DefaultSeeds(),
		statusListLimit: 1000,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting battle service...")

	if s.store == nil {
		store, err := repository.NewSQLiteStore(s.dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		s.store = store
		s.ownStore = true
		s.logger.Info(ctx, "using sqlite store", logger.String("path", s.dbPath))
	}
	if s.selector == nil {
		s.selector = battle.NewSelector()
	}

	s.started = true
	s.logger.Info(ctx, "battle service started",
		logger.Int("seedCatalog", len(s.seeds)),
		logger.Any("clearLedgerOnSeed", s.clearLedgerOnSeed),
	)
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping battle service...")
	if s.ownStore && s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Error(context.Background(), "store close failed", logger.Error(err))
		}
	}
	s.started = false
	s.logger.Info(context.Background(), "battle service stopped")
}

// SeedModels replaces the model catalog with the configured seed list.
// The vote ledger is cleared only when the service was configured to do so;
// by default reseeding keeps historical votes, dangling references and all.
func (s *Service) SeedModels(ctx context.Context) (int, error) {
	if s.store == nil {
		return 0, ErrNotStarted
	}
	n, err := s.store.Seed(ctx, s.seeds)
	if err != nil {
		return 0, fmt.Errorf("seed models: %w", err)
	}
	if s.clearLedgerOnSeed {
		if err := s.store.ClearVotes(ctx); err != nil {
			return n, fmt.Errorf("clear ledger: %w", err)
		}
		s.logger.Info(ctx, "vote ledger cleared on seed")
	}

	metrics.RecordModelsSeeded(n)
	metrics.UpdateTotalModels(n)
	s.logger.Info(ctx, "model catalog seeded", logger.Int("models", n))
	return n, nil
}

// ListModels returns the full model catalog.
func (s *Service) ListModels(ctx context.Context) ([]model.Model, error) {
	return s.store.ListModels(ctx)
}

// DrawBattle pairs two distinct models uniformly at random.
func (s *Service) DrawBattle(ctx context.Context) (model.Battle, error) {
	if s.store == nil || s.selector == nil {
		return model.Battle{}, ErrNotStarted
	}
	models, err := s.store.ListModels(ctx)
	if err != nil {
		return model.Battle{}, fmt.Errorf("load catalog: %w", err)
	}
	m1, m2, err := s.selector.DrawPair(models)
	if err != nil {
		return model.Battle{}, err
	}

	metrics.RecordBattleServed()
	return model.Battle{Model1: m1, Model2: m2}, nil
}

// SubmitVote records a vote for winnerID over loserID.
//
// The ledger append carries no referential check: votes naming unknown ids
// still land in the ledger. The two stat increments are independent; an id
// that resolves to nothing is silently skipped, and the caller still gets
// success. Win rates are recomputed inside the same atomic store update as
// the increment, so no stale-rate write can occur under concurrent votes.
func (s *Service) SubmitVote(ctx context.Context, winnerID, loserID, voterIP string) error {
	if winnerID == loserID {
		metrics.RecordInvalidVote()
		return ErrInvalidVote
	}

	vote := model.Vote{
		ID:        uuid.NewString(),
		WinnerID:  winnerID,
		LoserID:   loserID,
		VoterIP:   voterIP,
		Timestamp: time.Now().UTC(),
	}
	if err := s.store.AppendVote(ctx, vote); err != nil {
		return fmt.Errorf("append vote: %w", err)
	}

	if err := s.store.IncrementStats(ctx, winnerID, true); err != nil {
		return fmt.Errorf("update winner: %w", err)
	}
	if err := s.store.IncrementStats(ctx, loserID, false); err != nil {
		return fmt.Errorf("update loser: %w", err)
	}

	metrics.RecordVote()
	s.logger.Debug(ctx, "vote recorded",
		logger.String("winner", winnerID),
		logger.String("loser", loserID),
	)
	return nil
}

// Leaderboard returns all models ordered by wins desc, win_rate desc.
func (s *Service) Leaderboard(ctx context.Context) ([]model.Model, error) {
	return s.store.Leaderboard(ctx)
}

// BattleStats aggregates the ledger and catalog counters.
func (s *Service) BattleStats(ctx context.Context) (model.BattleStats, error) {
	votes, err := s.store.CountVotes(ctx)
	if err != nil {
		return model.BattleStats{}, fmt.Errorf("count votes: %w", err)
	}
	models, err := s.store.CountModels(ctx)
	if err != nil {
		return model.BattleStats{}, fmt.Errorf("count models: %w", err)
	}

	stats := model.BattleStats{
		TotalVotes:       votes,
		TotalModels:      models,
		BattlesCompleted: votes,
	}
	top, err := s.store.TopByWins(ctx)
	switch {
	case err == nil:
		stats.TopModel = top.Name
	case errors.Is(err, repository.ErrNotFound):
		// empty catalog; top model stays absent
	default:
		return model.BattleStats{}, fmt.Errorf("top model: %w", err)
	}

	metrics.UpdateTotalVotes(votes)
	metrics.UpdateTotalModels(models)
	return stats, nil
}

// CreateStatusCheck records a client liveness ping.
func (s *Service) CreateStatusCheck(ctx context.Context, clientName string) (model.StatusCheck, error) {
	sc := model.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.store.AppendStatus(ctx, sc); err != nil {
		return model.StatusCheck{}, fmt.Errorf("append status: %w", err)
	}
	return sc, nil
}

// ListStatusChecks returns recent status checks, newest first.
func (s *Service) ListStatusChecks(ctx context.Context) ([]model.StatusCheck, error) {
	return s.store.ListStatus(ctx, s.statusListLimit)
}

// ExecuteAgent routes a prompt to the requested agent variant.
func (s *Service) ExecuteAgent(ctx context.Context, agentType, prompt string, useTools bool) (agent.Result, []string, error) {
	a, err := s.agentFor(agentType)
	if err != nil {
		return agent.Result{}, nil, err
	}
	res, err := a.Execute(ctx, prompt, useTools)
	if err != nil {
		return agent.Result{}, a.Capabilities(), fmt.Errorf("execute %s agent: %w", agentType, err)
	}
	return res, a.Capabilities(), nil
}

// AgentCapabilities lists the capabilities of every configured agent.
func (s *Service) AgentCapabilities() map[string][]string {
	caps := make(map[string][]string)
	if s.chat != nil {
		caps["chat_agent"] = s.chat.Capabilities()
	}
	if s.search != nil {
		caps["search_agent"] = s.search.Capabilities()
	}
	return caps
}

func (s *Service) agentFor(agentType string) (agent.Agent, error) {
	var a agent.Agent
	switch agentType {
	case "chat":
		a = s.chat
	case "search":
		a = s.search
	default:
		return nil, fmt.Errorf("%w: %q", agent.ErrUnknownAgent, agentType)
	}
	if a == nil {
		return nil, fmt.Errorf("%w: %s", ErrAgentUnavailable, agentType)
	}
	return a, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started": s.started,
	}

	if s.started {
		if models, err := s.store.CountModels(ctx); err == nil {
			stats["totalModels"] = models
			metrics.UpdateTotalModels(models)
		}
		if votes, err := s.store.CountVotes(ctx); err == nil {
			stats["totalVotes"] = votes
			metrics.UpdateTotalVotes(votes)
		}
	}
	return stats
}
