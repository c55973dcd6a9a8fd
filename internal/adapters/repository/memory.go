// Package repository defines the battle store interface and errors.
package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/domain/model"
)

// MemoryStore is an in-memory Store implementation. It backs unit tests and
// ephemeral deployments; ordering semantics match the sqlite store.
type MemoryStore struct {
	mu     sync.RWMutex
	models map[string]model.Model
	order  []string // insertion order, the store-defined tie-break
	votes  []model.Vote
	status []model.StatusCheck
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		models: make(map[string]model.Model),
	}
}

// Close implements Store.Close.
func (s *MemoryStore) Close() error { return nil }

// Seed implements Store.Seed.
func (s *MemoryStore) Seed(ctx context.Context, seeds []model.Seed) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.models = make(map[string]model.Model, len(seeds))
	s.order = s.order[:0]
	for _, seed := range seeds {
		m := model.Model{
			ID:               uuid.NewString(),
			Name:             seed.Name,
			Provider:         seed.Provider,
			Description:      seed.Description,
			Capabilities:     seed.Capabilities,
			PerformanceScore: seed.PerformanceScore,
			CreatedAt:        time.Now().UTC(),
			ImageURL:         seed.ImageURL,
		}
		s.models[m.ID] = m
		s.order = append(s.order, m.ID)
	}
	return len(seeds), nil
}

// ListModels implements Store.ListModels.
func (s *MemoryStore) ListModels(ctx context.Context) ([]model.Model, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked(), nil
}

// snapshotLocked copies all models in insertion order. Callers hold s.mu.
func (s *MemoryStore) snapshotLocked() []model.Model {
	out := make([]model.Model, 0, len(s.models))
	for _, id := range s.order {
		out = append(out, s.models[id])
	}
	return out
}

// GetModel implements Store.GetModel.
func (s *MemoryStore) GetModel(ctx context.Context, id string) (model.Model, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.models[id]
	if !ok {
		return model.Model{}, ErrNotFound
	}
	return m, nil
}

// IncrementStats implements Store.IncrementStats. The counter bump and the
// win_rate recompute happen under one lock acquisition, mirroring the
// sqlite store's single-statement update.
func (s *MemoryStore) IncrementStats(ctx context.Context, id string, won bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.models[id]
	if !ok {
		return nil // silent no-op on unknown id
	}
	m.TotalVotes++
	if won {
		m.Wins++
	} else {
		m.Losses++
	}
	m.WinRate = model.ComputeWinRate(m.Wins, m.TotalVotes)
	s.models[id] = m
	return nil
}

// SetWinRate implements Store.SetWinRate.
func (s *MemoryStore) SetWinRate(ctx context.Context, id string, rate float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.models[id]
	if !ok {
		return nil
	}
	m.WinRate = rate
	s.models[id] = m
	return nil
}

// Leaderboard implements Store.Leaderboard.
func (s *MemoryStore) Leaderboard(ctx context.Context) ([]model.Model, error) {
	s.mu.RLock()
	models := s.snapshotLocked()
	s.mu.RUnlock()

	sortByRank(models)
	return models, nil
}

// sortByRank orders models by wins desc, then win_rate desc. The sort is
// stable so ties keep the store-defined insertion order.
func sortByRank(models []model.Model) {
	sort.SliceStable(models, func(i, j int) bool {
		if models[i].Wins != models[j].Wins {
			return models[i].Wins > models[j].Wins
		}
		return models[i].WinRate > models[j].WinRate
	})
}

// TopByWins implements Store.TopByWins.
func (s *MemoryStore) TopByWins(ctx context.Context) (model.Model, error) {
	s.mu.RLock()
	models := s.snapshotLocked()
	s.mu.RUnlock()

	if len(models) == 0 {
		return model.Model{}, ErrNotFound
	}
	top := models[0]
	for _, m := range models[1:] {
		if m.Wins > top.Wins {
			top = m
		}
	}
	return top, nil
}

// CountModels implements Store.CountModels.
func (s *MemoryStore) CountModels(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.models), nil
}

// AppendVote implements Store.AppendVote.
func (s *MemoryStore) AppendVote(ctx context.Context, v model.Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.votes = append(s.votes, v)
	return nil
}

// CountVotes implements Store.CountVotes.
func (s *MemoryStore) CountVotes(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.votes), nil
}

// ClearVotes implements Store.ClearVotes.
func (s *MemoryStore) ClearVotes(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.votes = nil
	return nil
}

// AppendStatus implements Store.AppendStatus.
func (s *MemoryStore) AppendStatus(ctx context.Context, sc model.StatusCheck) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = append(s.status, sc)
	return nil
}

// ListStatus implements Store.ListStatus.
func (s *MemoryStore) ListStatus(ctx context.Context, limit int) ([]model.StatusCheck, error) {
	if limit < 1 {
		return nil, ErrInvalidLimit
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.StatusCheck, 0, limit)
	for i := len(s.status) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.status[i])
	}
	return out, nil
}
