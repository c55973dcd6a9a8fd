// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/adapters/agent"
	repository "github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/adapters/repository"
	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/domain/battle"
	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/domain/model"
	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore injects a pre-built store. The service will not close an
// injected store on Stop.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithDBPath sets the sqlite database path used when no store is injected.
func WithDBPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.dbPath = path
		}
	}
}

// WithSeeds overrides the built-in seed catalog.
func WithSeeds(seeds []model.Seed) Option {
	return func(s *Service) {
		if len(seeds) > 0 {
			s.seeds = seeds
		}
	}
}

// WithClearLedgerOnSeed makes reseeding also wipe the vote ledger.
func WithClearLedgerOnSeed(clear bool) Option {
	return func(s *Service) {
		s.clearLedgerOnSeed = clear
	}
}

// WithStatusListLimit caps GET /api/status results.
func WithStatusListLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.statusListLimit = limit
		}
	}
}

// WithSelector injects a custom pairing selector.
func WithSelector(sel *battle.Selector) Option {
	return func(s *Service) {
		if sel != nil {
			s.selector = sel
		}
	}
}

// WithChatAgent injects the chat agent variant.
func WithChatAgent(a agent.Agent) Option {
	return func(s *Service) {
		if a != nil {
			s.chat = a
		}
	}
}

// WithSearchAgent injects the search agent variant.
func WithSearchAgent(a agent.Agent) Option {
	return func(s *Service) {
		if a != nil {
			s.search = a
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
