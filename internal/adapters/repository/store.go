// Package repository defines the battle store interface and errors.
package repository

import (
	"context"

	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/domain/model"
)

// Store provides read/write access to the model catalog, the vote ledger,
// and status checks. Any document or relational backend exposing
// filter/sort/count/bulk-delete primitives can implement it.
type Store interface {
	// Seed atomically replaces the entire model catalog. Every seed is
	// inserted with zeroed vote counters. The vote ledger is untouched;
	// callers decide separately whether to clear it.
	Seed(ctx context.Context, seeds []model.Seed) (int, error)

	// ListModels returns every model. Order is unspecified.
	ListModels(ctx context.Context) ([]model.Model, error)

	// GetModel returns the model with the given id.
	// Returns ErrNotFound if the id is unknown.
	GetModel(ctx context.Context, id string) (model.Model, error)

	// IncrementStats bumps total_votes by one and either wins or losses by
	// one, recomputing win_rate in the same atomic operation. A missing id
	// is a silent no-op; callers must not assume the increment landed.
	IncrementStats(ctx context.Context, id string, won bool) error

	// SetWinRate overwrites the derived win_rate field.
	// A missing id is a silent no-op.
	SetWinRate(ctx context.Context, id string, rate float64) error

	// Leaderboard returns all models ordered by wins desc, win_rate desc.
	Leaderboard(ctx context.Context) ([]model.Model, error)

	// TopByWins returns the model with the most wins.
	// Returns ErrNotFound when the catalog is empty.
	TopByWins(ctx context.Context) (model.Model, error)

	// CountModels returns the number of models in the catalog.
	CountModels(ctx context.Context) (int, error)

	// AppendVote appends an immutable record to the vote ledger. The ledger
	// does not enforce referential integrity on the referenced ids.
	AppendVote(ctx context.Context, v model.Vote) error

	// CountVotes returns the total number of ledger records.
	CountVotes(ctx context.Context) (int, error)

	// ClearVotes deletes the entire vote ledger.
	ClearVotes(ctx context.Context) error

	// AppendStatus records a client status check.
	AppendStatus(ctx context.Context, s model.StatusCheck) error

	// ListStatus returns up to limit status checks, newest first.
	ListStatus(ctx context.Context, limit int) ([]model.StatusCheck, error)

	// Close releases any resources held by the store.
	Close() error
}
