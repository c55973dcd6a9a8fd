// Package model contains domain models passed between layers.
package model

import (
	"math"
	"time"
)

// Model represents an LLM contender tracked by the battle system.
// Fields mirror the JSON schema served by the /api/models endpoints.
type Model struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Provider         string    `json:"provider"`
	Description      string    `json:"description"`
	Capabilities     []string  `json:"capabilities"`
	PerformanceScore float64   `json:"performance_score"`
	TotalVotes       int       `json:"total_votes"`
	Wins             int       `json:"wins"`
	Losses           int       `json:"losses"`
	WinRate          float64   `json:"win_rate"`
	CreatedAt        time.Time `json:"created_at"`
	ImageURL         string    `json:"image_url,omitempty"`
}

// Seed describes a model before it enters the store. Vote counters
// always start at zero regardless of what the caller supplies.
type Seed struct {
	Name             string
	Provider         string
	Description      string
	Capabilities     []string
	PerformanceScore float64
	ImageURL         string
}

// Vote is an immutable record declaring one model the winner over another.
type Vote struct {
	ID        string    `json:"id"`
	WinnerID  string    `json:"winner_id"`
	LoserID   string    `json:"loser_id"`
	VoterIP   string    `json:"voter_ip,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Battle is an ephemeral pairing of two models presented for comparison.
// It is produced on demand and never persisted.
type Battle struct {
	Model1 Model `json:"model1"`
	Model2 Model `json:"model2"`
}

// BattleStats aggregates ledger and catalog counters for GET /api/stats.
// TotalVotes and BattlesCompleted both report the ledger record count; the
// duplication is part of the public contract and kept for clients.
type BattleStats struct {
	TotalVotes       int    `json:"total_votes"`
	TotalModels      int    `json:"total_models"`
	TopModel         string `json:"top_model,omitempty"`
	BattlesCompleted int    `json:"battles_completed"`
}

// StatusCheck is a client liveness ping recorded via /api/status.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// ComputeWinRate returns the win percentage rounded to one decimal place.
// A model with no votes has a rate of 0.0.
func ComputeWinRate(wins, totalVotes int) float64 {
	if totalVotes == 0 {
		return 0.0
	}
	return math.Round(float64(wins)/float64(totalVotes)*1000) / 10
}

// CurrentWinRate recomputes the derived rate from the model's counters.
func (m *Model) CurrentWinRate() float64 {
	return ComputeWinRate(m.Wins, m.TotalVotes)
}
