package simulate

import "time"

// Config holds configuration for the vote simulation.
type Config struct {
	BaseURL  string        // Base URL of the service
	NumVotes int           // Number of votes to submit
	Workers  int           // Number of concurrent workers
	Timeout  time.Duration // HTTP request timeout
	LogFile  string        // Log file for simulation output
	Verbose  bool          // Enable verbose logging
}

// Entry is a leaderboard row as served by the API.
type Entry struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	TotalVotes int     `json:"total_votes"`
	WinRate    float64 `json:"win_rate"`
}

// Matchup is the pair served by GET /api/battle.
type Matchup struct {
	Model1 Entry `json:"model1"`
	Model2 Entry `json:"model2"`
}

// VoteRequest is the body of POST /api/vote.
type VoteRequest struct {
	WinnerID string `json:"winner_id"`
	LoserID  string `json:"loser_id"`
}

// AckResponse is the generic success envelope for mutating calls.
type AckResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// StatsResponse mirrors GET /api/stats.
type StatsResponse struct {
	TotalVotes       int    `json:"total_votes"`
	TotalModels      int    `json:"total_models"`
	TopModel         string `json:"top_model"`
	BattlesCompleted int    `json:"battles_completed"`
}

// Stats holds simulation statistics.
type Stats struct {
	VotesSubmitted     int
	VotesSuccessful    int
	VotesFailed        int
	BattlesDrawn       int
	LeaderboardEntries int
	StartTime          time.Time
	EndTime            time.Time
	Duration           time.Duration
}
