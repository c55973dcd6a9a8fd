package simulate

import (
	"context"
	"fmt"
	"time"

	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/pkg/logger"
)

// Run executes the complete vote simulation against a live service.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting battle vote simulation",
		logger.String("baseURL", config.BaseURL),
		logger.Int("votes", config.NumVotes),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.Bool("verbose", config.Verbose))

	client := newHTTPClient(config.Timeout)

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, client, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Seed the model catalog
	if err := seedModels(ctx, client, config); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	// Step 3: Submit votes concurrently
	if err := submitVotes(ctx, config, stats); err != nil {
		return fmt.Errorf("vote submission failed: %w", err)
	}

	// Step 4: Fetch leaderboard and aggregate stats
	leaderboard, apiStats, err := fetchResults(ctx, client, config)
	if err != nil {
		return fmt.Errorf("result retrieval failed: %w", err)
	}
	stats.LeaderboardEntries = len(leaderboard)

	// Step 5: Verify invariants
	if err := verifyResults(ctx, leaderboard, apiStats, stats); err != nil {
		return fmt.Errorf("result verification failed: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(stats)

	logger.Get().Info(ctx, "simulation completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *httpClient, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	status, err := client.get(ctx, config.BaseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	if status != statusOK {
		return fmt.Errorf("service health check failed with status: %d", status)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// seedModels resets the catalog so the run starts from known counters.
func seedModels(ctx context.Context, client *httpClient, config *Config) error {
	var ack AckResponse
	status, err := client.post(ctx, config.BaseURL+"/api/models/seed", nil, &ack)
	if err != nil {
		return err
	}
	if status != statusOK || !ack.Success {
		return fmt.Errorf("seed request failed with status: %d", status)
	}
	logger.Get().Info(ctx, "model catalog seeded", logger.String("message", ack.Message))
	return nil
}

// fetchResults retrieves the leaderboard and the aggregate stats.
func fetchResults(ctx context.Context, client *httpClient, config *Config) ([]Entry, StatsResponse, error) {
	var leaderboard []Entry
	status, err := client.get(ctx, config.BaseURL+"/api/leaderboard", &leaderboard)
	if err != nil {
		return nil, StatsResponse{}, err
	}
	if status != statusOK {
		return nil, StatsResponse{}, fmt.Errorf("leaderboard request failed with status: %d", status)
	}

	var apiStats StatsResponse
	status, err = client.get(ctx, config.BaseURL+"/api/stats", &apiStats)
	if err != nil {
		return nil, StatsResponse{}, err
	}
	if status != statusOK {
		return nil, StatsResponse{}, fmt.Errorf("stats request failed with status: %d", status)
	}

	return leaderboard, apiStats, nil
}

// displayFinalStats prints the final simulation statistics.
func displayFinalStats(stats *Stats) {
	var successRate, votesPerSecond float64

	if stats.VotesSubmitted > 0 {
		successRate = float64(stats.VotesSuccessful) / float64(stats.VotesSubmitted) * 100
	}
	if stats.Duration > 0 {
		votesPerSecond = float64(stats.VotesSubmitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("votesSubmitted", stats.VotesSubmitted),
		logger.Int("votesSuccessful", stats.VotesSuccessful),
		logger.Int("votesFailed", stats.VotesFailed),
		logger.Int("battlesDrawn", stats.BattlesDrawn),
		logger.Int("leaderboardEntries", stats.LeaderboardEntries),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("votesPerSecond", votesPerSecond))
}
