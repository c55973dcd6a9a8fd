package simulate

import (
	"context"
	"fmt"
	"log"
	"math"
)

// winRateTolerance absorbs the one-decimal rounding the service applies.
const winRateTolerance = 0.05

// verifyResults checks ranking invariants on the fetched leaderboard and
// cross-checks the aggregate stats against what the simulation submitted.
func verifyResults(ctx context.Context, leaderboard []Entry, apiStats StatsResponse, stats *Stats) error {
	log.Println("verifying results...")

	if len(leaderboard) == 0 {
		return fmt.Errorf("empty leaderboard")
	}

	if err := verifyOrdering(leaderboard); err != nil {
		return err
	}
	if err := verifyCounters(leaderboard, apiStats, stats); err != nil {
		return err
	}

	displayTopModels(leaderboard)
	log.Println("result verification completed")
	return nil
}

// verifyOrdering checks wins-descending order with win rate breaking ties.
func verifyOrdering(leaderboard []Entry) error {
	for i := 1; i < len(leaderboard); i++ {
		prev, cur := leaderboard[i-1], leaderboard[i]
		if cur.Wins > prev.Wins {
			return fmt.Errorf("leaderboard not sorted by wins: %s (%d) above %s (%d)",
				prev.Name, prev.Wins, cur.Name, cur.Wins)
		}
		if cur.Wins == prev.Wins && cur.WinRate > prev.WinRate {
			return fmt.Errorf("leaderboard tie not broken by win rate: %s (%.1f) above %s (%.1f)",
				prev.Name, prev.WinRate, cur.Name, cur.WinRate)
		}
	}
	return nil
}

// verifyCounters cross-checks per-model counters and the aggregate stats.
func verifyCounters(leaderboard []Entry, apiStats StatsResponse, stats *Stats) error {
	var totalWins, totalLosses int
	for _, e := range leaderboard {
		if e.Wins+e.Losses != e.TotalVotes {
			return fmt.Errorf("model %s: wins(%d)+losses(%d) != total_votes(%d)",
				e.Name, e.Wins, e.Losses, e.TotalVotes)
		}
		if e.TotalVotes > 0 {
			want := math.Round(float64(e.Wins)/float64(e.TotalVotes)*1000) / 10
			if math.Abs(e.WinRate-want) > winRateTolerance {
				return fmt.Errorf("model %s: win_rate %.1f, expected %.1f", e.Name, e.WinRate, want)
			}
		}
		totalWins += e.Wins
		totalLosses += e.Losses
	}

	// Every recorded vote lands one win and one loss.
	if totalWins != totalLosses {
		return fmt.Errorf("total wins (%d) != total losses (%d)", totalWins, totalLosses)
	}
	if totalWins != stats.VotesSuccessful {
		log.Printf("warning: total wins (%d) differ from successful votes (%d); concurrent traffic?",
			totalWins, stats.VotesSuccessful)
	}
	if apiStats.TotalVotes < stats.VotesSuccessful {
		return fmt.Errorf("ledger count (%d) below successful votes (%d)",
			apiStats.TotalVotes, stats.VotesSuccessful)
	}
	if apiStats.TotalModels != len(leaderboard) {
		return fmt.Errorf("stats total_models (%d) != leaderboard size (%d)",
			apiStats.TotalModels, len(leaderboard))
	}
	if apiStats.TopModel != "" && apiStats.TopModel != leaderboard[0].Name {
		// Top-by-wins and leaderboard head can differ only on exact ties.
		if leaderboard[0].Wins != winsOf(leaderboard, apiStats.TopModel) {
			return fmt.Errorf("top model %q does not match leaderboard head %q",
				apiStats.TopModel, leaderboard[0].Name)
		}
	}
	return nil
}

func winsOf(leaderboard []Entry, name string) int {
	for _, e := range leaderboard {
		if e.Name == name {
			return e.Wins
		}
	}
	return -1
}

// displayTopModels shows the leaderboard head.
func displayTopModels(leaderboard []Entry) {
	topN := 10
	if len(leaderboard) < topN {
		topN = len(leaderboard)
	}

	log.Printf("top %d models:", topN)
	for i := 0; i < topN; i++ {
		e := leaderboard[i]
		log.Printf("   %d. %s - wins: %d, win rate: %.1f%%", i+1, e.Name, e.Wins, e.WinRate)
	}
}
