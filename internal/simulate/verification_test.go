package simulate

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func board() []Entry {
	return []Entry{
		{ID: "a", Name: "Alpha", Wins: 3, Losses: 1, TotalVotes: 4, WinRate: 75.0},
		{ID: "b", Name: "Beta", Wins: 2, Losses: 0, TotalVotes: 2, WinRate: 100.0},
		{ID: "c", Name: "Gamma", Wins: 0, Losses: 4, TotalVotes: 4, WinRate: 0.0},
	}
}

func TestVerifyOrdering(t *testing.T) {
	Convey("Given leaderboard orderings", t, func() {
		Convey("When the board is sorted by wins then win rate", func() {
			So(verifyOrdering(board()), ShouldBeNil)
		})

		Convey("When wins are out of order", func() {
			bad := board()
			bad[0], bad[2] = bad[2], bad[0]
			So(verifyOrdering(bad), ShouldNotBeNil)
		})

		Convey("When a tie is broken against the win rate", func() {
			tied := []Entry{
				{Name: "Low", Wins: 2, WinRate: 50.0},
				{Name: "High", Wins: 2, WinRate: 80.0},
			}
			So(verifyOrdering(tied), ShouldNotBeNil)
		})
	})
}

func TestVerifyCounters(t *testing.T) {
	Convey("Given a consistent run", t, func() {
		entries := board()
		apiStats := StatsResponse{TotalVotes: 5, TotalModels: 3, TopModel: "Alpha"}
		runStats := &Stats{VotesSuccessful: 5}

		Convey("Then verification passes", func() {
			So(verifyCounters(entries, apiStats, runStats), ShouldBeNil)
		})

		Convey("When a model's counters disagree", func() {
			entries[0].TotalVotes = 9
			So(verifyCounters(entries, apiStats, runStats), ShouldNotBeNil)
		})

		Convey("When a win rate was not derived from the counters", func() {
			entries[1].WinRate = 42.0
			So(verifyCounters(entries, apiStats, runStats), ShouldNotBeNil)
		})

		Convey("When the ledger undercounts the run", func() {
			apiStats.TotalVotes = 2
			So(verifyCounters(entries, apiStats, runStats), ShouldNotBeNil)
		})

		Convey("When the model count disagrees", func() {
			apiStats.TotalModels = 7
			So(verifyCounters(entries, apiStats, runStats), ShouldNotBeNil)
		})
	})
}

func TestVerifyResults(t *testing.T) {
	Convey("Given a full result set", t, func() {
		ctx := context.Background()

		Convey("When the board is empty", func() {
			err := verifyResults(ctx, nil, StatsResponse{}, &Stats{})
			So(err, ShouldNotBeNil)
		})

		Convey("When everything lines up", func() {
			apiStats := StatsResponse{TotalVotes: 5, TotalModels: 3, TopModel: "Alpha"}
			err := verifyResults(ctx, board(), apiStats, &Stats{VotesSuccessful: 5})
			So(err, ShouldBeNil)
		})
	})
}
