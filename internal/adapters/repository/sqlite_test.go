package repository_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"

	repository "github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/adapters/repository"
	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/domain/model"
)

func newTestSQLiteStore(t *testing.T) *repository.SQLiteStore {
	t.Helper()
	store, err := repository.NewSQLiteStore(filepath.Join(t.TempDir(), "battle.db"))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_SeedAndList(t *testing.T) {
	Convey("Given a fresh sqlite store", t, func() {
		ctx := context.Background()
		store := newTestSQLiteStore(t)

		Convey("When seeding the catalog", func() {
			n, err := store.Seed(ctx, testSeeds())

			Convey("Then every seed lands with zeroed counters", func() {
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 3)

				models, err := store.ListModels(ctx)
				So(err, ShouldBeNil)
				So(len(models), ShouldEqual, 3)
				for _, m := range models {
					So(m.ID, ShouldNotBeBlank)
					So(m.Provider, ShouldNotBeBlank)
					So(m.Capabilities, ShouldNotBeEmpty)
					So(m.TotalVotes, ShouldEqual, 0)
					So(m.WinRate, ShouldEqual, 0.0)
				}
			})
		})

		Convey("When reseeding after votes were recorded", func() {
			models := seededStore(ctx, store)
			vote(ctx, store, models[0], models[1])

			_, err := store.Seed(ctx, testSeeds())
			So(err, ShouldBeNil)

			Convey("Then counters reset but the ledger survives", func() {
				fresh, err := store.ListModels(ctx)
				So(err, ShouldBeNil)
				for _, m := range fresh {
					So(m.TotalVotes, ShouldEqual, 0)
				}

				n, err := store.CountVotes(ctx)
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 1)
			})
		})
	})
}

func TestSQLiteStore_IncrementStats(t *testing.T) {
	Convey("Given a seeded sqlite store", t, func() {
		ctx := context.Background()
		store := newTestSQLiteStore(t)
		models := seededStore(ctx, store)

		Convey("When a single vote lands", func() {
			vote(ctx, store, models[0], models[1])

			Convey("Then winner and loser counters match the vote", func() {
				winner, err := store.GetModel(ctx, models[0].ID)
				So(err, ShouldBeNil)
				So(winner.Wins, ShouldEqual, 1)
				So(winner.TotalVotes, ShouldEqual, 1)
				So(winner.WinRate, ShouldEqual, 100.0)

				loser, err := store.GetModel(ctx, models[1].ID)
				So(err, ShouldBeNil)
				So(loser.Losses, ShouldEqual, 1)
				So(loser.WinRate, ShouldEqual, 0.0)
			})
		})

		Convey("When votes accumulate over several battles", func() {
			vote(ctx, store, models[0], models[1])
			vote(ctx, store, models[0], models[2])
			vote(ctx, store, models[1], models[0])

			Convey("Then win rate rounds to one decimal place", func() {
				m, err := store.GetModel(ctx, models[0].ID)
				So(err, ShouldBeNil)
				So(m.Wins, ShouldEqual, 2)
				So(m.TotalVotes, ShouldEqual, 3)
				So(m.WinRate, ShouldEqual, 66.7)
			})
		})

		Convey("When the id matches no row", func() {
			err := store.IncrementStats(ctx, "no-such-id", true)

			Convey("Then the update is a silent no-op", func() {
				So(err, ShouldBeNil)
			})
		})

		Convey("When overwriting the derived rate directly", func() {
			So(store.SetWinRate(ctx, models[0].ID, 42.0), ShouldBeNil)

			m, err := store.GetModel(ctx, models[0].ID)
			So(err, ShouldBeNil)
			So(m.WinRate, ShouldEqual, 42.0)
		})

		Convey("When concurrent votes target the same model", func() {
			const voters = 20
			var wg sync.WaitGroup
			for i := 0; i < voters; i++ {
				wg.Add(1)
				go func(won bool) {
					defer wg.Done()
					_ = store.IncrementStats(ctx, models[0].ID, won)
				}(i%2 == 0)
			}
			wg.Wait()

			Convey("Then counters and the derived rate stay consistent", func() {
				m, err := store.GetModel(ctx, models[0].ID)
				So(err, ShouldBeNil)
				So(m.TotalVotes, ShouldEqual, voters)
				So(m.Wins+m.Losses, ShouldEqual, voters)
				So(m.WinRate, ShouldEqual, m.CurrentWinRate())
			})
		})
	})
}

func TestSQLiteStore_Leaderboard(t *testing.T) {
	Convey("Given a seeded sqlite store with votes", t, func() {
		ctx := context.Background()
		store := newTestSQLiteStore(t)
		models := seededStore(ctx, store)

		// Gamma: 2 wins. Alpha: 1 win, 1 loss. Beta: 2 losses.
		vote(ctx, store, models[2], models[1])
		vote(ctx, store, models[2], models[0])
		vote(ctx, store, models[0], models[1])

		Convey("When fetching the leaderboard", func() {
			board, err := store.Leaderboard(ctx)

			Convey("Then ordering is wins desc, win rate desc", func() {
				So(err, ShouldBeNil)
				So(len(board), ShouldEqual, 3)
				So(board[0].Name, ShouldEqual, "Gamma")
				So(board[1].Name, ShouldEqual, "Alpha")
				So(board[2].Name, ShouldEqual, "Beta")
			})
		})

		Convey("When fetching the top model", func() {
			top, err := store.TopByWins(ctx)

			Convey("Then the most-winning model is returned", func() {
				So(err, ShouldBeNil)
				So(top.Name, ShouldEqual, "Gamma")
			})
		})

		Convey("When counting models and votes", func() {
			nm, err := store.CountModels(ctx)
			So(err, ShouldBeNil)
			nv, err := store.CountVotes(ctx)
			So(err, ShouldBeNil)

			Convey("Then both counts match what was written", func() {
				So(nm, ShouldEqual, 3)
				So(nv, ShouldEqual, 3)
			})
		})
	})

	Convey("Given an empty sqlite store", t, func() {
		ctx := context.Background()
		store := newTestSQLiteStore(t)

		Convey("When fetching the top model", func() {
			_, err := store.TopByWins(ctx)

			Convey("Then it reports not found", func() {
				So(err, ShouldEqual, repository.ErrNotFound)
			})
		})
	})
}

func TestSQLiteStore_VotesAndStatus(t *testing.T) {
	Convey("Given a seeded sqlite store", t, func() {
		ctx := context.Background()
		store := newTestSQLiteStore(t)
		models := seededStore(ctx, store)

		Convey("When a vote names an id with no matching model", func() {
			err := store.AppendVote(ctx, model.Vote{
				ID:        uuid.NewString(),
				WinnerID:  "dangling",
				LoserID:   models[0].ID,
				Timestamp: time.Now().UTC(),
			})

			Convey("Then the ledger accepts it", func() {
				So(err, ShouldBeNil)
				n, err := store.CountVotes(ctx)
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 1)
			})
		})

		Convey("When clearing the ledger", func() {
			vote(ctx, store, models[0], models[1])
			So(store.ClearVotes(ctx), ShouldBeNil)

			n, err := store.CountVotes(ctx)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 0)
		})

		Convey("When recording and listing status checks", func() {
			base := time.Now().UTC()
			for i, name := range []string{"first", "second", "third"} {
				So(store.AppendStatus(ctx, model.StatusCheck{
					ID:         uuid.NewString(),
					ClientName: name,
					Timestamp:  base.Add(time.Duration(i) * time.Second),
				}), ShouldBeNil)
			}

			checks, err := store.ListStatus(ctx, 2)
			So(err, ShouldBeNil)
			So(len(checks), ShouldEqual, 2)
			So(checks[0].ClientName, ShouldEqual, "third")
		})
	})
}
