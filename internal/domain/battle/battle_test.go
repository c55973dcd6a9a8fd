package battle_test

import (
	"fmt"
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/domain/battle"
	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/domain/model"
)

func catalog(n int) []model.Model {
	models := make([]model.Model, n)
	for i := range models {
		models[i] = model.Model{
			ID:   fmt.Sprintf("id-%d", i),
			Name: fmt.Sprintf("Model %d", i),
		}
	}
	return models
}

func TestSelector_DrawPair(t *testing.T) {
	Convey("Given a pairing selector", t, func() {
		sel := battle.NewSelector(battle.WithRand(rand.New(rand.NewSource(42))))

		Convey("When the catalog is empty", func() {
			_, _, err := sel.DrawPair(nil)

			Convey("Then it fails with ErrInsufficientModels", func() {
				So(err, ShouldEqual, battle.ErrInsufficientModels)
			})
		})

		Convey("When the catalog holds a single model", func() {
			_, _, err := sel.DrawPair(catalog(1))

			Convey("Then it fails with ErrInsufficientModels", func() {
				So(err, ShouldEqual, battle.ErrInsufficientModels)
			})
		})

		Convey("When the catalog holds exactly two models", func() {
			m1, m2, err := sel.DrawPair(catalog(2))

			Convey("Then both models are paired", func() {
				So(err, ShouldBeNil)
				So(m1.ID, ShouldNotEqual, m2.ID)
			})
		})

		Convey("When drawing repeatedly from a larger catalog", func() {
			models := catalog(8)

			Convey("Then the two slots are always distinct", func() {
				collisions := 0
				for i := 0; i < 1000; i++ {
					m1, m2, err := sel.DrawPair(models)
					So(err, ShouldBeNil)
					if m1.ID == m2.ID {
						collisions++
					}
				}
				So(collisions, ShouldEqual, 0)
			})
		})
	})
}

func TestSelector_Uniformity(t *testing.T) {
	Convey("Given a seeded selector and a small catalog", t, func() {
		sel := battle.NewSelector(battle.WithRand(rand.New(rand.NewSource(7))))
		models := catalog(4)

		Convey("When drawing many pairs", func() {
			const draws = 60000
			counts := make(map[string]int)
			for i := 0; i < draws; i++ {
				m1, m2, err := sel.DrawPair(models)
				if err != nil {
					t.Fatalf("draw %d failed: %v", i, err)
				}
				key := m1.ID + "|" + m2.ID
				if m2.ID < m1.ID {
					key = m2.ID + "|" + m1.ID
				}
				counts[key]++
			}

			Convey("Then every unordered pair appears", func() {
				// 4 choose 2
				So(len(counts), ShouldEqual, 6)
			})

			Convey("And the distribution is close to uniform", func() {
				expected := float64(draws) / 6
				for _, c := range counts {
					So(float64(c), ShouldBeBetween, expected*0.9, expected*1.1)
				}
			})
		})
	})
}

func TestDefaultSeeds(t *testing.T) {
	Convey("Given the built-in seed catalog", t, func() {
		seeds := battle.DefaultSeeds()

		Convey("Then it carries the full contender roster", func() {
			So(len(seeds), ShouldEqual, 8)
		})

		Convey("And every seed is fully described", func() {
			for _, s := range seeds {
				So(s.Name, ShouldNotBeBlank)
				So(s.Provider, ShouldNotBeBlank)
				So(s.Description, ShouldNotBeBlank)
				So(len(s.Capabilities), ShouldBeGreaterThan, 0)
				So(s.PerformanceScore, ShouldBeGreaterThan, 0)
			}
		})
	})
}
