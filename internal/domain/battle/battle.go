// Package battle implements the pairing selector for model battles.
//
// A battle is a random pairing of two distinct models drawn uniformly
// without replacement from the full catalog. Neither slot of the pair
// carries semantic weight; slot assignment is itself random.
package battle

import (
	"math/rand"
	"sync"

	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/domain/model"
)

// Selector draws random pairs of models for battles.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector creates a selector with configuration options.
func NewSelector(opts ...Option) *Selector {
	s := &Selector{}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(rand.Int63())) //nolint:gosec // pairing is not security sensitive
	}
	return s
}

// DrawPair selects two distinct models uniformly at random without
// replacement. Returns ErrInsufficientModels when fewer than two models
// are available.
func (s *Selector) DrawPair(models []model.Model) (model.Model, model.Model, error) {
	if len(models) < 2 {
		return model.Model{}, model.Model{}, ErrInsufficientModels
	}

	s.mu.Lock()
	i := s.rng.Intn(len(models))
	j := s.rng.Intn(len(models) - 1)
	s.mu.Unlock()

	// Shift the second draw past the first so the pair is distinct and
	// every unordered pair remains equally likely.
	if j >= i {
		j++
	}
	return models[i], models[j], nil
}
