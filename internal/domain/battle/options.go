// Package battle implements the pairing selector for model battles.
package battle

import "math/rand"

// Option applies a configuration option to the Selector.
type Option func(*Selector)

// WithRand sets a custom random source, mainly for deterministic tests.
func WithRand(rng *rand.Rand) Option {
	return func(s *Selector) {
		if rng != nil {
			s.rng = rng
		}
	}
}
