package backtrack

import (
	"errors"
	"math/rand"
)

// Option configures the search.
type Option func(*config) error

type config struct {
	rng   *rand.Rand
	order []uint8
}

// WithShuffledValues randomizes the value-trial order using rng. All
// frames share the one shuffled order, so the search stays exhaustive; the
// generator relies on this to avoid deterministic grids.
func WithShuffledValues(rng *rand.Rand) Option {
	return func(c *config) error {
		if rng == nil {
			return errors.New("nil rand source")
		}
		c.rng = rng
		return nil
	}
}

// newConfig applies the options and fixes the value-trial order: 1..size
// ascending unless shuffled.
func newConfig(size int, opts ...Option) (config, error) {
	var c config
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return c, err
		}
	}
	c.order = make([]uint8, size)
	for i := range c.order {
		c.order[i] = uint8(i + 1)
	}
	if c.rng != nil {
		c.rng.Shuffle(len(c.order), func(i, j int) {
			c.order[i], c.order[j] = c.order[j], c.order[i]
		})
	}
	return c, nil
}
