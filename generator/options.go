package generator

import (
	"errors"
	"math/rand"
	"time"
)

// Option configures generation.
type Option func(*config) error

type config struct {
	seed int64
	rng  *rand.Rand
}

// WithSeed makes generation reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) error {
		c.seed = seed
		return nil
	}
}

// WithRand supplies the random source directly, overriding WithSeed.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) error {
		if rng == nil {
			return errors.New("nil rand source")
		}
		c.rng = rng
		return nil
	}
}

func newConfig(opts ...Option) (config, error) {
	c := config{seed: time.Now().UnixNano()}
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return c, err
		}
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(c.seed))
	}
	return c, nil
}
