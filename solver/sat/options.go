package sat

import "errors"

// Option configures the pipeline.
type Option func(*config) error

type config struct {
	engine Engine
}

// WithEngine swaps the external SAT engine. The engine must be fresh; the
// pipeline feeds it one instance and solves once.
func WithEngine(e Engine) Option {
	return func(c *config) error {
		if e == nil {
			return errors.New("nil engine")
		}
		c.engine = e
		return nil
	}
}

func newConfig(opts ...Option) (config, error) {
	var c config
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return c, err
		}
	}
	if c.engine == nil {
		c.engine = NewGini()
	}
	return c, nil
}
