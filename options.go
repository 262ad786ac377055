package dynarray

import "github.com/charmbracelet/log"

// config holds the settings applied by Options.
type config struct {
	initialCapacity int
	logger          *log.Logger
}

// Option configures a DynamicArray.
type Option func(*config)

// WithInitialCapacity sets the capacity a new or cleared array starts with.
// It is also the floor below which the array never shrinks.
// If n <= 0, InitialCapacity is used.
func WithInitialCapacity(n int) Option {
	return func(c *config) {
		if n <= 0 {
			n = InitialCapacity
		}
		c.initialCapacity = n
	}
}

// WithLogger makes the array log grow and shrink events at debug level.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

func newConfig(opts []Option) config {
	c := config{initialCapacity: InitialCapacity}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
