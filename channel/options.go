package channel

import "time"

// DefaultTimeout is the bulk transfer timeout used when none is configured.
const DefaultTimeout = 2000 * time.Millisecond

// Config holds the channel configuration.
type Config struct {
	// Timeout bounds every send and receive
	Timeout time.Duration

	// Logger receives frame dumps at debug level (optional)
	Logger Logger

	// Observer is notified after every exchange (optional)
	Observer Observer
}

func defaultConfig() Config {
	return Config{
		Timeout: DefaultTimeout,
	}
}

// Option is a functional option for configuring the Channel.
type Option func(*Config)

// WithTimeout sets the bulk transfer timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithLogger sets a logger for frame dumps and transfer errors.
//
// Example:
//
//	ch := channel.New(t, channel.WithLogger(slog.Default()))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithObserver sets an observer notified after every exchange.
func WithObserver(o Observer) Option {
	return func(c *Config) {
		c.Observer = o
	}
}
