package af9035

import (
	"time"

	"github.com/moffa90/go-af9035/firmware"
	"github.com/moffa90/go-af9035/metrics"
	"github.com/moffa90/go-af9035/tuner"
)

// Logger is an optional logging interface. *slog.Logger satisfies it, and
// it is handed down to every layer of the stack.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

type options struct {
	logger       Logger
	metrics      *metrics.Collector
	progress     firmware.ProgressCallback
	tuners       map[int]tuner.Tuner
	pollInterval time.Duration
}

// Option configures a Device.
type Option func(*options)

// WithLogger sets the logger used by the device and every layer below it.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics records channel exchanges, I2C routes and firmware progress
// in c.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *options) {
		o.metrics = c
	}
}

// WithProgressCallback reports firmware download progress.
func WithProgressCallback(callback firmware.ProgressCallback) Option {
	return func(o *options) {
		o.progress = callback
	}
}

// WithTuner supplies the tuner driver of adapter index. It is required for
// tuners without a built-in driver and overrides the built-in one
// otherwise.
func WithTuner(index int, t tuner.Tuner) Option {
	return func(o *options) {
		if o.tuners == nil {
			o.tuners = make(map[int]tuner.Tuner)
		}
		o.tuners[index] = t
	}
}

// WithPollInterval sets the delay between power-down status polls.
func WithPollInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.pollInterval = d
		}
	}
}
