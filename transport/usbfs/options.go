package usbfs

import "errors"

// ErrUnsupported is returned by Open on platforms without usbfs support.
var ErrUnsupported = errors.New("usbfs: not supported on this platform")

// Logger is an optional logging interface. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
}

type options struct {
	detach bool
	logger Logger
}

// Option configures Open.
type Option func(*options)

// WithDetachKernelDriver controls whether a bound kernel driver is detached
// before the interface is claimed. It defaults to true.
func WithDetachKernelDriver(detach bool) Option {
	return func(o *options) {
		o.detach = detach
	}
}

// WithLogger sets a logger for open and close traces.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func defaultOptions() options {
	return options{detach: true}
}
