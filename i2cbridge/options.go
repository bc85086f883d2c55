package i2cbridge

// Addresses tells the bridge which I2C targets are its own demodulators and
// which are tuners behind it.
type Addresses struct {
	// PrimaryDemod is the address of the demodulator inside the bridge.
	PrimaryDemod byte

	// SecondaryDemod is the address of the second demodulator. It is only
	// matched when Dual is set.
	SecondaryDemod byte

	// Dual enables the second demodulator.
	Dual bool

	// PrimaryTuner is the physical address shared by both tuners.
	PrimaryTuner byte

	// SecondaryTuner is the logical address of the tuner behind the second
	// demodulator, or 0 if there is none.
	SecondaryTuner byte
}

// Logger is an optional logging interface. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Observer is notified once per routed operation.
type Observer interface {
	ObserveRoute(route Route, err error)
}

type config struct {
	logger   Logger
	observer Observer
}

// Option is a functional option for configuring the Bridge.
type Option func(*config)

// WithLogger sets a logger for routing traces.
func WithLogger(logger Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithObserver sets an observer notified after every routed operation.
func WithObserver(o Observer) Option {
	return func(c *config) {
		c.observer = o
	}
}
