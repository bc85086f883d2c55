package demod

import (
	"context"
	"time"

	"github.com/moffa90/go-af9035/regbus"
	"github.com/moffa90/go-af9035/tuning"
)

// TSMode selects how the transport stream leaves the demodulator.
type TSMode int

const (
	TSModeParallel TSMode = iota
	TSModeSerial
	TSModeUSB
)

func (m TSMode) String() string {
	switch m {
	case TSModeParallel:
		return "parallel"
	case TSModeSerial:
		return "serial"
	case TSModeUSB:
		return "usb"
	default:
		return "unknown"
	}
}

// Config describes one demodulator.
type Config struct {
	// Clock is the crystal/ADC pair the chip runs at
	Clock tuning.ClockProfile

	// IF is the tuner's intermediate frequency in Hz
	IF uint32

	// RFInverted is set when the RF path inverts the spectrum
	RFInverted bool

	TSMode TSMode

	// TunerID is reported to the firmware during Init
	TunerID byte

	// InitTables are written after the DCA settings, usually the OFSM
	// table followed by the table for the attached tuner.
	InitTables [][]regbus.RegValue
}

// Tuner programs the RF stage ahead of the demodulator.
type Tuner interface {
	SetParams(ctx context.Context, freq uint32, bw tuning.Bandwidth) error
}

// Logger is an optional logging interface. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
}

// DefaultPollInterval is the wait between power-down status reads.
const DefaultPollInterval = 10 * time.Millisecond

// MaxPolls bounds the power-down status wait.
const MaxPolls = 150

type options struct {
	logger       Logger
	pollInterval time.Duration
}

// Option is a functional option for configuring a Demod.
type Option func(*options)

// WithLogger sets a logger for configuration traces.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithPollInterval overrides the wait between power-down status reads.
func WithPollInterval(d time.Duration) Option {
	return func(o *options) {
		o.pollInterval = d
	}
}
