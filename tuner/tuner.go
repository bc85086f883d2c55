package tuner

import (
	"context"

	"github.com/moffa90/go-af9035/tuning"
)

// Tuner drives one RF tuner chip.
type Tuner interface {
	Init(ctx context.Context) error
	SetParams(ctx context.Context, freq uint32, bw tuning.Bandwidth) error
	Info() Info
}

// Info describes a tuner driver.
type Info struct {
	Name         string
	MinFrequency uint32
	MaxFrequency uint32
}

// Gate opens and closes the I2C path to the tuner. *demod.Demod
// implements it.
type Gate interface {
	SetI2CGate(ctx context.Context, enable bool) error
}

// ContextBus is an i2c.Bus whose transfers can be bounded by a context.
// *i2cbridge.Bridge implements it.
type ContextBus interface {
	TxContext(ctx context.Context, addr uint16, w, r []byte) error
}

// Logger is an optional logging interface. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
}
