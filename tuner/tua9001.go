package tuner

import (
	"context"
	"fmt"

	"periph.io/x/conn/v3/i2c"

	"github.com/moffa90/go-af9035/tuning"
)

type reg16 struct {
	reg byte
	val uint16
}

var tua9001Init = []reg16{
	{0x1e, 0x6512},
	{0x25, 0xb888},
	{0x39, 0x5460},
	{0x3b, 0x00c0},
	{0x3a, 0xf000},
	{0x08, 0x0000},
	{0x32, 0x0030},
	{0x41, 0x703a},
	{0x40, 0x1c78},
	{0x2c, 0x1c00},
	{0x36, 0xc013},
	{0x37, 0x6f18},
	{0x27, 0x0008},
	{0x2a, 0x0001},
	{0x34, 0x0a40},
}

const (
	tua9001RegBandwidth = 0x04
	tua9001RegFrequency = 0x1f

	tua9001FreqOffset = 150000000
)

// TUA9001Driver drives an Infineon TUA 9001 silicon tuner. Registers are 16 bits
// wide and written as [reg, hi, lo].
type TUA9001Driver struct {
	dev    i2c.Dev
	gate   Gate
	logger Logger
}

var _ Tuner = (*TUA9001Driver)(nil)

// NewTUA9001 returns a driver for the tuner at addr on bus. gate may be nil
// when the tuner is always reachable.
func NewTUA9001(bus i2c.Bus, addr uint16, gate Gate, logger Logger) *TUA9001Driver {
	return &TUA9001Driver{
		dev:    i2c.Dev{Bus: bus, Addr: addr},
		gate:   gate,
		logger: logger,
	}
}

// Info returns the tuner name and frequency range.
func (t *TUA9001Driver) Info() Info {
	return Info{Name: "Infineon TUA 9001", MinFrequency: 170000000, MaxFrequency: 860000000}
}

// Init writes the power-on register table.
func (t *TUA9001Driver) Init(ctx context.Context) error {
	if err := t.writeGated(ctx, tua9001Init); err != nil {
		return fmt.Errorf("tua9001 init: %w", err)
	}
	return nil
}

// SetParams programs the channel bandwidth and frequency.
func (t *TUA9001Driver) SetParams(ctx context.Context, freq uint32, bw tuning.Bandwidth) error {
	val := tua9001FrequencyWord(freq)
	t.logDebug("tua9001 set params", "freq", freq, "bandwidth", bw.String(), "word", val)

	regs := []reg16{
		{tua9001RegBandwidth, tua9001BandwidthWord(bw)},
		{tua9001RegFrequency, val},
	}
	if err := t.writeGated(ctx, regs); err != nil {
		return fmt.Errorf("tua9001 set params: %w", err)
	}
	return nil
}

// tua9001BandwidthWord maps 6 and 7 MHz to their codes; anything else,
// 8 MHz included, selects 8 MHz. The 5 MHz code 0x3000 is not enabled.
func tua9001BandwidthWord(bw tuning.Bandwidth) uint16 {
	switch bw {
	case tuning.Bandwidth6MHz:
		return 0x2000
	case tuning.Bandwidth7MHz:
		return 0x1000
	default:
		return 0x0000
	}
}

// tua9001FrequencyWord is the synthesizer word: (freq - 150 MHz) in
// steps of 1/48 MHz, with the intermediate kHz division kept.
func tua9001FrequencyWord(freq uint32) uint16 {
	f := freq - tua9001FreqOffset
	f /= 1000
	f *= 48
	f /= 1000
	return uint16(f)
}

func (t *TUA9001Driver) writeGated(ctx context.Context, regs []reg16) error {
	if t.gate != nil {
		if err := t.gate.SetI2CGate(ctx, true); err != nil {
			return err
		}
	}

	var err error
	for _, r := range regs {
		if err = t.write(ctx, r); err != nil {
			break
		}
	}

	if t.gate != nil {
		// the gate is closed even when ctx is already done
		if cerr := t.gate.SetI2CGate(context.WithoutCancel(ctx), false); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func (t *TUA9001Driver) write(ctx context.Context, r reg16) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write reg 0x%02x: %w", r.reg, err)
	}

	buf := []byte{r.reg, byte(r.val >> 8), byte(r.val)}
	var err error
	if cb, ok := t.dev.Bus.(ContextBus); ok {
		err = cb.TxContext(ctx, t.dev.Addr, buf, nil)
	} else {
		err = t.dev.Tx(buf, nil)
	}
	if err != nil {
		return fmt.Errorf("write reg 0x%02x: %w", r.reg, err)
	}
	return nil
}

func (t *TUA9001Driver) logDebug(msg string, keysAndValues ...interface{}) {
	if t.logger != nil {
		t.logger.Debug(msg, keysAndValues...)
	}
}
