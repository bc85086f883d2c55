package i2cbridge

import (
	"context"
	"fmt"

	"github.com/moffa90/go-af9035/regbus"
)

// Transferer executes I2C message lists. *Bridge implements it.
type Transferer interface {
	Transfer(ctx context.Context, msgs []Msg) (int, error)
}

// Registers reaches the registers of a demodulator at Addr through I2C
// messages, the way any I2C client of the bridge would. It implements
// regbus.ReadWriter.
type Registers struct {
	Bus  Transferer
	Addr byte
}

var _ regbus.ReadWriter = Registers{}

// ReadRegs issues [mailbox, addr_hi, addr_lo] followed by a read of len(buf).
func (r Registers) ReadRegs(ctx context.Context, reg regbus.Register, buf []byte) error {
	msgs := []Msg{
		{Addr: uint16(r.Addr), Buf: []byte{reg.Mailbox, byte(reg.Addr >> 8), byte(reg.Addr)}},
		{Addr: uint16(r.Addr), Flags: FlagRead, Buf: buf},
	}
	return r.transfer(ctx, "read", reg, msgs)
}

// WriteRegs issues [mailbox, addr_hi, addr_lo, data...].
func (r Registers) WriteRegs(ctx context.Context, reg regbus.Register, data []byte) error {
	buf := make([]byte, 0, demodHeaderSize+len(data))
	buf = append(buf, reg.Mailbox, byte(reg.Addr>>8), byte(reg.Addr))
	buf = append(buf, data...)

	return r.transfer(ctx, "write", reg, []Msg{{Addr: uint16(r.Addr), Buf: buf}})
}

func (r Registers) transfer(ctx context.Context, op string, reg regbus.Register, msgs []Msg) error {
	n, err := r.Bus.Transfer(ctx, msgs)
	if err != nil {
		return fmt.Errorf("demod 0x%02X %s %s: %w", r.Addr, op, reg, err)
	}
	if n != len(msgs) {
		return fmt.Errorf("demod 0x%02X %s %s: %d of %d messages processed", r.Addr, op, reg, n, len(msgs))
	}
	return nil
}
