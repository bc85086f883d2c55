package i2cbridge

import (
	"context"
	"errors"
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

var _ i2c.Bus = (*Bridge)(nil)

// ErrFixedSpeed is returned by SetSpeed; the bus clock is set by the bridge
// firmware.
var ErrFixedSpeed = errors.New("i2c bus speed is fixed by the bridge firmware")

func (b *Bridge) String() string {
	return fmt.Sprintf("af9035-i2c(demod 0x%02X)", b.addrs.PrimaryDemod)
}

// Tx implements i2c.Bus. A non-empty w followed by a non-empty r is one
// combined operation; w alone is a write. A read with no write cannot be
// carried by the bridge.
func (b *Bridge) Tx(addr uint16, w, r []byte) error {
	return b.TxContext(context.Background(), addr, w, r)
}

// TxContext is Tx bounded by ctx.
func (b *Bridge) TxContext(ctx context.Context, addr uint16, w, r []byte) error {
	msgs := []Msg{{Addr: addr, Buf: w}}
	if len(r) > 0 {
		msgs = append(msgs, Msg{Addr: addr, Flags: FlagRead, Buf: r})
	}

	_, err := b.Transfer(ctx, msgs)
	return err
}

// SetSpeed implements i2c.Bus.
func (b *Bridge) SetSpeed(f physic.Frequency) error {
	return ErrFixedSpeed
}
