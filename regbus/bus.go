package regbus

import (
	"context"
	"fmt"

	"github.com/moffa90/go-af9035/protocol"
)

// Executor performs one request/response exchange. *channel.Channel
// implements it.
type Executor interface {
	Execute(ctx context.Context, req protocol.Request) error
}

// ReadWriter is byte-level register access. Bus implements it over the
// bridge's register commands; i2cbridge.Registers implements it over I2C.
type ReadWriter interface {
	ReadRegs(ctx context.Context, r Register, buf []byte) error
	WriteRegs(ctx context.Context, r Register, data []byte) error
}

// Bus issues register reads and writes through the bridge.
//
// Bit-field writes are read-modify-write and are not atomic with respect to
// other users of the same register; callers that share a register must
// coordinate.
type Bus struct {
	exec Executor
}

// New creates a Bus on top of exec.
func New(exec Executor) *Bus {
	if exec == nil {
		panic("executor cannot be nil")
	}
	return &Bus{exec: exec}
}

// ReadRegs reads len(buf) consecutive registers starting at r.
func (b *Bus) ReadRegs(ctx context.Context, r Register, buf []byte) error {
	if err := b.exec.Execute(ctx, protocol.RegisterRead(r.Mailbox, r.Addr, buf)); err != nil {
		return fmt.Errorf("read %s len %d: %w", r, len(buf), err)
	}
	return nil
}

// WriteRegs writes data to consecutive registers starting at r.
func (b *Bus) WriteRegs(ctx context.Context, r Register, data []byte) error {
	if err := b.exec.Execute(ctx, protocol.RegisterWrite(r.Mailbox, r.Addr, data)); err != nil {
		return fmt.Errorf("write %s len %d: %w", r, len(data), err)
	}
	return nil
}

// ReadReg reads one register.
func (b *Bus) ReadReg(ctx context.Context, r Register) (byte, error) {
	return ReadReg(ctx, b, r)
}

// WriteReg writes one register.
func (b *Bus) WriteReg(ctx context.Context, r Register, v byte) error {
	return WriteReg(ctx, b, r, v)
}

// ReadBits reads field f of register r.
func (b *Bus) ReadBits(ctx context.Context, r Register, f BitField) (byte, error) {
	return ReadBits(ctx, b, r, f)
}

// WriteBits sets field f of register r to v.
func (b *Bus) WriteBits(ctx context.Context, r Register, f BitField, v byte) error {
	return WriteBits(ctx, b, r, f, v)
}
