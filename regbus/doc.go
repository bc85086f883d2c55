// Package regbus provides register access to the AF9035 bridge and its
// demodulator.
//
// Registers are 16-bit addresses in a mailbox-selected space. Multi-byte
// accesses move consecutive registers in one frame; bit-field accesses
// operate on one byte:
//
//	bus := regbus.New(ch)
//	strap, err := bus.ReadBits(ctx, regmap.ClockStrap, regmap.ClockStrapField)
//
// The package-level helpers (ReadBits, WriteBits, WriteTable) work on any
// ReadWriter, so the same code drives the demodulator whether it is reached
// through the bridge directly or through the I2C bridge.
package regbus
