// Package i2cbridge exposes the AF9035 as an I2C host.
//
// The bridge has no raw I2C engine on the USB side. Instead every I2C
// operation is translated into a bridge command:
//
//   - A message to one of the bridge's own demodulators starts with the
//     mailbox and 16-bit register address. A write becomes a register write
//     of the remaining bytes; a write followed by a read becomes a register
//     read. The second demodulator of a dual device gets mailbox + 0x10.
//
//   - Any other address is a tuner. The bridge proxies the access with the
//     tuner read and write commands:
//
//     [LEN][I2C_ADDR][1][0][REG][DATA...]
//
//     Both tuners of a dual device share one physical address, so the
//     logical address of the second tuner is rewritten to the first and the
//     command goes to mailbox 0x10.
//
// A message list is planned into WriteOnly and CombinedWriteThenRead
// operations before anything is sent. Transfer returns the number of
// messages consumed:
//
//	b := i2cbridge.New(ch, i2cbridge.Addresses{PrimaryTuner: 0xc0})
//	n, err := b.Transfer(ctx, []i2cbridge.Msg{
//		{Addr: 0xc0, Buf: []byte{0x1f}},
//		{Addr: 0xc0, Flags: i2cbridge.FlagRead, Buf: make([]byte, 2)},
//	})
//
// Bridge also implements periph.io's i2c.Bus so periph device drivers can
// run on top of it.
package i2cbridge
