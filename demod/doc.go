// Package demod configures the AF9033 demodulator core of the AF9035
// bridge, or a second AF9033 chip behind it.
//
// A Demod is given register access through regbus.ReadWriter. The bridge's
// own core and a second chip are both normally reached through
// i2cbridge.Registers, so the demodulator is addressed by I2C address just
// like any other client of the bridge:
//
//	regs := i2cbridge.Registers{Bus: bridge, Addr: 0x38}
//	d := demod.New(regs, demod.Config{
//		Clock:      tuning.ClockProfile{Crystal: 20480000, ADC: 20480000},
//		IF:         4570000,
//		RFInverted: true,
//		TSMode:     demod.TSModeUSB,
//		TunerID:    0x27,
//	})
//	info, err := d.Probe(ctx)
//
// Sleep is the only operation that polls: it reads the suspend flag up to
// MaxPolls times and returns ErrTimeout if the firmware never clears it.
package demod
