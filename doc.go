// Package af9035 drives an Afatech AF9035 USB DVB-T bridge and the one or
// two AF9033 demodulators behind it.
//
// A Device is built over any channel.Transport and a config.Config. Bring-up
// follows the order the hardware expects:
//
//	dev, err := af9035.New(transport, cfg, af9035.WithLogger(slog.Default()))
//	if err != nil {
//	    return err
//	}
//
//	warm, err := dev.IsWarm(ctx)
//	if !warm {
//	    err = dev.LoadFirmware(ctx, img)
//	}
//	err = dev.AuxInit(ctx)
//	err = dev.InitEndpoints(ctx)
//	adapters, err := dev.Attach(ctx)
//
//	err = dev.Tune(ctx, 0, 474000000, tuning.Bandwidth8MHz)
//
// Start runs the whole sequence in one call.
//
// Demodulators are reached through the bridge's I2C adapter by address, the
// same way any other I2C client would reach them. The TUA9001 tuner has a
// built-in driver; MxL5007T and TDA18218 tuners need a driver passed with
// WithTuner.
package af9035
