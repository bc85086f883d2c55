package af9035

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/moffa90/go-af9035/channel"
	"github.com/moffa90/go-af9035/config"
	"github.com/moffa90/go-af9035/demod"
	"github.com/moffa90/go-af9035/firmware"
	"github.com/moffa90/go-af9035/fwimage"
	"github.com/moffa90/go-af9035/i2cbridge"
	"github.com/moffa90/go-af9035/regbus"
	"github.com/moffa90/go-af9035/regmap"
	"github.com/moffa90/go-af9035/tuner"
	"github.com/moffa90/go-af9035/tuning"
)

var (
	// ErrNotReady is returned when a step runs before the one it depends on.
	ErrNotReady = errors.New("device not ready")

	// ErrNoAdapter is returned for an adapter index that is not attached.
	ErrNoAdapter = errors.New("no such adapter")

	// ErrFrequencyRange is returned by Tune for a frequency outside the
	// range of the demodulator or its tuner.
	ErrFrequencyRange = errors.New("frequency out of range")
)

// speedReporter is implemented by transports that know the USB speed they
// are attached at, such as usbfs.Device.
type speedReporter interface {
	HighSpeed() (bool, error)
}

// Adapter is one demodulator and its tuner.
type Adapter struct {
	Index int
	Demod *demod.Demod
	Tuner tuner.Tuner
	Info  demod.Info
}

// Device is one AF9035 bridge.
type Device struct {
	transport channel.Transport
	ch        *channel.Channel
	bus       *regbus.Bus
	loader    *firmware.Loader
	cfg       *config.Config
	opts      options

	highSpeed bool
	dual      bool

	clock    tuning.ClockProfile
	clockSet bool
	bridge   *i2cbridge.Bridge
	adapters []*Adapter
}

// New creates a Device over t. A nil cfg selects config.Default(). The
// configuration is validated before anything is sent.
//
// When t reports its USB speed, that speed is used and the configured one is
// ignored. A full speed link always runs in single mode.
func New(t channel.Transport, cfg *config.Config, opts ...Option) (*Device, error) {
	if t == nil {
		panic("transport cannot be nil")
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	chOpts := []channel.Option{channel.WithLogger(o.logger)}
	if cfg.Transport.Timeout > 0 {
		chOpts = append(chOpts, channel.WithTimeout(cfg.Transport.Timeout))
	}
	if o.metrics != nil {
		chOpts = append(chOpts, channel.WithObserver(o.metrics))
	}
	ch := channel.New(t, chOpts...)

	d := &Device{
		transport: t,
		ch:        ch,
		bus:       regbus.New(ch),
		cfg:       cfg,
		opts:      o,
		highSpeed: cfg.HighSpeed(),
	}

	if sr, ok := t.(speedReporter); ok {
		high, err := sr.HighSpeed()
		if err != nil {
			d.logWarn("usb speed unknown, using configured speed", "speed", cfg.USBSpeed, "error", err)
		} else {
			d.highSpeed = high
		}
	}

	d.dual = cfg.DualMode && d.highSpeed
	if cfg.DualMode && !d.dual {
		d.logWarn("full speed link, dual mode disabled")
	}

	d.loader = firmware.New(ch,
		firmware.WithLogger(o.logger),
		firmware.WithProgressCallback(d.reportProgress),
	)
	return d, nil
}

func (d *Device) reportProgress(p firmware.Progress) {
	if d.opts.metrics != nil {
		d.opts.metrics.ObserveProgress(p)
	}
	if d.opts.progress != nil {
		d.opts.progress(p)
	}
}

// Config returns the device configuration.
func (d *Device) Config() *config.Config {
	return d.cfg
}

// DualMode reports whether the second demodulator is in use.
func (d *Device) DualMode() bool {
	return d.dual
}

// HighSpeed reports whether the link runs at USB 2.0 high speed.
func (d *Device) HighSpeed() bool {
	return d.highSpeed
}

// Clock returns the clock profile selected by AuxInit.
func (d *Device) Clock() (tuning.ClockProfile, bool) {
	return d.clock, d.clockSet
}

// IsWarm reports whether firmware is already running.
func (d *Device) IsWarm(ctx context.Context) (bool, error) {
	return d.loader.IsWarm(ctx)
}

// LoadFirmware downloads and boots img.
func (d *Device) LoadFirmware(ctx context.Context, img *fwimage.Image) error {
	return d.loader.Load(ctx, img)
}

// LoadFirmwareFile parses the image at path and loads it.
func (d *Device) LoadFirmwareFile(ctx context.Context, path string) error {
	img, err := fwimage.Parse(path)
	if err != nil {
		return fmt.Errorf("firmware %s: %w", path, err)
	}
	return d.loader.Load(ctx, img)
}

// AuxInit selects the clock profile, tells the bridge where the second
// demodulator lives and enables the clock output to it in dual mode.
func (d *Device) AuxInit(ctx context.Context) error {
	clock, ok := d.cfg.ClockOverride()
	if ok {
		d.logDebug("clock override", "clock", clock.String())
	} else {
		strap, err := d.bus.ReadBits(ctx, regmap.ClockStrap, regmap.ClockStrapField)
		if err != nil {
			return fmt.Errorf("aux init: read clock strap: %w", err)
		}
		clock, err = tuning.ClockFromStrap(strap)
		if err != nil {
			return fmt.Errorf("aux init: %w", err)
		}
		d.logDebug("clock strap", "strap", strap, "clock", clock.String())
	}
	if _, err := tuning.Coefficients(clock.ADC, tuning.Bandwidth8MHz); err != nil {
		return fmt.Errorf("aux init: %w", err)
	}

	var second byte
	if d.dual {
		second = d.cfg.Adapters[1].DemodAddress
	}
	steps := []regbus.RegValue{
		{Reg: regmap.SecondDemodAddr, Value: second},
		{Reg: regmap.ClockOutEnable, Value: boolByte(d.dual)},
	}
	if err := regbus.WriteTable(ctx, d.bus, steps); err != nil {
		return fmt.Errorf("aux init: %w", err)
	}

	d.clock = clock
	d.clockSet = true
	d.logInfo("aux init done", "clock", clock.String(), "dual", d.dual)
	return nil
}

// Endpoint sizes in 4-byte units.
const (
	tsPacketSize       = 188
	highSpeedFrameSize = tsPacketSize * 348 / 4
	highSpeedMaxPacket = 512 / 4
	fullSpeedFrameSize = tsPacketSize * 21 / 4
	fullSpeedMaxPacket = 64 / 4
)

// InitEndpoints programs the TS streaming endpoints: EP4 for the first
// demodulator and, in dual mode, EP5 for the second.
func (d *Device) InitEndpoints(ctx context.Context) error {
	frame, packet := uint16(highSpeedFrameSize), byte(highSpeedMaxPacket)
	if !d.highSpeed {
		frame, packet = fullSpeedFrameSize, fullSpeedMaxPacket
	}
	dual := boolByte(d.dual)

	steps := []regbus.RegValue{
		{Reg: regmap.MP2SoftReset, Field: regmap.Bit0, Value: 1},
		{Reg: regmap.MP2IF2SoftReset, Field: regmap.Bit0, Value: 1},
		{Reg: regmap.EP4TxEnable, Field: regmap.Bit5, Value: 0},
		{Reg: regmap.EP5TxEnable, Field: regmap.Bit6, Value: 0},
		{Reg: regmap.EP4TxNak, Field: regmap.Bit5, Value: 0},
		{Reg: regmap.EP5TxNak, Field: regmap.Bit6, Value: 0},
		{Reg: regmap.EP4TxEnable, Field: regmap.Bit5, Value: 1},
	}
	steps = append(steps, endpointSize(regmap.EP4TxLen, regmap.EP4MaxPacket, frame, packet)...)
	if d.dual {
		steps = append(steps, regbus.RegValue{Reg: regmap.EP5TxEnable, Field: regmap.Bit6, Value: 1})
		steps = append(steps, endpointSize(regmap.EP5TxLen, regmap.EP5MaxPacket, frame, packet)...)
	}
	steps = append(steps,
		regbus.RegValue{Reg: regmap.MP2IF2Enable, Field: regmap.Bit0, Value: dual},
		regbus.RegValue{Reg: regmap.TSISEnable, Field: regmap.Bit0, Value: dual},
		regbus.RegValue{Reg: regmap.MP2SoftReset, Field: regmap.Bit0, Value: 0},
		regbus.RegValue{Reg: regmap.MP2IF2SoftReset, Field: regmap.Bit0, Value: 0},
	)

	if err := regbus.WriteTable(ctx, d.bus, steps); err != nil {
		return fmt.Errorf("init endpoints: %w", err)
	}
	d.logDebug("endpoints ready", "frame", frame, "packet", packet, "high_speed", d.highSpeed)
	return nil
}

func endpointSize(length, maxPacket regbus.Register, frame uint16, packet byte) []regbus.RegValue {
	return []regbus.RegValue{
		{Reg: length, Value: byte(frame)},
		{Reg: regbus.Register{Mailbox: length.Mailbox, Addr: length.Addr + 1}, Value: byte(frame >> 8)},
		{Reg: maxPacket, Value: packet},
	}
}

// Attach creates the I2C bridge, probes and initializes every demodulator
// and brings up its tuner. AuxInit must have run.
func (d *Device) Attach(ctx context.Context) ([]*Adapter, error) {
	if !d.clockSet {
		return nil, fmt.Errorf("attach: %w: clock not selected, run AuxInit first", ErrNotReady)
	}

	count := 1
	if d.dual {
		count = 2
	}
	cfgs := d.cfg.Adapters[:count]

	addrs := i2cbridge.Addresses{
		PrimaryDemod: cfgs[0].DemodAddress,
		PrimaryTuner: cfgs[0].TunerAddress,
	}
	if d.dual {
		addrs.Dual = true
		addrs.SecondaryDemod = cfgs[1].DemodAddress
		addrs.SecondaryTuner = cfgs[1].TunerAddress
	}

	bridgeOpts := []i2cbridge.Option{i2cbridge.WithLogger(d.opts.logger)}
	if d.opts.metrics != nil {
		bridgeOpts = append(bridgeOpts, i2cbridge.WithObserver(d.opts.metrics))
	}
	d.bridge = i2cbridge.New(d.ch, addrs, bridgeOpts...)

	adapters := make([]*Adapter, 0, count)
	for i, a := range cfgs {
		ad, err := d.attach(ctx, i, a)
		if err != nil {
			return nil, fmt.Errorf("attach adapter %d: %w", i, err)
		}
		adapters = append(adapters, ad)
	}

	d.adapters = adapters
	return adapters, nil
}

func (d *Device) attach(ctx context.Context, index int, a config.AdapterConfig) (*Adapter, error) {
	demodOpts := []demod.Option{demod.WithLogger(d.opts.logger)}
	if d.opts.pollInterval > 0 {
		demodOpts = append(demodOpts, demod.WithPollInterval(d.opts.pollInterval))
	}
	regs := i2cbridge.Registers{Bus: d.bridge, Addr: a.DemodAddress}
	dm := demod.New(regs, d.cfg.Demod(index, d.clock), demodOpts...)

	info, err := dm.Probe(ctx)
	if err != nil {
		return nil, err
	}

	kind := a.TunerKind()
	if index == 0 {
		if err := d.boardInit(ctx, kind); err != nil {
			return nil, err
		}
	}

	t, err := d.newTuner(index, kind, a, dm)
	if err != nil {
		return nil, err
	}
	dm.AttachTuner(t)

	if err := dm.Init(ctx); err != nil {
		return nil, err
	}
	if err := t.Init(ctx); err != nil {
		return nil, err
	}

	d.logInfo("adapter attached",
		"adapter", index,
		"demod", fmt.Sprintf("0x%02X", a.DemodAddress),
		"tuner", t.Info().Name,
		"link_fw", info.Link.String(),
		"ofdm_fw", info.OFDM.String(),
	)
	return &Adapter{Index: index, Demod: dm, Tuner: t, Info: info}, nil
}

func (d *Device) newTuner(index int, kind tuner.Kind, a config.AdapterConfig, gate tuner.Gate) (tuner.Tuner, error) {
	if t, ok := d.opts.tuners[index]; ok {
		return t, nil
	}

	switch kind {
	case tuner.TUA9001:
		return tuner.NewTUA9001(d.bridge, uint16(a.TunerAddress), gate, d.opts.logger), nil
	default:
		return nil, fmt.Errorf("%s has no built-in driver, supply one with WithTuner: %w", kind, tuner.ErrUnsupportedKind)
	}
}

// Adapters returns the attached adapters.
func (d *Device) Adapters() []*Adapter {
	return d.adapters
}

// Adapter returns attached adapter index.
func (d *Device) Adapter(index int) (*Adapter, error) {
	if index < 0 || index >= len(d.adapters) {
		return nil, fmt.Errorf("adapter %d: %w", index, ErrNoAdapter)
	}
	return d.adapters[index], nil
}

// Tune programs adapter index for freq (Hz) and bw.
func (d *Device) Tune(ctx context.Context, index int, freq uint32, bw tuning.Bandwidth) error {
	a, err := d.Adapter(index)
	if err != nil {
		return err
	}

	info := a.Tuner.Info()
	if freq < demod.MinFrequency || freq > demod.MaxFrequency ||
		(info.MinFrequency != 0 && freq < info.MinFrequency) ||
		(info.MaxFrequency != 0 && freq > info.MaxFrequency) {
		return fmt.Errorf("tune adapter %d to %d Hz: %w", index, freq, ErrFrequencyRange)
	}

	if err := a.Demod.SetFrontend(ctx, freq, bw); err != nil {
		return fmt.Errorf("tune adapter %d: %w", index, err)
	}
	d.logInfo("tuned", "adapter", index, "frequency", freq, "bandwidth", bw.String())
	return nil
}

// Sleep powers adapter index down.
func (d *Device) Sleep(ctx context.Context, index int) error {
	a, err := d.Adapter(index)
	if err != nil {
		return err
	}
	if err := a.Demod.Sleep(ctx); err != nil {
		return fmt.Errorf("sleep adapter %d: %w", index, err)
	}
	return nil
}

// Start identifies the firmware state, loads img if the device is cold and
// runs the rest of the bring-up. img may be nil for a device known to be
// warm.
func (d *Device) Start(ctx context.Context, img *fwimage.Image) ([]*Adapter, error) {
	warm, err := d.IsWarm(ctx)
	if err != nil {
		return nil, err
	}
	if !warm {
		if img == nil {
			return nil, fmt.Errorf("device is cold: %w: no firmware image", ErrNotReady)
		}
		if err := d.LoadFirmware(ctx, img); err != nil {
			return nil, err
		}
	}

	if err := d.AuxInit(ctx); err != nil {
		return nil, err
	}
	if err := d.InitEndpoints(ctx); err != nil {
		return nil, err
	}
	return d.Attach(ctx)
}

// Close closes the transport if it can be closed.
func (d *Device) Close() error {
	if c, ok := d.transport.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func (d *Device) logDebug(msg string, keysAndValues ...interface{}) {
	if d.opts.logger != nil {
		d.opts.logger.Debug(msg, keysAndValues...)
	}
}

func (d *Device) logInfo(msg string, keysAndValues ...interface{}) {
	if d.opts.logger != nil {
		d.opts.logger.Info(msg, keysAndValues...)
	}
}

func (d *Device) logWarn(msg string, keysAndValues ...interface{}) {
	if d.opts.logger != nil {
		d.opts.logger.Warn(msg, keysAndValues...)
	}
}
