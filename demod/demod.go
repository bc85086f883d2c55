package demod

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/moffa90/go-af9035/protocol"
	"github.com/moffa90/go-af9035/regbus"
	"github.com/moffa90/go-af9035/regmap"
	"github.com/moffa90/go-af9035/tuning"
)

// ErrTimeout is returned when the chip does not confirm power-down.
var ErrTimeout = errors.New("power-down not confirmed")

// Frequency range accepted by the demodulator.
const (
	MinFrequency  = 44250000
	MaxFrequency  = 867250000
	FrequencyStep = 62500
)

// Info is read from the chip by Probe.
type Info struct {
	Link protocol.FirmwareVersion
	OFDM protocol.FirmwareVersion
}

// Demod configures one AF9033 demodulator core.
type Demod struct {
	regs  regbus.ReadWriter
	cfg   Config
	opts  options
	tuner Tuner
}

// New creates a Demod that reaches its registers through regs.
func New(regs regbus.ReadWriter, cfg Config, opts ...Option) *Demod {
	if regs == nil {
		panic("demod: nil register access")
	}

	o := options{pollInterval: DefaultPollInterval}
	for _, opt := range opts {
		opt(&o)
	}

	return &Demod{regs: regs, cfg: cfg, opts: o}
}

// AttachTuner sets the tuner programmed by SetFrontend.
func (d *Demod) AttachTuner(t Tuner) {
	d.tuner = t
}

// Config returns the demodulator configuration.
func (d *Demod) Config() Config {
	return d.cfg
}

// Probe reads both firmware versions and prepares the TS interface and pad
// drive for the configured output mode.
func (d *Demod) Probe(ctx context.Context) (Info, error) {
	var info Info

	if err := d.regs.ReadRegs(ctx, regmap.LinkFirmwareVersion, info.Link[:]); err != nil {
		return Info{}, fmt.Errorf("probe: %w", err)
	}
	if err := d.regs.ReadRegs(ctx, regmap.OFDMFirmwareVersion, info.OFDM[:]); err != nil {
		return Info{}, fmt.Errorf("probe: %w", err)
	}
	d.logInfo("firmware version", "link", info.Link.String(), "ofdm", info.OFDM.String())

	var steps []regbus.RegValue
	if d.cfg.TSMode == TSModeUSB {
		// split 15 PSB to 1K + 1K and enable flow control
		steps = []regbus.RegValue{
			{Reg: regmap.MP2IFHalfPSB, Field: regmap.Bit0, Value: 0},
			{Reg: regmap.MP2IFStopEnable, Field: regmap.Bit0, Value: 1},
		}
	} else {
		steps = []regbus.RegValue{
			{Reg: regmap.MP2IFFullSpeed, Field: regmap.Bit0, Value: 0},
			{Reg: regmap.MP2IFStopEnable, Field: regmap.Bit0, Value: 0},
		}
	}
	steps = append(steps,
		regbus.RegValue{Reg: regmap.PadODPU, Value: 0},
		regbus.RegValue{Reg: regmap.AGCOpenDrain, Value: 0},
	)

	if err := regbus.WriteTable(ctx, d.regs, steps); err != nil {
		return Info{}, fmt.Errorf("probe: %w", err)
	}
	return info, nil
}

// Init powers the chip up and programs clocks, DCA, the external init
// tables and the TS output mode.
func (d *Demod) Init(ctx context.Context) error {
	steps := []regbus.RegValue{
		{Reg: regmap.AFEMem0, Field: regmap.Bit3, Value: 0},
		{Reg: regmap.SuspendFlag, Value: 0},
		{Reg: regmap.TunerID, Value: d.cfg.TunerID},
		{Reg: regmap.FeqReadUpdate, Field: regmap.Bit0, Value: 1},
		{Reg: regmap.FecVtbRsdMonEn, Field: regmap.Bit0, Value: 1},
	}
	if err := regbus.WriteTable(ctx, d.regs, steps); err != nil {
		return fmt.Errorf("init: %w", err)
	}

	if err := d.setClocks(ctx); err != nil {
		return fmt.Errorf("init: %w", err)
	}

	steps = []regbus.RegValue{
		{Reg: regmap.DVBTInterrupt, Field: regmap.Bit2, Value: 1},
		{Reg: regmap.DVBTEnable, Field: regmap.Bit0, Value: 1},

		{Reg: regmap.DCAUpper, Field: regmap.Bit0, Value: 0},
		{Reg: regmap.HostBDCAUpper, Field: regmap.Bit0, Value: 0},
		{Reg: regmap.HostADCAUpper, Field: regmap.Bit0, Value: 0},
		{Reg: regmap.DCALower, Field: regmap.Bit0, Value: 0},
		{Reg: regmap.HostBDCALower, Field: regmap.Bit0, Value: 0},
		{Reg: regmap.HostADCALower, Field: regmap.Bit0, Value: 0},
		{Reg: regmap.DCAPlatch, Field: regmap.Bit0, Value: 0},
		{Reg: regmap.DCAFPGALatch, Value: 0},
		{Reg: regmap.DCAStandAlone, Field: regmap.Bit0, Value: 1},
		{Reg: regmap.DCAEnable, Field: regmap.Bit0, Value: 0},
	}
	if err := regbus.WriteTable(ctx, d.regs, steps); err != nil {
		return fmt.Errorf("init: %w", err)
	}

	for i, table := range d.cfg.InitTables {
		d.logDebug("loading init table", "index", i, "entries", len(table))
		if err := regbus.WriteTable(ctx, d.regs, table); err != nil {
			return fmt.Errorf("init: table %d: %w", i, err)
		}
	}

	var par, ser byte
	switch d.cfg.TSMode {
	case TSModeParallel:
		par = 1
	case TSModeSerial:
		ser = 1
	}

	steps = []regbus.RegValue{
		// H/W MPEG2 lock detection
		{Reg: regmap.Lock3Out, Value: 1},
		{Reg: regmap.PadMiscDR2, Value: 1},
		{Reg: regmap.PadMiscDR4, Value: 0},
		{Reg: regmap.PadMiscDR8, Value: 0},

		{Reg: regmap.MP2IFParallelMode, Field: regmap.Bit0, Value: par},
		{Reg: regmap.MP2IFSerialMode, Field: regmap.Bit0, Value: ser},
	}
	if d.cfg.TSMode == TSModeSerial {
		steps = append(steps, regbus.RegValue{Reg: regmap.HostBSerialMode, Field: regmap.Bit0, Value: 1})
	}
	if err := regbus.WriteTable(ctx, d.regs, steps); err != nil {
		return fmt.Errorf("init: %w", err)
	}

	d.logDebug("initialized", "ts_mode", d.cfg.TSMode.String(), "clock", d.cfg.Clock.String())
	return nil
}

func (d *Demod) setClocks(ctx context.Context) error {
	xtal := tuning.CrystalControl(d.cfg.Clock.Crystal)
	if err := d.regs.WriteRegs(ctx, regmap.CrystalClock, xtal[:]); err != nil {
		return fmt.Errorf("crystal control: %w", err)
	}

	adc := tuning.ADCControl(d.cfg.Clock.ADC)
	if err := d.regs.WriteRegs(ctx, regmap.ADCClock, adc[:]); err != nil {
		return fmt.Errorf("adc control: %w", err)
	}
	return nil
}

// Sleep asks the firmware to power the chip down and waits for it to
// confirm, reading the suspend flag at most MaxPolls times.
func (d *Demod) Sleep(ctx context.Context) error {
	if err := regbus.WriteReg(ctx, d.regs, regmap.SuspendFlag, 1); err != nil {
		return fmt.Errorf("sleep: %w", err)
	}
	if err := regbus.WriteReg(ctx, d.regs, regmap.TriggerOFSM, 0); err != nil {
		return fmt.Errorf("sleep: %w", err)
	}

	if err := d.waitSuspended(ctx); err != nil {
		return fmt.Errorf("sleep: %w", err)
	}

	if err := regbus.WriteBits(ctx, d.regs, regmap.AFEMem0, regmap.Bit3, 1); err != nil {
		return fmt.Errorf("sleep: %w", err)
	}

	// stops current leakage through the TS pads
	if d.cfg.TSMode != TSModeUSB {
		steps := []regbus.RegValue{
			{Reg: regmap.HostASerialMode, Field: regmap.Bit0, Value: 0},
			{Reg: regmap.HostAParallelMode, Field: regmap.Bit0, Value: 1},
		}
		if err := regbus.WriteTable(ctx, d.regs, steps); err != nil {
			return fmt.Errorf("sleep: %w", err)
		}
	}
	return nil
}

func (d *Demod) waitSuspended(ctx context.Context) error {
	for i := 0; i < MaxPolls; i++ {
		v, err := regbus.ReadReg(ctx, d.regs, regmap.SuspendFlag)
		if err != nil {
			return err
		}
		if v == 0 {
			d.logDebug("power-down confirmed", "polls", i+1)
			return nil
		}
		if i == MaxPolls-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d.opts.pollInterval):
		}
	}

	d.logDebug("power-down timed out", "polls", MaxPolls)
	return ErrTimeout
}

// SetFrontend tunes to freq Hz with the given channel bandwidth.
func (d *Demod) SetFrontend(ctx context.Context, freq uint32, bw tuning.Bandwidth) error {
	d.logDebug("set frontend", "freq", freq, "bandwidth", bw.String())

	// nothing is written, tuner included, for a profile the chip cannot run
	set, err := tuning.Coefficients(d.cfg.Clock.ADC, bw)
	if err != nil {
		return fmt.Errorf("set frontend: %w", err)
	}
	field, err := tuning.BandwidthField(bw)
	if err != nil {
		return fmt.Errorf("set frontend: %w", err)
	}

	if d.tuner != nil {
		if err := d.tuner.SetParams(ctx, freq, bw); err != nil {
			return fmt.Errorf("set frontend: tuner: %w", err)
		}
	}

	if err := d.setCoefficients(ctx, set); err != nil {
		return fmt.Errorf("set frontend: %w", err)
	}
	if err := d.setFrequencyControl(ctx); err != nil {
		return fmt.Errorf("set frontend: %w", err)
	}

	steps := []regbus.RegValue{
		{Reg: regmap.Bandwidth, Field: regmap.BandwidthField, Value: field},
		{Reg: regmap.TrainingMode, Value: 0},
		{Reg: regmap.EmptyChannel, Value: 0},
		{Reg: regmap.MP2IFSyncLock, Field: regmap.Bit0, Value: 0},
		{Reg: regmap.FrequencyBand, Value: tuning.FrequencyBand(freq)},
		{Reg: regmap.TriggerOFSM, Value: 0},
	}
	if err := regbus.WriteTable(ctx, d.regs, steps); err != nil {
		return fmt.Errorf("set frontend: %w", err)
	}
	return nil
}

func (d *Demod) adcx2(ctx context.Context) (bool, error) {
	v, err := regbus.ReadReg(ctx, d.regs, regmap.ADCx2)
	if err != nil {
		return false, fmt.Errorf("adc x2 flag: %w", err)
	}
	return v == 1, nil
}

func (d *Demod) setCoefficients(ctx context.Context, set tuning.CoefficientSet) error {
	x2, err := d.adcx2(ctx)
	if err != nil {
		return err
	}
	if x2 {
		set = set.Halved()
	}

	buf := set.Bytes()
	if err := d.regs.WriteRegs(ctx, regmap.Coefficients, buf[:]); err != nil {
		return fmt.Errorf("coefficients: %w", err)
	}
	return nil
}

func (d *Demod) setFrequencyControl(ctx context.Context) error {
	x2, err := d.adcx2(ctx)
	if err != nil {
		return err
	}

	buf := tuning.FrequencyControl(d.cfg.IF, d.cfg.Clock.ADC, d.cfg.RFInverted, x2)
	if err := d.regs.WriteRegs(ctx, regmap.BFSFCW, buf[:]); err != nil {
		return fmt.Errorf("frequency control: %w", err)
	}
	return nil
}

// SetI2CGate opens or closes the path from the host to the tuner.
func (d *Demod) SetI2CGate(ctx context.Context, enable bool) error {
	var v byte
	if enable {
		v = 1
	}
	if err := regbus.WriteBits(ctx, d.regs, regmap.I2CGate, regmap.Bit0, v); err != nil {
		return fmt.Errorf("i2c gate: %w", err)
	}
	return nil
}

func (d *Demod) logDebug(msg string, keysAndValues ...interface{}) {
	if d.opts.logger != nil {
		d.opts.logger.Debug(msg, keysAndValues...)
	}
}

func (d *Demod) logInfo(msg string, keysAndValues ...interface{}) {
	if d.opts.logger != nil {
		d.opts.logger.Info(msg, keysAndValues...)
	}
}
