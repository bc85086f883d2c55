package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/moffa90/go-af9035/demod"
	"github.com/moffa90/go-af9035/protocol"
	"github.com/moffa90/go-af9035/regbus"
	"github.com/moffa90/go-af9035/tuner"
	"github.com/moffa90/go-af9035/tuning"
)

// Config is the device configuration normally decoded from the board
// EEPROM, kept here as a YAML file.
type Config struct {
	Transport  TransportConfig  `yaml:"transport"`
	DualMode   bool             `yaml:"dual_mode"`
	USBSpeed   string           `yaml:"usb_speed"`
	Clock      *ClockConfig     `yaml:"clock,omitempty"`
	Adapters   []AdapterConfig  `yaml:"adapters"`
	InitTables InitTablesConfig `yaml:"init_tables"`
	Logging    LoggingConfig    `yaml:"logging"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// TransportConfig selects the USB device node.
type TransportConfig struct {
	Device    string        `yaml:"device"`
	Interface uint32        `yaml:"interface"`
	Timeout   time.Duration `yaml:"timeout"`
}

// ClockConfig overrides the clock pair selected by the strap pins.
type ClockConfig struct {
	Crystal uint32 `yaml:"crystal"`
	ADC     uint32 `yaml:"adc"`
}

// AdapterConfig describes one demodulator and the tuner behind it.
type AdapterConfig struct {
	// DemodAddress is 0 for the core inside the bridge.
	DemodAddress uint8  `yaml:"demod_address"`
	Tuner        string `yaml:"tuner"`
	TunerAddress uint8  `yaml:"tuner_address"`
	IF           uint32 `yaml:"if"`

	// SpectrumInverted defaults to the tuner's RF path inversion.
	SpectrumInverted *bool  `yaml:"spectrum_inverted,omitempty"`
	TSMode           string `yaml:"ts_mode"`
}

// RegisterWrite is one entry of an init table.
type RegisterWrite struct {
	Mailbox string `yaml:"mailbox"`
	Addr    uint16 `yaml:"addr"`
	Value   uint8  `yaml:"value"`
}

// InitTablesConfig holds the demodulator init tables written after the
// DCA settings: the OFSM table, then the table for the adapter's tuner.
type InitTablesConfig struct {
	OFSM  []RegisterWrite            `yaml:"ofsm"`
	Tuner map[string][]RegisterWrite `yaml:"tuner"`
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig configures the Prometheus endpoint. An empty Listen
// disables it.
type MetricsConfig struct {
	Listen string `yaml:"listen"`
}

// USB speeds.
const (
	SpeedHigh = "high"
	SpeedFull = "full"
)

// MaxAdapters is the number of demodulators a bridge can serve.
const MaxAdapters = 2

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Default returns the configuration of a single-tuner TUA9001 stick.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Transport.Timeout == 0 {
		c.Transport.Timeout = 2 * time.Second
	}
	if c.USBSpeed == "" {
		c.USBSpeed = SpeedHigh
	}
	if len(c.Adapters) == 0 {
		c.Adapters = []AdapterConfig{{Tuner: tuner.TUA9001.String()}}
	}
	if c.DualMode && len(c.Adapters) == 1 {
		c.Adapters = append(c.Adapters, AdapterConfig{Tuner: c.Adapters[0].Tuner})
	}

	for i := range c.Adapters {
		a := &c.Adapters[i]
		if a.TunerAddress == 0 {
			a.TunerAddress = tuner.Address(i)
		}
		if a.IF == 0 {
			a.IF = 4570000
		}
		if a.TSMode == "" {
			// the first demodulator feeds USB directly, the second
			// reaches the bridge over a serial TS link
			if i == 0 {
				a.TSMode = demod.TSModeUSB.String()
			} else {
				a.TSMode = demod.TSModeSerial.String()
			}
		}
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

// Validate checks the configuration for values the device cannot use.
func (c *Config) Validate() error {
	if c.USBSpeed != SpeedHigh && c.USBSpeed != SpeedFull {
		return fmt.Errorf("%w: usb_speed %q", ErrInvalid, c.USBSpeed)
	}
	if len(c.Adapters) > MaxAdapters {
		return fmt.Errorf("%w: %d adapters, at most %d", ErrInvalid, len(c.Adapters), MaxAdapters)
	}
	if c.DualMode && len(c.Adapters) != MaxAdapters {
		return fmt.Errorf("%w: dual_mode needs %d adapters", ErrInvalid, MaxAdapters)
	}
	if !c.DualMode && len(c.Adapters) != 1 {
		return fmt.Errorf("%w: %d adapters without dual_mode", ErrInvalid, len(c.Adapters))
	}
	if c.DualMode && c.Adapters[1].DemodAddress == 0 {
		return fmt.Errorf("%w: adapters[1].demod_address is required in dual mode", ErrInvalid)
	}

	if c.Clock != nil {
		if _, err := tuning.Coefficients(c.Clock.ADC, tuning.Bandwidth8MHz); err != nil {
			return fmt.Errorf("%w: clock: %v", ErrInvalid, err)
		}
		if c.Clock.Crystal == 0 {
			return fmt.Errorf("%w: clock.crystal is zero", ErrInvalid)
		}
	}

	for i, a := range c.Adapters {
		kind, err := tuner.ParseKind(a.Tuner)
		if err != nil {
			return fmt.Errorf("%w: adapters[%d]: %v", ErrInvalid, i, err)
		}
		if !kind.Supported() {
			return fmt.Errorf("%w: adapters[%d]: tuner %s cannot be attached", ErrInvalid, i, kind)
		}
		if _, err := parseTSMode(a.TSMode); err != nil {
			return fmt.Errorf("%w: adapters[%d]: %v", ErrInvalid, i, err)
		}
	}

	if err := validateTable("ofsm", c.InitTables.OFSM); err != nil {
		return err
	}
	for name, table := range c.InitTables.Tuner {
		if _, err := tuner.ParseKind(name); err != nil {
			return fmt.Errorf("%w: init_tables.tuner: %v", ErrInvalid, err)
		}
		if err := validateTable("tuner."+name, table); err != nil {
			return err
		}
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalid, c.Logging.Format)
	}
	return nil
}

func validateTable(name string, table []RegisterWrite) error {
	for i, w := range table {
		if _, err := parseMailbox(w.Mailbox); err != nil {
			return fmt.Errorf("%w: init_tables.%s[%d]: %v", ErrInvalid, name, i, err)
		}
	}
	return nil
}

func parseMailbox(s string) (byte, error) {
	switch strings.ToLower(s) {
	case "", "ofdm":
		return protocol.MailboxOFDM, nil
	case "link":
		return protocol.MailboxLink, nil
	default:
		return 0, fmt.Errorf("unknown mailbox %q", s)
	}
}

func parseTSMode(s string) (demod.TSMode, error) {
	for _, m := range []demod.TSMode{demod.TSModeParallel, demod.TSModeSerial, demod.TSModeUSB} {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown ts_mode %q", s)
}

// TunerKind returns the adapter's tuner.
func (a AdapterConfig) TunerKind() tuner.Kind {
	k, _ := tuner.ParseKind(a.Tuner)
	return k
}

// Demod builds the demodulator configuration of adapter index running at
// clock. The configuration must have been validated.
func (c *Config) Demod(index int, clock tuning.ClockProfile) demod.Config {
	a := c.Adapters[index]
	kind := a.TunerKind()
	mode, _ := parseTSMode(a.TSMode)

	inverted := kind.SpectrumInverted()
	if a.SpectrumInverted != nil {
		inverted = *a.SpectrumInverted
	}

	var tables [][]regbus.RegValue
	if len(c.InitTables.OFSM) > 0 {
		tables = append(tables, regValues(c.InitTables.OFSM))
	}
	for name, table := range c.InitTables.Tuner {
		if k, err := tuner.ParseKind(name); err == nil && k == kind {
			tables = append(tables, regValues(table))
		}
	}

	return demod.Config{
		Clock:      clock,
		IF:         a.IF,
		RFInverted: inverted,
		TSMode:     mode,
		TunerID:    byte(kind),
		InitTables: tables,
	}
}

func regValues(table []RegisterWrite) []regbus.RegValue {
	out := make([]regbus.RegValue, len(table))
	for i, w := range table {
		mbox, _ := parseMailbox(w.Mailbox)
		out[i] = regbus.RegValue{Reg: regbus.Register{Mailbox: mbox, Addr: w.Addr}, Value: w.Value}
	}
	return out
}

// ClockOverride returns the configured clock pair, if any.
func (c *Config) ClockOverride() (tuning.ClockProfile, bool) {
	if c.Clock == nil {
		return tuning.ClockProfile{}, false
	}
	return tuning.ClockProfile{Crystal: c.Clock.Crystal, ADC: c.Clock.ADC}, true
}

// HighSpeed reports whether the device is attached at USB 2.0 high speed.
func (c *Config) HighSpeed() bool {
	return c.USBSpeed == SpeedHigh
}
