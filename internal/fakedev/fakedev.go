// Package fakedev simulates an AF9035 bridge at the frame level. It
// implements channel.Transport so the whole stack can run without hardware.
package fakedev

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/moffa90/go-af9035/protocol"
	"github.com/moffa90/go-af9035/regbus"
	"github.com/moffa90/go-af9035/regmap"
)

// ErrNoRequest is returned by Recv when no acknowledged request is pending.
var ErrNoRequest = errors.New("fakedev: no request pending")

type tunerKey struct {
	addr byte
	reg  byte
}

// TunerWrite is one proxied tuner write seen by the device.
type TunerWrite struct {
	Mailbox byte
	Addr    byte
	Data    []byte
}

// Device is a simulated bridge.
type Device struct {
	mu sync.Mutex

	regs   map[regbus.Register]byte
	tuners map[tunerKey]byte

	requests    []protocol.Request
	tunerWrites []TunerWrite
	pending     *pending

	warm       bool
	version    protocol.FirmwareVersion
	downloaded []byte
	romCopied  []byte

	reject       map[byte]byte
	stuckSuspend bool
	fullSpeed    bool
}

type pending struct {
	seq byte
	req protocol.Request
}

// Option configures a Device.
type Option func(*Device)

// WithWarm starts the device with firmware already running.
func WithWarm() Option {
	return func(d *Device) { d.warm = true }
}

// WithFirmwareVersion sets the version reported once the firmware runs.
func WithFirmwareVersion(v protocol.FirmwareVersion) Option {
	return func(d *Device) { d.version = v }
}

// WithClockStrap sets the power-on clock strap value.
func WithClockStrap(strap byte) Option {
	return func(d *Device) { d.regs[regmap.ClockStrap] = strap & 0x0f }
}

// WithReject makes every cmd fail with status.
func WithReject(cmd, status byte) Option {
	return func(d *Device) { d.reject[cmd] = status }
}

// WithStuckSuspend keeps the suspend flag set so power-down never completes.
func WithStuckSuspend() Option {
	return func(d *Device) { d.stuckSuspend = true }
}

// WithFullSpeed reports a USB 1.1 full speed attachment.
func WithFullSpeed() Option {
	return func(d *Device) { d.fullSpeed = true }
}

// New creates a cold device with a 20.48 MHz clock strap.
func New(opts ...Option) *Device {
	d := &Device{
		regs:    make(map[regbus.Register]byte),
		tuners:  make(map[tunerKey]byte),
		reject:  make(map[byte]byte),
		version: protocol.FirmwareVersion{11, 10, 1, 0},
	}
	d.regs[regmap.ClockStrap] = 2

	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Send accepts one request frame.
func (d *Device) Send(p []byte, timeout time.Duration) (int, error) {
	seq, req, err := protocol.ParseRequest(p)
	if err != nil {
		return 0, fmt.Errorf("fakedev: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.requests = append(d.requests, req)
	if req.NoAck() {
		d.downloaded = append(d.downloaded, req.Write...)
		return len(p), nil
	}

	d.pending = &pending{seq: seq, req: req}
	return len(p), nil
}

// Recv returns the response to the pending request. The read length is
// taken from len(p), as the bridge answers whatever the host asks for.
func (d *Device) Recv(p []byte, timeout time.Duration) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending == nil {
		return 0, ErrNoRequest
	}
	pd := d.pending
	d.pending = nil

	readLen := len(p) - protocol.ResponseHeaderSize - protocol.ChecksumSize
	if readLen < 0 {
		return 0, fmt.Errorf("fakedev: receive buffer of %d bytes", len(p))
	}

	var frame []byte
	if status, ok := d.reject[pd.req.Command]; ok {
		frame = protocol.BuildResponse(pd.seq, status, make([]byte, readLen))
	} else {
		frame = protocol.BuildResponse(pd.seq, protocol.StatusSuccess, d.handle(pd.req, readLen))
	}
	return copy(p, frame), nil
}

// HighSpeed reports the simulated USB speed.
func (d *Device) HighSpeed() (bool, error) {
	return !d.fullSpeed, nil
}

// handle runs with d.mu held.
func (d *Device) handle(req protocol.Request, readLen int) []byte {
	data := make([]byte, readLen)
	w := req.Write

	switch req.Command {
	case protocol.CmdRegDemodRead:
		addr := uint16(w[4])<<8 | uint16(w[5])
		for i := range data {
			data[i] = d.regs[regbus.Register{Mailbox: req.Mailbox, Addr: addr + uint16(i)}]
		}

	case protocol.CmdRegDemodWrite:
		addr := uint16(w[4])<<8 | uint16(w[5])
		for i, v := range w[protocol.RegisterHeaderSize:] {
			d.regs[regbus.Register{Mailbox: req.Mailbox, Addr: addr + uint16(i)}] = v
		}
		d.afterWrite(regbus.Register{Mailbox: req.Mailbox, Addr: addr})

	case protocol.CmdRegTunerRead:
		for i := range data {
			data[i] = d.tuners[tunerKey{w[1], w[4] + byte(i)}]
		}

	case protocol.CmdRegTunerWrite:
		for i, v := range w[protocol.TunerHeaderSize+1:] {
			d.tuners[tunerKey{w[1], w[4] + byte(i)}] = v
		}
		d.tunerWrites = append(d.tunerWrites, TunerWrite{
			Mailbox: req.Mailbox,
			Addr:    w[1],
			Data:    append([]byte(nil), w[protocol.TunerHeaderSize:]...),
		})

	case protocol.CmdQueryInfo:
		if d.warm {
			copy(data, d.version[:])
		}

	case protocol.CmdScatterWrite:
		d.romCopied = append(d.romCopied, w...)

	case protocol.CmdBoot:
		d.warm = true
		for i, b := range d.version {
			d.regs[regbus.Register{Mailbox: regmap.LinkFirmwareVersion.Mailbox, Addr: regmap.LinkFirmwareVersion.Addr + uint16(i)}] = b
			d.regs[regbus.Register{Mailbox: regmap.OFDMFirmwareVersion.Mailbox, Addr: regmap.OFDMFirmwareVersion.Addr + uint16(i)}] = b
		}
	}
	return data
}

// afterWrite models the firmware reacting to a register write.
func (d *Device) afterWrite(r regbus.Register) {
	secondary := r.Mailbox&protocol.SecondaryOffset != 0
	trigger := regmap.TriggerOFSM.On(secondary)
	suspend := regmap.SuspendFlag.On(secondary)

	if r == trigger && d.regs[suspend] == 1 && !d.stuckSuspend {
		d.regs[suspend] = 0
	}
}

// Reg returns a register value.
func (d *Device) Reg(r regbus.Register) byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.regs[r]
}

// SetReg sets a register value.
func (d *Device) SetReg(r regbus.Register, v byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.regs[r] = v
}

// TunerReg returns a tuner register byte.
func (d *Device) TunerReg(addr, reg byte) byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tuners[tunerKey{addr, reg}]
}

// TunerWrites returns the proxied tuner writes seen so far.
func (d *Device) TunerWrites() []TunerWrite {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]TunerWrite(nil), d.tunerWrites...)
}

// Requests returns every request seen so far.
func (d *Device) Requests() []protocol.Request {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]protocol.Request(nil), d.requests...)
}

// Commands returns the command codes seen so far.
func (d *Device) Commands() []byte {
	d.mu.Lock()
	defer d.mu.Unlock()

	cmds := make([]byte, len(d.requests))
	for i, r := range d.requests {
		cmds[i] = r.Command
	}
	return cmds
}

// Warm reports whether the firmware is running.
func (d *Device) Warm() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.warm
}

// Downloaded returns the bytes received by unacknowledged firmware frames.
func (d *Device) Downloaded() []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]byte(nil), d.downloaded...)
}

// ROMCopied returns the bytes received by scatter writes.
func (d *Device) ROMCopied() []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]byte(nil), d.romCopied...)
}
