package i2cbridge

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"

	"github.com/moffa90/go-af9035/protocol"
	"github.com/moffa90/go-af9035/regbus"
)

// Route is the path an operation takes through the bridge.
type Route int

const (
	RouteDemod Route = iota
	RouteSecondaryDemod
	RouteTuner
	RouteSecondaryTuner
)

func (r Route) String() string {
	switch r {
	case RouteDemod:
		return "demod"
	case RouteSecondaryDemod:
		return "demod2"
	case RouteTuner:
		return "tuner"
	case RouteSecondaryTuner:
		return "tuner2"
	default:
		return fmt.Sprintf("Route(%d)", int(r))
	}
}

// demodHeaderSize is the mailbox byte plus the 16-bit register address that
// start every message to a local demodulator.
const demodHeaderSize = 3

// Bridge turns I2C transfers into bridge commands. Messages for a local
// demodulator become register accesses; anything else is proxied to a tuner.
//
// A transfer holds the bridge's own lock for its whole duration so that two
// transfers never interleave. Each command still goes through the channel
// lock as usual.
type Bridge struct {
	exec   regbus.Executor
	bus    *regbus.Bus
	addrs  Addresses
	config config
	sem    *semaphore.Weighted
}

// New creates a Bridge issuing commands through exec.
func New(exec regbus.Executor, addrs Addresses, opts ...Option) *Bridge {
	if exec == nil {
		panic("executor cannot be nil")
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Bridge{
		exec:   exec,
		bus:    regbus.New(exec),
		addrs:  addrs,
		config: cfg,
		sem:    semaphore.NewWeighted(1),
	}
}

// Addresses returns the bridge's address configuration.
func (b *Bridge) Addresses() Addresses {
	return b.addrs
}

// Transfer executes msgs in order and returns the number of messages
// processed, which is len(msgs) on success.
//
// The message list is planned before any I/O, so a malformed list fails
// without side effects. A failure in the middle aborts the remaining
// operations; writes already issued are not undone.
func (b *Bridge) Transfer(ctx context.Context, msgs []Msg) (int, error) {
	ops, err := Plan(msgs)
	if err != nil {
		return 0, err
	}
	for _, op := range ops {
		if err := b.check(op); err != nil {
			return 0, err
		}
	}

	if err := b.sem.Acquire(ctx, 1); err != nil {
		return 0, fmt.Errorf("%w: %v", protocol.ErrWouldBlock, err)
	}
	defer b.sem.Release(1)

	n := 0
	for _, op := range ops {
		route := b.route(op.Addr)
		err := b.do(ctx, route, op)
		if b.config.observer != nil {
			b.config.observer.ObserveRoute(route, err)
		}
		if err != nil {
			b.logError("i2c operation failed",
				"route", route.String(),
				"addr", fmt.Sprintf("0x%02X", op.Addr),
				"op", op.Kind.String(),
				"error", err,
			)
			return n, fmt.Errorf("message %d to 0x%02X: %w", op.Index, op.Addr, err)
		}
		n += op.Consumed()
	}

	return n, nil
}

// route classifies a target address.
func (b *Bridge) route(addr byte) Route {
	switch {
	case b.addrs.Dual && addr == b.addrs.SecondaryDemod:
		return RouteSecondaryDemod
	case addr == b.addrs.PrimaryDemod:
		return RouteDemod
	case b.addrs.SecondaryTuner != 0 && addr == b.addrs.SecondaryTuner:
		return RouteSecondaryTuner
	default:
		return RouteTuner
	}
}

func (b *Bridge) check(op Op) error {
	switch b.route(op.Addr) {
	case RouteDemod, RouteSecondaryDemod:
		if len(op.Write) < demodHeaderSize {
			return fmt.Errorf("message %d: demod access needs %d header bytes, got %d: %w",
				op.Index, demodHeaderSize, len(op.Write), ErrUnsupportedMessage)
		}
	}
	return nil
}

func (b *Bridge) do(ctx context.Context, route Route, op Op) error {
	b.logDebug("i2c",
		"route", route.String(),
		"addr", fmt.Sprintf("0x%02X", op.Addr),
		"op", op.Kind.String(),
		"wlen", len(op.Write),
		"rlen", len(op.Read),
	)

	switch route {
	case RouteDemod, RouteSecondaryDemod:
		reg := regbus.Register{
			Mailbox: op.Write[0],
			Addr:    uint16(op.Write[1])<<8 | uint16(op.Write[2]),
		}.On(route == RouteSecondaryDemod)

		if op.Kind == CombinedWriteThenRead {
			return b.bus.ReadRegs(ctx, reg, op.Read)
		}
		return b.bus.WriteRegs(ctx, reg, op.Write[demodHeaderSize:])

	default:
		mailbox := byte(protocol.MailboxLink)
		addr := op.Addr
		if route == RouteSecondaryTuner {
			addr = b.addrs.PrimaryTuner
			mailbox += protocol.SecondaryOffset
		}

		if op.Kind == CombinedWriteThenRead {
			return b.exec.Execute(ctx, protocol.TunerRead(mailbox, addr, op.Write[0], op.Read))
		}
		return b.exec.Execute(ctx, protocol.TunerWrite(mailbox, addr, op.Write))
	}
}

func (b *Bridge) logDebug(msg string, keysAndValues ...interface{}) {
	if b.config.logger != nil {
		b.config.logger.Debug(msg, keysAndValues...)
	}
}

func (b *Bridge) logError(msg string, keysAndValues ...interface{}) {
	if b.config.logger != nil {
		b.config.logger.Error(msg, keysAndValues...)
	}
}
