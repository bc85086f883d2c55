package channel

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/moffa90/go-af9035/protocol"
)

// Channel turns a Transport into a synchronous request/response channel.
//
// The channel owns the sequence counter and one exclusive lock. The lock is
// held for a full exchange, or for the send alone when the command is not
// acknowledged.
//
// Channel is safe for concurrent use.
type Channel struct {
	transport Transport
	config    Config

	sem *semaphore.Weighted
	seq byte // guarded by sem

	rbuf [protocol.MaxFrameSize]byte // guarded by sem
}

// New creates a Channel over the given transport.
//
// Example:
//
//	t, _ := usbfs.Open("/dev/bus/usb/001/004", 0)
//	ch := channel.New(t, channel.WithTimeout(2*time.Second))
func New(t Transport, opts ...Option) *Channel {
	if t == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Channel{
		transport: t,
		config:    cfg,
		sem:       semaphore.NewWeighted(1),
	}
}

// Execute performs one exchange. On success req.Read holds the response
// payload.
//
// Oversized requests fail with ErrFrameTooLarge before the lock is taken.
// If ctx is already done when the lock is requested, or is done while
// waiting for it, Execute returns ErrWouldBlock. An exchange that has
// started is not interrupted by ctx.
func (c *Channel) Execute(ctx context.Context, req protocol.Request) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := c.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("%w: %v", protocol.ErrWouldBlock, err)
	}
	defer c.sem.Release(1)

	start := time.Now()
	sent, received, err := c.exchange(req)
	if c.config.Observer != nil {
		c.config.Observer.ObserveExchange(req.Command, time.Since(start), sent, received, err)
	}
	if err != nil {
		c.logError("exchange failed",
			"command", protocol.CommandName(req.Command),
			"mailbox", fmt.Sprintf("0x%02X", req.Mailbox),
			"error", err,
		)
	}
	return err
}

// exchange runs with the lock held.
func (c *Channel) exchange(req protocol.Request) (sent, received int, err error) {
	seq := c.seq
	frame, err := protocol.BuildRequest(seq, req)
	if err != nil {
		return 0, 0, err
	}
	c.seq++

	c.logDebug(">>>", "frame", fmt.Sprintf("% x", frame))

	n, err := c.transport.Send(frame, c.config.Timeout)
	if err != nil {
		return n, 0, &protocol.TransportError{Op: "send", Err: err}
	}
	if n != len(frame) {
		return n, 0, &protocol.ShortTransferError{Op: "send", Want: len(frame), Got: n}
	}

	if req.NoAck() {
		return n, 0, nil
	}

	want := protocol.ResponseSize(len(req.Read))
	m, err := c.transport.Recv(c.rbuf[:want], c.config.Timeout)
	if err != nil {
		return n, m, &protocol.TransportError{Op: "recv", Err: err}
	}

	c.logDebug("<<<", "frame", fmt.Sprintf("% x", c.rbuf[:m]))

	status, data, err := protocol.ParseResponse(c.rbuf[:m], len(req.Read))
	if err != nil {
		return n, m, err
	}
	if status != protocol.StatusSuccess {
		return n, m, &protocol.DeviceError{Command: req.Command, Status: status}
	}

	copy(req.Read, data)
	return n, m, nil
}

// Sequence returns the sequence number the next request will carry.
func (c *Channel) Sequence() byte {
	_ = c.sem.Acquire(context.Background(), 1)
	defer c.sem.Release(1)
	return c.seq
}

func (c *Channel) logDebug(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Debug(msg, keysAndValues...)
	}
}

func (c *Channel) logError(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Error(msg, keysAndValues...)
	}
}
