package firmware

import (
	"context"
	"fmt"
	"time"

	"github.com/moffa90/go-af9035/fwimage"
	"github.com/moffa90/go-af9035/protocol"
	"github.com/moffa90/go-af9035/regbus"
)

// Loader downloads firmware into a cold bridge and starts it.
//
// Loader is safe for concurrent use; all I/O goes through the executor.
type Loader struct {
	exec   regbus.Executor
	config Config
}

// New creates a new Loader that issues commands through exec.
//
// Example:
//
//	ch := channel.New(transport)
//	loader := firmware.New(ch,
//	    firmware.WithProgressCallback(progressFunc),
//	    firmware.WithLogger(logger),
//	)
func New(exec regbus.Executor, opts ...Option) *Loader {
	if exec == nil {
		panic("executor cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Loader{
		exec:   exec,
		config: cfg,
	}
}

// QueryInfo returns the 4-byte query-info reply of the given mailbox.
// All zero means no firmware is running.
func (l *Loader) QueryInfo(ctx context.Context, mailbox byte) (protocol.FirmwareVersion, error) {
	var reply protocol.FirmwareVersion
	if err := l.exec.Execute(ctx, protocol.QueryInfo(mailbox, reply[:])); err != nil {
		return reply, err
	}
	return reply, nil
}

// IsWarm reports whether firmware is already running on the bridge.
func (l *Loader) IsWarm(ctx context.Context) (bool, error) {
	reply, err := l.QueryInfo(ctx, protocol.MailboxLink)
	if err != nil {
		return false, fmt.Errorf("identify state: %w", err)
	}

	l.logDebug("identify state", "reply", fmt.Sprintf("% x", reply[:]))
	return !protocol.IsZero(reply[:]), nil
}

// LoadBytes parses data as a firmware image and loads it.
func (l *Loader) LoadBytes(ctx context.Context, data []byte) error {
	img, err := fwimage.ParseBytes(data)
	if err != nil {
		return &LoadError{State: StateParseHeader, Segment: -1, Chunk: -1, Err: err}
	}
	return l.Load(ctx, img)
}

// Load performs the complete download sequence:
//  1. Send every segment in order (download, rom-copy; others are skipped)
//  2. Boot the firmware
//  3. Verify it is running with a query-info request
//
// Any failure stops the load immediately and is returned as a *LoadError.
// Nothing is retried. The context is checked between chunks.
func (l *Loader) Load(ctx context.Context, img *fwimage.Image) error {
	if img == nil {
		return fmt.Errorf("image cannot be nil")
	}

	run := loadRun{
		Loader: l,
		start:  time.Now(),
		total:  img.Size(),
		count:  len(img.Segments),
	}

	if img.Clamped() {
		l.logWarn("too many firmware segments, extra segments ignored",
			"declared", img.DeclaredCount,
			"loaded", len(img.Segments),
		)
	}
	l.logDebug("firmware image", "segments", len(img.Segments), "bytes", run.total)
	run.report(StateParseHeader, -1)

	for i, seg := range img.Segments {
		if err := run.segment(ctx, i, seg); err != nil {
			return run.fail(err)
		}
	}

	run.report(StateBoot, -1)
	var status [1]byte
	if err := l.exec.Execute(ctx, protocol.StatusOnly(protocol.CmdBoot, status[:])); err != nil {
		return run.fail(&LoadError{State: StateBoot, Segment: -1, Chunk: -1, Err: err})
	}

	run.report(StateVerify, -1)
	reply, err := l.QueryInfo(ctx, protocol.MailboxLink)
	if err != nil {
		return run.fail(&LoadError{State: StateVerify, Segment: -1, Chunk: -1, Err: err})
	}
	l.logDebug("query info", "reply", fmt.Sprintf("% x", reply[:]))
	if protocol.IsZero(reply[:]) {
		return run.fail(&LoadError{State: StateVerify, Segment: -1, Chunk: -1, Err: ErrFirmwareDidNotStart})
	}

	run.report(StateDone, -1)
	l.logInfo("firmware loaded",
		"segments", run.count,
		"bytes", run.sent,
		"version", reply.String(),
		"elapsed", time.Since(run.start).String(),
	)
	return nil
}

// loadRun is the state of one Load call.
type loadRun struct {
	*Loader
	start time.Time
	total int
	count int
	sent  int
}

func (r *loadRun) segment(ctx context.Context, i int, seg *fwimage.Segment) error {
	r.logDebug("segment", "index", i, "type", seg.Type.String(), "len", len(seg.Data))

	switch seg.Type {
	case fwimage.SegmentDownload:
		var status [1]byte
		if err := r.exec.Execute(ctx, protocol.StatusOnly(protocol.CmdFwDownloadBegin, status[:])); err != nil {
			return &LoadError{State: StateSegment, Segment: i, Chunk: -1, Err: fmt.Errorf("download begin: %w", err)}
		}
		if err := r.chunks(ctx, i, seg, func(chunk []byte) protocol.Request {
			return protocol.FirmwareChunk(chunk)
		}); err != nil {
			return err
		}
		if err := r.exec.Execute(ctx, protocol.StatusOnly(protocol.CmdFwDownloadEnd, status[:])); err != nil {
			return &LoadError{State: StateSegment, Segment: i, Chunk: -1, Err: fmt.Errorf("download end: %w", err)}
		}

	case fwimage.SegmentROMCopy:
		var ack [1]byte
		if err := r.chunks(ctx, i, seg, func(chunk []byte) protocol.Request {
			return protocol.ScatterWrite(chunk, ack[:])
		}); err != nil {
			return err
		}

	default:
		r.logDebug("segment type not implemented, skipping", "index", i, "type", seg.Type.String())
	}

	return nil
}

func (r *loadRun) chunks(ctx context.Context, i int, seg *fwimage.Segment, build func([]byte) protocol.Request) error {
	size := r.config.ChunkSize
	for j := 0; j < seg.Chunks(size); j++ {
		if err := ctx.Err(); err != nil {
			return &LoadError{State: StateSegment, Segment: i, Chunk: j, Err: err}
		}

		chunk := seg.Chunk(j, size)
		if err := r.exec.Execute(ctx, build(chunk)); err != nil {
			return &LoadError{State: StateSegment, Segment: i, Chunk: j, Err: err}
		}

		r.sent += len(chunk)
		r.report(StateSegment, i)
	}
	return nil
}

func (r *loadRun) fail(err error) error {
	r.logError("firmware load failed", "error", err, "bytes_sent", r.sent)
	r.report(StateFailed, -1)
	return err
}

// report sends progress. Segment bytes cover 0-90%, boot and verify the rest.
func (r *loadRun) report(state State, segment int) {
	if r.config.ProgressCallback == nil {
		return
	}

	var pct float64
	switch state {
	case StateParseHeader:
		pct = 0
	case StateSegment, StateFailed:
		if r.total > 0 {
			pct = float64(r.sent) / float64(r.total) * 90
		}
	case StateBoot:
		pct = 90
	case StateVerify:
		pct = 95
	case StateDone:
		pct = 100
	}

	r.config.ProgressCallback(Progress{
		State:         state,
		Segment:       segment,
		TotalSegments: r.count,
		BytesSent:     r.sent,
		TotalBytes:    r.total,
		Percentage:    pct,
		ElapsedTime:   time.Since(r.start),
	})
}

// logDebug logs a debug message if a logger is configured.
func (l *Loader) logDebug(msg string, keysAndValues ...interface{}) {
	if l.config.Logger != nil {
		l.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (l *Loader) logInfo(msg string, keysAndValues ...interface{}) {
	if l.config.Logger != nil {
		l.config.Logger.Info(msg, keysAndValues...)
	}
}

func (l *Loader) logWarn(msg string, keysAndValues ...interface{}) {
	if l.config.Logger != nil {
		l.config.Logger.Warn(msg, keysAndValues...)
	}
}

func (l *Loader) logError(msg string, keysAndValues ...interface{}) {
	if l.config.Logger != nil {
		l.config.Logger.Error(msg, keysAndValues...)
	}
}
