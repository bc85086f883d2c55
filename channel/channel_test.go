package channel

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/moffa90/go-af9035/protocol"
)

// MockTransport records sent frames and replays queued responses.
type MockTransport struct {
	sent      [][]byte
	responses [][]byte
	sendErr   error
	recvErr   error
	shortSend bool
	recvCalls int
	timeouts  []time.Duration
}

func (m *MockTransport) Send(p []byte, timeout time.Duration) (int, error) {
	m.timeouts = append(m.timeouts, timeout)
	m.sent = append(m.sent, append([]byte(nil), p...))
	if m.sendErr != nil {
		return 0, m.sendErr
	}
	if m.shortSend {
		return len(p) - 1, nil
	}
	return len(p), nil
}

func (m *MockTransport) Recv(p []byte, timeout time.Duration) (int, error) {
	m.recvCalls++
	if m.recvErr != nil {
		return 0, m.recvErr
	}
	if len(m.responses) == 0 {
		return 0, errors.New("no response queued")
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	return copy(p, resp), nil
}

func (m *MockTransport) AddResponse(status byte, data []byte) {
	m.responses = append(m.responses, protocol.BuildResponse(0, status, data))
}

type MockLogger struct {
	debugMsgs []string
	errorMsgs []string
}

func (l *MockLogger) Debug(msg string, kv ...interface{}) { l.debugMsgs = append(l.debugMsgs, msg) }
func (l *MockLogger) Error(msg string, kv ...interface{}) { l.errorMsgs = append(l.errorMsgs, msg) }

type recordingObserver struct {
	mu   sync.Mutex
	cmds []byte
	errs []error
}

func (o *recordingObserver) ObserveExchange(cmd byte, _ time.Duration, _, _ int, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cmds = append(o.cmds, cmd)
	o.errs = append(o.errs, err)
}

func TestNew(t *testing.T) {
	t.Run("nil transport panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("New(nil) should panic")
			}
		}()
		New(nil)
	})

	t.Run("default timeout", func(t *testing.T) {
		m := &MockTransport{}
		m.AddResponse(0, nil)
		ch := New(m)
		if err := ch.Execute(context.Background(), protocol.StatusOnly(protocol.CmdBoot, nil)); err != nil {
			t.Fatal(err)
		}
		if m.timeouts[0] != 2*time.Second {
			t.Errorf("timeout = %v, want 2s", m.timeouts[0])
		}
	})
}

func TestExecuteRead(t *testing.T) {
	m := &MockTransport{}
	m.AddResponse(0, []byte{0x0A, 0xD7, 0xA3})
	logger := &MockLogger{}
	ch := New(m, WithLogger(logger))

	buf := make([]byte, 3)
	if err := ch.Execute(context.Background(), protocol.RegisterRead(protocol.MailboxOFDM, 0xF1CD, buf)); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !bytes.Equal(buf, []byte{0x0A, 0xD7, 0xA3}) {
		t.Errorf("read = % X", buf)
	}
	if len(m.sent) != 1 {
		t.Fatalf("sent %d frames, want 1", len(m.sent))
	}
	if m.sent[0][3] != 0 {
		t.Errorf("first sequence = %d, want 0", m.sent[0][3])
	}
	if len(logger.debugMsgs) != 2 {
		t.Errorf("debug messages = %v, want request and response dumps", logger.debugMsgs)
	}
}

func TestSequenceIncrementsOnFailure(t *testing.T) {
	m := &MockTransport{}
	ch := New(m)
	ctx := context.Background()

	m.AddResponse(0, nil)
	_ = ch.Execute(ctx, protocol.StatusOnly(protocol.CmdBoot, nil))

	m.sendErr = errors.New("pipe stalled")
	if err := ch.Execute(ctx, protocol.StatusOnly(protocol.CmdBoot, nil)); !errors.Is(err, protocol.ErrTransport) {
		t.Fatalf("Execute() error = %v, want ErrTransport", err)
	}

	m.sendErr = nil
	m.AddResponse(0x01, nil)
	if err := ch.Execute(ctx, protocol.StatusOnly(protocol.CmdBoot, nil)); !errors.Is(err, protocol.ErrDeviceRejected) {
		t.Fatalf("Execute() error = %v, want ErrDeviceRejected", err)
	}

	m.AddResponse(0, nil)
	_ = ch.Execute(ctx, protocol.StatusOnly(protocol.CmdBoot, nil))

	for i, frame := range m.sent {
		if frame[3] != byte(i) {
			t.Errorf("frame %d sequence = %d, want %d", i, frame[3], i)
		}
	}
	if got := ch.Sequence(); got != 4 {
		t.Errorf("Sequence() = %d, want 4", got)
	}
}

func TestSequenceWraps(t *testing.T) {
	m := &MockTransport{}
	ch := New(m)

	for i := 0; i < 257; i++ {
		if err := ch.Execute(context.Background(), protocol.FirmwareChunk([]byte{0})); err != nil {
			t.Fatal(err)
		}
	}
	if m.sent[255][3] != 255 || m.sent[256][3] != 0 {
		t.Errorf("sequence around wrap = %d, %d", m.sent[255][3], m.sent[256][3])
	}
}

func TestFireAndForget(t *testing.T) {
	m := &MockTransport{}
	ch := New(m)

	if err := ch.Execute(context.Background(), protocol.FirmwareChunk(make([]byte, 57))); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if m.recvCalls != 0 {
		t.Errorf("Recv called %d times for an unacknowledged chunk", m.recvCalls)
	}
}

func TestExecuteErrors(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(m *MockTransport)
		req      protocol.Request
		wantErr  error
		wantSent int
	}{
		{
			name:     "write too large",
			req:      protocol.Request{Command: protocol.CmdGenericWrite, Write: make([]byte, 58)},
			wantErr:  protocol.ErrFrameTooLarge,
			wantSent: 0,
		},
		{
			name:     "read too large",
			req:      protocol.Request{Command: protocol.CmdGenericRead, Read: make([]byte, 59)},
			wantErr:  protocol.ErrFrameTooLarge,
			wantSent: 0,
		},
		{
			name:     "short send",
			setup:    func(m *MockTransport) { m.shortSend = true },
			req:      protocol.StatusOnly(protocol.CmdBoot, make([]byte, 1)),
			wantErr:  protocol.ErrShortTransfer,
			wantSent: 1,
		},
		{
			name: "short receive",
			setup: func(m *MockTransport) {
				m.AddResponse(0, []byte{1, 2})
			},
			req:      protocol.QueryInfo(0, make([]byte, 4)),
			wantErr:  protocol.ErrShortTransfer,
			wantSent: 1,
		},
		{
			name:     "receive error",
			setup:    func(m *MockTransport) { m.recvErr = errors.New("timeout") },
			req:      protocol.StatusOnly(protocol.CmdBoot, make([]byte, 1)),
			wantErr:  protocol.ErrTransport,
			wantSent: 1,
		},
		{
			name: "device rejected",
			setup: func(m *MockTransport) {
				m.AddResponse(0x02, []byte{0})
			},
			req:      protocol.StatusOnly(protocol.CmdFwDownloadBegin, make([]byte, 1)),
			wantErr:  protocol.ErrDeviceRejected,
			wantSent: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &MockTransport{}
			if tt.setup != nil {
				tt.setup(m)
			}
			obs := &recordingObserver{}
			ch := New(m, WithObserver(obs))

			err := ch.Execute(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Execute() error = %v, want %v", err, tt.wantErr)
			}
			if len(m.sent) != tt.wantSent {
				t.Errorf("sent %d frames, want %d", len(m.sent), tt.wantSent)
			}
			if tt.wantSent > 0 && len(obs.errs) != 1 {
				t.Errorf("observer saw %d exchanges, want 1", len(obs.errs))
			}
		})
	}
}

func TestDeviceErrorCarriesStatus(t *testing.T) {
	m := &MockTransport{}
	m.AddResponse(0x07, nil)
	ch := New(m)

	err := ch.Execute(context.Background(), protocol.RegisterWrite(protocol.MailboxLink, 0x417F, []byte{0x3A}))

	var de *protocol.DeviceError
	if !errors.As(err, &de) {
		t.Fatalf("Execute() error = %v, want *DeviceError", err)
	}
	if de.Status != 0x07 || de.Command != protocol.CmdRegDemodWrite {
		t.Errorf("DeviceError = %+v", de)
	}
}

func TestCorruptedResponseChecksumAccepted(t *testing.T) {
	m := &MockTransport{}
	resp := protocol.BuildResponse(0, 0, []byte{0x12, 0x34})
	resp[len(resp)-1] ^= 0x5A
	resp[len(resp)-2] ^= 0xA5
	m.responses = append(m.responses, resp)
	ch := New(m)

	buf := make([]byte, 2)
	if err := ch.Execute(context.Background(), protocol.RegisterRead(protocol.MailboxLink, 0x83E9, buf)); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !bytes.Equal(buf, []byte{0x12, 0x34}) {
		t.Errorf("read = % X", buf)
	}
}

func TestCancelledContextWouldBlock(t *testing.T) {
	m := &MockTransport{}
	ch := New(m)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ch.Execute(ctx, protocol.StatusOnly(protocol.CmdBoot, make([]byte, 1)))
	if !errors.Is(err, protocol.ErrWouldBlock) {
		t.Fatalf("Execute() error = %v, want ErrWouldBlock", err)
	}
	if len(m.sent) != 0 {
		t.Error("no frame should be sent when the lock is not acquired")
	}
	if ch.Sequence() != 0 {
		t.Error("sequence should not advance without a send")
	}
}

// blockingTransport holds Send until release is closed.
type blockingTransport struct {
	entered chan struct{}
	release chan struct{}
}

func (b *blockingTransport) Send(p []byte, _ time.Duration) (int, error) {
	close(b.entered)
	<-b.release
	return len(p), nil
}

func (b *blockingTransport) Recv(p []byte, _ time.Duration) (int, error) {
	return 0, errors.New("unused")
}

func TestWaitingCallerGivesUp(t *testing.T) {
	bt := &blockingTransport{entered: make(chan struct{}), release: make(chan struct{})}
	ch := New(bt)

	done := make(chan error, 1)
	go func() {
		done <- ch.Execute(context.Background(), protocol.FirmwareChunk([]byte{1}))
	}()
	<-bt.entered

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := ch.Execute(ctx, protocol.FirmwareChunk([]byte{2})); !errors.Is(err, protocol.ErrWouldBlock) {
		t.Errorf("Execute() error = %v, want ErrWouldBlock", err)
	}

	close(bt.release)
	if err := <-done; err != nil {
		t.Errorf("first Execute() error = %v", err)
	}
}
