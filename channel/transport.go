package channel

import "time"

// Transport is one bulk pipe to the bridge. Send writes a whole request
// frame to the outbound endpoint; Recv reads one response frame from the
// inbound endpoint. Both block for at most timeout.
//
// A Transport is not safe for concurrent use; Channel serializes access.
type Transport interface {
	Send(p []byte, timeout time.Duration) (int, error)
	Recv(p []byte, timeout time.Duration) (int, error)
}

// Observer is notified after every exchange. Implementations must be safe
// for concurrent use and return quickly.
type Observer interface {
	ObserveExchange(cmd byte, elapsed time.Duration, sent, received int, err error)
}

// Logger is an optional logging interface. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}
