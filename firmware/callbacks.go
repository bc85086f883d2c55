package firmware

import (
	"fmt"
	"time"
)

// State is a step of the firmware loader.
type State int

const (
	StateParseHeader State = iota
	StateSegment
	StateBoot
	StateVerify
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateParseHeader:
		return "parse-header"
	case StateSegment:
		return "segment"
	case StateBoot:
		return "boot"
	case StateVerify:
		return "verify"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Progress contains information about the firmware download progress.
// Passed to ProgressCallback during Load.
type Progress struct {
	// State is the loader step being reported
	State State

	// Segment is the current segment (0-based), or -1 outside the segment loop
	Segment int

	// TotalSegments is the number of segments being loaded
	TotalSegments int

	// BytesSent is the number of segment bytes sent so far
	BytesSent int

	// TotalBytes is the number of segment bytes in the image
	TotalBytes int

	// Percentage is the completion percentage (0.0 to 100.0)
	Percentage float64

	// ElapsedTime is the time elapsed since loading started
	ElapsedTime time.Duration
}

// ProgressCallback is called during loading to report progress.
// Implementations should return quickly to avoid stalling the download.
//
// Example:
//
//	loader := firmware.New(ch,
//	    firmware.WithProgressCallback(func(p firmware.Progress) {
//	        fmt.Printf("[%s] %.1f%% - %d/%d bytes\n",
//	            p.State, p.Percentage, p.BytesSent, p.TotalBytes)
//	    }),
//	)
type ProgressCallback func(Progress)

// Logger is an optional logging interface that can be provided to the loader.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}
