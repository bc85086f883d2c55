package firmware

import (
	"errors"
	"fmt"
)

// ErrFirmwareDidNotStart is returned when the query-info reply after boot
// is all zero.
var ErrFirmwareDidNotStart = errors.New("firmware did not start")

// LoadError reports where a firmware load failed.
type LoadError struct {
	// State is the loader step that failed
	State State

	// Segment is the failing segment index, or -1 outside the segment loop
	Segment int

	// Chunk is the failing chunk within the segment, or -1
	Chunk int

	Err error
}

func (e *LoadError) Error() string {
	switch {
	case e.Segment >= 0 && e.Chunk >= 0:
		return fmt.Sprintf("firmware load failed at %s %d chunk %d: %v", e.State, e.Segment, e.Chunk, e.Err)
	case e.Segment >= 0:
		return fmt.Sprintf("firmware load failed at %s %d: %v", e.State, e.Segment, e.Err)
	default:
		return fmt.Sprintf("firmware load failed at %s: %v", e.State, e.Err)
	}
}

func (e *LoadError) Unwrap() error { return e.Err }
