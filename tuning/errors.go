package tuning

import (
	"errors"
	"fmt"
)

// ErrUnsupportedProfile is returned for a clock, bandwidth or strap value
// with no table entry. There is no fallback.
var ErrUnsupportedProfile = errors.New("unsupported profile")

// ProfileError names the value that has no table entry.
type ProfileError struct {
	// What is "adc clock", "bandwidth" or "clock strap"
	What  string
	Value uint32

	// ADCClock is set for bandwidth lookups
	ADCClock uint32
}

func (e *ProfileError) Error() string {
	if e.What == "bandwidth" {
		return fmt.Sprintf("unsupported profile: bandwidth %d Hz at adc clock %d Hz", e.Value, e.ADCClock)
	}
	return fmt.Sprintf("unsupported profile: %s %d", e.What, e.Value)
}

// Is reports whether target is ErrUnsupportedProfile.
func (e *ProfileError) Is(target error) bool {
	return target == ErrUnsupportedProfile
}
