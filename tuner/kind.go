package tuner

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies a tuner chip. The value is the id reported to the
// demodulator firmware.
type Kind byte

const (
	TUA9001  Kind = 0x27 // Infineon TUA 9001
	FC0011   Kind = 0x28 // Fitipower FC0011
	MxL5007T Kind = 0xa0 // MaxLinear MxL5007T
	TDA18218 Kind = 0xa1 // NXP TDA18218HN
)

// BaseAddress is the I2C address of the tuner behind the first demodulator.
// The tuner behind demodulator n answers at BaseAddress+n.
const BaseAddress = 0xc0

// ErrUnknownKind is returned for a tuner id outside the known set.
var ErrUnknownKind = errors.New("unknown tuner")

// ErrUnsupportedKind is returned for a known tuner that cannot be attached.
var ErrUnsupportedKind = errors.New("unsupported tuner")

var kindNames = map[Kind]string{
	TUA9001:  "tua9001",
	FC0011:   "fc0011",
	MxL5007T: "mxl5007t",
	TDA18218: "tda18218",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("tuner-0x%02x", byte(k))
}

// ParseKind accepts a tuner name (case-insensitive) or its numeric id.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}

	var id uint8
	if _, err := fmt.Sscanf(name, "0x%x", &id); err == nil {
		return KindFromID(id)
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// KindFromID validates a raw tuner id.
func KindFromID(id byte) (Kind, error) {
	k := Kind(id)
	if _, ok := kindNames[k]; !ok {
		return 0, fmt.Errorf("%w: id 0x%02x", ErrUnknownKind, id)
	}
	return k, nil
}

// Supported reports whether the tuner can be attached. FC0011 is
// recognized but has no demodulator settings.
func (k Kind) Supported() bool {
	switch k {
	case TUA9001, MxL5007T, TDA18218:
		return true
	default:
		return false
	}
}

// SpectrumInverted reports whether the RF path of this tuner inverts the
// spectrum. It holds for every supported tuner.
func (k Kind) SpectrumInverted() bool {
	return k.Supported()
}

// Address returns the I2C address of the tuner behind demodulator index.
func Address(index int) byte {
	return BaseAddress + byte(index)
}
