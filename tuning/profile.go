package tuning

import "fmt"

// ClockProfile is a crystal/ADC clock pair.
type ClockProfile struct {
	Crystal uint32
	ADC     uint32
}

func (p ClockProfile) String() string {
	return fmt.Sprintf("xtal %d Hz / adc %d Hz", p.Crystal, p.ADC)
}

// clockTable is indexed by the bridge's power-on clock strap.
var clockTable = [...]ClockProfile{
	{20480000, 20480000}, // FPGA
	{16384000, 20480000}, // 16.38 MHz
	{20480000, 20480000}, // 20.48 MHz
	{36000000, 20250000}, // 36.00 MHz
	{30000000, 20156250}, // 30.00 MHz
	{26000000, 20583333}, // 26.00 MHz
	{28000000, 20416667}, // 28.00 MHz
	{32000000, 20500000}, // 32.00 MHz
	{34000000, 20187500}, // 34.00 MHz
	{24000000, 20500000}, // 24.00 MHz
	{22000000, 20625000}, // 22.00 MHz
	{12000000, 20250000}, // 12.00 MHz
}

// ClockFromStrap returns the clock pair selected by a strap value.
func ClockFromStrap(strap byte) (ClockProfile, error) {
	if int(strap) >= len(clockTable) {
		return ClockProfile{}, &ProfileError{What: "clock strap", Value: uint32(strap)}
	}
	return clockTable[strap], nil
}

// Bandwidth is a channel bandwidth in Hz.
type Bandwidth uint32

const (
	Bandwidth5MHz Bandwidth = 5000000
	Bandwidth6MHz Bandwidth = 6000000
	Bandwidth7MHz Bandwidth = 7000000
	Bandwidth8MHz Bandwidth = 8000000
)

func (b Bandwidth) String() string {
	return fmt.Sprintf("%d MHz", uint32(b)/1000000)
}

// BandwidthField returns the demodulator bandwidth field value: 6 MHz is
// 0, 7 MHz is 1 and 8 MHz is 2. The 5 MHz encoding (3) is not enabled.
func BandwidthField(bw Bandwidth) (byte, error) {
	switch bw {
	case Bandwidth6MHz:
		return 0, nil
	case Bandwidth7MHz:
		return 1, nil
	case Bandwidth8MHz:
		return 2, nil
	default:
		return 0, &ProfileError{What: "bandwidth", Value: uint32(bw)}
	}
}

// Frequency band codes.
const (
	BandVHF     byte = 0x00
	BandUHF     byte = 0x01
	BandL       byte = 0x02
	BandUnknown byte = 0xff
)

// FrequencyBand returns the band code of an RF frequency: VHF for
// 174-230 MHz, UHF for 350-900 MHz, L-band for 1670-1680 MHz.
func FrequencyBand(hz uint32) byte {
	switch {
	case hz >= 174000000 && hz <= 230000000:
		return BandVHF
	case hz >= 350000000 && hz <= 900000000:
		return BandUHF
	case hz >= 1670000000 && hz <= 1680000000:
		return BandL
	default:
		return BandUnknown
	}
}
