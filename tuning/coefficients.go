package tuning

// CoefficientsSize is the length of a serialized coefficient set.
const CoefficientsSize = 36

// CoefficientSet is one row of the CFOE coefficient table.
type CoefficientSet struct {
	ADCClock  uint32
	Bandwidth Bandwidth

	// Coeff1 holds the 26-bit terms for 2048, 4096, 8191, 8192 and 8193.
	Coeff1 [5]uint32

	// Coeff2 holds the 25-bit terms for the 2k, 4k and 8k modes.
	Coeff2 [3]uint32

	// BFSRatio is the bfs_fcw to fft_index ratio
	BFSRatio uint16

	// FFTRatio is the fft_index to bfs_fcw ratio
	FFTRatio uint16

	disabled bool
}

// Coefficients returns the set for an ADC clock and bandwidth. Unknown
// clocks and bandwidths, including the disabled 5 MHz sets, fail with
// ErrUnsupportedProfile.
func Coefficients(adcHz uint32, bw Bandwidth) (CoefficientSet, error) {
	known := false
	for _, set := range coefficientTable {
		if set.ADCClock != adcHz {
			continue
		}
		known = true
		if set.Bandwidth == bw && !set.disabled {
			return set, nil
		}
	}

	if !known {
		return CoefficientSet{}, &ProfileError{What: "adc clock", Value: adcHz}
	}
	return CoefficientSet{}, &ProfileError{What: "bandwidth", Value: uint32(bw), ADCClock: adcHz}
}

// Halved returns the set used when the ADC runs at twice its clock: every
// coefficient is halved; the ratios are kept.
func (s CoefficientSet) Halved() CoefficientSet {
	for i := range s.Coeff1 {
		s.Coeff1[i] /= 2
	}
	for i := range s.Coeff2 {
		s.Coeff2[i] /= 2
	}
	return s
}

// Bytes serializes the set in register order: the five Coeff1 terms and
// then Coeff2 for 8k, 2k and 4k, each big endian with the unused top bits
// masked, followed by the two ratios little endian.
func (s CoefficientSet) Bytes() [CoefficientsSize]byte {
	var buf [CoefficientsSize]byte
	i := 0

	put := func(v, topMask uint32) {
		buf[i] = byte(v>>24) & byte(topMask)
		buf[i+1] = byte(v >> 16)
		buf[i+2] = byte(v >> 8)
		buf[i+3] = byte(v)
		i += 4
	}

	for _, v := range s.Coeff1 {
		put(v, 0x03)
	}
	put(s.Coeff2[2], 0x01)
	put(s.Coeff2[0], 0x01)
	put(s.Coeff2[1], 0x01)

	buf[i] = byte(s.BFSRatio)
	buf[i+1] = byte(s.BFSRatio >> 8)
	buf[i+2] = byte(s.FFTRatio)
	buf[i+3] = byte(s.FFTRatio >> 8)

	return buf
}
