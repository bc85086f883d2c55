package tuning

const (
	controlUnit = 1000000

	clockFractionBits = 19
	freqFractionBits  = 23
)

// CrystalControl returns the 4 register bytes (little endian) for the
// crystal clock control word, Div(hz, 1e6, 19).
func CrystalControl(hz uint32) [4]byte {
	cw := uint32(Div(hz, controlUnit, clockFractionBits))
	return [4]byte{byte(cw), byte(cw >> 8), byte(cw >> 16), byte(cw >> 24)}
}

// ADCControl returns the 3 register bytes (little endian) for the ADC clock
// control word, Div(hz, 1e6, 19) truncated to 24 bits.
func ADCControl(hz uint32) [3]byte {
	cw := uint32(Div(hz, controlUnit, clockFractionBits))
	return [3]byte{byte(cw), byte(cw >> 8), byte(cw >> 16)}
}

// FrequencyControl returns the 3 register bytes of the frequency control
// word for an intermediate frequency sampled at adcHz.
//
// The IF is folded into (-adc/2, adc/2]. The word is negated unless exactly
// one of "the folded IF is negative" and "the RF path inverts the spectrum"
// holds. It is halved when the ADC runs at twice its clock. Only the low 23
// bits are kept.
func FrequencyControl(ifHz, adcHz uint32, rfInverted, adcx2 bool) [3]byte {
	if adcHz == 0 {
		panic("tuning: zero ADC clock")
	}

	f := int64(ifHz)
	adc := int64(adcHz)
	for f > adc/2 {
		f -= adc
	}

	negative := rfInverted
	if f >= 0 {
		negative = !negative
	} else {
		f = -f
	}

	cw := uint32(Div(uint32(f), adcHz, freqFractionBits))
	if negative {
		cw = -cw
	}
	if adcx2 {
		cw /= 2
	}

	return [3]byte{byte(cw), byte(cw >> 8), byte(cw>>16) & 0x7f}
}
