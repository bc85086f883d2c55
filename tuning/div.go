package tuning

// Div returns a/b as a fixed-point number with fractionBits bits after the
// binary point, that is floor(a * 2^fractionBits / b).
//
// The integer part comes from an ordinary division; the fraction is
// produced one bit at a time by restoring long division of the remainder,
// so no intermediate value needs more than 33 bits. Div panics if b is 0 or
// fractionBits is above 32.
func Div(a, b uint32, fractionBits uint) uint64 {
	if b == 0 {
		panic("tuning: division by zero")
	}
	if fractionBits > 32 {
		panic("tuning: too many fraction bits")
	}

	c := uint64(a / b)
	rem := uint64(a % b)
	den := uint64(b)

	var r uint64
	for i := uint(0); i < fractionBits; i++ {
		rem <<= 1
		r <<= 1
		if rem >= den {
			rem -= den
			r |= 1
		}
	}

	return c<<fractionBits | r
}
