package protocol

// Checksum computes the frame checksum over data, which must start at the
// mailbox byte and end at the last payload byte.
//
// Bytes are accumulated alternately into the high and low byte of a 16-bit
// sum, starting with the high byte, and the sum is complemented.
func Checksum(data []byte) uint16 {
	var sum uint16
	for i, b := range data {
		if i%2 == 0 {
			sum += uint16(b) << 8
		} else {
			sum += uint16(b)
		}
	}
	return ^sum
}
