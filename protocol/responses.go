package protocol

import "fmt"

// ResponseSize returns the length of a response frame carrying readLen payload bytes.
func ResponseSize(readLen int) int {
	return ResponseHeaderSize + readLen + ChecksumSize
}

// ParseResponse extracts the status byte and payload from a response frame.
//
// Response frame structure:
//
//	[LEN][SEQ][STATUS][DATA(readLen)][CSUM_H][CSUM_L]
//
// The frame must be exactly ResponseSize(readLen) bytes. The trailing
// checksum is not verified; the bridge's replies are taken as received.
func ParseResponse(frame []byte, readLen int) (status byte, data []byte, err error) {
	if want := ResponseSize(readLen); len(frame) != want {
		return 0, nil, &ShortTransferError{Op: "recv", Want: want, Got: len(frame)}
	}

	status = frame[2]
	data = frame[ResponseHeaderSize : ResponseHeaderSize+readLen]
	return status, data, nil
}

// IsZero reports whether a query-info reply is all zero, which means the
// firmware is not running.
func IsZero(reply []byte) bool {
	for _, b := range reply {
		if b != 0 {
			return false
		}
	}
	return true
}

func formatVersion(v [4]byte) string {
	return fmt.Sprintf("%d.%d.%d.%d", v[0], v[1], v[2], v[3])
}
