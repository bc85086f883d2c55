// Package protocol implements the AF9035 bridge control protocol.
//
// This package builds request frames and parses response frames for the
// single bulk control pipe of an Afatech AF9035 USB bridge.
//
// # Protocol Overview
//
// Every exchange is one request frame followed, for all commands but the
// firmware download chunk, by one response frame:
//
//	Request:  [LEN][MBOX][CMD][SEQ][PAYLOAD(0..57)][CSUM_H][CSUM_L]
//	Response: [LEN][SEQ][STATUS][DATA(0..58)][CSUM_H][CSUM_L]
//
// Where:
//   - LEN = number of bytes following the length byte
//   - MBOX = mailbox (0x00 link, 0x80 OFDM, +0x10 for the second chip)
//   - SEQ = 8-bit wrapping sequence number
//   - CSUM = complement of the alternating high/low byte sum of MBOX..PAYLOAD
//
// The largest frame is MaxFrameSize (63) bytes.
//
// # Request Builders
//
// Use the builders to create requests and BuildRequest to frame them:
//
//	req := protocol.RegisterWrite(protocol.MailboxOFDM, 0x004c, []byte{1})
//	frame, err := protocol.BuildRequest(seq, req)
//
// # Response Parsing
//
//	status, data, err := protocol.ParseResponse(frame, len(req.Read))
//	if status != protocol.StatusSuccess {
//	    return &protocol.DeviceError{Command: req.Command, Status: status}
//	}
//
// # Error Handling
//
// All errors match one of the sentinels through errors.Is:
// ErrFrameTooLarge, ErrTransport, ErrShortTransfer, ErrDeviceRejected and
// ErrWouldBlock.
package protocol
