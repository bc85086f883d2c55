package protocol

import "fmt"

// BuildRequest constructs the request frame for req with the given sequence number.
//
// Frame structure:
//
//	[LEN][MBOX][CMD][SEQ][PAYLOAD(0..57)][CSUM_H][CSUM_L]
//
// LEN counts the bytes that follow it, so the frame is LEN+1 bytes long.
// The checksum covers MBOX through the last payload byte.
func BuildRequest(seq byte, req Request) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	frame := make([]byte, 0, RequestHeaderSize+len(req.Write)+ChecksumSize)
	frame = append(frame, byte(len(req.Write)+3+ChecksumSize))
	frame = append(frame, req.Mailbox, req.Command, seq)
	frame = append(frame, req.Write...)

	checksum := Checksum(frame[1:])
	frame = append(frame, byte(checksum>>8), byte(checksum))

	return frame, nil
}

// RegisterRead builds a register read of len(buf) bytes starting at addr.
//
// Payload structure:
//
//	[LEN][2][0][0][ADDR_H][ADDR_L]
func RegisterRead(mailbox byte, addr uint16, buf []byte) Request {
	return Request{
		Command: CmdRegDemodRead,
		Mailbox: mailbox,
		Write:   registerHeader(len(buf), addr),
		Read:    buf,
	}
}

// RegisterWrite builds a register write of data starting at addr.
//
// Payload structure:
//
//	[LEN][2][0][0][ADDR_H][ADDR_L][DATA...]
func RegisterWrite(mailbox byte, addr uint16, data []byte) Request {
	payload := make([]byte, 0, RegisterHeaderSize+len(data))
	payload = append(payload, registerHeader(len(data), addr)...)
	payload = append(payload, data...)

	return Request{
		Command: CmdRegDemodWrite,
		Mailbox: mailbox,
		Write:   payload,
	}
}

func registerHeader(n int, addr uint16) []byte {
	return []byte{byte(n), RegisterAddrWidth, 0, 0, byte(addr >> 8), byte(addr)}
}

// TunerRead builds a proxied tuner read: the bridge writes reg to the tuner
// at i2cAddr and reads len(buf) bytes back.
//
// Payload structure:
//
//	[LEN][I2C_ADDR][1][0][REG]
func TunerRead(mailbox, i2cAddr, reg byte, buf []byte) Request {
	return Request{
		Command: CmdRegTunerRead,
		Mailbox: mailbox,
		Write:   []byte{byte(len(buf)), i2cAddr, TunerRegWidth, 0, reg},
		Read:    buf,
	}
}

// TunerWrite builds a proxied tuner write. data starts with the register
// pointer byte, followed by the values to write.
//
// Payload structure:
//
//	[LEN][I2C_ADDR][1][0][REG][DATA...]
//
// LEN counts the value bytes only.
func TunerWrite(mailbox, i2cAddr byte, data []byte) Request {
	payload := make([]byte, 0, TunerHeaderSize+len(data))
	payload = append(payload, byte(len(data)-1), i2cAddr, TunerRegWidth, 0)
	payload = append(payload, data...)

	return Request{
		Command: CmdRegTunerWrite,
		Mailbox: mailbox,
		Write:   payload,
	}
}

// QueryInfo builds the query-info request used to tell whether the firmware
// is running. buf should be QueryInfoReplySize bytes.
func QueryInfo(mailbox byte, buf []byte) Request {
	return Request{
		Command: CmdQueryInfo,
		Mailbox: mailbox,
		Write:   []byte{1},
		Read:    buf,
	}
}

// StatusOnly builds a zero-length link request that expects len(buf) reply
// bytes (begin, end and boot use one).
func StatusOnly(cmd byte, buf []byte) Request {
	return Request{
		Command: cmd,
		Mailbox: MailboxLink,
		Read:    buf,
	}
}

// FirmwareChunk builds an unacknowledged firmware download frame.
func FirmwareChunk(chunk []byte) Request {
	return Request{
		Command: CmdFwDownload,
		Mailbox: MailboxLink,
		Write:   chunk,
	}
}

// ScatterWrite builds an acknowledged ROM copy frame.
func ScatterWrite(chunk []byte, ack []byte) Request {
	return Request{
		Command: CmdScatterWrite,
		Mailbox: MailboxLink,
		Write:   chunk,
		Read:    ack,
	}
}

// ParseRequest decodes a request frame as the bridge would see it. The
// checksum is verified. The returned request has no Read buffer.
func ParseRequest(frame []byte) (seq byte, req Request, err error) {
	if len(frame) < RequestHeaderSize+ChecksumSize {
		return 0, Request{}, fmt.Errorf("request too short: got %d bytes, minimum is %d",
			len(frame), RequestHeaderSize+ChecksumSize)
	}
	if int(frame[0])+1 != len(frame) {
		return 0, Request{}, fmt.Errorf("length prefix mismatch: prefix %d, frame %d bytes", frame[0], len(frame))
	}

	end := len(frame) - ChecksumSize
	got := uint16(frame[end])<<8 | uint16(frame[end+1])
	if want := Checksum(frame[1:end]); got != want {
		return 0, Request{}, fmt.Errorf("checksum mismatch: got 0x%04X, expected 0x%04X", got, want)
	}

	req = Request{
		Mailbox: frame[1],
		Command: frame[2],
		Write:   append([]byte(nil), frame[RequestHeaderSize:end]...),
	}
	return frame[3], req, nil
}

// BuildResponse constructs a response frame as the bridge would send it.
func BuildResponse(seq, status byte, data []byte) []byte {
	frame := make([]byte, 0, ResponseSize(len(data)))
	frame = append(frame, byte(ResponseSize(len(data))-1), seq, status)
	frame = append(frame, data...)

	checksum := Checksum(frame[1:])
	frame = append(frame, byte(checksum>>8), byte(checksum))

	return frame
}
