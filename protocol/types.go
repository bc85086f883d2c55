package protocol

// Request is one logical exchange with the bridge.
//
// Write is sent as the frame payload. Read is filled in place from the
// response payload; its length is the expected read length. A request whose
// command has no acknowledgement (CmdFwDownload) must leave Read empty.
type Request struct {
	// Command is the bridge command code
	Command byte

	// Mailbox selects the register space
	Mailbox byte

	// Write is the request payload (0..MaxWriteLen bytes)
	Write []byte

	// Read receives the response payload (0..MaxReadLen bytes)
	Read []byte
}

// NoAck reports whether the command is sent without awaiting a response.
func (r Request) NoAck() bool {
	return r.Command == CmdFwDownload
}

// Validate rejects requests that would not fit in a frame.
func (r Request) Validate() error {
	if len(r.Write) > MaxWriteLen || len(r.Read) > MaxReadLen {
		return &FrameSizeError{WriteLen: len(r.Write), ReadLen: len(r.Read)}
	}
	return nil
}

// FirmwareVersion is the 4-part version reported by a firmware block.
type FirmwareVersion [4]byte

func (v FirmwareVersion) String() string {
	return formatVersion(v)
}
