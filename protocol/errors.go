package protocol

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors below match them through errors.Is.
var (
	// ErrFrameTooLarge is returned before any I/O when a request does not fit in a frame.
	ErrFrameTooLarge = errors.New("frame too large")

	// ErrTransport marks a failure of the underlying bulk pipe.
	ErrTransport = errors.New("transport failure")

	// ErrShortTransfer marks a byte count mismatch. It also matches ErrTransport.
	ErrShortTransfer = errors.New("short transfer")

	// ErrDeviceRejected marks a non-zero status byte in a response.
	ErrDeviceRejected = errors.New("device rejected command")

	// ErrWouldBlock is returned when the channel lock is requested with a
	// context that is already done. The caller may retry.
	ErrWouldBlock = errors.New("channel busy, try again")
)

// FrameSizeError reports the sizes of a request that does not fit in a frame.
type FrameSizeError struct {
	WriteLen int
	ReadLen  int
}

func (e *FrameSizeError) Error() string {
	return fmt.Sprintf("frame too large: wlen=%d (max %d) rlen=%d (max %d)",
		e.WriteLen, MaxWriteLen, e.ReadLen, MaxReadLen)
}

// Is reports whether target is ErrFrameTooLarge.
func (e *FrameSizeError) Is(target error) bool {
	return target == ErrFrameTooLarge
}

// ShortTransferError reports a send or receive that moved fewer or more bytes
// than the frame required.
type ShortTransferError struct {
	// Op is "send" or "recv"
	Op   string
	Want int
	Got  int
}

func (e *ShortTransferError) Error() string {
	return fmt.Sprintf("%s: short transfer: got %d bytes, want %d", e.Op, e.Got, e.Want)
}

// Is reports whether target is ErrShortTransfer or ErrTransport.
func (e *ShortTransferError) Is(target error) bool {
	return target == ErrShortTransfer || target == ErrTransport
}

// TransportError wraps an error returned by the transport.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is reports whether target is ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// DeviceError is returned when the bridge answers with a non-zero status.
type DeviceError struct {
	// Command is the command that failed
	Command byte

	// Status is the status byte from the response
	Status byte
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("%s failed: status 0x%02X", CommandName(e.Command), e.Status)
}

// Is reports whether target is ErrDeviceRejected.
func (e *DeviceError) Is(target error) bool {
	return target == ErrDeviceRejected
}

// IsDeviceError returns true if the error is, or wraps, a DeviceError.
func IsDeviceError(err error) bool {
	var de *DeviceError
	return errors.As(err, &de)
}

// CommandName returns a human-readable name for a command code.
func CommandName(cmd byte) string {
	switch cmd {
	case CmdRegDemodRead:
		return "demod register read"
	case CmdRegDemodWrite:
		return "demod register write"
	case CmdRegTunerRead:
		return "tuner register read"
	case CmdRegTunerWrite:
		return "tuner register write"
	case CmdRegEEPROMRead:
		return "eeprom read"
	case CmdRegEEPROMWrite:
		return "eeprom write"
	case CmdFwDownload:
		return "firmware download"
	case CmdFwDownloadBegin:
		return "firmware download begin"
	case CmdFwDownloadEnd:
		return "firmware download end"
	case CmdQueryInfo:
		return "query info"
	case CmdBoot:
		return "boot"
	case CmdRunCode:
		return "run code"
	case CmdScatterRead:
		return "scatter read"
	case CmdScatterWrite:
		return "scatter write"
	case CmdGenericRead:
		return "generic read"
	case CmdGenericWrite:
		return "generic write"
	case CmdIRGet:
		return "ir get"
	case CmdIRSet:
		return "ir set"
	default:
		return fmt.Sprintf("command 0x%02X", cmd)
	}
}
