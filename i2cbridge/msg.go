package i2cbridge

import (
	"errors"
	"fmt"
)

// FlagRead marks a message that reads from the target.
const FlagRead uint16 = 0x0001

// Msg is one message of an I2C transfer.
type Msg struct {
	Addr  uint16
	Flags uint16
	Buf   []byte
}

// IsRead reports whether the message reads from the target.
func (m Msg) IsRead() bool {
	return m.Flags&FlagRead != 0
}

// ErrUnsupportedMessage is returned for message shapes the bridge cannot
// carry: a read not preceded by a write, a write without the register
// pointer bytes, or an address wider than 8 bits.
var ErrUnsupportedMessage = errors.New("unsupported i2c message")

// OpKind is the shape of one logical bridge operation.
type OpKind int

const (
	// WriteOnly is a single write message.
	WriteOnly OpKind = iota

	// CombinedWriteThenRead is a write that sets a register pointer
	// followed by a read, with no stop condition between them.
	CombinedWriteThenRead
)

func (k OpKind) String() string {
	switch k {
	case WriteOnly:
		return "write"
	case CombinedWriteThenRead:
		return "write+read"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one logical operation planned from a message list.
type Op struct {
	Kind OpKind
	Addr byte

	// Write holds the pointer and data bytes of the write message.
	Write []byte

	// Read is the buffer of the read message for CombinedWriteThenRead.
	Read []byte

	// Index is the position of the op's first message in the input.
	Index int
}

// Consumed returns the number of input messages the op covers.
func (o Op) Consumed() int {
	if o.Kind == CombinedWriteThenRead {
		return 2
	}
	return 1
}

// Plan groups msgs into operations. A write followed by a read becomes one
// CombinedWriteThenRead op addressed to the write's target; any other
// write stands alone. A read that does not follow a write is rejected.
func Plan(msgs []Msg) ([]Op, error) {
	ops := make([]Op, 0, len(msgs))

	for i := 0; i < len(msgs); {
		m := msgs[i]
		if m.IsRead() {
			return nil, fmt.Errorf("message %d: read without preceding write: %w", i, ErrUnsupportedMessage)
		}
		if m.Addr > 0xff {
			return nil, fmt.Errorf("message %d: address 0x%x: %w", i, m.Addr, ErrUnsupportedMessage)
		}
		if len(m.Buf) == 0 {
			return nil, fmt.Errorf("message %d: empty write: %w", i, ErrUnsupportedMessage)
		}

		op := Op{Kind: WriteOnly, Addr: byte(m.Addr), Write: m.Buf, Index: i}
		if i+1 < len(msgs) && msgs[i+1].IsRead() {
			op.Kind = CombinedWriteThenRead
			op.Read = msgs[i+1].Buf
		}

		ops = append(ops, op)
		i += op.Consumed()
	}

	return ops, nil
}
