package regbus

import (
	"errors"
	"fmt"
)

// Register is a 16-bit address in one mailbox-selected register space.
type Register struct {
	Mailbox byte
	Addr    uint16
}

// On returns the same register in the space of the second chip of a dual
// device. The offset applies to the mailbox only.
func (r Register) On(secondary bool) Register {
	if secondary {
		r.Mailbox += 0x10
	}
	return r
}

func (r Register) String() string {
	return fmt.Sprintf("%02x:%04x", r.Mailbox, r.Addr)
}

// BitField is a sub-range of one 8-bit register.
type BitField struct {
	Pos uint8
	Len uint8
}

// ErrInvalidBitField is returned for a field with Len 0 or Pos+Len > 8.
var ErrInvalidBitField = errors.New("invalid bit field")

var regMask = [8]byte{0x01, 0x03, 0x07, 0x0f, 0x1f, 0x3f, 0x7f, 0xff}

// Valid reports whether the field fits in one byte.
func (f BitField) Valid() bool {
	return f.Len >= 1 && f.Len <= 8 && f.Pos+f.Len <= 8
}

// Mask returns the field's mask in register position.
func (f BitField) Mask() byte {
	return regMask[f.Len-1] << f.Pos
}

// Insert returns reg with the field replaced by v. Bits of v beyond the
// field width are dropped.
func (f BitField) Insert(reg, v byte) byte {
	mask := f.Mask()
	return reg&^mask | (v<<f.Pos)&mask
}

// Extract returns the field value from reg.
func (f BitField) Extract(reg byte) byte {
	return (reg >> f.Pos) & regMask[f.Len-1]
}

func (f BitField) String() string {
	return fmt.Sprintf("[%d+%d]", f.Pos, f.Len)
}
