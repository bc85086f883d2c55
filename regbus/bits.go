package regbus

import (
	"context"
	"fmt"
)

// ReadReg reads one register through rw.
func ReadReg(ctx context.Context, rw ReadWriter, r Register) (byte, error) {
	var buf [1]byte
	if err := rw.ReadRegs(ctx, r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// WriteReg writes one register through rw.
func WriteReg(ctx context.Context, rw ReadWriter, r Register, v byte) error {
	return rw.WriteRegs(ctx, r, []byte{v})
}

// ReadBits reads the register and extracts field f.
func ReadBits(ctx context.Context, rw ReadWriter, r Register, f BitField) (byte, error) {
	if !f.Valid() {
		return 0, fmt.Errorf("%s %s: %w", r, f, ErrInvalidBitField)
	}

	tmp, err := ReadReg(ctx, rw, r)
	if err != nil {
		return 0, err
	}
	return f.Extract(tmp), nil
}

// WriteBits reads the register, replaces field f with v and writes it back.
// A full-width field skips the read.
func WriteBits(ctx context.Context, rw ReadWriter, r Register, f BitField, v byte) error {
	if !f.Valid() {
		return fmt.Errorf("%s %s: %w", r, f, ErrInvalidBitField)
	}
	if f.Pos == 0 && f.Len == 8 {
		return WriteReg(ctx, rw, r, v)
	}

	tmp, err := ReadReg(ctx, rw, r)
	if err != nil {
		return err
	}
	return WriteReg(ctx, rw, r, f.Insert(tmp, v))
}

// RegValue is one entry of a register initialization table. A zero Field
// means the whole register.
type RegValue struct {
	Reg   Register
	Field BitField
	Value byte
}

// WriteTable applies entries in order and stops at the first error.
func WriteTable(ctx context.Context, rw ReadWriter, table []RegValue) error {
	for i, e := range table {
		var err error
		if e.Field == (BitField{}) {
			err = WriteReg(ctx, rw, e.Reg, e.Value)
		} else {
			err = WriteBits(ctx, rw, e.Reg, e.Field, e.Value)
		}
		if err != nil {
			return fmt.Errorf("table entry %d: %w", i, err)
		}
	}
	return nil
}
