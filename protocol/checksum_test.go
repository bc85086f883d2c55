package protocol

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected uint16
	}{
		{
			name:     "empty data",
			data:     []byte{},
			expected: 0xFFFF,
		},
		{
			name:     "single byte goes to high byte",
			data:     []byte{0x01},
			expected: 0xFEFF,
		},
		{
			name:     "two bytes",
			data:     []byte{0x01, 0x02},
			expected: 0xFEFD,
		},
		{
			name:     "all ones overflow",
			data:     []byte{0xFF, 0xFF, 0xFF, 0xFF},
			expected: 0x0001,
		},
		{
			name:     "register write frame body",
			data:     []byte{0x80, 0x01, 0x00, 0x01, 0x02, 0x00, 0x00, 0x00, 0x4C, 0x01},
			expected: 0x31FC,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Checksum(tt.data)
			if result != tt.expected {
				t.Errorf("Checksum() = 0x%04X, want 0x%04X", result, tt.expected)
			}
		})
	}
}

// alternatingSum is a straightforward reference for the frame checksum.
func alternatingSum(data []byte) uint16 {
	var hi, lo uint32
	for i, b := range data {
		if i%2 == 0 {
			hi += uint32(b)
		} else {
			lo += uint32(b)
		}
	}
	return uint16(hi<<8 + lo)
}

func TestChecksumProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		payload := make([]byte, rng.Intn(MaxWriteLen+1))
		rng.Read(payload)

		req := Request{
			Command: byte(rng.Intn(0x30)),
			Mailbox: byte(rng.Intn(256)),
			Write:   payload,
		}
		seq := byte(rng.Intn(256))

		frame, err := BuildRequest(seq, req)
		if err != nil {
			t.Fatalf("BuildRequest() error = %v", err)
		}

		end := len(frame) - ChecksumSize
		got := uint16(frame[end])<<8 | uint16(frame[end+1])
		if want := ^alternatingSum(frame[1:end]); got != want {
			t.Fatalf("frame %d: checksum = 0x%04X, want 0x%04X", i, got, want)
		}

		gotSeq, decoded, err := ParseRequest(frame)
		if err != nil {
			t.Fatalf("ParseRequest() error = %v", err)
		}
		if gotSeq != seq || decoded.Command != req.Command || decoded.Mailbox != req.Mailbox {
			t.Fatalf("header mismatch: seq %d/%d cmd %d/%d mbox %d/%d",
				gotSeq, seq, decoded.Command, req.Command, decoded.Mailbox, req.Mailbox)
		}
		if !bytes.Equal(decoded.Write, payload) {
			t.Fatalf("payload round trip = %X, want %X", decoded.Write, payload)
		}
	}
}
