package protocol

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name       string
		frame      []byte
		readLen    int
		wantStatus byte
		wantData   []byte
		wantErr    error
	}{
		{
			name:       "status only",
			frame:      BuildResponse(1, StatusSuccess, nil),
			readLen:    0,
			wantStatus: StatusSuccess,
			wantData:   []byte{},
		},
		{
			name:       "with data",
			frame:      BuildResponse(2, StatusSuccess, []byte{0xDE, 0xAD, 0xBE, 0xEF}),
			readLen:    4,
			wantStatus: StatusSuccess,
			wantData:   []byte{0xDE, 0xAD, 0xBE, 0xEF},
		},
		{
			name:       "non-zero status",
			frame:      BuildResponse(3, 0x05, []byte{0x00}),
			readLen:    1,
			wantStatus: 0x05,
			wantData:   []byte{0x00},
		},
		{
			name:    "too short",
			frame:   BuildResponse(4, StatusSuccess, []byte{0x01}),
			readLen: 2,
			wantErr: ErrShortTransfer,
		},
		{
			name:    "too long",
			frame:   BuildResponse(4, StatusSuccess, []byte{0x01, 0x02}),
			readLen: 1,
			wantErr: ErrTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, data, err := ParseResponse(tt.frame, tt.readLen)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseResponse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseResponse() unexpected error = %v", err)
			}
			if status != tt.wantStatus {
				t.Errorf("status = 0x%02X, want 0x%02X", status, tt.wantStatus)
			}
			if !bytes.Equal(data, tt.wantData) {
				t.Errorf("data = % X, want % X", data, tt.wantData)
			}
		})
	}
}

// The bridge's response checksum is not verified. Corrupting it, or any
// byte outside the status and data, must not change the parse result.
func TestParseResponseIgnoresChecksum(t *testing.T) {
	data := []byte{0x11, 0x22, 0x33}
	for corrupt := 0; corrupt < 256; corrupt++ {
		frame := BuildResponse(9, StatusSuccess, data)
		frame[len(frame)-2] ^= byte(corrupt)
		frame[len(frame)-1] ^= byte(corrupt >> 1)
		frame[0] ^= byte(corrupt)
		frame[1] ^= byte(corrupt)

		status, got, err := ParseResponse(frame, len(data))
		if err != nil {
			t.Fatalf("corrupt=%d: unexpected error %v", corrupt, err)
		}
		if status != StatusSuccess || !bytes.Equal(got, data) {
			t.Fatalf("corrupt=%d: got status 0x%02X data % X", corrupt, status, got)
		}
	}
}

func TestDeviceError(t *testing.T) {
	err := error(&DeviceError{Command: CmdRegDemodWrite, Status: 0x01})

	if !errors.Is(err, ErrDeviceRejected) {
		t.Error("DeviceError should match ErrDeviceRejected")
	}
	if !IsDeviceError(err) {
		t.Error("IsDeviceError() = false")
	}
	if got, want := err.Error(), "demod register write failed: status 0x01"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero([]byte{0, 0, 0, 0}) {
		t.Error("IsZero(0000) = false")
	}
	if IsZero([]byte{0, 0, 0, 1}) {
		t.Error("IsZero(0001) = true")
	}
}
