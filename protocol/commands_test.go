package protocol

import (
	"bytes"
	"errors"
	"testing"
)

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name    string
		seq     byte
		req     Request
		want    []byte
		wantErr error
	}{
		{
			name: "register write",
			seq:  0,
			req:  RegisterWrite(MailboxOFDM, 0x004C, []byte{0x01}),
			want: []byte{0x0C, 0x80, 0x01, 0x00, 0x01, 0x02, 0x00, 0x00, 0x00, 0x4C, 0x01, 0x31, 0xFC},
		},
		{
			name: "empty payload",
			seq:  0x10,
			req:  StatusOnly(CmdBoot, make([]byte, 1)),
			// body 00 23 10: 0x0000 + 0x23 + 0x1000 = 0x1023
			want: []byte{0x05, 0x00, 0x23, 0x10, 0xEF, 0xDC},
		},
		{
			name:    "write too large",
			req:     Request{Command: CmdFwDownload, Write: make([]byte, MaxWriteLen+1)},
			wantErr: ErrFrameTooLarge,
		},
		{
			name:    "read too large",
			req:     Request{Command: CmdRegDemodRead, Read: make([]byte, MaxReadLen+1)},
			wantErr: ErrFrameTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := BuildRequest(tt.seq, tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("BuildRequest() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("BuildRequest() unexpected error = %v", err)
			}
			if !bytes.Equal(frame, tt.want) {
				t.Errorf("BuildRequest() = % X, want % X", frame, tt.want)
			}
		})
	}
}

func TestBuildRequestSizes(t *testing.T) {
	for wlen := 0; wlen <= MaxWriteLen; wlen++ {
		frame, err := BuildRequest(0, Request{Write: make([]byte, wlen)})
		if err != nil {
			t.Fatalf("wlen %d: unexpected error %v", wlen, err)
		}
		if int(frame[0]) != 3+wlen+2 {
			t.Errorf("wlen %d: length prefix = %d, want %d", wlen, frame[0], 3+wlen+2)
		}
		if len(frame) != wlen+6 {
			t.Errorf("wlen %d: frame length = %d, want %d", wlen, len(frame), wlen+6)
		}
		if len(frame) > MaxFrameSize {
			t.Errorf("wlen %d: frame length %d exceeds %d", wlen, len(frame), MaxFrameSize)
		}
	}
}

func TestRequestBuilders(t *testing.T) {
	buf := make([]byte, 3)

	tests := []struct {
		name      string
		req       Request
		wantCmd   byte
		wantMbox  byte
		wantWrite []byte
		wantRead  int
	}{
		{
			name:      "register read",
			req:       RegisterRead(MailboxLink, 0xD800, buf),
			wantCmd:   CmdRegDemodRead,
			wantMbox:  MailboxLink,
			wantWrite: []byte{0x03, 0x02, 0x00, 0x00, 0xD8, 0x00},
			wantRead:  3,
		},
		{
			name:      "register write",
			req:       RegisterWrite(MailboxOFDM+SecondaryOffset, 0xF904, []byte{0xAA, 0xBB}),
			wantCmd:   CmdRegDemodWrite,
			wantMbox:  0x90,
			wantWrite: []byte{0x02, 0x02, 0x00, 0x00, 0xF9, 0x04, 0xAA, 0xBB},
		},
		{
			name:      "tuner read",
			req:       TunerRead(MailboxLink, 0xC0, 0x1F, buf[:2]),
			wantCmd:   CmdRegTunerRead,
			wantMbox:  MailboxLink,
			wantWrite: []byte{0x02, 0xC0, 0x01, 0x00, 0x1F},
			wantRead:  2,
		},
		{
			name:      "tuner write",
			req:       TunerWrite(MailboxLink, 0xC0, []byte{0x1E, 0x65, 0x12}),
			wantCmd:   CmdRegTunerWrite,
			wantMbox:  MailboxLink,
			wantWrite: []byte{0x02, 0xC0, 0x01, 0x00, 0x1E, 0x65, 0x12},
		},
		{
			name:      "query info",
			req:       QueryInfo(0, make([]byte, QueryInfoReplySize)),
			wantCmd:   CmdQueryInfo,
			wantWrite: []byte{0x01},
			wantRead:  4,
		},
		{
			name:     "scatter write",
			req:      ScatterWrite([]byte{1, 2, 3}, make([]byte, 1)),
			wantCmd:  CmdScatterWrite,
			wantRead: 1,
			// chunk is carried as-is
			wantWrite: []byte{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.req.Command != tt.wantCmd {
				t.Errorf("Command = 0x%02X, want 0x%02X", tt.req.Command, tt.wantCmd)
			}
			if tt.req.Mailbox != tt.wantMbox {
				t.Errorf("Mailbox = 0x%02X, want 0x%02X", tt.req.Mailbox, tt.wantMbox)
			}
			if !bytes.Equal(tt.req.Write, tt.wantWrite) {
				t.Errorf("Write = % X, want % X", tt.req.Write, tt.wantWrite)
			}
			if len(tt.req.Read) != tt.wantRead {
				t.Errorf("len(Read) = %d, want %d", len(tt.req.Read), tt.wantRead)
			}
		})
	}
}

func TestNoAck(t *testing.T) {
	if !FirmwareChunk([]byte{1}).NoAck() {
		t.Error("firmware chunk should not await an acknowledgement")
	}
	if ScatterWrite([]byte{1}, make([]byte, 1)).NoAck() {
		t.Error("scatter write should await an acknowledgement")
	}
}

func TestParseRequestRejectsBadChecksum(t *testing.T) {
	frame, err := BuildRequest(7, RegisterWrite(MailboxLink, 0x417F, []byte{0x3A}))
	if err != nil {
		t.Fatal(err)
	}
	frame[len(frame)-1] ^= 0xFF

	if _, _, err := ParseRequest(frame); err == nil {
		t.Error("ParseRequest() expected checksum error")
	}
}
