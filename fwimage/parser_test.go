package fwimage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseBytes(t *testing.T) {
	tests := []struct {
		name      string
		input     []byte
		wantTypes []SegmentType
		wantLens  []int
		trailing  int
		wantErr   error
	}{
		{
			name:      "no segments",
			input:     []byte{0x00},
			wantTypes: []SegmentType{},
			wantLens:  []int{},
		},
		{
			name: "download and rom-copy",
			input: []byte{
				0x02,
				0x00, 0x00, 0x00, 0x00, 0x03,
				0x01, 0x00, 0x00, 0x00, 0x02,
				0xa1, 0xa2, 0xa3,
				0xb1, 0xb2,
			},
			wantTypes: []SegmentType{SegmentDownload, SegmentROMCopy},
			wantLens:  []int{3, 2},
		},
		{
			name: "zero length segment",
			input: []byte{
				0x01,
				0x00, 0x00, 0x00, 0x00, 0x00,
			},
			wantTypes: []SegmentType{SegmentDownload},
			wantLens:  []int{0},
		},
		{
			name: "trailing bytes",
			input: []byte{
				0x01,
				0x02, 0x00, 0x00, 0x00, 0x01,
				0xff,
				0xee, 0xee,
			},
			wantTypes: []SegmentType{SegmentDirectCommand},
			wantLens:  []int{1},
			trailing:  2,
		},
		{
			name:    "empty input",
			input:   nil,
			wantErr: ErrTruncated,
		},
		{
			name:    "header cut short",
			input:   []byte{0x01, 0x00, 0x00},
			wantErr: ErrTruncated,
		},
		{
			name:    "data cut short",
			input:   []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x04, 0x01, 0x02},
			wantErr: ErrTruncated,
		},
		{
			name:    "length overflows",
			input:   []byte{0x01, 0x00, 0xff, 0xff, 0xff, 0xff},
			wantErr: ErrTruncated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := ParseBytes(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseBytes() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBytes() unexpected error = %v", err)
			}

			if len(img.Segments) != len(tt.wantTypes) {
				t.Fatalf("got %d segments, want %d", len(img.Segments), len(tt.wantTypes))
			}
			for i, seg := range img.Segments {
				if seg.Type != tt.wantTypes[i] {
					t.Errorf("segment %d type = %v, want %v", i, seg.Type, tt.wantTypes[i])
				}
				if len(seg.Data) != tt.wantLens[i] {
					t.Errorf("segment %d length = %d, want %d", i, len(seg.Data), tt.wantLens[i])
				}
			}
			if img.Trailing != tt.trailing {
				t.Errorf("Trailing = %d, want %d", img.Trailing, tt.trailing)
			}
			if img.Clamped() {
				t.Error("Clamped() = true, want false")
			}
		})
	}
}

func TestParseBytesSegmentData(t *testing.T) {
	input := []byte{
		0x02,
		0x00, 0x00, 0x00, 0x00, 0x03,
		0x01, 0x00, 0x00, 0x00, 0x02,
		0xa1, 0xa2, 0xa3,
		0xb1, 0xb2,
	}
	img, err := ParseBytes(input)
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	if !bytes.Equal(img.Segments[0].Data, []byte{0xa1, 0xa2, 0xa3}) {
		t.Errorf("segment 0 data = % x", img.Segments[0].Data)
	}
	if !bytes.Equal(img.Segments[1].Data, []byte{0xb1, 0xb2}) {
		t.Errorf("segment 1 data = % x", img.Segments[1].Data)
	}
	if img.Size() != 5 {
		t.Errorf("Size() = %d, want 5", img.Size())
	}
}

func TestParseBytesClampsSegmentCount(t *testing.T) {
	// 51 empty segments declared; only 50 headers are read and the last
	// header's bytes are left over.
	input := []byte{51}
	for i := 0; i < 51; i++ {
		input = append(input, byte(SegmentROMCopy), 0, 0, 0, 0)
	}

	img, err := ParseBytes(input)
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	if len(img.Segments) != MaxSegments {
		t.Errorf("got %d segments, want %d", len(img.Segments), MaxSegments)
	}
	if !img.Clamped() {
		t.Error("Clamped() = false, want true")
	}
	if img.DeclaredCount != 51 {
		t.Errorf("DeclaredCount = %d, want 51", img.DeclaredCount)
	}
	if img.Trailing != SegmentHeaderSize {
		t.Errorf("Trailing = %d, want %d", img.Trailing, SegmentHeaderSize)
	}
}

func TestSegmentChunks(t *testing.T) {
	tests := []struct {
		length   int
		want     int
		lastSize int
	}{
		{0, 0, 0},
		{1, 1, 1},
		{57, 1, 57},
		{58, 2, 1},
		{114, 2, 57},
		{120, 3, 6},
	}

	for _, tt := range tests {
		seg := &Segment{Data: make([]byte, tt.length)}
		if got := seg.Chunks(57); got != tt.want {
			t.Errorf("Chunks(57) for %d bytes = %d, want %d", tt.length, got, tt.want)
			continue
		}
		if tt.want == 0 {
			continue
		}
		if got := len(seg.Chunk(tt.want-1, 57)); got != tt.lastSize {
			t.Errorf("last chunk for %d bytes = %d bytes, want %d", tt.length, got, tt.lastSize)
		}
	}
}

func TestMarshal(t *testing.T) {
	segments := []*Segment{
		{Type: SegmentDownload, Data: bytes.Repeat([]byte{0x11}, 120)},
		{Type: SegmentROMCopy, Data: bytes.Repeat([]byte{0x22}, 10)},
	}

	data, err := Marshal(segments)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	wantHeader := []byte{0x02, 0x00, 0x00, 0x00, 0x00, 0x78, 0x01, 0x00, 0x00, 0x00, 0x0a}
	if !bytes.HasPrefix(data, wantHeader) {
		t.Errorf("header = % x, want % x", data[:len(wantHeader)], wantHeader)
	}

	img, err := ParseBytes(data)
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	for i := range segments {
		if !bytes.Equal(img.Segments[i].Data, segments[i].Data) {
			t.Errorf("segment %d data differs after parse", i)
		}
	}
}

func TestParse(t *testing.T) {
	data, err := Marshal([]*Segment{{Type: SegmentDownload, Data: []byte{1, 2, 3}}})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "fw.bin")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	img, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(img.Segments) != 1 || len(img.Segments[0].Data) != 3 {
		t.Errorf("unexpected image: %+v", img)
	}

	if _, err := Parse(filepath.Join(t.TempDir(), "missing.bin")); err == nil {
		t.Error("Parse() of missing file should fail")
	}
}

func TestParseReader(t *testing.T) {
	img, err := ParseReader(strings.NewReader("\x01\x01\x00\x00\x00\x01\x7f"))
	if err != nil {
		t.Fatalf("ParseReader() error = %v", err)
	}
	if img.Segments[0].Type != SegmentROMCopy || img.Segments[0].Data[0] != 0x7f {
		t.Errorf("unexpected segment: %+v", img.Segments[0])
	}
}

func TestSegmentTypeString(t *testing.T) {
	if SegmentType(7).String() != "type-7" {
		t.Errorf("String() = %q", SegmentType(7).String())
	}
	if SegmentROMCopy.String() != "rom-copy" {
		t.Errorf("String() = %q", SegmentROMCopy.String())
	}
}
