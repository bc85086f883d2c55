package fwimage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Constants for firmware image parsing.
const (
	// MaxSegments is the most segments an image can carry; extra headers
	// are ignored.
	MaxSegments = 50

	// CountSize is the size of the leading segment count
	CountSize = 1

	// SegmentHeaderSize is the size of one segment header: type + BE32 length
	SegmentHeaderSize = 5
)

// ErrTruncated is returned when the image ends before a header or a
// segment's data.
var ErrTruncated = errors.New("firmware image truncated")

// Parse parses a firmware image from the given file path.
//
// Example:
//
//	img, err := fwimage.Parse("dvb-usb-af9035-01.fw")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("segments: %d, bytes: %d\n", len(img.Segments), img.Size())
func Parse(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f)
}

// ParseReader parses a firmware image from any io.Reader.
func ParseReader(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return ParseBytes(data)
}

// ParseBytes parses an in-memory firmware image.
//
// Layout:
//
//	[COUNT] { [TYPE][LEN(4, big endian)] } x COUNT  [DATA(seg 0)][DATA(seg 1)]...
//
// A count above MaxSegments is clamped and only the first MaxSegments
// headers are read; segment data starts right after them. The returned
// segments share memory with data.
func ParseBytes(data []byte) (*Image, error) {
	if len(data) < CountSize {
		return nil, fmt.Errorf("empty image: %w", ErrTruncated)
	}

	img := &Image{DeclaredCount: int(data[0])}
	count := img.DeclaredCount
	if count > MaxSegments {
		count = MaxSegments
	}

	headersEnd := CountSize + count*SegmentHeaderSize
	if len(data) < headersEnd {
		return nil, fmt.Errorf("segment headers need %d bytes, image has %d: %w",
			headersEnd, len(data), ErrTruncated)
	}

	img.Segments = make([]*Segment, 0, count)
	offset := headersEnd
	for i := 0; i < count; i++ {
		h := data[CountSize+i*SegmentHeaderSize:]
		typ := SegmentType(h[0])
		length := binary.BigEndian.Uint32(h[1:5])

		if uint64(offset)+uint64(length) > uint64(len(data)) {
			return nil, fmt.Errorf("segment %d (%s): need %d data bytes at offset %d, image has %d: %w",
				i, typ, length, offset, len(data), ErrTruncated)
		}

		img.Segments = append(img.Segments, &Segment{
			Type: typ,
			Data: data[offset : offset+int(length)],
		})
		offset += int(length)
	}

	img.Trailing = len(data) - offset
	return img, nil
}

// Marshal encodes segments into the image layout. It is the inverse of
// ParseBytes for images of at most MaxSegments segments.
func Marshal(segments []*Segment) ([]byte, error) {
	if len(segments) > 0xff {
		return nil, fmt.Errorf("too many segments: %d", len(segments))
	}

	size := CountSize + len(segments)*SegmentHeaderSize
	for _, s := range segments {
		size += len(s.Data)
	}

	out := make([]byte, 0, size)
	out = append(out, byte(len(segments)))
	for _, s := range segments {
		out = append(out, byte(s.Type))
		out = binary.BigEndian.AppendUint32(out, uint32(len(s.Data)))
	}
	for _, s := range segments {
		out = append(out, s.Data...)
	}
	return out, nil
}
