package fwimage

import "fmt"

// SegmentType tells the loader how a segment is transferred.
type SegmentType byte

const (
	// SegmentDownload is streamed with unacknowledged download frames
	// between a begin and an end command.
	SegmentDownload SegmentType = 0

	// SegmentROMCopy is written with acknowledged scatter-write frames.
	SegmentROMCopy SegmentType = 1

	// SegmentDirectCommand is recognized but not executed.
	SegmentDirectCommand SegmentType = 2
)

func (t SegmentType) String() string {
	switch t {
	case SegmentDownload:
		return "download"
	case SegmentROMCopy:
		return "rom-copy"
	case SegmentDirectCommand:
		return "direct-command"
	default:
		return fmt.Sprintf("type-%d", byte(t))
	}
}

// Image represents a parsed firmware image.
type Image struct {
	// DeclaredCount is the segment count byte as found in the file
	DeclaredCount int

	// Segments holds at most MaxSegments segments, in file order
	Segments []*Segment

	// Trailing is the number of bytes after the last segment's data
	Trailing int
}

// Clamped reports whether the file declared more segments than are loaded.
func (img *Image) Clamped() bool {
	return img.DeclaredCount > len(img.Segments)
}

// Size returns the total number of segment data bytes.
func (img *Image) Size() int {
	n := 0
	for _, s := range img.Segments {
		n += len(s.Data)
	}
	return n
}

// Segment is one unit of the image.
type Segment struct {
	// Type selects the transfer method
	Type SegmentType

	// Data is the segment payload; its length is the header's length field
	Data []byte
}

// Chunks returns the number of frames needed to send the segment with at
// most size bytes per frame. An empty segment needs none.
func (s *Segment) Chunks(size int) int {
	return (len(s.Data) + size - 1) / size
}

// Chunk returns the i-th frame payload of at most size bytes.
func (s *Segment) Chunk(i, size int) []byte {
	start := i * size
	end := start + size
	if end > len(s.Data) {
		end = len(s.Data)
	}
	return s.Data[start:end]
}
