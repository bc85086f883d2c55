// Package fwimage parses AF9035 firmware images.
//
// # Image Format
//
// An image starts with a one-byte segment count, followed by one header per
// segment and then the data of every segment back to back:
//
//	[COUNT]
//	[TYPE][LEN_3][LEN_2][LEN_1][LEN_0]   (segment 0, length big endian)
//	...
//	[DATA of segment 0][DATA of segment 1]...
//
// Segment types:
//
//	0 = download      (begin, unacknowledged chunks, end)
//	1 = rom-copy      (acknowledged scatter writes)
//	2 = direct command (not executed)
//
// At most 50 segments are used. A larger count is clamped; Image.Clamped
// reports it so the caller can warn.
//
// # Usage
//
//	img, err := fwimage.Parse("dvb-usb-af9035-01.fw")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i, seg := range img.Segments {
//	    fmt.Printf("segment %d: %s, %d bytes\n", i, seg.Type, len(seg.Data))
//	}
package fwimage
