package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/moffa90/go-af9035/fwimage"
	"github.com/moffa90/go-af9035/protocol"
)

func inspectImage(w io.Writer, path string) error {
	if path == "" {
		return errors.New("--inspect needs --firmware")
	}

	img, err := fwimage.Parse(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s: %d segments, %d bytes\n", path, len(img.Segments), img.Size())
	if img.Clamped() {
		fmt.Fprintf(w, "  header declares %d segments, only the first %d are used\n",
			img.DeclaredCount, len(img.Segments))
	}
	for i, s := range img.Segments {
		fmt.Fprintf(w, "  %3d  %-14s %6d bytes  %3d frames\n",
			i, s.Type, len(s.Data), s.Chunks(protocol.FirmwareChunkSize))
	}
	if img.Trailing > 0 {
		fmt.Fprintf(w, "  %d trailing bytes ignored\n", img.Trailing)
	}
	return nil
}
