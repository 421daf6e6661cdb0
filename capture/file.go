// Package capture provides BusReader implementations backed by recorded
// data instead of a device.
//
// A capture file is a headerless sequence of raw ADC words, each stored most
// significant byte first.
package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mklimuk/adcreader"
)

var _ adcreader.BusReader = &File{}

type File struct {
	src io.Reader
}

func NewFile(src io.Reader) *File {
	return &File{src: src}
}

// Open opens a capture file for reading. The caller closes it.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open capture: %w", err)
	}
	return NewFile(f), nil
}

// Read fills buffer with the next words of the capture. It returns io.EOF
// when the capture ended exactly before this read and an error wrapping
// adcreader.ErrShortRead when it ended inside it.
func (f *File) Read(ctx context.Context, buffer []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n, err := io.ReadFull(f.src, buffer)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		return io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: got %d of %d bytes", adcreader.ErrShortRead, n, len(buffer))
	default:
		return fmt.Errorf("could not read capture: %w", err)
	}
}

func (f *File) Close() error {
	if c, ok := f.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
