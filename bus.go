package adcreader

import (
	"context"
	"errors"
)

var ErrShortRead = errors.New("short read (frame incomplete)")

// BusReader is implemented by whatever delivers raw ADC words. Read must fill
// the whole buffer or return an error.
type BusReader interface {
	Read(ctx context.Context, buffer []byte) error
}
