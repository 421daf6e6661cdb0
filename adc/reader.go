package adc

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mklimuk/adcreader"
)

type ReaderOpts struct {
	Format Format
}

type ReaderOpt func(*ReaderOpts)

func WithFormat(format Format) ReaderOpt {
	return func(o *ReaderOpts) {
		o.Format = format
	}
}

// Reader converts frames delivered by a BusReader.
// Typical usage:
//
//	r := NewReader(bus)
//	frame := make([]int16, 1000)
//	err := r.GetFrame(ctx, frame)
//
// A Reader may be shared between goroutines; bus reads are serialised.
type Reader struct {
	mx     sync.Mutex
	bus    adcreader.BusReader
	format Format
	buf    []byte
}

func NewReader(bus adcreader.BusReader, opts ...ReaderOpt) *Reader {
	config := ReaderOpts{
		Format: DefaultFormat,
	}
	for _, opt := range opts {
		opt(&config)
	}
	return &Reader{
		bus:    bus,
		format: config.Format,
	}
}

func (r *Reader) Format() Format {
	return r.format
}

// ConvertFromADCFormat converts a single word given in wire byte order.
func (r *Reader) ConvertFromADCFormat(raw [2]byte) int16 {
	return r.format.Decode(raw)
}

// GetFrame reads len(dst) words from the bus and converts them into dst.
func (r *Reader) GetFrame(ctx context.Context, dst []int16) error {
	if len(dst) == 0 {
		return nil
	}
	if err := r.format.Validate(); err != nil {
		return fmt.Errorf("adc: %w", err)
	}
	r.mx.Lock()
	defer r.mx.Unlock()
	size := 2 * len(dst)
	if cap(r.buf) < size {
		r.buf = make([]byte, size)
	}
	buf := r.buf[:size]
	err := r.bus.Read(ctx, buf)
	if err != nil {
		return fmt.Errorf("adc: read failed: %w", err)
	}
	_, err = r.format.DecodeFrame(dst, buf)
	if err != nil {
		return fmt.Errorf("adc: %w", err)
	}
	slog.DebugContext(ctx, "frame converted", "samples", len(dst), "format", r.format)
	return nil
}
