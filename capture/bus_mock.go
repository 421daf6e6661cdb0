package capture

import (
	"context"

	"github.com/mklimuk/adcreader"
)

var _ adcreader.BusReader = &MockBus{}

// ReadBehaviorFunc fills buffer the way a device would, or returns an error.
type ReadBehaviorFunc func(ctx context.Context, buffer []byte) error

// MockBus is a BusReader that delegates every read to a behavior function.
//
// Example usage:
//
//	// every word reads as 2000 in the 12-bit format
//	bus := NewMockBus(func(ctx context.Context, buf []byte) error {
//		for i := 0; i+1 < len(buf); i += 2 {
//			buf[i], buf[i+1] = 0x07, 0xD0
//		}
//		return nil
//	})
type MockBus struct {
	behavior ReadBehaviorFunc
}

func NewMockBus(behavior ReadBehaviorFunc) *MockBus {
	return &MockBus{behavior: behavior}
}

func (m *MockBus) Read(ctx context.Context, buffer []byte) error {
	return m.behavior(ctx, buffer)
}

// Repeat returns a behavior that fills every read with the given word pattern.
func Repeat(words ...[2]byte) ReadBehaviorFunc {
	return func(ctx context.Context, buffer []byte) error {
		if len(words) == 0 {
			return nil
		}
		for i := 0; i+1 < len(buffer); i += 2 {
			w := words[(i/2)%len(words)]
			buffer[i], buffer[i+1] = w[0], w[1]
		}
		return nil
	}
}
