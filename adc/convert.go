// Package adc converts raw ADC words into signed samples.
//
// The ADC delivers every sample as a 16-bit word, most significant byte
// first. The low bits of that word carry a two's complement value whose width
// is given by a Format; the anemometer front-end uses 12 bits, so
//
//	ConvertFromADCFormat(0x07, 0xD0) == 2000
//	ConvertFromADCFormat(0x08, 0x30) == -2000
//
// Conversion never fails, never scales and never clamps.
package adc

import (
	"encoding/binary"
	"fmt"
)

var ErrOddLength = fmt.Errorf("frame length is not a whole number of words")

// Word assembles a raw word from its bytes in wire order.
func Word(msb, lsb byte) uint16 {
	return uint16(msb)<<8 | uint16(lsb)
}

// FromNativeWord recovers the wire word from a value that was loaded from
// memory in host byte order while the bytes in memory were big-endian. On
// little-endian hosts this swaps the bytes, on big-endian hosts it is a no-op.
func FromNativeWord(w uint16) uint16 {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], w)
	return binary.BigEndian.Uint16(b[:])
}

// ConvertFromADCFormat converts one word using DefaultFormat.
func ConvertFromADCFormat(msb, lsb byte) int16 {
	return DefaultFormat.Convert(Word(msb, lsb))
}

// DecodeFrame converts big-endian words from src into dst and returns the
// number of samples written, which is the smaller of len(dst) and len(src)/2.
func (f Format) DecodeFrame(dst []int16, src []byte) (int, error) {
	if len(src)%2 != 0 {
		return 0, fmt.Errorf("%w: %d bytes", ErrOddLength, len(src))
	}
	n := min(len(dst), len(src)/2)
	for i := 0; i < n; i++ {
		dst[i] = f.Convert(binary.BigEndian.Uint16(src[2*i:]))
	}
	return n, nil
}

// EncodeFrame writes src into dst as big-endian words. It stops at the first
// value outside the format range.
func (f Format) EncodeFrame(dst []byte, src []int16) (int, error) {
	n := min(len(dst)/2, len(src))
	for i := 0; i < n; i++ {
		w, err := f.Encode(src[i])
		if err != nil {
			return i, fmt.Errorf("sample %d: %w", i, err)
		}
		binary.BigEndian.PutUint16(dst[2*i:], w)
	}
	return n, nil
}
