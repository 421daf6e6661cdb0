package adc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/physic"
)

func TestNewFormat(t *testing.T) {
	for bits := uint8(2); bits <= 16; bits++ {
		f, err := NewFormat(bits)
		require.NoError(t, err)
		assert.Equal(t, bits, f.Bits)
	}
	for _, bits := range []uint8{0, 1, 17, 32} {
		_, err := NewFormat(bits)
		assert.ErrorIs(t, err, ErrUnsupportedBits, "bits=%d", bits)
	}
}

func TestFormat_Bounds(t *testing.T) {
	tests := []struct {
		format Format
		min    int16
		max    int16
	}{
		{Format{Bits: 2}, -2, 1},
		{Format{Bits: 8}, -128, 127},
		{Format12, -2048, 2047},
		{Format16, -32768, 32767},
	}
	for _, test := range tests {
		t.Run(test.format.String(), func(t *testing.T) {
			assert.Equal(t, test.min, test.format.Min())
			assert.Equal(t, test.max, test.format.Max())
		})
	}
}

func TestFormat_Convert(t *testing.T) {
	tests := []struct {
		format   Format
		given    uint16
		expected int16
	}{
		{Format12, 0x0000, 0},
		{Format12, 0x07D0, 2000},
		{Format12, 0x0830, -2000},
		{Format12, 0x07FF, 2047},
		{Format12, 0x0800, -2048},
		{Format12, 0x0FFF, -1},
		// bits above the sample width are ignored
		{Format12, 0xF830, -2000},
		{Format12, 0xA7D0, 2000},
		{Format16, 0xF830, -2000},
		{Format16, 0x0830, 2096},
		{Format16, 0x7FFF, 32767},
		{Format16, 0x8000, -32768},
		{Format16, 0xFFFF, -1},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%s/%04x", test.format, test.given), func(t *testing.T) {
			assert.Equal(t, test.expected, test.format.Convert(test.given))
		})
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	for bits := uint8(2); bits <= 16; bits++ {
		f := Format{Bits: bits}
		for v := int32(f.Min()); v <= int32(f.Max()); v++ {
			raw, err := f.Encode(int16(v))
			if err != nil {
				t.Fatalf("%s: encode %d: %v", f, v, err)
			}
			var b [2]byte
			b[0], b[1] = byte(raw>>8), byte(raw)
			if got := f.Decode(b); got != int16(v) {
				t.Fatalf("%s: %d encoded as %#04x decoded as %d", f, v, raw, got)
			}
		}
	}
}

func TestFormat_Encode(t *testing.T) {
	raw, err := Format12.Encode(-2000)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0830), raw)

	raw, err = Format16.Encode(-2000)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xF830), raw)

	_, err = Format12.Encode(2048)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = Format12.Encode(-2049)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestFormat_Voltage(t *testing.T) {
	vref := 2048 * physic.MilliVolt
	assert.Equal(t, 2000*physic.MilliVolt, Format12.Voltage(2000, vref))
	assert.Equal(t, -2000*physic.MilliVolt, Format12.Voltage(-2000, vref))
	assert.Equal(t, -vref, Format12.Voltage(Format12.Min(), vref))
	assert.Equal(t, physic.ElectricPotential(0), Format16.Voltage(0, vref))
}
