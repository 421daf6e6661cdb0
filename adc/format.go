package adc

import (
	"encoding/binary"
	"fmt"

	"periph.io/x/conn/v3/physic"
)

var ErrUnsupportedBits = fmt.Errorf("unsupported sample width")
var ErrOutOfRange = fmt.Errorf("value out of range for sample width")

// Format describes how a signed sample sits in a 16-bit ADC word: the low Bits
// bits hold a two's complement value, anything above them is ignored.
type Format struct {
	Bits uint8
}

var (
	// Format12 is the format of the anemometer front-end ADC.
	Format12 = Format{Bits: 12}
	Format16 = Format{Bits: 16}
)

// DefaultFormat is used by ConvertFromADCFormat and by readers created
// without WithFormat.
var DefaultFormat = Format12

func NewFormat(bits uint8) (Format, error) {
	f := Format{Bits: bits}
	if err := f.Validate(); err != nil {
		return Format{}, err
	}
	return f, nil
}

func (f Format) Validate() error {
	if f.Bits < 2 || f.Bits > 16 {
		return fmt.Errorf("%w: %d bits (expected 2-16)", ErrUnsupportedBits, f.Bits)
	}
	return nil
}

func (f Format) String() string {
	return fmt.Sprintf("s%d", f.Bits)
}

func (f Format) mask() uint16 {
	return uint16(uint32(1)<<f.Bits - 1)
}

func (f Format) Min() int16 {
	return int16(-(int32(1) << (f.Bits - 1)))
}

func (f Format) Max() int16 {
	return int16(int32(1)<<(f.Bits-1) - 1)
}

// Convert interprets raw as a two's complement value of f.Bits bits and
// sign-extends it to int16. It is defined for every raw value.
func (f Format) Convert(raw uint16) int16 {
	v := raw & f.mask()
	sign := uint16(1) << (f.Bits - 1)
	// (v ^ sign) - sign sign-extends from the top significant bit
	return int16((v ^ sign) - sign)
}

// Encode is the inverse of Convert for values inside [Min, Max].
func (f Format) Encode(v int16) (uint16, error) {
	if v < f.Min() || v > f.Max() {
		return 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, v, f.Min(), f.Max())
	}
	return uint16(v) & f.mask(), nil
}

// Decode converts a word given as its two bytes, most significant first.
func (f Format) Decode(b [2]byte) int16 {
	return f.Convert(binary.BigEndian.Uint16(b[:]))
}

// Voltage expresses a sample as a potential against a bipolar full scale of
// ±vref. f must be valid.
func (f Format) Voltage(sample int16, vref physic.ElectricPotential) physic.ElectricPotential {
	return physic.ElectricPotential(int64(sample) * int64(vref) / (int64(1) << (f.Bits - 1)))
}
