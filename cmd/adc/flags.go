package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"periph.io/x/conn/v3/physic"

	"github.com/mklimuk/adcreader/adc"
)

func bitsFlag() cli.Flag {
	return &cli.UintFlag{
		Name:    "bits",
		Aliases: []string{"b"},
		Usage:   "significant bits per sample (2-16), overrides config",
	}
}

func vrefFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "vref",
		Usage: "reference voltage for voltage output, e.g. 3.3V",
	}
}

func sampleFormat(c *cli.Context) (adc.Format, error) {
	if !c.IsSet("bits") {
		return configFrom(c).SampleFormat()
	}
	bits := c.Uint("bits")
	if bits > 16 {
		return adc.Format{}, fmt.Errorf("%w: %d bits (expected 2-16)", adc.ErrUnsupportedBits, bits)
	}
	return adc.NewFormat(uint8(bits))
}

func reference(c *cli.Context) (physic.ElectricPotential, error) {
	if !c.IsSet("vref") {
		return configFrom(c).Reference()
	}
	var v physic.ElectricPotential
	if err := v.Set(c.String("vref")); err != nil {
		return 0, fmt.Errorf("could not parse vref: %w", err)
	}
	return v, nil
}

// parseWord accepts a raw word as hex, with or without a 0x prefix.
func parseWord(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid word %q: %w", s, err)
	}
	return uint16(v), nil
}
