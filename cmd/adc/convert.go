package main

import (
	"github.com/urfave/cli/v2"
	"periph.io/x/conn/v3/physic"

	"github.com/mklimuk/adcreader/adc"
	"github.com/mklimuk/adcreader/cmd/adc/console"
)

var convertCmd = cli.Command{
	Name:      "convert",
	Aliases:   []string{"cv"},
	Usage:     "convert raw hex words to samples",
	ArgsUsage: "WORD...",
	Flags: []cli.Flag{
		bitsFlag(),
		vrefFlag(),
	},
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return console.Exit(1, "expected at least 1 word")
		}
		format, err := sampleFormat(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		vref, err := reference(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		for _, arg := range c.Args().Slice() {
			raw, err := parseWord(arg)
			if err != nil {
				return console.Exit(1, "%s", console.Red(err))
			}
			printSample(format, raw, vref)
		}
		return nil
	},
}

func printSample(format adc.Format, raw uint16, vref physic.ElectricPotential) {
	sample := format.Convert(raw)
	if vref == 0 {
		console.Printf("%#04x %s %s\n", raw, console.PictoWave, console.Signed(sample))
		return
	}
	console.Printf("%#04x %s %s %s %s\n", raw, console.PictoWave, console.Signed(sample),
		console.PictoBolt, console.White(format.Voltage(sample, vref)))
}
