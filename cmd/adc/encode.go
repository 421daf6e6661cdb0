package main

import (
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/adcreader/cmd/adc/console"
)

var encodeCmd = cli.Command{
	Name:      "encode",
	Aliases:   []string{"enc"},
	Usage:     "encode signed samples as raw hex words",
	ArgsUsage: "[--] VALUE... (use -- before negative values)",
	Flags: []cli.Flag{
		bitsFlag(),
	},
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return console.Exit(1, "expected at least 1 value")
		}
		format, err := sampleFormat(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		for _, arg := range c.Args().Slice() {
			v, err := strconv.ParseInt(arg, 10, 16)
			if err != nil {
				return console.Exit(1, "invalid value %q: %s", arg, console.Red(err))
			}
			raw, err := format.Encode(int16(v))
			if err != nil {
				return console.Exit(1, "%s", console.Red(err))
			}
			console.Printf("%s %s %04X\n", console.Signed(int16(v)), console.PictoWave, raw)
		}
		return nil
	},
}
