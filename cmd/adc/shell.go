package main

import (
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/urfave/cli/v2"

	"github.com/mklimuk/adcreader/cmd/adc/console"
)

var shellCmd = cli.Command{
	Name:  "shell",
	Usage: "convert words interactively",
	Flags: []cli.Flag{
		bitsFlag(),
		vrefFlag(),
	},
	Action: func(c *cli.Context) error {
		format, err := sampleFormat(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		vref, err := reference(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		rl, err := readline.New(format.String() + "> ")
		if err != nil {
			return console.Exit(1, "could not start shell: %s", console.Red(err))
		}
		defer func() { _ = rl.Close() }()
		console.Printf("%s\n", console.Faint("enter hex words separated by spaces, ctrl-d to quit"))
		for {
			line, err := rl.Readline()
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return console.Exit(1, "%s", console.Red(err))
			}
			for _, field := range strings.Fields(line) {
				raw, err := parseWord(field)
				if err != nil {
					console.Errorf("%s", err)
					continue
				}
				printSample(format, raw, vref)
			}
		}
	},
}
