package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/physic"

	"github.com/mklimuk/adcreader"
	"github.com/mklimuk/adcreader/adc"
	"github.com/mklimuk/adcreader/capture"
	"github.com/mklimuk/adcreader/cmd/adc/console"
	"github.com/mklimuk/adcreader/config"
)

var decodeCmd = cli.Command{
	Name:    "decode",
	Aliases: []string{"dec"},
	Usage:   "decode a capture file of raw big-endian words",
	Flags: []cli.Flag{
		&cli.PathFlag{
			Name:     "file",
			Aliases:  []string{"f"},
			Usage:    "capture file",
			Required: true,
		},
		bitsFlag(),
		vrefFlag(),
		&cli.IntFlag{
			Name:    "samples",
			Aliases: []string{"n"},
			Usage:   "samples per frame, overrides config",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "text or yaml, overrides config",
		},
		&cli.PathFlag{
			Name:  "out",
			Usage: "write result to a file instead of stdout",
		},
		&cli.BoolFlag{
			Name:  "force",
			Usage: "overwrite --out without asking",
		},
	},
	Action: func(c *cli.Context) error {
		cfg := configFrom(c)
		if c.IsSet("samples") {
			cfg.Frame.Samples = c.Int("samples")
		}
		if c.IsSet("output") {
			cfg.Output = c.String("output")
		}
		if err := cfg.Validate(); err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		format, err := sampleFormat(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		vref, err := reference(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}

		src, err := capture.Open(c.Path("file"))
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		defer func() {
			if err := src.Close(); err != nil {
				console.Errorf("error closing capture: %s", console.Red(err))
			}
		}()

		w := console.Writer()
		if out := c.Path("out"); out != "" {
			f, err := createOutput(out, c.Bool("force"))
			if err != nil {
				return console.Exit(1, "%s", console.Red(err))
			}
			if f == nil {
				console.Infof("nothing written")
				return nil
			}
			defer func() {
				if err := f.Close(); err != nil {
					console.Errorf("error closing output: %s", console.Red(err))
				}
			}()
			w = f
		}

		ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt)
		defer cancel()
		frames, err := decodeFrames(ctx, adc.NewReader(src, adc.WithFormat(format)), cfg.Frame.Samples)
		if err != nil {
			if !errors.Is(err, adcreader.ErrShortRead) || len(frames) == 0 {
				return console.Exit(1, "decoding failed: %s", console.Red(err))
			}
			console.Warnf("capture ends with an incomplete frame, dropped: %s", err)
		}
		slog.Debug("capture decoded", "frames", len(frames), "format", format)

		if cfg.Output == config.OutputYAML {
			err = writeYAML(w, format, vref, frames)
		} else {
			err = writeText(w, format, vref, frames)
		}
		if err != nil {
			return console.Exit(1, "encoding error: %s", console.Red(err))
		}
		return nil
	},
}

// decodeFrames reads frames until the capture is exhausted. Frames read
// before an error are returned along with it.
func decodeFrames(ctx context.Context, r *adc.Reader, samples int) ([][]int16, error) {
	var frames [][]int16
	for {
		frame := make([]int16, samples)
		err := r.GetFrame(ctx, frame)
		if errors.Is(err, io.EOF) {
			return frames, nil
		}
		if err != nil {
			return frames, err
		}
		console.Debugf("frame %d: %d samples", len(frames), len(frame))
		frames = append(frames, frame)
	}
}

// createOutput returns nil, nil when the user declined to overwrite.
func createOutput(path string, force bool) (*os.File, error) {
	if _, err := os.Stat(path); err == nil && !force {
		answer, err := console.YesOrNo(fmt.Sprintf("%s exists, overwrite?", path), console.No)
		if err != nil {
			return nil, err
		}
		if answer != console.Yes {
			return nil, nil
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("could not create output: %w", err)
	}
	return f, nil
}

type frameDoc struct {
	Index   int       `yaml:"index"`
	Samples []int16   `yaml:"samples,flow"`
	Volts   []float64 `yaml:"volts,flow,omitempty"`
}

type captureDoc struct {
	Format string     `yaml:"format"`
	Vref   string     `yaml:"vref,omitempty"`
	Frames []frameDoc `yaml:"frames"`
}

func writeYAML(w io.Writer, format adc.Format, vref physic.ElectricPotential, frames [][]int16) error {
	doc := captureDoc{Format: format.String()}
	if vref != 0 {
		doc.Vref = vref.String()
	}
	for i, frame := range frames {
		fd := frameDoc{Index: i, Samples: frame}
		if vref != 0 {
			fd.Volts = make([]float64, len(frame))
			for j, s := range frame {
				fd.Volts[j] = float64(format.Voltage(s, vref)) / float64(physic.Volt)
			}
		}
		doc.Frames = append(doc.Frames, fd)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func writeText(w io.Writer, format adc.Format, vref physic.ElectricPotential, frames [][]int16) error {
	for i, frame := range frames {
		for j, s := range frame {
			var err error
			if vref == 0 {
				_, err = fmt.Fprintf(w, "%d\t%d\t%d\n", i, j, s)
			} else {
				_, err = fmt.Fprintf(w, "%d\t%d\t%d\t%s\n", i, j, s, format.Voltage(s, vref))
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
