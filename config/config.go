package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/physic"

	"github.com/mklimuk/adcreader/adc"
)

// Version is injected at build time.
var Version = "latest"

const (
	OutputText = "text"
	OutputYAML = "yaml"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Format struct {
	Bits uint8 `yaml:"bits"`
}

type Frame struct {
	Samples int `yaml:"samples"`
}

type Config struct {
	Format Format `yaml:"format"`
	// Vref uses physic notation, e.g. "3.3V" or "2048mV". Empty disables
	// voltage output.
	Vref   string `yaml:"vref,omitempty"`
	Frame  Frame  `yaml:"frame"`
	Output string `yaml:"output"`
}

func Default() Config {
	return Config{
		Format: Format{Bits: adc.DefaultFormat.Bits},
		Frame:  Frame{Samples: 1000},
		Output: OutputText,
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not read config file: %w", err)
	}
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("could not parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := c.SampleFormat(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Reference(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Frame.Samples <= 0 {
		return fmt.Errorf("%w: frame samples must be positive, got %d", ErrInvalidConfig, c.Frame.Samples)
	}
	switch c.Output {
	case OutputText, OutputYAML:
	default:
		return fmt.Errorf("%w: unknown output %q", ErrInvalidConfig, c.Output)
	}
	return nil
}

func (c Config) SampleFormat() (adc.Format, error) {
	return adc.NewFormat(c.Format.Bits)
}

// Reference returns the parsed vref, or 0 when none is configured.
func (c Config) Reference() (physic.ElectricPotential, error) {
	var v physic.ElectricPotential
	if c.Vref == "" {
		return 0, nil
	}
	if err := v.Set(c.Vref); err != nil {
		return 0, fmt.Errorf("could not parse vref %q: %w", c.Vref, err)
	}
	return v, nil
}
