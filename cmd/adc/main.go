package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	chlog "github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/urfave/cli/v2"

	"github.com/mklimuk/adcreader/cmd/adc/console"
	"github.com/mklimuk/adcreader/config"
)

var version string
var commit string
var date string

const metaConfig = "config"

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	app := newApp()
	err := app.Run(args)
	if err != nil {
		console.Errorf("%s", err)
		var exerr cli.ExitCoder
		if errors.As(err, &exerr) {
			return exerr.ExitCode()
		}
		return 1
	}
	return 0
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "adc"
	app.EnableBashCompletion = true
	app.Version = fmt.Sprintf("%s-%s-%s", version, date, commit)
	app.Usage = "convert raw ADC words into signed samples"
	// exit codes are returned from run instead of calling os.Exit
	app.ExitErrHandler = func(*cli.Context, error) {}
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "enable verbose logging",
		},
		&cli.PathFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML configuration file",
			EnvVars: []string{"ADC_CONFIG"},
		},
	}
	app.Before = func(c *cli.Context) error {
		charm := chlog.NewWithOptions(os.Stderr, chlog.Options{
			ReportCaller:    true,
			ReportTimestamp: true,
			TimeFormat:      time.DateTime,
		})
		charm.SetColorProfile(termenv.TrueColor)
		charm.SetLevel(chlog.InfoLevel)
		if c.Bool("verbose") {
			charm.SetLevel(chlog.DebugLevel)
			console.Trace = true
		}
		slog.SetDefault(slog.New(charm))

		cfg := config.Default()
		if path := c.Path("config"); path != "" {
			var err error
			cfg, err = config.Load(path)
			if err != nil {
				return console.Exit(1, "configuration error: %s", console.Red(err))
			}
			slog.Debug("configuration loaded", "path", path, "bits", cfg.Format.Bits)
		}
		if c.App.Metadata == nil {
			c.App.Metadata = map[string]interface{}{}
		}
		c.App.Metadata[metaConfig] = cfg
		return nil
	}
	app.Commands = cli.Commands{
		&convertCmd,
		&encodeCmd,
		&decodeCmd,
		&shellCmd,
	}
	return app
}

func configFrom(c *cli.Context) config.Config {
	if cfg, ok := c.App.Metadata[metaConfig].(config.Config); ok {
		return cfg
	}
	return config.Default()
}
