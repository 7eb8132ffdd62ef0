// Package tab is the tab command line tool.
package tab

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"go.minekube.com/tab/pkg/tab/config"
)

// Execute runs App and exits on error.
func Execute() {
	if err := App().Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

const configKey = "config"

// App returns the tab cli application.
func App() *cli.App {
	app := cli.NewApp()
	app.Name = "tab"
	app.Metadata = map[string]any{}
	app.Usage = "Translate player list, boss bar and scoreboard packets between Minecraft versions."
	app.Description = `Builds the wire packets a client of a given Minecraft version expects from
version independent packet descriptions and reads them back.

Text may contain legacy colour codes (§c) and RGB markup (#RRGGBB, &#RRGGBB,
{#RRGGBB}, <#RRGGBB>, §x§R§R§G§G§B§B and <#RRGGBB>gradients</#RRGGBB>).

Configuration is read from tab.yml and TAB_ prefixed environment variables.`

	var (
		configFile string
		debug      bool
		verbosity  int
	)
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       `config file (default: ./tab.yml)`,
			EnvVars:     []string{"TAB_CONFIG"},
			Destination: &configFile,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Aliases:     []string{"d"},
			Usage:       "Enable debug mode and highest log verbosity",
			Destination: &debug,
		},
		&cli.IntFlag{
			Name:        "verbosity",
			Aliases:     []string{"v"},
			Usage:       "The higher the verbosity the more logs are shown",
			Destination: &verbosity,
		},
	}
	app.Before = func(c *cli.Context) error {
		cfg, err := config.Load(viper.New(), configFile)
		if err != nil {
			return cli.Exit(err, 1)
		}
		if c.IsSet("debug") {
			cfg.Debug = debug
		}
		if c.IsSet("verbosity") {
			cfg.Verbosity = verbosity
		}

		log, err := newLogger(cfg.Debug, cfg.Verbosity)
		if err != nil {
			return cli.Exit(fmt.Errorf("error creating zap logger: %w", err), 1)
		}
		c.Context = logr.NewContext(c.Context, log)

		warns, errs := cfg.Validate()
		for _, w := range warns {
			log.V(1).Info("config validation warn", "warn", w.Error())
		}
		if len(errs) != 0 {
			for _, e := range errs {
				log.Info("config validation error", "error", e.Error())
			}
			return cli.Exit(errors.New("invalid config"), 1)
		}
		c.App.Metadata[configKey] = cfg
		return nil
	}
	app.Commands = []*cli.Command{
		versionsCommand(),
		cutCommand(),
		previewCommand(),
		buildCommand(),
		readCommand(),
		configCommand(),
	}
	return app
}

func configOf(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[configKey].(*config.Config); ok {
		return cfg
	}
	cfg := config.DefaultConfig
	return &cfg
}

// newLogger returns a new zap logger with a modified production
// or development default config to ensure human readability.
func newLogger(debug bool, v int) (l logr.Logger, err error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-v))
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-1))
	}

	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard(), err
	}
	return zapr.NewLogger(zl), nil
}
