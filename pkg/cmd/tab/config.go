package tab

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"go.minekube.com/tab/pkg/tab/config"
)

func configCommand() *cli.Command {
	return &cli.Command{
		Name:      "config",
		Usage:     "Print the default tab.yml",
		ArgsUsage: "[file]",
		Description: `Prints the default configuration. Given a file argument, or the --write flag
for ./tab.yml, the configuration is written there instead. Existing files are
only replaced with --force.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write to " + config.DefaultFile,
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Replace an existing file",
			},
		},
		Action: func(c *cli.Context) error {
			file := c.Args().First()
			if file == "" && c.Bool("write") {
				file = config.DefaultFile
			}
			if file == "" {
				_, err := c.App.Writer.Write(config.DefaultConfigBytes)
				return err
			}

			flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
			if !c.Bool("force") {
				flag |= os.O_EXCL
			}
			f, err := os.OpenFile(file, flag, 0o644)
			if err != nil {
				return cli.Exit(fmt.Errorf("config: %w", err), 1)
			}
			if _, err = f.Write(config.DefaultConfigBytes); err != nil {
				_ = f.Close()
				return cli.Exit(fmt.Errorf("config: %w", err), 1)
			}
			if err = f.Close(); err != nil {
				return cli.Exit(fmt.Errorf("config: %w", err), 1)
			}
			_, _ = fmt.Fprintln(c.App.Writer, "wrote", file)
			return nil
		},
	}
}
