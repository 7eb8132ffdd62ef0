package tab

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"go.minekube.com/tab/internal/util/console"
	"go.minekube.com/tab/pkg/edition/java/proto/util"
	"go.minekube.com/tab/pkg/edition/java/proto/version"
	"go.minekube.com/tab/pkg/proto"
	"go.minekube.com/tab/pkg/tab/text"
	"go.minekube.com/tab/pkg/util/componentutil"
)

func versionFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "version",
		Aliases: []string{"m"},
		Usage:   "Minecraft version or protocol number (default: config version)",
	}
}

// protocolOf resolves the version flag of the command.
func protocolOf(c *cli.Context) (proto.Protocol, error) {
	if name := c.String("version"); name != "" {
		v, err := version.Parse(name)
		if err != nil {
			return 0, cli.Exit(err, 1)
		}
		return v.Protocol, nil
	}
	p, err := configOf(c).Protocol()
	if err != nil {
		return 0, cli.Exit(err, 1)
	}
	return p, nil
}

func versionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "versions",
		Usage: "List the supported Minecraft versions and their text capabilities",
		Action: func(c *cli.Context) error {
			table := tablewriter.NewWriter(c.App.Writer)
			table.SetHeader([]string{"Protocol", "Versions", "Rich text", "RGB", "Components", "Player list"})
			for _, v := range version.SupportedVersions {
				table.Append([]string{
					strconv.Itoa(int(v.Protocol)),
					strings.Join(v.Names, ", "),
					yesNo(version.Protocol(v.Protocol).Minor() >= text.StructuredMinor),
					yesNo(v.Protocol.GreaterEqual(version.Minecraft_1_16)),
					componentFormat(v.Protocol),
					playerListLayout(v.Protocol),
				})
			}
			table.Render()
			return nil
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func componentFormat(p proto.Protocol) string {
	if p.GreaterEqual(version.Minecraft_1_20_3) {
		return "nbt"
	}
	return "json"
}

func playerListLayout(p proto.Protocol) string {
	switch {
	case p.Lower(version.Minecraft_1_8):
		return "legacy item"
	case p.Lower(version.Minecraft_1_19_3):
		return "list item"
	}
	return "upsert/remove"
}

func cutCommand() *cli.Command {
	return &cli.Command{
		Name:      "cut",
		Usage:     "Cut text to the length limit of a field",
		ArgsUsage: "<text>",
		Description: `Prints the text as sent in a length limited legacy field.
With --structured the field is treated as rich text field that is only
limited for clients before 1.13, the result is printed as JSON component then.`,
		Flags: []cli.Flag{
			versionFlag(),
			&cli.IntFlag{
				Name:  "max",
				Usage: "Maximum length in UTF-16 units",
				Value: 16,
			},
			&cli.BoolFlag{
				Name:  "structured",
				Usage: "Use rich text for clients that support it",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one text argument", 1)
			}
			s, maxLen := c.Args().First(), c.Int("max")
			if maxLen < 0 {
				return cli.Exit("max must not be negative", 1)
			}
			if !c.Bool("structured") {
				_, err := fmt.Fprintln(c.App.Writer, text.CutTo(s, maxLen))
				return err
			}
			protocol, err := protocolOf(c)
			if err != nil {
				return err
			}
			payload := text.StructuredOrCut(s, protocol, maxLen)
			if !payload.IsRich() {
				_, err = fmt.Fprintln(c.App.Writer, payload.Legacy)
				return err
			}
			j, err := util.Marshal(protocol, payload.Rich)
			if err != nil {
				return cli.Exit(err, 1)
			}
			_, err = fmt.Fprintln(c.App.Writer, string(j))
			return err
		},
	}
}

func previewCommand() *cli.Command {
	return &cli.Command{
		Name:      "preview",
		Usage:     "Preview text in the terminal as a client of a version shows it",
		ArgsUsage: "<text or JSON component>",
		Flags: []cli.Flag{
			versionFlag(),
			&cli.BoolFlag{
				Name:  "plain",
				Usage: "Print the text content without formatting",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one text argument", 1)
			}
			protocol, err := protocolOf(c)
			if err != nil {
				return err
			}
			comp, err := componentutil.ParseTextComponent(c.Args().First(), protocol)
			if err != nil {
				return cli.Exit(fmt.Errorf("error parsing component: %w", err), 1)
			}
			if protocol.Lower(version.Minecraft_1_16) {
				comp = text.Downsample(comp)
			}
			out := console.Ansi(comp)
			if c.Bool("plain") {
				out = text.Plain(comp)
			}
			_, err = fmt.Fprintln(c.App.Writer, out)
			return err
		},
	}
}
