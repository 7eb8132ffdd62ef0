package tab

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/urfave/cli/v2"

	jpacket "go.minekube.com/tab/pkg/edition/java/proto/packet"
	"go.minekube.com/tab/pkg/edition/java/proto/packet/scoreboard"
	"go.minekube.com/tab/pkg/edition/java/proto/packet/tablist/playerinfo"
	"go.minekube.com/tab/pkg/edition/java/proto/version"
	"go.minekube.com/tab/pkg/proto"
	"go.minekube.com/tab/pkg/tab/packet"
	"go.minekube.com/tab/pkg/tab/translator"
	"go.minekube.com/tab/pkg/util/errs"
)

// hexConn records the hex encoded packets written to it.
type hexConn struct {
	protocol proto.Protocol
	lines    []string
}

func (c *hexConn) Protocol() proto.Protocol { return c.protocol }

func (c *hexConn) WritePacket(p proto.Packet) error {
	data, err := proto.Marshal(c.context(), p)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", proto.TypeOf(p).Name(), err)
	}
	c.lines = append(c.lines, fmt.Sprintf("%s %s", proto.TypeOf(p).Name(), hex.EncodeToString(data)))
	return nil
}

func (c *hexConn) context() *proto.PacketContext {
	return &proto.PacketContext{Direction: proto.ClientBound, Protocol: c.protocol}
}

func newTranslator(c *cli.Context) (*translator.Translator, error) {
	t, err := translator.New(translator.Options{Concurrency: configOf(c).Broadcast.Concurrency})
	if err != nil {
		return nil, cli.Exit(err, 1)
	}
	return t, nil
}

func buildCommand() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "Build the wire packets of a YAML packet description",
		Description: `Reads a packet description and prints the wire packet of every given version
as packet type and hex encoded packet data, e.g.

	kind: boss_bar
	id: 5b1c7d8e-2b0f-4a65-9a49-7a3cf3c5d1f1
	action: add
	title: <#FF0000>Dragon</#FFAA00>
	progress: 0.5
	color: red

Versions that can not show the packet are reported as unsupported.
Packet kinds: ` + kindList(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Packet description file, - for stdin",
				Value:   "-",
			},
			&cli.StringSliceFlag{
				Name:    "version",
				Aliases: []string{"m"},
				Usage:   "Minecraft versions or protocol numbers (default: config version)",
			},
		},
		Action: func(c *cli.Context) error {
			data, err := readInput(c, c.String("file"))
			if err != nil {
				return cli.Exit(err, 1)
			}
			p, err := packet.UnmarshalYAML(data)
			if err != nil {
				return cli.Exit(err, 1)
			}

			names := c.StringSlice("version")
			if len(names) == 0 {
				names = []string{configOf(c).Version}
			}
			var (
				conns []translator.Conn
				hexes []*hexConn
			)
			for _, name := range names {
				v, err := version.Parse(name)
				if err != nil {
					return cli.Exit(err, 1)
				}
				hc := &hexConn{protocol: v.Protocol}
				conns = append(conns, hc)
				hexes = append(hexes, hc)
			}

			t, err := newTranslator(c)
			if err != nil {
				return err
			}
			if err = t.Broadcast(c.Context, conns, p); err != nil {
				return cli.Exit(err, 1)
			}
			for _, hc := range hexes {
				_, _ = fmt.Fprintf(c.App.Writer, "# %s\n", version.Protocol(hc.protocol))
				if len(hc.lines) == 0 {
					_, _ = fmt.Fprintln(c.App.Writer, "unsupported")
					continue
				}
				for _, l := range hc.lines {
					_, _ = fmt.Fprintln(c.App.Writer, l)
				}
			}
			logr.FromContextOrDiscard(c.Context).V(1).Info("built packets", "stats", t.Stats())
			return nil
		},
	}
}

func kindList() string {
	names := make([]string, 0, len(packet.Kinds()))
	for _, k := range packet.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}

func readInput(c *cli.Context, file string) ([]byte, error) {
	if file == "-" {
		r := c.App.Reader
		if r == nil {
			r = os.Stdin
		}
		return io.ReadAll(r)
	}
	return os.ReadFile(file)
}

func readCommand() *cli.Command {
	return &cli.Command{
		Name:      "read",
		Usage:     "Read hex encoded wire packets into a YAML packet description",
		ArgsUsage: "<hex>...",
		Description: `Decodes the packet data of a player list, objective or display objective packet
sent to a client of the given version. Player list changes of 1.7 clients are
sent as one packet per entry and may be given as several arguments.`,
		Flags: []cli.Flag{
			versionFlag(),
			&cli.StringFlag{
				Name:     "kind",
				Aliases:  []string{"k"},
				Usage:    "Packet kind: player_info, objective or display_objective",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "remove",
				Usage: "The player list packet is a remove packet (1.19.3+)",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("expected hex encoded packet data", 1)
			}
			var kind packet.Kind
			if err := kind.UnmarshalText([]byte(c.String("kind"))); err != nil {
				return cli.Exit(err, 1)
			}
			protocol, err := protocolOf(c)
			if err != nil {
				return err
			}
			conn := &hexConn{protocol: protocol}

			var batch proto.Batch
			for _, arg := range c.Args().Slice() {
				data, err := hex.DecodeString(strings.TrimSpace(arg))
				if err != nil {
					return cli.Exit(fmt.Errorf("invalid hex: %w", err), 1)
				}
				wire, err := wirePacket(kind, protocol, c.Bool("remove"))
				if err != nil {
					return cli.Exit(err, 1)
				}
				if err = proto.Unmarshal(conn.context(), data, wire); err != nil {
					return cli.Exit(fmt.Errorf("error decoding %s: %w", proto.TypeOf(wire).Name(), err), 1)
				}
				batch = append(batch, wire)
			}
			var wire proto.Packet = batch
			if len(batch) == 1 {
				wire = batch[0]
			}

			t, err := newTranslator(c)
			if err != nil {
				return err
			}
			var p packet.Packet
			switch kind {
			case packet.KindPlayerInfo:
				p, err = t.ReadPlayerInfo(c.Context, conn, wire)
			case packet.KindObjective:
				p, err = t.ReadObjective(c.Context, conn, wire)
			case packet.KindDisplayObjective:
				p, err = t.ReadDisplayObjective(c.Context, conn, wire)
			}
			if errs.IsSilent(err) {
				// details are in the debug log
				return cli.Exit("malformed packet, run with -v 1 for details", 1)
			}
			if err != nil {
				return cli.Exit(err, 1)
			}
			out, err := packet.MarshalYAML(p)
			if err != nil {
				return cli.Exit(err, 1)
			}
			_, err = c.App.Writer.Write(out)
			return err
		},
	}
}

// wirePacket returns a new wire packet of the kind for the protocol to decode into.
func wirePacket(k packet.Kind, protocol proto.Protocol, remove bool) (proto.Packet, error) {
	switch k {
	case packet.KindPlayerInfo:
		switch {
		case protocol.Lower(version.Minecraft_1_8):
			return &jpacket.LegacyPlayerListItem{}, nil
		case protocol.Lower(version.Minecraft_1_19_3):
			return &jpacket.PlayerListItem{}, nil
		case remove:
			return &playerinfo.Remove{}, nil
		}
		return &playerinfo.Upsert{}, nil
	case packet.KindObjective:
		return &scoreboard.Objective{}, nil
	case packet.KindDisplayObjective:
		return &scoreboard.DisplayObjective{}, nil
	}
	return nil, fmt.Errorf("packets of kind %s can not be read", k)
}
