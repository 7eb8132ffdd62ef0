package scoreboard

import (
	"fmt"
	"io"

	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/tab/pkg/edition/java/proto/util"
	"go.minekube.com/tab/pkg/edition/java/proto/version"
	"go.minekube.com/tab/pkg/proto"
)

// TeamMode is the action of a Team packet.
type TeamMode byte

const (
	CreateTeam TeamMode = iota
	RemoveTeam
	UpdateTeam
	AddTeamPlayers
	RemoveTeamPlayers
)

// Friendly flags
const (
	AllowFriendlyFire        byte = 0x01
	CanSeeFriendlyInvisibles byte = 0x02
)

// Team colors
const (
	NoTeamColor    = -1 // before 1.13
	ResetTeamColor = 21 // 1.13+
)

// Limits of legacy team fields before 1.13.
const (
	MaxLegacyTeamDisplayName = 32
	MaxLegacyTeamAffix       = 16
)

// Name tag visibility and collision rule names. Since 1.21.5 they are sent as their index.
var (
	NameTagVisibilities = []string{"always", "never", "hideForOtherTeams", "hideForOwnTeam"}
	CollisionRules      = []string{"always", "never", "pushOtherTeams", "pushOwnTeam"}
)

// Team creates, removes or updates a scoreboard team.
type Team struct {
	Name string
	Mode TeamMode

	// Legacy formatted strings, before 1.13.
	DisplayName string
	Prefix      string
	Suffix      string
	// Chat components, 1.13+.
	DisplayNameComponent component.Component
	PrefixComponent      component.Component
	SuffixComponent      component.Component

	FriendlyFlags     byte
	NameTagVisibility string // 1.8+
	CollisionRule     string // 1.9+
	Color             int    // 1.8+
	Players           []string
}

// HasInfo reports whether the mode carries the team properties.
func (t *Team) HasInfo() bool { return t.Mode == CreateTeam || t.Mode == UpdateTeam }

// HasPlayers reports whether the mode carries a player list.
func (t *Team) HasPlayers() bool {
	return t.Mode == CreateTeam || t.Mode == AddTeamPlayers || t.Mode == RemoveTeamPlayers
}

func (t *Team) Encode(c *proto.PacketContext, wr io.Writer) (err error) {
	defer util.Recover(&err)
	w := util.PanicWriter(wr)
	w.String(t.Name)
	w.Byte(byte(t.Mode))
	if t.HasInfo() {
		switch {
		case c.Protocol.GreaterEqual(version.Minecraft_1_13):
			w.Component(t.DisplayNameComponent, c.Protocol)
			w.Byte(t.FriendlyFlags)
			if c.Protocol.GreaterEqual(version.Minecraft_1_21_5) {
				w.VarInt(enumIndex(NameTagVisibilities, t.NameTagVisibility))
				w.VarInt(enumIndex(CollisionRules, t.CollisionRule))
			} else {
				w.String(t.NameTagVisibility)
				w.String(t.CollisionRule)
			}
			w.VarInt(t.Color)
			w.Component(t.PrefixComponent, c.Protocol)
			w.Component(t.SuffixComponent, c.Protocol)
		default:
			w.String(t.DisplayName)
			w.String(t.Prefix)
			w.String(t.Suffix)
			w.Byte(t.FriendlyFlags)
			if c.Protocol.GreaterEqual(version.Minecraft_1_8) {
				w.String(t.NameTagVisibility)
				if c.Protocol.GreaterEqual(version.Minecraft_1_9) {
					w.String(t.CollisionRule)
				}
				w.Int8(int8(t.Color))
			}
		}
	}
	if t.HasPlayers() {
		if c.Protocol.Lower(version.Minecraft_1_8) {
			w.Int16(int16(len(t.Players)))
			for _, p := range t.Players {
				w.String(p)
			}
		} else {
			w.Strings(t.Players)
		}
	}
	return nil
}

func (t *Team) Decode(c *proto.PacketContext, rd io.Reader) (err error) {
	defer util.Recover(&err)
	r := util.PanicReader(rd)
	var mode byte
	r.String(&t.Name)
	r.Byte(&mode)
	t.Mode = TeamMode(mode)
	if t.HasInfo() {
		switch {
		case c.Protocol.GreaterEqual(version.Minecraft_1_13):
			r.Component(&t.DisplayNameComponent, c.Protocol)
			r.Byte(&t.FriendlyFlags)
			if c.Protocol.GreaterEqual(version.Minecraft_1_21_5) {
				var visibility, collision int
				r.VarInt(&visibility)
				r.VarInt(&collision)
				t.NameTagVisibility = enumName(NameTagVisibilities, visibility)
				t.CollisionRule = enumName(CollisionRules, collision)
			} else {
				r.StringMax(&t.NameTagVisibility, 40)
				r.StringMax(&t.CollisionRule, 40)
			}
			r.VarInt(&t.Color)
			r.Component(&t.PrefixComponent, c.Protocol)
			r.Component(&t.SuffixComponent, c.Protocol)
		default:
			r.StringMax(&t.DisplayName, MaxLegacyTeamDisplayName)
			r.StringMax(&t.Prefix, MaxLegacyTeamAffix)
			r.StringMax(&t.Suffix, MaxLegacyTeamAffix)
			r.Byte(&t.FriendlyFlags)
			t.Color = NoTeamColor
			if c.Protocol.GreaterEqual(version.Minecraft_1_8) {
				r.StringMax(&t.NameTagVisibility, 32)
				if c.Protocol.GreaterEqual(version.Minecraft_1_9) {
					r.StringMax(&t.CollisionRule, 32)
				}
				var color int8
				r.Int8(&color)
				t.Color = int(color)
			}
		}
	}
	t.Players = nil
	if t.HasPlayers() {
		if c.Protocol.Lower(version.Minecraft_1_8) {
			var n int16
			r.Int16(&n)
			for i := 0; i < int(n); i++ {
				var p string
				r.String(&p)
				t.Players = append(t.Players, p)
			}
		} else {
			r.Strings(&t.Players)
		}
	}
	return nil
}

func enumIndex(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	panic(fmt.Errorf("unknown team rule %q, expected one of %v", name, names))
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		panic(fmt.Errorf("unknown team rule index %d", i))
	}
	return names[i]
}

var _ proto.Packet = (*Team)(nil)
