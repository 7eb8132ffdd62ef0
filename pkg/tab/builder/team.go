package builder

import (
	"go.minekube.com/tab/pkg/edition/java/proto/packet/scoreboard"
	"go.minekube.com/tab/pkg/edition/java/proto/version"
	"go.minekube.com/tab/pkg/proto"
	"go.minekube.com/tab/pkg/tab/packet"
	"go.minekube.com/tab/pkg/tab/text"
)

func buildTeam(p *packet.Team, protocol proto.Protocol) (proto.Packet, error) {
	if !p.Action.Valid() {
		return nil, unsupported(packet.KindTeam, protocol, "invalid action %d", int(p.Action))
	}
	t := &scoreboard.Team{
		Name: p.Name,
		Mode: scoreboard.TeamMode(p.Action),
	}
	if t.HasPlayers() {
		t.Players = p.Players
		if t.Players == nil {
			t.Players = []string{}
		}
	}
	if !t.HasInfo() {
		return t, nil
	}

	displayName := p.DisplayName
	if displayName == "" {
		displayName = p.Name
	}
	if protocol.GreaterEqual(version.Minecraft_1_13) {
		t.DisplayNameComponent = downsample(text.StructuredOrCut(displayName, protocol, scoreboard.MaxLegacyTeamDisplayName).Rich, protocol)
		t.PrefixComponent = downsample(text.StructuredOrCut(p.Prefix, protocol, scoreboard.MaxLegacyTeamAffix).Rich, protocol)
		t.SuffixComponent = downsample(text.StructuredOrCut(p.Suffix, protocol, scoreboard.MaxLegacyTeamAffix).Rich, protocol)
	} else {
		t.DisplayName = text.CutTo(displayName, scoreboard.MaxLegacyTeamDisplayName)
		t.Prefix = text.CutTo(p.Prefix, scoreboard.MaxLegacyTeamAffix)
		t.Suffix = text.CutTo(p.Suffix, scoreboard.MaxLegacyTeamAffix)
	}

	if p.AllowFriendlyFire {
		t.FriendlyFlags |= scoreboard.AllowFriendlyFire
	}
	if p.SeeFriendlyInvisibles {
		t.FriendlyFlags |= scoreboard.CanSeeFriendlyInvisibles
	}

	visibility, collision := p.NameTagVisibility, p.CollisionRule
	if !visibility.Valid() {
		visibility = packet.NameTagAlways
	}
	if !collision.Valid() {
		collision = packet.CollisionAlways
	}
	t.NameTagVisibility = scoreboard.NameTagVisibilities[visibility]
	t.CollisionRule = scoreboard.CollisionRules[collision]
	t.Color = teamColor(p, protocol)
	return t, nil
}

// teamColor returns the colour ordinal of the team. Without a valid colour name
// the last colour of the prefix is used.
func teamColor(p *packet.Team, protocol proto.Protocol) int {
	if c, ok := text.ColorByName(p.Color); ok {
		return c.Index()
	}
	if idx, ok := text.LastColor(p.Prefix); ok {
		return idx
	}
	if protocol.GreaterEqual(version.Minecraft_1_13) {
		return scoreboard.ResetTeamColor
	}
	return scoreboard.NoTeamColor
}
