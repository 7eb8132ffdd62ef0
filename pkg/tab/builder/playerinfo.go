package builder

import (
	"errors"
	"fmt"
	"math"

	"go.minekube.com/tab/pkg/edition/java/profile"
	jpacket "go.minekube.com/tab/pkg/edition/java/proto/packet"
	"go.minekube.com/tab/pkg/edition/java/proto/packet/tablist/playerinfo"
	"go.minekube.com/tab/pkg/edition/java/proto/version"
	"go.minekube.com/tab/pkg/internal/mathutil"
	"go.minekube.com/tab/pkg/proto"
	"go.minekube.com/tab/pkg/tab/packet"
	"go.minekube.com/tab/pkg/tab/text"
	"go.minekube.com/tab/pkg/util/uuid"
)

// texturesProperty is the profile property holding the skin.
const texturesProperty = "textures"

func buildPlayerInfo(p *packet.PlayerInfo, protocol proto.Protocol) (proto.Packet, error) {
	if !p.Action.Valid() {
		return nil, unsupported(packet.KindPlayerInfo, protocol, "invalid action %d", int(p.Action))
	}
	switch {
	case protocol.Lower(version.Minecraft_1_8):
		return buildLegacyPlayerInfo(p, protocol)
	case protocol.Lower(version.Minecraft_1_19_3):
		return buildPlayerListItem(p, protocol), nil
	}
	if p.Action == packet.PlayerInfoRemove {
		r := &playerinfo.Remove{PlayersToRemove: make([]uuid.UUID, 0, len(p.Entries))}
		for _, e := range p.Entries {
			r.PlayersToRemove = append(r.PlayersToRemove, e.ID)
		}
		return r, nil
	}
	return buildUpsert(p, protocol), nil
}

// buildLegacyPlayerInfo returns one packet per entry, 1.7 entries are keyed by their shown name.
func buildLegacyPlayerInfo(p *packet.PlayerInfo, protocol proto.Protocol) (proto.Packet, error) {
	if p.Action == packet.PlayerInfoUpdateGameMode {
		return nil, unsupported(packet.KindPlayerInfo, protocol, "game modes are not shown before 1.8")
	}
	batch := make(proto.Batch, 0, len(p.Entries))
	for _, e := range p.Entries {
		name := e.Name
		if e.DisplayName != "" {
			name = e.DisplayName
		}
		batch = append(batch, &jpacket.LegacyPlayerListItem{
			Name:   text.CutTo(name, jpacket.MaxLegacyPlayerListName),
			Online: p.Action != packet.PlayerInfoRemove,
			Ping:   int16(mathutil.Clamp(e.Latency, 0, math.MaxInt16)),
		})
	}
	if len(batch) == 1 {
		return batch[0], nil
	}
	return batch, nil
}

var playerListItemActions = map[packet.PlayerInfoAction]jpacket.PlayerListItemAction{
	packet.PlayerInfoAdd:               jpacket.AddPlayerListItemAction,
	packet.PlayerInfoRemove:            jpacket.RemovePlayerListItemAction,
	packet.PlayerInfoUpdateDisplayName: jpacket.UpdateDisplayNamePlayerListItemAction,
	packet.PlayerInfoUpdateLatency:     jpacket.UpdateLatencyPlayerListItemAction,
	packet.PlayerInfoUpdateGameMode:    jpacket.UpdateGameModePlayerListItemAction,
}

func buildPlayerListItem(p *packet.PlayerInfo, protocol proto.Protocol) proto.Packet {
	item := &jpacket.PlayerListItem{
		Action: playerListItemActions[p.Action],
		Items:  make([]jpacket.PlayerListItemEntry, 0, len(p.Entries)),
	}
	for _, e := range p.Entries {
		item.Items = append(item.Items, jpacket.PlayerListItemEntry{
			ID:          e.ID,
			Name:        e.Name,
			Properties:  skinProperties(e.Skin),
			GameMode:    gameMode(e.GameMode),
			Latency:     e.Latency,
			DisplayName: optionalRich(e.DisplayName, protocol),
		})
	}
	return item
}

func buildUpsert(p *packet.PlayerInfo, protocol proto.Protocol) proto.Packet {
	u := &playerinfo.Upsert{Entries: make([]*playerinfo.Entry, 0, len(p.Entries))}
	switch p.Action {
	case packet.PlayerInfoAdd:
		u.ActionSet = []playerinfo.UpsertAction{
			playerinfo.AddPlayerAction,
			playerinfo.UpdateGameModeAction,
			playerinfo.UpdateListedAction,
			playerinfo.UpdateLatencyAction,
			playerinfo.UpdateDisplayNameAction,
		}
	case packet.PlayerInfoUpdateDisplayName:
		u.ActionSet = []playerinfo.UpsertAction{playerinfo.UpdateDisplayNameAction}
	case packet.PlayerInfoUpdateLatency:
		u.ActionSet = []playerinfo.UpsertAction{playerinfo.UpdateLatencyAction}
	case packet.PlayerInfoUpdateGameMode:
		u.ActionSet = []playerinfo.UpsertAction{playerinfo.UpdateGameModeAction}
	}
	for _, e := range p.Entries {
		u.Entries = append(u.Entries, &playerinfo.Entry{
			ProfileID: e.ID,
			Profile: profile.GameProfile{
				ID:         e.ID,
				Name:       e.Name,
				Properties: skinProperties(e.Skin),
			},
			Listed:      true,
			Latency:     e.Latency,
			GameMode:    gameMode(e.GameMode),
			DisplayName: optionalRich(e.DisplayName, protocol),
		})
	}
	return u
}

func skinProperties(s *packet.Skin) []profile.Property {
	if s == nil {
		return nil
	}
	return []profile.Property{{Name: texturesProperty, Value: s.Value, Signature: s.Signature}}
}

func skinOf(props []profile.Property) *packet.Skin {
	for _, p := range props {
		if p.Name == texturesProperty {
			return &packet.Skin{Value: p.Value, Signature: p.Signature}
		}
	}
	return nil
}

func gameMode(g packet.GameMode) int {
	if !g.Valid() {
		return int(packet.Survival)
	}
	return int(g)
}

// ReadPlayerInfo reads a player list packet sent with the given protocol.
// It accepts the wire packets returned by Build for PlayerInfo.
//
// Entries of 1.7 packets carry no id, their id is the offline id of the name.
func ReadPlayerInfo(wire proto.Packet, protocol proto.Protocol) (*packet.PlayerInfo, error) {
	protocol = version.Normalize(protocol)
	k := packet.KindPlayerInfo
	switch w := wire.(type) {
	case *jpacket.LegacyPlayerListItem:
		if !protocol.Lower(version.Minecraft_1_8) {
			return nil, wrongType(k, protocol, wire)
		}
		return readLegacyPlayerInfo(proto.Batch{w})
	case proto.Batch:
		if !protocol.Lower(version.Minecraft_1_8) {
			return nil, wrongType(k, protocol, wire)
		}
		info, err := readLegacyPlayerInfo(w)
		if err != nil {
			return nil, &ParseError{Kind: k, Protocol: protocol, Field: "entries", Err: err}
		}
		return info, nil
	case *jpacket.PlayerListItem:
		if protocol.Lower(version.Minecraft_1_8) || protocol.GreaterEqual(version.Minecraft_1_19_3) {
			return nil, wrongType(k, protocol, wire)
		}
		return readPlayerListItem(w, protocol)
	case *playerinfo.Upsert:
		if protocol.Lower(version.Minecraft_1_19_3) {
			return nil, wrongType(k, protocol, wire)
		}
		return readUpsert(w, protocol)
	case *playerinfo.Remove:
		if protocol.Lower(version.Minecraft_1_19_3) {
			return nil, wrongType(k, protocol, wire)
		}
		info := &packet.PlayerInfo{Action: packet.PlayerInfoRemove}
		for _, id := range w.PlayersToRemove {
			info.Entries = append(info.Entries, packet.PlayerInfoEntry{ID: id})
		}
		return info, nil
	}
	return nil, wrongType(k, protocol, wire)
}

func wrongType(k packet.Kind, protocol proto.Protocol, wire proto.Packet) error {
	return parseErr(k, protocol, "type", "unexpected wire packet %T", wire)
}

func readLegacyPlayerInfo(items proto.Batch) (*packet.PlayerInfo, error) {
	info := &packet.PlayerInfo{}
	for i, pk := range items {
		item, ok := pk.(*jpacket.LegacyPlayerListItem)
		if !ok {
			return nil, fmt.Errorf("unexpected wire packet %T", pk)
		}
		action := packet.PlayerInfoAdd
		if !item.Online {
			action = packet.PlayerInfoRemove
		}
		if i > 0 && action != info.Action {
			return nil, errors.New("mixed add and remove entries")
		}
		info.Action = action
		info.Entries = append(info.Entries, packet.PlayerInfoEntry{
			ID:      uuid.OfflinePlayerUUID(item.Name),
			Name:    item.Name,
			Latency: int(item.Ping),
		})
	}
	return info, nil
}

func readPlayerListItem(w *jpacket.PlayerListItem, protocol proto.Protocol) (*packet.PlayerInfo, error) {
	k := packet.KindPlayerInfo
	info := &packet.PlayerInfo{}
	found := false
	for a, wa := range playerListItemActions {
		if wa == w.Action {
			info.Action, found = a, true
			break
		}
	}
	if !found {
		return nil, parseErr(k, protocol, "action", "unknown action %d", int(w.Action))
	}
	for _, item := range w.Items {
		gm := packet.GameMode(item.GameMode)
		if info.Action == packet.PlayerInfoAdd || info.Action == packet.PlayerInfoUpdateGameMode {
			if !gm.Valid() {
				return nil, parseErr(k, protocol, "gameMode", "unknown game mode %d", item.GameMode)
			}
		}
		info.Entries = append(info.Entries, packet.PlayerInfoEntry{
			ID:          item.ID,
			Name:        item.Name,
			Skin:        skinOf(item.Properties),
			Latency:     item.Latency,
			GameMode:    gm,
			DisplayName: fromComponent(item.DisplayName),
		})
	}
	return info, nil
}

func readUpsert(w *playerinfo.Upsert, protocol proto.Protocol) (*packet.PlayerInfo, error) {
	k := packet.KindPlayerInfo
	info := &packet.PlayerInfo{}
	if playerinfo.ContainsAction(w.ActionSet, playerinfo.AddPlayerAction) {
		info.Action = packet.PlayerInfoAdd
	} else {
		var actions []packet.PlayerInfoAction
		for _, a := range w.ActionSet {
			switch a {
			case playerinfo.UpdateGameModeAction:
				actions = append(actions, packet.PlayerInfoUpdateGameMode)
			case playerinfo.UpdateLatencyAction:
				actions = append(actions, packet.PlayerInfoUpdateLatency)
			case playerinfo.UpdateDisplayNameAction:
				actions = append(actions, packet.PlayerInfoUpdateDisplayName)
			}
		}
		switch len(actions) {
		case 1:
			info.Action = actions[0]
		case 0:
			return nil, parseErr(k, protocol, "actions", "no player list action in %v", w.ActionSet)
		default:
			return nil, parseErr(k, protocol, "actions", "ambiguous actions %v", w.ActionSet)
		}
	}
	for _, e := range w.Entries {
		gm := packet.GameMode(e.GameMode)
		if playerinfo.ContainsAction(w.ActionSet, playerinfo.UpdateGameModeAction) && !gm.Valid() {
			return nil, parseErr(k, protocol, "gameMode", "unknown game mode %d", e.GameMode)
		}
		info.Entries = append(info.Entries, packet.PlayerInfoEntry{
			ID:          e.ProfileID,
			Name:        e.Profile.Name,
			Skin:        skinOf(e.Profile.Properties),
			Latency:     e.Latency,
			GameMode:    gm,
			DisplayName: fromComponent(e.DisplayName),
		})
	}
	return info, nil
}
