package packet

import (
	"errors"
	"fmt"
	"io"

	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/tab/pkg/edition/java/profile"
	"go.minekube.com/tab/pkg/edition/java/proto/util"
	"go.minekube.com/tab/pkg/edition/java/proto/version"
	"go.minekube.com/tab/pkg/proto"
	"go.minekube.com/tab/pkg/util/uuid"
)

// MaxLegacyPlayerListName limits the names of the 1.7 player list, which also identify the entry.
const MaxLegacyPlayerListName = 16

// LegacyPlayerListItem adds or removes one 1.7 player list entry.
type LegacyPlayerListItem struct {
	Name   string
	Online bool // false removes the entry
	Ping   int16
}

func (p *LegacyPlayerListItem) Encode(_ *proto.PacketContext, wr io.Writer) (err error) {
	defer util.Recover(&err)
	w := util.PanicWriter(wr)
	w.String(p.Name)
	w.Bool(p.Online)
	w.Int16(p.Ping)
	return nil
}

func (p *LegacyPlayerListItem) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	defer util.Recover(&err)
	r := util.PanicReader(rd)
	r.StringMax(&p.Name, MaxLegacyPlayerListName)
	r.Bool(&p.Online)
	r.Int16(&p.Ping)
	return nil
}

// PlayerListItem applies one action to entries of the player list of 1.8 to 1.19.2.
type PlayerListItem struct {
	Action PlayerListItemAction
	Items  []PlayerListItemEntry
}

type PlayerListItemAction int

const (
	AddPlayerListItemAction PlayerListItemAction = iota
	UpdateGameModePlayerListItemAction
	UpdateLatencyPlayerListItemAction
	UpdateDisplayNamePlayerListItemAction
	RemovePlayerListItemAction
)

var playerListItemActionNames = [...]string{
	"AddPlayer", "UpdateGameMode", "UpdateLatency", "UpdateDisplayName", "RemovePlayer",
}

func (a PlayerListItemAction) String() string {
	if a >= 0 && int(a) < len(playerListItemActionNames) {
		return playerListItemActionNames[a]
	}
	return fmt.Sprintf("PlayerListItemAction(%d)", int(a))
}

// PlayerListItemEntry holds the fields of every action, only those of
// the packet action are sent.
type PlayerListItemEntry struct {
	ID          uuid.UUID
	Name        string
	Properties  []profile.Property
	GameMode    int
	Latency     int
	DisplayName component.Component // optional
}

func (p *PlayerListItem) Encode(c *proto.PacketContext, wr io.Writer) (err error) {
	if c.Protocol.Lower(version.Minecraft_1_8) {
		return errors.New("PlayerListItem requires 1.8+, use LegacyPlayerListItem")
	}
	if p.Action < AddPlayerListItemAction || p.Action > RemovePlayerListItemAction {
		return fmt.Errorf("unknown %s", p.Action)
	}
	defer util.Recover(&err)
	w := util.PanicWriter(wr)
	w.VarInt(int(p.Action))
	w.VarInt(len(p.Items))
	for i := range p.Items {
		item := &p.Items[i]
		w.UUID(item.ID)
		switch p.Action {
		case AddPlayerListItemAction:
			w.String(item.Name)
			w.Properties(item.Properties)
			w.VarInt(item.GameMode)
			w.VarInt(item.Latency)
			if w.Bool(item.DisplayName != nil) {
				w.Component(item.DisplayName, c.Protocol)
			}
			if c.Protocol.GreaterEqual(version.Minecraft_1_19) {
				w.Bool(false) // chat session key
			}
		case UpdateGameModePlayerListItemAction:
			w.VarInt(item.GameMode)
		case UpdateLatencyPlayerListItemAction:
			w.VarInt(item.Latency)
		case UpdateDisplayNamePlayerListItemAction:
			if w.Bool(item.DisplayName != nil) {
				w.Component(item.DisplayName, c.Protocol)
			}
		}
	}
	return nil
}

func (p *PlayerListItem) Decode(c *proto.PacketContext, rd io.Reader) (err error) {
	defer util.Recover(&err)
	r := util.PanicReader(rd)
	var action, n int
	r.VarInt(&action)
	p.Action = PlayerListItemAction(action)
	if p.Action < AddPlayerListItemAction || p.Action > RemovePlayerListItemAction {
		return fmt.Errorf("unknown %s", p.Action)
	}
	r.VarInt(&n)
	if n < 0 {
		return fmt.Errorf("negative entry count %d", n)
	}
	p.Items = make([]PlayerListItemEntry, 0, min(n, 256))
	for range n {
		var item PlayerListItemEntry
		r.UUID(&item.ID)
		switch p.Action {
		case AddPlayerListItemAction:
			r.StringMax(&item.Name, 16)
			r.Properties(&item.Properties)
			r.VarInt(&item.GameMode)
			r.VarInt(&item.Latency)
			if r.Ok() {
				r.Component(&item.DisplayName, c.Protocol)
			}
			if c.Protocol.GreaterEqual(version.Minecraft_1_19) && r.Ok() {
				// chat session key
				var expiry int64
				var key []byte
				r.Int64(&expiry)
				r.Bytes(&key)
				r.Bytes(&key)
			}
		case UpdateGameModePlayerListItemAction:
			r.VarInt(&item.GameMode)
		case UpdateLatencyPlayerListItemAction:
			r.VarInt(&item.Latency)
		case UpdateDisplayNamePlayerListItemAction:
			if r.Ok() {
				r.Component(&item.DisplayName, c.Protocol)
			}
		}
		p.Items = append(p.Items, item)
	}
	return nil
}

var (
	_ proto.Packet = (*LegacyPlayerListItem)(nil)
	_ proto.Packet = (*PlayerListItem)(nil)
)
