// Package playerinfo contains the player list packets of 1.19.3 and later.
package playerinfo

import (
	"fmt"
	"io"
	"slices"

	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/tab/pkg/edition/java/profile"
	"go.minekube.com/tab/pkg/edition/java/proto/util"
	"go.minekube.com/tab/pkg/edition/java/proto/version"
	"go.minekube.com/tab/pkg/internal/mathutil"
	"go.minekube.com/tab/pkg/proto"
	"go.minekube.com/tab/pkg/util/uuid"
)

// Upsert adds entries to or updates entries of the player list.
// Every entry carries the fields of every action in ActionSet.
type Upsert struct {
	ActionSet []UpsertAction
	Entries   []*Entry
}

type Entry struct {
	ProfileID         uuid.UUID
	Profile           profile.GameProfile
	Listed            bool
	Latency           int // milliseconds
	GameMode          int
	DisplayName       component.Component // optional
	ListOrder         int                 // 1.21.2+
	ShowHat           bool                // 1.21.4+
	RemoteChatSession *RemoteChatSession  // optional
}

// RemoteChatSession is the signed chat session of an entry.
type RemoteChatSession struct {
	ID           uuid.UUID
	ExpiresAt    int64 // unix millis
	PublicKey    []byte
	KeySignature []byte
}

// UpsertAction selects a group of Entry fields sent by an Upsert.
type UpsertAction interface {
	fmt.Stringer
	write(w *util.PWriter, c *proto.PacketContext, e *Entry)
	read(r *util.PReader, c *proto.PacketContext, e *Entry)
}

type action struct {
	name string
	enc  func(w *util.PWriter, c *proto.PacketContext, e *Entry)
	dec  func(r *util.PReader, c *proto.PacketContext, e *Entry)
}

func (a *action) String() string { return a.name }

func (a *action) write(w *util.PWriter, c *proto.PacketContext, e *Entry) { a.enc(w, c, e) }
func (a *action) read(r *util.PReader, c *proto.PacketContext, e *Entry)  { a.dec(r, c, e) }

const maxUsernameLength = 16

var (
	AddPlayerAction UpsertAction = &action{"AddPlayer",
		func(w *util.PWriter, _ *proto.PacketContext, e *Entry) {
			w.String(e.Profile.Name)
			w.Properties(e.Profile.Properties)
		},
		func(r *util.PReader, _ *proto.PacketContext, e *Entry) {
			e.Profile = profile.GameProfile{ID: e.ProfileID}
			r.StringMax(&e.Profile.Name, maxUsernameLength)
			r.Properties(&e.Profile.Properties)
		},
	}
	InitializeChatAction UpsertAction = &action{"InitializeChat",
		func(w *util.PWriter, _ *proto.PacketContext, e *Entry) {
			s := e.RemoteChatSession
			if !w.Bool(s != nil) {
				return
			}
			w.UUID(s.ID)
			w.Int64(s.ExpiresAt)
			w.Bytes(s.PublicKey)
			w.Bytes(s.KeySignature)
		},
		func(r *util.PReader, _ *proto.PacketContext, e *Entry) {
			e.RemoteChatSession = nil
			if !r.Ok() {
				return
			}
			s := new(RemoteChatSession)
			r.UUID(&s.ID)
			r.Int64(&s.ExpiresAt)
			r.Bytes(&s.PublicKey)
			r.Bytes(&s.KeySignature)
			e.RemoteChatSession = s
		},
	}
	UpdateGameModeAction UpsertAction = &action{"UpdateGameMode",
		func(w *util.PWriter, _ *proto.PacketContext, e *Entry) { w.VarInt(e.GameMode) },
		func(r *util.PReader, _ *proto.PacketContext, e *Entry) { r.VarInt(&e.GameMode) },
	}
	UpdateListedAction UpsertAction = &action{"UpdateListed",
		func(w *util.PWriter, _ *proto.PacketContext, e *Entry) { w.Bool(e.Listed) },
		func(r *util.PReader, _ *proto.PacketContext, e *Entry) { r.Bool(&e.Listed) },
	}
	UpdateLatencyAction UpsertAction = &action{"UpdateLatency",
		func(w *util.PWriter, _ *proto.PacketContext, e *Entry) { w.VarInt(e.Latency) },
		func(r *util.PReader, _ *proto.PacketContext, e *Entry) { r.VarInt(&e.Latency) },
	}
	UpdateDisplayNameAction UpsertAction = &action{"UpdateDisplayName",
		func(w *util.PWriter, c *proto.PacketContext, e *Entry) {
			if w.Bool(e.DisplayName != nil) {
				w.Component(e.DisplayName, c.Protocol)
			}
		},
		func(r *util.PReader, c *proto.PacketContext, e *Entry) {
			e.DisplayName = nil
			if r.Ok() {
				r.Component(&e.DisplayName, c.Protocol)
			}
		},
	}
	UpdateListOrderAction UpsertAction = &action{"UpdateListOrder",
		func(w *util.PWriter, _ *proto.PacketContext, e *Entry) { w.VarInt(e.ListOrder) },
		func(r *util.PReader, _ *proto.PacketContext, e *Entry) { r.VarInt(&e.ListOrder) },
	}
	UpdateHatAction UpsertAction = &action{"UpdateHat",
		func(w *util.PWriter, _ *proto.PacketContext, e *Entry) { w.Bool(e.ShowHat) },
		func(r *util.PReader, _ *proto.PacketContext, e *Entry) { r.Bool(&e.ShowHat) },
	}

	// UpsertActions in bit index order.
	UpsertActions = []UpsertAction{
		AddPlayerAction,
		InitializeChatAction,
		UpdateGameModeAction,
		UpdateListedAction,
		UpdateLatencyAction,
		UpdateDisplayNameAction,
		UpdateListOrderAction,
		UpdateHatAction,
	}
)

// ActionsFor returns the actions a protocol knows, in bit index order.
func ActionsFor(protocol proto.Protocol) []UpsertAction {
	switch {
	case protocol.GreaterEqual(version.Minecraft_1_21_4):
		return UpsertActions
	case protocol.GreaterEqual(version.Minecraft_1_21_2):
		return UpsertActions[:7]
	}
	return UpsertActions[:6]
}

// ContainsAction reports whether action is in actions.
func ContainsAction(actions []UpsertAction, action UpsertAction) bool {
	return slices.Contains(actions, action)
}

func (u *Upsert) Encode(c *proto.PacketContext, wr io.Writer) (err error) {
	known := ActionsFor(c.Protocol)
	set := mathutil.NewBitSet(len(known))
	for _, a := range u.ActionSet {
		i := slices.Index(known, a)
		if i < 0 {
			return fmt.Errorf("player info action %s not supported by protocol %s", a, c.Protocol)
		}
		set.Set(i, true)
	}

	defer util.Recover(&err)
	w := util.PanicWriter(wr)
	w.Raw(set.Bytes)
	w.VarInt(len(u.Entries))
	for _, e := range u.Entries {
		w.UUID(e.ProfileID)
		// bit index order, not ActionSet order
		for i, a := range known {
			if set.Get(i) {
				a.write(w, c, e)
			}
		}
	}
	return nil
}

func (u *Upsert) Decode(c *proto.PacketContext, rd io.Reader) (err error) {
	known := ActionsFor(c.Protocol)
	set, err := mathutil.ReadBitSet(rd, len(known))
	if err != nil {
		return err
	}
	u.ActionSet = nil
	for i, a := range known {
		if set.Get(i) {
			u.ActionSet = append(u.ActionSet, a)
		}
	}

	defer util.Recover(&err)
	r := util.PanicReader(rd)
	var n int
	r.VarInt(&n)
	if n < 0 {
		return fmt.Errorf("negative entry count %d", n)
	}
	u.Entries = make([]*Entry, 0, min(n, 256))
	for range n {
		e := new(Entry)
		r.UUID(&e.ProfileID)
		for _, a := range u.ActionSet {
			a.read(r, c, e)
		}
		u.Entries = append(u.Entries, e)
	}
	return nil
}

var _ proto.Packet = (*Upsert)(nil)
