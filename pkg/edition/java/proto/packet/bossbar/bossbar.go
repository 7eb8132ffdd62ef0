// Package bossbar contains the boss bar packet of 1.9 and later.
package bossbar

import (
	"errors"
	"fmt"
	"io"

	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/tab/pkg/edition/java/proto/util"
	"go.minekube.com/tab/pkg/proto"
	"go.minekube.com/tab/pkg/util/uuid"
)

type Action int

const (
	AddAction Action = iota
	RemoveAction
	UpdatePercentAction
	UpdateNameAction
	UpdateStyleAction
	UpdatePropertiesAction
)

// Color is the wire ordinal of a bar color.
type Color int

const (
	PinkColor Color = iota
	BlueColor
	RedColor
	GreenColor
	YellowColor
	PurpleColor
	WhiteColor
)

// Overlay is the wire ordinal of a bar style.
type Overlay int

const (
	ProgressOverlay Overlay = iota
	Notched6Overlay
	Notched10Overlay
	Notched12Overlay
	Notched20Overlay
)

type Flag byte

const (
	DarkenScreenFlag  Flag = 0x01
	PlayBossMusicFlag Flag = 0x02
	// CreateWorldFogFlag shares 0x02 with PlayBossMusicFlag before 1.10.
	CreateWorldFogFlag Flag = 0x04
)

// ConvertFlags ors flags into the wire byte.
func ConvertFlags(flags ...Flag) (b byte) {
	for _, f := range flags {
		b |= byte(f)
	}
	return b
}

// the field groups an action carries, in wire order
type fields uint8

const (
	nameField fields = 1 << iota
	percentField
	styleField
	flagsField
)

var actionFields = map[Action]fields{
	AddAction:              nameField | percentField | styleField | flagsField,
	RemoveAction:           0,
	UpdatePercentAction:    percentField,
	UpdateNameAction:       nameField,
	UpdateStyleAction:      styleField,
	UpdatePropertiesAction: flagsField,
}

var errNoName = errors.New("boss bar needs to have a name specified")

// BossBar adds, removes or updates the boss bar ID on the client.
type BossBar struct {
	ID      uuid.UUID
	Action  Action
	Name    component.Component
	Percent float32
	Color   Color
	Overlay Overlay
	Flags   byte
}

func (bb *BossBar) Encode(c *proto.PacketContext, wr io.Writer) (err error) {
	f, ok := actionFields[bb.Action]
	if !ok {
		return fmt.Errorf("unknown boss bar action %d", bb.Action)
	}
	if f&nameField != 0 && bb.Name == nil {
		return errNoName
	}
	defer util.Recover(&err)
	w := util.PanicWriter(wr)
	w.UUID(bb.ID)
	w.VarInt(int(bb.Action))
	if f&nameField != 0 {
		w.Component(bb.Name, c.Protocol)
	}
	if f&percentField != 0 {
		w.Float32(bb.Percent)
	}
	if f&styleField != 0 {
		w.VarInt(int(bb.Color))
		w.VarInt(int(bb.Overlay))
	}
	if f&flagsField != 0 {
		w.Byte(bb.Flags)
	}
	return nil
}

func (bb *BossBar) Decode(c *proto.PacketContext, rd io.Reader) (err error) {
	defer util.Recover(&err)
	r := util.PanicReader(rd)
	r.UUID(&bb.ID)
	var action int
	r.VarInt(&action)
	bb.Action = Action(action)
	f, ok := actionFields[bb.Action]
	if !ok {
		return fmt.Errorf("unknown boss bar action %d", action)
	}
	if f&nameField != 0 {
		r.Component(&bb.Name, c.Protocol)
	}
	if f&percentField != 0 {
		r.Float32(&bb.Percent)
	}
	if f&styleField != 0 {
		var color, overlay int
		r.VarInt(&color)
		r.VarInt(&overlay)
		bb.Color, bb.Overlay = Color(color), Overlay(overlay)
	}
	if f&flagsField != 0 {
		r.Byte(&bb.Flags)
	}
	return nil
}

var _ proto.Packet = (*BossBar)(nil)
