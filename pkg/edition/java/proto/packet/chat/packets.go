package chat

import (
	"fmt"
	"io"

	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/tab/pkg/edition/java/proto/util"
	"go.minekube.com/tab/pkg/edition/java/proto/version"
	"go.minekube.com/tab/pkg/proto"
	"go.minekube.com/tab/pkg/util/uuid"
)

// MaxClientBoundMessageLength limits the json of a LegacyChat.
const MaxClientBoundMessageLength = 262144

// LegacyChat is the chat packet before 1.19.
type LegacyChat struct {
	Message string      // json component
	Type    MessageType // 1.8+
	Sender  uuid.UUID   // 1.16+
}

func (ch *LegacyChat) Encode(c *proto.PacketContext, wr io.Writer) (err error) {
	defer util.Recover(&err)
	w := util.PanicWriter(wr)
	w.String(ch.Message)
	if c.Protocol.Lower(version.Minecraft_1_8) {
		return nil
	}
	w.Byte(byte(ch.Type))
	if c.Protocol.GreaterEqual(version.Minecraft_1_16) {
		w.UUID(ch.Sender)
	}
	return nil
}

func (ch *LegacyChat) Decode(c *proto.PacketContext, rd io.Reader) (err error) {
	defer util.Recover(&err)
	r := util.PanicReader(rd)
	r.StringMax(&ch.Message, MaxClientBoundMessageLength)
	if c.Protocol.Lower(version.Minecraft_1_8) {
		return nil
	}
	var typ byte
	r.Byte(&typ)
	ch.Type = MessageType(typ)
	if c.Protocol.GreaterEqual(version.Minecraft_1_16) {
		r.UUID(&ch.Sender)
	}
	return nil
}

// SystemChat is the server message packet since 1.19.
type SystemChat struct {
	Component component.Component
	Type      MessageType
}

func (s *SystemChat) Encode(c *proto.PacketContext, wr io.Writer) (err error) {
	defer util.Recover(&err)
	w := util.PanicWriter(wr)
	w.Component(s.Component, c.Protocol)
	if c.Protocol.Lower(version.Minecraft_1_19_1) {
		w.VarInt(int(s.Type))
		return nil
	}
	// 1.19.1 replaced the type with an overlay flag
	switch s.Type {
	case SystemMessageType, GameInfoMessageType:
		w.Bool(s.Type == GameInfoMessageType)
		return nil
	}
	return fmt.Errorf("invalid system chat type %d", s.Type)
}

func (s *SystemChat) Decode(c *proto.PacketContext, rd io.Reader) (err error) {
	defer util.Recover(&err)
	r := util.PanicReader(rd)
	r.Component(&s.Component, c.Protocol)
	if c.Protocol.Lower(version.Minecraft_1_19_1) {
		var typ int
		r.VarInt(&typ)
		s.Type = MessageType(typ)
		return nil
	}
	s.Type = SystemMessageType
	if r.Ok() {
		s.Type = GameInfoMessageType
	}
	return nil
}

var (
	_ proto.Packet = (*LegacyChat)(nil)
	_ proto.Packet = (*SystemChat)(nil)
)
