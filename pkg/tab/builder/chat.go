package builder

import (
	"go.minekube.com/common/minecraft/component"

	jpacket "go.minekube.com/tab/pkg/edition/java/proto/packet"
	"go.minekube.com/tab/pkg/edition/java/proto/packet/chat"
	"go.minekube.com/tab/pkg/edition/java/proto/version"
	"go.minekube.com/tab/pkg/proto"
	"go.minekube.com/tab/pkg/tab/packet"
	"go.minekube.com/tab/pkg/tab/text"
)

func buildChat(p *packet.Chat, protocol proto.Protocol) (proto.Packet, error) {
	b := &chat.Builder{Protocol: protocol}
	switch p.Position {
	case packet.PositionSystem:
		b.Type = chat.SystemMessageType
	case packet.PositionActionBar:
		if protocol.Lower(version.Minecraft_1_8) {
			return nil, unsupported(packet.KindChat, protocol, "the action bar was added in 1.8")
		}
		b.Type = chat.GameInfoMessageType
	default:
		b.Type = chat.ChatMessageType
	}
	if b.Type == chat.GameInfoMessageType && protocol.Lower(version.Minecraft_1_11) {
		// the action bar of these versions only renders legacy text
		b.Component = &component.Text{Content: text.ConvertRGBToLegacy(p.Message)}
	} else {
		b.Component = rich(p.Message, protocol)
	}
	return b.ToClient()
}

func buildHeaderFooter(p *packet.HeaderFooter, protocol proto.Protocol) (proto.Packet, error) {
	if protocol.Lower(version.Minecraft_1_8) {
		return nil, unsupported(packet.KindHeaderFooter, protocol, "header and footer were added in 1.8")
	}
	return &jpacket.HeaderAndFooter{
		Header: rich(p.Header, protocol),
		Footer: rich(p.Footer, protocol),
	}, nil
}
