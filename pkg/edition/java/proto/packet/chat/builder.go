// Package chat holds the chat message packets and picks the one a client understands.
package chat

import (
	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/tab/pkg/edition/java/proto/util"
	"go.minekube.com/tab/pkg/edition/java/proto/version"
	"go.minekube.com/tab/pkg/proto"
	"go.minekube.com/tab/pkg/util/uuid"
)

// MessageType is where a client shows a chat message.
type MessageType byte

const (
	ChatMessageType     MessageType = iota // chat box, hidden by the chat settings of the client
	SystemMessageType                      // chat box
	GameInfoMessageType                    // action bar
)

// Builder builds the chat packet for a protocol.
type Builder struct {
	Protocol  proto.Protocol
	Component component.Component
	Type      MessageType
	// Sender is only sent to 1.16 to 1.18 clients, uuid.Nil for the server.
	Sender uuid.UUID
}

// ToClient returns a LegacyChat before 1.19 and a SystemChat since.
// Since 1.19 ChatMessageType is only valid for signed player messages
// and is sent as SystemMessageType.
func (b *Builder) ToClient() (proto.Packet, error) {
	msg := b.Component
	if msg == nil {
		msg = &component.Text{}
	}
	if b.Protocol.Lower(version.Minecraft_1_19) {
		j, err := util.Marshal(b.Protocol, msg)
		if err != nil {
			return nil, err
		}
		return &LegacyChat{Message: string(j), Type: b.Type, Sender: b.Sender}, nil
	}
	typ := b.Type
	if typ == ChatMessageType {
		typ = SystemMessageType
	}
	return &SystemChat{Component: msg, Type: typ}, nil
}
