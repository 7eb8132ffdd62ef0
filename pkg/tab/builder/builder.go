// Package builder translates abstract packets into the wire packets of a protocol
// version and reads the wire packets a client may send back.
//
// Build and the read functions are pure. They may be called concurrently.
// An unknown protocol number is treated as the oldest supported version.
package builder

import (
	"errors"
	"fmt"

	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/tab/pkg/edition/java/proto/version"
	"go.minekube.com/tab/pkg/proto"
	"go.minekube.com/tab/pkg/tab/packet"
	"go.minekube.com/tab/pkg/tab/text"
)

// Build returns the wire packet representing p for the protocol version.
//
// The result may be a proto.Batch when the protocol needs several packets,
// see proto.WritePackets. If the version can not represent p the returned
// error matches ErrUnsupported.
func Build(p packet.Packet, protocol proto.Protocol) (proto.Packet, error) {
	protocol = version.Normalize(protocol)
	switch p := p.(type) {
	case *packet.BossBar:
		return buildBossBar(p, protocol)
	case *packet.Chat:
		return buildChat(p, protocol)
	case *packet.PlayerInfo:
		return buildPlayerInfo(p, protocol)
	case *packet.HeaderFooter:
		return buildHeaderFooter(p, protocol)
	case *packet.DisplayObjective:
		return buildDisplayObjective(p, protocol)
	case *packet.Objective:
		return buildObjective(p, protocol)
	case *packet.Score:
		return buildScore(p, protocol)
	case *packet.Team:
		return buildTeam(p, protocol)
	case nil:
		return nil, errors.New("nil packet")
	}
	return nil, fmt.Errorf("unknown packet type %T", p)
}

// rich converts text into a component for the protocol.
// Hex colours are replaced by legacy colours for clients before 1.16.
func rich(s string, protocol proto.Protocol) component.Component {
	return downsample(text.Component(s), protocol)
}

func downsample(c component.Component, protocol proto.Protocol) component.Component {
	if protocol.Lower(version.Minecraft_1_16) {
		return text.Downsample(c)
	}
	return c
}

// optionalRich is rich for non-empty text and nil otherwise.
func optionalRich(s string, protocol proto.Protocol) component.Component {
	if s == "" {
		return nil
	}
	return rich(s, protocol)
}

// fromComponent is the inverse of optionalRich.
func fromComponent(c component.Component) string {
	if c == nil {
		return ""
	}
	return text.FromComponent(c)
}
