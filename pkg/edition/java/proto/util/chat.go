package util

import (
	"bytes"

	"go.minekube.com/common/minecraft/component"
	"go.minekube.com/common/minecraft/component/codec"

	"go.minekube.com/tab/pkg/edition/java/proto/version"
	"go.minekube.com/tab/pkg/proto"
)

var (
	// rgb colors are downsampled to the nearest named color
	legacyJSON = &codec.Json{}
	modernJSON = &codec.Json{NoDownsampleColor: true, NoLegacyHover: true}
)

// JsonCodec returns the json component codec a client of the protocol understands.
func JsonCodec(protocol proto.Protocol) codec.Codec {
	if protocol.Lower(version.Minecraft_1_16) {
		return legacyJSON
	}
	return modernJSON
}

// Marshal encodes c as json for the protocol.
func Marshal(protocol proto.Protocol, c component.Component) ([]byte, error) {
	var buf bytes.Buffer
	err := JsonCodec(protocol).Marshal(&buf, c)
	return buf.Bytes(), err
}

func Unmarshal(protocol proto.Protocol, data []byte) (component.Component, error) {
	return JsonCodec(protocol).Unmarshal(data)
}
