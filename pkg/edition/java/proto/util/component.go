package util

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Tnze/go-mc/nbt"
	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/tab/pkg/edition/java/proto/nbtconv"
	"go.minekube.com/tab/pkg/edition/java/proto/version"
	"go.minekube.com/tab/pkg/proto"
)

// MaxComponentLength is the maximum length of a json chat component.
const MaxComponentLength = 262144

// BinaryTag is a network format binary tag.
type BinaryTag = nbt.RawMessage

// WriteComponent writes a chat component.
// Before 1.20.3 the component is a json string, since then it is a binary tag.
func WriteComponent(wr io.Writer, protocol proto.Protocol, c component.Component) error {
	if c == nil {
		c = &component.Text{}
	}
	j, err := Marshal(protocol, c)
	if err != nil {
		return fmt.Errorf("error marshalling component: %w", err)
	}
	if protocol.GreaterEqual(version.Minecraft_1_20_3) {
		tag, err := nbtconv.JsonToBinaryTag(j)
		if err != nil {
			return err
		}
		return WriteBinaryTag(wr, protocol, tag)
	}
	return WriteString(wr, string(j))
}

// ReadComponent reads a chat component written by WriteComponent.
func ReadComponent(rd io.Reader, protocol proto.Protocol) (component.Component, error) {
	var j []byte
	if protocol.GreaterEqual(version.Minecraft_1_20_3) {
		tag, err := ReadBinaryTag(rd, protocol)
		if err != nil {
			return nil, err
		}
		j, err = nbtconv.BinaryTagToJSON(&tag)
		if err != nil {
			return nil, err
		}
	} else {
		s, err := ReadStringMax(rd, MaxComponentLength)
		if err != nil {
			return nil, err
		}
		j = []byte(s)
	}
	c, err := Unmarshal(protocol, j)
	if err != nil {
		return nil, fmt.Errorf("error unmarshalling component %q: %w", j, err)
	}
	return c, nil
}

// WriteBinaryTag writes a binary tag. Since 1.20.2 the root tag is nameless.
func WriteBinaryTag(wr io.Writer, protocol proto.Protocol, tag BinaryTag) error {
	if err := WriteByte(wr, tag.Type); err != nil {
		return err
	}
	if protocol.Lower(version.Minecraft_1_20_2) {
		// empty root name
		if err := WriteUint16(wr, 0); err != nil {
			return err
		}
	}
	_, err := wr.Write(tag.Data)
	return err
}

// ReadBinaryTag reads a binary tag written by WriteBinaryTag.
//
// Readers that are no io.ByteScanner are buffered and may be read past the tag.
func ReadBinaryTag(rd io.Reader, protocol proto.Protocol) (tag BinaryTag, err error) {
	if _, ok := rd.(io.ByteScanner); !ok {
		rd = bufio.NewReader(rd)
	}
	dec := nbt.NewDecoder(rd)
	dec.NetworkFormat(protocol.GreaterEqual(version.Minecraft_1_20_2))
	if _, err = dec.Decode(&tag); err != nil {
		return tag, fmt.Errorf("error decoding binary tag: %w", err)
	}
	return tag, nil
}
