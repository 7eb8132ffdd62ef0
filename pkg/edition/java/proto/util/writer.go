package util

import (
	"encoding/binary"
	"io"
	"math"

	"go.minekube.com/tab/pkg/edition/java/profile"
	"go.minekube.com/tab/pkg/util/uuid"
)

// writeFixed writes a big endian fixed size value.
func writeFixed[T int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64](wr io.Writer, v T) error {
	return binary.Write(wr, binary.BigEndian, v)
}

func WriteUint8(wr io.Writer, v uint8) error {
	_, err := wr.Write([]byte{v})
	return err
}

func WriteByte(wr io.Writer, v byte) error       { return WriteUint8(wr, v) }
func WriteInt8(wr io.Writer, v int8) error       { return WriteUint8(wr, uint8(v)) }
func WriteInt16(wr io.Writer, v int16) error     { return writeFixed(wr, v) }
func WriteUint16(wr io.Writer, v uint16) error   { return writeFixed(wr, v) }
func WriteInt32(wr io.Writer, v int32) error     { return writeFixed(wr, v) }
func WriteUint32(wr io.Writer, v uint32) error   { return writeFixed(wr, v) }
func WriteInt64(wr io.Writer, v int64) error     { return writeFixed(wr, v) }
func WriteUint64(wr io.Writer, v uint64) error   { return writeFixed(wr, v) }
func WriteInt(wr io.Writer, v int) error         { return WriteInt32(wr, int32(v)) }
func WriteFloat32(wr io.Writer, v float32) error { return WriteUint32(wr, math.Float32bits(v)) }

func WriteBool(wr io.Writer, v bool) error {
	if v {
		return WriteUint8(wr, 1)
	}
	return WriteUint8(wr, 0)
}

// WriteVarInt writes v in the protocol VarInt encoding.
func WriteVarInt(wr io.Writer, v int) error {
	var buf [5]byte
	u, n := uint32(v), 0
	for ; u >= 0x80; u >>= 7 {
		buf[n] = byte(u) | 0x80
		n++
	}
	buf[n] = byte(u)
	_, err := wr.Write(buf[:n+1])
	return err
}

// WriteBytes writes b prefixed with its VarInt length.
func WriteBytes(wr io.Writer, b []byte) error {
	if err := WriteVarInt(wr, len(b)); err != nil {
		return err
	}
	_, err := wr.Write(b)
	return err
}

func WriteString(wr io.Writer, s string) error {
	return WriteBytes(wr, []byte(s))
}

func WriteStrings(wr io.Writer, a []string) error {
	if err := WriteVarInt(wr, len(a)); err != nil {
		return err
	}
	for _, s := range a {
		if err := WriteString(wr, s); err != nil {
			return err
		}
	}
	return nil
}

func WriteUUID(wr io.Writer, id uuid.UUID) error {
	_, err := wr.Write(id[:])
	return err
}

// WriteProperties writes the profile properties of a tab list entry.
// The signature is only sent when present.
func WriteProperties(wr io.Writer, props []profile.Property) error {
	if err := WriteVarInt(wr, len(props)); err != nil {
		return err
	}
	for _, p := range props {
		signed := p.Signature != ""
		if err := WriteString(wr, p.Name); err != nil {
			return err
		}
		if err := WriteString(wr, p.Value); err != nil {
			return err
		}
		if err := WriteBool(wr, signed); err != nil {
			return err
		}
		if signed {
			if err := WriteString(wr, p.Signature); err != nil {
				return err
			}
		}
	}
	return nil
}
