package util

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"go.minekube.com/tab/pkg/edition/java/profile"
	"go.minekube.com/tab/pkg/util/uuid"
)

// DefaultMaxStringSize is the character limit of strings without a tighter field limit.
const DefaultMaxStringSize = bufio.MaxScanTokenSize

// readFixed reads a big endian fixed size value.
func readFixed[T int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64](rd io.Reader) (v T, err error) {
	err = binary.Read(rd, binary.BigEndian, &v)
	return
}

func ReadUint8(rd io.Reader) (uint8, error) {
	if br, ok := rd.(io.ByteReader); ok {
		return br.ReadByte()
	}
	return readFixed[uint8](rd)
}

func ReadByte(rd io.Reader) (byte, error)     { return ReadUint8(rd) }
func ReadInt8(rd io.Reader) (int8, error)     { return readFixed[int8](rd) }
func ReadInt16(rd io.Reader) (int16, error)   { return readFixed[int16](rd) }
func ReadInt32(rd io.Reader) (int32, error)   { return readFixed[int32](rd) }
func ReadInt64(rd io.Reader) (int64, error)   { return readFixed[int64](rd) }
func ReadUint64(rd io.Reader) (uint64, error) { return readFixed[uint64](rd) }

func ReadInt(rd io.Reader) (int, error) {
	i, err := ReadInt32(rd)
	return int(i), err
}

func ReadBool(rd io.Reader) (bool, error) {
	b, err := ReadUint8(rd)
	return b != 0, err
}

func ReadFloat32(rd io.Reader) (float32, error) {
	bits, err := readFixed[uint32](rd)
	return math.Float32frombits(bits), err
}

// ReadVarInt reads a protocol VarInt of at most five bytes.
func ReadVarInt(rd io.Reader) (int, error) {
	var v uint32
	for i := 0; ; i++ {
		if i == 5 {
			return 0, errors.New("decode: VarInt is too big")
		}
		b, err := ReadUint8(rd)
		if err != nil {
			return 0, err
		}
		v |= uint32(b&0x7F) << (7 * i)
		if b&0x80 == 0 {
			return int(int32(v)), nil
		}
	}
}

func ReadString(rd io.Reader) (string, error) {
	return ReadStringMax(rd, DefaultMaxStringSize)
}

// ReadStringMax reads a length-prefixed string of at most max characters.
func ReadStringMax(rd io.Reader, max int) (string, error) {
	// a character takes up to four bytes
	b, err := readPrefixed(rd, max*4, "string")
	return string(b), err
}

func ReadBytes(rd io.Reader) ([]byte, error) {
	return readPrefixed(rd, bufio.MaxScanTokenSize, "byte array")
}

func readPrefixed(rd io.Reader, maxLen int, what string) ([]byte, error) {
	n, err := ReadVarInt(rd)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("negative %s length %d", what, n)
	}
	if n > maxLen {
		return nil, fmt.Errorf("%s length %d exceeds maximum %d", what, n, maxLen)
	}
	b := make([]byte, n)
	_, err = io.ReadFull(rd, b)
	return b, err
}

func ReadStringArray(rd io.Reader) ([]string, error) {
	n, err := ReadVarInt(rd)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("negative string array length %d", n)
	}
	a := make([]string, 0, min(n, 64))
	for range n {
		s, err := ReadString(rd)
		if err != nil {
			return nil, err
		}
		a = append(a, s)
	}
	return a, nil
}

// ReadUUID reads a UUID sent as two big endian 64-bit halves.
func ReadUUID(rd io.Reader) (id uuid.UUID, err error) {
	_, err = io.ReadFull(rd, id[:])
	return
}

// ReadProperties reads the profile properties of a tab list entry.
func ReadProperties(rd io.Reader) ([]profile.Property, error) {
	n, err := ReadVarInt(rd)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("negative property count %d", n)
	}
	props := make([]profile.Property, 0, min(n, 16))
	for range n {
		var p profile.Property
		if p.Name, err = ReadString(rd); err != nil {
			return nil, err
		}
		if p.Value, err = ReadString(rd); err != nil {
			return nil, err
		}
		signed, err := ReadBool(rd)
		if err != nil {
			return nil, err
		}
		if signed {
			if p.Signature, err = ReadString(rd); err != nil {
				return nil, err
			}
		}
		props = append(props, p)
	}
	return props, nil
}
