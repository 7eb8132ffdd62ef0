package util

import (
	"io"

	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/tab/pkg/edition/java/profile"
	"go.minekube.com/tab/pkg/proto"
	"go.minekube.com/tab/pkg/util/uuid"
)

// PReader reads packet fields and panics on error.
// Use it together with Recover.
type PReader struct {
	r io.Reader
}

func PanicReader(r io.Reader) *PReader {
	return &PReader{r}
}

func (r *PReader) VarInt(i *int) {
	v, err := ReadVarInt(r.r)
	p(err)
	*i = v
}

func (r *PReader) String(s *string) {
	v, err := ReadString(r.r)
	p(err)
	*s = v
}

func (r *PReader) StringMax(s *string, max int) {
	v, err := ReadStringMax(r.r, max)
	p(err)
	*s = v
}

func (r *PReader) Bool(b *bool) {
	v, err := ReadBool(r.r)
	p(err)
	*b = v
}

// Ok reads a boolean presence flag.
func (r *PReader) Ok() bool {
	var ok bool
	r.Bool(&ok)
	return ok
}

func (r *PReader) Byte(b *byte) {
	v, err := ReadByte(r.r)
	p(err)
	*b = v
}

func (r *PReader) Int8(i *int8) {
	v, err := ReadInt8(r.r)
	p(err)
	*i = v
}

func (r *PReader) Int16(i *int16) {
	v, err := ReadInt16(r.r)
	p(err)
	*i = v
}

func (r *PReader) Int(i *int) {
	v, err := ReadInt(r.r)
	p(err)
	*i = v
}

func (r *PReader) Float32(f *float32) {
	v, err := ReadFloat32(r.r)
	p(err)
	*f = v
}

func (r *PReader) UUID(id *uuid.UUID) {
	v, err := ReadUUID(r.r)
	p(err)
	*id = v
}

func (r *PReader) Int64(i *int64) {
	v, err := ReadInt64(r.r)
	p(err)
	*i = v
}

func (r *PReader) Bytes(b *[]byte) {
	v, err := ReadBytes(r.r)
	p(err)
	*b = v
}

func (r *PReader) Properties(props *[]profile.Property) {
	v, err := ReadProperties(r.r)
	p(err)
	*props = v
}

func (r *PReader) Strings(s *[]string) {
	v, err := ReadStringArray(r.r)
	p(err)
	*s = v
}

func (r *PReader) Component(c *component.Component, protocol proto.Protocol) {
	v, err := ReadComponent(r.r, protocol)
	p(err)
	*c = v
}

func (r *PReader) BinaryTag(tag *BinaryTag, protocol proto.Protocol) {
	v, err := ReadBinaryTag(r.r, protocol)
	p(err)
	*tag = v
}
