package util

import (
	"io"

	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/tab/pkg/edition/java/profile"
	"go.minekube.com/tab/pkg/proto"
	"go.minekube.com/tab/pkg/util/uuid"
)

// Recover stores a panicked error of a PWriter or PReader in err.
// Other panics are passed on.
//
//	func (x *Packet) Encode(c *proto.PacketContext, wr io.Writer) (err error) {
//		defer util.Recover(&err)
//		w := util.PanicWriter(wr)
//		...
//	}
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	e, ok := r.(error)
	if !ok {
		panic(r)
	}
	*err = e
}

// PWriter writes packet fields and panics on error.
// Use it together with Recover.
type PWriter struct {
	w io.Writer
}

func PanicWriter(w io.Writer) *PWriter {
	return &PWriter{w}
}

func (w *PWriter) VarInt(i int) {
	p(WriteVarInt(w.w, i))
}

func (w *PWriter) String(s string) {
	p(WriteString(w.w, s))
}

func (w *PWriter) Bool(b bool) bool {
	p(WriteBool(w.w, b))
	return b
}

func (w *PWriter) Byte(b byte) {
	p(WriteByte(w.w, b))
}

func (w *PWriter) Int8(i int8) {
	p(WriteInt8(w.w, i))
}

func (w *PWriter) Int16(i int16) {
	p(WriteInt16(w.w, i))
}

func (w *PWriter) Int(i int) {
	p(WriteInt(w.w, i))
}

func (w *PWriter) Float32(f float32) {
	p(WriteFloat32(w.w, f))
}

func (w *PWriter) UUID(id uuid.UUID) {
	p(WriteUUID(w.w, id))
}

func (w *PWriter) Int64(i int64) {
	p(WriteInt64(w.w, i))
}

// Bytes writes b with a length prefix.
func (w *PWriter) Bytes(b []byte) {
	p(WriteBytes(w.w, b))
}

// Raw writes b without a length prefix.
func (w *PWriter) Raw(b []byte) {
	_, err := w.w.Write(b)
	p(err)
}

func (w *PWriter) Properties(props []profile.Property) {
	p(WriteProperties(w.w, props))
}

func (w *PWriter) Strings(s []string) {
	p(WriteStrings(w.w, s))
}

func (w *PWriter) Component(c component.Component, protocol proto.Protocol) {
	p(WriteComponent(w.w, protocol, c))
}

func (w *PWriter) BinaryTag(tag BinaryTag, protocol proto.Protocol) {
	p(WriteBinaryTag(w.w, protocol, tag))
}

func p(err error) {
	if err != nil {
		panic(err)
	}
}
