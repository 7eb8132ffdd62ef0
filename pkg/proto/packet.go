// Package proto defines wire packets and the protocol versions they are encoded for.
package proto

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"
)

// Packet is the data of a wire packet without its packet id.
// Encode and Decode switch the field layout on the context protocol.
type Packet interface {
	Encode(c *PacketContext, wr io.Writer) error
	Decode(c *PacketContext, rd io.Reader) error
}

// PacketWriter sends packets to a client.
type PacketWriter interface {
	WritePacket(Packet) error
}

// Direction is the side a packet is sent to.
type Direction uint8

const (
	ClientBound Direction = iota
	ServerBound
)

func (d Direction) String() string {
	switch d {
	case ClientBound:
		return "ClientBound"
	case ServerBound:
		return "ServerBound"
	}
	return "UnknownBound"
}

// PacketContext is the read-only context a packet is encoded or decoded in.
type PacketContext struct {
	Direction Direction
	Protocol  Protocol
}

func (c *PacketContext) String() string {
	return fmt.Sprintf("%s protocol %s", c.Direction, c.Protocol)
}

// TypeOf returns the dereferenced type of p.
func TypeOf(p Packet) reflect.Type {
	t := reflect.TypeOf(p)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// ErrDecoderLeftBytes is returned by Unmarshal when a packet did not consume all its data.
var ErrDecoderLeftBytes = errors.New("decoder did not read all bytes of packet")

// Marshal encodes p in the context.
func Marshal(c *PacketContext, p Packet) ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Encode(c, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes data into p, which must consume all of it.
func Unmarshal(c *PacketContext, data []byte, p Packet) error {
	rd := bytes.NewReader(data)
	if err := p.Decode(c, rd); err != nil {
		return err
	}
	if n := rd.Len(); n != 0 {
		return fmt.Errorf("%w: %d bytes left decoding %s", ErrDecoderLeftBytes, n, TypeOf(p))
	}
	return nil
}

// ErrBatch is returned when a Batch is encoded or decoded itself.
var ErrBatch = errors.New("batch is no wire packet, its packets must be sent one by one")

// Batch is a sequence of wire packets sent in order, used where one
// packet of the protocol can not carry all the data.
type Batch []Packet

func (Batch) Encode(*PacketContext, io.Writer) error { return ErrBatch }
func (Batch) Decode(*PacketContext, io.Reader) error { return ErrBatch }

// WritePackets writes p, or the packets of p in order if it is a Batch.
func WritePackets(w PacketWriter, p Packet) error {
	b, ok := p.(Batch)
	if !ok {
		return w.WritePacket(p)
	}
	for _, pk := range b {
		if err := w.WritePacket(pk); err != nil {
			return err
		}
	}
	return nil
}
