package scoreboard

import (
	"io"

	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/tab/pkg/edition/java/proto/util"
	"go.minekube.com/tab/pkg/edition/java/proto/version"
	"go.minekube.com/tab/pkg/proto"
)

// ScoreAction is the action of a Score packet.
type ScoreAction byte

const (
	ChangeScore ScoreAction = iota
	RemoveScore
)

// Score changes or removes a score before 1.20.3.
type Score struct {
	Holder    string
	Action    ScoreAction
	Objective string // empty removes the holder from all objectives on 1.7
	Value     int32
}

func (s *Score) Encode(c *proto.PacketContext, wr io.Writer) (err error) {
	defer util.Recover(&err)
	w := util.PanicWriter(wr)
	w.String(s.Holder)
	w.Byte(byte(s.Action))
	if c.Protocol.Lower(version.Minecraft_1_8) {
		if s.Action == ChangeScore {
			w.String(s.Objective)
			w.Int(int(s.Value))
		}
		return nil
	}
	w.String(s.Objective)
	if s.Action == ChangeScore {
		w.VarInt(int(s.Value))
	}
	return nil
}

func (s *Score) Decode(c *proto.PacketContext, rd io.Reader) (err error) {
	defer util.Recover(&err)
	r := util.PanicReader(rd)
	var action byte
	r.String(&s.Holder)
	r.Byte(&action)
	s.Action = ScoreAction(action)
	if c.Protocol.Lower(version.Minecraft_1_8) {
		if s.Action == ChangeScore {
			var v int
			r.StringMax(&s.Objective, objectiveNameLimit(c.Protocol))
			r.Int(&v)
			s.Value = int32(v)
		}
		return nil
	}
	r.StringMax(&s.Objective, objectiveNameLimit(c.Protocol))
	if s.Action == ChangeScore {
		var v int
		r.VarInt(&v)
		s.Value = int32(v)
	}
	return nil
}

// UpdateScore sets a score (1.20.3+).
type UpdateScore struct {
	Holder       string
	Objective    string
	Value        int32
	DisplayName  component.Component // nil-able
	NumberFormat *NumberFormat       // nil-able
}

func (s *UpdateScore) Encode(c *proto.PacketContext, wr io.Writer) (err error) {
	defer util.Recover(&err)
	w := util.PanicWriter(wr)
	w.String(s.Holder)
	w.String(s.Objective)
	w.VarInt(int(s.Value))
	if w.Bool(s.DisplayName != nil) {
		w.Component(s.DisplayName, c.Protocol)
	}
	writeOptionalNumberFormat(w, s.NumberFormat, c.Protocol)
	return nil
}

func (s *UpdateScore) Decode(c *proto.PacketContext, rd io.Reader) (err error) {
	defer util.Recover(&err)
	r := util.PanicReader(rd)
	var v int
	r.String(&s.Holder)
	r.String(&s.Objective)
	r.VarInt(&v)
	s.Value = int32(v)
	s.DisplayName = nil
	if r.Ok() {
		r.Component(&s.DisplayName, c.Protocol)
	}
	s.NumberFormat = readOptionalNumberFormat(r, c.Protocol)
	return nil
}

// ResetScore removes a score (1.20.3+).
type ResetScore struct {
	Holder    string
	Objective string // empty resets the holder in all objectives
}

func (s *ResetScore) Encode(c *proto.PacketContext, wr io.Writer) (err error) {
	defer util.Recover(&err)
	w := util.PanicWriter(wr)
	w.String(s.Holder)
	if w.Bool(s.Objective != "") {
		w.String(s.Objective)
	}
	return nil
}

func (s *ResetScore) Decode(c *proto.PacketContext, rd io.Reader) (err error) {
	defer util.Recover(&err)
	r := util.PanicReader(rd)
	r.String(&s.Holder)
	s.Objective = ""
	if r.Ok() {
		r.String(&s.Objective)
	}
	return nil
}

var (
	_ proto.Packet = (*Score)(nil)
	_ proto.Packet = (*UpdateScore)(nil)
	_ proto.Packet = (*ResetScore)(nil)
)
