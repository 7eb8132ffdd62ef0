package scoreboard

import (
	"fmt"
	"io"

	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/tab/pkg/edition/java/proto/util"
	"go.minekube.com/tab/pkg/edition/java/proto/version"
	"go.minekube.com/tab/pkg/proto"
)

// ObjectiveMode is the action of an Objective packet.
type ObjectiveMode byte

const (
	RegisterObjective ObjectiveMode = iota
	UnregisterObjective
	UpdateObjective
)

// HealthDisplay is how an objective renders its score values.
type HealthDisplay int

const (
	IntegerHealthDisplay HealthDisplay = iota
	HeartsHealthDisplay
)

func (h HealthDisplay) String() string {
	if h == HeartsHealthDisplay {
		return "hearts"
	}
	return "integer"
}

func parseHealthDisplay(s string) (HealthDisplay, error) {
	switch s {
	case "integer":
		return IntegerHealthDisplay, nil
	case "hearts":
		return HeartsHealthDisplay, nil
	}
	return 0, fmt.Errorf("unknown health display %q", s)
}

// Limits of objective fields. The name limit applies before 1.18,
// the value limit before 1.13.
const (
	MaxObjectiveName        = 16
	MaxLegacyObjectiveValue = 32
)

// objectiveNameLimit returns the maximum objective name length read for the protocol.
func objectiveNameLimit(protocol proto.Protocol) int {
	if protocol.Lower(version.Minecraft_1_18) {
		return MaxObjectiveName
	}
	return util.DefaultMaxStringSize
}

// Objective registers, unregisters or updates a scoreboard objective.
type Objective struct {
	Name string
	Mode ObjectiveMode
	// Value is the legacy formatted title, before 1.13.
	Value string
	// Title is the title component, 1.13+.
	Title         component.Component
	HealthDisplay HealthDisplay // 1.8+
	NumberFormat  *NumberFormat // 1.20.3+, nil-able
}

// HasDisplay reports whether the mode carries the title and render type.
func (o *Objective) HasDisplay() bool {
	return o.Mode == RegisterObjective || o.Mode == UpdateObjective
}

func (o *Objective) Encode(c *proto.PacketContext, wr io.Writer) (err error) {
	defer util.Recover(&err)
	w := util.PanicWriter(wr)
	w.String(o.Name)
	if c.Protocol.Lower(version.Minecraft_1_8) {
		w.String(o.Value)
		w.Byte(byte(o.Mode))
		return nil
	}
	w.Byte(byte(o.Mode))
	if !o.HasDisplay() {
		return nil
	}
	if c.Protocol.Lower(version.Minecraft_1_13) {
		w.String(o.Value)
		w.String(o.HealthDisplay.String())
		return nil
	}
	w.Component(o.Title, c.Protocol)
	w.VarInt(int(o.HealthDisplay))
	if c.Protocol.GreaterEqual(version.Minecraft_1_20_3) {
		writeOptionalNumberFormat(w, o.NumberFormat, c.Protocol)
	}
	return nil
}

func (o *Objective) Decode(c *proto.PacketContext, rd io.Reader) (err error) {
	defer util.Recover(&err)
	r := util.PanicReader(rd)
	r.StringMax(&o.Name, objectiveNameLimit(c.Protocol))
	var mode byte
	if c.Protocol.Lower(version.Minecraft_1_8) {
		r.StringMax(&o.Value, MaxLegacyObjectiveValue)
		r.Byte(&mode)
		o.Mode = ObjectiveMode(mode)
		return nil
	}
	r.Byte(&mode)
	o.Mode = ObjectiveMode(mode)
	if !o.HasDisplay() {
		return nil
	}
	if c.Protocol.Lower(version.Minecraft_1_13) {
		var display string
		r.StringMax(&o.Value, MaxLegacyObjectiveValue)
		r.StringMax(&display, 16)
		o.HealthDisplay, err = parseHealthDisplay(display)
		return err
	}
	var display int
	r.Component(&o.Title, c.Protocol)
	r.VarInt(&display)
	o.HealthDisplay = HealthDisplay(display)
	if c.Protocol.GreaterEqual(version.Minecraft_1_20_3) {
		o.NumberFormat = readOptionalNumberFormat(r, c.Protocol)
	}
	return nil
}

// DisplayObjective shows an objective in a display slot.
type DisplayObjective struct {
	Position  int // display slot id
	ScoreName string
}

func (d *DisplayObjective) Encode(c *proto.PacketContext, wr io.Writer) (err error) {
	defer util.Recover(&err)
	w := util.PanicWriter(wr)
	if c.Protocol.GreaterEqual(version.Minecraft_1_20_2) {
		w.VarInt(d.Position)
	} else {
		w.Byte(byte(d.Position))
	}
	w.String(d.ScoreName)
	return nil
}

func (d *DisplayObjective) Decode(c *proto.PacketContext, rd io.Reader) (err error) {
	defer util.Recover(&err)
	r := util.PanicReader(rd)
	if c.Protocol.GreaterEqual(version.Minecraft_1_20_2) {
		r.VarInt(&d.Position)
	} else {
		var pos int8
		r.Int8(&pos)
		d.Position = int(pos)
	}
	r.StringMax(&d.ScoreName, objectiveNameLimit(c.Protocol))
	return nil
}

var (
	_ proto.Packet = (*Objective)(nil)
	_ proto.Packet = (*DisplayObjective)(nil)
)
