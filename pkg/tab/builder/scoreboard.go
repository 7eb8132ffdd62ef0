package builder

import (
	"go.minekube.com/tab/pkg/edition/java/proto/packet/scoreboard"
	"go.minekube.com/tab/pkg/edition/java/proto/version"
	"go.minekube.com/tab/pkg/internal/mathutil"
	"go.minekube.com/tab/pkg/proto"
	"go.minekube.com/tab/pkg/tab/packet"
	"go.minekube.com/tab/pkg/tab/text"
)

func buildDisplayObjective(p *packet.DisplayObjective, protocol proto.Protocol) (proto.Packet, error) {
	if !p.Slot.Valid() {
		return nil, unsupported(packet.KindDisplayObjective, protocol, "invalid display slot %d", int(p.Slot))
	}
	if p.Slot.IsTeamSidebar() && protocol.Lower(version.Minecraft_1_8) {
		return nil, unsupported(packet.KindDisplayObjective, protocol, "team sidebars were added in 1.8")
	}
	return &scoreboard.DisplayObjective{
		Position:  int(p.Slot),
		ScoreName: p.Objective,
	}, nil
}

// ReadDisplayObjective reads a display objective packet sent with the given protocol.
func ReadDisplayObjective(wire proto.Packet, protocol proto.Protocol) (*packet.DisplayObjective, error) {
	protocol = version.Normalize(protocol)
	k := packet.KindDisplayObjective
	w, ok := wire.(*scoreboard.DisplayObjective)
	if !ok {
		return nil, wrongType(k, protocol, wire)
	}
	slot := packet.DisplaySlot(w.Position)
	if !slot.Valid() || (slot.IsTeamSidebar() && protocol.Lower(version.Minecraft_1_8)) {
		return nil, parseErr(k, protocol, "position", "unknown display slot %d", w.Position)
	}
	return &packet.DisplayObjective{Slot: slot, Objective: w.ScoreName}, nil
}

func buildObjective(p *packet.Objective, protocol proto.Protocol) (proto.Packet, error) {
	if !p.Action.Valid() {
		return nil, unsupported(packet.KindObjective, protocol, "invalid action %d", int(p.Action))
	}
	o := &scoreboard.Objective{
		Name: p.Name,
		Mode: scoreboard.ObjectiveMode(p.Action),
	}
	if p.Action == packet.ObjectiveRemove {
		return o, nil
	}
	title := text.StructuredOrCut(p.DisplayName, protocol, scoreboard.MaxLegacyObjectiveValue)
	if title.IsRich() {
		o.Title = downsample(title.Rich, protocol)
	} else {
		o.Value = title.Legacy
	}
	o.HealthDisplay = scoreboard.IntegerHealthDisplay
	if p.RenderType == packet.RenderHearts {
		o.HealthDisplay = scoreboard.HeartsHealthDisplay
	}
	if protocol.GreaterEqual(version.Minecraft_1_20_3) {
		o.NumberFormat = numberFormat(p.NumberFormat, protocol)
	}
	return o, nil
}

// ReadObjective reads an objective packet sent with the given protocol.
func ReadObjective(wire proto.Packet, protocol proto.Protocol) (*packet.Objective, error) {
	protocol = version.Normalize(protocol)
	k := packet.KindObjective
	w, ok := wire.(*scoreboard.Objective)
	if !ok {
		return nil, wrongType(k, protocol, wire)
	}
	o := &packet.Objective{
		Name:   w.Name,
		Action: packet.ObjectiveAction(w.Mode),
	}
	if !o.Action.Valid() {
		return nil, parseErr(k, protocol, "mode", "unknown mode %d", int(w.Mode))
	}
	if !w.HasDisplay() {
		return o, nil
	}
	if protocol.GreaterEqual(version.Minecraft_1_13) {
		o.DisplayName = fromComponent(w.Title)
	} else {
		o.DisplayName = w.Value
	}
	switch w.HealthDisplay {
	case scoreboard.IntegerHealthDisplay:
		o.RenderType = packet.RenderInteger
	case scoreboard.HeartsHealthDisplay:
		o.RenderType = packet.RenderHearts
	default:
		return nil, parseErr(k, protocol, "renderType", "unknown render type %d", int(w.HealthDisplay))
	}
	if protocol.GreaterEqual(version.Minecraft_1_20_3) && w.NumberFormat != nil {
		switch w.NumberFormat.Type {
		case scoreboard.BlankNumberFormat:
			o.NumberFormat = &packet.NumberFormat{Type: packet.FormatBlank}
		case scoreboard.FixedNumberFormat:
			o.NumberFormat = &packet.NumberFormat{Type: packet.FormatFixed, Fixed: fromComponent(w.NumberFormat.Fixed)}
		case scoreboard.StyledNumberFormat:
			// only the style of the value changes, shown as default
		default:
			return nil, parseErr(k, protocol, "numberFormat", "unknown number format %d", int(w.NumberFormat.Type))
		}
	}
	return o, nil
}

func numberFormat(f *packet.NumberFormat, protocol proto.Protocol) *scoreboard.NumberFormat {
	if f == nil {
		return nil
	}
	switch f.Type {
	case packet.FormatBlank:
		return &scoreboard.NumberFormat{Type: scoreboard.BlankNumberFormat}
	case packet.FormatFixed:
		return &scoreboard.NumberFormat{Type: scoreboard.FixedNumberFormat, Fixed: rich(f.Fixed, protocol)}
	}
	return nil
}

func buildScore(p *packet.Score, protocol proto.Protocol) (proto.Packet, error) {
	if !p.Action.Valid() {
		return nil, unsupported(packet.KindScore, protocol, "invalid action %d", int(p.Action))
	}
	value := mathutil.ClampInt32(int64(p.Value))
	if protocol.GreaterEqual(version.Minecraft_1_20_3) {
		if p.Action == packet.ScoreRemove {
			return &scoreboard.ResetScore{Holder: p.Holder, Objective: p.Objective}, nil
		}
		return &scoreboard.UpdateScore{
			Holder:       p.Holder,
			Objective:    p.Objective,
			Value:        value,
			DisplayName:  optionalRich(p.DisplayName, protocol),
			NumberFormat: numberFormat(p.NumberFormat, protocol),
		}, nil
	}
	s := &scoreboard.Score{
		Holder:    p.Holder,
		Action:    scoreboard.ChangeScore,
		Objective: p.Objective,
		Value:     value,
	}
	if p.Action == packet.ScoreRemove {
		s.Action = scoreboard.RemoveScore
		s.Value = 0
	}
	return s, nil
}
