package builder

import (
	"math"

	bossbarpacket "go.minekube.com/tab/pkg/edition/java/proto/packet/bossbar"
	"go.minekube.com/tab/pkg/edition/java/proto/version"
	"go.minekube.com/tab/pkg/internal/mathutil"
	"go.minekube.com/tab/pkg/proto"
	"go.minekube.com/tab/pkg/tab/packet"
)

func buildBossBar(p *packet.BossBar, protocol proto.Protocol) (proto.Packet, error) {
	if protocol.Lower(version.Minecraft_1_9) {
		return nil, unsupported(packet.KindBossBar, protocol, "boss bars were added in 1.9")
	}
	if !p.Action.Valid() {
		return nil, unsupported(packet.KindBossBar, protocol, "invalid action %d", int(p.Action))
	}
	bb := &bossbarpacket.BossBar{
		ID:     p.ID,
		Action: bossbarpacket.Action(p.Action),
	}
	switch p.Action {
	case packet.BossBarAdd:
		bb.Name = rich(p.Title, protocol)
		bb.Percent = progress(p.Progress)
		bb.Color, bb.Overlay = barColor(p.Color), barOverlay(p.Style)
		bb.Flags = barFlags(p, protocol)
	case packet.BossBarUpdateProgress:
		bb.Percent = progress(p.Progress)
	case packet.BossBarUpdateTitle:
		bb.Name = rich(p.Title, protocol)
	case packet.BossBarUpdateStyle:
		bb.Color, bb.Overlay = barColor(p.Color), barOverlay(p.Style)
	case packet.BossBarUpdateFlags:
		bb.Flags = barFlags(p, protocol)
	}
	return bb, nil
}

// progress clamps to [0,1], NaN becomes 0.
func progress(f float32) float32 {
	if math.IsNaN(float64(f)) {
		return 0
	}
	return mathutil.Clamp(f, 0, 1)
}

func barColor(c packet.BarColor) bossbarpacket.Color {
	if !c.Valid() {
		return bossbarpacket.WhiteColor
	}
	return bossbarpacket.Color(c)
}

func barOverlay(s packet.BarStyle) bossbarpacket.Overlay {
	if !s.Valid() {
		return bossbarpacket.ProgressOverlay
	}
	return bossbarpacket.Overlay(s)
}

func barFlags(p *packet.BossBar, protocol proto.Protocol) byte {
	var flags []bossbarpacket.Flag
	if p.DarkenSky {
		flags = append(flags, bossbarpacket.DarkenScreenFlag)
	}
	if p.PlayMusic {
		flags = append(flags, bossbarpacket.PlayBossMusicFlag)
	}
	if p.CreateFog {
		if protocol.Lower(version.Minecraft_1_10) {
			flags = append(flags, bossbarpacket.PlayBossMusicFlag)
		} else {
			flags = append(flags, bossbarpacket.CreateWorldFogFlag)
		}
	}
	return bossbarpacket.ConvertFlags(flags...)
}
