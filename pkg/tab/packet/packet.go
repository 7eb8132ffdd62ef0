// Package packet contains the version independent description of the player list,
// boss bar and scoreboard updates.
//
// Packets are plain values constructed per send. Text fields hold raw text with
// legacy colour codes and #RRGGBB markers. Turning a packet into the layout of a
// concrete protocol version is done by the builder package.
package packet

import (
	"fmt"
)

// Kind identifies the type of abstract packet.
type Kind int

const (
	KindBossBar Kind = iota
	KindChat
	KindPlayerInfo
	KindHeaderFooter
	KindDisplayObjective
	KindObjective
	KindScore
	KindTeam
)

var kindNames = []string{
	"boss_bar",
	"chat",
	"player_info",
	"header_footer",
	"display_objective",
	"objective",
	"score",
	"team",
}

func (k Kind) String() string               { return enumString(kindNames, k) }
func (k Kind) MarshalText() ([]byte, error) { return enumMarshal(kindNames, k) }
func (k *Kind) UnmarshalText(text []byte) error {
	return enumUnmarshal(kindNames, text, k, "packet kind")
}

// Kinds returns all packet kinds.
func Kinds() []Kind {
	ks := make([]Kind, len(kindNames))
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// Packet is an abstract packet.
// The set of implementations is closed, see New.
type Packet interface {
	Kind() Kind
	abstract()
}

// New returns a new zero packet of the given kind.
func New(k Kind) (Packet, error) {
	switch k {
	case KindBossBar:
		return &BossBar{}, nil
	case KindChat:
		return &Chat{}, nil
	case KindPlayerInfo:
		return &PlayerInfo{}, nil
	case KindHeaderFooter:
		return &HeaderFooter{}, nil
	case KindDisplayObjective:
		return &DisplayObjective{}, nil
	case KindObjective:
		return &Objective{}, nil
	case KindScore:
		return &Score{}, nil
	case KindTeam:
		return &Team{}, nil
	}
	return nil, fmt.Errorf("unknown packet kind %d", k)
}

func (*BossBar) Kind() Kind          { return KindBossBar }
func (*Chat) Kind() Kind             { return KindChat }
func (*PlayerInfo) Kind() Kind       { return KindPlayerInfo }
func (*HeaderFooter) Kind() Kind     { return KindHeaderFooter }
func (*DisplayObjective) Kind() Kind { return KindDisplayObjective }
func (*Objective) Kind() Kind        { return KindObjective }
func (*Score) Kind() Kind            { return KindScore }
func (*Team) Kind() Kind             { return KindTeam }

func (*BossBar) abstract()          {}
func (*Chat) abstract()             {}
func (*PlayerInfo) abstract()       {}
func (*HeaderFooter) abstract()     {}
func (*DisplayObjective) abstract() {}
func (*Objective) abstract()        {}
func (*Score) abstract()            {}
func (*Team) abstract()             {}

var (
	_ Packet = (*BossBar)(nil)
	_ Packet = (*Chat)(nil)
	_ Packet = (*PlayerInfo)(nil)
	_ Packet = (*HeaderFooter)(nil)
	_ Packet = (*DisplayObjective)(nil)
	_ Packet = (*Objective)(nil)
	_ Packet = (*Score)(nil)
	_ Packet = (*Team)(nil)
)
