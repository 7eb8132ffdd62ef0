package packet

import (
	"go.minekube.com/tab/pkg/util/uuid"
)

// PlayerInfo adds, updates or removes player list entries.
type PlayerInfo struct {
	Action  PlayerInfoAction  `yaml:"action"`
	Entries []PlayerInfoEntry `yaml:"entries"`
}

// PlayerInfoEntry is a single player list entry.
// Only the fields used by the action are read.
type PlayerInfoEntry struct {
	ID       uuid.UUID `yaml:"id"`
	Name     string    `yaml:"name,omitempty"`
	Skin     *Skin     `yaml:"skin,omitempty"`
	Latency  int       `yaml:"latency,omitempty"`
	GameMode GameMode  `yaml:"gameMode,omitempty"`
	// DisplayName overrides the shown name, empty means no override.
	DisplayName string `yaml:"displayName,omitempty"`
}

// Skin is the signed textures property of a player.
type Skin struct {
	Value     string `yaml:"value"`
	Signature string `yaml:"signature,omitempty"`
}

// PlayerInfoAction is what a PlayerInfo packet does.
type PlayerInfoAction int

const (
	PlayerInfoAdd PlayerInfoAction = iota
	PlayerInfoRemove
	PlayerInfoUpdateDisplayName
	PlayerInfoUpdateLatency
	PlayerInfoUpdateGameMode
)

var playerInfoActionNames = []string{"add", "remove", "update_display_name", "update_latency", "update_game_mode"}

func (a PlayerInfoAction) String() string               { return enumString(playerInfoActionNames, a) }
func (a PlayerInfoAction) Valid() bool                  { return valid(playerInfoActionNames, a) }
func (a PlayerInfoAction) MarshalText() ([]byte, error) { return enumMarshal(playerInfoActionNames, a) }
func (a *PlayerInfoAction) UnmarshalText(text []byte) error {
	return enumUnmarshal(playerInfoActionNames, text, a, "player info action")
}

// GameMode is a player's game mode. The ordinal is the protocol value.
type GameMode int

const (
	Survival GameMode = iota
	Creative
	Adventure
	Spectator
)

var gameModeNames = []string{"survival", "creative", "adventure", "spectator"}

func (g GameMode) String() string               { return enumString(gameModeNames, g) }
func (g GameMode) Valid() bool                  { return valid(gameModeNames, g) }
func (g GameMode) MarshalText() ([]byte, error) { return enumMarshal(gameModeNames, g) }
func (g *GameMode) UnmarshalText(text []byte) error {
	return enumUnmarshal(gameModeNames, text, g, "game mode")
}
