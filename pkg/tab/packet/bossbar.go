package packet

import (
	"go.minekube.com/tab/pkg/util/uuid"
)

// BossBar shows, updates or removes a boss bar.
type BossBar struct {
	ID     uuid.UUID     `yaml:"id"`
	Action BossBarAction `yaml:"action"`
	Title  string        `yaml:"title,omitempty"`
	// Progress is the filled fraction in [0,1].
	Progress  float32  `yaml:"progress,omitempty"`
	Color     BarColor `yaml:"color,omitempty"`
	Style     BarStyle `yaml:"style,omitempty"`
	DarkenSky bool     `yaml:"darkenSky,omitempty"`
	PlayMusic bool     `yaml:"playMusic,omitempty"`
	CreateFog bool     `yaml:"createFog,omitempty"`
}

// BossBarAction is what a BossBar packet does.
type BossBarAction int

const (
	BossBarAdd BossBarAction = iota
	BossBarRemove
	BossBarUpdateProgress
	BossBarUpdateTitle
	BossBarUpdateStyle
	BossBarUpdateFlags
)

var bossBarActionNames = []string{"add", "remove", "update_progress", "update_title", "update_style", "update_flags"}

func (a BossBarAction) String() string               { return enumString(bossBarActionNames, a) }
func (a BossBarAction) Valid() bool                  { return valid(bossBarActionNames, a) }
func (a BossBarAction) MarshalText() ([]byte, error) { return enumMarshal(bossBarActionNames, a) }
func (a *BossBarAction) UnmarshalText(text []byte) error {
	return enumUnmarshal(bossBarActionNames, text, a, "boss bar action")
}

// BarColor is the colour of a boss bar.
type BarColor int

const (
	BarPink BarColor = iota
	BarBlue
	BarRed
	BarGreen
	BarYellow
	BarPurple
	BarWhite
)

var barColorNames = []string{"pink", "blue", "red", "green", "yellow", "purple", "white"}

func (c BarColor) String() string               { return enumString(barColorNames, c) }
func (c BarColor) Valid() bool                  { return valid(barColorNames, c) }
func (c BarColor) MarshalText() ([]byte, error) { return enumMarshal(barColorNames, c) }
func (c *BarColor) UnmarshalText(text []byte) error {
	return enumUnmarshal(barColorNames, text, c, "boss bar color")
}

// BarStyle is the segmentation of a boss bar.
type BarStyle int

const (
	BarProgress BarStyle = iota
	BarNotched6
	BarNotched10
	BarNotched12
	BarNotched20
)

var barStyleNames = []string{"progress", "notched_6", "notched_10", "notched_12", "notched_20"}

func (s BarStyle) String() string               { return enumString(barStyleNames, s) }
func (s BarStyle) Valid() bool                  { return valid(barStyleNames, s) }
func (s BarStyle) MarshalText() ([]byte, error) { return enumMarshal(barStyleNames, s) }
func (s *BarStyle) UnmarshalText(text []byte) error {
	return enumUnmarshal(barStyleNames, text, s, "boss bar style")
}
