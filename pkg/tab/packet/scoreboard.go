package packet

import (
	"fmt"
	"strings"
)

// DisplayObjective shows an objective in a display slot.
type DisplayObjective struct {
	Slot      DisplaySlot `yaml:"slot"`
	Objective string      `yaml:"objective"`
}

// DisplaySlot is where an objective is displayed.
// The ordinal is the protocol value.
type DisplaySlot int

const (
	SlotPlayerList DisplaySlot = iota
	SlotSidebar
	SlotBelowName
	// SlotTeamSidebar is the sidebar shown to members of the team with the first
	// legacy colour (black). The sidebars of the other fifteen colours follow.
	SlotTeamSidebar
)

// TeamSlotCount is the number of team coloured sidebar slots.
const TeamSlotCount = 16

var teamSlotColors = []string{
	"black", "dark_blue", "dark_green", "dark_aqua", "dark_red", "dark_purple", "gold", "gray",
	"dark_gray", "blue", "green", "aqua", "red", "light_purple", "yellow", "white",
}

// TeamSidebar returns the sidebar slot of the team colour with the given legacy colour index.
func TeamSidebar(colorIndex int) DisplaySlot { return SlotTeamSidebar + DisplaySlot(colorIndex) }

// IsTeamSidebar reports whether the slot is one of the team coloured sidebars.
func (s DisplaySlot) IsTeamSidebar() bool {
	return s >= SlotTeamSidebar && s < SlotTeamSidebar+TeamSlotCount
}

// Valid reports whether the slot exists.
func (s DisplaySlot) Valid() bool { return s >= SlotPlayerList && s < SlotTeamSidebar+TeamSlotCount }

func (s DisplaySlot) String() string {
	switch {
	case s == SlotPlayerList:
		return "list"
	case s == SlotSidebar:
		return "sidebar"
	case s == SlotBelowName:
		return "below_name"
	case s.IsTeamSidebar():
		return "sidebar.team." + teamSlotColors[s-SlotTeamSidebar]
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

func (s DisplaySlot) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid display slot %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *DisplaySlot) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))
	for i := SlotPlayerList; i < SlotTeamSidebar+TeamSlotCount; i++ {
		if i.String() == name {
			*s = i
			return nil
		}
	}
	return fmt.Errorf("unknown display slot %q", name)
}

// Objective creates, updates or removes a scoreboard objective.
type Objective struct {
	Name        string          `yaml:"name"`
	DisplayName string          `yaml:"displayName,omitempty"`
	RenderType  RenderType      `yaml:"renderType,omitempty"`
	Action      ObjectiveAction `yaml:"action"`
	// NumberFormat is the default format of the objective's scores (1.20.3+).
	NumberFormat *NumberFormat `yaml:"numberFormat,omitempty"`
}

// ObjectiveAction is what an Objective packet does.
type ObjectiveAction int

const (
	ObjectiveCreate ObjectiveAction = iota
	ObjectiveRemove
	ObjectiveUpdate
)

var objectiveActionNames = []string{"create", "remove", "update"}

func (a ObjectiveAction) String() string               { return enumString(objectiveActionNames, a) }
func (a ObjectiveAction) Valid() bool                  { return valid(objectiveActionNames, a) }
func (a ObjectiveAction) MarshalText() ([]byte, error) { return enumMarshal(objectiveActionNames, a) }
func (a *ObjectiveAction) UnmarshalText(text []byte) error {
	return enumUnmarshal(objectiveActionNames, text, a, "objective action")
}

// RenderType is how the client renders objective values.
type RenderType int

const (
	RenderInteger RenderType = iota
	RenderHearts
)

var renderTypeNames = []string{"integer", "hearts"}

func (r RenderType) String() string               { return enumString(renderTypeNames, r) }
func (r RenderType) Valid() bool                  { return valid(renderTypeNames, r) }
func (r RenderType) MarshalText() ([]byte, error) { return enumMarshal(renderTypeNames, r) }
func (r *RenderType) UnmarshalText(text []byte) error {
	return enumUnmarshal(renderTypeNames, text, r, "render type")
}

// Score sets or removes the score of a holder.
type Score struct {
	Objective string      `yaml:"objective"`
	Holder    string      `yaml:"holder"`
	Value     int         `yaml:"value,omitempty"`
	Action    ScoreAction `yaml:"action"`
	// DisplayName replaces the holder name in the sidebar (1.20.3+).
	DisplayName  string        `yaml:"displayName,omitempty"`
	NumberFormat *NumberFormat `yaml:"numberFormat,omitempty"`
}

// ScoreAction is what a Score packet does.
type ScoreAction int

const (
	// ScoreChange creates or updates the score.
	ScoreChange ScoreAction = iota
	ScoreRemove
)

var scoreActionNames = []string{"change", "remove"}

func (a ScoreAction) String() string               { return enumString(scoreActionNames, a) }
func (a ScoreAction) Valid() bool                  { return valid(scoreActionNames, a) }
func (a ScoreAction) MarshalText() ([]byte, error) { return enumMarshal(scoreActionNames, a) }
func (a *ScoreAction) UnmarshalText(text []byte) error {
	return enumUnmarshal(scoreActionNames, text, a, "score action")
}

// NumberFormat is how score values are shown (1.20.3+).
// A nil *NumberFormat is the client default.
type NumberFormat struct {
	Type NumberFormatType `yaml:"type"`
	// Fixed is the text shown instead of the value for FormatFixed.
	Fixed string `yaml:"fixed,omitempty"`
}

// NumberFormatType is the kind of NumberFormat.
type NumberFormatType int

const (
	// FormatBlank hides the value.
	FormatBlank NumberFormatType = iota
	// FormatFixed shows a fixed text.
	FormatFixed
)

var numberFormatTypeNames = []string{"blank", "fixed"}

func (t NumberFormatType) String() string               { return enumString(numberFormatTypeNames, t) }
func (t NumberFormatType) Valid() bool                  { return valid(numberFormatTypeNames, t) }
func (t NumberFormatType) MarshalText() ([]byte, error) { return enumMarshal(numberFormatTypeNames, t) }
func (t *NumberFormatType) UnmarshalText(text []byte) error {
	return enumUnmarshal(numberFormatTypeNames, text, t, "number format type")
}
