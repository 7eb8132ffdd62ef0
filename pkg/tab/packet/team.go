package packet

// Team creates, updates or removes a scoreboard team or changes its members.
type Team struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"displayName,omitempty"`
	Prefix      string `yaml:"prefix,omitempty"`
	Suffix      string `yaml:"suffix,omitempty"`

	NameTagVisibility NameTagVisibility `yaml:"nameTagVisibility,omitempty"`
	CollisionRule     CollisionRule     `yaml:"collisionRule,omitempty"`
	// Color is the name of a legacy colour ("red", "dark_aqua").
	// If empty the last colour of the prefix is used.
	Color string `yaml:"color,omitempty"`

	AllowFriendlyFire     bool `yaml:"allowFriendlyFire,omitempty"`
	SeeFriendlyInvisibles bool `yaml:"seeFriendlyInvisibles,omitempty"`

	Players []string   `yaml:"players,omitempty"`
	Action  TeamAction `yaml:"action"`
}

// TeamAction is what a Team packet does.
type TeamAction int

const (
	TeamCreate TeamAction = iota
	TeamRemove
	TeamUpdate
	TeamAddPlayers
	TeamRemovePlayers
)

var teamActionNames = []string{"create", "remove", "update", "add_players", "remove_players"}

func (a TeamAction) String() string               { return enumString(teamActionNames, a) }
func (a TeamAction) Valid() bool                  { return valid(teamActionNames, a) }
func (a TeamAction) MarshalText() ([]byte, error) { return enumMarshal(teamActionNames, a) }
func (a *TeamAction) UnmarshalText(text []byte) error {
	return enumUnmarshal(teamActionNames, text, a, "team action")
}

// NameTagVisibility controls who sees the name tags of team members.
type NameTagVisibility int

const (
	NameTagAlways NameTagVisibility = iota
	NameTagNever
	NameTagHideForOtherTeams
	NameTagHideForOwnTeam
)

var nameTagVisibilityNames = []string{"always", "never", "hideForOtherTeams", "hideForOwnTeam"}

func (v NameTagVisibility) String() string { return enumString(nameTagVisibilityNames, v) }
func (v NameTagVisibility) Valid() bool    { return valid(nameTagVisibilityNames, v) }
func (v NameTagVisibility) MarshalText() ([]byte, error) {
	return enumMarshal(nameTagVisibilityNames, v)
}
func (v *NameTagVisibility) UnmarshalText(text []byte) error {
	return enumUnmarshal(nameTagVisibilityNames, text, v, "name tag visibility")
}

// CollisionRule controls which entities push team members.
type CollisionRule int

const (
	CollisionAlways CollisionRule = iota
	CollisionNever
	CollisionPushOtherTeams
	CollisionPushOwnTeam
)

var collisionRuleNames = []string{"always", "never", "pushOtherTeams", "pushOwnTeam"}

func (r CollisionRule) String() string               { return enumString(collisionRuleNames, r) }
func (r CollisionRule) Valid() bool                  { return valid(collisionRuleNames, r) }
func (r CollisionRule) MarshalText() ([]byte, error) { return enumMarshal(collisionRuleNames, r) }
func (r *CollisionRule) UnmarshalText(text []byte) error {
	return enumUnmarshal(collisionRuleNames, text, r, "collision rule")
}
