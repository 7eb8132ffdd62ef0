package packet

import (
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.minekube.com/tab/pkg/util/uuid"
)

func TestNew(t *testing.T) {
	for _, k := range Kinds() {
		p, err := New(k)
		require.NoError(t, err)
		assert.Equal(t, k, p.Kind())
	}
	_, err := New(Kind(100))
	assert.Error(t, err)
}

func TestEnumText(t *testing.T) {
	b, err := BarNotched10.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "notched_10", string(b))

	var s BarStyle
	require.NoError(t, s.UnmarshalText([]byte("NOTCHED_10")))
	assert.Equal(t, BarNotched10, s)

	assert.Error(t, s.UnmarshalText([]byte("notched_7")))
	_, err = BarStyle(9).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "unknown(9)", BarStyle(9).String())
	assert.False(t, BarStyle(9).Valid())
	assert.True(t, NameTagHideForOwnTeam.Valid())
	assert.Equal(t, "pushOtherTeams", CollisionPushOtherTeams.String())
}

func TestDisplaySlot(t *testing.T) {
	assert.Equal(t, "sidebar", SlotSidebar.String())
	assert.Equal(t, "sidebar.team.black", SlotTeamSidebar.String())
	assert.Equal(t, "sidebar.team.white", TeamSidebar(15).String())
	assert.True(t, TeamSidebar(15).IsTeamSidebar())
	assert.False(t, TeamSidebar(16).Valid())
	assert.False(t, SlotBelowName.IsTeamSidebar())

	var s DisplaySlot
	require.NoError(t, s.UnmarshalText([]byte("sidebar.team.red")))
	assert.Equal(t, TeamSidebar(12), s)
	assert.Error(t, s.UnmarshalText([]byte("sidebar.team.pink")))
}

func TestYAMLRoundTrip(t *testing.T) {
	id := uuid.New()
	packets := []Packet{
		&BossBar{ID: id, Action: BossBarAdd, Title: faker.Word(), Progress: 0.5,
			Color: BarPurple, Style: BarNotched12, DarkenSky: true, CreateFog: true},
		&Chat{Message: faker.Sentence(), Position: PositionActionBar},
		&PlayerInfo{Action: PlayerInfoAdd, Entries: []PlayerInfoEntry{{
			ID: id, Name: faker.Username(), Skin: &Skin{Value: "v", Signature: "s"},
			Latency: 20, GameMode: Spectator, DisplayName: "§c" + faker.Username(),
		}}},
		&HeaderFooter{Header: "§6header", Footer: "#FF0000footer"},
		&DisplayObjective{Slot: TeamSidebar(3), Objective: faker.Word()},
		&Objective{Name: faker.Word(), DisplayName: "§lTop", RenderType: RenderHearts,
			Action: ObjectiveUpdate, NumberFormat: &NumberFormat{Type: FormatFixed, Fixed: "-"}},
		&Score{Objective: "o", Holder: faker.Username(), Value: -3, Action: ScoreChange},
		&Team{Name: "t", Prefix: "§c[Admin] ", NameTagVisibility: NameTagHideForOtherTeams,
			CollisionRule: CollisionNever, Color: "red", AllowFriendlyFire: true,
			Players: []string{faker.Username(), faker.Username()}, Action: TeamCreate},
	}
	for _, p := range packets {
		t.Run(p.Kind().String(), func(t *testing.T) {
			b, err := MarshalYAML(p)
			require.NoError(t, err)
			assert.Contains(t, string(b), "kind: "+p.Kind().String())

			got, err := UnmarshalYAML(b)
			require.NoError(t, err)
			assert.Equal(t, p, got)
		})
	}
}

func TestUnmarshalYAML(t *testing.T) {
	p, err := UnmarshalYAML([]byte(`
kind: team
name: admins
prefix: "&c"
nameTagVisibility: never
action: update
`))
	require.NoError(t, err)
	assert.Equal(t, &Team{Name: "admins", Prefix: "&c", NameTagVisibility: NameTagNever, Action: TeamUpdate}, p)

	_, err = UnmarshalYAML([]byte("name: x\n"))
	assert.ErrorContains(t, err, "missing")
	_, err = UnmarshalYAML([]byte("kind: nope\n"))
	assert.ErrorContains(t, err, "unknown packet kind")
	_, err = UnmarshalYAML([]byte("kind: team\naction: explode\n"))
	assert.ErrorContains(t, err, "team action")
	_, err = UnmarshalYAML([]byte("- a\n"))
	assert.Error(t, err)
	_, err = UnmarshalYAML(nil)
	assert.Error(t, err)
}
