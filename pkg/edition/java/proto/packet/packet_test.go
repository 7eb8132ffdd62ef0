package packet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.minekube.com/common/minecraft/color"
	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/tab/pkg/edition/java/profile"
	"go.minekube.com/tab/pkg/edition/java/proto/packet/bossbar"
	"go.minekube.com/tab/pkg/edition/java/proto/packet/chat"
	"go.minekube.com/tab/pkg/edition/java/proto/packet/scoreboard"
	"go.minekube.com/tab/pkg/edition/java/proto/packet/tablist/playerinfo"
	"go.minekube.com/tab/pkg/edition/java/proto/version"
	"go.minekube.com/tab/pkg/proto"
	"go.minekube.com/tab/pkg/util/uuid"
)

var testUUID, _ = uuid.Parse(`123e4567-e89b-12d3-a456-426614174000`)

func name() string {
	w := faker.Word()
	if len(w) > 16 {
		w = w[:16]
	}
	return w
}

func text(s string) component.Component {
	return &component.Text{Content: s, S: component.Style{Color: color.Gold}}
}

func TestTabListPackets(t *testing.T) {
	PacketCodings(t, vRange(version.Minecraft_1_7_2, version.Minecraft_1_7_6),
		&LegacyPlayerListItem{Name: "§aSteve", Online: true, Ping: 42},
		&LegacyPlayerListItem{Name: name(), Online: false},
	)

	entry := PlayerListItemEntry{
		ID:          testUUID,
		Name:        name(),
		Properties:  []profile.Property{{Name: "textures", Value: faker.Word(), Signature: faker.Word()}},
		GameMode:    1,
		Latency:     120,
		DisplayName: text("Steve"),
	}
	var samples []proto.Packet
	for a := AddPlayerListItemAction; a <= RemovePlayerListItemAction; a++ {
		samples = append(samples, &PlayerListItem{Action: a, Items: []PlayerListItemEntry{entry, {ID: uuid.New()}}})
	}
	PacketCodings(t, vRange(version.Minecraft_1_8, version.Minecraft_1_19_1), samples...)

	PacketCodings(t, vRange(version.Minecraft_1_8, version.MaximumVersion),
		&HeaderAndFooter{Header: text("header"), Footer: text("footer")},
	)
}

func TestPlayerInfoPackets(t *testing.T) {
	entry := &playerinfo.Entry{
		ProfileID:   testUUID,
		Profile:     profile.GameProfile{ID: testUUID, Name: name()},
		Listed:      true,
		Latency:     30,
		GameMode:    3,
		DisplayName: text("Alex"),
		RemoteChatSession: &playerinfo.RemoteChatSession{
			ID: uuid.New(), ExpiresAt: 1700000000000, PublicKey: []byte{1, 2}, KeySignature: []byte{3},
		},
	}
	PacketCodings(t, vRange(version.Minecraft_1_19_3, version.MaximumVersion),
		&playerinfo.Upsert{
			ActionSet: []playerinfo.UpsertAction{
				playerinfo.AddPlayerAction,
				playerinfo.InitializeChatAction,
				playerinfo.UpdateGameModeAction,
				playerinfo.UpdateListedAction,
				playerinfo.UpdateLatencyAction,
				playerinfo.UpdateDisplayNameAction,
			},
			Entries: []*playerinfo.Entry{entry},
		},
		&playerinfo.Upsert{
			ActionSet: []playerinfo.UpsertAction{playerinfo.UpdateDisplayNameAction},
			Entries:   []*playerinfo.Entry{{ProfileID: testUUID}},
		},
		&playerinfo.Remove{PlayersToRemove: []uuid.UUID{testUUID, uuid.New()}},
	)
	PacketCodings(t, vRange(version.Minecraft_1_21_4, version.MaximumVersion),
		&playerinfo.Upsert{
			ActionSet: []playerinfo.UpsertAction{playerinfo.UpdateListOrderAction, playerinfo.UpdateHatAction},
			Entries:   []*playerinfo.Entry{{ProfileID: testUUID, ListOrder: 5, ShowHat: true}},
		},
	)
}

func TestUpsertActionBitSet(t *testing.T) {
	c := &proto.PacketContext{Protocol: version.Minecraft_1_20_3.Protocol}
	// order of ActionSet does not matter on the wire
	p := &playerinfo.Upsert{
		ActionSet: []playerinfo.UpsertAction{playerinfo.UpdateLatencyAction, playerinfo.UpdateGameModeAction},
		Entries:   []*playerinfo.Entry{{ProfileID: testUUID, GameMode: 2, Latency: 7}},
	}
	b, err := proto.Marshal(c, p)
	require.NoError(t, err)
	want := append([]byte{0b0001_0100, 1}, testUUID[:]...)
	want = append(want, 2, 7)
	assert.Equal(t, want, b)

	c.Protocol = version.Minecraft_1_21.Protocol
	_, err = proto.Marshal(c, &playerinfo.Upsert{
		ActionSet: []playerinfo.UpsertAction{playerinfo.UpdateListOrderAction},
	})
	assert.Error(t, err, "list order requires 1.21.2")
}

func TestChatPackets(t *testing.T) {
	PacketCodings(t, vRange(version.Minecraft_1_7_2, version.Minecraft_1_18_2),
		&chat.LegacyChat{Message: `{"text":"hi"}`, Type: chat.SystemMessageType, Sender: testUUID},
		&chat.LegacyChat{Message: `{"text":"bar"}`, Type: chat.GameInfoMessageType},
	)
	PacketCodings(t, vRange(version.Minecraft_1_19, version.MaximumVersion),
		&chat.SystemChat{Component: text("hi"), Type: chat.SystemMessageType},
		&chat.SystemChat{Component: text("bar"), Type: chat.GameInfoMessageType},
	)
}

func TestChatBuilder(t *testing.T) {
	p, err := (&chat.Builder{Protocol: version.Minecraft_1_19_4.Protocol, Message: "x"}).ToClient()
	require.NoError(t, err)
	require.IsType(t, &chat.SystemChat{}, p)
	assert.Equal(t, chat.SystemMessageType, p.(*chat.SystemChat).Type)

	p, err = (&chat.Builder{Protocol: version.Minecraft_1_12_2.Protocol, Message: "x", Type: chat.GameInfoMessageType}).ToClient()
	require.NoError(t, err)
	require.IsType(t, &chat.LegacyChat{}, p)
	assert.JSONEq(t, `{"text":"x"}`, p.(*chat.LegacyChat).Message)
	assert.Equal(t, chat.GameInfoMessageType, p.(*chat.LegacyChat).Type)
}

func TestBossBarPackets(t *testing.T) {
	var samples []proto.Packet
	for a := bossbar.AddAction; a <= bossbar.UpdatePropertiesAction; a++ {
		samples = append(samples, &bossbar.BossBar{
			ID:      testUUID,
			Action:  a,
			Name:    text("Boss"),
			Percent: 0.5,
			Color:   bossbar.PurpleColor,
			Overlay: bossbar.Notched10Overlay,
			Flags:   bossbar.ConvertFlags(bossbar.DarkenScreenFlag, bossbar.CreateWorldFogFlag),
		})
	}
	PacketCodings(t, vRange(version.Minecraft_1_9, version.MaximumVersion), samples...)
}

func TestBossBarUpdatePercent(t *testing.T) {
	c := &proto.PacketContext{Protocol: version.Minecraft_1_12_2.Protocol}
	b, err := proto.Marshal(c, &bossbar.BossBar{ID: testUUID, Action: bossbar.UpdatePercentAction, Percent: 1})
	require.NoError(t, err)
	want := append(append([]byte{}, testUUID[:]...), 2, 0x3f, 0x80, 0, 0)
	assert.Equal(t, want, b)

	_, err = proto.Marshal(c, &bossbar.BossBar{ID: testUUID, Action: bossbar.AddAction})
	assert.Error(t, err, "name required")
}

func TestScoreboardPackets(t *testing.T) {
	obj := name()
	PacketCodings(t, vRange(version.MinimumVersion, version.MaximumVersion),
		&scoreboard.Objective{Name: obj, Mode: scoreboard.RegisterObjective, Value: "§eStats", Title: text("Stats"), HealthDisplay: scoreboard.HeartsHealthDisplay},
		&scoreboard.Objective{Name: obj, Mode: scoreboard.UnregisterObjective},
		&scoreboard.DisplayObjective{Position: 1, ScoreName: obj},
		&scoreboard.Team{
			Name: name(), Mode: scoreboard.CreateTeam,
			DisplayName: "Red", Prefix: "§c", Suffix: "§r",
			DisplayNameComponent: text("Red"), PrefixComponent: text("["), SuffixComponent: text("]"),
			FriendlyFlags:     scoreboard.AllowFriendlyFire | scoreboard.CanSeeFriendlyInvisibles,
			NameTagVisibility: "hideForOtherTeams", CollisionRule: "never",
			Color: 12, Players: []string{"Steve", "Alex"},
		},
		&scoreboard.Team{Name: name(), Mode: scoreboard.RemoveTeam},
		&scoreboard.Team{Name: name(), Mode: scoreboard.RemoveTeamPlayers, Players: []string{"Steve"}},
	)
	PacketCodings(t, vRange(version.MinimumVersion, version.Minecraft_1_20_2),
		&scoreboard.Score{Holder: "Steve", Action: scoreboard.ChangeScore, Objective: obj, Value: -5},
		&scoreboard.Score{Holder: "Steve", Action: scoreboard.RemoveScore, Objective: obj},
	)
	PacketCodings(t, vRange(version.Minecraft_1_20_3, version.MaximumVersion),
		&scoreboard.Objective{Name: obj, Mode: scoreboard.UpdateObjective, Title: text("Kills"),
			NumberFormat: &scoreboard.NumberFormat{Type: scoreboard.FixedNumberFormat, Fixed: text("-")}},
		&scoreboard.UpdateScore{Holder: "Steve", Objective: obj, Value: 99, DisplayName: text("S"),
			NumberFormat: &scoreboard.NumberFormat{Type: scoreboard.BlankNumberFormat}},
		&scoreboard.UpdateScore{Holder: "Alex", Objective: obj, Value: 1},
		&scoreboard.ResetScore{Holder: "Steve", Objective: obj},
		&scoreboard.ResetScore{Holder: "Alex"},
	)
}

func TestDisplayObjectiveSlot(t *testing.T) {
	p := &scoreboard.DisplayObjective{Position: 2, ScoreName: "a"}
	b, err := proto.Marshal(&proto.PacketContext{Protocol: version.Minecraft_1_20.Protocol}, p)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 1, 'a'}, b)

	p.Position = 200
	b, err = proto.Marshal(&proto.PacketContext{Protocol: version.Minecraft_1_20_2.Protocol}, p)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xc8, 0x01, 1, 'a'}, b)
}

func TestObjectiveNameLimit(t *testing.T) {
	long := "objective_name_longer_than_sixteen"
	PacketCodings(t, vRange(version.Minecraft_1_18, version.MaximumVersion),
		&scoreboard.Objective{Name: long, Mode: scoreboard.UnregisterObjective},
		&scoreboard.DisplayObjective{Position: 1, ScoreName: long},
	)

	c := &proto.PacketContext{Protocol: version.Minecraft_1_17_1.Protocol}
	for _, p := range []proto.Packet{
		&scoreboard.Objective{Name: long, Mode: scoreboard.UnregisterObjective},
		&scoreboard.DisplayObjective{Position: 1, ScoreName: long},
	} {
		b, err := proto.Marshal(c, p)
		require.NoError(t, err)
		assert.Error(t, proto.Unmarshal(c, b, reflect.New(reflect.TypeOf(p).Elem()).Interface().(proto.Packet)))
	}
}

func TestTeamRuleIndexes(t *testing.T) {
	c := &proto.PacketContext{Protocol: version.Minecraft_1_21_5.Protocol}
	_, err := proto.Marshal(c, &scoreboard.Team{Name: "t", Mode: scoreboard.UpdateTeam, NameTagVisibility: "sometimes", CollisionRule: "always"})
	assert.Error(t, err)

	c.Protocol = version.Minecraft_1_21_4.Protocol
	_, err = proto.Marshal(c, &scoreboard.Team{Name: "t", Mode: scoreboard.UpdateTeam, NameTagVisibility: "sometimes", CollisionRule: "always"})
	assert.NoError(t, err, "free form strings before 1.21.5")
}

func TestUnmarshalLeftBytes(t *testing.T) {
	c := &proto.PacketContext{Protocol: version.Minecraft_1_8.Protocol}
	err := proto.Unmarshal(c, []byte{1, 1, 'a', 0, 0}, &scoreboard.DisplayObjective{})
	assert.ErrorIs(t, err, proto.ErrDecoderLeftBytes)
}

// PacketCodings compares encoding vs. decoding for various versions and packet types.
func PacketCodings(t *testing.T, versions []*proto.Version, samples ...proto.Packet) {
	t.Helper()

	message := func(v *proto.Version, packet reflect.Type) string {
		return fmt.Sprintf("Type: %s, Version: %s, Note: %s", packet.String(), v, "%s")
	}

	bufA1, bufA2 := new(bytes.Buffer), new(bytes.Buffer)
	bufB1, bufB2 := new(bytes.Buffer), new(bytes.Buffer)
	for _, v := range versions {
		c := &proto.PacketContext{Direction: proto.ClientBound, Protocol: v.Protocol}
		for _, sample := range samples {
			packetType := reflect.TypeOf(sample).Elem()
			msg := message(v, packetType)

			// Encode sample at protocol version to drop unnecessary data for that version
			require.NoError(t, sample.Encode(c, io.MultiWriter(bufA1, bufA2)), msg, "sample encode")
			// Decode bytes to get versioned packet
			a := reflect.New(packetType).Interface().(proto.Packet)
			require.NoError(t, a.Decode(c, bufA1), msg, "a decode from bufA1")

			// Now encode it again
			require.NoError(t, a.Encode(c, io.MultiWriter(bufB1, bufB2)), msg, "a encode")
			b := reflect.New(packetType).Interface().(proto.Packet)
			// And decode it again.
			require.NoError(t, b.Decode(c, bufB1), msg, "b decode from bufB1")

			if !bytes.Equal(bufA2.Bytes(), bufB2.Bytes()) {
				jsonA, err := json.MarshalIndent(a, "", "  ")
				require.NoError(t, err)
				jsonB, err := json.MarshalIndent(b, "", "  ")
				require.NoError(t, err)
				assert.Equal(t, string(jsonA), string(jsonB), msg, "jsons not equal")
			}

			// Both decode buffs should be emptied by packets decode method
			assert.Equal(t, 0, bufA1.Len(), msg, "bufA1 not empty")
			assert.Equal(t, 0, bufB1.Len(), msg, "bufB1 not empty")

			bufA1.Reset()
			bufA2.Reset()
			bufB1.Reset()
			bufB2.Reset()
		}
	}
}

func vRange(start, endInclusive *proto.Version) (vers []*proto.Version) {
	for _, v := range version.Versions { // assumes Versions is sorted
		if v.GreaterEqual(start) && v.LowerEqual(endInclusive) {
			vers = append(vers, v)
		}
	}
	return
}
