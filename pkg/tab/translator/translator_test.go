package translator

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jpacket "go.minekube.com/tab/pkg/edition/java/proto/packet"
	"go.minekube.com/tab/pkg/edition/java/proto/packet/bossbar"
	"go.minekube.com/tab/pkg/edition/java/proto/packet/scoreboard"
	"go.minekube.com/tab/pkg/edition/java/proto/version"
	"go.minekube.com/tab/pkg/proto"
	"go.minekube.com/tab/pkg/tab/builder"
	"go.minekube.com/tab/pkg/tab/packet"
	"go.minekube.com/tab/pkg/util/errs"
	"go.minekube.com/tab/pkg/util/uuid"
)

type fakeConn struct {
	protocol proto.Protocol
	err      error

	mu      sync.Mutex
	written []proto.Packet
}

func (c *fakeConn) Protocol() proto.Protocol { return c.protocol }

func (c *fakeConn) WritePacket(p proto.Packet) error {
	if c.err != nil {
		return c.err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.written = append(c.written, p)
	return nil
}

func (c *fakeConn) packets() []proto.Packet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.written
}

func newTranslator(t *testing.T, opts Options) (*Translator, context.Context) {
	tr, err := New(opts)
	require.NoError(t, err)
	return tr, logr.NewContext(context.Background(), testr.NewWithOptions(t, testr.Options{Verbosity: 1}))
}

func TestSend(t *testing.T) {
	tr, ctx := newTranslator(t, Options{})

	c := &fakeConn{protocol: version.Minecraft_1_20_5.Protocol}
	require.NoError(t, tr.Send(ctx, c, &packet.BossBar{ID: uuid.New(), Title: "hi", Progress: 0.5}))
	require.Len(t, c.packets(), 1)
	assert.IsType(t, &bossbar.BossBar{}, c.packets()[0])

	old := &fakeConn{protocol: version.Minecraft_1_8.Protocol}
	err := tr.Send(ctx, old, &packet.BossBar{})
	assert.ErrorIs(t, err, builder.ErrUnsupported)
	assert.Empty(t, old.packets())

	assert.Equal(t, Stats{Built: 1, Unsupported: 1}, tr.Stats())
}

func TestSend_Batch(t *testing.T) {
	tr, ctx := newTranslator(t, Options{})
	c := &fakeConn{protocol: version.Minecraft_1_7_2.Protocol}
	err := tr.Send(ctx, c, &packet.PlayerInfo{Action: packet.PlayerInfoAdd, Entries: []packet.PlayerInfoEntry{
		{Name: "Steve"}, {Name: "Alex"}, {Name: "Herobrine"},
	}})
	require.NoError(t, err)
	require.Len(t, c.packets(), 3)
	for _, p := range c.packets() {
		assert.IsType(t, &jpacket.LegacyPlayerListItem{}, p)
	}
	assert.Equal(t, "Herobrine", c.packets()[2].(*jpacket.LegacyPlayerListItem).Name)
}

func TestSend_Canceled(t *testing.T) {
	tr, ctx := newTranslator(t, Options{})
	ctx, cancel := context.WithCancel(ctx)
	cancel()
	c := &fakeConn{protocol: version.Minecraft_1_21.Protocol}
	assert.ErrorIs(t, tr.Send(ctx, c, &packet.Chat{Message: "x"}), context.Canceled)
	assert.Empty(t, c.packets())
}

func TestBroadcast(t *testing.T) {
	tr, ctx := newTranslator(t, Options{Concurrency: 2})

	var conns []Conn
	var fakes []*fakeConn
	for _, v := range []*proto.Version{
		version.Minecraft_1_8, version.Minecraft_1_9, version.Minecraft_1_9,
		version.Minecraft_1_16, version.Minecraft_1_21_4, version.Minecraft_1_21_4,
	} {
		c := &fakeConn{protocol: v.Protocol}
		conns = append(conns, c)
		fakes = append(fakes, c)
	}

	require.NoError(t, tr.Broadcast(ctx, conns, &packet.BossBar{ID: uuid.New(), Title: "#FF0000Boss"}))
	assert.Empty(t, fakes[0].packets())
	for _, c := range fakes[1:] {
		assert.Len(t, c.packets(), 1)
	}
	// built once per distinct version
	assert.Equal(t, Stats{Built: 3, Unsupported: 1}, tr.Stats())
	assert.Same(t, fakes[1].packets()[0], fakes[2].packets()[0])
}

func TestBroadcast_WriteErrors(t *testing.T) {
	tr, ctx := newTranslator(t, Options{})
	boom := errors.New("boom")
	ok := &fakeConn{protocol: version.Minecraft_1_12_2.Protocol}
	conns := []Conn{
		&fakeConn{protocol: version.Minecraft_1_12_2.Protocol, err: boom},
		ok,
	}
	err := tr.Broadcast(ctx, conns, &packet.HeaderFooter{Header: "a", Footer: "b"})
	assert.ErrorIs(t, err, boom)
	assert.Len(t, ok.packets(), 1)

	assert.Error(t, tr.Broadcast(ctx, conns, nil))
}

func TestRead(t *testing.T) {
	tr, ctx := newTranslator(t, Options{})
	c := &fakeConn{protocol: version.Minecraft_1_20_3.Protocol}

	o, err := tr.ReadObjective(ctx, c, &scoreboard.Objective{Name: "o", Mode: scoreboard.UnregisterObjective})
	require.NoError(t, err)
	assert.Equal(t, &packet.Objective{Name: "o", Action: packet.ObjectiveRemove}, o)

	d, err := tr.ReadDisplayObjective(ctx, c, &scoreboard.DisplayObjective{Position: 1, ScoreName: "o"})
	require.NoError(t, err)
	assert.Equal(t, packet.SlotSidebar, d.Slot)

	for _, readFn := range []func() error{
		func() error {
			_, err := tr.ReadDisplayObjective(ctx, c, &scoreboard.DisplayObjective{Position: 99})
			return err
		},
		func() error { _, err := tr.ReadPlayerInfo(ctx, c, &jpacket.PlayerListItem{}); return err },
		func() error { _, err := tr.ReadObjective(ctx, c, &scoreboard.Objective{Mode: 9}); return err },
	} {
		err := readFn()
		assert.True(t, errs.IsSilent(err), "%v", err)
		assert.ErrorIs(t, err, builder.ErrParse)
		var pe *builder.ParseError
		assert.ErrorAs(t, err, &pe)
	}

	assert.Equal(t, uint64(3), tr.Stats().Malformed)
}

func TestRead_Canceled(t *testing.T) {
	tr, ctx := newTranslator(t, Options{})
	ctx, cancel := context.WithCancel(ctx)
	cancel()
	c := &fakeConn{protocol: version.Minecraft_1_20_3.Protocol}

	_, err := tr.ReadDisplayObjective(ctx, c, &scoreboard.DisplayObjective{Position: 1, ScoreName: "o"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, errs.IsSilent(err))
	assert.Zero(t, tr.Stats().Malformed)
}
