package util

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.minekube.com/common/minecraft/color"
	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/tab/pkg/edition/java/profile"
	"go.minekube.com/tab/pkg/edition/java/proto/version"
	"go.minekube.com/tab/pkg/proto"
	"go.minekube.com/tab/pkg/util/uuid"
)

func TestVarInt(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		data    []byte
		wantVal int
		wantErr string
	}{
		{name: "single byte", data: []byte{0x01}, wantVal: 1},
		{name: "two bytes", data: []byte{0xAC, 0x02}, wantVal: 300},
		{name: "zero", data: []byte{0x00}, wantVal: 0},
		{name: "max varint", data: []byte{0xff, 0xff, 0xff, 0xff, 0x07}, wantVal: 2147483647},
		{name: "minus one", data: []byte{0xff, 0xff, 0xff, 0xff, 0x0f}, wantVal: -1},
		{name: "varint too big", data: []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0x01}, wantErr: "decode: VarInt is too big"},
		{name: "empty buffer", data: []byte{}, wantErr: io.EOF.Error()},
		{name: "incomplete varint", data: []byte{0xff}, wantErr: io.EOF.Error()},
		{name: "valid 5 byte varint", data: []byte{0x80, 0x80, 0x80, 0x80, 0x01}, wantVal: 268435456},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gotVal, gotErr := ReadVarInt(bytes.NewBuffer(tc.data))
			if tc.wantErr != "" {
				require.EqualError(t, gotErr, tc.wantErr)
				return
			}
			require.NoError(t, gotErr)
			require.Equal(t, tc.wantVal, gotVal)
		})
	}
}

func TestVarIntRoundTrip(t *testing.T) {
	for _, v := range []int{-2147483648, -256, -1, 0, 127, 128, 21, 2147483647} {
		t.Run(fmt.Sprintf("VarInt_%d", v), func(t *testing.T) {
			buf := new(bytes.Buffer)
			require.NoError(t, WriteVarInt(buf, v))
			got, err := ReadVarInt(buf)
			require.NoError(t, err)
			require.Equal(t, v, got)
			require.Zero(t, buf.Len())
		})
	}
}

func TestStringMax(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, WriteString(buf, strings.Repeat("a", 17)))
	_, err := ReadStringMax(bytes.NewReader(buf.Bytes()), 4)
	require.Error(t, err)

	s, err := ReadStringMax(bytes.NewReader(buf.Bytes()), 16)
	require.NoError(t, err, "limit counts up to 4 bytes per character")
	require.Len(t, s, 17)
}

func TestReadShortInput(t *testing.T) {
	_, err := ReadInt32(bytes.NewReader([]byte{0, 1}))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	_, err = ReadUUID(bytes.NewReader(make([]byte, 15)))
	require.Error(t, err)
}

func TestProperties(t *testing.T) {
	props := []profile.Property{
		{Name: "textures", Value: "dmFsdWU=", Signature: "c2ln"},
		{Name: "unsigned", Value: "v"},
	}
	buf := new(bytes.Buffer)
	require.NoError(t, WriteProperties(buf, props))
	got, err := ReadProperties(buf)
	require.NoError(t, err)
	require.Equal(t, props, got)
	require.Zero(t, buf.Len())
}

func TestUUID(t *testing.T) {
	id := uuid.New()
	buf := new(bytes.Buffer)
	require.NoError(t, WriteUUID(buf, id))
	require.Equal(t, id[:], buf.Bytes())
	got, err := ReadUUID(buf)
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func TestComponentRoundTrip(t *testing.T) {
	c := &component.Text{
		Content: "Hi",
		S:       component.Style{Color: color.Red, Bold: component.True},
		Extra:   []component.Component{&component.Text{Content: " there"}},
	}
	for _, v := range []*proto.Version{
		version.Minecraft_1_8,
		version.Minecraft_1_16,
		version.Minecraft_1_20_2,
		version.Minecraft_1_20_3,
		version.MaximumVersion,
	} {
		t.Run(v.String(), func(t *testing.T) {
			buf := new(bytes.Buffer)
			require.NoError(t, WriteComponent(buf, v.Protocol, c))
			got, err := ReadComponent(buf, v.Protocol)
			require.NoError(t, err)
			require.Zero(t, buf.Len())

			want, err := Marshal(v.Protocol, c)
			require.NoError(t, err)
			have, err := Marshal(v.Protocol, got)
			require.NoError(t, err)
			assert.JSONEq(t, string(want), string(have))
		})
	}
}

func TestComponentNil(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, WriteComponent(buf, version.Minecraft_1_12_2.Protocol, nil))
	got, err := ReadComponent(buf, version.Minecraft_1_12_2.Protocol)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestRecover(t *testing.T) {
	boom := errors.New("boom")
	write := func() (err error) {
		defer Recover(&err)
		PanicWriter(failingWriter{boom}).VarInt(1)
		return nil
	}
	require.ErrorIs(t, write(), boom)

	read := func() (err error) {
		defer Recover(&err)
		var i int
		PanicReader(bytes.NewReader(nil)).VarInt(&i)
		return nil
	}
	require.ErrorIs(t, read(), io.EOF)

	require.Panics(t, func() {
		var err error
		defer Recover(&err)
		panic("not an error")
	})
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func FuzzReadVarInt(f *testing.F) {
	for _, tc := range [][]byte{
		{0x01},
		{0xAC, 0x02},
		{0xff, 0xff, 0xff, 0xff, 0x07},
		{0xff, 0xff, 0xff, 0xff, 0xff, 0x01},
		{},
		{0xff},
	} {
		f.Add(tc)
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		buf := bytes.NewBuffer(data)
		_, err := ReadVarInt(buf)
		if err != nil && !errors.Is(err, io.EOF) && err.Error() != "decode: VarInt is too big" {
			t.Fatalf("ReadVarInt returned an unexpected error: %v for input %x", err, data)
		}
		if len(data) > 0 && buf.Len() == len(data) {
			t.Errorf("ReadVarInt consumed no bytes from non-empty buffer")
		}
	})
}
