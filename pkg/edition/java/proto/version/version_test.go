package version

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.minekube.com/tab/pkg/proto"
)

func TestSupportedVersionsOrdered(t *testing.T) {
	require.True(t, sort.SliceIsSorted(SupportedVersions, func(i, j int) bool {
		return SupportedVersions[i].Protocol < SupportedVersions[j].Protocol
	}))
	assert.Equal(t, Minecraft_1_7_2, MinimumVersion)
	assert.Equal(t, Minecraft_1_21_7, MaximumVersion)
	assert.Equal(t, "1.7.2-1.7.5-1.21.7-1.21.8", SupportedVersionsString)
}

func TestMinor(t *testing.T) {
	tests := []struct {
		protocol proto.Protocol
		want     int
	}{
		{Minecraft_1_7_6.Protocol, 7},
		{Minecraft_1_8.Protocol, 8},
		{Minecraft_1_12_2.Protocol, 12},
		{Minecraft_1_13.Protocol, 13},
		{Minecraft_1_20_3.Protocol, 20},
		{Minecraft_1_21_7.Protocol, 21},
		{12345, 7},
		{-2, 7},
	}
	for _, tt := range tests {
		t.Run(tt.protocol.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Protocol(tt.protocol).Minor())
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Minecraft_1_19_3.Protocol, Normalize(Minecraft_1_19_3.Protocol))
	assert.Equal(t, MinimumVersion.Protocol, Normalize(9999))
	assert.Equal(t, MinimumVersion.Protocol, Normalize(-1))
	assert.False(t, Protocol(-2).Supported())
}

func TestParse(t *testing.T) {
	v, err := Parse("1.8.9")
	require.NoError(t, err)
	assert.Equal(t, Minecraft_1_8, v)

	v, err = Parse(" 765 ")
	require.NoError(t, err)
	assert.Equal(t, Minecraft_1_20_3, v)

	_, err = Parse("1.6.4")
	require.Error(t, err)
	_, err = Parse("-2")
	require.Error(t, err)
}

func TestProtocolString(t *testing.T) {
	assert.Equal(t, "1.12.2(340)", Protocol(340).String())
	assert.Equal(t, "1", Protocol(1).String())
}
