package componentutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.minekube.com/common/minecraft/color"
	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/tab/pkg/edition/java/proto/version"
	"go.minekube.com/tab/pkg/tab/text"
)

func TestParseTextComponent(t *testing.T) {
	p := version.MaximumVersion.Protocol

	c, err := ParseTextComponent(`{"text":"hi","color":"red"}`, p)
	require.NoError(t, err)
	txt, ok := c.(*component.Text)
	require.True(t, ok)
	assert.Equal(t, "hi", txt.Content)
	assert.Equal(t, color.Red, txt.S.Color)

	c, err = ParseTextComponent("&#FF0000hi", p)
	require.NoError(t, err)
	assert.Equal(t, "#FF0000hi", text.FromComponent(c))

	_, err = ParseTextComponent("{broken", p)
	assert.Error(t, err)
}
