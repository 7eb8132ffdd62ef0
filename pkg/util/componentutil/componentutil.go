package componentutil

import (
	"strings"

	"go.minekube.com/common/minecraft/component"

	protoutil "go.minekube.com/tab/pkg/edition/java/proto/util"
	"go.minekube.com/tab/pkg/proto"
	"go.minekube.com/tab/pkg/tab/text"
)

// ParseTextComponent parses s as JSON component if it starts with '{'
// and as text with legacy colour codes and RGB markup otherwise.
func ParseTextComponent(s string, protocol proto.Protocol) (component.Component, error) {
	if strings.HasPrefix(strings.TrimSpace(s), "{") {
		return protoutil.Unmarshal(protocol, []byte(s))
	}
	return text.Component(s), nil
}
