package text

import (
	"unicode/utf16"

	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/tab/pkg/edition/java/proto/version"
	"go.minekube.com/tab/pkg/proto"
)

// StructuredMinor is the first minor version whose clients accept
// components in places limited to legacy text before.
const StructuredMinor = 13

// Len returns the length of a text as counted by the client, in UTF-16 code units.
func Len(text string) int {
	n := 0
	for _, r := range text {
		n += utf16.RuneLen(r)
	}
	return n
}

// CutTo converts RGB markups to legacy colours and truncates the text to maxLen.
//
// If the last kept unit is the escape character it is dropped as well,
// so the result never ends with a dangling escape. A surrogate pair is never split.
func CutTo(text string, maxLen int) string {
	text = ConvertRGBToLegacy(text)
	if Len(text) <= maxLen {
		return text
	}
	if maxLen <= 0 {
		return ""
	}
	units := utf16.Encode([]rune(text))
	cut := maxLen
	for cut > 0 {
		last := units[cut-1]
		if last != EscapeChar && !isHighSurrogate(last) {
			break
		}
		cut--
	}
	return string(utf16.Decode(units[:cut]))
}

// isHighSurrogate reports whether u starts a surrogate pair.
func isHighSurrogate(u uint16) bool { return u >= 0xD800 && u < 0xDC00 }

// Payload is text prepared for a specific client version.
// Exactly one representation is set.
type Payload struct {
	// Rich is the structured component for clients that accept one.
	Rich component.Component
	// Legacy is the cut legacy text for older clients.
	Legacy string
}

// IsRich reports whether the payload carries a component.
func (p Payload) IsRich() bool { return p.Rich != nil }

// Component returns the payload as component,
// wrapping legacy text if necessary.
func (p Payload) Component() component.Component {
	if p.Rich != nil {
		return p.Rich
	}
	return Component(p.Legacy)
}

// String returns the payload as legacy text.
func (p Payload) String() string {
	if p.Rich != nil {
		return FromComponent(p.Rich)
	}
	return p.Legacy
}

// StructuredOrCut prepares text for the client: clients of minor version 13 or newer
// get a component preserving hex colours, older clients the text cut to maxLen.
func StructuredOrCut(text string, protocol proto.Protocol, maxLen int) Payload {
	if version.Protocol(protocol).Minor() >= StructuredMinor {
		return Payload{Rich: Component(text)}
	}
	return Payload{Legacy: CutTo(text, maxLen)}
}
