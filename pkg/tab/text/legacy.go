// Package text converts the raw text of abstract packets into what a client of a
// given protocol version can display.
//
// Raw text uses the legacy escape character followed by a code ("§4", "§l") and the
// canonical hex colour marker "#RRGGBB". Clients before 1.13 only understand legacy
// text with a length limit, newer clients receive structured components.
package text

import (
	"strings"

	"go.minekube.com/common/minecraft/color"
)

// EscapeChar is the legacy formatting escape character.
const EscapeChar = '§'

// ResetCode resets colour and decorations.
const ResetCode = 'r'

// LegacyColor is an entry of the legacy colour table.
type LegacyColor struct {
	Code    rune
	Name    string
	R, G, B uint8
	// Color is the matching named component colour.
	Color color.Color
}

// Index returns the position of the colour in LegacyColors.
func (c *LegacyColor) Index() int { return colorIndex(c.Code) }

// String returns the escape sequence of the colour.
func (c *LegacyColor) String() string { return string([]rune{EscapeChar, c.Code}) }

// LegacyColors is the legacy colour table in code order.
// The index of an entry is the colour ordinal used by team packets.
var LegacyColors = [...]LegacyColor{
	{Code: '0', Name: "black", R: 0x00, G: 0x00, B: 0x00, Color: color.Black},
	{Code: '1', Name: "dark_blue", R: 0x00, G: 0x00, B: 0xAA, Color: color.DarkBlue},
	{Code: '2', Name: "dark_green", R: 0x00, G: 0xAA, B: 0x00, Color: color.DarkGreen},
	{Code: '3', Name: "dark_aqua", R: 0x00, G: 0xAA, B: 0xAA, Color: color.DarkAqua},
	{Code: '4', Name: "dark_red", R: 0xAA, G: 0x00, B: 0x00, Color: color.DarkRed},
	{Code: '5', Name: "dark_purple", R: 0xAA, G: 0x00, B: 0xAA, Color: color.DarkPurple},
	{Code: '6', Name: "gold", R: 0xFF, G: 0xAA, B: 0x00, Color: color.Gold},
	{Code: '7', Name: "gray", R: 0xAA, G: 0xAA, B: 0xAA, Color: color.Gray},
	{Code: '8', Name: "dark_gray", R: 0x55, G: 0x55, B: 0x55, Color: color.DarkGray},
	{Code: '9', Name: "blue", R: 0x55, G: 0x55, B: 0xFF, Color: color.Blue},
	{Code: 'a', Name: "green", R: 0x55, G: 0xFF, B: 0x55, Color: color.Green},
	{Code: 'b', Name: "aqua", R: 0x55, G: 0xFF, B: 0xFF, Color: color.Aqua},
	{Code: 'c', Name: "red", R: 0xFF, G: 0x55, B: 0x55, Color: color.Red},
	{Code: 'd', Name: "light_purple", R: 0xFF, G: 0x55, B: 0xFF, Color: color.LightPurple},
	{Code: 'e', Name: "yellow", R: 0xFF, G: 0xFF, B: 0x55, Color: color.Yellow},
	{Code: 'f', Name: "white", R: 0xFF, G: 0xFF, B: 0xFF, Color: color.White},
}

// decoration codes in the order they are written
const decorationCodes = "klmno"

// ColorByCode returns the table entry of a colour code, case-insensitive.
func ColorByCode(code rune) (*LegacyColor, bool) {
	i := colorIndex(code)
	if i < 0 {
		return nil, false
	}
	return &LegacyColors[i], true
}

// ColorByName returns the table entry with the given name.
func ColorByName(name string) (*LegacyColor, bool) {
	for i := range LegacyColors {
		if LegacyColors[i].Name == name {
			return &LegacyColors[i], true
		}
	}
	return nil, false
}

func colorIndex(code rune) int {
	switch {
	case code >= '0' && code <= '9':
		return int(code - '0')
	case code >= 'a' && code <= 'f':
		return int(code-'a') + 10
	case code >= 'A' && code <= 'F':
		return int(code-'A') + 10
	}
	return -1
}

func decorationIndex(code rune) int {
	if code >= 'A' && code <= 'Z' {
		code += 'a' - 'A'
	}
	return strings.IndexRune(decorationCodes, code)
}

// Nearest returns the legacy colour closest to the given RGB colour.
//
// The distance is the largest difference of a single channel.
// On a tie the entry that comes first in the table wins.
func Nearest(r, g, b uint8) *LegacyColor {
	best, bestDist := 0, 256
	for i := range LegacyColors {
		c := &LegacyColors[i]
		d := max(absDiff(r, c.R), absDiff(g, c.G), absDiff(b, c.B))
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return &LegacyColors[best]
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// LastColor returns the table index of the colour in effect at the end of the text.
// A reset code clears it. Hex markers count as their nearest legacy colour.
func LastColor(text string) (int, bool) {
	rs := []rune(ConvertRGBToLegacy(text))
	for i := len(rs) - 2; i >= 0; i-- {
		if rs[i] != EscapeChar {
			continue
		}
		code := rs[i+1]
		if code == ResetCode || code == 'R' {
			return 0, false
		}
		if lc, ok := ColorByCode(code); ok {
			return lc.Index(), true
		}
	}
	return 0, false
}
