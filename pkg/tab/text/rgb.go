package text

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	hexMarker = regexp.MustCompile(`#[0-9a-fA-F]{6}`)

	// §#RRGGBB and &#RRGGBB
	escapedHex = regexp.MustCompile(`[§&]#([0-9a-fA-F]{6})`)
	// {#RRGGBB}
	bracedHex = regexp.MustCompile(`\{#([0-9a-fA-F]{6})\}`)
	// #<RRGGBB>
	angledHex = regexp.MustCompile(`#<([0-9a-fA-F]{6})>`)
	// §x§R§R§G§G§B§B as sent by the vanilla server
	spigotHex = regexp.MustCompile(`[§&][xX]((?:[§&][0-9a-fA-F]){6})`)
	// <#RRGGBB>text</#RRGGBB>
	gradient = regexp.MustCompile(`<#([0-9a-fA-F]{6})>(.*?)</#([0-9a-fA-F]{6})>`)
)

// ApplyFormats rewrites the supported RGB markups into the canonical #RRGGBB marker.
// Gradients get one marker per visible character.
func ApplyFormats(text string) string {
	text = gradient.ReplaceAllStringFunc(text, func(m string) string {
		sub := gradient.FindStringSubmatch(m)
		from, _ := parseHex(sub[1])
		to, _ := parseHex(sub[3])
		return applyGradient(sub[2], from, to)
	})
	text = spigotHex.ReplaceAllStringFunc(text, func(m string) string {
		digits := spigotHex.FindStringSubmatch(m)[1]
		b := make([]rune, 0, 7)
		b = append(b, '#')
		for i, r := range []rune(digits) {
			if i%2 == 1 {
				b = append(b, r)
			}
		}
		return string(b)
	})
	text = escapedHex.ReplaceAllString(text, "#$1")
	text = bracedHex.ReplaceAllString(text, "#$1")
	text = angledHex.ReplaceAllString(text, "#$1")
	return text
}

// ConvertRGBToLegacy applies the RGB markups and replaces every #RRGGBB marker
// by the code of the nearest legacy colour.
// Anything that is not a valid marker is kept as is.
func ConvertRGBToLegacy(text string) string {
	text = ApplyFormats(text)
	if !strings.ContainsRune(text, '#') {
		return text
	}
	return hexMarker.ReplaceAllStringFunc(text, func(m string) string {
		c, _ := parseHex(m[1:])
		return Nearest(c.r, c.g, c.b).String()
	})
}

type rgb struct{ r, g, b uint8 }

func (c rgb) hex() string { return hexOf(c.r, c.g, c.b) }

func parseHex(s string) (rgb, error) {
	if len(s) != 6 {
		return rgb{}, fmt.Errorf("invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return rgb{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return rgb{r: uint8(v >> 16), g: uint8(v >> 8), b: uint8(v)}, nil
}

func hexOf(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func applyGradient(text string, from, to rgb) string {
	rs := []rune(text)
	visible := 0
	for i := 0; i < len(rs); i++ {
		if rs[i] == EscapeChar && i+1 < len(rs) {
			i++
			continue
		}
		visible++
	}
	b := new(strings.Builder)
	step := 0
	for i := 0; i < len(rs); i++ {
		if rs[i] == EscapeChar && i+1 < len(rs) {
			b.WriteRune(rs[i])
			b.WriteRune(rs[i+1])
			i++
			continue
		}
		b.WriteString(interpolate(from, to, step, visible).hex())
		b.WriteRune(rs[i])
		step++
	}
	return b.String()
}

func interpolate(from, to rgb, step, steps int) rgb {
	if steps <= 1 {
		return from
	}
	f := float64(step) / float64(steps-1)
	ch := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*f))
	}
	return rgb{r: ch(from.r, to.r), g: ch(from.g, to.g), b: ch(from.b, to.b)}
}
