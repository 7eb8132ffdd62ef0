package text

import (
	"strings"

	"go.minekube.com/common/minecraft/color"
	"go.minekube.com/common/minecraft/component"
)

// style is the flattened formatting of a text segment.
type style struct {
	color color.Color
	deco  [len(decorationCodes)]bool
}

func (s style) component() component.Style {
	st := component.Style{Color: s.color}
	states := [...]*component.State{&st.Obfuscated, &st.Bold, &st.Strikethrough, &st.Underlined, &st.Italic}
	for i, set := range s.deco {
		if set {
			*states[i] = component.True
		}
	}
	return st
}

// inherit applies the explicitly set parts of cs on top of s.
func (s style) inherit(cs component.Style) style {
	if cs.Color != nil {
		s.color = cs.Color
	}
	states := [...]component.State{cs.Obfuscated, cs.Bold, cs.Strikethrough, cs.Underlined, cs.Italic}
	for i, st := range states {
		switch st {
		case component.True:
			s.deco[i] = true
		case component.False:
			s.deco[i] = false
		}
	}
	return s
}

// Component parses text into a component tree.
//
// Every run of text with the same formatting becomes a sibling text component.
// RGB markups are applied first, see ApplyFormats.
// Colour codes and hex markers reset decorations like the vanilla client does.
func Component(text string) component.Component {
	text = ApplyFormats(text)
	var (
		segments []component.Component
		cur      style
		buf      strings.Builder
	)
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		segments = append(segments, &component.Text{Content: buf.String(), S: cur.component()})
		buf.Reset()
	}

	rs := []rune(text)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if r == '#' && i+7 <= len(rs) {
			if c, err := parseHex(string(rs[i+1 : i+7])); err == nil {
				flush()
				cur = style{color: rgbColor(c)}
				i += 6
				continue
			}
		}
		if r != EscapeChar || i+1 >= len(rs) {
			buf.WriteRune(r)
			continue
		}
		code := rs[i+1]
		lc, isColor := ColorByCode(code)
		switch {
		case isColor:
			flush()
			cur = style{color: lc.Color}
		case decorationIndex(code) >= 0:
			flush()
			cur.deco[decorationIndex(code)] = true
		case code == ResetCode || code == 'R':
			flush()
			cur = style{}
		default:
			// unknown code, keep it as text
			buf.WriteRune(r)
			buf.WriteRune(code)
		}
		i++
	}
	flush()

	switch len(segments) {
	case 0:
		return &component.Text{}
	case 1:
		return segments[0]
	}
	return &component.Text{Extra: segments}
}

func rgbColor(c rgb) color.Color {
	h, err := color.Hex(c.hex())
	if err != nil {
		// unreachable for six hex digits
		return Nearest(c.r, c.g, c.b).Color
	}
	return h
}

// FromComponent serializes a component tree back into legacy text with hex markers.
// Named colours become colour codes, any other colour a #RRGGBB marker.
// It is the inverse of Component for text that does not repeat codes.
func FromComponent(c component.Component) string {
	w := &legacyWriter{}
	w.walk(c, style{})
	return w.b.String()
}

// Plain returns the text content of a component without any formatting.
func Plain(c component.Component) string {
	b := new(strings.Builder)
	var walk func(c component.Component)
	walk = func(c component.Component) {
		switch t := c.(type) {
		case *component.Text:
			b.WriteString(t.Content)
			for _, e := range t.Extra {
				walk(e)
			}
		case *component.Translation:
			b.WriteString(t.Key)
			for _, w := range t.With {
				walk(w)
			}
		}
	}
	walk(c)
	return b.String()
}

type legacyWriter struct {
	b       strings.Builder
	current style
}

func (w *legacyWriter) walk(c component.Component, parent style) {
	switch t := c.(type) {
	case *component.Text:
		s := parent.inherit(t.S)
		w.write(t.Content, s)
		for _, e := range t.Extra {
			w.walk(e, s)
		}
	case *component.Translation:
		s := parent.inherit(t.S)
		w.write(t.Key, s)
		for _, e := range t.With {
			w.walk(e, s)
		}
	}
}

func (w *legacyWriter) write(content string, s style) {
	if content == "" {
		return
	}
	w.switchTo(s)
	w.b.WriteString(content)
}

// switchTo writes the shortest code sequence changing the current style to s.
func (w *legacyWriter) switchTo(s style) {
	cur := w.current
	w.current = s
	if sameColor(cur.color, s.color) {
		removed := false
		for i := range s.deco {
			if cur.deco[i] && !s.deco[i] {
				removed = true
			}
		}
		if !removed {
			w.writeDecorations(s, cur)
			return
		}
	}
	if s.color == nil {
		w.b.WriteRune(EscapeChar)
		w.b.WriteRune(ResetCode)
	} else {
		w.b.WriteString(colorCode(s.color))
	}
	w.writeDecorations(s, style{})
}

func (w *legacyWriter) writeDecorations(s, have style) {
	for i, set := range s.deco {
		if set && !have.deco[i] {
			w.b.WriteRune(EscapeChar)
			w.b.WriteByte(decorationCodes[i])
		}
	}
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return colorCode(a) == colorCode(b)
}

// colorCode returns the legacy code of a named colour or the hex marker of any other.
func colorCode(c color.Color) string {
	if lc := named(c); lc != nil {
		return lc.String()
	}
	r, g, b := channels(c)
	return hexOf(r, g, b)
}

func named(c color.Color) *LegacyColor {
	for i := range LegacyColors {
		if LegacyColors[i].Color == c {
			return &LegacyColors[i]
		}
	}
	return nil
}

func channels(c color.Color) (r, g, b uint8) {
	r32, g32, b32, _ := c.RGBA()
	return uint8(r32 >> 8), uint8(g32 >> 8), uint8(b32 >> 8)
}

// Downsample returns a copy of the component tree with every colour
// that is not a named colour replaced by the nearest legacy colour.
func Downsample(c component.Component) component.Component {
	switch t := c.(type) {
	case *component.Text:
		cp := *t
		cp.S.Color = downsampleColor(t.S.Color)
		cp.Extra = downsampleAll(t.Extra)
		return &cp
	case *component.Translation:
		cp := *t
		cp.S.Color = downsampleColor(t.S.Color)
		cp.With = downsampleAll(t.With)
		return &cp
	}
	return c
}

func downsampleAll(cs []component.Component) []component.Component {
	if cs == nil {
		return nil
	}
	out := make([]component.Component, len(cs))
	for i, c := range cs {
		out[i] = Downsample(c)
	}
	return out
}

func downsampleColor(c color.Color) color.Color {
	if c == nil || named(c) != nil {
		return c
	}
	return Nearest(channels(c)).Color
}
