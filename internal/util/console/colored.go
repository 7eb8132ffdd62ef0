package console

import (
	"strings"

	"github.com/gookit/color"
	mccolor "go.minekube.com/common/minecraft/color"
	"go.minekube.com/common/minecraft/component"
)

// Ansi renders a component tree as true colour terminal output.
func Ansi(c component.Component) string {
	b := new(strings.Builder)
	ansi(c, b, component.Style{})
	return b.String()
}

func ansi(c component.Component, b *strings.Builder, parent component.Style) {
	switch t := c.(type) {
	case *component.Text:
		s := merge(parent, t.S)
		b.WriteString(render(t.Content, s))
		for _, e := range t.Extra {
			ansi(e, b, s)
		}
	case *component.Translation:
		s := merge(parent, t.S)
		b.WriteString(render(t.Key, s))
		for _, w := range t.With {
			ansi(w, b, s)
		}
	}
}

// merge returns child with unset parts taken from parent.
func merge(parent, child component.Style) component.Style {
	if child.Color == nil {
		child.Color = parent.Color
	}
	for _, p := range []struct{ c, p *component.State }{
		{&child.Bold, &parent.Bold},
		{&child.Italic, &parent.Italic},
		{&child.Underlined, &parent.Underlined},
		{&child.Strikethrough, &parent.Strikethrough},
		{&child.Obfuscated, &parent.Obfuscated},
	} {
		if *p.c == component.NotSet {
			*p.c = *p.p
		}
	}
	return child
}

func render(s string, st component.Style) string {
	if s == "" {
		return ""
	}
	var opts []color.Color
	for _, d := range []struct {
		state component.State
		op    color.Color
	}{
		{st.Bold, color.OpBold},
		{st.Italic, color.OpItalic},
		{st.Underlined, color.OpUnderscore},
		{st.Strikethrough, color.OpStrikethrough},
		{st.Obfuscated, color.OpConcealed},
	} {
		if d.state == component.True {
			opts = append(opts, d.op)
		}
	}
	if st.Color == nil {
		if len(opts) == 0 {
			return s
		}
		return color.New(opts...).Sprint(s)
	}
	return color.NewRGBStyle(rgb(st.Color)).AddOpts(opts...).Sprint(s)
}

func rgb(c mccolor.Color) color.RGBColor {
	r, g, b, _ := c.RGBA()
	return color.RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
