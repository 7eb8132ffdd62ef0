// Package scoreboard contains the scoreboard packets: objectives,
// their display slots, scores and teams.
package scoreboard

import (
	"fmt"

	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/tab/pkg/edition/java/proto/util"
	"go.minekube.com/tab/pkg/proto"
)

// NumberFormatType is the kind of a score number format (1.20.3+).
type NumberFormatType int

const (
	BlankNumberFormat NumberFormatType = iota
	StyledNumberFormat
	FixedNumberFormat
)

// NumberFormat changes how score values are rendered.
type NumberFormat struct {
	Type  NumberFormatType
	Style util.BinaryTag      // StyledNumberFormat
	Fixed component.Component // FixedNumberFormat
}

func (f *NumberFormat) write(w *util.PWriter, protocol proto.Protocol) {
	w.VarInt(int(f.Type))
	switch f.Type {
	case BlankNumberFormat:
	case StyledNumberFormat:
		w.BinaryTag(f.Style, protocol)
	case FixedNumberFormat:
		w.Component(f.Fixed, protocol)
	default:
		panic(fmt.Errorf("unknown number format type %d", f.Type))
	}
}

func readNumberFormat(r *util.PReader, protocol proto.Protocol) *NumberFormat {
	var typ int
	r.VarInt(&typ)
	f := &NumberFormat{Type: NumberFormatType(typ)}
	switch f.Type {
	case BlankNumberFormat:
	case StyledNumberFormat:
		r.BinaryTag(&f.Style, protocol)
	case FixedNumberFormat:
		r.Component(&f.Fixed, protocol)
	default:
		panic(fmt.Errorf("unknown number format type %d", f.Type))
	}
	return f
}

func writeOptionalNumberFormat(w *util.PWriter, f *NumberFormat, protocol proto.Protocol) {
	if w.Bool(f != nil) {
		f.write(w, protocol)
	}
}

func readOptionalNumberFormat(r *util.PReader, protocol proto.Protocol) *NumberFormat {
	if r.Ok() {
		return readNumberFormat(r, protocol)
	}
	return nil
}
