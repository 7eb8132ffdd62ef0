package packet

import (
	"io"

	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/tab/pkg/edition/java/proto/util"
	"go.minekube.com/tab/pkg/proto"
)

// HeaderAndFooter sets the text above and below the player list of 1.8+ clients.
// An empty translation clears a line.
type HeaderAndFooter struct {
	Header component.Component
	Footer component.Component
}

func (h *HeaderAndFooter) Encode(c *proto.PacketContext, wr io.Writer) (err error) {
	defer util.Recover(&err)
	w := util.PanicWriter(wr)
	w.Component(h.Header, c.Protocol)
	w.Component(h.Footer, c.Protocol)
	return nil
}

func (h *HeaderAndFooter) Decode(c *proto.PacketContext, rd io.Reader) (err error) {
	defer util.Recover(&err)
	r := util.PanicReader(rd)
	r.Component(&h.Header, c.Protocol)
	r.Component(&h.Footer, c.Protocol)
	return nil
}

var _ proto.Packet = (*HeaderAndFooter)(nil)
