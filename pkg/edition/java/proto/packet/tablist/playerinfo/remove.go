package playerinfo

import (
	"fmt"
	"io"

	"go.minekube.com/tab/pkg/edition/java/proto/util"
	"go.minekube.com/tab/pkg/proto"
	"go.minekube.com/tab/pkg/util/uuid"
)

// Remove drops entries from the player list of 1.19.3+ clients.
type Remove struct {
	PlayersToRemove []uuid.UUID
}

func (r *Remove) Encode(_ *proto.PacketContext, wr io.Writer) (err error) {
	defer util.Recover(&err)
	w := util.PanicWriter(wr)
	w.VarInt(len(r.PlayersToRemove))
	for _, id := range r.PlayersToRemove {
		w.UUID(id)
	}
	return nil
}

func (r *Remove) Decode(_ *proto.PacketContext, rd io.Reader) (err error) {
	defer util.Recover(&err)
	pr := util.PanicReader(rd)
	var n int
	pr.VarInt(&n)
	if n < 0 {
		return fmt.Errorf("negative player count %d", n)
	}
	r.PlayersToRemove = make([]uuid.UUID, 0, min(n, 1024))
	for range n {
		var id uuid.UUID
		pr.UUID(&id)
		r.PlayersToRemove = append(r.PlayersToRemove, id)
	}
	return nil
}

var _ proto.Packet = (*Remove)(nil)
