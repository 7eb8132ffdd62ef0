// Package translator sends abstract packets to client connections of any
// protocol version and reads the player list and scoreboard packets they carry.
package translator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"go.minekube.com/tab/pkg/edition/java/proto/version"
	"go.minekube.com/tab/pkg/proto"
	"go.minekube.com/tab/pkg/tab/builder"
	"go.minekube.com/tab/pkg/tab/packet"
	"go.minekube.com/tab/pkg/util/errs"
)

var meter = otel.Meter("tab/translator")

// Conn is a client connection packets are written to.
type Conn interface {
	// Protocol is the protocol version the client connected with.
	Protocol() proto.Protocol
	proto.PacketWriter
}

// Options configure a Translator.
type Options struct {
	// Concurrency limits the connections written to at once by Broadcast.
	// Zero or less means no limit.
	Concurrency int
}

// Translator builds and writes packets for connections.
// It is safe for concurrent use.
type Translator struct {
	opts Options

	built, unsupported, malformed atomic.Uint64

	builtCounter       metric.Int64Counter
	unsupportedCounter metric.Int64Counter
	malformedCounter   metric.Int64Counter
}

// New returns a new Translator.
func New(opts Options) (*Translator, error) {
	t := &Translator{opts: opts}
	var err1, err2, err3 error
	t.builtCounter, err1 = meter.Int64Counter(
		"tab.packets.built",
		metric.WithDescription("Number of packets built for a client version"),
	)
	t.unsupportedCounter, err2 = meter.Int64Counter(
		"tab.packets.unsupported",
		metric.WithDescription("Number of packets skipped because the client version can not show them"),
	)
	t.malformedCounter, err3 = meter.Int64Counter(
		"tab.packets.malformed",
		metric.WithDescription("Number of discarded packets that could not be read"),
	)
	for _, err := range []error{err1, err2, err3} {
		if err != nil {
			return nil, fmt.Errorf("failed to create metrics: %w", err)
		}
	}
	return t, nil
}

// Stats are the totals counted by a Translator.
type Stats struct {
	Built       uint64 `yaml:"built"`
	Unsupported uint64 `yaml:"unsupported"`
	Malformed   uint64 `yaml:"malformed"`
}

// Stats returns the current totals.
func (t *Translator) Stats() Stats {
	return Stats{
		Built:       t.built.Load(),
		Unsupported: t.unsupported.Load(),
		Malformed:   t.malformed.Load(),
	}
}

// Build builds p for the protocol and counts the outcome.
func (t *Translator) Build(ctx context.Context, p packet.Packet, protocol proto.Protocol) (proto.Packet, error) {
	wire, err := builder.Build(p, protocol)
	if err != nil {
		if errors.Is(err, builder.ErrUnsupported) {
			t.unsupported.Inc()
			t.unsupportedCounter.Add(ctx, 1, kindAttr(p))
			logr.FromContextOrDiscard(ctx).V(1).Info("skipping packet unsupported by client version",
				"kind", p.Kind(), "version", version.Protocol(protocol), "reason", err)
		}
		return nil, err
	}
	t.built.Inc()
	t.builtCounter.Add(ctx, 1, kindAttr(p))
	return wire, nil
}

// Send builds p for the protocol of c and writes it.
//
// If the client version can not show p nothing is written
// and the returned error matches builder.ErrUnsupported.
func (t *Translator) Send(ctx context.Context, c Conn, p packet.Packet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	wire, err := t.Build(ctx, p, c.Protocol())
	if err != nil {
		return err
	}
	return proto.WritePackets(c, wire)
}

// Broadcast sends p to all connections. The packet is built once per protocol version.
//
// Connections whose version can not show p are skipped without error.
// Write errors do not stop the broadcast, they are joined in the returned error.
func (t *Translator) Broadcast(ctx context.Context, conns []Conn, p packet.Packet) error {
	if p == nil {
		return errors.New("nil packet")
	}
	byProtocol := map[proto.Protocol][]Conn{}
	for _, c := range conns {
		byProtocol[c.Protocol()] = append(byProtocol[c.Protocol()], c)
	}

	var (
		mu       sync.Mutex
		writeErr []error
	)
	eg, ctx := errgroup.WithContext(ctx)
	if t.opts.Concurrency > 0 {
		eg.SetLimit(t.opts.Concurrency)
	}
	for protocol, group := range byProtocol {
		wire, err := t.Build(ctx, p, protocol)
		if errors.Is(err, builder.ErrUnsupported) {
			continue
		}
		if err != nil {
			return err
		}
		for _, c := range group {
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := proto.WritePackets(c, wire); err != nil {
					mu.Lock()
					writeErr = append(writeErr, err)
					mu.Unlock()
				}
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	return errors.Join(writeErr...)
}

// ReadPlayerInfo reads a player list packet received for c.
//
// A malformed packet is logged at debug level and counted. The returned error
// is then an errs.SilentError wrapping a *builder.ParseError, and the packet
// should be discarded.
func (t *Translator) ReadPlayerInfo(ctx context.Context, c Conn, wire proto.Packet) (*packet.PlayerInfo, error) {
	return read(ctx, t, packet.KindPlayerInfo, c, wire, builder.ReadPlayerInfo)
}

// ReadObjective reads an objective packet received for c.
func (t *Translator) ReadObjective(ctx context.Context, c Conn, wire proto.Packet) (*packet.Objective, error) {
	return read(ctx, t, packet.KindObjective, c, wire, builder.ReadObjective)
}

// ReadDisplayObjective reads a display objective packet received for c.
func (t *Translator) ReadDisplayObjective(ctx context.Context, c Conn, wire proto.Packet) (*packet.DisplayObjective, error) {
	return read(ctx, t, packet.KindDisplayObjective, c, wire, builder.ReadDisplayObjective)
}

func read[T any](
	ctx context.Context, t *Translator, k packet.Kind, c Conn, wire proto.Packet,
	fn func(proto.Packet, proto.Protocol) (T, error),
) (v T, err error) {
	if err = ctx.Err(); err != nil {
		return v, err
	}
	v, err = fn(wire, c.Protocol())
	if err != nil {
		t.malformed.Inc()
		t.malformedCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", k.String())))
		logr.FromContextOrDiscard(ctx).V(1).Info("discarding malformed packet",
			"kind", k, "version", version.Protocol(c.Protocol()), "error", err)
		return v, errs.WrapSilent(err)
	}
	return v, nil
}
