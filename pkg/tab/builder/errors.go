package builder

import (
	"errors"
	"fmt"

	"go.minekube.com/tab/pkg/edition/java/proto/version"
	"go.minekube.com/tab/pkg/proto"
	"go.minekube.com/tab/pkg/tab/packet"
)

var (
	// ErrUnsupported is matched by every *UnsupportedError.
	ErrUnsupported = errors.New("unsupported by protocol version")
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("malformed packet")
)

// UnsupportedError is returned by Build when the protocol version
// can not represent the packet. The packet should not be sent to the client.
type UnsupportedError struct {
	Kind     packet.Kind
	Protocol proto.Protocol
	Reason   string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s packet not supported by %s: %s",
		e.Kind, version.Protocol(e.Protocol), e.Reason)
}

func (e *UnsupportedError) Is(target error) bool { return target == ErrUnsupported }

func unsupported(k packet.Kind, protocol proto.Protocol, format string, a ...any) error {
	return &UnsupportedError{Kind: k, Protocol: protocol, Reason: fmt.Sprintf(format, a...)}
}

// ParseError is returned by the read functions for wire packets
// that have no abstract representation. The packet should be discarded.
type ParseError struct {
	Kind     packet.Kind
	Protocol proto.Protocol
	Field    string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error reading %s packet of %s: %s: %v",
		e.Kind, version.Protocol(e.Protocol), e.Field, e.Err)
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }

func (e *ParseError) Unwrap() error { return e.Err }

func parseErr(k packet.Kind, protocol proto.Protocol, field string, format string, a ...any) error {
	return &ParseError{Kind: k, Protocol: protocol, Field: field, Err: fmt.Errorf(format, a...)}
}
