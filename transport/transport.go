// Package transport defines the low-level primitives the ariflow session
// uses to consume the ARI event stream. The runtime depends only on these
// interfaces; the websocket sub-package provides the production
// implementation and tests substitute fakes.
package transport

import (
	"context"
	"errors"
)

// FrameKind distinguishes the payload encodings a connection can deliver.
type FrameKind int

const (
	// FrameText carries a JSON event message.
	FrameText FrameKind = iota
	// FrameBinary is accepted at the transport boundary but never routed to
	// handlers.
	FrameBinary
)

// Frame is one inbound message from the event stream.
type Frame struct {
	Kind    FrameKind
	Payload []byte
}

// ErrConnClosed is returned by ReadFrame after the peer completed an orderly
// close. Any other ReadFrame error is a connection failure.
var ErrConnClosed = errors.New("ariflow: connection closed by peer")

// Conn is one live connection to the event stream endpoint.
type Conn interface {
	// ReadFrame blocks until the next frame arrives. It returns ErrConnClosed
	// on orderly shutdown and the underlying error on failure.
	ReadFrame() (Frame, error)

	// Close tears the connection down. It unblocks a concurrent ReadFrame.
	Close() error
}

// Connector establishes connections to an event stream endpoint.
type Connector interface {
	Connect(ctx context.Context, url string) (Conn, error)
}
