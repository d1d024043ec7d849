package runtime

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	errspkg "github.com/drblury/ariflow/internal/runtime/errors"
	"github.com/drblury/ariflow/internal/runtime/events"
	"github.com/drblury/ariflow/internal/runtime/logging"
	"github.com/drblury/ariflow/transport"
)

// SessionState is the lifecycle state of one event stream connection.
type SessionState int32

const (
	StateConnecting SessionState = iota
	StateOpen
	StateClosed
	StateFailed
)

func (s SessionState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Session owns one live connection and drives the decode/dispatch pipeline
// for every inbound frame. It is single-owner: run is called exactly once,
// and frames are processed strictly in arrival order with no concurrent
// handler invocations.
type Session struct {
	connector transport.Connector
	url       string
	registry  *registry
	logger    logging.ServiceLogger
	metrics   *ClientMetrics
	tracer    trace.Tracer

	state atomic.Int32

	errMu   sync.Mutex
	lastErr error
}

func newSession(connector transport.Connector, url string, reg *registry, logger logging.ServiceLogger, metrics *ClientMetrics) *Session {
	s := &Session{
		connector: connector,
		url:       url,
		registry:  reg,
		logger:    logger,
		metrics:   metrics,
		tracer:    otel.Tracer("ariflow/dispatch"),
	}
	s.state.Store(int32(StateConnecting))
	return s
}

// State returns the current lifecycle state.
func (s *Session) State() SessionState {
	return SessionState(s.state.Load())
}

// Err returns the transport error that moved the session to StateFailed, or
// nil.
func (s *Session) Err() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.lastErr
}

func (s *Session) fail(err error) {
	s.errMu.Lock()
	s.lastErr = err
	s.errMu.Unlock()
	s.state.Store(int32(StateFailed))
}

// run connects and processes frames until the transport closes or fails. A
// server-initiated close returns nil; a transport failure returns the
// *errors.TransportError that ended the session; context cancellation closes
// the connection and returns ctx.Err().
func (s *Session) run(ctx context.Context) error {
	conn, err := s.connector.Connect(ctx, s.url)
	if err != nil {
		terr := &errspkg.TransportError{Op: "dial", Err: err}
		s.fail(terr)
		s.logger.Error("event stream connect failed", terr, nil)
		return terr
	}

	s.state.Store(int32(StateOpen))
	s.logger.Info("event stream connected", nil)

	// Unblock the read loop when the caller cancels.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		frame, err := conn.ReadFrame()
		if err != nil {
			if ctx.Err() != nil {
				s.state.Store(int32(StateClosed))
				s.logger.Info("event stream stopped", logging.LogFields{"reason": ctx.Err()})
				return ctx.Err()
			}
			if errors.Is(err, transport.ErrConnClosed) {
				s.state.Store(int32(StateClosed))
				s.logger.Info("event stream closed by server", nil)
				return nil
			}
			terr := &errspkg.TransportError{Op: "read", Err: err}
			s.fail(terr)
			s.logger.Error("event stream failed", terr, nil)
			return terr
		}

		s.handleFrame(ctx, frame)
	}
}

// handleFrame decodes and dispatches a single frame. Per-frame failures are
// contained here: they are logged, counted, and dropped while the session
// stays open.
func (s *Session) handleFrame(ctx context.Context, frame transport.Frame) {
	if frame.Kind != transport.FrameText {
		s.metrics.observeFrame(frameResultBinary)
		s.logger.Debug("ignoring binary frame", logging.LogFields{"payload_bytes": len(frame.Payload)})
		return
	}

	event, err := events.Decode(frame.Payload)
	if err != nil {
		s.metrics.observeFrame(frameResultDecodeError)
		s.logger.Error("dropping undecodable frame", err, logging.LogFields{"payload_bytes": len(frame.Payload)})
		return
	}

	handlers := s.registry.resolve(event.GetType())
	if len(handlers) == 0 {
		// Applications only bind the subset of events they care about.
		s.metrics.observeFrame(frameResultUnbound)
		s.logger.Debug("no handler bound for event", logging.LogFields{"event_type": event.GetType()})
		return
	}

	s.metrics.observeFrame(frameResultDispatched)
	s.dispatch(ctx, event, handlers)
}

func (s *Session) dispatch(ctx context.Context, event events.Event, handlers []EventHandler) {
	ctx, span := s.tracer.Start(ctx, "ariflow.dispatch", trace.WithAttributes(
		attribute.String("ari.event_type", event.GetType()),
		attribute.String("ari.application", event.GetApplication()),
	))
	defer span.End()

	start := time.Now()
	failed := false
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			failed = true
			s.metrics.observeHandlerError(event.GetType())
			span.RecordError(err)
			s.logger.Error("event handler failed", err, logging.LogFields{"event_type": event.GetType()})
		}
	}
	s.metrics.observeDispatch(event.GetType(), time.Since(start).Seconds())

	if failed {
		span.SetStatus(codes.Error, "handler failed")
	}
}
